package wire

import (
	"net/http"

	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/internal/usecase"
	"event-booking/pkg/middleware"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the repositories.
func Wiring(
	repo *repository.Repository,
	db adaptor.Pinger,
	publisher usecase.EventPublisher,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	tokens := utils.NewTokenManager(config.JWT)

	service := usecase.NewService(repo, publisher, tokens, config, logger)
	handler := adaptor.NewHandler(service, db, logger)

	return &App{
		Router: setupRouter(handler, repo, tokens, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(config.CORS.Origin))
	r.Use(middleware.SecurityHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	authMW := middleware.Auth(tokens, repo.User, logger)

	wireAuth(r, handler.Auth, handler.User, authMW)
	wireEvent(r, handler.Event, authMW, logger)
	wireBooking(r, handler.Booking, authMW)

	r.Get("/api/health", handler.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
