package adaptor

import (
	"context"
	"net/http"
	"time"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	started time.Time
	log     *zap.Logger
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Uptime    string    `json:"uptime"`
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		started: time.Now(),
		log:     log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
		Uptime:    time.Since(h.started).Round(time.Second).String(),
	}

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		utils.ResponseJSON(w, http.StatusServiceUnavailable, utils.Response{
			Success: false,
			Message: "Service unavailable",
			Data:    resp,
		})
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}
