package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"event-booking/cmd"
	"event-booking/internal/data/repository"
	"event-booking/internal/data/seed"
	"event-booking/internal/usecase"
	"event-booking/internal/wire"
	"event-booking/pkg/database"
	"event-booking/pkg/rabbitmq"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()

	if err := run(config, logger); err != nil {
		logger.Fatal("Application stopped with error", zap.Error(err))
	}
}

func run(config *utils.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.Migrate(ctx, db, logger); err != nil {
		return err
	}

	repos := repository.NewRepository(db, logger)

	if config.App.Seed {
		if err := seed.Run(ctx, repos, logger); err != nil {
			return err
		}
	}

	var publisher usecase.EventPublisher = rabbitmq.NopPublisher{}
	if config.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(ctx, config.RabbitMQ.URL, 10, logger)
		if err != nil {
			return err
		}
		defer conn.Close()

		pub, err := rabbitmq.NewPublisher(conn, config.RabbitMQ.Exchange, logger)
		if err != nil {
			return err
		}
		defer pub.Close()
		publisher = pub
	} else {
		logger.Info("RABBITMQ_URL not set, booking notifications disabled")
	}

	app := wire.Wiring(repos, db, publisher, config, logger)

	return cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
}
