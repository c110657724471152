package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Connection wraps an AMQP connection.
type Connection struct {
	url  string
	conn *amqp.Connection
	log  *zap.Logger
}

// Connect dials RabbitMQ, retrying until attempts run out or ctx is done.
func Connect(ctx context.Context, url string, attempts int, log *zap.Logger) (*Connection, error) {
	log = log.With(zap.String("component", "rabbitmq"))

	var lastErr error
	for i := 1; i <= attempts; i++ {
		conn, err := amqp.Dial(url)
		if err == nil {
			log.Info("Connected to RabbitMQ")
			return &Connection{url: url, conn: conn, log: log}, nil
		}
		lastErr = err

		log.Warn("Failed to connect to RabbitMQ, retrying",
			zap.Int("attempt", i),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", attempts, lastErr)
}

func (c *Connection) Channel() (*amqp.Channel, error) {
	return c.conn.Channel()
}

func (c *Connection) Close() error {
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}
