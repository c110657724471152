// Package seed inserts demo users and events for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const demoPassword = "password123"

type demoUser struct {
	name  string
	email string
	role  entity.UserRole
}

var demoUsers = []demoUser{
	{name: "Admin User", email: "admin@example.com", role: entity.RoleAdmin},
	{name: "Regular User", email: "user1@example.com", role: entity.RoleCustomer},
	{name: "Another User", email: "user2@example.com", role: entity.RoleCustomer},
	{name: "Event Vendor", email: "vendor@example.com", role: entity.RoleCustomer},
}

// Run is idempotent: rows that already exist are left untouched.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()
	for _, u := range demoUsers {
		existing, err := repo.User.FindByEmail(ctx, u.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		user := &entity.User{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
		}
		if err := repo.User.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		log.Info("Seeded user", zap.String("email", u.email), zap.String("role", string(u.role)))
	}

	const eventName = "Tech Conference"
	existing, err := repo.Event.FindByName(ctx, eventName)
	if err != nil {
		return err
	}
	if existing == nil {
		vendor := "Tech Corp"
		description := "Annual technology conference"
		event := &entity.Event{
			Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:           eventName,
			Venue:          "Convention Center",
			DateTime:       now.AddDate(0, 0, 30),
			Vendor:         &vendor,
			Description:    &description,
			AvailableSeats: 150,
		}
		if err := repo.Event.Create(ctx, event); err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
		log.Info("Seeded event", zap.String("event_id", event.ID.String()))
	}

	return nil
}
