package repository

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	now := time.Now()
	user := &entity.User{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  entity.RoleCustomer,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, entity.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("Alice@Example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at", "updated_at", "deleted_at"}).
			AddRow(id, "Alice", "alice@example.com", "hash", entity.RoleAdmin, now, now, nil))

	user, err := repo.FindByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Nil(t, user.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	user, err := repo.FindByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, user)
}
