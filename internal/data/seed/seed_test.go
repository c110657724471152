package seed

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	userCols  = []string{"id", "name", "email", "password", "role", "created_at", "updated_at", "deleted_at"}
	eventCols = []string{"id", "name", "venue", "date_time", "vendor", "description", "available_seats", "created_at", "updated_at", "deleted_at"}
)

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestRun_EmptyDatabase(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	for _, u := range demoUsers {
		pool.ExpectQuery(`FROM users WHERE LOWER\(email\)`).
			WithArgs(u.email).
			WillReturnRows(pgxmock.NewRows(userCols))
		pool.ExpectExec(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), u.name, u.email, pgxmock.AnyArg(), u.role, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	pool.ExpectQuery(`FROM events WHERE name = \$1`).
		WithArgs("Tech Conference").
		WillReturnRows(pgxmock.NewRows(eventCols))
	pool.ExpectExec(`INSERT INTO events`).
		WithArgs(anyArgs(9)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = Run(context.Background(), repository.NewRepository(pool, zap.NewNop()), zap.NewNop())

	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRun_AlreadySeeded(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now()
	for _, u := range demoUsers {
		pool.ExpectQuery(`FROM users WHERE LOWER\(email\)`).
			WithArgs(u.email).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(uuid.New(), u.name, u.email, "hash", u.role, now, now, nil))
	}
	vendor, description := "Tech Corp", "Annual technology conference"
	pool.ExpectQuery(`FROM events WHERE name = \$1`).
		WithArgs("Tech Conference").
		WillReturnRows(pgxmock.NewRows(eventCols).
			AddRow(uuid.New(), "Tech Conference", "Convention Center", now, &vendor, &description, 150, now, now, nil))

	err = Run(context.Background(), repository.NewRepository(pool, zap.NewNop()), zap.NewNop())

	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}
