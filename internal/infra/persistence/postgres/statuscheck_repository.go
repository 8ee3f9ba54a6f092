package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domsc "example.com/dropship-manager/internal/domain/statuscheck"
)

// StatusCheckRepository stores client liveness pings in the ops Postgres
// database, separate from the MySQL commerce schema.
type StatusCheckRepository struct {
	pool *pgxpool.Pool
}

func NewStatusCheckRepository(pool *pgxpool.Pool) *StatusCheckRepository {
	return &StatusCheckRepository{pool: pool}
}

// EnsureSchema creates the status_checks table if it does not exist. The ops
// store is deliberately kept out of the MySQL migration chain.
func (r *StatusCheckRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS status_checks (
            id          UUID PRIMARY KEY,
            client_name TEXT NOT NULL,
            ts          TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `)
	if err != nil {
		return fmt.Errorf("ensure status_checks schema: %w", err)
	}
	return nil
}

func (r *StatusCheckRepository) Create(ctx context.Context, sc *domsc.StatusCheck) error {
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO status_checks (id, client_name, ts) VALUES ($1, $2, $3)
    `, sc.ID, sc.ClientName, sc.Timestamp)
	return err
}

func (r *StatusCheckRepository) List(ctx context.Context, limit int) ([]*domsc.StatusCheck, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
        SELECT id, client_name, ts FROM status_checks ORDER BY ts DESC LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*domsc.StatusCheck
	for rows.Next() {
		var sc domsc.StatusCheck
		if err := rows.Scan(&sc.ID, &sc.ClientName, &sc.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, &sc)
	}
	return checks, rows.Err()
}
