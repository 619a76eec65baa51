package database

import (
	"context"
	"fmt"
	"time"

	"github.com/fixpoint/fixpoint-backend/pkg/config"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB wraps the sqlx connection pool
type DB struct {
	*sqlx.DB
}

// New opens the Postgres pool and verifies connectivity
func New(cfg *config.DatabaseConfig, log *logger.Logger) (*DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Database).
		Msg("database connected")

	return &DB{DB: db}, nil
}

// Health reports connectivity for the health endpoint. The ping is bounded
// so a stalled pool cannot hang the probe.
func (db *DB) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return map[string]string{
			"status": "down",
			"error":  err.Error(),
		}
	}

	return map[string]string{"status": "up"}
}
