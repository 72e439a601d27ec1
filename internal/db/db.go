// Package db provides PostgreSQL access to stored application history.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/success-predictor/internal/behavior"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetUserApplications retrieves a user's application history, most recent
// first, capped at the last 100 applications.
func (db *DB) GetUserApplications(ctx context.Context, userID string) ([]behavior.UsageRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT job_id, posted_at, applied_at, method, cv_optimized, sessions
		 FROM applications WHERE user_id = $1
		 ORDER BY applied_at DESC LIMIT 100`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var records []behavior.UsageRecord
	for rows.Next() {
		var r behavior.UsageRecord
		if err := rows.Scan(&r.JobID, &r.PostedAt, &r.AppliedAt, &r.Method, &r.CVOptimized, &r.Sessions); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// RecordApplication stores one application event for later behavior analysis.
func (db *DB) RecordApplication(ctx context.Context, userID string, r behavior.UsageRecord) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications (user_id, job_id, posted_at, applied_at, method, cv_optimized, sessions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, job_id) DO UPDATE
		 SET applied_at = $4, method = $5, cv_optimized = $6, sessions = $7`,
		userID, r.JobID, r.PostedAt, r.AppliedAt, r.Method, r.CVOptimized, r.Sessions,
	)
	if err != nil {
		return fmt.Errorf("failed to record application: %w", err)
	}
	return nil
}
