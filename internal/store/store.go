// Package store keeps a history of simulation runs in SQLite: one summary
// row per run plus the per-trial open fractions. Grid state is never stored.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/percolate/stats"
)

// timeLayout is a fixed-width RFC 3339 layout for created_at.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound indicates the requested run id does not exist.
var ErrNotFound = errors.New("store: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id          TEXT PRIMARY KEY,
	n               INTEGER NOT NULL,
	trials          INTEGER NOT NULL,
	seed            INTEGER NOT NULL,
	workers         INTEGER NOT NULL,
	mean            DOUBLE NOT NULL,
	stddev          DOUBLE NOT NULL,
	variance        DOUBLE NOT NULL,
	confidence_low  DOUBLE NOT NULL,
	confidence_high DOUBLE NOT NULL,
	elapsed_ms      INTEGER NOT NULL,
	created_at      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS trial_results (
	run_id   TEXT NOT NULL,
	idx      INTEGER NOT NULL,
	fraction DOUBLE NOT NULL,
	PRIMARY KEY (run_id, idx),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// DB wraps the SQLite handle.
type DB struct {
	*sql.DB
}

// Run is one recorded simulation run.
type Run struct {
	ID        string
	Seed      int64
	Workers   int
	Elapsed   time.Duration
	CreatedAt time.Time
	Summary   stats.Summary
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{db}, nil
}

// RecordRun stores the aggregator's summary and results under a new run id.
func (db *DB) RecordRun(ctx context.Context, agg *stats.Aggregator, seed int64, workers int, elapsed time.Duration) (string, error) {
	sum, err := agg.Summary()
	if err != nil {
		return "", err
	}
	id := uuid.NewString()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO runs
		(run_id, n, trials, seed, workers, mean, stddev, variance, confidence_low, confidence_high, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sum.N, sum.T, seed, workers, sum.Mean, sum.StdDev, sum.Variance,
		sum.ConfidenceLow, sum.ConfidenceHigh, elapsed.Milliseconds(),
		time.Now().UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO trial_results (run_id, idx, fraction) VALUES (?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for i, v := range agg.Results() {
		if _, err := stmt.ExecContext(ctx, id, i, v); err != nil {
			return "", fmt.Errorf("store: insert trial %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Runs returns up to limit runs, newest first. limit <= 0 means no limit.
func (db *DB) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx, `SELECT run_id, n, trials, seed, workers, mean, stddev, variance,
		confidence_low, confidence_high, elapsed_ms, created_at
		FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-trial fractions of a run in trial order.
// Returns ErrNotFound if the run does not exist.
func (db *DB) Results(ctx context.Context, id string) ([]float64, error) {
	var exists int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE run_id = ?", id).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rows, err := db.QueryContext(ctx, "SELECT fraction FROM trial_results WHERE run_id = ? ORDER BY idx", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var (
		r         Run
		elapsedMS int64
		created   string
	)
	err := s.Scan(&r.ID, &r.Summary.N, &r.Summary.T, &r.Seed, &r.Workers,
		&r.Summary.Mean, &r.Summary.StdDev, &r.Summary.Variance,
		&r.Summary.ConfidenceLow, &r.Summary.ConfidenceHigh, &elapsedMS, &created)
	if err != nil {
		return Run{}, err
	}
	r.Summary.Recorded = r.Summary.T
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	r.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("store: run %s created_at: %w", r.ID, err)
	}
	return r, nil
}
