package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/servicegrid/match-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS match_runs (
	id            TEXT PRIMARY KEY,
	job_id        TEXT NOT NULL,
	strategy      TEXT NOT NULL,
	top_k         INTEGER NOT NULL,
	matches_found INTEGER NOT NULL,
	response      TEXT NOT NULL,
	duration_ms   INTEGER NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_match_runs_job_id ON match_runs(job_id);
CREATE INDEX IF NOT EXISTS idx_match_runs_created_at ON match_runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts a match-run record, assigning ID and CreatedAt when unset.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *model.MatchRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO match_runs (id, job_id, strategy, top_k, matches_found, response, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.JobID, run.Strategy, run.TopK, run.MatchesFound,
		run.Response, run.DurationMS, run.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert run %s", run.ID)
	}
	return nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*model.MatchRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, job_id, strategy, top_k, matches_found, response, duration_ms, created_at
		 FROM match_runs WHERE id = ?`,
		runID,
	)

	var run model.MatchRun
	err := row.Scan(
		&run.ID, &run.JobID, &run.Strategy, &run.TopK, &run.MatchesFound,
		&run.Response, &run.DurationMS, &run.CreatedAt,
	)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.Errorf("sqlite: run %s not found", runID)
		}
		return nil, eris.Wrapf(err, "sqlite: get run %s", runID)
	}
	return &run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.MatchRun, error) {
	query := `SELECT id, job_id, strategy, top_k, matches_found, response, duration_ms, created_at
	          FROM match_runs`
	var args []any

	if filter.JobID != "" {
		query += ` WHERE job_id = ?`
		args = append(args, filter.JobID)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.MatchRun
	for rows.Next() {
		var run model.MatchRun
		err := rows.Scan(
			&run.ID, &run.JobID, &run.Strategy, &run.TopK, &run.MatchesFound,
			&run.Response, &run.DurationMS, &run.CreatedAt,
		)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate runs")
	}
	return runs, nil
}
