// Package store persists match-run history for audit and reproducibility.
package store

import (
	"context"

	"github.com/servicegrid/match-cli/internal/model"
)

// RunFilter specifies criteria for listing match runs.
type RunFilter struct {
	JobID  string `json:"job_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for match-run history.
type Store interface {
	SaveRun(ctx context.Context, run *model.MatchRun) error
	GetRun(ctx context.Context, runID string) (*model.MatchRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.MatchRun, error)

	Migrate(ctx context.Context) error
	Close() error
}
