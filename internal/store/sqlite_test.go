package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicegrid/match-cli/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := &model.MatchRun{
		JobID:        "job-001",
		Strategy:     "heuristic",
		TopK:         5,
		MatchesFound: 3,
		Response:     `{"job_id":"job-001","matches":[],"matches_found":3}`,
		DurationMS:   12,
	}
	require.NoError(t, s.SaveRun(ctx, run))
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.JobID, got.JobID)
	assert.Equal(t, run.Strategy, got.Strategy)
	assert.Equal(t, run.TopK, got.TopK)
	assert.Equal(t, run.MatchesFound, got.MatchesFound)
	assert.Equal(t, run.Response, got.Response)
	assert.Equal(t, run.DurationMS, got.DurationMS)
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRun(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		jobID := "job-a"
		if i%2 == 1 {
			jobID = "job-b"
		}
		run := &model.MatchRun{
			JobID:        jobID,
			Strategy:     "heuristic",
			TopK:         5,
			MatchesFound: i,
			Response:     `{}`,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.SaveRun(ctx, run))
	}

	t.Run("all runs, newest first", func(t *testing.T) {
		runs, err := s.ListRuns(ctx, RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 5)
		assert.Equal(t, 4, runs[0].MatchesFound)
		assert.Equal(t, 0, runs[4].MatchesFound)
	})

	t.Run("filter by job id", func(t *testing.T) {
		runs, err := s.ListRuns(ctx, RunFilter{JobID: "job-b"})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		for _, run := range runs {
			assert.Equal(t, "job-b", run.JobID)
		}
	})

	t.Run("limit and offset", func(t *testing.T) {
		runs, err := s.ListRuns(ctx, RunFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 4, runs[0].MatchesFound)

		next, err := s.ListRuns(ctx, RunFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, next, 2)
		assert.Equal(t, 2, next[0].MatchesFound)
	})

	t.Run("empty store", func(t *testing.T) {
		empty := newTestStore(t)
		runs, err := empty.ListRuns(ctx, RunFilter{})
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
