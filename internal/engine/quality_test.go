package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servicegrid/match-cli/internal/model"
)

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name      string
		rating    float64
		completed int
		respHours float64
		want      float64
	}{
		// 0.5*(4.5/5) + 0.3*(25/50) + 0.2*(1/3)
		{"established provider", 4.5, 25, 2, 0.45 + 0.15 + 0.2/3},
		// Volume saturates at 50 jobs.
		{"high volume saturates", 5.0, 200, 0, 0.5 + 0.3 + 0.2},
		// Cold start: unrated with no history gets neutral sub-scores.
		{"new provider neutral", 0, 0, 0, 0.25 + 0.15 + 0.2},
		// Slow responders decay toward zero responsiveness.
		{"slow responder", 4.0, 50, 24, 0.4 + 0.3 + 0.2/25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Provider{
				Rating:            tt.rating,
				CompletedJobs:     tt.completed,
				ResponseTimeHours: tt.respHours,
			}
			got := qualityScore(p)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestQualityScoreColdStartNotExcluded(t *testing.T) {
	// A brand-new provider must not be permanently locked out by a zero
	// volume score.
	fresh := qualityScore(&model.Provider{Rating: 0, CompletedJobs: 0, ResponseTimeHours: 1})
	assert.Greater(t, fresh, 0.3, "cold-start provider should score well above zero")

	veteran := qualityScore(&model.Provider{Rating: 5, CompletedJobs: 100, ResponseTimeHours: 1})
	assert.Greater(t, veteran, fresh, "track record should still beat cold start")
}

func TestQualityScoreRange(t *testing.T) {
	for _, p := range []*model.Provider{
		{},
		{Rating: 5, CompletedJobs: 1000, ResponseTimeHours: 0},
		{Rating: 0.1, CompletedJobs: 1, ResponseTimeHours: 100},
	} {
		got := qualityScore(p)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
