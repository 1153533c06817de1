// Package engine implements deterministic multi-criteria matching of service
// jobs against candidate providers: normalization, five component scorers,
// weighted aggregation, top-K ranking, and explanation.
package engine

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/servicegrid/match-cli/internal/model"
)

const (
	defaultTopK        = 5
	defaultConcurrency = 8
)

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	Strategy    string
	Weights     model.Weights
	TopK        int
	Concurrency int
}

// Engine matches jobs against provider pools. It is stateless per call and
// safe for concurrent use; the weight profile is validated once at
// construction and never mutated.
type Engine struct {
	strategy    Strategy
	weights     model.Weights
	topK        int
	concurrency int
}

// New builds an Engine, resolving the scoring strategy and validating the
// weight profile up front.
func New(opts Options) (*Engine, error) {
	strategy, err := ResolveStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}

	weights := opts.Weights
	if weights == (model.Weights{}) {
		weights = model.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, eris.Wrap(err, "engine: invalid weight profile")
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Engine{
		strategy:    strategy,
		weights:     weights,
		topK:        topK,
		concurrency: concurrency,
	}, nil
}

// Strategy returns the name of the active scoring strategy.
func (e *Engine) Strategy() string { return e.strategy.Name() }

// Weights returns the active weight profile.
func (e *Engine) Weights() model.Weights { return e.weights }

// Match scores every candidate provider against the job and returns the
// ranked, explained top-K matches. The request is validated before any
// scoring begins; per-provider anomalies only degrade that provider's
// component scores. An empty candidate list is not an error.
func (e *Engine) Match(ctx context.Context, req model.MatchRequest) (*model.MatchResponse, error) {
	start := time.Now()

	job, err := NormalizeJob(req.Job)
	if err != nil {
		return nil, err
	}

	topK := e.topK
	if req.TopK != nil {
		if *req.TopK <= 0 {
			return nil, eris.Errorf("match: top_k must be a positive integer, got %d", *req.TopK)
		}
		topK = *req.TopK
	}

	weights := e.weights
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			return nil, eris.Wrap(err, "match: request weights")
		}
		weights = *req.Weights
	}

	providers := make([]model.Provider, len(req.Providers))
	for i, raw := range req.Providers {
		providers[i] = NormalizeProvider(raw)
	}

	// Each provider scores independently; results land in their own slot so
	// scheduling order cannot affect the outcome.
	results := make([]model.MatchResult, len(providers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range providers {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			components := e.strategy.Score(job, &providers[i])
			results[i] = model.MatchResult{
				ProviderID: providers[i].ID,
				Components: components,
				MatchScore: weights.Apply(components),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "match: score providers")
	}

	ranked, err := rank(results, topK)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Match, len(ranked))
	for i, r := range ranked {
		matches[i] = model.Match{
			ProviderID:          r.ProviderID,
			MatchScore:          model.Percent(r.MatchScore),
			SkillMatch:          model.Percent(r.Components.Skill),
			LocationScore:       model.Percent(r.Components.Location),
			BudgetCompatibility: model.Percent(r.Components.Budget),
			AvailabilityScore:   model.Percent(r.Components.Availability),
			QualityScore:        model.Percent(r.Components.Quality),
			Explanation:         explain(r.Components),
		}
	}

	zap.L().Info("engine: match complete",
		zap.String("job_id", job.ID),
		zap.Int("candidates", len(providers)),
		zap.Int("matches", len(matches)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &model.MatchResponse{
		JobID:        job.ID,
		Matches:      matches,
		MatchesFound: len(matches),
	}, nil
}
