package engine

import (
	"github.com/rotisserie/eris"

	"github.com/servicegrid/match-cli/internal/model"
)

// Strategy computes the five component scores for one job/provider pair.
// Implementations must be deterministic and safe for concurrent use.
type Strategy interface {
	Name() string
	Score(job *model.JobRequirement, p *model.Provider) model.ComponentScores
}

// HeuristicStrategy is the deterministic rule-based scoring strategy. It is
// the only strategy shipped; the interface exists so alternative scorers can
// be selected explicitly by configuration.
type HeuristicStrategy struct {
	expander SkillExpander
}

// NewHeuristicStrategy returns the default strategy. A nil expander disables
// synonym expansion.
func NewHeuristicStrategy(expander SkillExpander) *HeuristicStrategy {
	return &HeuristicStrategy{expander: expander}
}

func (s *HeuristicStrategy) Name() string { return "heuristic" }

func (s *HeuristicStrategy) Score(job *model.JobRequirement, p *model.Provider) model.ComponentScores {
	return model.ComponentScores{
		Skill:        skillMatch(job.Skills, p.Skills, s.expander),
		Location:     locationScore(job, p),
		Budget:       budgetScore(job.BudgetMin, job.BudgetMax, p.HourlyRate),
		Availability: availabilityScore(job, p),
		Quality:      qualityScore(p),
	}
}

// ResolveStrategy maps a configured strategy name to an implementation.
// Unknown names fail at startup, not per call.
func ResolveStrategy(name string) (Strategy, error) {
	switch name {
	case "", "heuristic":
		return NewHeuristicStrategy(nil), nil
	}
	return nil, eris.Errorf("engine: unknown strategy %q", name)
}
