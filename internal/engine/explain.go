package engine

import (
	"strings"

	"github.com/servicegrid/match-cli/internal/model"
)

// Thresholds for calling a component score out in the explanation.
const (
	strongThreshold = 0.8
	weakThreshold   = 0.3
)

// signal pairs a component score with its human-readable phrases.
type signal struct {
	score  float64
	strong string
	weak   string
}

// explain renders a short deterministic justification from the component
// scores: the one or two dominant factors, and the weakest factor when it
// falls below the weak threshold.
func explain(c model.ComponentScores) string {
	// Fixed order doubles as the tie-break so equal scores always produce
	// the same sentence.
	signals := []signal{
		{c.Skill, "strong skill match", "few matching skills"},
		{c.Location, "nearby location", "outside service area"},
		{c.Budget, "rate fits the budget", "budget mismatch"},
		{c.Availability, "available when needed", "limited availability"},
		{c.Quality, "excellent track record", "unproven track record"},
	}

	var strongs []string
	for _, s := range signals {
		if s.score >= strongThreshold {
			strongs = append(strongs, s.strong)
		}
	}

	// Weakest sub-threshold component, first in fixed order on ties.
	weak := ""
	weakScore := 0.0
	for _, s := range signals {
		if s.score <= weakThreshold && (weak == "" || s.score < weakScore) {
			weak = s.weak
			weakScore = s.score
		}
	}

	switch {
	case len(strongs) >= 2 && weak == "":
		return capitalize(strongs[0] + " and " + strongs[1])
	case len(strongs) >= 1 && weak != "":
		return capitalize(strongs[0] + " but " + weak)
	case len(strongs) >= 1:
		return capitalize(strongs[0])
	case weak != "":
		return capitalize(weak)
	default:
		return "Balanced fit across all factors"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
