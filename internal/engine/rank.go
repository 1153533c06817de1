package engine

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/servicegrid/match-cli/internal/model"
)

// rank returns the top-K results sorted descending by match score. Ties break
// on higher quality score, then lower provider ID, so output order is fully
// deterministic. The input slice is not mutated.
func rank(results []model.MatchResult, topK int) ([]model.MatchResult, error) {
	if topK <= 0 {
		return nil, eris.Errorf("rank: top_k must be a positive integer, got %d", topK)
	}

	ranked := make([]model.MatchResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.Components.Quality != b.Components.Quality {
			return a.Components.Quality > b.Components.Quality
		}
		return a.ProviderID < b.ProviderID
	})

	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked, nil
}
