package engine

// SkillExpander maps a required skill to the set of provider skill tokens that
// satisfy it. It is the hook for synonym expansion; the default identity
// expander accepts only the skill itself.
type SkillExpander interface {
	Expand(skill string) []string
}

// identityExpander is the default SkillExpander: no synonyms.
type identityExpander struct{}

func (identityExpander) Expand(skill string) []string { return []string{skill} }

// skillMatch returns |R ∩ P| / |R| for the required set R and provider set P,
// or 1.0 when R is empty (no requirement to violate). Both sets are expected
// in normalized form (lowercase, trimmed).
func skillMatch(required, provided []string, expander SkillExpander) float64 {
	if len(required) == 0 {
		return 1.0
	}
	if expander == nil {
		expander = identityExpander{}
	}

	have := make(map[string]bool, len(provided))
	for _, s := range provided {
		have[s] = true
	}

	matched := 0
	for _, want := range required {
		for _, alt := range expander.Expand(want) {
			if have[alt] {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(required))
}
