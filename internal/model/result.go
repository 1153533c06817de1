package model

import "math"

// ComponentScores holds the five normalized [0,1] sub-scores computed for a
// single job/provider pair.
type ComponentScores struct {
	Skill        float64 `json:"skill_match"`
	Location     float64 `json:"location_score"`
	Budget       float64 `json:"budget_compatibility"`
	Availability float64 `json:"availability_score"`
	Quality      float64 `json:"quality_score"`
}

// MatchResult is the engine's internal output for one surviving candidate.
// MatchScore is a deterministic function of the component scores and the
// active weight profile.
type MatchResult struct {
	ProviderID  string          `json:"provider_id"`
	Components  ComponentScores `json:"components"`
	MatchScore  float64         `json:"match_score"`
	Explanation string          `json:"explanation"`
}

// Percent converts an internal [0,1] score to the externally visible 0-100
// percentage, rounded to one decimal place.
func Percent(v float64) float64 {
	return math.Round(v*1000) / 10
}
