package model

import "time"

// JobInput is the loosely-typed wire form of a job requirement as supplied by
// the calling layer. The engine's normalizer converts it into a JobRequirement
// or rejects it with a validation error.
type JobInput struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	BudgetMin   float64   `json:"budget_min"`
	BudgetMax   float64   `json:"budget_max"`
	Location    []float64 `json:"location"` // [lat, lng]
	Urgency     string    `json:"urgency"`
	Skills      []string  `json:"skills"`
	PostedAt    time.Time `json:"posted_at,omitzero"`
}

// ProviderInput is the loosely-typed wire form of a candidate provider.
// Missing skills default to an empty set; a missing availability map defaults
// to unavailable every day; a malformed location only disables geo scoring.
type ProviderInput struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Skills            []string        `json:"skills"`
	Location          []float64       `json:"location"` // [lat, lng]
	Rating            float64         `json:"rating"`
	CompletedJobs     int             `json:"completed_jobs"`
	HourlyRate        float64         `json:"hourly_rate"`
	ServiceRadiusKM   float64         `json:"service_radius_km"`
	Availability      map[string]bool `json:"availability"`
	ResponseTimeHours float64         `json:"response_time_hours"`
	QualityScore      float64         `json:"quality_score"`
}

// MatchRequest is the top-level engine input.
type MatchRequest struct {
	Job       JobInput        `json:"job"`
	Providers []ProviderInput `json:"providers"`
	TopK      *int            `json:"top_k,omitempty"`
	Weights   *Weights        `json:"weights,omitempty"`
}

// Match is one ranked entry in a MatchResponse. All scores are percentages
// (0-100) rounded to one decimal place.
type Match struct {
	ProviderID          string  `json:"provider_id"`
	MatchScore          float64 `json:"match_score"`
	SkillMatch          float64 `json:"skill_match"`
	LocationScore       float64 `json:"location_score"`
	BudgetCompatibility float64 `json:"budget_compatibility"`
	AvailabilityScore   float64 `json:"availability_score"`
	QualityScore        float64 `json:"quality_score"`
	Explanation         string  `json:"explanation"`
}

// MatchResponse is the top-level engine output.
type MatchResponse struct {
	JobID        string  `json:"job_id"`
	Matches      []Match `json:"matches"`
	MatchesFound int     `json:"matches_found"`
}
