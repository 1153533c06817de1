package model

import "time"

// MatchRun is an audit record of one completed matching request.
type MatchRun struct {
	ID           string    `json:"id"`
	JobID        string    `json:"job_id"`
	Strategy     string    `json:"strategy"`
	TopK         int       `json:"top_k"`
	MatchesFound int       `json:"matches_found"`
	Response     string    `json:"response"` // MatchResponse JSON
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
