package model

import "github.com/twpayne/go-geom"

// Provider is the canonical snapshot of a candidate service provider supplied
// per matching call. The engine never mutates provider state.
type Provider struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"` // normalized: lowercase, trimmed, de-duplicated

	// Location is nil when the raw record had a missing or out-of-range
	// coordinate pair. A nil location makes the provider geographically
	// unscoreable (location score 0) but never fails the batch.
	Location *geom.Coord `json:"location,omitempty"` // [lng, lat]

	Rating            float64          `json:"rating"`         // 0.0-5.0, 0 = no reviews yet
	CompletedJobs     int              `json:"completed_jobs"` // non-negative
	HourlyRate        float64          `json:"hourly_rate"`
	ServiceRadiusKM   float64          `json:"service_radius_km"`
	Availability      map[Weekday]bool `json:"availability"`
	ResponseTimeHours float64          `json:"response_time_hours"`
	QualityScore      float64          `json:"quality_score"` // 0.0-1.0 composite, distinct from rating
}

// AvailableOn reports whether the provider is marked available on the given day.
// A missing availability map fails closed.
func (p *Provider) AvailableOn(day Weekday) bool {
	return p.Availability[day]
}

// AvailableAnyDay reports whether the provider has at least one available day.
func (p *Provider) AvailableAnyDay() bool {
	for _, ok := range p.Availability {
		if ok {
			return true
		}
	}
	return false
}
