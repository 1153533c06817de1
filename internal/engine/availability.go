package engine

import "github.com/servicegrid/match-cli/internal/model"

// availabilityScore is a hard 0/1 signal: an immediate-need job (high or
// urgent) requires the provider to be available on the posting day, since an
// unavailable provider cannot be booked right away. Other jobs accept any day
// the provider marks available. A missing availability map fails closed.
func availabilityScore(job *model.JobRequirement, p *model.Provider) float64 {
	if job.Urgency.Immediate() {
		if p.AvailableOn(model.WeekdayOf(job.PostedAt)) {
			return 1.0
		}
		return 0.0
	}
	if p.AvailableAnyDay() {
		return 1.0
	}
	return 0.0
}
