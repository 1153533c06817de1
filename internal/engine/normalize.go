package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/servicegrid/match-cli/internal/model"
)

// skillRequiredCategories lists job categories that make no sense without at
// least one required skill tag. A job in one of these categories with an empty
// skill set fails validation.
var skillRequiredCategories = map[string]bool{
	"electrical":  true,
	"plumbing":    true,
	"carpentry":   true,
	"hvac":        true,
	"roofing":     true,
	"landscaping": true,
	"painting":    true,
	"cleaning":    true,
}

// NormalizeJob converts a raw job record into its canonical form, or returns a
// single validation error naming every offending field.
func NormalizeJob(raw model.JobInput) (*model.JobRequirement, error) {
	var errs []string

	if strings.TrimSpace(raw.ID) == "" {
		errs = append(errs, "id is required")
	}
	if raw.BudgetMin < 0 {
		errs = append(errs, "budget_min must be >= 0")
	}
	if raw.BudgetMax < 0 {
		errs = append(errs, "budget_max must be >= 0")
	}
	if raw.BudgetMin > raw.BudgetMax {
		errs = append(errs, fmt.Sprintf("budget_min %g exceeds budget_max %g", raw.BudgetMin, raw.BudgetMax))
	}

	loc, ok := normalizeLocation(raw.Location)
	if !ok {
		errs = append(errs, "location must be a [lat, lng] pair within valid ranges")
	}

	urgency, err := model.ParseUrgency(raw.Urgency)
	if err != nil {
		errs = append(errs, fmt.Sprintf("urgency %q is not one of low/medium/high/urgent", raw.Urgency))
	}

	category := strings.ToLower(strings.TrimSpace(raw.Category))
	skills := normalizeSkills(raw.Skills)
	if len(skills) == 0 && skillRequiredCategories[category] {
		errs = append(errs, fmt.Sprintf("skills must not be empty for category %q", category))
	}

	if len(errs) > 0 {
		return nil, eris.Errorf("normalize: invalid job: %s", strings.Join(errs, "; "))
	}

	postedAt := raw.PostedAt
	if postedAt.IsZero() {
		postedAt = time.Now().UTC()
	}

	return &model.JobRequirement{
		ID:          strings.TrimSpace(raw.ID),
		Title:       strings.TrimSpace(raw.Title),
		Description: raw.Description,
		Category:    category,
		BudgetMin:   raw.BudgetMin,
		BudgetMax:   raw.BudgetMax,
		Location:    loc,
		Urgency:     urgency,
		Skills:      skills,
		PostedAt:    postedAt,
	}, nil
}

// NormalizeProvider converts a raw provider record into its canonical form.
// Provider anomalies are soft: a bad location or missing availability map
// degrades the affected component score instead of failing the batch.
func NormalizeProvider(raw model.ProviderInput) model.Provider {
	p := model.Provider{
		ID:                strings.TrimSpace(raw.ID),
		Name:              strings.TrimSpace(raw.Name),
		Category:          strings.ToLower(strings.TrimSpace(raw.Category)),
		Skills:            normalizeSkills(raw.Skills),
		Rating:            clamp(raw.Rating, 0, 5),
		CompletedJobs:     max(raw.CompletedJobs, 0),
		HourlyRate:        math.Max(0, raw.HourlyRate),
		ServiceRadiusKM:   raw.ServiceRadiusKM,
		Availability:      normalizeAvailability(raw.Availability),
		ResponseTimeHours: math.Max(0, raw.ResponseTimeHours),
		QualityScore:      clamp(raw.QualityScore, 0, 1),
	}

	if loc, ok := normalizeLocation(raw.Location); ok {
		p.Location = &loc
	}

	return p
}

// normalizeLocation converts a wire [lat, lng] pair into a geom.Coord in
// go-geom's [lng, lat] order. Returns ok=false for missing or out-of-range
// coordinates.
func normalizeLocation(pair []float64) (geom.Coord, bool) {
	if len(pair) != 2 {
		return nil, false
	}
	lat, lng := pair[0], pair[1]
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, false
	}
	return geom.Coord{lng, lat}, true
}

// normalizeSkills lowercases, trims, and de-duplicates a skill list, dropping
// empty entries. The result is sorted for deterministic comparison and output.
func normalizeSkills(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// normalizeAvailability converts raw day tokens into canonical weekdays.
// Unknown tokens are dropped; a nil map fails closed (unavailable every day).
func normalizeAvailability(raw map[string]bool) map[model.Weekday]bool {
	out := make(map[model.Weekday]bool, len(raw))
	for token, available := range raw {
		day, err := model.ParseWeekday(token)
		if err != nil {
			continue
		}
		// Never let an alias collision flip an explicit true to false.
		out[day] = out[day] || available
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
