// Package model defines the typed records exchanged with the matching engine.
package model

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// Urgency describes how quickly a job needs to be staffed.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// Immediate reports whether the urgency demands same-day availability.
func (u Urgency) Immediate() bool {
	return u == UrgencyHigh || u == UrgencyUrgent
}

// ParseUrgency converts a raw urgency token into an Urgency value.
func ParseUrgency(s string) (Urgency, error) {
	switch Urgency(strings.ToLower(strings.TrimSpace(s))) {
	case UrgencyLow:
		return UrgencyLow, nil
	case UrgencyMedium:
		return UrgencyMedium, nil
	case UrgencyHigh:
		return UrgencyHigh, nil
	case UrgencyUrgent:
		return UrgencyUrgent, nil
	}
	return "", eris.Errorf("model: unknown urgency %q", s)
}

// Weekday is a lowercase day-of-week token used in availability maps.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// weekdayAliases maps short and mixed-case tokens to canonical weekdays.
var weekdayAliases = map[string]Weekday{
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
	"sun": Sunday, "sunday": Sunday,
}

// ParseWeekday normalizes a raw day token. Unknown tokens return an error so
// callers can decide whether to ignore or reject them.
func ParseWeekday(s string) (Weekday, error) {
	if d, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", eris.Errorf("model: unknown weekday %q", s)
}

// WeekdayOf maps a timestamp to its canonical weekday token.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// JobRequirement is the canonical, validated form of a posted service request.
// It is immutable once scoring begins.
type JobRequirement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	BudgetMin   float64    `json:"budget_min"`
	BudgetMax   float64    `json:"budget_max"`
	Location    geom.Coord `json:"location"` // [lng, lat]
	Urgency     Urgency    `json:"urgency"`
	Skills      []string   `json:"skills"` // normalized: lowercase, trimmed, de-duplicated
	PostedAt    time.Time  `json:"posted_at"`
}
