// Package valueobject contains immutable value types shared across the domain.
package valueobject

import (
	"strings"
	"time"
)

// Period is a symbolic reporting window resolved relative to "now".
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// DefaultPeriod is used when the caller does not name one.
const DefaultPeriod = PeriodWeek

// IsValid reports whether p is one of the supported periods.
func (p Period) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// ParsePeriod converts user input into a Period. Empty input yields DefaultPeriod.
func ParsePeriod(raw string) (Period, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultPeriod, true
	}
	p := Period(raw)
	return p, p.IsValid()
}

// DateRange is an inclusive interval of instants.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Location returns the time zone the range was resolved in.
func (r DateRange) Location() *time.Location {
	return r.Start.Location()
}

// PeriodWindows holds the current window and the one immediately before it.
type PeriodWindows struct {
	Current  DateRange `json:"current"`
	Previous DateRange `json:"previous"`
}
