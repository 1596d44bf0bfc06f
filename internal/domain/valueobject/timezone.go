package valueobject

import (
	"strings"
	"time"

	// Embedded zone database so IANA names resolve on hosts without zoneinfo.
	_ "time/tzdata"
)

// ParseTimeZone resolves an IANA zone name such as "Asia/Jakarta".
// Empty input yields nil, meaning the caller keeps its clock's zone.
func ParseTimeZone(raw string) (*time.Location, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// InZone returns t in loc, or t unchanged when loc is nil.
func InZone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
