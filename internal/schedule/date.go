package schedule

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
)

var defaultLocation atomic.Pointer[time.Location]

// SetDefaultLocation sets the timezone used when callers pass a nil location,
// which is how Day decodes payload timestamps. Call it once at startup, before
// any payload is decoded; code holding a location passes it explicitly.
func SetDefaultLocation(loc *time.Location) {
	defaultLocation.Store(loc)
}

// DefaultLocation returns the timezone set by SetDefaultLocation, or
// time.Local when none was set.
func DefaultLocation() *time.Location {
	if loc := defaultLocation.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// timestampLayouts are the accepted non-date-only layouts, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDate parses an ISO-8601 date or timestamp and returns its calendar day
// in loc. Timestamps carrying an offset are converted into loc first;
// timestamps without one are read as wall-clock time in loc. An empty string
// yields the zero Date (an open bound).
func ParseDate(s string, loc *time.Location) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Date{}, nil
	}
	if loc == nil {
		loc = DefaultLocation()
	}
	if len(s) == len("2006-01-02") {
		d, err := civil.ParseDate(s)
		if err != nil {
			return civil.Date{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		return d, nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return DayOf(t, loc), nil
		}
	}
	return civil.Date{}, fmt.Errorf("parse date %q: unrecognised format", s)
}

// DayOf returns the calendar day t falls on in loc.
func DayOf(t time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = DefaultLocation()
	}
	return civil.DateOf(t.In(loc))
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) civil.Date {
	return DayOf(time.Now(), loc)
}

// FormatDate renders d as YYYY-MM-DD. An open bound renders as a dash.
func FormatDate(d civil.Date) string {
	if d.IsZero() {
		return "—"
	}
	return d.String()
}
