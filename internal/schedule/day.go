package schedule

import (
	"bytes"
	"encoding/json"

	"cloud.google.com/go/civil"
)

// Day is a calendar day as carried in API payloads. It decodes null, dates
// and timestamps; timestamps are normalised to DefaultLocation(). The zero Day
// is an open bound and encodes as null.
type Day struct {
	civil.Date
}

// NewDay wraps d.
func NewDay(d civil.Date) Day { return Day{Date: d} }

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Date.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		d.Date = civil.Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s, nil)
	if err != nil {
		return err
	}
	d.Date = parsed
	return nil
}

func (d Day) String() string { return FormatDate(d.Date) }
