package schedule

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func day(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := ParseDate(s, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: day(t, start), End: day(t, end)}
}

func TestValidate(t *testing.T) {
	january := iv(t, "2024-01-01", "2024-01-31")

	tests := []struct {
		name   string
		parent Interval
		child  Interval
		want   error
	}{
		{"contained", january, iv(t, "2024-01-05", "2024-01-10"), nil},
		{"same bounds", january, january, nil},
		{"starts before parent", january, iv(t, "2023-12-25", "2024-01-10"), ErrChildStartsBeforeParent},
		{"ends after parent", january, iv(t, "2024-01-20", "2024-02-02"), ErrChildEndsAfterParent},
		{"inverted with open parent", Interval{}, iv(t, "2024-02-10", "2024-02-01"), ErrInvertedRange},
		{"inverted wins over containment", january, iv(t, "2024-03-10", "2023-12-01"), ErrInvertedRange},
		{"start rule wins over end rule", january, iv(t, "2023-12-01", "2024-03-01"), ErrChildStartsBeforeParent},
		{"open child", january, Interval{}, nil},
		{"open parent start", Interval{End: day(t, "2024-01-31")}, iv(t, "1999-01-01", "2024-01-02"), nil},
		{"open parent end", Interval{Start: day(t, "2024-01-01")}, iv(t, "2024-01-01", "2030-01-01"), nil},
		{"child start only", january, Interval{Start: day(t, "2023-12-31")}, ErrChildStartsBeforeParent},
		{"child end only", january, Interval{End: day(t, "2024-02-01")}, ErrChildEndsAfterParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.parent, tt.child)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var v *ViolationError
			if !errors.As(err, &v) {
				t.Fatalf("expected *ViolationError, got %T", err)
			}
		})
	}
}

func TestValidateSameDayTimestamps(t *testing.T) {
	parent := Interval{Start: day(t, "2024-01-01T00:00:00")}
	child := Interval{Start: day(t, "2024-01-01T23:59:00")}

	if err := Validate(parent, child); err != nil {
		t.Fatalf("same calendar day must not violate: %v", err)
	}

	// Reverse: a parent starting late in the day still admits a child
	// starting at midnight of the same day.
	parent = Interval{Start: day(t, "2024-01-01T23:59:00")}
	child = Interval{Start: day(t, "2024-01-01T00:00:00")}
	if err := Validate(parent, child); err != nil {
		t.Fatalf("same calendar day must not violate: %v", err)
	}
}

func TestParseDateNormalisesToLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	got, err := ParseDate("2024-01-31T20:00:00Z", tokyo)
	if err != nil {
		t.Fatal(err)
	}
	want := civil.Date{Year: 2024, Month: time.February, Day: 1}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	got, err = ParseDate("2024-01-31", tokyo)
	if err != nil {
		t.Fatal(err)
	}
	if got != (civil.Date{Year: 2024, Month: time.January, Day: 31}) {
		t.Errorf("date-only input must not shift, got %s", got)
	}
}

func TestDefaultLocation(t *testing.T) {
	t.Cleanup(func() { SetDefaultLocation(nil) })

	SetDefaultLocation(nil)
	if DefaultLocation() != time.Local {
		t.Errorf("unset default = %v, want Local", DefaultLocation())
	}

	tokyo := time.FixedZone("JST", 9*60*60)
	SetDefaultLocation(tokyo)
	got, err := ParseDate("2024-01-31T20:00:00Z", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != (civil.Date{Year: 2024, Month: time.February, Day: 1}) {
		t.Errorf("nil location should use the default, got %s", got)
	}
}

func TestParseDateErrors(t *testing.T) {
	for _, s := range []string{"yesterday", "2024-13-01", "01/02/2024"} {
		if _, err := ParseDate(s, time.UTC); err == nil {
			t.Errorf("ParseDate(%q): expected error", s)
		}
	}
	d, err := ParseDate("   ", time.UTC)
	if err != nil || !d.IsZero() {
		t.Errorf("blank input should be an open bound, got %v, %v", d, err)
	}
}

func TestSeedEnd(t *testing.T) {
	start := day(t, "2024-01-31")
	if got := SeedEnd(start); got != day(t, "2024-02-01") {
		t.Errorf("SeedEnd = %s, want 2024-02-01", got)
	}
	if !SeedEnd(civil.Date{}).IsZero() {
		t.Error("SeedEnd of an open start must stay open")
	}
}

func TestSeededEndIsNotClamped(t *testing.T) {
	parent := iv(t, "2024-01-01", "2024-01-31")
	child := Seed(Interval{Start: day(t, "2024-01-31")})

	if child.End != day(t, "2024-02-01") {
		t.Fatalf("seeded end = %s, want 2024-02-01", child.End)
	}
	if err := Validate(parent, child); !errors.Is(err, ErrChildEndsAfterParent) {
		t.Fatalf("expected ErrChildEndsAfterParent, got %v", err)
	}
}

func TestValidateChildren(t *testing.T) {
	parent := iv(t, "2024-01-01", "2024-01-31")
	children := []Interval{
		iv(t, "2024-01-02", "2024-01-05"),
		iv(t, "2024-01-10", "2024-02-05"),
		iv(t, "2023-12-01", "2024-01-05"),
	}

	v := ValidateChildren(parent, children)
	if v == nil {
		t.Fatal("expected a violation")
	}
	if v.Index != 1 || !errors.Is(v.Err, ErrChildEndsAfterParent) {
		t.Errorf("got index %d err %v", v.Index, v.Err)
	}

	v = ValidateChildren(iv(t, "2024-02-01", "2024-01-01"), children)
	if v == nil || v.Index != -1 || !errors.Is(v.Err, ErrInvertedRange) {
		t.Errorf("inverted parent should be reported first, got %+v", v)
	}

	if v := ValidateChildren(parent, children[:1]); v != nil {
		t.Errorf("unexpected violation %+v", v)
	}
}

func TestIntervalDaysAndContains(t *testing.T) {
	january := iv(t, "2024-01-01", "2024-01-31")
	if got := january.Days(); got != 31 {
		t.Errorf("Days = %d, want 31", got)
	}
	if !january.Contains(day(t, "2024-01-31")) {
		t.Error("end day should be contained")
	}
	if january.Contains(day(t, "2024-02-01")) {
		t.Error("day after end should not be contained")
	}
	if (Interval{}).Days() != 0 {
		t.Error("open interval has no length")
	}
}

func TestDayJSON(t *testing.T) {
	var payload struct {
		Start Day `json:"start_date"`
		End   Day `json:"end_date"`
	}
	SetDefaultLocation(time.UTC)
	t.Cleanup(func() { SetDefaultLocation(nil) })

	if err := json.Unmarshal([]byte(`{"start_date":"2024-03-01T10:00:00Z","end_date":null}`), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Start.Date != day(t, "2024-03-01") {
		t.Errorf("start = %s", payload.Start)
	}
	if !payload.End.IsZero() {
		t.Errorf("end should be open, got %s", payload.End)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"start_date":"2024-03-01","end_date":null}` {
		t.Errorf("marshal = %s", out)
	}
}
