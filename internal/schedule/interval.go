// Package schedule validates the date ranges of development paths and the
// interventions scheduled inside them.
//
// All comparisons happen on calendar days (civil.Date). Callers holding
// timestamps convert them with DayOf or ParseDate first, so two instants on
// the same local day always compare equal.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// Interval is a (start, end) pair of calendar days. A zero bound is open:
// the entity is not yet scheduled on that side.
type Interval struct {
	Start civil.Date `json:"start_date"`
	End   civil.Date `json:"end_date"`
}

// HasStart reports whether the start bound is set.
func (iv Interval) HasStart() bool { return !iv.Start.IsZero() }

// HasEnd reports whether the end bound is set.
func (iv Interval) HasEnd() bool { return !iv.End.IsZero() }

// Contains reports whether d lies within the interval, treating open bounds
// as unbounded.
func (iv Interval) Contains(d civil.Date) bool {
	if iv.HasStart() && d.Before(iv.Start) {
		return false
	}
	if iv.HasEnd() && d.After(iv.End) {
		return false
	}
	return true
}

// Days returns the inclusive length of the interval in days, or 0 when either
// bound is open or the range is inverted.
func (iv Interval) Days() int {
	if !iv.HasStart() || !iv.HasEnd() || iv.End.Before(iv.Start) {
		return 0
	}
	return iv.End.DaysSince(iv.Start) + 1
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s → %s", FormatDate(iv.Start), FormatDate(iv.End))
}

// MarshalJSON writes open bounds as null.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start *civil.Date `json:"start_date"`
		End   *civil.Date `json:"end_date"`
	}{optional(iv.Start), optional(iv.End)})
}

func optional(d civil.Date) *civil.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}

// Rule names a containment or ordering rule.
type Rule string

const (
	RuleInvertedRange           Rule = "inverted_range"
	RuleChildStartsBeforeParent Rule = "child_starts_before_parent"
	RuleChildEndsAfterParent    Rule = "child_ends_after_parent"
)

var (
	ErrInvertedRange           = errors.New("start date is after end date")
	ErrChildStartsBeforeParent = errors.New("starts before the development path")
	ErrChildEndsAfterParent    = errors.New("ends after the development path")
)

var ruleErrors = map[Rule]error{
	RuleInvertedRange:           ErrInvertedRange,
	RuleChildStartsBeforeParent: ErrChildStartsBeforeParent,
	RuleChildEndsAfterParent:    ErrChildEndsAfterParent,
}

// ViolationError reports the first rule an interval assignment broke.
type ViolationError struct {
	Rule   Rule
	Parent Interval
	Child  Interval
}

func (e *ViolationError) Error() string {
	switch e.Rule {
	case RuleInvertedRange:
		return fmt.Sprintf("invalid range: start %s is after end %s",
			FormatDate(e.Child.Start), FormatDate(e.Child.End))
	case RuleChildStartsBeforeParent:
		return fmt.Sprintf("start %s is before the path start %s",
			FormatDate(e.Child.Start), FormatDate(e.Parent.Start))
	case RuleChildEndsAfterParent:
		return fmt.Sprintf("end %s is after the path end %s",
			FormatDate(e.Child.End), FormatDate(e.Parent.End))
	}
	return string(e.Rule)
}

func (e *ViolationError) Unwrap() error { return ruleErrors[e.Rule] }

// Validate checks child against parent. The first failing rule is returned,
// in this order: inverted child range, child start before parent start,
// child end after parent end. Open bounds on either side never fail.
func Validate(parent, child Interval) error {
	if child.HasStart() && child.HasEnd() && child.Start.After(child.End) {
		return &ViolationError{Rule: RuleInvertedRange, Parent: parent, Child: child}
	}
	if parent.HasStart() && child.HasStart() && child.Start.Before(parent.Start) {
		return &ViolationError{Rule: RuleChildStartsBeforeParent, Parent: parent, Child: child}
	}
	if parent.HasEnd() && child.HasEnd() && child.End.After(parent.End) {
		return &ViolationError{Rule: RuleChildEndsAfterParent, Parent: parent, Child: child}
	}
	return nil
}

// ValidatePath checks a path's own range.
func ValidatePath(path Interval) error {
	return Validate(Interval{}, path)
}

// ChildViolation ties a violation to the child that caused it.
type ChildViolation struct {
	Index int
	Err   error
}

// ValidateChildren re-checks every child after the parent range changes.
// It validates the parent itself first (reported with Index -1), then returns
// the first child violation in slice order.
func ValidateChildren(parent Interval, children []Interval) *ChildViolation {
	if err := ValidatePath(parent); err != nil {
		return &ChildViolation{Index: -1, Err: err}
	}
	for i, c := range children {
		if err := Validate(parent, c); err != nil {
			return &ChildViolation{Index: i, Err: err}
		}
	}
	return nil
}

// SeedEnd returns the default end for a new child whose start is set:
// the following day. The seed is not clamped to any parent; run Validate on
// the result.
func SeedEnd(start civil.Date) civil.Date {
	if start.IsZero() {
		return civil.Date{}
	}
	return start.AddDays(1)
}

// Seed fills in a missing end on child using SeedEnd.
func Seed(child Interval) Interval {
	if child.HasStart() && !child.HasEnd() {
		child.End = SeedEnd(child.Start)
	}
	return child
}
