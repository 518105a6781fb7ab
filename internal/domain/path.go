package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hrcore/competency/internal/schedule"
)

// PathStatus is the state of a development path.
type PathStatus string

const (
	PathDraft     PathStatus = "draft"
	PathActive    PathStatus = "active"
	PathCompleted PathStatus = "completed"
)

// DevelopmentPath is an individual development plan for one employee. Its
// dates bound the dates of its interventions.
type DevelopmentPath struct {
	ID           string       `json:"id"`
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       PathStatus   `json:"status"`
	StartDate    schedule.Day `json:"start_date"`
	EndDate      schedule.Day `json:"end_date"`
}

func (p DevelopmentPath) EntityID() string { return p.ID }

func (p DevelopmentPath) Interval() schedule.Interval {
	return schedule.Interval{Start: p.StartDate.Date, End: p.EndDate.Date}
}

func (p DevelopmentPath) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "employee_id":
		return p.EmployeeID, true
	case "employee_name":
		return p.EmployeeName, true
	case "title":
		return p.Title, true
	case "description":
		return p.Description, true
	case "status":
		return string(p.Status), true
	case "start_date":
		return dayValue(p.StartDate), true
	case "end_date":
		return dayValue(p.EndDate), true
	}
	return nil, false
}

// PathUpdate replaces a path's editable fields.
type PathUpdate struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      PathStatus   `json:"status"`
	StartDate   schedule.Day `json:"start_date"`
	EndDate     schedule.Day `json:"end_date"`
}

// UpdateOf returns an update that leaves p unchanged.
func UpdateOf(p DevelopmentPath) PathUpdate {
	return PathUpdate{
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

func (u PathUpdate) Interval() schedule.Interval {
	return schedule.Interval{Start: u.StartDate.Date, End: u.EndDate.Date}
}

func (u PathUpdate) Validate() error {
	if strings.TrimSpace(u.Title) == "" {
		return errors.New("path title is required")
	}
	switch u.Status {
	case PathDraft, PathActive, PathCompleted:
	default:
		return fmt.Errorf("unknown path status %q", u.Status)
	}
	return schedule.ValidatePath(u.Interval())
}

// InterventionType classifies a development activity.
type InterventionType string

const (
	InterventionTraining  InterventionType = "training"
	InterventionCourse    InterventionType = "course"
	InterventionMentoring InterventionType = "mentoring"
	InterventionProject   InterventionType = "project"
	InterventionReading   InterventionType = "reading"
	InterventionCoaching  InterventionType = "coaching"
)

// InterventionTypes lists the known types.
var InterventionTypes = []InterventionType{
	InterventionTraining,
	InterventionCourse,
	InterventionMentoring,
	InterventionProject,
	InterventionReading,
	InterventionCoaching,
}

func (t InterventionType) Valid() bool {
	for _, v := range InterventionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// InterventionStatus is the progress of an intervention.
type InterventionStatus string

const (
	InterventionPlanned    InterventionStatus = "planned"
	InterventionInProgress InterventionStatus = "in_progress"
	InterventionDone       InterventionStatus = "completed"
	InterventionCancelled  InterventionStatus = "cancelled"
)

// Intervention is a scheduled development activity inside a path.
type Intervention struct {
	ID        string             `json:"id"`
	PathID    string             `json:"path_id"`
	Title     string             `json:"title"`
	Type      InterventionType   `json:"type"`
	Status    InterventionStatus `json:"status"`
	Provider  string             `json:"provider,omitempty"`
	StartDate schedule.Day       `json:"start_date"`
	EndDate   schedule.Day       `json:"end_date"`
	Notes     string             `json:"notes,omitempty"`
}

func (i Intervention) EntityID() string { return i.ID }

func (i Intervention) Interval() schedule.Interval {
	return schedule.Interval{Start: i.StartDate.Date, End: i.EndDate.Date}
}

func (i Intervention) Field(name string) (any, bool) {
	switch name {
	case "id":
		return i.ID, true
	case "path_id":
		return i.PathID, true
	case "title":
		return i.Title, true
	case "type":
		return string(i.Type), true
	case "status":
		return string(i.Status), true
	case "provider":
		return i.Provider, true
	case "start_date":
		return dayValue(i.StartDate), true
	case "end_date":
		return dayValue(i.EndDate), true
	case "notes":
		return i.Notes, true
	}
	return nil, false
}

// InterventionDraft creates or replaces an intervention.
type InterventionDraft struct {
	PathID    string             `json:"path_id"`
	Title     string             `json:"title"`
	Type      InterventionType   `json:"type"`
	Status    InterventionStatus `json:"status,omitempty"`
	Provider  string             `json:"provider,omitempty"`
	StartDate schedule.Day       `json:"start_date"`
	EndDate   schedule.Day       `json:"end_date"`
	Notes     string             `json:"notes,omitempty"`
}

// DraftOf returns a draft that leaves i unchanged.
func DraftOf(i Intervention) InterventionDraft {
	return InterventionDraft{
		PathID:    i.PathID,
		Title:     i.Title,
		Type:      i.Type,
		Status:    i.Status,
		Provider:  i.Provider,
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
		Notes:     i.Notes,
	}
}

func (d InterventionDraft) Interval() schedule.Interval {
	return schedule.Interval{Start: d.StartDate.Date, End: d.EndDate.Date}
}

// Seeded fills a missing end date with the day after the start.
func (d InterventionDraft) Seeded() InterventionDraft {
	iv := schedule.Seed(d.Interval())
	d.EndDate = schedule.NewDay(iv.End)
	return d
}

// Validate checks the draft's own fields. Containment in the path is
// checked against the path by the caller.
func (d InterventionDraft) Validate() error {
	if strings.TrimSpace(d.PathID) == "" {
		return errors.New("path is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("intervention title is required")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown intervention type %q", d.Type)
	}
	return nil
}

// PathDetails is a path with its interventions.
type PathDetails struct {
	Path          DevelopmentPath
	Interventions []Intervention
}

// Conflicts returns the interventions whose dates fall outside the path,
// each paired with its violation.
func (d PathDetails) Conflicts() []Conflict {
	var out []Conflict
	parent := d.Path.Interval()
	for _, iv := range d.Interventions {
		if err := schedule.Validate(parent, iv.Interval()); err != nil {
			out = append(out, Conflict{Intervention: iv, Err: err})
		}
	}
	return out
}

// Conflict is an intervention that violates its path's dates.
type Conflict struct {
	Intervention Intervention
	Err          error
}
