package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hrcore/competency/internal/schedule"
)

// AssessmentStatus is the lifecycle state of an assessment.
type AssessmentStatus string

const (
	AssessmentScheduled  AssessmentStatus = "scheduled"
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
)

// Assessment is one employee's assessment on a competency.
type Assessment struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeName   string           `json:"employee_name"`
	AssessorID     string           `json:"assessor_id,omitempty"`
	CompetencyID   string           `json:"competency_id"`
	CompetencyName string           `json:"competency_name"`
	TargetLevel    Level            `json:"target_level"`
	Status         AssessmentStatus `json:"status"`
	Score          *float64         `json:"score"`
	ScheduledFor   schedule.Day     `json:"scheduled_for"`
	QuestionIDs    []string         `json:"question_ids,omitempty"`
}

func (a Assessment) EntityID() string { return a.ID }

func (a Assessment) Field(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "title":
		return a.Title, true
	case "employee_id":
		return a.EmployeeID, true
	case "employee_name":
		return a.EmployeeName, true
	case "assessor_id":
		return a.AssessorID, true
	case "competency_id":
		return a.CompetencyID, true
	case "competency_name":
		return a.CompetencyName, true
	case "target_level":
		return string(a.TargetLevel), true
	case "status":
		return string(a.Status), true
	case "score":
		return optFloat(a.Score), true
	case "scheduled_for":
		return dayValue(a.ScheduledFor), true
	}
	return nil, false
}

// AssessmentDraft schedules a new assessment.
type AssessmentDraft struct {
	Title        string       `json:"title"`
	EmployeeID   string       `json:"employee_id"`
	AssessorID   string       `json:"assessor_id,omitempty"`
	CompetencyID string       `json:"competency_id"`
	TargetLevel  Level        `json:"target_level"`
	ScheduledFor schedule.Day `json:"scheduled_for"`
	QuestionIDs  []string     `json:"question_ids"`
}

func (d AssessmentDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("assessment title is required")
	}
	if d.EmployeeID == "" {
		return errors.New("employee is required")
	}
	if d.CompetencyID == "" {
		return errors.New("competency is required")
	}
	if !d.TargetLevel.Valid() {
		return fmt.Errorf("unknown level %q", d.TargetLevel)
	}
	if len(d.QuestionIDs) == 0 {
		return errors.New("an assessment needs at least one question")
	}
	return nil
}

// Assessor is a person qualified to assess some competencies.
type Assessor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Department    string   `json:"department"`
	CompetencyIDs []string `json:"competency_ids"`
}

func (a Assessor) EntityID() string { return a.ID }

func (a Assessor) Field(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	case "email":
		return a.Email, true
	case "department":
		return a.Department, true
	case "competencies":
		return len(a.CompetencyIDs), true
	}
	return nil, false
}

// Covers reports whether the assessor is assigned competencyID.
func (a Assessor) Covers(competencyID string) bool {
	for _, id := range a.CompetencyIDs {
		if id == competencyID {
			return true
		}
	}
	return false
}

// AssessorAssignment assigns or removes an assessor for a competency.
type AssessorAssignment struct {
	AssessorID   string `json:"assessor_id"`
	CompetencyID string `json:"competency_id"`
}
