package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrcore/competency/internal/schedule"
)

// ReviewStatus is the lifecycle state of a performance review.
type ReviewStatus string

const (
	ReviewRequested  ReviewStatus = "requested"
	ReviewInProgress ReviewStatus = "in_progress"
	ReviewCompleted  ReviewStatus = "completed"
)

// ErrReviewClosed is returned when completing a review that is already
// completed.
var ErrReviewClosed = errors.New("review already completed")

// Review is a performance review of an employee by a reviewer.
type Review struct {
	ID           string       `json:"id"`
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	ReviewerID   string       `json:"reviewer_id"`
	ReviewerName string       `json:"reviewer_name"`
	Period       string       `json:"period"`
	Status       ReviewStatus `json:"status"`
	DueDate      schedule.Day `json:"due_date"`
	RequestedAt  time.Time    `json:"requested_at"`
	CompletedAt  *time.Time   `json:"completed_at"`
	Rating       *int         `json:"rating"`
	Comments     string       `json:"comments,omitempty"`
}

func (r Review) EntityID() string { return r.ID }

func (r Review) Field(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "employee_id":
		return r.EmployeeID, true
	case "employee_name":
		return r.EmployeeName, true
	case "reviewer_id":
		return r.ReviewerID, true
	case "reviewer_name":
		return r.ReviewerName, true
	case "period":
		return r.Period, true
	case "status":
		return string(r.Status), true
	case "due_date":
		return dayValue(r.DueDate), true
	case "requested_at":
		return timeValue(r.RequestedAt), true
	case "completed_at":
		return optTime(r.CompletedAt), true
	case "rating":
		return optInt(r.Rating), true
	}
	return nil, false
}

// Overdue reports whether an open review is past its due date on day today.
func (r Review) Overdue(today schedule.Day) bool {
	if r.Status == ReviewCompleted || r.DueDate.IsZero() {
		return false
	}
	return r.DueDate.Before(today.Date)
}

// ReviewRequest asks a reviewer to review an employee.
type ReviewRequest struct {
	EmployeeID string       `json:"employee_id"`
	ReviewerID string       `json:"reviewer_id"`
	Period     string       `json:"period"`
	DueDate    schedule.Day `json:"due_date"`
}

func (r ReviewRequest) Validate() error {
	if strings.TrimSpace(r.EmployeeID) == "" {
		return errors.New("employee is required")
	}
	if strings.TrimSpace(r.ReviewerID) == "" {
		return errors.New("reviewer is required")
	}
	if r.EmployeeID == r.ReviewerID {
		return errors.New("an employee cannot review themselves")
	}
	if strings.TrimSpace(r.Period) == "" {
		return errors.New("review period is required")
	}
	return nil
}

// MinRating and MaxRating bound a review rating.
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewCompletion closes a review with a rating.
type ReviewCompletion struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// Validate checks the completion against the review it closes.
func (c ReviewCompletion) Validate(r Review) error {
	if r.Status == ReviewCompleted {
		return ErrReviewClosed
	}
	if c.Rating < MinRating || c.Rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}
