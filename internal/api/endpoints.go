package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hrcore/competency/internal/domain"
)

func (c *Client) Competencies(ctx context.Context) ([]domain.Competency, error) {
	return list[domain.Competency](ctx, c, "competencies", "/competencies", nil)
}

// Questions lists the question bank, optionally for one competency.
func (c *Client) Questions(ctx context.Context, competencyID string) ([]domain.Question, error) {
	var q url.Values
	if competencyID != "" {
		q = url.Values{"competency_id": {competencyID}}
	}
	return list[domain.Question](ctx, c, "questions", "/questions", q)
}

func (c *Client) CreateQuestion(ctx context.Context, d domain.QuestionDraft) (domain.Question, error) {
	var out domain.Question
	err := c.send(ctx, http.MethodPost, "/questions", d, &out)
	return out, err
}

func (c *Client) UpdateQuestion(ctx context.Context, id string, d domain.QuestionDraft) (domain.Question, error) {
	var out domain.Question
	err := c.send(ctx, http.MethodPut, "/questions/"+url.PathEscape(id), d, &out)
	return out, err
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/questions/"+url.PathEscape(id), nil, nil)
}

// BulkDeleteResult reports a bulk delete. The server deletes what it can;
// Failed lists the rest.
type BulkDeleteResult struct {
	Deleted []string      `json:"deleted"`
	Failed  []BulkFailure `json:"failed"`
}

// BulkFailure is one ID the server refused to delete.
type BulkFailure struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (c *Client) DeleteQuestions(ctx context.Context, ids []string) (BulkDeleteResult, error) {
	var out BulkDeleteResult
	err := c.send(ctx, http.MethodPost, "/questions/bulk-delete", map[string][]string{"ids": ids}, &out)
	return out, err
}

func (c *Client) Assessments(ctx context.Context) ([]domain.Assessment, error) {
	return list[domain.Assessment](ctx, c, "assessments", "/assessments", nil)
}

func (c *Client) CreateAssessment(ctx context.Context, d domain.AssessmentDraft) (domain.Assessment, error) {
	var out domain.Assessment
	err := c.send(ctx, http.MethodPost, "/assessments", d, &out)
	return out, err
}

func (c *Client) Assessors(ctx context.Context) ([]domain.Assessor, error) {
	return list[domain.Assessor](ctx, c, "assessors", "/assessors", nil)
}

func (c *Client) AssignAssessor(ctx context.Context, a domain.AssessorAssignment) error {
	path := "/assessors/" + url.PathEscape(a.AssessorID) + "/competencies"
	return c.send(ctx, http.MethodPost, path, map[string]string{"competency_id": a.CompetencyID}, nil)
}

func (c *Client) RemoveAssessor(ctx context.Context, a domain.AssessorAssignment) error {
	path := "/assessors/" + url.PathEscape(a.AssessorID) + "/competencies/" + url.PathEscape(a.CompetencyID)
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) Employees(ctx context.Context) ([]domain.Employee, error) {
	return list[domain.Employee](ctx, c, "employees", "/employees", nil)
}

func (c *Client) Jobs(ctx context.Context) ([]domain.Job, error) {
	return list[domain.Job](ctx, c, "jobs", "/jobs", nil)
}

func (c *Client) Reviews(ctx context.Context) ([]domain.Review, error) {
	return list[domain.Review](ctx, c, "reviews", "/reviews", nil)
}

func (c *Client) Review(ctx context.Context, id string) (domain.Review, error) {
	var out domain.Review
	err := c.get(ctx, "/reviews/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) RequestReview(ctx context.Context, r domain.ReviewRequest) (domain.Review, error) {
	var out domain.Review
	err := c.send(ctx, http.MethodPost, "/reviews", r, &out)
	return out, err
}

func (c *Client) CompleteReview(ctx context.Context, id string, done domain.ReviewCompletion) (domain.Review, error) {
	var out domain.Review
	err := c.send(ctx, http.MethodPost, "/reviews/"+url.PathEscape(id)+"/complete", done, &out)
	return out, err
}

func (c *Client) Paths(ctx context.Context) ([]domain.DevelopmentPath, error) {
	return list[domain.DevelopmentPath](ctx, c, "paths", "/development-paths", nil)
}

func (c *Client) Path(ctx context.Context, id string) (domain.DevelopmentPath, error) {
	var out domain.DevelopmentPath
	err := c.get(ctx, "/development-paths/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreatePath(ctx context.Context, employeeID string, u domain.PathUpdate) (domain.DevelopmentPath, error) {
	body := struct {
		EmployeeID string `json:"employee_id"`
		domain.PathUpdate
	}{employeeID, u}
	var out domain.DevelopmentPath
	err := c.send(ctx, http.MethodPost, "/development-paths", body, &out)
	return out, err
}

func (c *Client) UpdatePath(ctx context.Context, id string, u domain.PathUpdate) (domain.DevelopmentPath, error) {
	var out domain.DevelopmentPath
	err := c.send(ctx, http.MethodPut, "/development-paths/"+url.PathEscape(id), u, &out)
	return out, err
}

// Interventions lists the interventions of one path.
func (c *Client) Interventions(ctx context.Context, pathID string) ([]domain.Intervention, error) {
	path := "/development-paths/" + url.PathEscape(pathID) + "/interventions"
	return list[domain.Intervention](ctx, c, "interventions", path, nil)
}

func (c *Client) CreateIntervention(ctx context.Context, d domain.InterventionDraft) (domain.Intervention, error) {
	var out domain.Intervention
	err := c.send(ctx, http.MethodPost, "/interventions", d, &out)
	return out, err
}

func (c *Client) UpdateIntervention(ctx context.Context, id string, d domain.InterventionDraft) (domain.Intervention, error) {
	var out domain.Intervention
	err := c.send(ctx, http.MethodPut, "/interventions/"+url.PathEscape(id), d, &out)
	return out, err
}

func (c *Client) DeleteIntervention(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/interventions/"+url.PathEscape(id), nil, nil)
}
