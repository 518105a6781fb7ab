package competency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrcore/competency/internal/api"
	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/config"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/view"
)

// ErrForbidden is returned when the session user may not run a mutation.
var ErrForbidden = errors.New("this action requires a manager or admin role")

// API is the part of the REST client the service uses.
type API interface {
	Competencies(ctx context.Context) ([]domain.Competency, error)
	Questions(ctx context.Context, competencyID string) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, d domain.QuestionDraft) (domain.Question, error)
	UpdateQuestion(ctx context.Context, id string, d domain.QuestionDraft) (domain.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
	DeleteQuestions(ctx context.Context, ids []string) (api.BulkDeleteResult, error)
	Assessments(ctx context.Context) ([]domain.Assessment, error)
	CreateAssessment(ctx context.Context, d domain.AssessmentDraft) (domain.Assessment, error)
	Assessors(ctx context.Context) ([]domain.Assessor, error)
	AssignAssessor(ctx context.Context, a domain.AssessorAssignment) error
	RemoveAssessor(ctx context.Context, a domain.AssessorAssignment) error
	Employees(ctx context.Context) ([]domain.Employee, error)
	Jobs(ctx context.Context) ([]domain.Job, error)
	Reviews(ctx context.Context) ([]domain.Review, error)
	Review(ctx context.Context, id string) (domain.Review, error)
	RequestReview(ctx context.Context, r domain.ReviewRequest) (domain.Review, error)
	CompleteReview(ctx context.Context, id string, c domain.ReviewCompletion) (domain.Review, error)
	Paths(ctx context.Context) ([]domain.DevelopmentPath, error)
	Path(ctx context.Context, id string) (domain.DevelopmentPath, error)
	CreatePath(ctx context.Context, employeeID string, u domain.PathUpdate) (domain.DevelopmentPath, error)
	UpdatePath(ctx context.Context, id string, u domain.PathUpdate) (domain.DevelopmentPath, error)
	Interventions(ctx context.Context, pathID string) ([]domain.Intervention, error)
	CreateIntervention(ctx context.Context, d domain.InterventionDraft) (domain.Intervention, error)
	UpdateIntervention(ctx context.Context, id string, d domain.InterventionDraft) (domain.Intervention, error)
	DeleteIntervention(ctx context.Context, id string) error
}

// Service exposes cached reads and invalidating mutations over the API.
type Service struct {
	api    API
	cache  *collection.Client
	user   config.User
	loc    *time.Location
	logger *slog.Logger
}

// NewService creates a service acting as user. loc is the location calendar
// days are taken in; nil uses schedule.DefaultLocation().
func NewService(a API, cache *collection.Client, user config.User, loc *time.Location, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{api: a, cache: cache, user: user, loc: loc, logger: logger}
}

// Cache returns the collection client the service reads through.
func (s *Service) Cache() *collection.Client { return s.cache }

// User returns the session user.
func (s *Service) User() config.User { return s.user }

// Today returns the current calendar day in the service's location.
func (s *Service) Today() schedule.Day {
	return schedule.NewDay(schedule.Today(s.loc))
}

// Location returns the location calendar days are taken in.
func (s *Service) Location() *time.Location {
	if s.loc == nil {
		return schedule.DefaultLocation()
	}
	return s.loc
}

// ParseDay reads a date or timestamp as a calendar day in the service's
// location.
func (s *Service) ParseDay(v string) (schedule.Day, error) {
	d, err := schedule.ParseDate(v, s.Location())
	if err != nil {
		return schedule.Day{}, err
	}
	return schedule.NewDay(d), nil
}

func (s *Service) requireManager() error {
	if !s.user.CanManage() {
		return ErrForbidden
	}
	return nil
}

// load is the blocking read used by one-shot callers.
func load[T view.Entity](ctx context.Context, s *Service, src Source[T]) (collection.Snapshot[T], error) {
	return collection.Fetch(ctx, s.cache, src.Key, src.Fetch)
}

// mutate runs fn through the cache so a success invalidates keys.
func mutate[R any](ctx context.Context, s *Service, what string, fn func(context.Context) (R, error), keys ...collection.Key) (R, error) {
	r, err := collection.Mutate(ctx, s.cache, fn, keys...)
	if err != nil {
		s.logger.Warn("mutation failed", "action", what, "error", err)
		return r, fmt.Errorf("%s: %w", what, err)
	}
	s.logger.Info("mutation applied", "action", what, "invalidated", len(keys))
	return r, nil
}

func (s *Service) CompetenciesSource() Source[domain.Competency] {
	return Source[domain.Competency]{
		Name:   "competencies",
		Key:    KeyCompetencies,
		Fetch:  s.api.Competencies,
		View:   view.Config{SearchableFields: []string{"name", "description", "category"}, SortKey: "name"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Name", Field: "name", Width: 28},
				{Title: "Category", Field: "category", Width: 18},
				{Title: "Description", Field: "description", Width: 40},
			},
			Filters: []string{"category"},
			Sorts:   []string{"name", "category"},
		},
	}
}

func (s *Service) QuestionsSource(competencyID string) Source[domain.Question] {
	return Source[domain.Question]{
		Name: "questions",
		Key:  QuestionsKey(competencyID),
		Fetch: func(ctx context.Context) ([]domain.Question, error) {
			return s.api.Questions(ctx, competencyID)
		},
		View:   view.Config{SearchableFields: []string{"text", "competency_name"}, SortKey: "created_at", SortDirection: view.Desc},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Competency", Field: "competency_name", Width: 20},
				{Title: "Level", Field: "level", Width: 12},
				{Title: "Kind", Field: "kind", Width: 15},
				{Title: "Text", Field: "text", Width: 50},
			},
			Filters: []string{"level", "kind", "competency_name"},
			Sorts:   []string{"created_at", "level", "competency_name"},
		},
	}
}

func (s *Service) AssessmentsSource() Source[domain.Assessment] {
	return Source[domain.Assessment]{
		Name:   "assessments",
		Key:    KeyAssessments,
		Fetch:  s.api.Assessments,
		View:   view.Config{SearchableFields: []string{"title", "employee_name", "competency_name"}, SortKey: "scheduled_for"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Title", Field: "title", Width: 24},
				{Title: "Employee", Field: "employee_name", Width: 20},
				{Title: "Competency", Field: "competency_name", Width: 20},
				{Title: "Target", Field: "target_level", Width: 12},
				{Title: "Status", Field: "status", Width: 12},
				{Title: "Scheduled", Field: "scheduled_for", Width: 10},
			},
			Filters: []string{"status", "target_level", "competency_name"},
			Sorts:   []string{"scheduled_for", "title", "score"},
		},
	}
}

func (s *Service) AssessorsSource() Source[domain.Assessor] {
	return Source[domain.Assessor]{
		Name:   "assessors",
		Key:    KeyAssessors,
		Fetch:  s.api.Assessors,
		View:   view.Config{SearchableFields: []string{"name", "email", "department"}, SortKey: "name"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Name", Field: "name", Width: 24},
				{Title: "Email", Field: "email", Width: 28},
				{Title: "Department", Field: "department", Width: 18},
			},
			Filters: []string{"department"},
			Sorts:   []string{"name", "department"},
		},
	}
}

func (s *Service) EmployeesSource() Source[domain.Employee] {
	return Source[domain.Employee]{
		Name:   "employees",
		Key:    KeyEmployees,
		Fetch:  s.api.Employees,
		View:   view.Config{SearchableFields: []string{"name", "email", "department", "job_title"}, SortKey: "name"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Name", Field: "name", Width: 24},
				{Title: "Email", Field: "email", Width: 28},
				{Title: "Department", Field: "department", Width: 18},
				{Title: "Job", Field: "job_title", Width: 20},
			},
			Filters: []string{"department", "job_title"},
			Sorts:   []string{"name", "department"},
		},
	}
}

func (s *Service) JobsSource() Source[domain.Job] {
	return Source[domain.Job]{
		Name:   "jobs",
		Key:    KeyJobs,
		Fetch:  s.api.Jobs,
		View:   view.Config{SearchableFields: []string{"title", "department"}, SortKey: "title"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Title", Field: "title", Width: 28},
				{Title: "Department", Field: "department", Width: 20},
			},
			Filters: []string{"department"},
			Sorts:   []string{"title", "department"},
		},
	}
}

func (s *Service) ReviewsSource() Source[domain.Review] {
	return Source[domain.Review]{
		Name:   "reviews",
		Key:    KeyReviews,
		Fetch:  s.api.Reviews,
		View:   view.Config{SearchableFields: []string{"employee_name", "reviewer_name", "period"}, SortKey: "due_date"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Employee", Field: "employee_name", Width: 20},
				{Title: "Reviewer", Field: "reviewer_name", Width: 20},
				{Title: "Period", Field: "period", Width: 10},
				{Title: "Status", Field: "status", Width: 12},
				{Title: "Due", Field: "due_date", Width: 10},
				{Title: "Rating", Field: "rating", Width: 6},
			},
			Filters: []string{"status", "period", "reviewer_name"},
			Sorts:   []string{"due_date", "employee_name", "rating"},
		},
	}
}

func (s *Service) PathsSource() Source[domain.DevelopmentPath] {
	return Source[domain.DevelopmentPath]{
		Name:   "paths",
		Key:    KeyPaths,
		Fetch:  s.api.Paths,
		View:   view.Config{SearchableFields: []string{"title", "employee_name", "description"}, SortKey: "start_date"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Title", Field: "title", Width: 28},
				{Title: "Employee", Field: "employee_name", Width: 20},
				{Title: "Status", Field: "status", Width: 10},
				{Title: "Start", Field: "start_date", Width: 10},
				{Title: "End", Field: "end_date", Width: 10},
			},
			Filters: []string{"status", "employee_name"},
			Sorts:   []string{"start_date", "end_date", "title"},
		},
	}
}

func (s *Service) InterventionsSource(pathID string) Source[domain.Intervention] {
	return Source[domain.Intervention]{
		Name: "interventions",
		Key:  InterventionsKey(pathID),
		Fetch: func(ctx context.Context) ([]domain.Intervention, error) {
			return s.api.Interventions(ctx, pathID)
		},
		View:   view.Config{SearchableFields: []string{"title", "provider", "notes"}, SortKey: "start_date"},
		Layout: view.Layout{
			Columns: []view.Column{
				{Title: "Title", Field: "title", Width: 28},
				{Title: "Type", Field: "type", Width: 12},
				{Title: "Status", Field: "status", Width: 12},
				{Title: "Provider", Field: "provider", Width: 16},
				{Title: "Start", Field: "start_date", Width: 10},
				{Title: "End", Field: "end_date", Width: 10},
			},
			Filters: []string{"type", "status"},
			Sorts:   []string{"start_date", "end_date", "title"},
		},
	}
}

func (s *Service) Competencies(ctx context.Context) (collection.Snapshot[domain.Competency], error) {
	return load(ctx, s, s.CompetenciesSource())
}

func (s *Service) Questions(ctx context.Context, competencyID string) (collection.Snapshot[domain.Question], error) {
	return load(ctx, s, s.QuestionsSource(competencyID))
}

func (s *Service) Assessments(ctx context.Context) (collection.Snapshot[domain.Assessment], error) {
	return load(ctx, s, s.AssessmentsSource())
}

func (s *Service) Assessors(ctx context.Context) (collection.Snapshot[domain.Assessor], error) {
	return load(ctx, s, s.AssessorsSource())
}

func (s *Service) Employees(ctx context.Context) (collection.Snapshot[domain.Employee], error) {
	return load(ctx, s, s.EmployeesSource())
}

func (s *Service) Jobs(ctx context.Context) (collection.Snapshot[domain.Job], error) {
	return load(ctx, s, s.JobsSource())
}

func (s *Service) Reviews(ctx context.Context) (collection.Snapshot[domain.Review], error) {
	return load(ctx, s, s.ReviewsSource())
}

func (s *Service) Paths(ctx context.Context) (collection.Snapshot[domain.DevelopmentPath], error) {
	return load(ctx, s, s.PathsSource())
}

func (s *Service) Interventions(ctx context.Context, pathID string) (collection.Snapshot[domain.Intervention], error) {
	return load(ctx, s, s.InterventionsSource(pathID))
}

func (s *Service) CreateQuestion(ctx context.Context, d domain.QuestionDraft) (domain.Question, error) {
	if err := s.requireManager(); err != nil {
		return domain.Question{}, err
	}
	if err := d.Validate(); err != nil {
		return domain.Question{}, fmt.Errorf("invalid question: %w", err)
	}
	return mutate(ctx, s, "create question", func(ctx context.Context) (domain.Question, error) {
		return s.api.CreateQuestion(ctx, d)
	}, KeyQuestions)
}

// ImportQuestion creates one question of a batch import. It checks the role
// and validates like CreateQuestion but invalidates nothing; the importer
// invalidates KeyQuestions once after the batch.
func (s *Service) ImportQuestion(ctx context.Context, d domain.QuestionDraft) (domain.Question, error) {
	if err := s.requireManager(); err != nil {
		return domain.Question{}, err
	}
	if err := d.Validate(); err != nil {
		return domain.Question{}, fmt.Errorf("invalid question: %w", err)
	}
	return collection.Mutate(ctx, s.cache, func(ctx context.Context) (domain.Question, error) {
		return s.api.CreateQuestion(ctx, d)
	})
}

// CanImport reports whether the session user may run question imports.
func (s *Service) CanImport() error {
	return s.requireManager()
}

func (s *Service) UpdateQuestion(ctx context.Context, id string, d domain.QuestionDraft) (domain.Question, error) {
	if err := s.requireManager(); err != nil {
		return domain.Question{}, err
	}
	if err := d.Validate(); err != nil {
		return domain.Question{}, fmt.Errorf("invalid question: %w", err)
	}
	return mutate(ctx, s, "update question", func(ctx context.Context) (domain.Question, error) {
		return s.api.UpdateQuestion(ctx, id, d)
	}, KeyQuestions, KeyAssessments)
}

// DeleteQuestions deletes one question directly or several through the bulk
// endpoint. A partially applied bulk delete still invalidates.
func (s *Service) DeleteQuestions(ctx context.Context, ids []string) (api.BulkDeleteResult, error) {
	if err := s.requireManager(); err != nil {
		return api.BulkDeleteResult{}, err
	}
	switch len(ids) {
	case 0:
		return api.BulkDeleteResult{}, errors.New("no questions to delete")
	case 1:
		return mutate(ctx, s, "delete question", func(ctx context.Context) (api.BulkDeleteResult, error) {
			if err := s.api.DeleteQuestion(ctx, ids[0]); err != nil {
				return api.BulkDeleteResult{}, err
			}
			return api.BulkDeleteResult{Deleted: ids}, nil
		}, KeyQuestions, KeyAssessments)
	}
	return mutate(ctx, s, "delete questions", func(ctx context.Context) (api.BulkDeleteResult, error) {
		return s.api.DeleteQuestions(ctx, ids)
	}, KeyQuestions, KeyAssessments)
}

func (s *Service) CreateAssessment(ctx context.Context, d domain.AssessmentDraft) (domain.Assessment, error) {
	if err := s.requireManager(); err != nil {
		return domain.Assessment{}, err
	}
	if err := d.Validate(); err != nil {
		return domain.Assessment{}, fmt.Errorf("invalid assessment: %w", err)
	}
	return mutate(ctx, s, "create assessment", func(ctx context.Context) (domain.Assessment, error) {
		return s.api.CreateAssessment(ctx, d)
	}, KeyAssessments)
}

func (s *Service) AssignAssessor(ctx context.Context, a domain.AssessorAssignment) error {
	if err := s.requireManager(); err != nil {
		return err
	}
	_, err := mutate(ctx, s, "assign assessor", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.AssignAssessor(ctx, a)
	}, KeyAssessors)
	return err
}

func (s *Service) RemoveAssessor(ctx context.Context, a domain.AssessorAssignment) error {
	if err := s.requireManager(); err != nil {
		return err
	}
	_, err := mutate(ctx, s, "remove assessor", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.RemoveAssessor(ctx, a)
	}, KeyAssessors)
	return err
}

func (s *Service) RequestReview(ctx context.Context, r domain.ReviewRequest) (domain.Review, error) {
	if err := r.Validate(); err != nil {
		return domain.Review{}, fmt.Errorf("invalid review request: %w", err)
	}
	return mutate(ctx, s, "request review", func(ctx context.Context) (domain.Review, error) {
		return s.api.RequestReview(ctx, r)
	}, KeyReviews)
}

// CompleteReview closes a review. Only its reviewer or a manager may
// complete it.
func (s *Service) CompleteReview(ctx context.Context, id string, c domain.ReviewCompletion) (domain.Review, error) {
	review, err := s.api.Review(ctx, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("load review %s: %w", id, err)
	}
	if review.ReviewerID != s.user.ID && !s.user.CanManage() {
		return domain.Review{}, ErrForbidden
	}
	if err := c.Validate(review); err != nil {
		return domain.Review{}, err
	}
	return mutate(ctx, s, "complete review", func(ctx context.Context) (domain.Review, error) {
		return s.api.CompleteReview(ctx, id, c)
	}, KeyReviews)
}

// OverdueReviews returns the open reviews past their due date.
func (s *Service) OverdueReviews(ctx context.Context) ([]domain.Review, error) {
	snap, err := s.Reviews(ctx)
	if err != nil && !snap.HasData() {
		return nil, err
	}
	today := schedule.Today(s.loc)
	var out []domain.Review
	for _, r := range snap.Items {
		if r.Overdue(schedule.NewDay(today)) {
			out = append(out, r)
		}
	}
	return out, nil
}
