package competency

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/api"
	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/config"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/schedule"
)

type fakeAPI struct {
	mu            sync.Mutex
	calls         map[string]int
	questions     []domain.Question
	paths         map[string]domain.DevelopmentPath
	interventions map[string][]domain.Intervention
	reviews       map[string]domain.Review
	pathErr       error
	mutationErr   error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:         map[string]int{},
		paths:         map[string]domain.DevelopmentPath{},
		interventions: map[string][]domain.Intervention{},
		reviews:       map[string]domain.Review{},
	}
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Competencies(context.Context) ([]domain.Competency, error) {
	f.hit("Competencies")
	return []domain.Competency{{ID: "c1", Name: "Go"}}, nil
}

func (f *fakeAPI) Questions(_ context.Context, competencyID string) ([]domain.Question, error) {
	f.hit("Questions")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Question
	for _, q := range f.questions {
		if competencyID == "" || q.CompetencyID == competencyID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateQuestion(_ context.Context, d domain.QuestionDraft) (domain.Question, error) {
	f.hit("CreateQuestion")
	if f.mutationErr != nil {
		return domain.Question{}, f.mutationErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	q := domain.Question{ID: "q" + string(rune('0'+len(f.questions)+1)), CompetencyID: d.CompetencyID, Level: d.Level, Text: d.Text, Body: d.Body}
	f.questions = append(f.questions, q)
	return q, nil
}

func (f *fakeAPI) UpdateQuestion(_ context.Context, id string, d domain.QuestionDraft) (domain.Question, error) {
	f.hit("UpdateQuestion")
	return domain.Question{ID: id, Text: d.Text, Body: d.Body}, nil
}

func (f *fakeAPI) DeleteQuestion(context.Context, string) error {
	f.hit("DeleteQuestion")
	return nil
}

func (f *fakeAPI) DeleteQuestions(_ context.Context, ids []string) (api.BulkDeleteResult, error) {
	f.hit("DeleteQuestions")
	return api.BulkDeleteResult{Deleted: ids}, nil
}

func (f *fakeAPI) Assessments(context.Context) ([]domain.Assessment, error) {
	f.hit("Assessments")
	return nil, nil
}

func (f *fakeAPI) CreateAssessment(_ context.Context, d domain.AssessmentDraft) (domain.Assessment, error) {
	f.hit("CreateAssessment")
	return domain.Assessment{ID: "a1", Title: d.Title}, nil
}

func (f *fakeAPI) Assessors(context.Context) ([]domain.Assessor, error) {
	f.hit("Assessors")
	return nil, nil
}

func (f *fakeAPI) AssignAssessor(context.Context, domain.AssessorAssignment) error {
	f.hit("AssignAssessor")
	return f.mutationErr
}

func (f *fakeAPI) RemoveAssessor(context.Context, domain.AssessorAssignment) error {
	f.hit("RemoveAssessor")
	return nil
}

func (f *fakeAPI) Employees(context.Context) ([]domain.Employee, error) {
	f.hit("Employees")
	return nil, nil
}

func (f *fakeAPI) Jobs(context.Context) ([]domain.Job, error) {
	f.hit("Jobs")
	return nil, nil
}

func (f *fakeAPI) Reviews(context.Context) ([]domain.Review, error) {
	f.hit("Reviews")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Review
	for _, r := range f.reviews {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAPI) Review(_ context.Context, id string) (domain.Review, error) {
	f.hit("Review")
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reviews[id]
	if !ok {
		return domain.Review{}, &api.Error{Status: 404}
	}
	return r, nil
}

func (f *fakeAPI) RequestReview(_ context.Context, r domain.ReviewRequest) (domain.Review, error) {
	f.hit("RequestReview")
	return domain.Review{ID: "r-new", EmployeeID: r.EmployeeID, ReviewerID: r.ReviewerID, Status: domain.ReviewRequested}, nil
}

func (f *fakeAPI) CompleteReview(_ context.Context, id string, c domain.ReviewCompletion) (domain.Review, error) {
	f.hit("CompleteReview")
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.reviews[id]
	r.Status = domain.ReviewCompleted
	r.Rating = &c.Rating
	f.reviews[id] = r
	return r, nil
}

func (f *fakeAPI) Paths(context.Context) ([]domain.DevelopmentPath, error) {
	f.hit("Paths")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.DevelopmentPath
	for _, p := range f.paths {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeAPI) Path(_ context.Context, id string) (domain.DevelopmentPath, error) {
	f.hit("Path")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pathErr != nil {
		return domain.DevelopmentPath{}, f.pathErr
	}
	p, ok := f.paths[id]
	if !ok {
		return domain.DevelopmentPath{}, &api.Error{Status: 404}
	}
	return p, nil
}

func (f *fakeAPI) CreatePath(_ context.Context, employeeID string, u domain.PathUpdate) (domain.DevelopmentPath, error) {
	f.hit("CreatePath")
	return domain.DevelopmentPath{ID: "p-new", EmployeeID: employeeID, Title: u.Title}, nil
}

func (f *fakeAPI) UpdatePath(_ context.Context, id string, u domain.PathUpdate) (domain.DevelopmentPath, error) {
	f.hit("UpdatePath")
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.paths[id]
	p.Title, p.StartDate, p.EndDate = u.Title, u.StartDate, u.EndDate
	f.paths[id] = p
	return p, nil
}

func (f *fakeAPI) Interventions(_ context.Context, pathID string) ([]domain.Intervention, error) {
	f.hit("Interventions")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interventions[pathID], nil
}

func (f *fakeAPI) CreateIntervention(_ context.Context, d domain.InterventionDraft) (domain.Intervention, error) {
	f.hit("CreateIntervention")
	f.mu.Lock()
	defer f.mu.Unlock()
	iv := domain.Intervention{ID: "i-new", PathID: d.PathID, Title: d.Title, Type: d.Type, Status: d.Status, StartDate: d.StartDate, EndDate: d.EndDate}
	f.interventions[d.PathID] = append(f.interventions[d.PathID], iv)
	return iv, nil
}

func (f *fakeAPI) UpdateIntervention(_ context.Context, id string, d domain.InterventionDraft) (domain.Intervention, error) {
	f.hit("UpdateIntervention")
	return domain.Intervention{ID: id, PathID: d.PathID, Title: d.Title}, nil
}

func (f *fakeAPI) DeleteIntervention(context.Context, string) error {
	f.hit("DeleteIntervention")
	return nil
}

var (
	manager  = config.User{ID: "m1", Role: config.RoleManager}
	employee = config.User{ID: "e1", Role: config.RoleEmployee}
)

func newTestService(t *testing.T, f *fakeAPI, user config.User) *Service {
	t.Helper()
	cache := collection.NewClient(collection.Options{})
	t.Cleanup(cache.Close)
	return NewService(f, cache, user, time.UTC, nil)
}

func day(y int, m time.Month, d int) schedule.Day {
	return schedule.NewDay(civil.Date{Year: y, Month: m, Day: d})
}

func seedPath(f *fakeAPI) {
	f.paths["p1"] = domain.DevelopmentPath{
		ID: "p1", EmployeeID: "e1", Title: "Leadership", Status: domain.PathActive,
		StartDate: day(2024, time.January, 1), EndDate: day(2024, time.June, 30),
	}
	f.interventions["p1"] = []domain.Intervention{{
		ID: "i1", PathID: "p1", Title: "Workshop", Type: domain.InterventionTraining,
		StartDate: day(2024, time.February, 1), EndDate: day(2024, time.March, 1),
	}}
}

func essayDraft() domain.QuestionDraft {
	return domain.QuestionDraft{
		CompetencyID: "c1",
		Level:        domain.LevelBasic,
		Text:         "Describe a hard bug",
		Body:         domain.Essay{Rubric: "clarity"},
	}
}

func TestReadsAreCachedUntilMutation(t *testing.T) {
	f := newFakeAPI()
	s := newTestService(t, f, manager)
	ctx := context.Background()

	snap, err := s.Questions(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	_, err = s.Questions(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, f.count("Questions"), "second read is served from cache")

	_, err = s.CreateQuestion(ctx, essayDraft())
	require.NoError(t, err)

	snap, err = s.Questions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 2, f.count("Questions"))
}

func TestPerCompetencyQuestionsInvalidatedByRoot(t *testing.T) {
	f := newFakeAPI()
	s := newTestService(t, f, manager)
	ctx := context.Background()

	_, err := s.Questions(ctx, "c1")
	require.NoError(t, err)
	_, err = s.CreateQuestion(ctx, essayDraft())
	require.NoError(t, err)

	snap, err := s.Questions(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 2, f.count("Questions"))
}

func TestCreateQuestionRejectedBeforeAPI(t *testing.T) {
	f := newFakeAPI()
	ctx := context.Background()

	_, err := newTestService(t, f, employee).CreateQuestion(ctx, essayDraft())
	assert.ErrorIs(t, err, ErrForbidden)

	bad := essayDraft()
	bad.Body = domain.MultipleChoice{Options: []string{"only one"}, Correct: 0}
	_, err = newTestService(t, f, manager).CreateQuestion(ctx, bad)
	assert.Error(t, err)

	assert.Zero(t, f.count("CreateQuestion"))
}

func TestImportQuestionChecksRoleAndCountsMutations(t *testing.T) {
	f := newFakeAPI()
	ctx := context.Background()
	metrics := collection.NewMetrics(prometheus.NewRegistry())
	cache := collection.NewClient(collection.Options{Metrics: metrics})
	t.Cleanup(cache.Close)

	forbidden := NewService(f, cache, employee, time.UTC, nil)
	assert.ErrorIs(t, forbidden.CanImport(), ErrForbidden)
	_, err := forbidden.ImportQuestion(ctx, essayDraft())
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, f.count("CreateQuestion"))

	s := NewService(f, cache, manager, time.UTC, nil)
	require.NoError(t, s.CanImport())
	_, err = s.Questions(ctx, "")
	require.NoError(t, err)

	q, err := s.ImportQuestion(ctx, essayDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Mutations.WithLabelValues("success")))

	_, err = s.Questions(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, f.count("Questions"), "rows of a batch do not invalidate")
}

func TestFailedMutationInvalidatesNothing(t *testing.T) {
	f := newFakeAPI()
	s := newTestService(t, f, manager)
	ctx := context.Background()

	_, err := s.Assessors(ctx)
	require.NoError(t, err)

	f.mutationErr = &api.Error{Status: 409, Message: "already assigned"}
	err = s.AssignAssessor(ctx, domain.AssessorAssignment{AssessorID: "a1", CompetencyID: "c1"})
	var mutErr *collection.MutationError
	require.ErrorAs(t, err, &mutErr)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "already assigned", apiErr.Message)

	_, err = s.Assessors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.count("Assessors"))
}

func TestDeleteQuestionsUsesBulkEndpointForMany(t *testing.T) {
	f := newFakeAPI()
	s := newTestService(t, f, manager)
	ctx := context.Background()

	res, err := s.DeleteQuestions(ctx, []string{"q1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, res.Deleted)
	assert.Equal(t, 1, f.count("DeleteQuestion"))

	res, err = s.DeleteQuestions(ctx, []string{"q1", "q2"})
	require.NoError(t, err)
	assert.Len(t, res.Deleted, 2)
	assert.Equal(t, 1, f.count("DeleteQuestions"))

	_, err = s.DeleteQuestions(ctx, nil)
	assert.Error(t, err)
}

func TestCreateInterventionValidatesAgainstPath(t *testing.T) {
	f := newFakeAPI()
	seedPath(f)
	s := newTestService(t, f, employee)
	ctx := context.Background()

	_, err := s.CreateIntervention(ctx, domain.InterventionDraft{
		PathID: "p1", Title: "Conference", Type: domain.InterventionCourse,
		StartDate: day(2024, time.June, 1), EndDate: day(2024, time.July, 15),
	})
	require.ErrorIs(t, err, schedule.ErrChildEndsAfterParent)
	var vErr *schedule.ViolationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, schedule.RuleChildEndsAfterParent, vErr.Rule)
	assert.Zero(t, f.count("CreateIntervention"))
}

func TestCreateInterventionSeedsEndDate(t *testing.T) {
	f := newFakeAPI()
	seedPath(f)
	s := newTestService(t, f, employee)
	ctx := context.Background()

	got, err := s.CreateIntervention(ctx, domain.InterventionDraft{
		PathID: "p1", Title: "Book club", Type: domain.InterventionReading,
		StartDate: day(2024, time.April, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.April, 11), got.EndDate)
	assert.Equal(t, domain.InterventionPlanned, got.Status)

	snap, err := s.Interventions(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 2, "interventions key was invalidated")
}

func TestInterventionFailsClosedWhenPathUnavailable(t *testing.T) {
	f := newFakeAPI()
	seedPath(f)
	s := newTestService(t, f, manager)
	ctx := context.Background()

	_, err := s.PathDetails(ctx, "p1")
	require.NoError(t, err)

	f.pathErr = errors.New("connection refused")
	_, err = s.CreateIntervention(ctx, domain.InterventionDraft{
		PathID: "p1", Title: "Mentor", Type: domain.InterventionMentoring,
		StartDate: day(2024, time.March, 1),
	})
	require.Error(t, err)
	assert.Zero(t, f.count("CreateIntervention"), "a cached path is not trusted for validation")
}

func TestInterventionForbiddenOnOthersPath(t *testing.T) {
	f := newFakeAPI()
	seedPath(f)
	s := newTestService(t, f, config.User{ID: "e2", Role: config.RoleEmployee})

	_, err := s.CreateIntervention(context.Background(), domain.InterventionDraft{
		PathID: "p1", Title: "Mentor", Type: domain.InterventionMentoring,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdatePathChecksChildren(t *testing.T) {
	f := newFakeAPI()
	seedPath(f)
	s := newTestService(t, f, manager)
	ctx := context.Background()

	u := domain.UpdateOf(f.paths["p1"])
	u.StartDate = day(2024, time.February, 15)
	_, err := s.UpdatePath(ctx, "p1", u)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "i1", conflict.Intervention.ID)
	assert.ErrorIs(t, err, schedule.ErrChildStartsBeforeParent)

	u = domain.UpdateOf(f.paths["p1"])
	u.StartDate, u.EndDate = day(2024, time.May, 1), day(2024, time.April, 1)
	_, err = s.UpdatePath(ctx, "p1", u)
	assert.ErrorIs(t, err, schedule.ErrInvertedRange)

	assert.Zero(t, f.count("UpdatePath"))

	u = domain.UpdateOf(f.paths["p1"])
	u.EndDate = schedule.Day{}
	updated, err := s.UpdatePath(ctx, "p1", u)
	require.NoError(t, err)
	assert.True(t, updated.EndDate.IsZero(), "open end contains every child")
}

func TestPathDetailsConflicts(t *testing.T) {
	f := newFakeAPI()
	seedPath(f)
	f.interventions["p1"] = append(f.interventions["p1"], domain.Intervention{
		ID: "i2", PathID: "p1", Title: "Late", Type: domain.InterventionProject,
		StartDate: day(2024, time.June, 1), EndDate: day(2024, time.August, 1),
	})
	s := newTestService(t, f, manager)

	details, err := s.PathDetails(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Leadership", details.Path.Title)
	require.Len(t, details.Conflicts(), 1)
	assert.Equal(t, "i2", details.Conflicts()[0].Intervention.ID)
}

func TestCompleteReview(t *testing.T) {
	f := newFakeAPI()
	f.reviews["r1"] = domain.Review{ID: "r1", EmployeeID: "e9", ReviewerID: "e1", Status: domain.ReviewInProgress}
	f.reviews["r2"] = domain.Review{ID: "r2", EmployeeID: "e9", ReviewerID: "e1", Status: domain.ReviewCompleted}
	ctx := context.Background()

	_, err := newTestService(t, f, config.User{ID: "e5", Role: config.RoleEmployee}).
		CompleteReview(ctx, "r1", domain.ReviewCompletion{Rating: 4})
	assert.ErrorIs(t, err, ErrForbidden)

	s := newTestService(t, f, employee)
	_, err = s.CompleteReview(ctx, "r1", domain.ReviewCompletion{Rating: 9})
	assert.Error(t, err)

	_, err = s.CompleteReview(ctx, "r2", domain.ReviewCompletion{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrReviewClosed)

	done, err := s.CompleteReview(ctx, "r1", domain.ReviewCompletion{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewCompleted, done.Status)
	assert.Equal(t, 1, f.count("CompleteReview"))
}

func TestOverdueReviews(t *testing.T) {
	f := newFakeAPI()
	f.reviews["old"] = domain.Review{ID: "old", Status: domain.ReviewRequested, DueDate: day(2000, time.January, 1)}
	f.reviews["done"] = domain.Review{ID: "done", Status: domain.ReviewCompleted, DueDate: day(2000, time.January, 1)}
	f.reviews["future"] = domain.Review{ID: "future", Status: domain.ReviewRequested, DueDate: day(2999, time.January, 1)}
	s := newTestService(t, f, manager)

	got, err := s.OverdueReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].ID)
}

func TestParseDayUsesServiceLocation(t *testing.T) {
	cache := collection.NewClient(collection.Options{})
	t.Cleanup(cache.Close)
	tokyo := time.FixedZone("JST", 9*60*60)
	s := NewService(newFakeAPI(), cache, manager, tokyo, nil)

	assert.Equal(t, tokyo, s.Location())
	d, err := s.ParseDay("2024-01-31T20:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 1), d)

	_, err = s.ParseDay("31/01/2024")
	assert.Error(t, err)
}
