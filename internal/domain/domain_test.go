package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/view"
)

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) schedule.Day {
	return schedule.NewDay(civil.Date{Year: y, Month: m, Day: d})
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" advanced ")
	require.NoError(t, err)
	assert.Equal(t, LevelAdvanced, l)
	assert.Equal(t, 3, l.Rank())

	_, err = ParseLevel("guru")
	assert.Error(t, err)
	assert.False(t, Level("").Valid())
}

func TestQuestionDecodesEachKind(t *testing.T) {
	payload := `[
		{"id":"q1","competency_id":"c1","level":"BASIC","kind":"multiple_choice","text":"Pick","options":["a","b","c"],"correct_option":2},
		{"id":"q2","competency_id":"c1","level":"EXPERT","kind":"true_false","text":"Yes?","answer":false},
		{"id":"q3","competency_id":"c2","level":"ADVANCED","kind":"essay","text":"Explain","rubric":"clarity","max_words":300,"created_at":"2024-03-01T10:00:00Z"}
	]`
	var qs []Question
	require.NoError(t, json.Unmarshal([]byte(payload), &qs))
	require.Len(t, qs, 3)

	assert.Equal(t, MultipleChoice{Options: []string{"a", "b", "c"}, Correct: 2}, qs[0].Body)
	assert.Equal(t, TrueFalse{Answer: ptr(false)}, qs[1].Body)
	assert.Equal(t, Essay{Rubric: "clarity", MaxWords: 300}, qs[2].Body)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), qs[2].CreatedAt)

	kind, ok := qs[1].Field("kind")
	assert.True(t, ok)
	assert.Equal(t, "true_false", kind)
}

func TestQuestionUnknownKind(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id":"q9","kind":"ranking"}`), &q)
	assert.ErrorContains(t, err, "ranking")
}

func TestQuestionDraftEncodesFlatShape(t *testing.T) {
	d := QuestionDraft{
		CompetencyID: "c1",
		Level:        LevelBasic,
		Text:         "Pick",
		Body:         MultipleChoice{Options: []string{"a", "b"}, Correct: 0},
	}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"competency_id":"c1","level":"BASIC","kind":"multiple_choice","text":"Pick","options":["a","b"],"correct_option":0}`, string(b))
}

func TestQuestionDraftValidate(t *testing.T) {
	valid := QuestionDraft{CompetencyID: "c1", Level: LevelBasic, Text: "Q"}
	tests := []struct {
		name    string
		mutate  func(*QuestionDraft)
		wantErr string
	}{
		{"mc ok", func(d *QuestionDraft) { d.Body = MultipleChoice{Options: []string{"a", "b"}, Correct: 1} }, ""},
		{"mc one option", func(d *QuestionDraft) { d.Body = MultipleChoice{Options: []string{"a"}} }, "two options"},
		{"mc blank option", func(d *QuestionDraft) { d.Body = MultipleChoice{Options: []string{"a", " "}} }, "option 2"},
		{"mc correct out of range", func(d *QuestionDraft) { d.Body = MultipleChoice{Options: []string{"a", "b"}, Correct: 2} }, "out of range"},
		{"tf ok", func(d *QuestionDraft) { d.Body = TrueFalse{Answer: ptr(true)} }, ""},
		{"tf no answer", func(d *QuestionDraft) { d.Body = TrueFalse{} }, "needs an answer"},
		{"essay rubric", func(d *QuestionDraft) { d.Body = Essay{Rubric: "r"} }, ""},
		{"essay limit", func(d *QuestionDraft) { d.Body = Essay{MaxWords: 100} }, ""},
		{"essay neither", func(d *QuestionDraft) { d.Body = Essay{} }, "rubric or a word limit"},
		{"no body", func(d *QuestionDraft) {}, "kind is required"},
		{"no competency", func(d *QuestionDraft) { d.CompetencyID = ""; d.Body = Essay{Rubric: "r"} }, "competency"},
		{"bad level", func(d *QuestionDraft) { d.Level = "MASTER"; d.Body = Essay{Rubric: "r"} }, "level"},
		{"no text", func(d *QuestionDraft) { d.Text = "  "; d.Body = Essay{Rubric: "r"} }, "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPathDecodesDates(t *testing.T) {
	var p DevelopmentPath
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","title":"Lead","start_date":"2024-01-01","end_date":null}`), &p))

	assert.Equal(t, schedule.Interval{Start: civil.Date{Year: 2024, Month: 1, Day: 1}}, p.Interval())
	end, ok := p.Field("end_date")
	assert.True(t, ok)
	assert.Nil(t, end)
}

func TestPathUpdateValidate(t *testing.T) {
	u := PathUpdate{Title: "Lead", Status: PathActive, StartDate: day(2024, 3, 1), EndDate: day(2024, 1, 1)}
	assert.ErrorIs(t, u.Validate(), schedule.ErrInvertedRange)

	u.EndDate = day(2024, 6, 30)
	assert.NoError(t, u.Validate())

	u.Status = "paused"
	assert.ErrorContains(t, u.Validate(), "paused")
}

func TestInterventionDraft(t *testing.T) {
	d := InterventionDraft{PathID: "p1", Title: "Course", Type: InterventionCourse, StartDate: day(2024, 1, 31)}
	require.NoError(t, d.Validate())

	seeded := d.Seeded()
	assert.Equal(t, day(2024, 2, 1), seeded.EndDate)
	assert.True(t, d.EndDate.IsZero(), "Seeded does not modify the receiver")

	d.Type = "webinar"
	assert.ErrorContains(t, d.Validate(), "webinar")
}

func TestPathDetailsConflicts(t *testing.T) {
	details := PathDetails{
		Path: DevelopmentPath{ID: "p1", StartDate: day(2024, 1, 1), EndDate: day(2024, 3, 31)},
		Interventions: []Intervention{
			{ID: "i1", StartDate: day(2024, 1, 10), EndDate: day(2024, 1, 20)},
			{ID: "i2", StartDate: day(2023, 12, 31), EndDate: day(2024, 1, 5)},
			{ID: "i3", StartDate: day(2024, 3, 1), EndDate: day(2024, 4, 1)},
		},
	}
	conflicts := details.Conflicts()
	require.Len(t, conflicts, 2)
	assert.Equal(t, "i2", conflicts[0].Intervention.ID)
	assert.ErrorIs(t, conflicts[0].Err, schedule.ErrChildStartsBeforeParent)
	assert.Equal(t, "i3", conflicts[1].Intervention.ID)
	assert.ErrorIs(t, conflicts[1].Err, schedule.ErrChildEndsAfterParent)
}

func TestReviewLifecycle(t *testing.T) {
	req := ReviewRequest{EmployeeID: "e1", ReviewerID: "e1", Period: "2024-H1"}
	assert.ErrorContains(t, req.Validate(), "themselves")
	req.ReviewerID = "m1"
	assert.NoError(t, req.Validate())

	open := Review{ID: "r1", Status: ReviewInProgress, DueDate: day(2024, 6, 30)}
	assert.NoError(t, ReviewCompletion{Rating: 4}.Validate(open))
	assert.Error(t, ReviewCompletion{Rating: 6}.Validate(open))
	assert.True(t, errors.Is(ReviewCompletion{Rating: 4}.Validate(Review{Status: ReviewCompleted}), ErrReviewClosed))

	assert.True(t, open.Overdue(day(2024, 7, 1)))
	assert.False(t, open.Overdue(day(2024, 6, 30)))

	rating, _ := open.Field("rating")
	assert.Nil(t, rating)
}

func TestDeriveOverDomainEntities(t *testing.T) {
	interventions := []Intervention{
		{ID: "i1", Title: "Go course", Type: InterventionCourse, StartDate: day(2024, 2, 1)},
		{ID: "i2", Title: "Mentoring", Type: InterventionMentoring, StartDate: day(2024, 1, 1)},
		{ID: "i3", Title: "Book club", Type: InterventionReading},
		{ID: "i4", Title: "Advanced go", Type: InterventionCourse, StartDate: day(2024, 1, 15)},
	}

	got := view.Derive(interventions, view.Predicates{
		SearchText:      "GO",
		EqualityFilters: map[string]any{"type": "course"},
	}, view.Config{
		SearchableFields: []string{"title"},
		SortKey:          "start_date",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "i4", got[0].ID)
	assert.Equal(t, "i1", got[1].ID)

	all := view.Derive(interventions, view.Predicates{}, view.Config{SortKey: "start_date"})
	assert.Equal(t, "i3", all[0].ID, "undated interventions sort first")
}
