package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// QuestionKind discriminates question bodies on the wire.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindTrueFalse      QuestionKind = "true_false"
	KindEssay          QuestionKind = "essay"
)

// ParseQuestionKind accepts the wire names plus the short forms "mc", "tf".
func ParseQuestionKind(s string) (QuestionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiple_choice", "mc":
		return KindMultipleChoice, nil
	case "true_false", "tf":
		return KindTrueFalse, nil
	case "essay":
		return KindEssay, nil
	}
	return "", fmt.Errorf("unknown question kind %q", s)
}

// QuestionBody is the kind-specific part of a question. It is one of
// MultipleChoice, TrueFalse or Essay.
type QuestionBody interface {
	Kind() QuestionKind
	validate() error
}

// MultipleChoice has options and the index of the correct one.
type MultipleChoice struct {
	Options []string
	Correct int
}

func (MultipleChoice) Kind() QuestionKind { return KindMultipleChoice }

func (b MultipleChoice) validate() error {
	if len(b.Options) < 2 {
		return errors.New("multiple choice needs at least two options")
	}
	for i, o := range b.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
	}
	if b.Correct < 0 || b.Correct >= len(b.Options) {
		return fmt.Errorf("correct option %d out of range", b.Correct+1)
	}
	return nil
}

// TrueFalse carries the expected answer. Answer is nil until set.
type TrueFalse struct {
	Answer *bool
}

func (TrueFalse) Kind() QuestionKind { return KindTrueFalse }

func (b TrueFalse) validate() error {
	if b.Answer == nil {
		return errors.New("true/false question needs an answer")
	}
	return nil
}

// Essay is free text, graded against a rubric or a word limit.
type Essay struct {
	Rubric   string
	MaxWords int
}

func (Essay) Kind() QuestionKind { return KindEssay }

func (b Essay) validate() error {
	if b.MaxWords < 0 {
		return errors.New("max words cannot be negative")
	}
	if strings.TrimSpace(b.Rubric) == "" && b.MaxWords == 0 {
		return errors.New("essay question needs a rubric or a word limit")
	}
	return nil
}

// Question is a question bank entry.
type Question struct {
	ID             string
	CompetencyID   string
	CompetencyName string
	Level          Level
	Text           string
	Body           QuestionBody
	CreatedAt      time.Time
}

func (q Question) EntityID() string { return q.ID }

// Kind returns the body's kind, or "" when the body is missing.
func (q Question) Kind() QuestionKind {
	if q.Body == nil {
		return ""
	}
	return q.Body.Kind()
}

func (q Question) Field(name string) (any, bool) {
	switch name {
	case "id":
		return q.ID, true
	case "competency_id":
		return q.CompetencyID, true
	case "competency_name":
		return q.CompetencyName, true
	case "level":
		return string(q.Level), true
	case "kind":
		return string(q.Kind()), true
	case "text":
		return q.Text, true
	case "created_at":
		return timeValue(q.CreatedAt), true
	}
	return nil, false
}

// questionWire is the flat API shape of a question.
type questionWire struct {
	ID             string       `json:"id,omitempty"`
	CompetencyID   string       `json:"competency_id"`
	CompetencyName string       `json:"competency_name,omitempty"`
	Level          Level        `json:"level"`
	Kind           QuestionKind `json:"kind"`
	Text           string       `json:"text"`
	Options        []string     `json:"options,omitempty"`
	CorrectOption  *int         `json:"correct_option,omitempty"`
	Answer         *bool        `json:"answer,omitempty"`
	Rubric         string       `json:"rubric,omitempty"`
	MaxWords       int          `json:"max_words,omitempty"`
	CreatedAt      *time.Time   `json:"created_at,omitempty"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	w := questionWire{
		ID:             q.ID,
		CompetencyID:   q.CompetencyID,
		CompetencyName: q.CompetencyName,
		Level:          q.Level,
		Text:           q.Text,
	}
	if !q.CreatedAt.IsZero() {
		w.CreatedAt = &q.CreatedAt
	}
	if err := putBody(&w, q.Body); err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (q *Question) UnmarshalJSON(b []byte) error {
	var w questionWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	body, err := takeBody(w)
	if err != nil {
		return fmt.Errorf("question %s: %w", w.ID, err)
	}
	*q = Question{
		ID:             w.ID,
		CompetencyID:   w.CompetencyID,
		CompetencyName: w.CompetencyName,
		Level:          w.Level,
		Text:           w.Text,
		Body:           body,
	}
	if w.CreatedAt != nil {
		q.CreatedAt = *w.CreatedAt
	}
	return nil
}

func putBody(w *questionWire, body QuestionBody) error {
	switch b := body.(type) {
	case MultipleChoice:
		w.Kind = KindMultipleChoice
		w.Options = b.Options
		correct := b.Correct
		w.CorrectOption = &correct
	case TrueFalse:
		w.Kind = KindTrueFalse
		w.Answer = b.Answer
	case Essay:
		w.Kind = KindEssay
		w.Rubric = b.Rubric
		w.MaxWords = b.MaxWords
	case nil:
		return errors.New("question has no body")
	default:
		return fmt.Errorf("unsupported question body %T", body)
	}
	return nil
}

func takeBody(w questionWire) (QuestionBody, error) {
	switch w.Kind {
	case KindMultipleChoice:
		mc := MultipleChoice{Options: w.Options, Correct: -1}
		if w.CorrectOption != nil {
			mc.Correct = *w.CorrectOption
		}
		return mc, nil
	case KindTrueFalse:
		return TrueFalse{Answer: w.Answer}, nil
	case KindEssay:
		return Essay{Rubric: w.Rubric, MaxWords: w.MaxWords}, nil
	}
	return nil, fmt.Errorf("unknown question kind %q", w.Kind)
}

// QuestionDraft is a question about to be created.
type QuestionDraft struct {
	CompetencyID string
	Level        Level
	Text         string
	Body         QuestionBody
}

// Validate checks the common fields and then the body for its kind.
func (d QuestionDraft) Validate() error {
	if strings.TrimSpace(d.CompetencyID) == "" {
		return errors.New("competency is required")
	}
	if !d.Level.Valid() {
		return fmt.Errorf("unknown level %q", d.Level)
	}
	if strings.TrimSpace(d.Text) == "" {
		return errors.New("question text is required")
	}
	if d.Body == nil {
		return errors.New("question kind is required")
	}
	return d.Body.validate()
}

func (d QuestionDraft) MarshalJSON() ([]byte, error) {
	return Question{
		CompetencyID: d.CompetencyID,
		Level:        d.Level,
		Text:         d.Text,
		Body:         d.Body,
	}.MarshalJSON()
}
