// Package bulk imports question banks from CSV files.
package bulk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hrcore/competency/internal/domain"
)

// Columns understood in an import file. Header names are case-insensitive
// and may appear in any order.
const (
	colCompetency = "competency_id"
	colLevel      = "level"
	colKind       = "kind"
	colText       = "text"
	colOptions    = "options"
	colCorrect    = "correct"
	colAnswer     = "answer"
	colRubric     = "rubric"
	colMaxWords   = "max_words"
)

var requiredColumns = []string{colCompetency, colLevel, colKind, colText}

// optionSeparator splits the options cell of a multiple choice row.
const optionSeparator = "|"

// Row is one parsed data row. Err is set when the row cannot become a valid
// draft.
type Row struct {
	Line  int
	Draft domain.QuestionDraft
	Err   error
}

// Parse reads a header row followed by question rows. A malformed file or a
// missing required column fails the whole parse; problems in a single row
// are reported on that Row.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		d, err := draftOf(get)
		rows = append(rows, Row{Line: line, Draft: d, Err: err})
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func draftOf(get func(string) string) (domain.QuestionDraft, error) {
	d := domain.QuestionDraft{
		CompetencyID: get(colCompetency),
		Text:         get(colText),
	}
	level, err := domain.ParseLevel(get(colLevel))
	if err != nil {
		return d, err
	}
	d.Level = level

	kind, err := domain.ParseQuestionKind(get(colKind))
	if err != nil {
		return d, err
	}
	switch kind {
	case domain.KindMultipleChoice:
		mc := domain.MultipleChoice{Correct: -1}
		if opts := get(colOptions); opts != "" {
			for _, o := range strings.Split(opts, optionSeparator) {
				mc.Options = append(mc.Options, strings.TrimSpace(o))
			}
		}
		if c := get(colCorrect); c != "" {
			n, err := strconv.Atoi(c)
			if err != nil {
				return d, fmt.Errorf("correct: %q is not a number", c)
			}
			mc.Correct = n
		}
		d.Body = mc
	case domain.KindTrueFalse:
		tf := domain.TrueFalse{}
		if a := get(colAnswer); a != "" {
			b, err := strconv.ParseBool(a)
			if err != nil {
				return d, fmt.Errorf("answer: %q is not true or false", a)
			}
			tf.Answer = &b
		}
		d.Body = tf
	case domain.KindEssay:
		e := domain.Essay{Rubric: get(colRubric)}
		if w := get(colMaxWords); w != "" {
			n, err := strconv.Atoi(w)
			if err != nil {
				return d, fmt.Errorf("max_words: %q is not a number", w)
			}
			e.MaxWords = n
		}
		d.Body = e
	}
	return d, d.Validate()
}
