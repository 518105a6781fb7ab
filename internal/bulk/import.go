package bulk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
)

// DefaultConcurrency bounds in-flight create requests when none is set.
const DefaultConcurrency = 4

// Creator creates one question of a batch. It need not invalidate any cached
// collection; the importer does that once per batch.
type Creator interface {
	ImportQuestion(ctx context.Context, d domain.QuestionDraft) (domain.Question, error)
}

// Outcome is what happened to one row.
type Outcome string

const (
	Created Outcome = "created"
	Invalid Outcome = "invalid"
	Failed  Outcome = "failed"
)

// RowResult is the outcome of one data row.
type RowResult struct {
	Line       int
	Outcome    Outcome
	QuestionID string
	Message    string
}

// Report lists every row of an import. Rows that were created stay created
// when others fail.
type Report struct {
	Source  string
	Rows    []RowResult
	Created int
	Invalid int
	Failed  int
}

// OK reports whether every row was created.
func (r Report) OK() bool { return r.Invalid == 0 && r.Failed == 0 }

func (r Report) String() string {
	return fmt.Sprintf("%s: %d created, %d invalid, %d failed", r.Source, r.Created, r.Invalid, r.Failed)
}

// Importer submits parsed rows to the API.
type Importer struct {
	creator     Creator
	cache       *collection.Client
	concurrency int
	logger      *slog.Logger
}

// NewImporter creates an importer. cache may be nil when nothing is cached.
func NewImporter(creator Creator, cache *collection.Client, concurrency int, logger *slog.Logger) *Importer {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Importer{
		creator:     creator,
		cache:       cache,
		concurrency: concurrency,
		logger:      logger.With("component", "bulk"),
	}
}

// Import parses src and creates every valid row with bounded concurrency.
// Row failures are in the report. The returned error is for files that cannot
// be parsed at all, or for ctx ending mid-batch; in the latter case the
// report still lists what was created. The questions cache is invalidated
// once, after the batch, when at least one row was created.
func (im *Importer) Import(ctx context.Context, name string, src io.Reader) (Report, error) {
	rows, err := Parse(src)
	if err != nil {
		return Report{Source: name}, fmt.Errorf("parse %s: %w", name, err)
	}

	results := make([]RowResult, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency)

	for i, row := range rows {
		results[i] = RowResult{Line: row.Line}
		if row.Err != nil {
			results[i].Outcome = Invalid
			results[i].Message = row.Err.Error()
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Outcome = Failed
				results[i].Message = err.Error()
				return err
			}
			q, err := im.creator.ImportQuestion(gctx, row.Draft)
			if err != nil {
				results[i].Outcome = Failed
				results[i].Message = err.Error()
				// Only cancellation stops the batch.
				return gctx.Err()
			}
			results[i].Outcome = Created
			results[i].QuestionID = q.ID
			return nil
		})
	}
	waitErr := g.Wait()

	rep := Report{Source: name, Rows: results}
	for _, r := range results {
		switch r.Outcome {
		case Created:
			rep.Created++
		case Invalid:
			rep.Invalid++
		case Failed:
			rep.Failed++
		}
	}
	sort.SliceStable(rep.Rows, func(a, b int) bool { return rep.Rows[a].Line < rep.Rows[b].Line })

	if rep.Created > 0 && im.cache != nil {
		im.cache.Invalidate(competency.KeyQuestions)
	}
	im.logger.Info("import finished",
		"source", name,
		"created", rep.Created,
		"invalid", rep.Invalid,
		"failed", rep.Failed,
	)
	if waitErr != nil {
		return rep, fmt.Errorf("import %s: %w", name, waitErr)
	}
	return rep, nil
}
