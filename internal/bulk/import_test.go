package bulk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
)

type fakeCreator struct {
	mu       sync.Mutex
	n        int
	failText string

	inflight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeCreator) ImportQuestion(_ context.Context, d domain.QuestionDraft) (domain.Question, error) {
	cur := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		p := f.peak.Load()
		if cur <= p || f.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	if f.failText != "" && d.Text == f.failText {
		return domain.Question{}, errors.New("server rejected question")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return domain.Question{ID: fmt.Sprintf("q%d", f.n), Text: d.Text}, nil
}

func essayRows(n int) string {
	var b strings.Builder
	b.WriteString("competency_id,level,kind,text,rubric\n")
	for i := range n {
		fmt.Fprintf(&b, "c1,basic,essay,Question %d,clarity\n", i)
	}
	return b.String()
}

func TestImportReportsEveryRow(t *testing.T) {
	creator := &fakeCreator{failText: "Question 2"}
	im := NewImporter(creator, nil, 2, nil)

	in := essayRows(4) + "c1,basic,essay,,\n"
	rep, err := im.Import(context.Background(), "bank.csv", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Created)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Invalid)
	assert.False(t, rep.OK())
	require.Len(t, rep.Rows, 5)
	for i, r := range rep.Rows {
		assert.Equal(t, i+2, r.Line)
	}
	assert.Equal(t, Failed, rep.Rows[2].Outcome)
	assert.Equal(t, "server rejected question", rep.Rows[2].Message)
	assert.Equal(t, Invalid, rep.Rows[4].Outcome)
	assert.NotEmpty(t, rep.Rows[0].QuestionID)
	assert.Equal(t, "bank.csv: 3 created, 1 invalid, 1 failed", rep.String())
}

func TestImportBoundsConcurrency(t *testing.T) {
	creator := &fakeCreator{}
	im := NewImporter(creator, nil, 3, nil)

	rep, err := im.Import(context.Background(), "big.csv", strings.NewReader(essayRows(20)))
	require.NoError(t, err)
	assert.Equal(t, 20, rep.Created)
	assert.LessOrEqual(t, creator.peak.Load(), int32(3))
}

func TestImportParseErrorCreatesNothing(t *testing.T) {
	creator := &fakeCreator{}
	im := NewImporter(creator, nil, 2, nil)

	_, err := im.Import(context.Background(), "bad.csv", strings.NewReader("text\nhello\n"))
	assert.Error(t, err)
	assert.Zero(t, creator.n)
}

// cancellingCreator creates the first question and then cancels the batch.
type cancellingCreator struct {
	cancel context.CancelFunc
	n      atomic.Int32
}

func (c *cancellingCreator) ImportQuestion(ctx context.Context, d domain.QuestionDraft) (domain.Question, error) {
	if c.n.Add(1) == 1 {
		c.cancel()
		return domain.Question{ID: "q1", Text: d.Text}, nil
	}
	return domain.Question{}, ctx.Err()
}

func TestImportCancelledMidBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	im := NewImporter(&cancellingCreator{cancel: cancel}, nil, 1, nil)

	rep, err := im.Import(ctx, "bank.csv", strings.NewReader(essayRows(5)))
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "bank.csv")

	assert.Equal(t, 1, rep.Created)
	assert.Equal(t, 4, rep.Failed)
	assert.Equal(t, "q1", rep.Rows[0].QuestionID)
	assert.Equal(t, context.Canceled.Error(), rep.Rows[4].Message)
}

func TestImportInvalidatesQuestionsOnce(t *testing.T) {
	cache := collection.NewClient(collection.Options{})
	t.Cleanup(cache.Close)

	var fetches atomic.Int32
	fetch := func(context.Context) ([]domain.Question, error) {
		fetches.Add(1)
		return nil, nil
	}
	_, sub := collection.Subscribe(cache, competency.KeyQuestions, fetch, nil)
	t.Cleanup(sub.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := collection.Await[domain.Question](ctx, cache, competency.KeyQuestions)
	require.NoError(t, err)

	im := NewImporter(&fakeCreator{}, cache, 4, nil)
	rep, err := im.Import(ctx, "bank.csv", strings.NewReader(essayRows(5)))
	require.NoError(t, err)
	require.Equal(t, 5, rep.Created)

	_, err = collection.Await[domain.Question](ctx, cache, competency.KeyQuestions)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fetches.Load(), "one refetch for the whole batch")

	// Nothing created: no invalidation.
	_, err = im.Import(ctx, "none.csv", strings.NewReader("competency_id,level,kind,text\nc1,basic,essay,\n"))
	require.NoError(t, err)
	_, err = collection.Await[domain.Question](ctx, cache, competency.KeyQuestions)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fetches.Load())
}

func TestWatchImportsAndMovesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "early.csv"), []byte(essayRows(2)), 0o644))

	im := NewImporter(&fakeCreator{}, nil, 2, nil)
	reports := make(chan Report, 4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- im.Watch(ctx, dir, WatchOptions{
			Settle:   20 * time.Millisecond,
			OnReport: func(r Report) { reports <- r },
		})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	waitReport := func() Report {
		t.Helper()
		select {
		case r := <-reports:
			return r
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for import")
			return Report{}
		}
	}

	first := waitReport()
	assert.Equal(t, "early.csv", first.Source)
	assert.Equal(t, 2, first.Created)
	assert.FileExists(t, filepath.Join(dir, DoneDir, "early.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "early.csv"))

	bad := essayRows(1) + "c1,basic,essay,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.csv"), []byte(bad), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	second := waitReport()
	assert.Equal(t, "late.csv", second.Source)
	assert.Equal(t, 1, second.Invalid)
	assert.FileExists(t, filepath.Join(dir, FailedDir, "late.csv"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}
