package bulk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/domain"
)

const sampleCSV = `Kind,Competency_ID,Level,Text,Options,Correct,Answer,Rubric,Max_Words
mc,c1,basic,Pick the channel op,send|receive|close,1,,,
tf,c1,EXPERT,Maps are ordered,,,false,,
essay,c2,Advanced,Explain context cancellation,,,,,250

essay,c2,advanced,,,,,,
mc,c1,basic,Only one option,alone,0,,,
tf,c1,basic,No answer given,,,,,
poll,c1,basic,What now?,,,,,
`

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 7, "blank lines are skipped")

	mc := rows[0]
	require.NoError(t, mc.Err)
	assert.Equal(t, 2, mc.Line)
	assert.Equal(t, domain.LevelBasic, mc.Draft.Level)
	assert.Equal(t, domain.MultipleChoice{Options: []string{"send", "receive", "close"}, Correct: 1}, mc.Draft.Body)

	tf := rows[1]
	require.NoError(t, tf.Err)
	body, ok := tf.Draft.Body.(domain.TrueFalse)
	require.True(t, ok)
	require.NotNil(t, body.Answer)
	assert.False(t, *body.Answer)

	essay := rows[2]
	require.NoError(t, essay.Err)
	assert.Equal(t, domain.Essay{MaxWords: 250}, essay.Draft.Body)

	assert.Equal(t, 6, rows[3].Line)
	for _, r := range rows[3:] {
		assert.Error(t, r.Err, "line %d", r.Line)
	}
}

func TestParseRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"missing column", "competency_id,level,text\nc1,basic,hi\n"},
		{"bad quoting", "competency_id,level,kind,text\nc1,basic,essay,\"unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestParseBadNumbers(t *testing.T) {
	in := "competency_id,level,kind,text,correct,answer,max_words\n" +
		"c1,basic,mc,q,one,,\n" +
		"c1,basic,tf,q,,maybe,\n" +
		"c1,basic,essay,q,,,lots\n"
	rows, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.ErrorContains(t, rows[0].Err, "correct")
	assert.ErrorContains(t, rows[1].Err, "answer")
	assert.ErrorContains(t, rows[2].Err, "max_words")
}
