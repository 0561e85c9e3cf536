package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/nerstat/sentence"
	"github.com/revelaction/nerstat/stat"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Summary(stat.Stats{TotalDocuments: 3, TotalSentences: 2, SentencesWithEntity: 1, EntitySentenceRatio: 0.5})

	out := buf.String()
	assert.Contains(t, out, "Total document folders      : 3")
	assert.Contains(t, out, "Entity sentence ratio       : 0.500")
	assert.NotContains(t, out, "\033[")
}

func TestTopTypes(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.TopN = 2
	r.TopTypes(stat.Counts{"PERSON": 10, "DATE": 5, "LOC_CITY": 1})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "=== Top 2 Entity Types ===", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "PERSON "))
	assert.True(t, strings.HasSuffix(lines[1], " 10"))
	assert.Equal(t, barWidth, strings.Count(lines[1], "█"))
	assert.Equal(t, barWidth/2, strings.Count(lines[2], "█"))
}

func TestTopTypesEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).TopTypes(stat.Counts{})
	assert.Empty(t, buf.String())
}

func TestCoverage(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Coverage(stat.Stats{TotalSentences: 4, SentencesWithEntity: 1})

	assert.Contains(t, buf.String(), "With Entity    ")
	assert.Contains(t, buf.String(), " 3\n")
}

func TestBins(t *testing.T) {
	bins := Bins(map[int]int{1: 2, 2: 1, 5: 4}, 2)
	assert.Equal(t, []stat.Count{{Key: "1-3", Count: 3}, {Key: "4-6", Count: 4}}, bins)

	bins = Bins(map[int]int{7: 3}, 30)
	assert.Equal(t, []stat.Count{{Key: "7", Count: 3}}, bins)

	assert.Nil(t, Bins(nil, 30))
}

func TestSentenceString(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	s := sent.Sentence{Tokens: []sent.Token{
		sent.NewToken("Ali", "B-PERSON"),
		sent.NewToken("geldi", "O"),
	}}

	assert.Equal(t, "Ali/B-PERSON geldi", r.SentenceString(s))

	r.HasColor = true
	assert.Contains(t, r.SentenceString(s), Yellow256)
}

func TestFamilies(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Families(map[string][]string{"LOC": {"LOC_CITY"}, "BASE": {"DATE", "PERSON"}})

	assert.Equal(t, "BASE (2): DATE, PERSON\nLOC (1): LOC_CITY\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	s := stat.Stats{TotalDocuments: 1, LabelCounts: stat.Counts{"O": 2}, TypeCounts: stat.Counts{}}
	require.NoError(t, NewJSONRenderer(&buf).Render(s))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1.0, got["total_document_folders"])
	assert.Equal(t, map[string]any{"O": 2.0}, got["label_counts"])
}

func TestJSONRendererCountsByFrequency(t *testing.T) {
	var buf bytes.Buffer
	s := stat.Stats{LabelCounts: stat.Counts{"B-AGE": 1, "O": 9, "B-PERSON": 4}, TypeCounts: stat.Counts{}}
	require.NoError(t, NewJSONRenderer(&buf).Render(s))

	out := buf.String()
	o, person, age := strings.Index(out, `"O": 9`), strings.Index(out, `"B-PERSON": 4`), strings.Index(out, `"B-AGE": 1`)
	require.True(t, o > 0 && person > 0 && age > 0, out)
	assert.Less(t, o, person)
	assert.Less(t, person, age)
}

func TestWriteCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCounts(&buf, stat.Counts{"DATE": 1, "PERSON": 3, "AGE": 1}, "entity_type"))

	assert.Equal(t, "entity_type,count\nPERSON,3\nAGE,1\nDATE,1\n", buf.String())
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, []string{"DATE", "LOC_CITY"}))
	assert.Equal(t, "DATE\nLOC_CITY\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteLines(&buf, nil))
	assert.Empty(t, buf.String())
}
