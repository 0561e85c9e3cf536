package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/nerstat/stat"
)

func sampleReport() stat.Report {
	return stat.Report{
		Stats: stat.Stats{
			TotalDocuments:       3,
			AnnotatedDocuments:   1,
			UnannotatedDocuments: 2,
			TotalSentences:       2,
			SentencesWithEntity:  1,
			EntitySentenceRatio:  0.5,
			TotalTokens:          4,
			AvgSentenceLength:    2,
			TypeCounts:           stat.Counts{"PERSON": 1, "DATE": 1},
		},
		QC: stat.QC{Unused: []string{"LOC_CITY"}},
	}
}

func TestObserve(t *testing.T) {
	m := New()
	m.Observe(sampleReport(), 7)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.documents.WithLabelValues("total")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.documents.WithLabelValues("unannotated")))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.ratio))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.skippedLines))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entityTypes.WithLabelValues("PERSON")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.qcTypes.WithLabelValues("unused")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.qcTypes.WithLabelValues("unknown")))
}

func TestObserveResetsTypes(t *testing.T) {
	m := New()
	m.Observe(sampleReport(), 0)

	rep := sampleReport()
	rep.Stats.TypeCounts = stat.Counts{"ORG": 5}
	m.Observe(rep, 0)

	assert.Equal(t, 1, testutil.CollectAndCount(m.entityTypes))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Observe(sampleReport(), 0)

	path := filepath.Join(t.TempDir(), "nerstat.prom")
	require.NoError(t, m.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.True(t, strings.Contains(out, `nerstat_entity_type_tokens{type="PERSON"} 1`))
	assert.True(t, strings.Contains(out, "nerstat_tokens 4"))
	assert.True(t, strings.Contains(out, "# HELP nerstat_entity_sentence_ratio"))
}
