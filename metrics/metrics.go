// Package metrics exposes the statistics of a run as Prometheus gauges and
// writes them in the textfile collector format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/revelaction/nerstat/stat"
)

const namespace = "nerstat"

type Metrics struct {
	registry *prometheus.Registry

	documents    *prometheus.GaugeVec
	sentences    *prometheus.GaugeVec
	tokens       prometheus.Gauge
	ratio        prometheus.Gauge
	avgLength    prometheus.Gauge
	skippedLines prometheus.Gauge
	entityTypes  *prometheus.GaugeVec
	qcTypes      *prometheus.GaugeVec
}

// New registers the corpus gauges on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "documents",
			Help:      "Number of document folders by annotation state",
		}, []string{"state"}),
		sentences: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sentences",
			Help:      "Number of sentences, all or with at least one entity",
		}, []string{"kind"}),
		tokens: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tokens",
			Help:      "Number of tokens in annotated documents",
		}),
		ratio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entity_sentence_ratio",
			Help:      "Share of sentences with at least one entity",
		}),
		avgLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "average_sentence_length_tokens",
			Help:      "Average sentence length in tokens",
		}),
		skippedLines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_lines",
			Help:      "Malformed annotation lines skipped while parsing",
		}),
		entityTypes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entity_type_tokens",
			Help:      "Number of tokens tagged with an entity type",
		}, []string{"type"}),
		qcTypes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tagset_mismatches",
			Help:      "Number of types in only one of tagset and corpus",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.documents,
		m.sentences,
		m.tokens,
		m.ratio,
		m.avgLength,
		m.skippedLines,
		m.entityTypes,
		m.qcTypes,
	)

	return m
}

// Observe sets every gauge from the report of a run.
func (m *Metrics) Observe(rep stat.Report, skippedLines int) {
	s := rep.Stats

	m.documents.WithLabelValues("total").Set(float64(s.TotalDocuments))
	m.documents.WithLabelValues("annotated").Set(float64(s.AnnotatedDocuments))
	m.documents.WithLabelValues("unannotated").Set(float64(s.UnannotatedDocuments))

	m.sentences.WithLabelValues("total").Set(float64(s.TotalSentences))
	m.sentences.WithLabelValues("with_entity").Set(float64(s.SentencesWithEntity))

	m.tokens.Set(float64(s.TotalTokens))
	m.ratio.Set(s.EntitySentenceRatio)
	m.avgLength.Set(s.AvgSentenceLength)
	m.skippedLines.Set(float64(skippedLines))

	m.entityTypes.Reset()
	for typ, n := range s.TypeCounts {
		m.entityTypes.WithLabelValues(typ).Set(float64(n))
	}

	m.qcTypes.WithLabelValues("unused").Set(float64(len(rep.QC.Unused)))
	m.qcTypes.WithLabelValues("unknown").Set(float64(len(rep.QC.Unknown)))
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the gauges to path, atomically replacing it.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
