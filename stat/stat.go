// Package stat aggregates corpus statistics and compares the observed
// entity types with the canonical tagset.
package stat

import (
	sent "github.com/revelaction/nerstat/sentence"
)

// Stats is the corpus summary.
type Stats struct {
	TotalDocuments       int     `json:"total_document_folders"`
	AnnotatedDocuments   int     `json:"annotated_documents"`
	UnannotatedDocuments int     `json:"unannotated_documents"`
	TotalSentences       int     `json:"total_sentences"`
	SentencesWithEntity  int     `json:"sentences_with_entity"`
	EntitySentenceRatio  float64 `json:"entity_sentence_ratio"`
	TotalTokens          int     `json:"total_tokens"`
	NumLabels            int     `json:"num_entity_labels_bio"`
	NumTypes             int     `json:"num_entity_types"`
	AvgSentenceLength    float64 `json:"average_sentence_length"`

	// LabelCounts counts full BIO tags, O included
	LabelCounts Counts `json:"label_counts"`

	// TypeCounts counts entity types over B- and I- tokens alike
	TypeCounts Counts `json:"type_counts"`

	// SentenceLengths maps a sentence length in tokens to the number of
	// sentences of that length
	SentenceLengths map[int]int `json:"sentence_lengths"`
}

type Handler struct {
	stats Stats
}

func NewHandler() *Handler {
	stats := Stats{
		LabelCounts:     Counts{},
		TypeCounts:      Counts{},
		SentenceLengths: map[int]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds a parsed document to the statistics. A document without
// sentences counts as unannotated.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.TotalDocuments++

	sentences := 0
	for _, sentence := range doc.Sentences {
		if len(sentence.Tokens) == 0 {
			continue
		}

		sentences++
		h.stats.TotalTokens += len(sentence.Tokens)
		h.stats.SentenceLengths[len(sentence.Tokens)]++

		hasEntity := false
		for _, tok := range sentence.Tokens {
			h.stats.LabelCounts[tok.Tag]++
			if tok.Tag == sent.Outside {
				continue
			}

			hasEntity = true
			if tok.Type != "" {
				h.stats.TypeCounts[tok.Type]++
			}
		}

		if hasEntity {
			h.stats.SentencesWithEntity++
		}
	}

	if sentences == 0 {
		h.stats.UnannotatedDocuments++
		return
	}

	h.stats.AnnotatedDocuments++
	h.stats.TotalSentences += sentences
}

// AddUnannotated counts n document folders that produced no document.
func (h *Handler) AddUnannotated(n int) {
	h.stats.TotalDocuments += n
	h.stats.UnannotatedDocuments += n
}

// Get returns the statistics aggregated so far with the derived values
// filled in.
func (h *Handler) Get() Stats {
	s := h.stats

	s.NumLabels = len(s.LabelCounts)
	s.NumTypes = len(s.TypeCounts)

	if s.TotalSentences > 0 {
		s.EntitySentenceRatio = float64(s.SentencesWithEntity) / float64(s.TotalSentences)
		s.AvgSentenceLength = float64(s.TotalTokens) / float64(s.TotalSentences)
	}

	return s
}

// Compute aggregates a whole library plus the number of folders that were
// not annotated.
func Compute(docs sent.Library, unannotated int) Stats {
	hdl := NewHandler()
	for _, doc := range docs {
		hdl.Aggregate(doc)
	}
	hdl.AddUnannotated(unannotated)

	return hdl.Get()
}
