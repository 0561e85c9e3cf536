package stat

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/revelaction/nerstat/tagset"
)

// QC holds the two directional differences between the tagset and the
// entity types seen in the corpus. Both lists are sorted.
type QC struct {
	// Unused are tagset types never seen in the corpus
	Unused []string `json:"unused_in_corpus"`

	// Unknown are corpus types missing from the tagset
	Unknown []string `json:"unknown_in_tagset"`
}

// Compare computes exact, case sensitive set differences between the
// tagset and the keys of types.
func Compare(ts *tagset.Tagset, types Counts) QC {
	seen := mapset.NewThreadUnsafeSet[string](types.Keys()...)
	canonical := ts.All()

	return QC{
		Unused:  mapset.Sorted(canonical.Difference(seen)),
		Unknown: mapset.Sorted(seen.Difference(canonical)),
	}
}

// Report bundles everything a run produces.
type Report struct {
	// Root is the annotation root the run read
	Root       string `json:"root,omitempty"`
	Stats      Stats  `json:"stats"`
	QC         QC     `json:"qc"`
	TagsetSize int    `json:"tagset_size"`
}

func NewReport(stats Stats, ts *tagset.Tagset) Report {
	return Report{
		Stats:      stats,
		QC:         Compare(ts, stats.TypeCounts),
		TagsetSize: ts.Len(),
	}
}
