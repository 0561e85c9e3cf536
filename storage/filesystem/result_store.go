package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/stat"
	"github.com/revelaction/nerstat/storage"
)

const (
	StatsFile   = "stats.json"
	LabelsFile  = "label_counts.csv"
	TypesFile   = "type_counts.csv"
	UnusedFile  = "unused_tags_in_corpus.txt"
	UnknownFile = "unknown_types_in_tagset_comparison.txt"
)

// ResultStore writes the report of a run as plain files in a results
// directory. Every run overwrites the previous one.
type ResultStore struct {
	dir string
}

var _ storage.ResultWriter = (*ResultStore)(nil)

// NewResultStore creates dir if needed.
func NewResultStore(dir string) (*ResultStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &ResultStore{dir: dir}, nil
}

// Write returns the results directory as id.
func (s *ResultStore) Write(rep stat.Report) (string, error) {
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{StatsFile, func(w io.Writer) error { return render.NewJSONRenderer(w).Render(rep.Stats) }},
		{LabelsFile, func(w io.Writer) error { return render.WriteCounts(w, rep.Stats.LabelCounts, "label") }},
		{TypesFile, func(w io.Writer) error { return render.WriteCounts(w, rep.Stats.TypeCounts, "entity_type") }},
		{UnusedFile, func(w io.Writer) error { return render.WriteLines(w, rep.QC.Unused) }},
		{UnknownFile, func(w io.Writer) error { return render.WriteLines(w, rep.QC.Unknown) }},
	}

	for _, f := range files {
		if err := s.writeFile(f.name, f.write); err != nil {
			return "", err
		}
	}

	return s.dir, nil
}

func (s *ResultStore) writeFile(name string, write func(io.Writer) error) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return f.Close()
}
