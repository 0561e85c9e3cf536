package storage

import (
	"time"

	"github.com/revelaction/nerstat/stat"
)

// ResultWriter defines write operations for run results
type ResultWriter interface {
	// Write persists the report of a run and returns its id
	Write(rep stat.Report) (string, error)
}

// RunMeta describes a stored run without its counts.
type RunMeta struct {
	Id        string
	CreatedAt time.Time
	Root      string
	Stats     stat.Stats
}

// ResultReader defines read operations for run results
type ResultReader interface {
	// List returns the stored runs, newest first
	List() ([]RunMeta, error)

	// Read returns the full report of a run
	Read(id string) (stat.Report, error)
}

// ResultRepository combines read and write operations
type ResultRepository interface {
	ResultReader
	ResultWriter
}
