package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/revelaction/nerstat/config"
	"github.com/revelaction/nerstat/conll"
	"github.com/revelaction/nerstat/storage"
	"github.com/revelaction/nerstat/storage/filesystem"
	"github.com/revelaction/nerstat/storage/sqlite/zombiezen"
	"github.com/revelaction/nerstat/walk"
)

// NewResultWriters returns the results directory writer and, when a
// database is configured, the run history writer.
func NewResultWriters(p *Pool, out config.OutputConfig) ([]storage.ResultWriter, error) {
	fs, err := filesystem.NewResultStore(out.ResultsDir)
	if err != nil {
		return nil, err
	}

	writers := []storage.ResultWriter{fs}
	if out.DBPath == "" {
		return writers, nil
	}

	pool, err := p.Open(out.DBPath)
	if err != nil {
		return nil, err
	}
	return append(writers, zombiezen.NewResultStore(pool)), nil
}

// NewResultRepository opens an existing run history database.
func NewResultRepository(p *Pool, path string) (storage.ResultRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("no run history database given, use --db")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("repository is a directory: %s", path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewResultStore(pool), nil
}

func newWalker(cfg config.CorpusConfig, log logrus.FieldLogger) *walk.Walker {
	return walk.NewWalker(cfg.Walk(), conll.NewParser(cfg.Parser()), log)
}
