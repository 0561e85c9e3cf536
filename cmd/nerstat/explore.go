package main

import (
	"github.com/revelaction/nerstat/config"
	"github.com/revelaction/nerstat/query"
	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/stat"
)

type ExploreOptions struct {
	Examples int
	NoColor  bool
}

func exploreCommand(cfg *config.Config, opts ExploreOptions, ui UI) error {
	log, err := newLogger(cfg.Log, ui.Err)
	if err != nil {
		return err
	}

	corpus, err := walkWithProgress(newWalker(cfg.Corpus, log), cfg.Corpus.Root)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	// now present the REPL
	h := query.NewHandler(corpus.Docs, stat.Compute(corpus.Docs, corpus.Unannotated), r)
	h.Examples = opts.Examples
	return h.Run()
}
