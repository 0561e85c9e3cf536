package main

import (
	"fmt"
	"path/filepath"

	"github.com/revelaction/nerstat/config"
	"github.com/revelaction/nerstat/conll"
	"github.com/revelaction/nerstat/render"
	sent "github.com/revelaction/nerstat/sentence"
	"github.com/revelaction/nerstat/walk"
)

type DocOptions struct {
	Name  string
	Start int
	Count int
}

func docCommand(cfg *config.Config, opts DocOptions, ui UI) error {
	log, err := newLogger(cfg.Log, ui.Err)
	if err != nil {
		return err
	}

	dirs, err := walk.Discover(cfg.Corpus.Root)
	if err != nil {
		return err
	}

	var dir *walk.DocDir
	for i := range dirs {
		if dirs[i].Name == opts.Name {
			dir = &dirs[i]
			break
		}
	}
	if dir == nil {
		return fmt.Errorf("document folder %q not found in %s", opts.Name, cfg.Corpus.Root)
	}

	name, ok := walk.Select(dir.Files, cfg.Corpus.Walk())
	if !ok {
		return fmt.Errorf("document folder %q has no annotation file", opts.Name)
	}

	path := filepath.Join(dir.Path, name)
	res, err := conll.NewParser(cfg.Corpus.Parser()).Parse(path)
	if err != nil {
		return fmt.Errorf("annotation file %q: %w", path, err)
	}

	for _, w := range res.Warnings {
		log.WithField("file", name).WithField("line", w.Line).Warn(w.Reason)
	}

	fmt.Fprintf(ui.Out, "📖 %s %s (%d sentences)\n", opts.Name, name, len(res.Sentences))
	renderDoc(sent.Doc{Title: opts.Name, Path: path, Sentences: res.Sentences}, opts, ui)
	return nil
}

func renderDoc(doc sent.Doc, opts DocOptions, ui UI) {
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start >= len(doc.Sentences) {
		return
	}

	sentences := doc.Sentences[start:]
	if opts.Count >= 0 && opts.Count < len(sentences) {
		sentences = sentences[:opts.Count]
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = false
	for i, sentence := range sentences {
		prefix := fmt.Sprintf("✍  %d ", start+i)
		r.Sentence(sentence, prefix)
	}
}
