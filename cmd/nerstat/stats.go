package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/sirupsen/logrus"

	"github.com/revelaction/nerstat/config"
	"github.com/revelaction/nerstat/metrics"
	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/stat"
	"github.com/revelaction/nerstat/tagset"
	"github.com/revelaction/nerstat/walk"
)

type StatsOptions struct {
	Progress bool
	NoColor  bool
}

func statsCommand(cfg *config.Config, opts StatsOptions, ui UI) error {
	log, err := newLogger(cfg.Log, ui.Err)
	if err != nil {
		return err
	}

	// a missing tagset is fatal, fail before walking
	ts, err := tagset.Load(cfg.Tagset.Path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": cfg.Tagset.Path, "tags": ts.Len()}).Info("tagset loaded")

	w := newWalker(cfg.Corpus, log)

	var corpus walk.Corpus
	if opts.Progress {
		corpus, err = walkWithProgress(w, cfg.Corpus.Root)
	} else {
		corpus, err = w.Walk(cfg.Corpus.Root)
	}
	if err != nil {
		return err
	}

	stats := stat.Compute(corpus.Docs, corpus.Unannotated)
	rep := stat.NewReport(stats, ts)
	rep.Root = cfg.Corpus.Root

	p := &Pool{}
	defer p.Close()

	writers, err := NewResultWriters(p, cfg.Output)
	if err != nil {
		return err
	}
	for _, wr := range writers {
		id, err := wr.Write(rep)
		if err != nil {
			return err
		}
		log.WithField("id", id).Info("results written")
	}

	if cfg.Output.MetricsFile != "" {
		m := metrics.New()
		m.Observe(rep, corpus.SkippedLines)
		if err := m.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			return err
		}
		log.WithField("path", cfg.Output.MetricsFile).Info("metrics written")
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.TopN = cfg.Output.TopN

	r.Summary(stats)
	fmt.Fprintln(ui.Out)
	r.QC(rep)
	fmt.Fprintln(ui.Out)
	r.TopTypes(stats.TypeCounts)
	fmt.Fprintln(ui.Out)
	r.Coverage(stats)
	fmt.Fprintln(ui.Out)
	r.Histogram(stats.SentenceLengths)

	fmt.Fprintf(ui.Out, "\nResults saved to %s\n", cfg.Output.ResultsDir)
	return nil
}

func walkWithProgress(w *walk.Walker, root string) (walk.Corpus, error) {
	uiprogress.Start()
	bar := uiprogress.AddBar(1) // Placeholder, updated in callback
	bar.AppendCompleted()
	bar.PrependElapsed()

	var currentName string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return currentName
	})

	w.Progress = func(done, total int, name string) {
		if bar.Total != total {
			bar.Total = total
		}
		currentName = name
		bar.Set(done)
	}

	corpus, err := w.Walk(root)
	uiprogress.Stop()
	return corpus, err
}
