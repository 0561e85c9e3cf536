package main

import (
	"fmt"

	"github.com/revelaction/nerstat/config"
	"github.com/revelaction/nerstat/render"
)

// runsCommand lists the stored runs, or shows one run when id is given.
func runsCommand(cfg *config.Config, id string, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewResultRepository(p, cfg.Output.DBPath)
	if err != nil {
		return err
	}

	if id == "" {
		runs, err := repo.List()
		if err != nil {
			return err
		}
		for _, run := range runs {
			fmt.Fprintf(ui.Out, "🗂  %s %s %s docs=%d sentences=%d tokens=%d\n",
				run.Id, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Root,
				run.Stats.TotalDocuments, run.Stats.TotalSentences, run.Stats.TotalTokens)
		}
		return nil
	}

	rep, err := repo.Read(id)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.TopN = cfg.Output.TopN
	r.Summary(rep.Stats)
	fmt.Fprintln(ui.Out)
	r.QC(rep)
	fmt.Fprintln(ui.Out)
	r.TopTypes(rep.Stats.TypeCounts)
	return nil
}
