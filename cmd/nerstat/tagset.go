package main

import (
	"fmt"

	"github.com/revelaction/nerstat/config"
	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/tagset"
)

func tagsetCommand(cfg *config.Config, ui UI) error {
	ts, err := tagset.Load(cfg.Tagset.Path)
	if err != nil {
		return err
	}

	families := ts.Families()
	fmt.Fprintf(ui.Out, "%d tags in %d families\n", ts.Len(), len(families))

	r := render.NewRenderer(ui.Out)
	r.Families(families)
	return nil
}
