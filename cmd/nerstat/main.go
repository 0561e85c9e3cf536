package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	// .env is optional
	_ = godotenv.Load()

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "nerstat: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "nerstat",
		Usage:     "statistics and tagset QC for BIO annotated CoNLL corpora",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration `FILE`",
				EnvVars: []string{"NERSTAT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "walk the corpus, write statistics and QC results",
				Flags: append(corpusFlags(),
					&cli.StringFlag{Name: "tagset", Usage: "canonical tagset `FILE`"},
					&cli.StringFlag{Name: "results-dir", Usage: "output `DIR`"},
					&cli.StringFlag{Name: "db", Usage: "SQLite run history `FILE`"},
					&cli.StringFlag{Name: "metrics-file", Usage: "Prometheus textfile `FILE`"},
					&cli.IntFlag{Name: "top", Usage: "number of entity types in the bar chart"},
					&cli.BoolFlag{Name: "progress", Usage: "show a progress bar while walking"},
					&cli.BoolFlag{Name: "no-color", Usage: "disable colors"},
				),
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return statsCommand(cfg, StatsOptions{
						Progress: c.Bool("progress"),
						NoColor:  c.Bool("no-color"),
					}, ui)
				},
			},
			{
				Name:      "doc",
				Usage:     "print the parsed sentences of one document folder",
				ArgsUsage: "<folder>",
				Flags: append(corpusFlags(),
					&cli.IntFlag{Name: "start", Usage: "first sentence index"},
					&cli.IntFlag{Name: "count", Value: -1, Usage: "number of sentences, -1 for all"},
				),
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					if c.NArg() != 1 {
						return fmt.Errorf("doc: expected one document folder, got %d arguments", c.NArg())
					}
					return docCommand(cfg, DocOptions{
						Name:  c.Args().First(),
						Start: c.Int("start"),
						Count: c.Int("count"),
					}, ui)
				},
			},
			{
				Name:  "tagset",
				Usage: "list the tagset grouped by family",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tagset", Usage: "canonical tagset `FILE`"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return tagsetCommand(cfg, ui)
				},
			},
			{
				Name:  "explore",
				Usage: "interactively look up labels and entity types",
				Flags: append(corpusFlags(),
					&cli.IntFlag{Name: "examples", Value: 3, Usage: "example sentences per answer"},
					&cli.BoolFlag{Name: "no-color", Usage: "disable colors"},
				),
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return exploreCommand(cfg, ExploreOptions{
						Examples: c.Int("examples"),
						NoColor:  c.Bool("no-color"),
					}, ui)
				},
			},
			{
				Name:      "runs",
				Usage:     "list or show stored runs",
				ArgsUsage: "[run id]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "SQLite run history `FILE`"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return runsCommand(cfg, c.Args().First(), ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "data-root", Usage: "annotation root `DIR`"},
		&cli.IntFlag{Name: "tag-column", Usage: "tag column index, negative counts from the end"},
		&cli.IntFlag{Name: "workers", Usage: "documents parsed concurrently"},
		&cli.StringFlag{Name: "log-level", Usage: "log level"},
	}
}
