package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nerstat/config"
)

// loadConfig reads the configuration and applies the command line flags
// given explicitly on top of it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("data-root") {
		cfg.Corpus.Root = c.String("data-root")
	}
	if c.IsSet("tag-column") {
		cfg.Corpus.TagColumn = c.Int("tag-column")
	}
	if c.IsSet("workers") {
		cfg.Corpus.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("tagset") {
		cfg.Tagset.Path = c.String("tagset")
	}
	if c.IsSet("results-dir") {
		cfg.Output.ResultsDir = c.String("results-dir")
	}
	if c.IsSet("db") {
		cfg.Output.DBPath = c.String("db")
	}
	if c.IsSet("metrics-file") {
		cfg.Output.MetricsFile = c.String("metrics-file")
	}
	if c.IsSet("top") {
		cfg.Output.TopN = c.Int("top")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
