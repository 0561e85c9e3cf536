// Package config loads the nerstat settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/revelaction/nerstat/conll"
	"github.com/revelaction/nerstat/walk"
)

// Config is the root configuration.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`
	Tagset TagsetConfig `yaml:"tagset"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// CorpusConfig holds the annotation root, the column layout and the file
// selection policy.
type CorpusConfig struct {
	Root             string   `yaml:"root"              env:"NERSTAT_DATA_ROOT"         env-default:"data/annotation"`
	TokenColumn      int      `yaml:"token_column"      env:"NERSTAT_TOKEN_COLUMN"      env-default:"0"`
	TagColumn        int      `yaml:"tag_column"        env:"NERSTAT_TAG_COLUMN"        env-default:"-1"`
	MinColumns       int      `yaml:"min_columns"       env:"NERSTAT_MIN_COLUMNS"       env-default:"2"`
	CommentPrefixes  []string `yaml:"comment_prefixes"  env:"NERSTAT_COMMENT_PREFIXES"  env-default:"#,-DOCSTART-"`
	BoundaryPrefixes []string `yaml:"boundary_prefixes" env:"NERSTAT_BOUNDARY_PREFIXES" env-default:"B-,I-,E-,S-"`
	Curated          []string `yaml:"curated"           env:"NERSTAT_CURATED"           env-default:"admin.conll,CURATION_USER.conll,*curation*.conll,*CURATION*.conll"`
	Initial          []string `yaml:"initial"           env:"NERSTAT_INITIAL"           env-default:"INITIAL_CAS.conll"`
	Extension        string   `yaml:"extension"         env:"NERSTAT_EXTENSION"         env-default:".conll"`
	Workers          int      `yaml:"workers"           env:"NERSTAT_WORKERS"           env-default:"1"`
}

// TagsetConfig holds the tagset file location.
type TagsetConfig struct {
	Path string `yaml:"path" env:"NERSTAT_TAGSET" env-default:"data/ENER-tagset.tsv"`
}

// OutputConfig holds where results go.
type OutputConfig struct {
	ResultsDir  string `yaml:"results_dir"  env:"NERSTAT_RESULTS_DIR"  env-default:"results"`
	DBPath      string `yaml:"db_path"      env:"NERSTAT_DB"`
	MetricsFile string `yaml:"metrics_file" env:"NERSTAT_METRICS_FILE"`
	TopN        int    `yaml:"top_n"        env:"NERSTAT_TOP_N"        env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"NERSTAT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"NERSTAT_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path
// loads ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Corpus.Root == "" {
		errs = append(errs, errors.New("corpus.root is required"))
	}
	if c.Corpus.TokenColumn < 0 {
		errs = append(errs, fmt.Errorf("corpus.token_column must be >= 0, got %d", c.Corpus.TokenColumn))
	}
	if c.Corpus.MinColumns < 1 {
		errs = append(errs, fmt.Errorf("corpus.min_columns must be >= 1, got %d", c.Corpus.MinColumns))
	}
	if len(c.Corpus.BoundaryPrefixes) == 0 {
		errs = append(errs, errors.New("corpus.boundary_prefixes must not be empty"))
	}
	if c.Corpus.Workers < 1 {
		errs = append(errs, fmt.Errorf("corpus.workers must be >= 1, got %d", c.Corpus.Workers))
	}
	if c.Tagset.Path == "" {
		errs = append(errs, errors.New("tagset.path is required"))
	}
	if c.Output.TopN < 1 {
		errs = append(errs, fmt.Errorf("output.top_n must be >= 1, got %d", c.Output.TopN))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Parser returns the column layout of the parser.
func (c CorpusConfig) Parser() conll.Config {
	return conll.Config{
		TokenColumn:      c.TokenColumn,
		TagColumn:        c.TagColumn,
		MinColumns:       c.MinColumns,
		CommentPrefixes:  c.CommentPrefixes,
		BoundaryPrefixes: c.BoundaryPrefixes,
	}
}

// Walk returns the file selection policy of the walker.
func (c CorpusConfig) Walk() walk.Config {
	return walk.Config{
		Curated:   c.Curated,
		Initial:   c.Initial,
		Extension: c.Extension,
		Workers:   c.Workers,
	}
}
