package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/nerstat/walk"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/annotation", cfg.Corpus.Root)
	assert.Equal(t, -1, cfg.Corpus.TagColumn)
	assert.Equal(t, 2, cfg.Corpus.MinColumns)
	assert.Equal(t, []string{"#", "-DOCSTART-"}, cfg.Corpus.CommentPrefixes)
	assert.Equal(t, []string{"B-", "I-", "E-", "S-"}, cfg.Corpus.BoundaryPrefixes)
	assert.Equal(t, []string{"admin.conll", "CURATION_USER.conll", "*curation*.conll", "*CURATION*.conll"}, cfg.Corpus.Curated)
	assert.Equal(t, "data/ENER-tagset.tsv", cfg.Tagset.Path)
	assert.Equal(t, "results", cfg.Output.ResultsDir)
	assert.Equal(t, 20, cfg.Output.TopN)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NERSTAT_DATA_ROOT", "/srv/corpus")
	t.Setenv("NERSTAT_TAG_COLUMN", "2")
	t.Setenv("NERSTAT_WORKERS", "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/corpus", cfg.Corpus.Root)
	assert.Equal(t, 2, cfg.Corpus.TagColumn)
	assert.Equal(t, 8, cfg.Corpus.Workers)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "nerstat.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "corpus/annotation", cfg.Corpus.Root)
	assert.Equal(t, 3, cfg.Corpus.TagColumn)
	assert.Equal(t, []string{"admin.conll"}, cfg.Corpus.Curated)
	assert.Equal(t, []string{"INITIAL_CAS.conll"}, cfg.Corpus.Initial)
	assert.Equal(t, 4, cfg.Corpus.Workers)
	assert.Equal(t, "out/runs.db", cfg.Output.DBPath)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Corpus.Workers = 0
	cfg.Output.TopN = 0
	cfg.Log.Format = "xml"

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus.workers")
	assert.Contains(t, err.Error(), "output.top_n")
	assert.Contains(t, err.Error(), "log.format")
}

func TestParserAndWalkConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	pc := cfg.Corpus.Parser()
	assert.Equal(t, -1, pc.TagColumn)
	assert.Equal(t, cfg.Corpus.BoundaryPrefixes, pc.BoundaryPrefixes)

	wc := cfg.Corpus.Walk()
	assert.Equal(t, ".conll", wc.Extension)
	assert.Equal(t, 1, wc.Workers)

	name, ok := walk.Select([]string{"CURATION_USER.conll", "INITIAL_CAS.conll"}, wc)
	assert.True(t, ok)
	assert.Equal(t, "CURATION_USER.conll", name)
}
