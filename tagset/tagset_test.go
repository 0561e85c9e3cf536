package tagset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTSV(t *testing.T) {
	ts, err := Load(filepath.Join("testdata", "sample.tsv"))
	require.NoError(t, err)

	assert.Equal(t, 3, ts.Len())
	assert.Equal(t, []string{"DATE", "LOC_CITY", "PERSON"}, ts.Names())

	e, ok := ts.Entry("LOC_CITY")
	require.True(t, ok)
	assert.Equal(t, "LOC", e.Family)
	assert.Equal(t, "Cities", e.Description)

	e, ok = ts.Entry("DATE")
	require.True(t, ok)
	assert.Equal(t, BaseFamily, e.Family)
}

func TestLoadSpreadsheetExport(t *testing.T) {
	ts, err := Load(filepath.Join("testdata", "ener_sample.csv"))
	require.NoError(t, err)

	// header skipped, duplicate AGE collapsed
	assert.Equal(t, 7, ts.Len())
	assert.True(t, ts.Contains("FAC_AIRPORT"))
	assert.False(t, ts.Contains("Named Entity tags"))
}

func TestLoadBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFPERSON\nDATE\n"), 0644))

	ts, err := Load(path)
	require.NoError(t, err)

	assert.True(t, ts.Contains("PERSON"))
	assert.Equal(t, []string{"DATE", "PERSON"}, ts.Names())
}

func TestLoadBOMBeforeHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom_header.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFNamed Entity,Family,\nPERSON,BASE,\n"), 0644))

	ts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"PERSON"}, ts.Names())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.tsv"))
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.tsv")
}

func TestLoadNoValidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# only a comment\n\n   \n"), 0644))

	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
}

func TestContainsIsCaseSensitive(t *testing.T) {
	ts := New(Entry{Name: "PERSON"})
	assert.True(t, ts.Contains("PERSON"))
	assert.False(t, ts.Contains("person"))
}

func TestAllReturnsCopy(t *testing.T) {
	ts := New(Entry{Name: "PERSON"}, Entry{Name: "DATE"})
	all := ts.All()
	all.Add("GHOST")

	assert.False(t, ts.Contains("GHOST"))
	assert.Equal(t, 2, ts.Len())
}

func TestFamilies(t *testing.T) {
	ts := New(
		Entry{Name: "LOC_CITY"},
		Entry{Name: "FAC_AIRPORT"},
		Entry{Name: "LOC_COUNTRY"},
		Entry{Name: "PERSON"},
		Entry{Name: "ORG"},
	)

	fams := ts.Families()
	assert.Equal(t, []string{"LOC_CITY", "LOC_COUNTRY"}, fams["LOC"])
	assert.Equal(t, []string{"FAC_AIRPORT"}, fams["FAC"])
	assert.Equal(t, []string{"ORG", "PERSON"}, fams[BaseFamily])
}

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, "PRO", FamilyOf("PRO_LANGUAGE"))
	assert.Equal(t, BaseFamily, FamilyOf("PERSON"))
	assert.Equal(t, BaseFamily, FamilyOf("_ODD"))
}
