package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtscheck/internal/validate"
)

func pass() validate.Outcome { return validate.Outcome{Passed: true} }
func fail() validate.Outcome {
	return validate.Outcome{Kind: validate.KindSyntax, Reason: "unexpected token"}
}

func TestSummaryPartitionsTotal(t *testing.T) {
	l := New()
	l.Record("a.rts", pass())
	l.Record("b.rts", fail())
	l.Record("c.rts", pass())

	s := l.Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, s.Total, s.Passed+s.Failed)
}

func TestRecordLastWriteWins(t *testing.T) {
	l := New()
	l.Record("a.rts", fail())
	l.Record("a.rts", pass())

	s := l.Summary()
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, StatusPass, l.Entries()["a.rts"])
}

func TestEntriesIsACopy(t *testing.T) {
	l := New()
	l.Record("a.rts", pass())

	entries := l.Entries()
	entries["a.rts"] = "mangled"
	assert.Equal(t, StatusPass, l.Entries()["a.rts"])
}

func TestPersistRoundTrip(t *testing.T) {
	l := New()
	l.Record("a.rts", pass())
	l.Record("b.rts", fail())
	l.Record("weird name (1).rts", pass())

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, l.Persist(path))

	loaded, err := LoadPrior(path)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), loaded)
}

func TestPersistReplacesPriorContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	first := New()
	first.Record("old.rts", fail())
	require.NoError(t, first.Persist(path))

	second := New()
	second.Record("new.rts", pass())
	require.NoError(t, second.Persist(path))

	loaded, err := LoadPrior(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"new.rts": StatusPass}, loaded)
}

func TestLoadPriorMissingFile(t *testing.T) {
	loaded, err := LoadPrior(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadPriorCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded, err := LoadPrior(path)
	assert.Error(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}
