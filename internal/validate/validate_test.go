package validate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	err  error
	boom any
}

func (s stubParser) Parse(string) error {
	if s.boom != nil {
		panic(s.boom)
	}
	return s.err
}

func TestContentPass(t *testing.T) {
	out := Content(stubParser{}, "anything")
	assert.True(t, out.Passed)
	assert.Empty(t, out.Reason)
}

func TestContentEngineError(t *testing.T) {
	out := Content(stubParser{err: errors.New("line 3, column 7: unexpected token")}, "x")
	require.False(t, out.Passed)
	assert.Equal(t, KindEngine, out.Kind)
	assert.Contains(t, out.Reason, "line 3")
}

func TestContentEmptyErrorMessageGetsReason(t *testing.T) {
	out := Content(stubParser{err: errors.New("")}, "x")
	require.False(t, out.Passed)
	assert.NotEmpty(t, out.Reason)
}

func TestContentRecoversPanic(t *testing.T) {
	out := Content(stubParser{boom: "index out of range"}, "x")
	require.False(t, out.Passed)
	assert.Equal(t, KindEngine, out.Kind)
	assert.Contains(t, out.Reason, "index out of range")
}

func TestContentInvalidUTF8(t *testing.T) {
	out := Content(stubParser{}, string([]byte{0xff, 0xfe, 0xfd}))
	require.False(t, out.Passed)
	assert.Equal(t, KindLex, out.Kind)
}

func TestFileUnreadable(t *testing.T) {
	out := File(stubParser{}, filepath.Join(t.TempDir(), "absent.rts"))
	require.False(t, out.Passed)
	assert.Equal(t, KindIO, out.Kind)
	assert.NotEmpty(t, out.Reason)
}

func TestFileReadsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.rts")
	require.NoError(t, os.WriteFile(path, []byte("data\n"), 0o644))

	out := File(stubParser{}, path)
	assert.True(t, out.Passed)

	out = File(stubParser{err: errors.New("no")}, path)
	assert.False(t, out.Passed)
}
