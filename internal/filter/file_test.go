package filter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.tex", "Use \\texttt{foo} here.\nA \\texttt{bar} and \\texttt{baz}.\n")
	out := filepath.Join(dir, "out.txt")

	res, err := File(in, out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Replacements)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Use foo here.\nA bar and baz.\n", string(got))

	// input untouched
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "Use \\texttt{foo} here.\nA \\texttt{bar} and \\texttt{baz}.\n", string(orig))
}

func TestFileOverwritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.tex", "short")
	out := writeFixture(t, dir, "out.txt", "a much longer previous body that must go away")

	_, err := File(in, out, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	_, err := File(filepath.Join(dir, "missing.tex"), out, zap.NewNop())
	require.Error(t, err)

	var inErr *InputError
	require.True(t, errors.As(err, &inErr), "expected *InputError, got %T", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output must not be created when input is missing")
}

func TestFileInputIsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := File(dir, filepath.Join(dir, "out.txt"), zap.NewNop())

	var inErr *InputError
	require.True(t, errors.As(err, &inErr), "expected *InputError, got %T", err)
}

func TestFileOutputMissingParent(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.tex", "\\texttt{x}")

	_, err := File(in, filepath.Join(dir, "nope", "out.txt"), zap.NewNop())

	var outErr *OutputError
	require.True(t, errors.As(err, &outErr), "expected *OutputError, got %T", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFileOutputNotWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	in := writeFixture(t, dir, "in.tex", "\\texttt{x}")
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0555))

	_, err := File(in, filepath.Join(locked, "out.txt"), zap.NewNop())

	var outErr *OutputError
	require.True(t, errors.As(err, &outErr), "expected *OutputError, got %T", err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestFileKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.tex", "a\r\n\\texttt{x}\r\n")
	out := filepath.Join(dir, "out.txt")

	_, err := File(in, out, zap.NewNop())
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\r\nx\r\n", string(got), "line endings pass through unchanged")
}
