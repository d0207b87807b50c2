package fixedfmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
)

const table3x4 = `# day a b c
  0.0   1.5  -2.0  3e2
  1.0   1.6  -2.1  3.1e2

  2.0   1.7  -2.2  3.2e2
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadTable(t *testing.T) {
	p := writeFile(t, t.TempDir(), "t.out", table3x4)
	T, err := ReadTable(p)
	require.NoError(t, err)
	require.Equal(t, 3, T.Len())
	assert.Equal(t, 4, T.Width())
	assert.Equal(t, Row{1, 1.6, -2.1, 310}, T.Rows[1])
	assert.Equal(t, 2.0, T.Rows[2].At(0))
	assert.Equal(t, 320.0, T.Rows[2].FromEnd(1))
	assert.Equal(t, -2.2, T.Rows[2].FromEnd(2))
}

func TestReadTableMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{"ragged", "1 2 3\n4 5\n", 2},
		{"not a number", "1 2 3\n4 x 6\n", 2},
		{"nan", "1 2 3\n4 NaN 6\n", 2},
		{"empty", "\n# only a comment\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "bad.out", tt.content)
			_, err := ReadTable(p)
			var target *rce.MalformedFormatError
			require.True(t, errors.As(err, &target), "got %v", err)
			assert.Equal(t, p, target.FileName())
			assert.Equal(t, tt.line, target.Line())
		})
	}
}

func TestReadTableMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nothere.out")
	_, err := ReadTable(p)
	var target *rce.MissingFileError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, p, target.FileName())
	assert.Contains(t, err.Error(), "nothere.out")
}

func TestReadTableCompressed(t *testing.T) {
	dir := t.TempDir()

	zp := filepath.Join(dir, "t.out.zst")
	zf, err := os.Create(zp)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(zf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(table3x4))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())

	gp := filepath.Join(dir, "g.out.gz")
	gf, err := os.Create(gp)
	require.NoError(t, err)
	gw := gzip.NewWriter(gf)
	_, err = gw.Write([]byte(table3x4))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, gf.Close())

	plain, err := ReadTable(writeFile(t, dir, "plain.out", table3x4))
	require.NoError(t, err)
	for _, p := range []string{zp, gp} {
		T, err := ReadTable(p)
		require.NoError(t, err, p)
		assert.Equal(t, plain.Rows, T.Rows, p)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "time.out")

	_, err := Resolve(base)
	var missing *rce.MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, base, missing.FileName())

	writeFile(t, dir, "time.out.gz", "")
	got, err := Resolve(base)
	require.NoError(t, err)
	assert.Equal(t, base+".gz", got)

	writeFile(t, dir, "time.out", "")
	got, err = Resolve(base)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestReadLines(t *testing.T) {
	p := writeFile(t, t.TempDir(), "params.in", "header\r\n  5  \n\nlast")
	lines, err := ReadLines(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"header", "  5  ", "", "last"}, lines)
}

func TestReadTableInlineComments(t *testing.T) {
	p := writeFile(t, t.TempDir(), "t.out", "0 1 2 # first\n  # only a comment\n1 2 3#tight\n")
	T, err := ReadTable(p)
	require.NoError(t, err)
	assert.Equal(t, []Row{{0, 1, 2}, {1, 2, 3}}, T.Rows)
}

func TestReadLinesIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "params.in.gz", "header\n  5  \n")
	lines, err := ReadLines(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"header", "  5  "}, lines)

	//a real gzip stream comes back as its raw bytes
	gp := filepath.Join(dir, "real.in.gz")
	gf, err := os.Create(gp)
	require.NoError(t, err)
	gw := gzip.NewWriter(gf)
	_, err = gw.Write([]byte("header\n  5  \n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, gf.Close())
	lines, err = ReadLines(gp)
	require.NoError(t, err)
	assert.NotContains(t, lines, "  5  ")
}
