package params

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
	"github.com/ankurk017/RCE-1D-Emanuel/schema"
)

//writeConfig writes a params_ver2.in-like file with n lines. Value lines hold
//"  v<line>  ", everything else a header.
func writeConfig(t *testing.T, dir string, n int) string {
	t.Helper()
	values := make(map[int]bool)
	for _, p := range schema.Params.Positions {
		values[p] = true
	}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if values[i] {
			fmt.Fprintf(&b, "  v%d  \n", i)
		} else {
			fmt.Fprintf(&b, "--- header %d ---\n", i)
		}
	}
	p := filepath.Join(dir, "params_ver2.in")
	require.NoError(t, os.WriteFile(p, []byte(b.String()), 0o644))
	return p
}

func TestExtract(t *testing.T) {
	src := writeConfig(t, t.TempDir(), 60)
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	require.Len(t, ex.Params, len(schema.Params.Meta))

	seen := make(map[int]bool)
	for i, p := range ex.Params {
		assert.Equal(t, schema.Params.Meta[i].Name, p.Descriptor.Name)
		assert.False(t, seen[p.Descriptor.SourcePosition])
		seen[p.Descriptor.SourcePosition] = true
		assert.Equal(t, fmt.Sprintf("v%d", p.Descriptor.SourcePosition), p.Value)
	}
	v, ok := ex.Value("SCON")
	require.True(t, ok)
	assert.Equal(t, "v15", v)
}

func TestExtractTruncated(t *testing.T) {
	src := writeConfig(t, t.TempDir(), 50)
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	require.Len(t, ex.Params, len(schema.Params.Meta))
	for _, p := range ex.Params {
		if p.Descriptor.SourcePosition > 50 {
			assert.Empty(t, p.Value, p.Descriptor.Name)
		} else {
			assert.NotEmpty(t, p.Value, p.Descriptor.Name)
		}
	}
}

func TestExtractErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Extract(filepath.Join(dir, "none.in"), schema.Params)
	var missing *rce.MissingFileError
	assert.True(t, errors.As(err, &missing), "got %v", err)

	bad := schema.Table{Meta: schema.Params.Meta, Positions: schema.Params.Positions[1:]}
	_, err = Extract(writeConfig(t, dir, 60), bad)
	var mismatch *rce.SchemaMismatchError
	assert.True(t, errors.As(err, &mismatch), "got %v", err)
}

func TestRenderTableAlignment(t *testing.T) {
	src := writeConfig(t, t.TempDir(), 40)
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	table := RenderTable(ex.Params)
	require.True(t, strings.HasSuffix(table, "\n"))

	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	require.Len(t, lines, len(ex.Params)+2)
	header, rule := lines[0], lines[1]
	assert.True(t, strings.HasPrefix(header, "Parameter"))
	assert.Equal(t, len(header), len(rule))
	assert.Equal(t, strings.Repeat("-", len(header)), rule)
	for i, l := range lines[2:] {
		assert.Equal(t, len(header), len(l), "row %d", i)
		assert.True(t, strings.HasPrefix(l, ex.Params[i].Descriptor.Name+" "))
	}
	//Value column starts right after the widest name plus the gutter.
	valueCol := strings.Index(header, "Value")
	assert.Equal(t, len("FLUXSWITCH")+len(gutter), valueCol)
	assert.Equal(t, "v4", strings.Fields(lines[2][valueCol:])[0])
}

func TestDescribeIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := writeConfig(t, dir, 57)
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	out := filepath.Join(dir, "a", "b", "run1")
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)

	D := &Describer{}
	res, err := D.Describe(ex, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, ArchiveName), res.Archive)
	assert.Equal(t, filepath.Join(out, TableName), res.Table)

	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	arch1, err := os.ReadFile(res.Archive)
	require.NoError(t, err)
	table1, err := os.ReadFile(res.Table)
	require.NoError(t, err)
	assert.Equal(t, orig, arch1)
	assert.Equal(t, RenderTable(ex.Params), string(table1))

	info, err := os.Stat(res.Archive)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "mtime %v", info.ModTime())

	res2, err := D.Describe(ex, out)
	require.NoError(t, err)
	arch2, err := os.ReadFile(res2.Archive)
	require.NoError(t, err)
	table2, err := os.ReadFile(res2.Table)
	require.NoError(t, err)
	assert.Equal(t, arch1, arch2)
	assert.Equal(t, table1, table2)
	assert.Equal(t, "Wrote "+res.Archive+" and "+res.Table, res2.String())
}

func TestDescribeInPlace(t *testing.T) {
	dir := t.TempDir()
	src := writeConfig(t, dir, 57)
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	res, err := (&Describer{}).Describe(ex, dir)
	require.NoError(t, err)
	assert.Equal(t, src, res.Archive)
	b, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestDescribeMissingSource(t *testing.T) {
	dir := t.TempDir()
	src := writeConfig(t, dir, 57)
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	require.NoError(t, os.Remove(src))
	_, err = (&Describer{}).Describe(ex, filepath.Join(dir, "out"))
	var missing *rce.MissingFileError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, src, missing.FileName())
}

func TestDescribeUnwritable(t *testing.T) {
	dir := t.TempDir()
	src := writeConfig(t, dir, 57)
	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	//a regular file where the output directory should go
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = (&Describer{}).Describe(ex, filepath.Join(blocker, "out"))
	var ioErr *rce.IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
}

//A configuration whose name looks compressed is still plain text: the values in
//the table come from the same bytes that are archived.
func TestDescribeCompressedLookingName(t *testing.T) {
	dir := t.TempDir()
	plain := writeConfig(t, dir, 57)
	src := filepath.Join(dir, "run.in.gz")
	require.NoError(t, os.Rename(plain, src))

	ex, err := Extract(src, schema.Params)
	require.NoError(t, err)
	v, ok := ex.Value("SCON")
	require.True(t, ok)
	assert.Equal(t, "v15", v)

	res, err := (&Describer{}).Describe(ex, filepath.Join(dir, "out"))
	require.NoError(t, err)
	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	arch, err := os.ReadFile(res.Archive)
	require.NoError(t, err)
	assert.Equal(t, orig, arch)

	again, err := Extract(res.Archive, schema.Params)
	require.NoError(t, err)
	assert.Equal(t, ex.Params, again.Params)
}
