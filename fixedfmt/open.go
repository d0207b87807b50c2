package fixedfmt

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
)

// Suffixes of the compressed variants accepted for an output file, in the order
// they are tried by Resolve.
var compressedSuffixes = []string{".zst", ".gz"}

// Resolve returns path if it exists, otherwise the first existing compressed
// variant of it (path.zst, path.gz). If none exists it returns a
// *rce.MissingFileError naming path itself.
func Resolve(path string) (string, error) {
	candidates := []string{path}
	for _, s := range compressedSuffixes {
		candidates = append(candidates, path+s)
	}
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", rce.NewIOError("stat", c, err, "Resolve")
		}
	}
	return "", rce.NewMissingFileError(path, "Resolve")
}

//*zstd.Decoder doesn't implement io.ReadCloser (its Close returns nothing),
//and we also need to close the file under it.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openPlain(name, caller string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, rce.NewMissingFileError(name, caller)
		}
		return nil, rce.NewIOError("open", name, err, caller)
	}
	return f, nil
}

// open opens name for reading, decompressing it if the extension asks for it.
// The caller must close the returned reader.
func open(name, caller string) (io.ReadCloser, error) {
	f, err := openPlain(name, caller)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(f)
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		d, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, rce.NewMalformedFormatError(name, 0, "can't read zstd stream: "+err.Error(), caller)
		}
		return &readCloser{d, []func() error{func() error { d.Close(); return nil }, f.Close}}, nil
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		g, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, rce.NewMalformedFormatError(name, 0, "can't read gzip stream: "+err.Error(), caller)
		}
		return &readCloser{g, []func() error{g.Close, f.Close}}, nil
	default:
		return &readCloser{buf, []func() error{f.Close}}, nil
	}
}
