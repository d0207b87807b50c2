package fixedfmt

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
)

const maxLineLen = 1 << 20

// Row is one line of a fixed-column numeric file.
type Row []float64

func (R Row) Len() int { return len(R) }

// At returns the i-th field, counting from 0. It panics if i is out of range.
func (R Row) At(i int) float64 {
	return R[i]
}

// FromEnd returns the k-th field counting from the end of the row: FromEnd(1) is the
// last field, FromEnd(2) the second-to-last. It panics if k is out of range.
func (R Row) FromEnd(k int) float64 {
	if k < 1 {
		panic(fmt.Sprintf("fixedfmt: FromEnd offset must be >= 1, got %d", k))
	}
	return R[len(R)-k]
}

// Table is the content of a whitespace-delimited numeric file. All rows have the same width.
type Table struct {
	Path string
	Rows []Row
}

// Width returns the number of fields per row, or 0 for an empty table.
func (T *Table) Width() int {
	if len(T.Rows) == 0 {
		return 0
	}
	return len(T.Rows[0])
}

func (T *Table) Len() int { return len(T.Rows) }

// ReadTable reads a whitespace-delimited table of floats from path. Anything from
// a '#' to the end of its line is a comment, and lines left blank are skipped. Every row must have as many fields as the first
// one, and NaN or infinite values are rejected. A missing file gives
// *rce.MissingFileError; a file that can't be parsed, or has no rows, gives
// *rce.MalformedFormatError.
func ReadTable(path string) (*Table, error) {
	r, err := open(path, "ReadTable")
	if err != nil {
		return nil, err
	}
	defer r.Close()
	T := &Table{Path: path}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	line := 0
	for sc.Scan() {
		line++
		str := sc.Text()
		if i := strings.IndexByte(str, '#'); i >= 0 {
			str = str[:i]
		}
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		fields := strings.Fields(str)
		if w := T.Width(); w > 0 && len(fields) != w {
			return nil, rce.NewMalformedFormatError(path, line, fmt.Sprintf("%d fields, but the first row has %d", len(fields), w), "ReadTable")
		}
		row := make(Row, len(fields))
		for i, v := range fields {
			row[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, rce.NewMalformedFormatError(path, line, fmt.Sprintf("field %d: can't parse %q as a number", i+1, v), "ReadTable")
			}
			if math.IsNaN(row[i]) || math.IsInf(row[i], 0) {
				return nil, rce.NewMalformedFormatError(path, line, fmt.Sprintf("field %d: non-finite value %q", i+1, v), "ReadTable")
			}
		}
		T.Rows = append(T.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, rce.NewMalformedFormatError(path, line+1, err.Error(), "ReadTable")
	}
	if len(T.Rows) == 0 {
		return nil, rce.NewMalformedFormatError(path, 0, "no data rows", "ReadTable")
	}
	return T, nil
}

// ReadLines returns the lines of the text file path, without their line terminators
// ("\n" or "\r\n") and otherwise untouched. The file is never decompressed,
// whatever its name.
func ReadLines(path string) ([]string, error) {
	r, err := openPlain(path, "ReadLines")
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var ret []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)
	for sc.Scan() {
		ret = append(ret, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, rce.NewIOError("read", path, err, "ReadLines")
	}
	return ret, nil
}
