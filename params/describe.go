package params

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
)

// Fixed names of the files written by Describe.
const (
	ArchiveName = "params_ver2.in"
	TableName   = "params_ver2_table.txt"
)

// Describer writes the archival copy and the description table of an Extraction.
type Describer struct {
	Logger *zap.Logger
}

// Described holds the paths written by Describe.
type Described struct {
	Archive string
	Table   string
}

func (D *Described) String() string {
	return fmt.Sprintf("Wrote %s and %s", D.Archive, D.Table)
}

func (D *Describer) logger() *zap.Logger {
	if D == nil || D.Logger == nil {
		return zap.NewNop()
	}
	return D.Logger
}

// Describe creates outDir (with parents) if needed, copies ex.Source into it as
// ArchiveName and writes the parameter table as TableName. Existing files are
// overwritten, so running it twice gives the same result.
func (D *Describer) Describe(ex *Extraction, outDir string) (*Described, error) {
	log := D.logger()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, rce.NewIOError("mkdir", outDir, err, "Describe")
	}
	ret := &Described{
		Archive: filepath.Join(outDir, ArchiveName),
		Table:   filepath.Join(outDir, TableName),
	}
	if err := Archive(ex.Source, ret.Archive, log); err != nil {
		return nil, rce.Decorate(err, "Describe")
	}
	log.Debug("archived configuration", zap.String("src", ex.Source), zap.String("dst", ret.Archive))
	if err := os.WriteFile(ret.Table, []byte(RenderTable(ex.Params)), 0o644); err != nil {
		return nil, rce.NewIOError("write", ret.Table, err, "Describe")
	}
	log.Debug("wrote parameter table", zap.String("path", ret.Table), zap.Int("parameters", len(ex.Params)))
	return ret, nil
}
