package params

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
)

// Archive copies src to dst byte for byte, overwriting dst, and then copies the
// permission bits and modification time of src where the platform allows it.
// Copying a file onto itself does nothing.
func Archive(src, dst string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	sinfo, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rce.NewMissingFileError(src, "Archive")
		}
		return rce.NewIOError("stat", src, err, "Archive")
	}
	if dinfo, err := os.Stat(dst); err == nil && os.SameFile(sinfo, dinfo) {
		logger.Debug("archive is the source file, not copying", zap.String("path", dst))
		return nil
	}
	//A previous archive may carry a read-only mode copied from src.
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return rce.NewIOError("remove", dst, err, "Archive")
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Chmod(dst, sinfo.Mode().Perm()); err != nil {
		logger.Warn("can't copy file mode", zap.String("path", dst), zap.Error(err))
	}
	if err := os.Chtimes(dst, sinfo.ModTime(), sinfo.ModTime()); err != nil {
		logger.Warn("can't copy file times", zap.String("path", dst), zap.Error(err))
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rce.NewMissingFileError(src, "copyFile")
		}
		return rce.NewIOError("open", src, err, "copyFile")
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return rce.NewIOError("create", dst, err, "copyFile")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = rce.NewIOError("close", dst, cerr, "copyFile")
		}
	}()
	if _, err := io.Copy(out, in); err != nil {
		return rce.NewIOError("copy", dst, err, "copyFile")
	}
	return nil
}
