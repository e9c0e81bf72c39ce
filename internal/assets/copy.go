package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyError reports an I/O failure while mirroring the asset tree.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// CopyTree mirrors src into dst, byte for byte. Directories are created
// as needed and existing destination files are overwritten; the build
// is not incremental, last writer wins. Symbolic links are skipped
// outright so a link pointing outside src is never followed.
func CopyTree(src, dst string) error {
	if err := os.MkdirAll(dst, os.ModePerm); err != nil {
		return &CopyError{Path: dst, Err: err}
	}
	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &CopyError{Path: path, Err: err}
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return &CopyError{Path: path, Err: err}
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			// os.ModePerm here, not the source mode: the umask trims it.
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return &CopyError{Path: dstPath, Err: err}
			}
			return nil
		}
		return copyFile(path, dstPath)
	})
	if walkErr == nil {
		return nil
	}
	var ce *CopyError
	if errors.As(walkErr, &ce) {
		return walkErr
	}
	return &CopyError{Path: src, Err: walkErr}
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return &CopyError{Path: srcFile, Err: err}
	}
	defer srcF.Close()

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return &CopyError{Path: dstFile, Err: err}
	}
	dstF, err := os.Create(dstFile)
	if err != nil {
		return &CopyError{Path: dstFile, Err: err}
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return &CopyError{Path: dstFile, Err: err}
	}

	if srcInfo, err := os.Stat(srcFile); err == nil {
		// Best effort; a chmod failure does not fail the build.
		_ = os.Chmod(dstFile, srcInfo.Mode())
	}
	return nil
}
