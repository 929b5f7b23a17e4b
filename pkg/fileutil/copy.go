package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/beixiyo/ai-sync/internal/errors"
)

// CopyResult is the outcome of copying one file. Exactly one of Success,
// Skipped or a non-nil Err holds.
type CopyResult struct {
	Success bool
	Skipped bool
	Err     error
}

// FileError attributes a failure to the file or directory it happened on.
type FileError struct {
	File string
	Err  error
}

// CopyStats accumulates per-file outcomes of a directory copy.
type CopyStats struct {
	Success int
	Skipped int
	Error   int
	Errors  []FileError
}

// Add folds other into s.
func (s *CopyStats) Add(other CopyStats) {
	s.Success += other.Success
	s.Skipped += other.Skipped
	s.Error += other.Error
	s.Errors = append(s.Errors, other.Errors...)
}

// Record counts a single CopyResult against file.
func (s *CopyStats) Record(file string, r CopyResult) {
	switch {
	case r.Err != nil:
		s.Error++
		s.Errors = append(s.Errors, FileError{File: file, Err: r.Err})
	case r.Skipped:
		s.Skipped++
	case r.Success:
		s.Success++
	}
}

// CopyFileSafe copies src to dst, creating dst's parent directories.
// If dst already exists and overwrite is false the copy is skipped and dst
// is left untouched.
//
// A dst that is src itself (same path, hard link or symlink) is skipped
// even with overwrite, since truncating it would destroy the source.
func CopyFileSafe(src, dst string, overwrite bool) CopyResult {
	if SameFile(src, dst) || (Exists(dst) && !overwrite) {
		return CopyResult{Skipped: true}
	}

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return CopyResult{Err: errors.Wrapf(err, "creating directory for %s", dst)}
	}
	if err := copyFile(src, dst); err != nil {
		return CopyResult{Err: err}
	}
	return CopyResult{Success: true}
}

// WriteFileSafe writes data to dst with the same skip semantics as
// CopyFileSafe.
func WriteFileSafe(dst string, data []byte, overwrite bool) CopyResult {
	if Exists(dst) && !overwrite {
		return CopyResult{Skipped: true}
	}

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return CopyResult{Err: errors.Wrapf(err, "creating directory for %s", dst)}
	}
	if err := AtomicWriteFile(dst, data, 0o644); err != nil {
		return CopyResult{Err: errors.Wrapf(err, "writing %s", dst)}
	}
	return CopyResult{Success: true}
}

// CopyDirectory mirrors src into dst recursively.
//
// Every regular file is copied with CopyFileSafe and counted. A directory
// that cannot be read counts as a single error attributed to that directory
// and its subtree is not entered; its siblings are still processed.
func CopyDirectory(src, dst string, overwrite bool) CopyStats {
	var stats CopyStats

	entries, err := os.ReadDir(src)
	if err != nil {
		stats.Error++
		stats.Errors = append(stats.Errors, FileError{
			File: src,
			Err:  errors.Wrapf(err, "reading directory %s", src),
		})
		return stats
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		isDir := entry.IsDir()
		isFile := entry.Type().IsRegular()
		if entry.Type()&os.ModeSymlink != 0 {
			// Follow links; dangling ones are ignored
			info, err := os.Stat(srcPath)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				stats.Record(srcPath, CopyResult{Err: errors.Wrapf(err, "stating %s", srcPath)})
				continue
			}
			isDir = info.IsDir()
			isFile = info.Mode().IsRegular()
		}

		switch {
		case isDir:
			stats.Add(CopyDirectory(srcPath, dstPath, overwrite))
		case isFile:
			stats.Record(srcPath, CopyFileSafe(srcPath, dstPath, overwrite))
		}
	}

	return stats
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening source file %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stating source file %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "creating destination file %s", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrapf(err, "copying content from %s to %s", src, dst)
	}

	return errors.Wrapf(dstFile.Close(), "closing %s", dst)
}
