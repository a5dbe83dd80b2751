package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// NewOS returns the OS filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// ListFiles returns the regular files below dir, relative to dir, in lexical order
func ListFiles(fsys afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fsys, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// MoveFile moves src to dst, creating dst's parent directories and
// replacing an existing dst. When a rename is not possible the file is
// copied and the source removed.
func MoveFile(fsys afero.Fs, src, dst string) error {
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	renameErr := fsys.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	info, err := fsys.Stat(src)
	if err != nil {
		return renameErr
	}
	data, err := afero.ReadFile(fsys, src)
	if err != nil {
		return renameErr
	}
	if err := afero.WriteFile(fsys, dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Remove(src)
}

// RemoveFile removes a single file or, when path is a directory, the whole subtree
func RemoveFile(fsys afero.Fs, path string) error {
	isDir, err := afero.IsDir(fsys, path)
	if err != nil {
		return err
	}
	if isDir {
		return fsys.RemoveAll(path)
	}
	return fsys.Remove(path)
}

// RemoveEmptyParents walks upward from start towards stop (exclusive)
// removing empty directories. It stops at the first directory that still has
// entries. Missing directories are skipped. The removed directories are
// returned innermost first.
func RemoveEmptyParents(fsys afero.Fs, start, stop string) ([]string, error) {
	stop = filepath.Clean(stop)
	var removed []string

	for dir := filepath.Clean(start); dir != stop && isBelow(dir, stop); dir = filepath.Dir(dir) {
		exists, err := afero.DirExists(fsys, dir)
		if err != nil {
			return removed, err
		}
		if !exists {
			continue
		}

		empty, err := afero.IsEmpty(fsys, dir)
		if err != nil {
			return removed, err
		}
		if !empty {
			break
		}

		if err := fsys.Remove(dir); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed = append(removed, dir)
	}

	return removed, nil
}

// IsWithin reports whether path is base or lies below it
func IsWithin(path, base string) bool {
	path, base = filepath.Clean(path), filepath.Clean(base)
	return path == base || isBelow(path, base)
}

func isBelow(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !startsWithParent(rel)
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
