package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IncludeHidden bool // Include hidden files/dirs (default: false)
	MaxDepth      int  // Levels below the root to visit (default: 0, unlimited)
}

// IsHidden reports whether a file or directory name marks a hidden entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Walk traverses the directory tree below rootPath. The root itself is not
// visited; its entries are depth 1. Entries within a directory are visited
// in name order, and a directory's contents are visited right after it.
// Symlinked directories are not descended.
//
// A visitor error, or a failure to read a directory, stops the walk and is
// returned as is.
func Walk(fsys afero.Fs, rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	return walk(fsys, rootPath, 1, opts, visitor)
}

func walk(fsys afero.Fs, dir string, depth int, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	for _, info := range infos {
		// Skip hidden files/directories unless explicitly included
		if !opts.IncludeHidden && IsHidden(info.Name()) {
			continue
		}

		path := filepath.Join(dir, info.Name())
		if err := visitor(path, info); err != nil {
			return err
		}

		if !info.IsDir() || (opts.MaxDepth > 0 && depth >= opts.MaxDepth) {
			continue
		}
		if err := walk(fsys, path, depth+1, opts, visitor); err != nil {
			return err
		}
	}

	return nil
}
