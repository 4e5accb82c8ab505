// Package tree renders a directory as a box-drawing tree, one line per
// entry, depth-first.
//
// Within each directory, subdirectories come before files and each group is
// sorted by byte-wise name comparison. Directory lines end with "/".
//
//	├── cmd/
//	│   └── main.go
//	└── go.mod
package tree

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/simonhull/firebird-suite/treewalker/internal/filesystem"
	"github.com/simonhull/firebird-suite/treewalker/internal/logger"
	"github.com/spf13/afero"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// Entry is one child found while listing a directory.
type Entry struct {
	Path string
	Name string
	// IsDir follows symlinks. Broken links and entries that cannot be
	// stat'ed are files.
	IsDir bool
}

// Styler decorates directory names before they are printed.
type Styler interface {
	Directory(name string) string
}

// Options configures a Renderer.
type Options struct {
	IgnoreHidden bool
	Fs           afero.Fs      // defaults to the OS filesystem
	Logger       logger.Logger // defaults to a silent logger
	Styler       Styler        // nil prints names unstyled
}

// Renderer prints directory trees to a writer.
type Renderer struct {
	out          io.Writer
	fs           afero.Fs
	ignoreHidden bool
	log          logger.Logger
	styler       Styler
}

// NewRenderer creates a Renderer that writes to out.
func NewRenderer(out io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:          out,
		fs:           opts.Fs,
		ignoreHidden: opts.IgnoreHidden,
		log:          opts.Logger,
		styler:       opts.Styler,
	}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.log == nil {
		r.log = logger.NewSilentLogger()
	}
	return r
}

// Render writes the tree below path to w using the OS filesystem.
func Render(w io.Writer, path string, ignoreHidden bool) error {
	return NewRenderer(w, Options{IgnoreHidden: ignoreHidden}).Render(path)
}

// Render writes the tree below path. The root itself is not printed.
//
// The first error anywhere in the tree stops rendering. Lines written
// before the failure are not taken back. The error is always an *Error.
func (r *Renderer) Render(path string) error {
	return r.render(path, "")
}

func (r *Renderer) render(path, prefix string) error {
	if !r.isDir(path) {
		return &Error{Kind: KindInvalidPath, Path: path}
	}

	entries, err := r.list(path)
	if err != nil {
		return err
	}
	r.log.Debug("listing directory", logger.F("path", path), logger.F("entries", len(entries)))

	for i, entry := range entries {
		branch, continuation := frame(prefix, i == len(entries)-1)

		if err := r.writeLine(branch, entry); err != nil {
			return err
		}
		if !entry.IsDir {
			continue
		}
		if err := r.render(entry.Path, continuation); err != nil {
			return err
		}
	}

	return nil
}

// list returns the sorted immediate children of dir.
func (r *Renderer) list(dir string) ([]Entry, error) {
	var entries []Entry

	opts := filesystem.WalkOptions{
		IncludeHidden: !r.ignoreHidden,
		MaxDepth:      1,
	}
	err := filesystem.Walk(r.fs, dir, opts, func(path string, info os.FileInfo) error {
		entries = append(entries, Entry{
			Path:  path,
			Name:  info.Name(),
			IsDir: r.isDir(path),
		})
		return nil
	})
	if err != nil {
		r.log.Debug("listing failed", logger.F("path", dir), logger.Err(err))
		return nil, &Error{Kind: KindTraversal, Path: dir, Err: err}
	}

	Sort(entries)
	return entries, nil
}

func (r *Renderer) isDir(path string) bool {
	isDir, err := afero.IsDir(r.fs, path)
	return err == nil && isDir
}

func (r *Renderer) writeLine(branch string, entry Entry) error {
	line := branch + entry.Name
	if entry.IsDir {
		name := entry.Name
		if r.styler != nil {
			name = r.styler.Directory(name)
		}
		line = branch + name + "/"
	}

	if _, err := io.WriteString(r.out, line+"\n"); err != nil {
		return &Error{Kind: KindIO, Path: entry.Path, Err: err}
	}
	return nil
}

// frame returns the marker for an entry and the prefix for its children.
func frame(prefix string, isLast bool) (branch, continuation string) {
	if isLast {
		return prefix + branchLast, prefix + indentLast
	}
	return prefix + branchMid, prefix + indentMid
}

// Sort orders entries with directories first, then by name.
func Sort(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}
