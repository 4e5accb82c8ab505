package tree

import (
	"errors"
	"fmt"
)

// Kind classifies a render failure.
type Kind int

const (
	// KindIO is a low-level failure reading metadata or writing output.
	KindIO Kind = iota
	// KindTraversal is a failure reported while enumerating a directory.
	KindTraversal
	// KindInvalidPath means a path that must be a directory is not one.
	KindInvalidPath
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindTraversal:
		return "traversal"
	case KindInvalidPath:
		return "invalid path"
	default:
		return "unknown"
	}
}

// Error is returned by Render. Err is nil for KindInvalidPath.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Describe turns a render error into the one-line message shown to users.
// root is the path argument exactly as the user typed it.
func Describe(err error, root string) string {
	var treeErr *Error
	if !errors.As(err, &treeErr) {
		return err.Error()
	}

	switch treeErr.Kind {
	case KindIO:
		return fmt.Sprintf("Error reading the directory: %v", treeErr.Err)
	case KindTraversal:
		return fmt.Sprintf("Error walking the directory: %v", treeErr.Err)
	case KindInvalidPath:
		return fmt.Sprintf("Invalid directory path: %s", root)
	default:
		return treeErr.Error()
	}
}
