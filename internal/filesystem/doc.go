// Package filesystem provides directory traversal for treewalker.
//
// # Overview
//
// Walk lists a directory tree through an afero.Fs so callers can run
// against the real disk or an in-memory filesystem:
//   - Depth-limited traversal (MaxDepth: 1 lists a single directory)
//   - Hidden entry filtering applied during enumeration
//
// # Usage
//
// List the immediate children of a directory:
//
//	err := filesystem.Walk(afero.NewOsFs(), ".", filesystem.WalkOptions{
//	    MaxDepth: 1,
//	}, func(path string, info os.FileInfo) error {
//	    fmt.Println(path)
//	    return nil
//	})
package filesystem
