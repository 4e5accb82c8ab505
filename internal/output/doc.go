// Package output provides styled terminal output for treewalker.
//
// # Overview
//
// Diagnostics and tree decorations go through this package so that
// styling only ever reaches a terminal. Redirected output stays plain.
//
// # Usage
//
// Pick a color profile for a stream and print a diagnostic:
//
//	profile := output.ColorProfile(output.ColorAuto, os.Stderr)
//	p := output.New(os.Stderr, profile)
//	p.Error("Invalid directory path: ./missing")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	p.SetVerbose(true)
//	p.Verbose("This only prints in verbose mode")
//
// # Styling
//
// The package uses lipgloss for terminal styling:
//
//   - Error: red bold
//   - Verbose: 🔍 gray (when enabled)
//   - Directory names: blue bold
package output
