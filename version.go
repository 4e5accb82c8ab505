// Package treewalker renders directory trees on the terminal.
package treewalker

// Version is the current treewalker release.
const Version = "0.1.0"
