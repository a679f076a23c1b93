// Package clipboard adapts the system clipboard for scenes.
package clipboard

import "github.com/atotto/clipboard"

// System writes to the operating system clipboard
type System struct{}

// WriteAll replaces the clipboard contents with s
func (System) WriteAll(s string) error {
	return clipboard.WriteAll(s)
}

// Unsupported reports whether no clipboard utility is available
func (System) Unsupported() bool {
	return clipboard.Unsupported
}
