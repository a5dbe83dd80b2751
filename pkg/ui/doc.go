// Package ui writes genhooks output for people: validation diagnostics,
// the removal report during normalization and the closing summary.
//
// Output is styled with lipgloss when the destination is a color terminal
// and plain otherwise. The summary is rendered from markdown with glamour
// on a terminal.
package ui
