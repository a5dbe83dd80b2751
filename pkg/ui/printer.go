package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes human output in a resolved format
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a Printer for w. FormatAuto is resolved against w.
func NewPrinter(w io.Writer, f Format) *Printer {
	return &Printer{out: w, format: Resolve(f, w)}
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) styled() bool {
	return p.format == FormatTerminal
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled() {
		return s
	}
	return style.Render(s)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Info prints an informational line
func (p *Printer) Info(format string, args ...interface{}) {
	p.line(fmt.Sprintf(format, args...))
}

// Error prints an error line
func (p *Printer) Error(format string, args ...interface{}) {
	p.line(p.render(ErrorStyle, fmt.Sprintf(format, args...)))
}

// Removed reports a path pruned for a disabled feature
func (p *Printer) Removed(label, path string) {
	p.line(fmt.Sprintf(MsgRemoved, p.render(LabelStyle, label), p.render(PathStyle, path)))
}

// Header prints a section title surrounded by blank lines
func (p *Printer) Header(title string) {
	p.line("")
	p.line(p.render(HeaderStyle, title))
	p.line("")
}
