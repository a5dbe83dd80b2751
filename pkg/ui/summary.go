package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/genhooks/pkg/maven"
	"github.com/charmbracelet/glamour"
)

const wordWrap = 80

// Summary describes a generated project
type Summary struct {
	ProjectName string
	Directory   string
	Package     string
	Maven       *maven.Coordinates
}

// Text renders the summary as plain lines
func (s Summary) Text() string {
	var b strings.Builder
	b.WriteString("\n" + MsgGenerated + "\n")
	fmt.Fprintf(&b, MsgName+"\n", s.ProjectName)
	fmt.Fprintf(&b, MsgDirectory+"\n", s.Directory)
	fmt.Fprintf(&b, MsgPackage+"\n", s.Package)
	if s.Maven != nil {
		fmt.Fprintf(&b, MsgMaven+"\n", s.Maven)
	}
	b.WriteString("\n" + MsgNextSteps + "\n")
	for i, step := range s.steps() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// Markdown renders the summary as a markdown document
func (s Summary) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", strings.Trim(MsgGenerated, "= "))
	fmt.Fprintf(&b, "- **%s** %s\n", labelOf(MsgName), s.ProjectName)
	fmt.Fprintf(&b, "- **%s** `%s`\n", labelOf(MsgDirectory), s.Directory)
	fmt.Fprintf(&b, "- **%s** `%s`\n", labelOf(MsgPackage), s.Package)
	if s.Maven != nil {
		fmt.Fprintf(&b, "- **%s** `%s`\n", labelOf(MsgMaven), s.Maven)
	}
	fmt.Fprintf(&b, "\n## %s\n\n", strings.TrimSuffix(MsgNextSteps, ":"))
	for i, step := range s.steps() {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, step)
	}
	return b.String()
}

func (s Summary) steps() []string {
	steps := make([]string, len(NextSteps))
	for i, step := range NextSteps {
		if strings.Contains(step, "%s") {
			step = fmt.Sprintf(step, s.Directory)
		}
		steps[i] = step
	}
	return steps
}

// labelOf turns "Name: %s" into "Name:"
func labelOf(msg string) string {
	return strings.TrimSpace(strings.TrimSuffix(msg, "%s"))
}

// Summary prints the closing summary, as rendered markdown on a terminal
// and as plain text otherwise. Rendering failures fall back to plain text.
func (p *Printer) Summary(s Summary) {
	if !p.styled() {
		_, _ = fmt.Fprint(p.out, s.Text())
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		_, _ = fmt.Fprint(p.out, s.Text())
		return
	}

	rendered, err := renderer.Render(s.Markdown())
	if err != nil {
		_, _ = fmt.Fprint(p.out, s.Text())
		return
	}
	_, _ = fmt.Fprint(p.out, rendered)
}
