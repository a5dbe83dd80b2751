// Package topics adds help topics to a cobra command tree. Topics are
// markdown or text files, usually embedded in the binary, shown with
// "<app> help <topic>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Topic is one help document
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Manager holds the topics found under a directory
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Options configures a Manager
type Options struct {
	// Extensions considered as topics; defaults to .md and .txt
	Extensions []string
	// Renderer defaults to PlainRenderer
	Renderer Renderer
}

// Load reads every topic under dir on fsys
func Load(fsys afero.Fs, dir string, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	exists, err := afero.DirExists(fsys, dir)
	if err != nil || !exists {
		return m, err
	}

	err = afero.Walk(fsys, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		ext := filepath.Ext(path)
		if info.IsDir() || !m.supported(ext) {
			return nil
		}

		content, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Get returns the named topic. Flag-style names (--set) match the topic
// "option-set".
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics["option-"+name]
	return t, ok
}

// Names returns the topic names in sorted order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the topic formatted by the manager's renderer
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Ext)
}

func (m *Manager) printList(w io.Writer, app string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// Install replaces root's help command with one that also knows topics.
// "help topics" lists them; unknown names fall back to command help.
func Install(root *cobra.Command, m *Manager) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(root, args)
				return
			}
			if args[0] == "topics" {
				m.printList(out, root.Name())
				return
			}
			if t, ok := m.Get(args[0]); ok {
				fmt.Fprint(out, m.Render(t))
				return
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil {
				target = root
			}
			originalHelp(target, args)
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}
