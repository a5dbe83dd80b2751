package normalize

import (
	"path/filepath"

	"github.com/arthur-debert/genhooks/pkg/config"
	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/logging"
	"github.com/arthur-debert/genhooks/pkg/variant"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Reporter receives the paths removed by Prune
type Reporter interface {
	Removed(label, path string)
}

type nopReporter struct{}

func (nopReporter) Removed(string, string) {}

// Move records one relocated file, both paths relative to the project root
type Move struct {
	From string
	To   string
}

// Result summarizes a run. Paths are slash separated and relative to the project root.
type Result struct {
	Moved     []Move
	Rewritten []string
	Removed   []string
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithReporter sets the reporter for removed paths
func WithReporter(r Reporter) Option {
	return func(n *Normalizer) {
		if r != nil {
			n.reporter = r
		}
	}
}

// Normalizer applies a variant to the project tree under root
type Normalizer struct {
	fs       afero.Fs
	root     string
	variant  *variant.Variant
	ctx      config.Context
	reporter Reporter
	logger   zerolog.Logger
}

// New creates a Normalizer for the project tree at root on fs
func New(fs afero.Fs, root string, v *variant.Variant, ctx config.Context, opts ...Option) *Normalizer {
	n := &Normalizer{
		fs:       fs,
		root:     filepath.Clean(root),
		variant:  v,
		ctx:      ctx,
		reporter: nopReporter{},
		logger:   logging.GetLogger("normalize"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Run executes Relocate, Rewrite and Prune in order. The partial result is
// returned alongside the first error.
func (n *Normalizer) Run() (*Result, error) {
	done := logging.LogOperationStart(n.logger, "normalize")
	defer done()

	result := &Result{}
	var err error

	if result.Moved, err = n.Relocate(); err != nil {
		return result, err
	}
	if result.Rewritten, err = n.Rewrite(); err != nil {
		return result, err
	}
	if result.Removed, err = n.Prune(); err != nil {
		return result, err
	}

	n.logger.Info().
		Int("moved", len(result.Moved)).
		Int("rewritten", len(result.Rewritten)).
		Int("removed", len(result.Removed)).
		Msg("Project normalized")
	return result, nil
}

// abs resolves a slash separated project path, refusing paths that leave the root
func (n *Normalizer) abs(rel string) (string, error) {
	p := filepath.Join(n.root, filepath.FromSlash(rel))
	if !isWithin(p, n.root) {
		return "", errors.Newf(errors.ErrInvalidVariant, "path %q escapes the project root", rel).
			WithDetail("path", rel)
	}
	return p, nil
}

// rel turns an absolute path back into a slash separated project path
func (n *Normalizer) rel(p string) string {
	r, err := filepath.Rel(n.root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(r)
}
