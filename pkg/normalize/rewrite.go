package normalize

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/spf13/afero"
)

// replacement is one literal substitution
type replacement struct {
	from, to string
}

func (n *Normalizer) replacements() []replacement {
	from := n.variant.Placeholder.JavaPackage()
	to := n.ctx.JavaPackage()

	out := make([]replacement, 0, len(n.variant.Rewrite.Prefixes))
	for _, prefix := range n.variant.Rewrite.Prefixes {
		out = append(out, replacement{from: prefix + from, to: prefix + to})
	}
	return out
}

// rewriteContent applies every replacement in order
func rewriteContent(content string, reps []replacement) string {
	for _, r := range reps {
		content = strings.ReplaceAll(content, r.from, r.to)
	}
	return content
}

// Rewrite replaces placeholder package and import references in every
// recognized source file under the rewrite roots. Only changed files are
// written back.
func (n *Normalizer) Rewrite() ([]string, error) {
	if n.variant.Placeholder.JavaPackage() == n.ctx.JavaPackage() {
		n.logger.Debug().Msg("Target package equals placeholder, nothing to rewrite")
		return nil, nil
	}

	reps := n.replacements()
	var rewritten []string

	for _, root := range n.variant.RewriteRoots() {
		dir, err := n.abs(root)
		if err != nil {
			return rewritten, err
		}

		exists, err := afero.DirExists(n.fs, dir)
		if err != nil {
			return rewritten, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", root)
		}
		if !exists {
			n.logger.Debug().Str("root", root).Msg("Rewrite root absent, skipping")
			continue
		}

		err = afero.Walk(n.fs, dir, func(path string, info fs.FileInfo, walkErr error) error {
			if walkErr != nil {
				return errors.Wrapf(walkErr, errors.ErrFileRead, "cannot walk %s", n.rel(path))
			}
			if !info.Mode().IsRegular() || !n.variant.Rewritable(path) {
				return nil
			}

			changed, err := n.rewriteFile(path, info.Mode().Perm(), reps)
			if err != nil {
				return err
			}
			if changed {
				rewritten = append(rewritten, n.rel(path))
			}
			return nil
		})
		if err != nil {
			return rewritten, err
		}
	}

	n.logger.Info().Int("files", len(rewritten)).Str("package", n.ctx.JavaPackage()).Msg("Rewrote package references")
	return rewritten, nil
}

func (n *Normalizer) rewriteFile(path string, perm fs.FileMode, reps []replacement) (bool, error) {
	data, err := afero.ReadFile(n.fs, path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", n.rel(path)).
			WithDetail("path", n.rel(path))
	}

	content := string(data)
	updated := rewriteContent(content, reps)
	if updated == content {
		return false, nil
	}

	if err := afero.WriteFile(n.fs, path, []byte(updated), perm); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", n.rel(path)).
			WithDetail("path", n.rel(path))
	}

	n.logger.Debug().Str("path", n.rel(path)).Msg("Rewrote references")
	return true, nil
}
