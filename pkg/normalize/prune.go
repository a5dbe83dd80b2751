package normalize

import (
	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/filesystem"
	"github.com/spf13/afero"
)

const defaultLabel = "Removed"

// Prune deletes the paths of every feature whose flag is not "yes".
// Directories go recursively, files individually; absent paths are skipped
// without a report.
func (n *Normalizer) Prune() ([]string, error) {
	var removed []string

	for _, feature := range n.variant.Features {
		if n.ctx.FeatureEnabled(feature.Flag) {
			continue
		}

		paths, err := feature.ExpandPaths(n.ctx)
		if err != nil {
			return removed, err
		}

		label := feature.Label
		if label == "" {
			label = defaultLabel
		}

		for _, p := range paths {
			target, err := n.abs(p)
			if err != nil {
				return removed, err
			}

			exists, err := afero.Exists(n.fs, target)
			if err != nil {
				return removed, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", p)
			}
			if !exists {
				n.logger.Trace().Str("flag", feature.Flag).Str("path", p).Msg("Already absent")
				continue
			}

			if err := filesystem.RemoveFile(n.fs, target); err != nil {
				return removed, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", p).
					WithDetail("flag", feature.Flag).
					WithDetail("path", p)
			}

			n.logger.Info().Str("flag", feature.Flag).Str("path", p).Msg("Removed disabled feature path")
			n.reporter.Removed(label, p)
			removed = append(removed, p)
		}
	}

	return removed, nil
}
