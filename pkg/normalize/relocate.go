package normalize

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/filesystem"
	"github.com/spf13/afero"
)

// stagingDir holds files while the placeholder and target directories overlap
const stagingDir = ".genhooks-staging"

var isWithin = filesystem.IsWithin

// Relocate moves the placeholder package of every source root to the
// target package directory.
func (n *Normalizer) Relocate() ([]Move, error) {
	var moves []Move
	for _, root := range n.variant.SourceRoots {
		m, err := n.relocateRoot(root)
		moves = append(moves, m...)
		if err != nil {
			return moves, err
		}
	}
	return moves, nil
}

func (n *Normalizer) relocateRoot(sourceRoot string) ([]Move, error) {
	base, err := n.abs(sourceRoot)
	if err != nil {
		return nil, err
	}
	target := filepath.Join(base, filepath.FromSlash(n.ctx.PackageDir()))
	placeholder := filepath.Join(base, filepath.FromSlash(n.variant.Placeholder.Dir()))

	logger := n.logger.With().
		Str("sourceRoot", sourceRoot).
		Str("target", n.rel(target)).
		Logger()

	if err := n.mkdir(target); err != nil {
		return nil, err
	}

	exists, err := afero.DirExists(n.fs, placeholder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", n.rel(placeholder))
	}
	if !exists || placeholder == target {
		logger.Debug().Bool("placeholderExists", exists).Msg("Nothing to relocate")
		return nil, nil
	}

	files, err := filesystem.ListFiles(n.fs, placeholder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", n.rel(placeholder))
	}

	// A target nested in the placeholder already holds relocated files.
	files, settled := splitSettled(files, placeholder, target)
	if len(files) == 0 {
		logger.Debug().Int("settled", len(settled)).Msg("Nothing to relocate")
		return nil, nil
	}

	// Overlapping directories: removing the placeholder would also remove
	// files already moved, so park them outside both first.
	dest := target
	overlap := isWithin(target, placeholder) || isWithin(placeholder, target)
	if overlap {
		dest = filepath.Join(base, stagingDir)
		if err := n.fs.RemoveAll(dest); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRemove, "cannot clear %s", n.rel(dest))
		}
		for _, rel := range settled {
			if err := n.move(filepath.Join(target, rel), filepath.Join(dest, rel)); err != nil {
				return nil, err
			}
		}
	}

	moves := make([]Move, 0, len(files))
	for _, rel := range files {
		from := filepath.Join(placeholder, rel)
		if err := n.move(from, filepath.Join(dest, rel)); err != nil {
			return moves, err
		}
		moves = append(moves, Move{From: n.rel(from), To: n.rel(filepath.Join(target, rel))})
	}

	if err := n.fs.RemoveAll(placeholder); err != nil {
		return moves, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", n.rel(placeholder))
	}

	if overlap {
		staged, err := filesystem.ListFiles(n.fs, dest)
		if err != nil {
			return moves, errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", n.rel(dest))
		}
		for _, rel := range staged {
			if err := n.move(filepath.Join(dest, rel), filepath.Join(target, rel)); err != nil {
				return moves, err
			}
		}
		if err := n.fs.RemoveAll(dest); err != nil {
			return moves, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", n.rel(dest))
		}
	}

	pruned, err := filesystem.RemoveEmptyParents(n.fs, filepath.Dir(placeholder), base)
	if err != nil {
		return moves, errors.Wrapf(err, errors.ErrFileRemove, "cannot clean up above %s", n.rel(placeholder))
	}

	// The cleanup may have taken an empty target with it.
	if err := n.mkdir(target); err != nil {
		return moves, err
	}

	logger.Info().
		Str("placeholder", n.rel(placeholder)).
		Int("files", len(moves)).
		Int("prunedDirs", len(pruned)).
		Bool("staged", overlap).
		Msg("Relocated placeholder package")
	return moves, nil
}

// splitSettled separates the placeholder files that already sit under a
// nested target. Settled paths are returned relative to the target.
func splitSettled(files []string, placeholder, target string) (pending, settled []string) {
	if target == placeholder || !isWithin(target, placeholder) {
		return files, nil
	}
	rel, err := filepath.Rel(placeholder, target)
	if err != nil {
		return files, nil
	}
	prefix := rel + string(filepath.Separator)
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			settled = append(settled, strings.TrimPrefix(f, prefix))
		} else {
			pending = append(pending, f)
		}
	}
	return pending, settled
}

func (n *Normalizer) mkdir(dir string) error {
	if err := n.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", n.rel(dir)).
			WithDetail("path", n.rel(dir))
	}
	return nil
}

func (n *Normalizer) move(from, to string) error {
	if err := filesystem.MoveFile(n.fs, from, to); err != nil {
		return errors.Wrapf(err, errors.ErrFileMove, "cannot move %s", n.rel(from)).
			WithDetails(map[string]interface{}{"from": n.rel(from), "to": n.rel(to)})
	}
	n.logger.Trace().Str("from", n.rel(from)).Str("to", n.rel(to)).Msg("Moved file")
	return nil
}
