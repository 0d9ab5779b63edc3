package flakeedit

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/macropower/nixshellgen/pkg/nix/syntax"
)

const defaultFileMode = 0o644

// Editor applies edits to a flake file on a filesystem. Each call reads the
// file, edits the text, and writes it back only if it changed. Calls are not
// serialized; concurrent writers race with last-writer-wins semantics.
type Editor struct {
	fs   afero.Fs
	opts *options
	path string
}

// NewEditor creates an [Editor] for the file at path on fs.
func NewEditor(fs afero.Fs, path string, opts ...Option) *Editor {
	return &Editor{
		fs:   fs,
		path: path,
		opts: newOptions(opts),
	}
}

// Path returns the path of the edited file.
func (e *Editor) Path() string {
	return e.path
}

// AddInput adds an input named name with the given URL to the file.
func (e *Editor) AddInput(name, value string) (Outcome, error) {
	logger := slog.With(
		slog.String("path", e.path),
		slog.String("input", name),
	)

	data, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %w", ErrIO, e.path, err)
	}

	tree := syntax.Parse(string(data))
	if errs := tree.Errors(); len(errs) > 0 {
		logger.Warn("flake has syntax errors",
			slog.Int("count", len(errs)),
			slog.String("first", errs[0].Error()),
		)
	}

	out, outcome, err := addInput(tree, name, value, e.opts)
	if err != nil {
		return 0, err
	}

	if outcome != OutcomeAdded {
		logger.Debug("input already present")

		return outcome, nil
	}

	perm := os.FileMode(defaultFileMode)
	if fi, err := e.fs.Stat(e.path); err == nil {
		perm = fi.Mode().Perm()
	}

	if err := afero.WriteFile(e.fs, e.path, []byte(out), perm); err != nil {
		return 0, fmt.Errorf("%w: write %s: %w", ErrIO, e.path, err)
	}

	logger.Debug("input added")

	return outcome, nil
}
