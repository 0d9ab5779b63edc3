package shellcmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/macropower/nixshellgen/pkg/devshell"
	"github.com/macropower/nixshellgen/pkg/flakeref"
	"github.com/macropower/nixshellgen/pkg/flaketmpl"
)

// InitOptions are the arguments to [Project.Init].
type InitOptions struct {
	// Lang selects a language preset, see [devshell.LanguagePackages].
	Lang      string
	ShellHook string
	Packages  []string
	// Inputs are flake URLs.
	Inputs   []string
	Isolated bool
	Force    bool
}

// Init writes a new flake.nix and devshell.toml. Existing files are only
// replaced when opts.Force is set.
func (p *Project) Init(opts *InitOptions) error {
	err := p.init(opts)
	p.broadcastEvent(EventInit{Err: err})

	return err
}

func (p *Project) init(opts *InitOptions) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger := slog.With(
		slog.String("cmd", "init"),
		slog.String("path", p.BasePath),
	)

	if !opts.Force {
		for _, path := range []string{p.FlakePath(), p.ConfigPath()} {
			exists, err := afero.Exists(p.fs, path)
			if err != nil {
				return fmt.Errorf("%w: stat %s: %w", ErrFlakeFailed, path, err)
			}

			if exists {
				return fmt.Errorf("%w: %s, use --force to overwrite", ErrAlreadyExists, path)
			}
		}
	}

	inputs, err := flakeref.ParseAll(opts.Inputs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	logger.Debug("ensure project directory")

	if err := p.fs.MkdirAll(p.BasePath, 0o750); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrFlakeFailed, p.BasePath, err)
	}

	flake, err := flaketmpl.Render(inputs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlakeFailed, err)
	}

	logger.Info("writing flake", slog.String("file", p.FlakePath()))

	if err := afero.WriteFile(p.fs, p.FlakePath(), []byte(flake), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrFlakeFailed, p.FlakePath(), err)
	}

	cfg := &devshell.Config{}

	if opts.Lang != "" {
		pkgs, ok := devshell.LanguagePackages(opts.Lang)
		if ok {
			cfg.AddPackages(pkgs...)
		} else {
			logger.Warn("unknown language template, skipping",
				slog.String("lang", opts.Lang),
				slog.Any("known", devshell.Languages()),
			)
		}
	}

	cfg.AddPackages(opts.Packages...)

	for _, in := range inputs {
		cfg.AddPackages(in.PackageRef())
	}

	cfg.AppendHook(opts.ShellHook)

	if opts.Isolated {
		cfg.SetPure(true)
	}

	logger.Info("writing config", slog.String("file", p.ConfigPath()))

	return p.saveConfig(cfg)
}
