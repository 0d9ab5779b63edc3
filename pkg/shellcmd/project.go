package shellcmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/macropower/nixshellgen/pkg/devshell"
	"github.com/macropower/nixshellgen/pkg/flaketmpl"
)

var (
	// ErrAlreadyExists indicates init would overwrite an existing file.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a flake input URL could not be used.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigFailed indicates devshell.toml could not be loaded or saved.
	ErrConfigFailed = errors.New("devshell config failed")

	// ErrFlakeFailed indicates flake.nix could not be written.
	ErrFlakeFailed = errors.New("flake update failed")
)

// Project is a dev shell directory.
type Project struct {
	fs         afero.Fs
	BasePath   string
	FlakeFile  string
	ConfigFile string
	subs       []func(any)
	mu         sync.Mutex
}

// NewProject creates a [Project] rooted at basePath. By default it uses the
// OS filesystem and the conventional file names.
func NewProject(basePath string, opts ...ProjectOpts) *Project {
	p := &Project{
		fs:         afero.NewOsFs(),
		BasePath:   basePath,
		FlakeFile:  flaketmpl.DefaultFile,
		ConfigFile: devshell.DefaultFile,
		subs:       []func(any){},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

type ProjectOpts func(*Project)

// WithFs sets the filesystem the project lives on.
func WithFs(fs afero.Fs) ProjectOpts {
	return func(p *Project) {
		p.fs = fs
	}
}

// WithFlakeFile sets the flake file name, relative to the base path.
func WithFlakeFile(name string) ProjectOpts {
	return func(p *Project) {
		p.FlakeFile = name
	}
}

// WithConfigFile sets the config file name, relative to the base path.
func WithConfigFile(name string) ProjectOpts {
	return func(p *Project) {
		p.ConfigFile = name
	}
}

func (p *Project) FlakePath() string {
	return filepath.Join(p.BasePath, p.FlakeFile)
}

func (p *Project) ConfigPath() string {
	return filepath.Join(p.BasePath, p.ConfigFile)
}

// Config loads the project's devshell.toml.
func (p *Project) Config() (*devshell.Config, error) {
	slog.Debug("loading config", slog.String("path", p.ConfigPath()))

	c, err := devshell.Load(p.fs, p.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFailed, err)
	}

	return c, nil
}

func (p *Project) saveConfig(c *devshell.Config) error {
	if err := c.Save(p.fs, p.ConfigPath()); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFailed, err)
	}

	return nil
}

func (p *Project) broadcastEvent(evt any) {
	for _, sub := range p.subs {
		sub(evt)
	}
}

// Subscribe registers f to receive the events sent while a command runs.
func (p *Project) Subscribe(f func(any)) {
	p.subs = append(p.subs, f)
}
