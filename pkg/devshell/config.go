// Package devshell reads and writes devshell.toml, the package list and
// shell settings consumed by a generated flake.nix.
package devshell

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// DefaultFile is the conventional name of the config file.
const DefaultFile = "devshell.toml"

const hookSeparator = ";\n"

var (
	// ErrInvalidFormat indicates the config file is not valid TOML for a
	// [Config].
	ErrInvalidFormat = errors.New("invalid devshell config")

	// ErrIO indicates the config file could not be read or written.
	ErrIO = errors.New("devshell config i/o")
)

// Config is the content of devshell.toml.
type Config struct {
	// Pure requests an isolated shell when set.
	Pure *bool `json:"pure,omitempty" toml:"pure,omitempty" yaml:"pure,omitempty"`
	// Packages are attribute names resolved against pkgs or the flake inputs.
	// Kept sorted and unique.
	Packages []string `json:"packages,omitempty" toml:"packages,omitempty" yaml:"packages,omitempty"`
	// ShellHook is run on shell entry.
	ShellHook string `json:"shell-hook,omitempty" toml:"shell-hook,multiline,omitempty" yaml:"shell-hook,omitempty"`
}

// AddPackages merges pkgs into the package list and returns how many were
// not already present. Blank names are ignored.
func (c *Config) AddPackages(pkgs ...string) int {
	added := 0

	for _, p := range pkgs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		i, found := slices.BinarySearch(c.Packages, p)
		if found {
			continue
		}

		c.Packages = slices.Insert(c.Packages, i, p)
		added++
	}

	return added
}

// AppendHook adds a command to the shell hook. Surrounding whitespace and
// trailing semicolons are dropped, and commands are joined with ";\n". It
// reports whether anything was appended.
func (c *Config) AppendHook(hook string) bool {
	hook = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(hook), ";"))
	if hook == "" {
		return false
	}

	if c.ShellHook == "" {
		c.ShellHook = hook
	} else {
		c.ShellHook += hookSeparator + hook
	}

	return true
}

// SetPure sets the purity flag.
func (c *Config) SetPure(pure bool) {
	c.Pure = &pure
}

// IsPure reports whether the purity flag is set and true.
func (c *Config) IsPure() bool {
	return c.Pure != nil && *c.Pure
}

// Load reads the config at path. A missing file yields an empty config.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	return Parse(data)
}

// Parse decodes a config from TOML.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	slices.Sort(c.Packages)
	c.Packages = slices.Compact(c.Packages)

	return c, nil
}

// Marshal encodes the config as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return data, nil
}

// Save writes the config to path, replacing any existing file.
func (c *Config) Save(fsys afero.Fs, path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	return nil
}
