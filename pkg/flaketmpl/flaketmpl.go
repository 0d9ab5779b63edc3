// Package flaketmpl renders the flake.nix scaffold for a new dev shell.
package flaketmpl

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/macropower/nixshellgen/pkg/flakeedit"
	"github.com/macropower/nixshellgen/pkg/flakeref"
)

// DefaultFile is the conventional name of the flake file.
const DefaultFile = "flake.nix"

// ErrRenderFailed indicates the template could not be executed.
var ErrRenderFailed = errors.New("render flake")

// DefaultInputs are declared by every rendered flake. The generated outputs
// depend on both.
var DefaultInputs = []flakeref.Input{
	{Key: "nixpkgs", URL: "github:NixOS/nixpkgs/nixos-unstable"},
	{Key: "flake-utils", URL: "github:numtide/flake-utils"},
}

//go:embed flake.nix.tmpl
var flakeTemplate string

var tmpl = template.Must(template.New(DefaultFile).Funcs(template.FuncMap{
	"attr":  flakeedit.AttrName,
	"quote": flakeedit.QuoteString,
}).Parse(flakeTemplate))

// Render returns a flake.nix declaring [DefaultInputs] followed by inputs,
// sorted by key. When several inputs share a key the last one wins,
// including over a default.
func Render(inputs []flakeref.Input) (string, error) {
	urls := map[string]string{}
	for _, in := range inputs {
		urls[in.Key] = in.URL
	}

	all := make([]flakeref.Input, 0, len(DefaultInputs)+len(urls))

	for _, in := range DefaultInputs {
		if u, ok := urls[in.Key]; ok {
			in.URL = u
			delete(urls, in.Key)
		}

		all = append(all, in)
	}

	extra := make([]flakeref.Input, 0, len(urls))
	for k, u := range urls {
		extra = append(extra, flakeref.Input{Key: k, URL: u})
	}

	slices.SortFunc(extra, func(a, b flakeref.Input) int {
		return strings.Compare(a.Key, b.Key)
	})

	all = append(all, extra...)

	var sb strings.Builder
	if err := tmpl.Execute(&sb, all); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return sb.String(), nil
}
