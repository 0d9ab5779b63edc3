package flakeref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/nixshellgen/pkg/flakeref"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		key   string
		url   string
	}{
		"github": {
			input: "github:NixOS/nixpkgs",
			key:   "nixpkgs",
			url:   "github:NixOS/nixpkgs",
		},
		"github with ref": {
			input: "github:NixOS/nixpkgs/nixos-24.05",
			key:   "nixos-24.05",
			url:   "github:NixOS/nixpkgs/nixos-24.05",
		},
		"tilde": {
			input: "github:owner/repo~branch",
			key:   "repo",
			url:   "github:owner/repo~branch",
		},
		"trailing slash": {
			input: "https://example.com/tools/",
			key:   "tools",
			url:   "https://example.com/tools/",
		},
		"query": {
			input: "git+https://example.com/repo.git?ref=main",
			key:   "repo.git",
			url:   "git+https://example.com/repo.git?ref=main",
		},
		"indirect": {
			input: "flake:nixpkgs",
			key:   "nixpkgs",
			url:   "flake:nixpkgs",
		},
		"bare": {
			input: " nixpkgs ",
			key:   "nixpkgs",
			url:   "nixpkgs",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := flakeref.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.key, got.Key)
			assert.Equal(t, tc.url, got.URL)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "github:owner/~branch", "/", "github:"} {
		_, err := flakeref.Parse(input)
		require.ErrorIs(t, err, flakeref.ErrInvalidURL, input)
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	got, err := flakeref.ParseAll([]string{"github:a/b", "github:c/d"})
	require.NoError(t, err)
	assert.Equal(t, []flakeref.Input{
		{Key: "b", URL: "github:a/b"},
		{Key: "d", URL: "github:c/d"},
	}, got)

	_, err = flakeref.ParseAll([]string{"github:a/b", ""})
	require.ErrorIs(t, err, flakeref.ErrInvalidURL)
}

func TestInputRefs(t *testing.T) {
	t.Parallel()

	in, err := flakeref.Parse("github:numtide/devshell")
	require.NoError(t, err)

	assert.Equal(t, "devshell.packages.${system}.default", in.PackageRef())
	assert.Equal(t, `inputs.devshell.url = "github:numtide/devshell";`, in.Remediation())
}
