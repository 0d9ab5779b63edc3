package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/nixshellgen/cmd/nix-shell-gen/commands"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	res := run(t, dir, "init",
		"--lang", "python",
		"-p", "jq ripgrep",
		"-p", "fd",
		"-P", "github:numtide/devshell",
		"-s", "echo hello;",
		"--isolated",
	)
	require.NoError(t, res.err)
	assert.Equal(t, "Created flake.nix.\nCreated devshell.toml.\n", res.stdout)

	flake := readFile(t, dir, "flake.nix")
	assert.Contains(t, flake, `devshell.url = "github:numtide/devshell";`)

	res = run(t, dir, "show", "--format", "json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{
		"pure": true,
		"packages": [
			"devshell.packages.${system}.default",
			"fd",
			"jq",
			"python3",
			"ripgrep"
		],
		"shell-hook": "echo hello"
	}`, res.stdout)
}

func TestInitCmdExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flake.nix"), []byte("{ }\n"), 0o600))

	res := run(t, dir, "init")
	require.ErrorIs(t, res.err, commands.ErrInitFailed)
	require.ErrorIs(t, res.err, shellcmd.ErrAlreadyExists)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "{ }\n", readFile(t, dir, "flake.nix"))

	res = run(t, dir, "init", "--force")
	require.NoError(t, res.err)
	assert.Contains(t, readFile(t, dir, "flake.nix"), "flake-utils.url")
}

func TestInitCmdRejectsArgs(t *testing.T) {
	res := run(t, t.TempDir(), "init", "extra")
	require.Error(t, res.err)
}
