package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/macropower/nixshellgen/cmd/nix-shell-gen/commands"
)

type result struct {
	err    error
	stdout string
	stderr string
}

// run executes the CLI in dir with the TUI disabled.
func run(t *testing.T, dir string, args ...string) result {
	t.Helper()

	cmd := commands.NewRootCmd("test", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd.SetArgs(append([]string{"--dir", dir, "--quiet"}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()

	return result{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	return string(data)
}
