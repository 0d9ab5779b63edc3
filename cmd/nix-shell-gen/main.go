package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/nixshellgen/cmd/nix-shell-gen/commands"
)

const (
	cmdName = "nix-shell-gen"

	shortDesc = "Generate and edit Nix development shells."
	longDesc  = `nix-shell-gen scaffolds a flake.nix and a devshell.toml for a Nix
development shell, and edits them as your project grows.

Inputs are added to flake.nix in place: comments, formatting and the order of
existing entries are left exactly as they were, and adding an input twice is
harmless.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
