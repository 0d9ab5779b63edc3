package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/nixshellgen/pkg/devshell"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

const (
	initExample = `  # Scaffold a Rust shell
  nix-shell-gen init --lang rust

  # Add packages and a flake input
  nix-shell-gen init -p "jq ripgrep" -P github:numtide/devshell

  # Replace existing files with an isolated shell
  nix-shell-gen init --isolated --force
`
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCommandFailed   = errors.New("command failed")
	ErrInitFailed      = errors.New("init failed")
)

// NewInitCmd returns the init command.
func NewInitCmd(args *RootArgs) *cobra.Command {
	lang := new(string)
	packages := new([]string)
	inputs := new([]string)
	shellHook := new(string)
	isolated := new(bool)
	force := new(bool)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create flake.nix and devshell.toml",
		Example: initExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommander(cmd.OutOrStdout(), args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCommandFailed, err)
			}

			if p, ok := cc.(*shellcmd.Project); ok {
				p.Subscribe(func(evt any) {
					if e, ok := evt.(shellcmd.EventInit); ok && e.Err == nil {
						w := cmd.OutOrStdout()
						fmt.Fprintf(w, "Created %s.\n", p.FlakeFile)
						fmt.Fprintf(w, "Created %s.\n", p.ConfigFile)
					}
				})
			}

			err = cc.Init(&shellcmd.InitOptions{
				Lang:      *lang,
				Packages:  splitList(*packages),
				Inputs:    splitList(*inputs),
				ShellHook: *shellHook,
				Isolated:  *isolated,
				Force:     *force,
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(lang, "lang", "l", "",
		fmt.Sprintf("Language preset, one of %v", devshell.Languages()))
	cmd.Flags().StringArrayVarP(packages, "packages", "p", nil, "Packages to include, may be repeated")
	cmd.Flags().StringArrayVarP(inputs, "inputs", "P", nil, "Flake input URLs to include, may be repeated")
	cmd.Flags().StringVarP(shellHook, "shell_hook", "s", "", "Command to run on shell entry")
	cmd.Flags().BoolVar(isolated, "isolated", false, "Make the shell pure")
	cmd.Flags().BoolVar(force, "force", false, "Overwrite existing files")

	return cmd
}
