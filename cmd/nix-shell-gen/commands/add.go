package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/macropower/nixshellgen/pkg/flakeedit"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

const (
	addExample = `  # Add packages
  nix-shell-gen add -p "jq ripgrep"

  # Add a flake input and its default package
  nix-shell-gen add -P github:numtide/devshell

  # Append to the shell hook
  nix-shell-gen add -s 'export EDITOR=vim'
`
)

var ErrAddFailed = errors.New("add failed")

// NewAddCmd returns the add command.
func NewAddCmd(args *RootArgs) *cobra.Command {
	packages := new([]string)
	inputs := new([]string)
	shellHook := new(string)
	strict := new(bool)

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add packages, flake inputs or a shell hook",
		Example: addExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommander(cmd.OutOrStdout(), args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCommandFailed, err)
			}

			res, err := cc.Add(&shellcmd.AddOptions{
				Packages:  splitList(*packages),
				Inputs:    splitList(*inputs),
				ShellHook: *shellHook,
			})

			if p, ok := cc.(*shellcmd.Project); ok && res != nil {
				printAddResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), p, res, err == nil)
			}

			if err != nil {
				return fmt.Errorf("%w: %w", ErrAddFailed, err)
			}

			if *strict {
				if err := res.Err(); err != nil {
					return fmt.Errorf("%w: %w", ErrAddFailed, err)
				}
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringArrayVarP(packages, "packages", "p", nil, "Packages to add, may be repeated")
	cmd.Flags().StringArrayVarP(inputs, "inputs", "P", nil, "Flake input URLs to add, may be repeated")
	cmd.Flags().StringVarP(shellHook, "shell_hook", "s", "", "Command to append to the shell hook")
	cmd.Flags().BoolVar(strict, "strict", false, "Exit with an error if any input could not be added")

	return cmd
}

func printAddResult(w, errW io.Writer, p *shellcmd.Project, res *shellcmd.AddResult, saved bool) {
	for _, in := range res.Inputs {
		switch {
		case in.Err != nil:
			fmt.Fprintf(errW, "Failed to add input %q to %s: %v\n", in.Source, p.FlakeFile, in.Err)

			if r := in.Remediation(); r != "" {
				fmt.Fprintf(errW, "Please add it manually: %s\n", r)
			}

		case in.Outcome == flakeedit.OutcomeAlreadyPresent:
			fmt.Fprintf(w, "Input %q is already in %s.\n", in.Input.Key, p.FlakeFile)

		default:
			fmt.Fprintf(w, "Added input %q to %s.\n", in.Input.Key, p.FlakeFile)
		}
	}

	if !saved {
		return
	}

	if res.PackagesAdded > 0 {
		fmt.Fprintf(w, "Added %d new packages to %s.\n", res.PackagesAdded, p.ConfigFile)
	}

	if res.HookAppended {
		fmt.Fprintf(w, "Appended shell hook to %s.\n", p.ConfigFile)
	}

	fmt.Fprintf(w, "Updated %s.\n", p.ConfigFile)
}
