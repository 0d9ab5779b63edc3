package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/macropower/nixshellgen/pkg/devshell"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// NewShowCmd returns the show command.
func NewShowCmd(args *RootArgs) *cobra.Command {
	format := new(string)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current devshell config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := shellcmd.NewProject(args.GetDir()).Config()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCommandFailed, err)
			}

			out, err := encodeConfig(cfg, *format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("%w: write output: %w", ErrCommandFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(format, "format", "o", FormatTOML, "Output format (toml, yaml, json)")

	return cmd
}

func encodeConfig(cfg *devshell.Config, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		out, err := cfg.Marshal()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCommandFailed, err)
		}

		return out, nil

	case FormatYAML:
		buf := &bytes.Buffer{}

		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)

		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("%w: encode yaml: %w", ErrCommandFailed, err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("%w: encode yaml: %w", ErrCommandFailed, err)
		}

		return buf.Bytes(), nil

	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: encode json: %w", ErrCommandFailed, err)
		}

		return append(out, '\n'), nil
	}

	return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, format)
}
