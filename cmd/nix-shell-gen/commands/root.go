package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/nixshellgen/pkg/log"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.dir, "dir", "d", ".", "Directory holding flake.nix and devshell.toml")
	cmd.PersistentFlags().BoolVarP(args.quiet, "quiet", "q", false, "Disable the interactive terminal UI")

	must(cmd.MarkPersistentFlagDirname("dir"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr *multierror.Error

		lvl, err := log.GetLevel(args.GetLogLevel())
		merr = multierror.Append(merr, err)

		format, err := log.GetFormat(args.GetLogFormat())
		merr = multierror.Append(merr, err)

		if err := merr.ErrorOrNil(); err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(log.CreateHandler(cc.ErrOrStderr(), lvl, format)))

		slog.Debug("ready to go", slog.String("dir", args.GetDir()))

		return nil
	}

	cmd.AddCommand(NewInitCmd(args))
	cmd.AddCommand(NewAddCmd(args))
	cmd.AddCommand(NewShowCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
