package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/macropower/nixshellgen/pkg/log"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
	"github.com/macropower/nixshellgen/pkg/shelltui"
)

// newCommander returns the project for args, wrapped in a TUI when stdout is
// an interactive terminal and quiet mode is off. Callers print plain output
// themselves when they get a bare [*shellcmd.Project].
//
//nolint:ireturn // Multiple concrete types.
func newCommander(w io.Writer, args *RootArgs) (shelltui.Commander, error) {
	p := shellcmd.NewProject(args.GetDir())

	if args.GetQuiet() || !isatty.IsTerminal(os.Stdout.Fd()) {
		return p, nil
	}

	lvl, err := log.GetLevel(args.GetLogLevel())
	if err != nil {
		// Should not be possible due to root's PersistentPreRunE.
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return shelltui.NewShellTUI(w, lvl, p), nil
}

// splitList flattens repeated list flags, splitting each value on whitespace.
func splitList(values []string) []string {
	out := []string{}
	for _, v := range values {
		out = append(out, strings.Fields(v)...)
	}

	return out
}
