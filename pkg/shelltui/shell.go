package shelltui

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/nixshellgen/pkg/log"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

// Commander runs the nix-shell-gen commands. It is implemented by
// [shellcmd.Project] and by [ShellTUI].
type Commander interface {
	Init(opts *shellcmd.InitOptions) error
	Add(opts *shellcmd.AddOptions) (*shellcmd.AddResult, error)
	Subscribe(f func(any))
}

var _ Commander = (*ShellTUI)(nil)

// ShellTUI runs a [Commander] behind an interactive terminal view.
type ShellTUI struct {
	cmd  Commander
	p    *tea.Program
	w    io.Writer
	opts []tea.ProgramOption
}

// NewShellTUI creates a [ShellTUI] writing to w. It replaces the default
// [slog] logger so that records are printed through the TUI. opts are passed
// to every [tea.Program] it starts.
func NewShellTUI(w io.Writer, lvl slog.Level, cmd Commander, opts ...tea.ProgramOption) *ShellTUI {
	c := &ShellTUI{
		cmd:  cmd,
		w:    w,
		opts: opts,
	}

	c.cmd.Subscribe(c.broadcastEvent)

	slog.SetDefault(
		slog.New(log.CreateHandler(c, lvl, log.FormatText)),
	)

	return c
}

func (c *ShellTUI) broadcastEvent(evt any) {
	if c.p != nil {
		c.p.Send(evt)
	}
}

func (c *ShellTUI) Write(p []byte) (int, error) {
	c.broadcastEvent(teaMsgWriteLog(string(p)))

	return len(p), nil
}

func (c *ShellTUI) Subscribe(f func(any)) {
	c.cmd.Subscribe(f)
}

func (c *ShellTUI) newProgram(m tea.Model) *tea.Program {
	opts := append([]tea.ProgramOption{tea.WithOutput(c.w)}, c.opts...)

	return tea.NewProgram(m, opts...)
}

func (c *ShellTUI) Init(opts *shellcmd.InitOptions) error {
	c.p = c.newProgram(NewActionModel("initialization", "initializing"))

	errCh := make(chan error, 1)

	go func() {
		err := c.cmd.Init(opts)
		errCh <- err

		c.broadcastEvent(shellcmd.EventDone{Err: err})
	}()

	if _, err := c.p.Run(); err != nil {
		return fmt.Errorf("launch tui: %w", err)
	}

	return <-errCh
}

func (c *ShellTUI) Add(opts *shellcmd.AddOptions) (*shellcmd.AddResult, error) {
	c.p = c.newProgram(NewAddModel())

	type result struct {
		res *shellcmd.AddResult
		err error
	}

	resCh := make(chan result, 1)

	// The commander sends EventDone itself when Add returns.
	go func() {
		res, err := c.cmd.Add(opts)
		resCh <- result{res: res, err: err}
	}()

	if _, err := c.p.Run(); err != nil {
		return nil, fmt.Errorf("launch tui: %w", err)
	}

	r := <-resCh

	return r.res, r.err
}
