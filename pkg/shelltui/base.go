package shelltui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

type modelState int

const (
	stateIdle modelState = iota
	stateWorking
	stateDone
	stateError
)

// completedMsg is sent once the pre-quit delay has elapsed, moving the model
// to its final state.
type completedMsg struct {
	err error
}

// baseModel holds the state shared by all models.
type baseModel struct {
	err     error
	spinner spinner.Model
	width   int
	state   modelState
}

func newBaseModel() baseModel {
	s := spinner.New()
	s.Style = defaultStyles.spinner

	return baseModel{
		spinner: s,
	}
}

// handleCommon processes the messages every model understands. When handled
// is true the caller returns cmd without looking at msg further.
func (b *baseModel) handleCommon(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width

		return nil, true

	case tea.KeyMsg:
		if keyExits(msg) {
			return tea.Quit, true
		}

	case teaMsgWriteLog:
		return writeLog(msg, b.width), true

	case shellcmd.EventDone:
		return tea.Sequence(
			tea.Tick(preQuitDelay, func(_ time.Time) tea.Msg {
				return completedMsg{err: msg.Err}
			}),
			teaQuit(),
		), true

	case completedMsg:
		if msg.err != nil {
			b.state = stateError
			b.err = msg.err
		} else {
			b.state = stateDone
		}

		return nil, true

	case spinner.TickMsg:
		var cmd tea.Cmd

		b.spinner, cmd = b.spinner.Update(msg)

		return cmd, true
	}

	return nil, false
}
