package shelltui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionModel shows a spinner while a single action runs, then its result.
type ActionModel struct {
	noun string
	verb string
	baseModel
}

// NewActionModel creates an [ActionModel]. noun names the finished action
// (e.g. "initialization") and verb the ongoing one (e.g. "initializing").
func NewActionModel(noun, verb string) *ActionModel {
	caser := cases.Title(language.English)

	return &ActionModel{
		baseModel: newBaseModel(),
		noun:      caser.String(noun),
		verb:      caser.String(verb),
	}
}

func (m *ActionModel) Init() tea.Cmd {
	m.state = stateWorking

	return m.spinner.Tick
}

//nolint:ireturn // Third-party.
func (m *ActionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleCommon(msg); handled {
		return m, cmd
	}

	return m, nil
}

func (m *ActionModel) View() string {
	switch m.state {
	case stateError:
		return getErrorMessage(m.err, m.width)

	case stateDone:
		return defaultStyles.done.Render(m.noun + " complete.\n")

	case stateWorking:
		spin := m.spinner.View() + " "
		cellsAvail := max(0, m.width-lipgloss.Width(spin))

		info := lipgloss.NewStyle().MaxWidth(cellsAvail).Render(m.verb)

		cellsRemaining := max(0, m.width-lipgloss.Width(spin+info))
		gap := strings.Repeat(" ", cellsRemaining) + "\n"

		return spin + info + gap

	case stateIdle:
		return ""
	}

	return ""
}
