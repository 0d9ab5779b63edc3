package shelltui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/nixshellgen/pkg/flakeedit"
	"github.com/macropower/nixshellgen/pkg/shellcmd"
)

// AddModel shows the progress of an add, one line per flake input.
type AddModel struct {
	current string
	baseModel
	total   int
	added   int
	present int
	failed  int
}

func NewAddModel() *AddModel {
	return &AddModel{
		baseModel: newBaseModel(),
	}
}

func (m *AddModel) Init() tea.Cmd {
	m.state = stateWorking

	return m.spinner.Tick
}

//nolint:ireturn // Third-party.
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case shellcmd.EventSetInputTotal:
		m.total = int(msg)

	case shellcmd.EventAddingInput:
		m.current = string(msg)

	case shellcmd.EventAddedInput:
		m.current = ""

		switch {
		case msg.Err != nil:
			m.failed++

			line := fmt.Sprintf("%s %s: %v", defaultStyles.cross, msg.Key, msg.Err)
			if msg.Remediation != "" {
				line += "\n" + defaultStyles.hint.Render("  add it manually: "+msg.Remediation)
			}

			return m, tea.Println(line)

		case msg.Outcome == flakeedit.OutcomeAlreadyPresent:
			m.present++

			return m, tea.Printf("%s %s (already present)", defaultStyles.skip, msg.Key)

		default:
			m.added++

			return m, tea.Printf("%s %s", defaultStyles.check, msg.Key)
		}
	}

	return m, nil
}

func (m *AddModel) summary() string {
	parts := []string{fmt.Sprintf("%d added", m.added)}
	if m.present > 0 {
		parts = append(parts, fmt.Sprintf("%d already present", m.present))
	}

	if m.failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", m.failed))
	}

	return "Done! Inputs: " + strings.Join(parts, ", ") + ".\n"
}

func (m *AddModel) View() string {
	switch m.state {
	case stateError:
		return getErrorMessage(m.err, m.width)

	case stateDone:
		if m.total == 0 {
			return defaultStyles.done.Render("Done! Updated config.\n")
		}

		return defaultStyles.done.Render(m.summary())

	case stateWorking:
		spin := m.spinner.View() + " "
		cellsAvail := max(0, m.width-lipgloss.Width(spin))

		text := "Updating config"
		if m.current != "" {
			text = "Adding " + defaultStyles.itemName.Render(m.current)
		}

		if m.total > 0 {
			done := m.added + m.present + m.failed
			text += fmt.Sprintf(" (%d/%d)", done, m.total)
		}

		info := lipgloss.NewStyle().MaxWidth(cellsAvail).Render(text)

		cellsRemaining := max(0, m.width-lipgloss.Width(spin+info))
		gap := strings.Repeat(" ", cellsRemaining) + "\n"

		return spin + info + gap

	case stateIdle:
		return ""
	}

	return ""
}
