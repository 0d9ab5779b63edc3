package shelltui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"

	tea "github.com/charmbracelet/bubbletea"
)

type styles struct {
	spinner  lipgloss.Style
	done     lipgloss.Style
	err      lipgloss.Style
	itemName lipgloss.Style
	hint     lipgloss.Style
	check    lipgloss.Style
	skip     lipgloss.Style
	cross    lipgloss.Style
}

var defaultStyles = styles{
	spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	done:     lipgloss.NewStyle().Margin(1, 2),
	err:      lipgloss.NewStyle().Margin(1, 2),
	itemName: lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	check:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓"),
	skip:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).SetString("•"),
	cross:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗"),
}

// preQuitDelay is the time to wait after work completes before quitting, so
// that previously sent messages are rendered.
const preQuitDelay = 100 * time.Millisecond

type (
	// Sent to write a log message.
	teaMsgWriteLog string
)

func teaQuit() tea.Cmd {
	return tea.Sequence(
		tea.Tick(time.Millisecond*500, func(_ time.Time) tea.Msg {
			return nil
		}),
		tea.Quit,
	)
}

func keyExits(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return true
	}

	return false
}

func writeLog(msg teaMsgWriteLog, width int) tea.Cmd {
	logMsg := string(msg)
	logMsg = strings.Trim(logMsg, "\r\n")
	logMsg = lipgloss.NewStyle().Width(max(0, width-2)).Render(logMsg)

	return tea.Println(logMsg)
}

func getErrorMessage(err error, width int) string {
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) <= 1 {
		errMsg := fmt.Sprintf("%v", err)
		errMsg = strings.Trim(errMsg, "\r\n")

		return defaultStyles.err.Width(max(0, width-2)).Render(errMsg + "\n")
	}

	maxWidth := max(0, width-2)
	lines := make([]string, 0, len(merr.Errors))

	for _, e := range merr.Errors {
		line := fmt.Sprintf("%s %s", defaultStyles.cross, e)
		lines = append(lines, lipgloss.NewStyle().MaxWidth(maxWidth).Render(line))
	}

	return defaultStyles.err.Render(strings.Join(lines, "\n") + "\n")
}
