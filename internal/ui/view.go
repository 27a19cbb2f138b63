package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tmux-agent-dash/internal/status"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	listFraction = 0.4
	minListWidth = 24
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.fatal != nil {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}

	header := styles.Header.Render(" tmux-agent-dash ") +
		styles.Dim.Render("│ mission control for AI agents")

	var body string
	switch m.mode {
	case ModeCreating:
		body = m.viewCreateDialog(width)
	case ModeConfirming:
		body = m.viewConfirmDialog(width)
	default:
		body = m.viewMain(width)
	}

	return strings.Join([]string{header, body, m.viewFooter(width)}, "\n")
}

func (m *Model) viewMain(width int) string {
	listWidth := int(float64(width) * listFraction)
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	detailWidth := width - listWidth - 2
	if detailWidth < 0 {
		detailWidth = 0
	}
	list := m.viewSessionList(listWidth)
	detail := m.viewDetail(detailWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
}

func (m *Model) viewSessionList(width int) string {
	var lines []string
	if len(m.sessions) == 0 {
		lines = append(lines, styles.Dim.Render("No sessions found. Press 'n' to create one."))
	}
	for i, s := range m.sessions {
		marker := "  "
		if i == m.cursor {
			marker = "▶ "
		}
		name := runewidth.Truncate(s.Name, width-6, "…")
		row := marker + m.statusIcon(s.Status) + " " + name
		if m.showMeta {
			row += styles.Dim.Render(fmt.Sprintf(" (%d)", s.AttachedClients))
		}
		if i == m.cursor {
			row = styles.Selected.Render(row)
		}
		lines = append(lines, row)
	}
	return styles.Border.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewDetail(width int) string {
	var lines []string
	if s := m.selectedSession(); s != nil {
		lines = append(lines,
			styles.Dim.Render("Name:    ")+styles.Title.Render(s.Name),
			styles.Dim.Render("ID:      ")+styles.Title.Render(s.Id),
			styles.Dim.Render("Status:  ")+m.statusStyle(s.Status).Render(s.Status.String()),
			styles.Dim.Render("Clients: ")+styles.Title.Render(fmt.Sprintf("%d", s.AttachedClients)),
		)
		if m.showMeta && s.CreatedAt > 0 {
			created := time.Unix(s.CreatedAt, 0).Format("2006-01-02 15:04:05")
			lines = append(lines, styles.Dim.Render("Created: ")+styles.Title.Render(created))
		}
		lines = append(lines, "", styles.Dim.Render("Press Enter to attach, 'd' to delete"))
	} else {
		lines = append(lines,
			styles.Dim.Render("No session selected"),
			"",
			styles.Dim.Render("Press 'n' to create a new session"),
		)
	}
	if width > 2 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(width-2))
		}
	}
	return styles.Border.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewFooter(width int) string {
	if m.message != "" {
		style := styles.Error
		if strings.Contains(m.message, "copied") || strings.Contains(m.message, "created") ||
			strings.Contains(m.message, "deleted") {
			style = styles.Success
		}
		return style.Render(" " + truncate.String(m.message, uint(width)) + " ")
	}
	help := " q: quit │ j/k: navigate │ enter: attach │ n: new │ d: delete │ y: copy skeleton │ M: meta "
	return styles.Dim.Render(truncate.String(help, uint(width)))
}

func (m *Model) viewCreateDialog(width int) string {
	content := strings.Join([]string{
		styles.Title.Render("Enter session name:"),
		"",
		m.input.View(),
		"",
		styles.Dim.Render("Press Enter to create, Esc to cancel"),
	}, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.Dialog.Render(content))
}

func (m *Model) viewConfirmDialog(width int) string {
	name := "unknown"
	if s := m.selectedSession(); s != nil {
		name = s.Name
	}
	content := strings.Join([]string{
		styles.Title.Render(fmt.Sprintf("Delete session %q?", name)),
		"",
		styles.StatusBusy.Render("This action cannot be undone."),
		"",
		styles.Dim.Render("Press 'y' to confirm, 'n' or Esc to cancel"),
	}, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.Danger.Render(content))
}

func (m *Model) statusIcon(s status.Status) string {
	switch s {
	case status.Busy:
		return styles.StatusBusy.Render("●")
	case status.Idle:
		return styles.StatusIdle.Render("●")
	case status.WaitingForInput:
		return styles.StatusWaiting.Render("?")
	case status.Error:
		return styles.StatusError.Render("✗")
	default:
		return styles.StatusUnknown.Render("○")
	}
}

func (m *Model) statusStyle(s status.Status) lipgloss.Style {
	switch s {
	case status.Busy:
		return styles.StatusBusy
	case status.Idle:
		return styles.StatusIdle
	case status.WaitingForInput:
		return styles.StatusWaiting
	case status.Error:
		return styles.StatusError
	default:
		return styles.StatusUnknown
	}
}
