package tui

import (
	"fmt"
	"strings"

	"career-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	header := m.renderHeader(width)

	// Header, blank, body, blank, message, help.
	bodyHeight := height - 5
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.mode == modeEditing {
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderInputModal(width))
	} else {
		body = m.renderRows(width, bodyHeight)
	}

	message := truncate(m.message, width)
	footer := m.renderHelp()

	return strings.Join([]string{header, "", body, "", message, footer}, "\n")
}

func (m appModel) renderHeader(width int) string {
	total := len(m.jobs)
	interviewing := 0
	offers := 0
	for _, j := range m.jobs {
		switch j.Status {
		case model.StatusInterviewing:
			interviewing++
		case model.StatusOffer:
			offers++
		}
	}
	title := fmt.Sprintf(" Career Tracker | Total: %d | Interviewing: %d | Offers: %d ", total, interviewing, offers)
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(truncate(title, width))
}

func (m appModel) renderRows(width, height int) string {
	if len(m.jobs) == 0 {
		empty := styleMuted().Render("No applications yet. Press 'a' to add one.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	companyW, roleW, linkW, statusW := columnWidths(width)

	// Keep the selected row inside the visible window.
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	end := start + height
	if end > len(m.jobs) {
		end = len(m.jobs)
	}

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, companyW, roleW, linkW, statusW))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderRow(i, companyW, roleW, linkW, statusW int) string {
	job := m.jobs[i]

	link := job.PostLink
	if link == "" {
		link = "-"
	}

	cells := strings.Join([]string{
		padCell(job.Company, companyW),
		padCell(job.Role, roleW),
		padCell(link, linkW),
		padCell(string(job.Status), statusW),
	}, " | ")

	if i == m.selected {
		return styleSelectedRow().Render(">> " + " " + cells)
	}
	row := "   " + " " + cells
	return lipgloss.NewStyle().Foreground(statusColor(job.Status)).Render(row)
}

func (m appModel) renderHelp() string {
	if m.mode == modeEditing {
		return m.help.View(editingHelp{k: m.keys})
	}
	return m.help.View(normalHelp{k: m.keys})
}

func (m appModel) inputModalTitle() string {
	switch m.field {
	case fieldCompany:
		return "Enter Company Name"
	case fieldRole:
		return "Enter Role Title"
	default:
		if m.editIndex >= 0 {
			return "Edit Job Link"
		}
		return "Enter Job Link (optional)"
	}
}

func (m appModel) renderInputModal(screenW int) string {
	boxW := screenW * 3 / 5
	if boxW < 30 {
		boxW = 30
	}
	if boxW > 72 {
		boxW = 72
	}
	bodyW := boxW - 4 // border + padding

	title := lipgloss.NewStyle().Bold(true).Render(truncate(m.inputModalTitle(), bodyW))
	input := renderInputLine(bodyW, m.input.View())
	help := styleMuted().Render("enter: confirm   esc: cancel")

	content := strings.Join([]string{title, "", input, "", help}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBord).
		Padding(0, 1).
		Width(boxW - 2).
		Render(content)
}

// renderInputLine keeps the text input on a single visual line and never
// wider than the modal body (ANSI-aware).
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")
	if xansi.StringWidth(inputView) > bodyW {
		// Terminate ANSI styling to prevent bleed past the cut.
		inputView = xansi.Cut(inputView, 0, bodyW) + "\x1b[0m"
	}
	return inputView
}
