package tui

import (
	"time"

	"career-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// redrawInterval bounds how long the loop waits for input before
// re-rendering anyway (supports future time-based UI elements).
const redrawInterval = 250 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(redrawInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m appModel) Init() tea.Cmd {
	return tick()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// Nothing to recompute; the redraw itself is the point.
		return m, tick()

	case saveDoneMsg:
		if msg.err != nil {
			m.message = "Autosave failed: " + msg.err.Error()
		}
		return m, nil

	case urlOpenDoneMsg:
		// Fire-and-forget: failure never changes list state, but it is
		// worth a footer note instead of total silence.
		if msg.err != nil {
			m.message = "Open failed: " + msg.err.Error()
		}
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.message = "Copy failed: " + msg.err.Error()
		} else {
			m.message = "Link copied"
		}
		return m, nil

	case tea.KeyMsg:
		m.debugLogf("key mode=%s field=%s str=%q", modeToString(m.mode), fieldToString(m.field), msg.String())
		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		default:
			return m.updateEditing(msg)
		}
	}

	return m, nil
}

func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.selectNext()

	case key.Matches(msg, m.keys.Up):
		m.selectPrevious()

	case key.Matches(msg, m.keys.Add):
		m.message = ""
		m.beginAdd()

	case key.Matches(msg, m.keys.EditLink):
		m.message = ""
		m.beginEditLink()

	case key.Matches(msg, m.keys.CycleStatus):
		if m.cycleStatus() {
			m.message = ""
			return m, m.scheduleSave()
		}

	case key.Matches(msg, m.keys.Delete):
		if m.deleteSelected() {
			m.message = ""
			return m, m.scheduleSave()
		}

	case key.Matches(msg, m.keys.OpenLink):
		if link := m.selectedLink(); link != "" {
			open := m.openURL
			return m, func() tea.Msg { return urlOpenDoneMsg{err: open(link)} }
		}

	case key.Matches(msg, m.keys.CopyLink):
		if link := m.selectedLink(); link != "" {
			cp := m.copyText
			return m, func() tea.Msg { return copyDoneMsg{err: cp(link)} }
		}
	}

	return m, nil
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.submitField() {
			return m, m.scheduleSave()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.cancelInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scheduleSave persists the current list in the background (best effort).
// The clean-shutdown save in the CLI layer remains authoritative.
func (m *appModel) scheduleSave() tea.Cmd {
	s := m.store
	jobs := make([]model.Job, len(m.jobs))
	copy(jobs, m.jobs)
	return func() tea.Msg {
		return saveDoneMsg{err: s.Save(jobs)}
	}
}
