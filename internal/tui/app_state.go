package tui

import (
	"strings"

	"career-cli/internal/model"
)

// State machine operations. All are synchronous mutations on the model;
// the only side effects (open/copy/save) are returned as commands by the
// update loop, never performed here.

func (m *appModel) selectNext() {
	if len(m.jobs) == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 || m.selected >= len(m.jobs)-1 {
		m.selected = 0
		return
	}
	m.selected++
}

func (m *appModel) selectPrevious() {
	if len(m.jobs) == 0 {
		m.selected = -1
		return
	}
	if m.selected <= 0 {
		m.selected = len(m.jobs) - 1
		return
	}
	m.selected--
}

func (m *appModel) beginAdd() {
	m.mode = modeEditing
	m.field = fieldCompany
	m.editIndex = -1
	m.stagedCompany = ""
	m.stagedRole = ""
	m.input.SetValue("")
	m.input.Placeholder = "Company"
	m.input.Focus()
}

func (m *appModel) beginEditLink() {
	if m.selected < 0 || m.selected >= len(m.jobs) {
		return
	}
	m.mode = modeEditing
	m.field = fieldLink
	m.editIndex = m.selected
	m.stagedCompany = ""
	m.stagedRole = ""
	m.input.SetValue(m.jobs[m.selected].PostLink)
	m.input.Placeholder = "Link"
	m.input.Focus()
	m.input.CursorEnd()
}

// submitField confirms the current field. On the Link step it commits the
// staged add or patches the target's link; it reports whether the job list
// changed so the caller can schedule a save.
func (m *appModel) submitField() (mutated bool) {
	switch m.field {
	case fieldCompany:
		m.stagedCompany = m.input.Value()
		m.input.SetValue("")
		m.input.Placeholder = "Role"
		m.field = fieldRole
		return false

	case fieldRole:
		m.stagedRole = m.input.Value()
		m.input.SetValue("")
		m.input.Placeholder = "Link (optional)"
		m.field = fieldLink
		return false

	default:
		link := strings.TrimSpace(m.input.Value())
		if m.editIndex >= 0 && m.editIndex < len(m.jobs) {
			m.jobs[m.editIndex].PostLink = link
		} else {
			m.jobs = append(m.jobs, model.NewJob(len(m.jobs)+1, m.stagedCompany, m.stagedRole, link))
			if m.selected < 0 {
				m.selected = 0
			}
		}
		m.resetInput()
		return true
	}
}

func (m *appModel) resetInput() {
	m.stagedCompany = ""
	m.stagedRole = ""
	m.editIndex = -1
	m.field = fieldCompany
	m.mode = modeNormal
	m.input.SetValue("")
	m.input.Placeholder = "Company"
	m.input.Blur()
}

func (m *appModel) cancelInput() {
	m.resetInput()
}

func (m *appModel) cycleStatus() (mutated bool) {
	if m.selected < 0 || m.selected >= len(m.jobs) {
		return false
	}
	m.jobs[m.selected].CycleStatus()
	return true
}

func (m *appModel) deleteSelected() (mutated bool) {
	if m.selected < 0 || m.selected >= len(m.jobs) {
		return false
	}
	m.jobs = append(m.jobs[:m.selected], m.jobs[m.selected+1:]...)
	if len(m.jobs) == 0 {
		m.selected = -1
	} else if m.selected >= len(m.jobs) {
		m.selected = len(m.jobs) - 1
	}
	return true
}

// selectedLink returns the selected record's link, trimmed, or "" when
// there is no usable selection.
func (m *appModel) selectedLink() string {
	if m.selected < 0 || m.selected >= len(m.jobs) {
		return ""
	}
	return strings.TrimSpace(m.jobs[m.selected].PostLink)
}
