package tui

import (
	"fmt"

	"career-cli/internal/model"
	"career-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run owns the interactive session: raw/alt-screen acquisition and
// restoration (on every exit path, including panics) is handled by
// bubbletea before Run returns, so any error surfaces on a restored
// terminal. The final job list is returned for the shutdown save.
func Run(s store.Store, jobs []model.Job) ([]model.Job, error) {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(s, jobs)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return jobs, err
	}
	fm, ok := final.(appModel)
	if !ok {
		return jobs, fmt.Errorf("unexpected final model type %T", final)
	}
	return fm.jobs, nil
}
