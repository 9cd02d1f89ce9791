package tui

import (
	"fmt"
	"os"
	"strings"

	"career-cli/internal/model"
	"career-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	store store.Store
	jobs  []model.Job

	width  int
	height int

	// selected is the selection cursor into jobs; -1 iff jobs is empty.
	selected int

	mode  inputMode
	field inputField
	input textinput.Model
	// Staged values confirmed during the multi-step add, held until the
	// Link step commits the record.
	stagedCompany string
	stagedRole    string
	// editIndex is the edit target: -1 appends a new record, >= 0 patches
	// the link of an existing one.
	editIndex int

	keys keyMap
	help help.Model

	// message is the footer message line (autosave errors, open/copy
	// outcomes). Cleared on the next successful action.
	message string

	// Effect capabilities, injected so tests can swap in fakes.
	openURL  func(string) error
	copyText func(string) error

	debugLogPath string
}

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Add         key.Binding
	EditLink    key.Binding
	CycleStatus key.Binding
	Delete      key.Binding
	OpenLink    key.Binding
	CopyLink    key.Binding
	Quit        key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		EditLink:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit link")),
		CycleStatus: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "status")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		OpenLink:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		CopyLink:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// normalHelp/editingHelp are the footer key hints per mode. help.Model
// wants a KeyMap interface; a per-mode wrapper keeps the hints honest.
type normalHelp struct{ k keyMap }

func (h normalHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Add, h.k.EditLink, h.k.Delete, h.k.CycleStatus, h.k.OpenLink, h.k.CopyLink, h.k.Quit}
}

func (h normalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Add, h.k.EditLink},
		{h.k.CycleStatus, h.k.Delete, h.k.OpenLink, h.k.CopyLink, h.k.Quit},
	}
}

type editingHelp struct{ k keyMap }

func (h editingHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.Cancel}
}

func (h editingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.k.Submit, h.k.Cancel}}
}

func newAppModel(s store.Store, jobs []model.Job) appModel {
	m := appModel{
		store:     s,
		jobs:      jobs,
		selected:  -1,
		mode:      modeNormal,
		field:     fieldCompany,
		editIndex: -1,
		keys:      newKeyMap(),
		help:      help.New(),
		openURL:   osOpenURL,
		copyText:  copyToClipboard,
	}
	if len(m.jobs) > 0 {
		m.selected = 0
	}

	m.input = textinput.New()
	m.input.Placeholder = "Company"
	m.input.CharLimit = 200
	m.input.Width = 40

	m.debugLogPath = strings.TrimSpace(os.Getenv("CAREER_TUI_DEBUG_LOG"))
	return m
}

// debugLogf appends a line to the debug log when CAREER_TUI_DEBUG_LOG is
// set. The TUI owns the terminal, so this is the only log sink.
func (m *appModel) debugLogf(format string, args ...any) {
	if m == nil || m.debugLogPath == "" {
		return
	}
	f, err := os.OpenFile(m.debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, format+"\n", args...)
}
