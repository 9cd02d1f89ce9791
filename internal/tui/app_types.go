package tui

type inputMode int

const (
	modeNormal inputMode = iota
	modeEditing
)

// inputField is the logical field currently being captured while in
// editing mode. The add flow walks Company → Role → Link; the link-edit
// flow enters directly at Link.
type inputField int

const (
	fieldCompany inputField = iota
	fieldRole
	fieldLink
)

type tickMsg struct{}

type saveDoneMsg struct{ err error }

type urlOpenDoneMsg struct{ err error }

type copyDoneMsg struct{ err error }

func modeToString(m inputMode) string {
	switch m {
	case modeEditing:
		return "editing"
	default:
		return "normal"
	}
}

func fieldToString(f inputField) string {
	switch f {
	case fieldRole:
		return "role"
	case fieldLink:
		return "link"
	default:
		return "company"
	}
}
