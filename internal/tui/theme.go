package tui

import (
	"os"
	"strconv"
	"strings"

	"career-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal
// backgrounds, so colors are lipgloss.AdaptiveColor pairs.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue
	colorModalBord  lipgloss.TerminalColor = ac("240", "250")

	colorStatusApplied      lipgloss.TerminalColor = ac("235", "252")
	colorStatusInterviewing lipgloss.TerminalColor = ac("136", "220") // yellow
	colorStatusOffer        lipgloss.TerminalColor = ac("28", "40")   // green
	colorStatusRejected     lipgloss.TerminalColor = ac("124", "196") // red
	colorStatusGhosted      lipgloss.TerminalColor = ac("245", "240") // gray
)

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(colorSelectedBg).
		Foreground(colorSelectedFg).
		Bold(true)
}

func statusColor(s model.Status) lipgloss.TerminalColor {
	switch s {
	case model.StatusInterviewing:
		return colorStatusInterviewing
	case model.StatusOffer:
		return colorStatusOffer
	case model.StatusRejected:
		return colorStatusRejected
	case model.StatusGhosted:
		return colorStatusGhosted
	default:
		return colorStatusApplied
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honored explicitly; otherwise the terminal's detected
// capabilities win.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// applyThemePreference configures background detection for AdaptiveColor.
//
// Priority:
// 1) CAREER_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg"; use the last segment as bg)
func applyThemePreference() {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("CAREER_TUI_THEME"))); v != "" {
		switch v {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		case "auto":
			// fall through to heuristics
		default:
			// Unknown value: ignore.
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
