package tui

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func copyToClipboard(s string) error {
	if err := clipboard.WriteAll(s); err == nil {
		return nil
	}

	// atotto/clipboard can fail on headless or Wayland-only setups; fall
	// back to the common platform tools.
	switch runtime.GOOS {
	case "darwin":
		return runClipboardCmd("pbcopy", nil, s)
	case "windows":
		return runClipboardCmd("cmd", []string{"/c", "clip"}, s)
	default:
		if err := runClipboardCmd("wl-copy", nil, s); err == nil {
			return nil
		}
		return runClipboardCmd("xclip", []string{"-selection", "clipboard"}, s)
	}
}

func runClipboardCmd(name string, args []string, stdin string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	if err := cmd.Run(); err != nil {
		return errors.New(name + ": " + err.Error())
	}
	return nil
}
