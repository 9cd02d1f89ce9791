package tui

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// osOpenURL hands the link to the OS default handler. The call is
// fire-and-forget from the UI's perspective; any output is discarded so
// nothing flashes in the controlled terminal.
func osOpenURL(u string) error {
	u = strings.TrimSpace(u)
	if u == "" {
		return errors.New("empty url")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}
