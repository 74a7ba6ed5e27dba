// Package reveal opens paths in the OS-native file browser.
package reveal

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener shows a path to the user in whatever file browser the platform
// provides.
type Opener interface {
	Open(path string) error
}

// OSOpener shells out to the platform's opener command.
type OSOpener struct{}

// Open implements Opener. The command is started and left to its own
// devices; file browsers detach immediately and their exit status says
// nothing useful.
func (OSOpener) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s in file manager: %w", path, err)
	}
	return nil
}
