// Package procspawn launches detached child processes for keybind
// exec commands and autostart.sh, per spec.md §6/§4.7. There is no
// third-party process-spawning library in the retrieved pack beyond
// the standard os/exec wrapping the teacher itself already uses
// (internal/input/privileged_helper.go, tool_handler.go); the setsid
// detachment is a single SysProcAttr field, so this stays stdlib.
package procspawn

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/yaenergy/estrogenwl/internal/wlog"
)

// ShellCommand runs the command string via `/bin/sh -c`, per spec.md
// §4.7's `exec <argv…>` keybind. The child is detached (setsid) and
// the call returns immediately, with a goroutine reaping the child. A
// failure to start the shell is logged and returned; a failure of the
// command inside the shell only shows in the child's exit status,
// which is logged at debug level.
func ShellCommand(command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		wlog.Errorf("failed to launch %q: %v", command, err)
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			wlog.Debugf("command %q exited: %v", command, err)
		}
	}()
	return nil
}
