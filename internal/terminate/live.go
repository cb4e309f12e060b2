package terminate

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"

	"procwarden/internal/core"
)

// LiveKiller terminates real processes. It re-checks existence at execution
// time; the engine's snapshot only decides which PIDs to target.
type LiveKiller struct{}

func (LiveKiller) Kill(pid int32) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return errors.Wrapf(core.ErrNotFound, "pid %d", pid)
	}
	if err := p.Kill(); err != nil {
		if isGone(err) {
			return errors.Wrapf(core.ErrNotFound, "pid %d", pid)
		}
		if isDenied(err) {
			return errors.Wrapf(core.ErrAccessDenied, "pid %d: %v", pid, err)
		}
		return errors.Wrapf(err, "killing pid %d", pid)
	}
	return nil
}

func isGone(err error) bool {
	if errors.Is(err, process.ErrorProcessNotRunning) || errors.Is(err, os.ErrProcessDone) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such process") || strings.Contains(msg, "not found")
}

func isDenied(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "access is denied") || strings.Contains(msg, "permission denied")
}
