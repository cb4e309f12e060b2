package suppress

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"procwarden/internal/core"
)

// TaskMechanism suppresses a scheduled task by disabling it via schtasks.
// Target is the task path (e.g. `\Vendor\Updater`). Capture records the
// enabled/disabled flag; revert restores whichever state the task was in,
// so suppressing an already-disabled task reverts to disabled.
type TaskMechanism struct{}

func (TaskMechanism) Kind() Kind { return KindTask }

func (TaskMechanism) Capture(ctx context.Context, target string) (State, error) {
	out, err := exec.CommandContext(ctx, "schtasks", "/Query", "/TN", target, "/FO", "LIST", "/V").CombinedOutput()
	if err != nil {
		if strings.Contains(string(out), "cannot find") {
			return State{}, errors.Wrapf(core.ErrNotFound, "scheduled task %q", target)
		}
		return State{}, errors.Wrapf(err, "querying scheduled task %q: %s", target, strings.TrimSpace(string(out)))
	}
	return State{Existed: true, Value: taskState(string(out))}, nil
}

func (TaskMechanism) Disable(ctx context.Context, target string) error {
	return changeTask(ctx, target, "/Disable")
}

func (TaskMechanism) Restore(ctx context.Context, target string, prior State) error {
	flag := "/Enable"
	if prior.Value == "Disabled" {
		flag = "/Disable"
	}
	return changeTask(ctx, target, flag)
}

func changeTask(ctx context.Context, target, flag string) error {
	out, err := exec.CommandContext(ctx, "schtasks", "/Change", "/TN", target, flag).CombinedOutput()
	if err != nil {
		text := strings.TrimSpace(string(out))
		if strings.Contains(text, "cannot find") {
			return errors.Wrapf(core.ErrNotFound, "scheduled task %q", target)
		}
		if strings.Contains(strings.ToLower(text), "access is denied") {
			return errors.Wrapf(core.ErrAccessDenied, "scheduled task %q", target)
		}
		return errors.Wrapf(err, "schtasks %s %q: %s", flag, target, text)
	}
	return nil
}

// taskState pulls the enabled flag out of schtasks verbose LIST output.
func taskState(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "Scheduled Task State:") {
			if strings.Contains(line, "Disabled") {
				return "Disabled"
			}
			return "Enabled"
		}
	}
	return "Enabled"
}
