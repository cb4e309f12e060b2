package suppress

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"

	"procwarden/internal/core"
)

const runKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`

// runKeyHiveOrder fixes the traversal order so capture and restore are
// deterministic; runKeyHives maps the tag recorded in the snapshot to the
// registry root.
var runKeyHiveOrder = []string{"HKCU", "HKLM"}

var runKeyHives = map[string]registry.Key{
	"HKCU": registry.CURRENT_USER,
	"HKLM": registry.LOCAL_MACHINE,
}

// RunKeyMechanism suppresses an autorun registry value. Target is the value
// name under the Run key; both HKCU and HKLM are searched and the prior
// string of every hive that holds it is captured, so revert restores each
// hive exactly, including the case where both hives carry different
// strings. A value that was absent is re-deleted on revert, making
// revert-of-revert a no-op.
type RunKeyMechanism struct{}

func (RunKeyMechanism) Kind() Kind { return KindRunKey }

func (RunKeyMechanism) Capture(ctx context.Context, target string) (State, error) {
	var state State
	err := runBounded(ctx, "reading run key "+target, func() error {
		st := runKeyState{}
		for _, tag := range runKeyHiveOrder {
			k, err := registry.OpenKey(runKeyHives[tag], runKeyPath, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			val, _, err := k.GetStringValue(target)
			k.Close()
			if err == nil {
				st[tag] = val
			}
		}
		if len(st) == 0 {
			return errors.Wrapf(core.ErrNotFound, "run-key value %q", target)
		}
		var err error
		state, err = encodeRunKeyState(st)
		return err
	})
	return state, err
}

func (RunKeyMechanism) Disable(ctx context.Context, target string) error {
	return runBounded(ctx, "deleting run key "+target, func() error {
		// Deleting an already-absent value is the idempotent outcome, not
		// a failure.
		for _, tag := range runKeyHiveOrder {
			k, err := registry.OpenKey(runKeyHives[tag], runKeyPath, registry.SET_VALUE)
			if err != nil {
				continue
			}
			_ = k.DeleteValue(target)
			k.Close()
		}
		return nil
	})
}

func (RunKeyMechanism) Restore(ctx context.Context, target string, prior State) error {
	st, err := decodeRunKeyState(prior)
	if err != nil {
		return err
	}
	return runBounded(ctx, "restoring run key "+target, func() error {
		for _, tag := range runKeyHiveOrder {
			val, had := st[tag]
			if !had {
				// This hive did not hold the value before suppression;
				// keep it absent so revert-of-revert stays exact.
				if k, err := registry.OpenKey(runKeyHives[tag], runKeyPath, registry.SET_VALUE); err == nil {
					_ = k.DeleteValue(target)
					k.Close()
				}
				continue
			}
			k, _, err := registry.CreateKey(runKeyHives[tag], runKeyPath, registry.SET_VALUE)
			if err != nil {
				return errors.Wrapf(err, "opening run key in %s", tag)
			}
			if err := k.SetStringValue(target, val); err != nil {
				k.Close()
				return errors.Wrapf(err, "restoring run-key value %q in %s", target, tag)
			}
			k.Close()
		}
		return nil
	})
}
