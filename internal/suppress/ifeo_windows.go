package suppress

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

const ifeoBase = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Image File Execution Options`

// subkeyAbsent in State.Detail means the IFEO subkey itself was created by
// this suppression and should be removed entirely on revert.
const subkeyAbsent = "subkey_absent"

// IFEOMechanism blocks an executable from launching by writing a debugger
// redirect to a nonexistent stub. Target is the executable base name
// (e.g. "malware.exe"). Capture records whether a Debugger value already
// existed; rare, but revert must restore it rather than destroy an
// unrelated pre-existing entry.
type IFEOMechanism struct {
	// StubPath is the debugger value written to block the launch. It must
	// point at a path that does not exist.
	StubPath string
}

func (IFEOMechanism) Kind() Kind { return KindIFEO }

func (IFEOMechanism) Capture(ctx context.Context, target string) (State, error) {
	var state State
	err := runBounded(ctx, "reading IFEO entry for "+target, func() error {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, ifeoBase+`\`+target, registry.QUERY_VALUE)
		if err != nil {
			state = State{Existed: false, Detail: subkeyAbsent}
			return nil
		}
		defer k.Close()

		debugger, _, err := k.GetStringValue("Debugger")
		if err != nil {
			state = State{Existed: false}
			return nil
		}
		state = State{Existed: true, Value: debugger}
		return nil
	})
	return state, err
}

func (m IFEOMechanism) Disable(ctx context.Context, target string) error {
	return runBounded(ctx, "writing IFEO block for "+target, func() error {
		k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, ifeoBase+`\`+target, registry.SET_VALUE)
		if err != nil {
			return errors.Wrapf(err, "creating IFEO key for %q", target)
		}
		defer k.Close()
		return errors.Wrapf(k.SetStringValue("Debugger", m.StubPath),
			"writing IFEO debugger for %q", target)
	})
}

func (IFEOMechanism) Restore(ctx context.Context, target string, prior State) error {
	return runBounded(ctx, "removing IFEO block for "+target, func() error {
		if prior.Existed {
			// A debugger value predated us; put the original back.
			k, err := registry.OpenKey(registry.LOCAL_MACHINE, ifeoBase+`\`+target, registry.SET_VALUE)
			if err != nil {
				return errors.Wrapf(err, "opening IFEO key for %q", target)
			}
			defer k.Close()
			return errors.Wrapf(k.SetStringValue("Debugger", prior.Value),
				"restoring prior IFEO debugger for %q", target)
		}

		k, err := registry.OpenKey(registry.LOCAL_MACHINE, ifeoBase+`\`+target, registry.SET_VALUE)
		if err != nil {
			return nil // already gone
		}
		_ = k.DeleteValue("Debugger")
		k.Close()

		if prior.Detail == subkeyAbsent {
			// We created the whole subkey; leave no trace of it.
			_ = registry.DeleteKey(registry.LOCAL_MACHINE, ifeoBase+`\`+target)
		}
		return nil
	})
}
