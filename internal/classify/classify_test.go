package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwarden/internal/core"
	"procwarden/internal/factbase"
	"procwarden/internal/snapshot"
)

func described(text string) core.Description {
	return core.Description{Text: text, Confidence: core.ConfidenceExact}
}

func userProc(pid, ppid int32, name string) core.ProcessRecord {
	return core.ProcessRecord{PID: pid, ParentPID: ppid, Name: name, Username: `DESKTOP\alice`}
}

func TestCoreOSProcessIsCritical(t *testing.T) {
	c := New(factbase.New())
	for _, name := range []string{"csrss.exe", "lsass.exe", "winlogon.exe", "services.exe", "System"} {
		got := c.Classify(core.ProcessRecord{PID: 100, Name: name}, described(name), nil)
		assert.Equal(t, core.TierCritical, got.Tier, name)
		assert.NotEmpty(t, got.Impact, name)
	}
}

func TestKernelPseudoPIDsAreCritical(t *testing.T) {
	c := New(factbase.New())
	for _, pid := range []int32{0, 4} {
		got := c.Classify(core.ProcessRecord{PID: pid, Name: "whatever"}, described("x"), nil)
		assert.Equal(t, core.TierCritical, got.Tier)
	}
}

func TestEssentialServiceHostIsCritical(t *testing.T) {
	c := New(factbase.New())
	rec := core.ProcessRecord{PID: 900, Name: "svchost.exe", Services: []string{"RpcSs"}}
	got := c.Classify(rec, described("Service Host"), nil)
	assert.Equal(t, core.TierCritical, got.Tier)
	assert.Contains(t, got.Impact, "RpcSs")
}

func TestFactBaseTierVerbatim(t *testing.T) {
	c := New(factbase.New())

	spooler := c.Classify(core.ProcessRecord{PID: 123, Name: "spoolsv.exe"}, described("Print Spooler"), nil)
	assert.Equal(t, core.TierCaution, spooler.Tier)

	notepad := c.Classify(userProc(200, 1, "notepad.exe"), described("Notepad"), nil)
	assert.Equal(t, core.TierSafe, notepad.Tier)
}

func TestCriticalDescendantElevatesAncestor(t *testing.T) {
	c := New(factbase.New())
	snap := snapshot.Build([]core.ProcessRecord{
		{PID: 10, Name: "launcher.exe", Username: `DESKTOP\alice`},
		{PID: 20, ParentPID: 10, Name: "middle.exe", Username: `DESKTOP\alice`},
		{PID: 30, ParentPID: 20, Name: "lsass.exe"},
	})

	root, _ := snap.Get(10)
	got := c.Classify(root, described("Launcher"), snap)
	assert.Equal(t, core.TierCritical, got.Tier)
	assert.Contains(t, got.Impact, "lsass.exe")
}

func TestSafeDescendantDoesNotElevate(t *testing.T) {
	c := New(factbase.New())
	snap := snapshot.Build([]core.ProcessRecord{
		userProc(10, 1, "notepad.exe"),
		userProc(20, 10, "calc.exe"),
	})

	root, _ := snap.Get(10)
	got := c.Classify(root, described("Notepad"), snap)
	assert.Equal(t, core.TierSafe, got.Tier)
}

func TestUnsignedInDropDirIsAtLeastCaution(t *testing.T) {
	c := New(factbase.New())
	rec := userProc(300, 1, "notepad.exe")
	rec.ExePath = `C:\Users\alice\AppData\Local\Temp\notepad.exe`
	rec.Signature = core.SigUnsigned

	got := c.Classify(rec, described("Notepad"), nil)
	// Fact base says Safe; the location conflict floors it at Caution and
	// stays visible in the explanation.
	assert.Equal(t, core.TierCaution, got.Tier)
	assert.Contains(t, got.Impact, "Unsigned")
}

func TestUnknownDefaultsToCaution(t *testing.T) {
	c := New(factbase.New())
	rec := core.ProcessRecord{PID: 400, Name: "mystery.exe", Username: "NT AUTHORITY\\SYSTEM"}
	got := c.Classify(rec, core.Description{Text: "mystery.exe — unknown purpose", Confidence: core.ConfidenceUnknown}, nil)
	assert.Equal(t, core.TierCaution, got.Tier)
	assert.NotEmpty(t, got.Impact)
}

func TestUnknownUserOwnedDescribedIsSafe(t *testing.T) {
	c := New(factbase.New())
	rec := userProc(500, 1, "sometool.exe")
	got := c.Classify(rec, core.Description{Text: "Some Tool", Confidence: core.ConfidenceInferred}, nil)
	assert.Equal(t, core.TierSafe, got.Tier)
}

func TestDeterministic(t *testing.T) {
	c := New(factbase.New())
	snap := snapshot.Build([]core.ProcessRecord{
		userProc(10, 1, "launcher.exe"),
		{PID: 20, ParentPID: 10, Name: "lsass.exe"},
	})
	root, _ := snap.Get(10)

	first := c.Classify(root, described("Launcher"), snap)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(root, described("Launcher"), snap))
	}
}

func TestFirstRuleKeepsExplanation(t *testing.T) {
	c := New(factbase.New())
	// lsass.exe matches both the fixed list and the fact base; the fixed-list
	// explanation (rule order) must win and not be overwritten.
	got := c.Classify(core.ProcessRecord{PID: 600, Name: "lsass.exe"}, described("LSA"), nil)
	require.Equal(t, core.TierCritical, got.Tier)
	assert.NotEmpty(t, got.Impact)
}
