package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwarden/internal/core"
	"procwarden/internal/factbase"
	"procwarden/internal/snapshot"
)

type fakeMeta struct {
	desc    map[string]string
	company map[string]string
}

func (f fakeMeta) FileDescription(p string) string { return f.desc[p] }
func (f fakeMeta) Company(p string) string         { return f.company[p] }

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(factbase.New(), nil)
}

func emptySnap() *snapshot.Snapshot {
	return snapshot.Build(nil)
}

func TestKnownProcessIsExact(t *testing.T) {
	r := newResolver(t)
	got := r.Resolve(core.ProcessRecord{PID: 1, Name: "explorer.exe"}, emptySnap())
	assert.Equal(t, core.ConfidenceExact, got.Confidence)
	assert.NotEmpty(t, got.Text)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	r := newResolver(t)
	lower := r.Resolve(core.ProcessRecord{PID: 1, Name: "explorer.exe"}, emptySnap())
	upper := r.Resolve(core.ProcessRecord{PID: 1, Name: "EXPLORER.EXE"}, emptySnap())
	assert.Equal(t, lower.Text, upper.Text)
}

func TestSvchostNamesHostedServices(t *testing.T) {
	r := newResolver(t)
	rec := core.ProcessRecord{PID: 700, Name: "svchost.exe", Services: []string{"Dhcp", "Dnscache"}}
	got := r.Resolve(rec, emptySnap())
	assert.Equal(t, core.ConfidenceExact, got.Confidence)
	assert.Contains(t, got.Text, "Service Host")
}

func TestChromiumRendererRole(t *testing.T) {
	r := newResolver(t)
	rec := core.ProcessRecord{
		PID:     800,
		Name:    "chrome.exe",
		Cmdline: `"C:\Program Files\Google\Chrome\chrome.exe" --type=renderer --lang=en`,
	}
	got := r.Resolve(rec, emptySnap())
	// The role flag decides what this process is; it beats the generic
	// fact-base entry.
	assert.Equal(t, core.ConfidenceInferred, got.Confidence)
	assert.Contains(t, got.Text, "renderer")
}

func TestHelperDescribedByParent(t *testing.T) {
	r := newResolver(t)
	snap := snapshot.Build([]core.ProcessRecord{
		{PID: 10, Name: "cmd.exe"},
		{PID: 20, ParentPID: 10, Name: "conhost.exe"},
	})
	child, _ := snap.Get(20)
	got := r.Resolve(child, snap)
	assert.Equal(t, core.ConfidenceInferred, got.Confidence)
	assert.Contains(t, got.Text, "Console window")
}

func TestHelperParentContextBeatsFactBase(t *testing.T) {
	r := newResolver(t)
	// Every helper name also has a generic fact-base entry; with a live
	// parent the parent-derived text must win.
	snap := snapshot.Build([]core.ProcessRecord{
		{PID: 10, Name: "teams.exe"},
		{PID: 20, ParentPID: 10, Name: "werfault.exe"},
	})
	child, _ := snap.Get(20)
	got := r.Resolve(child, snap)
	assert.Equal(t, core.ConfidenceInferred, got.Confidence)
	assert.Contains(t, got.Text, "may have crashed")
}

func TestOrphanHelperFallsBackToFactBase(t *testing.T) {
	r := newResolver(t)
	// Parent exited before the snapshot: no context to borrow, so the
	// generic fact-base entry applies.
	snap := snapshot.Build([]core.ProcessRecord{
		{PID: 20, ParentPID: 9999, Name: "conhost.exe"},
	})
	child, _ := snap.Get(20)
	got := r.Resolve(child, snap)
	assert.Equal(t, core.ConfidenceExact, got.Confidence)
	assert.Contains(t, got.Text, "Console Window Host")
}

func TestMetadataFallback(t *testing.T) {
	meta := fakeMeta{desc: map[string]string{`C:\apps\widget.exe`: "Widget Background Agent"}}
	r := NewResolver(factbase.New(), meta)
	rec := core.ProcessRecord{PID: 30, Name: "widget.exe", ExePath: `C:\apps\widget.exe`}
	got := r.Resolve(rec, emptySnap())
	assert.Equal(t, core.ConfidenceInferred, got.Confidence)
	assert.Contains(t, got.Text, "Widget Background Agent")
}

func TestCompanyFallback(t *testing.T) {
	meta := fakeMeta{company: map[string]string{`C:\apps\widget.exe`: "Widget Corp"}}
	r := NewResolver(factbase.New(), meta)
	rec := core.ProcessRecord{PID: 30, Name: "widget.exe", ExePath: `C:\apps\widget.exe`}
	got := r.Resolve(rec, emptySnap())
	assert.Contains(t, got.Text, "Widget Corp")
}

func TestUnknownNeverClaimsCertainty(t *testing.T) {
	r := newResolver(t)
	got := r.Resolve(core.ProcessRecord{PID: 40, Name: "mystery.exe"}, emptySnap())
	assert.Equal(t, core.ConfidenceUnknown, got.Confidence)
	assert.Contains(t, got.Text, "unknown purpose")
	assert.Contains(t, got.Text, "mystery.exe")
}

func TestSuspiciousCmdlineLowersConfidence(t *testing.T) {
	r := newResolver(t)
	rec := core.ProcessRecord{
		PID:     50,
		Name:    "explorer.exe",
		Cmdline: `explorer.exe -EncodedCommand SQBFAFgA`,
	}
	got := r.Resolve(rec, emptySnap())
	// Known name plus hostile-looking arguments: the doubt is surfaced, not
	// resolved.
	assert.Equal(t, core.ConfidenceInferred, got.Confidence)
}

func TestPowershellEncodedCommandRole(t *testing.T) {
	r := newResolver(t)
	rec := core.ProcessRecord{
		PID:     60,
		Name:    "powershell.exe",
		Cmdline: `powershell.exe -EncodedCommand SQBFAFgA`,
	}
	got := r.Resolve(rec, emptySnap())
	require.Equal(t, core.ConfidenceInferred, got.Confidence)
	assert.NotEmpty(t, got.Text)
}

func TestGenericLauncherParentNotUsed(t *testing.T) {
	r := newResolver(t)
	snap := snapshot.Build([]core.ProcessRecord{
		{PID: 10, Name: "explorer.exe"},
		{PID: 20, ParentPID: 10, Name: "mystery.exe"},
	})
	child, _ := snap.Get(20)
	got := r.Resolve(child, snap)
	// explorer.exe starts everything; it says nothing about the child.
	assert.Equal(t, core.ConfidenceUnknown, got.Confidence)
}
