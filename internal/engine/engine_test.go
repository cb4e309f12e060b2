package engine

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwarden/internal/classify"
	"procwarden/internal/core"
	"procwarden/internal/describe"
	"procwarden/internal/factbase"
	"procwarden/internal/suppress"
	"procwarden/internal/terminate"
)

type fakeEnum struct {
	mu      sync.Mutex
	records []core.ProcessRecord
}

func (f *fakeEnum) Processes() ([]core.ProcessRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]core.ProcessRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeEnum) set(records []core.ProcessRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = records
}

type fakeKiller struct {
	enum *fakeEnum
}

func (k *fakeKiller) Kill(pid int32) error {
	k.enum.mu.Lock()
	defer k.enum.mu.Unlock()
	kept := k.enum.records[:0]
	for _, r := range k.enum.records {
		if r.PID != pid {
			kept = append(kept, r)
		}
	}
	k.enum.records = kept
	return nil
}

type noopMechanism struct{ kind suppress.Kind }

func (n noopMechanism) Kind() suppress.Kind { return n.kind }
func (n noopMechanism) Capture(context.Context, string) (suppress.State, error) {
	return suppress.State{Existed: true, Value: "auto"}, nil
}
func (n noopMechanism) Disable(context.Context, string) error                  { return nil }
func (n noopMechanism) Restore(context.Context, string, suppress.State) error { return nil }

func baseline() []core.ProcessRecord {
	return []core.ProcessRecord{
		{PID: 4, Name: "System"},
		{PID: 500, ParentPID: 4, Name: "services.exe"},
		{PID: 600, ParentPID: 500, Name: "svchost.exe", Services: []string{"RpcSs"}},
		{PID: 700, ParentPID: 500, Name: "svchost.exe", Services: []string{"VendorHelper"}, Username: "NT AUTHORITY\\SYSTEM"},
		{PID: 1000, ParentPID: 1, Name: "notepad.exe", Username: `DESKTOP\alice`},
		{PID: 1100, ParentPID: 1000, Name: "conhost.exe", Username: `DESKTOP\alice`},
	}
}

func newTestEngine(t *testing.T) (*Engine, *fakeEnum) {
	t.Helper()
	enum := &fakeEnum{records: baseline()}
	facts := factbase.New()

	store, err := suppress.OpenJSONLStore(filepath.Join(t.TempDir(), "log.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	mechs := map[suppress.Kind]suppress.Mechanism{
		suppress.KindService: noopMechanism{suppress.KindService},
		suppress.KindRunKey:  noopMechanism{suppress.KindRunKey},
	}
	mgr, err := suppress.NewManager(mechs, store, time.Second, nil)
	require.NoError(t, err)

	eng := New(
		enum,
		describe.NewResolver(facts, nil),
		classify.New(facts),
		terminate.New(enum, &fakeKiller{enum: enum}, nil),
		mgr,
		time.Minute,
		nil,
	)
	return eng, enum
}

func TestScanOnceClassifiesEverything(t *testing.T) {
	eng, _ := newTestEngine(t)
	snap, err := eng.ScanOnce()
	require.NoError(t, err)
	assert.Len(t, snap.Processes, 6)

	sys, ok := snap.Get(4)
	require.True(t, ok)
	assert.Equal(t, core.TierCritical, sys.Safety.Tier)

	rpc, ok := snap.Get(600)
	require.True(t, ok)
	assert.Equal(t, core.TierCritical, rpc.Safety.Tier)

	pad, ok := snap.Get(1000)
	require.True(t, ok)
	assert.Equal(t, core.TierSafe, pad.Safety.Tier)
	assert.NotEmpty(t, pad.Description.Text)
}

func TestCurrentPublishedAtomically(t *testing.T) {
	eng, _ := newTestEngine(t)
	assert.Nil(t, eng.Current())

	_, err := eng.ScanOnce()
	require.NoError(t, err)
	first := eng.Current()
	require.NotNil(t, first)

	_, err = eng.ScanOnce()
	require.NoError(t, err)
	// The old snapshot object is untouched by the refresh.
	assert.Len(t, first.Processes, 6)
}

func TestRequestTerminationKillsTree(t *testing.T) {
	eng, enum := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	results, err := eng.RequestTermination(1000, true, false)
	require.NoError(t, err)
	assert.Len(t, results, 2) // notepad + conhost

	records, _ := enum.Processes()
	for _, r := range records {
		assert.NotEqual(t, int32(1000), r.PID)
		assert.NotEqual(t, int32(1100), r.PID)
	}
}

func TestRequestTerminationGatesOnFreshTier(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	_, err = eng.RequestTermination(500, true, false)
	assert.ErrorIs(t, err, core.ErrPolicyViolation)

	// The critical host is still there.
	snap, err := eng.ScanOnce()
	require.NoError(t, err)
	_, ok := snap.Get(500)
	assert.True(t, ok)
}

func TestRequestSuppressionBlocksCriticalHost(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	_, err = eng.RequestSuppression(context.Background(), "RpcSs", suppress.KindService)
	assert.ErrorIs(t, err, core.ErrPolicyViolation)
}

func TestRequestSuppressionGatesOnFreshTier(t *testing.T) {
	eng, enum := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	// After the last published scan, the VendorHelper host picked up a
	// session-essential service and became critical. The gate must see the
	// fresh tier, not the cached one.
	records := baseline()
	records[3].Services = []string{"VendorHelper", "EventLog"}
	enum.set(records)

	_, err = eng.RequestSuppression(context.Background(), "VendorHelper", suppress.KindService)
	assert.ErrorIs(t, err, core.ErrPolicyViolation)
}

func TestRequestSuppressionAllowsNonCritical(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	entry, err := eng.RequestSuppression(context.Background(), "VendorHelper", suppress.KindService)
	require.NoError(t, err)
	assert.Equal(t, suppress.StatusActive, entry.Status)

	reverted, err := eng.RequestRevert(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, suppress.StatusReverted, reverted.Status)
}

func TestSuppressionLogVisible(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	_, err = eng.RequestSuppression(context.Background(), "Updater", suppress.KindRunKey)
	require.NoError(t, err)
	assert.Len(t, eng.SuppressionLog(), 1)
	assert.Len(t, eng.ActiveSuppressions(), 1)

	_, err = eng.RevertAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, eng.ActiveSuppressions())
	assert.Len(t, eng.SuppressionLog(), 1)
}

func TestWaitForRespawnDetectsReplacement(t *testing.T) {
	eng, enum := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	go func() {
		time.Sleep(700 * time.Millisecond)
		records := baseline()
		records = append(records, core.ProcessRecord{PID: 2000, ParentPID: 500, Name: "notepad.exe"})
		enum.set(records)
	}()

	rec, respawned, err := eng.WaitForRespawn(context.Background(), "notepad.exe", 1000, 5*time.Second)
	require.NoError(t, err)
	require.True(t, respawned)
	assert.Equal(t, int32(2000), rec.PID)
}

func TestWaitForRespawnTimesOutQuietly(t *testing.T) {
	eng, enum := newTestEngine(t)
	_, err := eng.ScanOnce()
	require.NoError(t, err)

	enum.set(nil)
	_, respawned, err := eng.WaitForRespawn(context.Background(), "notepad.exe", 1000, time.Second)
	require.NoError(t, err)
	assert.False(t, respawned)
}
