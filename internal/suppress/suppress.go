// Package suppress reversibly prevents processes from respawning by
// disabling the mechanism that restarts them: a service, an autorun
// registry value, a scheduled task, or an IFEO debugger block. The four
// backends are variants of one Mechanism capability so the shared
// invariants (idempotent Suppress, at most one Active entry per target,
// exact restoration from the captured snapshot) hold uniformly.
package suppress

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"procwarden/internal/core"
)

// Kind selects which respawn mechanism a suppression acts on.
type Kind string

const (
	KindService Kind = "service"
	KindRunKey  Kind = "runkey"
	KindTask    Kind = "task"
	KindIFEO    Kind = "ifeo"
)

// Status is the lifecycle state of a suppression entry.
type Status string

const (
	// StatusActive: the disabling mutation is in effect.
	StatusActive Status = "active"
	// StatusReverted: the captured pre-mutation state was restored.
	StatusReverted Status = "reverted"
	// StatusRevertFailed: restoration failed; kept for manual remediation,
	// never auto-retried.
	StatusRevertFailed Status = "revert_failed"
	// StatusFailed: the disabling mutation itself failed after the intent
	// was logged. Audit evidence only; nothing to revert.
	StatusFailed Status = "failed"
)

// State is the pre-mutation snapshot a backend needs to restore its target
// exactly: a service start-mode, a registry value (or its recorded
// absence), a task's enabled flag, or whether an IFEO debugger value
// already existed.
type State struct {
	Existed bool   `json:"existed"`
	Value   string `json:"value,omitempty"`
	Detail  string `json:"detail,omitempty"` // backend-specific, e.g. registry hive
}

// Entry is one suppression in the append-only log.
type Entry struct {
	ID        string    `json:"id"`
	Target    string    `json:"target"`
	Kind      Kind      `json:"kind"`
	Prior     State     `json:"prior"`
	Created   time.Time `json:"created"`
	Status    Status    `json:"status"`
	Note      string    `json:"note,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

// Mechanism is one reversible mutation backend. Capture must record enough
// state for Restore to reproduce the pre-mutation world exactly; Disable
// must be idempotent.
type Mechanism interface {
	Kind() Kind
	Capture(ctx context.Context, target string) (State, error)
	Disable(ctx context.Context, target string) error
	Restore(ctx context.Context, target string, prior State) error
}

// Store persists entries. Appends happen before the mutation they describe
// so a crash mid-mutation leaves evidence of intent.
type Store interface {
	Append(Entry) error
	Update(Entry) error
	Load() ([]Entry, error)
}

// Manager owns the suppression log. Operations against the same target are
// serialized; distinct targets proceed independently.
type Manager struct {
	mechs   map[Kind]Mechanism
	store   Store
	timeout time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	entries map[string]Entry
	order   []string
	active  map[string]string // target key -> entry id
	locks   map[string]*sync.Mutex
}

// NewManager loads existing entries from the store and rebuilds the active
// index, so state survives restarts of the host application.
func NewManager(mechs map[Kind]Mechanism, store Store, timeout time.Duration, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	m := &Manager{
		mechs:   mechs,
		store:   store,
		timeout: timeout,
		log:     log,
		entries: make(map[string]Entry),
		active:  make(map[string]string),
		locks:   make(map[string]*sync.Mutex),
	}
	loaded, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading suppression log")
	}
	for _, e := range loaded {
		m.entries[e.ID] = e
		m.order = append(m.order, e.ID)
		if e.Status == StatusActive {
			m.active[targetKey(e.Kind, e.Target)] = e.ID
		}
	}
	return m, nil
}

// Suppress applies the disabling mutation for (target, kind). Critical-tier
// targets are rejected outright. If an Active entry already exists it is
// returned unchanged and nothing is mutated twice; the original snapshot
// is never lost.
func (m *Manager) Suppress(ctx context.Context, target string, kind Kind, tier core.SafetyTier) (Entry, error) {
	mech, ok := m.mechs[kind]
	if !ok {
		return Entry{}, errors.Errorf("no backend for mechanism %q", kind)
	}
	if tier == core.TierCritical {
		return Entry{}, errors.Wrapf(core.ErrPolicyViolation,
			"refusing to suppress critical-tier target %q", target)
	}

	unlock := m.lockTarget(kind, target)
	defer unlock()

	if existing, ok := m.activeEntry(kind, target); ok {
		return existing, nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	prior, err := mech.Capture(ctx, target)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "capturing state of %q", target)
	}

	entry := Entry{
		ID:      uuid.NewString(),
		Target:  target,
		Kind:    kind,
		Prior:   prior,
		Created: time.Now().UTC(),
		Status:  StatusActive,
		Note:    "suppress requested",
	}
	// Intent is logged before the mutation, not only on success.
	if err := m.store.Append(entry); err != nil {
		return Entry{}, errors.Wrap(err, "recording suppression intent")
	}
	m.remember(entry)

	if err := mech.Disable(ctx, target); err != nil {
		entry.Status = StatusFailed
		entry.LastError = err.Error()
		m.persist(entry)
		m.log.Warn("suppression failed",
			zap.String("target", target), zap.String("kind", string(kind)), zap.Error(err))
		return Entry{}, errors.Wrapf(err, "disabling %q", target)
	}

	m.log.Info("suppression applied",
		zap.String("id", entry.ID), zap.String("target", target), zap.String("kind", string(kind)))
	return entry, nil
}

// Revert restores the captured pre-suppression state. Reverting an entry
// that is already Reverted is a no-op returning the existing entry. On
// failure the entry is marked RevertFailed and kept, never silently
// dropped, never auto-retried. An explicit Revert on a RevertFailed entry
// is treated as manual remediation and attempts the restore again.
func (m *Manager) Revert(ctx context.Context, id string) (Entry, error) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	m.mu.Unlock()
	if !ok {
		return Entry{}, errors.Wrapf(core.ErrNotFound, "suppression entry %s", id)
	}

	unlock := m.lockTarget(entry.Kind, entry.Target)
	defer unlock()

	// Re-read under the target lock; a concurrent revert may have won.
	m.mu.Lock()
	entry = m.entries[id]
	m.mu.Unlock()

	switch entry.Status {
	case StatusReverted:
		return entry, nil
	case StatusFailed:
		// The disable never took effect; there is nothing to restore.
		return entry, nil
	}

	mech, ok := m.mechs[entry.Kind]
	if !ok {
		return entry, errors.Errorf("no backend for mechanism %q", entry.Kind)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	// Log the attempt before touching anything.
	entry.Note = "revert requested"
	m.persist(entry)

	if err := mech.Restore(ctx, entry.Target, entry.Prior); err != nil {
		entry.Status = StatusRevertFailed
		entry.LastError = err.Error()
		m.persist(entry)
		m.log.Error("revert failed",
			zap.String("id", entry.ID), zap.String("target", entry.Target), zap.Error(err))
		return entry, errors.Wrapf(core.ErrRevertFailed, "restoring %q: %v", entry.Target, err)
	}

	entry.Status = StatusReverted
	entry.LastError = ""
	m.persist(entry)
	m.log.Info("suppression reverted",
		zap.String("id", entry.ID), zap.String("target", entry.Target))
	return entry, nil
}

// RevertAll reverts every Active entry, newest first, and reports per-entry
// failures together rather than stopping at the first.
func (m *Manager) RevertAll(ctx context.Context) ([]Entry, error) {
	actives := m.ListActive()
	sort.Slice(actives, func(i, j int) bool { return actives[i].Created.After(actives[j].Created) })

	var out []Entry
	var merr *multierror.Error
	for _, e := range actives {
		reverted, err := m.Revert(ctx, e.ID)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		out = append(out, reverted)
	}
	return out, merr.ErrorOrNil()
}

// ListActive returns all entries currently in effect, for audit or display.
func (m *Manager) ListActive() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Entry
	for _, id := range m.order {
		if e := m.entries[id]; e.Status == StatusActive {
			out = append(out, e)
		}
	}
	return out
}

// List returns every entry in the log, including reverted and failed ones.
func (m *Manager) List() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entries[id])
	}
	return out
}

// Get looks up one entry by id.
func (m *Manager) Get(id string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	return e, ok
}

func targetKey(kind Kind, target string) string {
	return string(kind) + "|" + target
}

// lockTarget serializes all operations against one (kind, target) pair.
func (m *Manager) lockTarget(kind Kind, target string) func() {
	key := targetKey(kind, target)
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (m *Manager) activeEntry(kind Kind, target string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.active[targetKey(kind, target)]
	if !ok {
		return Entry{}, false
	}
	return m.entries[id], true
}

func (m *Manager) remember(e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, seen := m.entries[e.ID]; !seen {
		m.order = append(m.order, e.ID)
	}
	m.entries[e.ID] = e
	key := targetKey(e.Kind, e.Target)
	if e.Status == StatusActive {
		m.active[key] = e.ID
	} else if m.active[key] == e.ID {
		delete(m.active, key)
	}
}

// persist updates the in-memory index and appends the superseding record.
// Store failures are logged, not fatal: the in-memory state is already
// correct and the next update will re-persist the current status.
func (m *Manager) persist(e Entry) {
	m.remember(e)
	if err := m.store.Update(e); err != nil {
		m.log.Error("persisting suppression entry", zap.String("id", e.ID), zap.Error(err))
	}
}
