// Package engine ties enumeration, description, classification,
// termination, and suppression into one facade. It keeps a classified
// snapshot of the process table current in the background and routes every
// destructive request through the tier policy.
package engine

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"procwarden/internal/classify"
	"procwarden/internal/core"
	"procwarden/internal/describe"
	"procwarden/internal/snapshot"
	"procwarden/internal/suppress"
	"procwarden/internal/terminate"
)

// ClassifiedProcess is one process with its resolved description and tier.
type ClassifiedProcess struct {
	core.ProcessRecord
	Description core.Description
	Safety      core.Safety
}

// ClassifiedSnapshot is the full classified process table at one instant.
type ClassifiedSnapshot struct {
	Taken     time.Time
	Processes []ClassifiedProcess

	byPID map[int32]int
	tree  *snapshot.Snapshot
}

// Get looks up one classified process by PID.
func (s *ClassifiedSnapshot) Get(pid int32) (ClassifiedProcess, bool) {
	if s == nil {
		return ClassifiedProcess{}, false
	}
	i, ok := s.byPID[pid]
	if !ok {
		return ClassifiedProcess{}, false
	}
	return s.Processes[i], true
}

// Tree exposes the parent/child structure behind the snapshot.
func (s *ClassifiedSnapshot) Tree() *snapshot.Snapshot { return s.tree }

// Engine is the top-level facade.
type Engine struct {
	enum       core.Enumerator
	resolver   *describe.Resolver
	classifier *classify.Classifier
	term       *terminate.Engine
	supp       *suppress.Manager
	interval   time.Duration
	log        *zap.Logger

	current atomic.Pointer[ClassifiedSnapshot]
}

func New(enum core.Enumerator, resolver *describe.Resolver, classifier *classify.Classifier,
	term *terminate.Engine, supp *suppress.Manager, interval time.Duration, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		enum:       enum,
		resolver:   resolver,
		classifier: classifier,
		term:       term,
		supp:       supp,
		interval:   interval,
		log:        log,
	}
}

// ScanOnce refreshes the classified snapshot and publishes it atomically.
// Readers always see either the old complete snapshot or the new one.
func (e *Engine) ScanOnce() (*ClassifiedSnapshot, error) {
	records, err := e.enum.Processes()
	if err != nil {
		return nil, errors.Wrap(err, "enumerating processes")
	}
	tree := snapshot.Build(records)

	cs := &ClassifiedSnapshot{
		Taken:     tree.Taken,
		Processes: make([]ClassifiedProcess, 0, len(records)),
		byPID:     make(map[int32]int, len(records)),
		tree:      tree,
	}
	for _, rec := range tree.All() {
		desc := e.resolver.Resolve(rec, tree)
		cs.byPID[rec.PID] = len(cs.Processes)
		cs.Processes = append(cs.Processes, ClassifiedProcess{
			ProcessRecord: rec,
			Description:   desc,
			Safety:        e.classifier.Classify(rec, desc, tree),
		})
	}

	e.current.Store(cs)
	e.log.Debug("snapshot refreshed", zap.Int("processes", len(cs.Processes)))
	return cs, nil
}

// Run refreshes the snapshot on a fixed interval until ctx is cancelled.
// Scan failures are logged and the previous snapshot stays published.
func (e *Engine) Run(ctx context.Context) error {
	if _, err := e.ScanOnce(); err != nil {
		return err
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := e.ScanOnce(); err != nil {
				e.log.Warn("scan failed", zap.Error(err))
			}
		}
	}
}

// Current returns the last published snapshot, or nil before the first scan.
func (e *Engine) Current() *ClassifiedSnapshot {
	return e.current.Load()
}

// RequestTermination kills the tree rooted at pid. The tier comes from a
// fresh scan so a stale snapshot can never under-gate the kill.
func (e *Engine) RequestTermination(pid int32, confirmed, override bool) ([]core.TerminationResult, error) {
	cs, err := e.ScanOnce()
	if err != nil {
		return nil, err
	}
	proc, ok := cs.Get(pid)
	if !ok {
		return nil, errors.Wrapf(core.ErrNotFound, "pid %d", pid)
	}
	return e.term.KillTree(pid, proc.Safety.Tier, confirmed, override)
}

// RequestSuppression disables the respawn mechanism behind target. The tier
// gate uses the process the target maps back to; a target with no live
// process carries no tier evidence and is allowed.
func (e *Engine) RequestSuppression(ctx context.Context, target string, kind suppress.Kind) (suppress.Entry, error) {
	return e.supp.Suppress(ctx, target, kind, e.tierForTarget(target, kind))
}

// RequestRevert restores one suppression by log id.
func (e *Engine) RequestRevert(ctx context.Context, id string) (suppress.Entry, error) {
	return e.supp.Revert(ctx, id)
}

// RevertAll restores every active suppression, newest first.
func (e *Engine) RevertAll(ctx context.Context) ([]suppress.Entry, error) {
	return e.supp.RevertAll(ctx)
}

// SuppressionLog lists every suppression entry ever recorded.
func (e *Engine) SuppressionLog() []suppress.Entry { return e.supp.List() }

// ActiveSuppressions lists entries still in effect.
func (e *Engine) ActiveSuppressions() []suppress.Entry { return e.supp.ListActive() }

// tierForTarget maps a suppression target back to a running process and
// returns its tier. Service targets match by hosted service name; the other
// kinds match the executable base name. The tier comes from a fresh scan,
// same as termination: a cached snapshot up to one interval old could
// under-gate a process that just turned critical.
func (e *Engine) tierForTarget(target string, kind suppress.Kind) core.SafetyTier {
	cs, err := e.ScanOnce()
	if err != nil {
		if cs = e.Current(); cs == nil {
			// No process evidence either way; the backend still refuses
			// targets it cannot find.
			return core.TierSafe
		}
	}

	lower := strings.ToLower(target)
	for _, p := range cs.Processes {
		if kind == suppress.KindService {
			for _, svc := range p.Services {
				if strings.ToLower(svc) == lower {
					return p.Safety.Tier
				}
			}
			continue
		}
		if strings.ToLower(p.Name) == lower {
			return p.Safety.Tier
		}
	}
	return core.TierSafe
}

// WaitForRespawn polls for a process with the same name but a different PID
// than the one just killed, up to deadline. Verifies whether a suppression
// actually took: a respawn within the window means some mechanism is still
// restarting the target.
func (e *Engine) WaitForRespawn(ctx context.Context, name string, originalPID int32, deadline time.Duration) (core.ProcessRecord, bool, error) {
	lower := strings.ToLower(name)
	timer := time.NewTimer(deadline)
	defer timer.Stop()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return core.ProcessRecord{}, false, ctx.Err()
		case <-timer.C:
			return core.ProcessRecord{}, false, nil
		case <-ticker.C:
			records, err := e.enum.Processes()
			if err != nil {
				e.log.Warn("respawn poll failed", zap.Error(err))
				continue
			}
			for _, rec := range records {
				if rec.PID != originalPID && strings.ToLower(rec.Name) == lower {
					return rec, true, nil
				}
			}
		}
	}
}
