// Package terminate kills process trees under tier-gated policy. The
// descendant set is snapshotted once before the first kill and never
// re-enumerated mid-operation, so a freed PID recycled into an unrelated
// process can never be hit. Races are expected, not errors: a descendant
// that exits between snapshot and kill is reported AlreadyExited.
package terminate

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"procwarden/internal/core"
	"procwarden/internal/snapshot"
)

// Killer issues a single-process kill. Implementations map OS errors onto
// core.ErrNotFound / core.ErrAccessDenied.
type Killer interface {
	Kill(pid int32) error
}

// Engine walks and terminates process trees.
type Engine struct {
	enum   core.Enumerator
	killer Killer
	log    *zap.Logger
}

func New(enum core.Enumerator, killer Killer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{enum: enum, killer: killer, log: log}
}

// KillTree terminates target and every descendant present at snapshot time.
// The caller has already confirmed the action; tier gating is still
// enforced here: a Critical tier without override refuses the whole
// operation before touching any process, returning Blocked for every PID in
// the tree. Individual AccessDenied failures do not abort the remaining
// kills; the caller gets one result per snapshotted PID and decides whether
// partial success is acceptable. No retries; re-invoking re-enumerates.
func (e *Engine) KillTree(target int32, tier core.SafetyTier, confirmed, override bool) ([]core.TerminationResult, error) {
	if !confirmed {
		return nil, errors.Wrap(core.ErrPolicyViolation, "termination not confirmed")
	}

	// Fresh enumeration: the caller's snapshot may be stale.
	records, err := e.enum.Processes()
	if err != nil {
		return nil, errors.Wrap(err, "enumerating processes")
	}
	snap := snapshot.Build(records)

	root, ok := snap.Get(target)
	if !ok {
		return nil, errors.Wrapf(core.ErrNotFound, "pid %d", target)
	}

	pids := append([]int32{target}, snap.Descendants(target)...)

	if tier == core.TierCritical && !override {
		results := make([]core.TerminationResult, 0, len(pids))
		for _, pid := range pids {
			rec, _ := snap.Get(pid)
			results = append(results, core.TerminationResult{PID: pid, Name: rec.Name, Outcome: core.Blocked})
		}
		e.log.Warn("termination blocked by tier policy",
			zap.Int32("pid", target), zap.String("name", root.Name))
		return results, errors.Wrapf(core.ErrPolicyViolation,
			"%s is critical tier and override is not set", root.Name)
	}

	results := make([]core.TerminationResult, 0, len(pids))
	var merr *multierror.Error
	for _, pid := range pids {
		rec, _ := snap.Get(pid)
		outcome := e.killOne(pid)
		if outcome == core.AccessDenied {
			merr = multierror.Append(merr, errors.Wrapf(core.ErrAccessDenied, "pid %d (%s)", pid, rec.Name))
		}
		results = append(results, core.TerminationResult{PID: pid, Name: rec.Name, Outcome: outcome})
	}

	e.log.Info("terminated process tree",
		zap.Int32("root", target),
		zap.String("name", root.Name),
		zap.Int("tree_size", len(pids)))
	return results, merr.ErrorOrNil()
}

func (e *Engine) killOne(pid int32) core.TerminationOutcome {
	err := e.killer.Kill(pid)
	switch {
	case err == nil:
		return core.Terminated
	case errors.Is(err, core.ErrNotFound):
		// Exited on its own between snapshot and kill.
		return core.AlreadyExited
	default:
		e.log.Warn("kill failed", zap.Int32("pid", pid), zap.Error(err))
		return core.AccessDenied
	}
}
