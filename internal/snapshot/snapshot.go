// Package snapshot builds an immutable view of the process set for one scan
// cycle. The process graph is treated as potentially cyclic: PIDs get
// recycled, so a stale parent link can point anywhere. All traversals run
// over the fixed snapshot with a visited set and a depth cap, never chasing
// live OS state.
package snapshot

import (
	"time"

	"procwarden/internal/core"
)

// maxChainDepth bounds parent-chain walks. Real ancestry never gets close;
// anything deeper is a stale-PID cycle.
const maxChainDepth = 64

// Snapshot is the fixed process set of one scan cycle. Never mutated after
// Build returns; concurrent readers need no locking.
type Snapshot struct {
	Taken time.Time

	procs    []core.ProcessRecord
	byPID    map[int32]int
	children map[int32][]int32
}

// Build indexes a record set into a Snapshot.
func Build(records []core.ProcessRecord) *Snapshot {
	s := &Snapshot{
		Taken:    time.Now(),
		procs:    records,
		byPID:    make(map[int32]int, len(records)),
		children: make(map[int32][]int32),
	}
	for i, r := range records {
		s.byPID[r.PID] = i
	}
	for _, r := range records {
		if r.ParentPID == r.PID {
			continue // PID 0 style self-parent
		}
		if _, ok := s.byPID[r.ParentPID]; ok {
			s.children[r.ParentPID] = append(s.children[r.ParentPID], r.PID)
		}
	}
	return s
}

// Get returns the record for a PID, if present in this snapshot.
func (s *Snapshot) Get(pid int32) (core.ProcessRecord, bool) {
	i, ok := s.byPID[pid]
	if !ok {
		return core.ProcessRecord{}, false
	}
	return s.procs[i], true
}

// All returns the underlying record slice. Callers must treat it as
// read-only.
func (s *Snapshot) All() []core.ProcessRecord {
	return s.procs
}

// Len reports the number of processes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.procs)
}

// Parent resolves the immediate parent of a PID. The parent link is weak:
// false when the parent exited before the snapshot was taken.
func (s *Snapshot) Parent(pid int32) (core.ProcessRecord, bool) {
	rec, ok := s.Get(pid)
	if !ok {
		return core.ProcessRecord{}, false
	}
	if rec.ParentPID == rec.PID {
		return core.ProcessRecord{}, false
	}
	return s.Get(rec.ParentPID)
}

// Ancestors returns the parent chain of a PID, nearest first, bounded by
// maxChainDepth and a visited set so recycled-PID cycles terminate.
func (s *Snapshot) Ancestors(pid int32) []core.ProcessRecord {
	var chain []core.ProcessRecord
	visited := map[int32]bool{pid: true}
	cur := pid
	for depth := 0; depth < maxChainDepth; depth++ {
		parent, ok := s.Parent(cur)
		if !ok || visited[parent.PID] {
			break
		}
		visited[parent.PID] = true
		chain = append(chain, parent)
		cur = parent.PID
	}
	return chain
}

// Descendants returns the PIDs transitively spawned by root as observed in
// this snapshot, breadth-first, root excluded. A child may itself have
// spawned grandchildren, so the walk is level by level with a visited set.
func (s *Snapshot) Descendants(root int32) []int32 {
	var out []int32
	visited := map[int32]bool{root: true}
	queue := append([]int32(nil), s.children[root]...)
	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]
		if visited[pid] {
			continue
		}
		visited[pid] = true
		out = append(out, pid)
		queue = append(queue, s.children[pid]...)
	}
	return out
}
