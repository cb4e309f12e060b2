package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwarden/internal/core"
)

func rec(pid, ppid int32, name string) core.ProcessRecord {
	return core.ProcessRecord{PID: pid, ParentPID: ppid, Name: name}
}

func TestBuildAndGet(t *testing.T) {
	s := Build([]core.ProcessRecord{
		rec(1, 0, "init"),
		rec(10, 1, "parent.exe"),
		rec(20, 10, "child.exe"),
	})

	got, ok := s.Get(10)
	require.True(t, ok)
	assert.Equal(t, "parent.exe", got.Name)

	_, ok = s.Get(999)
	assert.False(t, ok)
	assert.Equal(t, 3, s.Len())
}

func TestDescendantsBreadthFirst(t *testing.T) {
	s := Build([]core.ProcessRecord{
		rec(1, 0, "root"),
		rec(2, 1, "a"),
		rec(3, 1, "b"),
		rec(4, 2, "a1"),
		rec(5, 4, "a1x"),
	})

	got := s.Descendants(1)
	assert.ElementsMatch(t, []int32{2, 3, 4, 5}, got)
	// Level by level: both direct children precede any grandchild.
	assert.Equal(t, []int32{2, 3, 4, 5}, got)

	assert.Empty(t, s.Descendants(5))
	assert.Empty(t, s.Descendants(999))
}

func TestDescendantsExcludesRoot(t *testing.T) {
	s := Build([]core.ProcessRecord{
		rec(1, 0, "root"),
		rec(2, 1, "a"),
	})
	assert.NotContains(t, s.Descendants(1), int32(1))
}

func TestDescendantsTerminatesOnCycle(t *testing.T) {
	// Recycled PIDs can produce parent loops; the walk must still finish.
	s := Build([]core.ProcessRecord{
		rec(10, 20, "x"),
		rec(20, 10, "y"),
		rec(30, 20, "z"),
	})

	got := s.Descendants(10)
	assert.ElementsMatch(t, []int32{20, 30}, got)
}

func TestAncestorsBounded(t *testing.T) {
	s := Build([]core.ProcessRecord{
		rec(10, 20, "x"),
		rec(20, 10, "y"),
	})

	chain := s.Ancestors(10)
	// Visited set stops the loop after one full round.
	require.Len(t, chain, 1)
	assert.Equal(t, int32(20), chain[0].PID)
}

func TestParentSkipsSelfLink(t *testing.T) {
	s := Build([]core.ProcessRecord{rec(0, 0, "idle")})
	_, ok := s.Parent(0)
	assert.False(t, ok)
}

func TestParentGoneBeforeSnapshot(t *testing.T) {
	s := Build([]core.ProcessRecord{rec(50, 42, "orphan.exe")})
	_, ok := s.Parent(50)
	assert.False(t, ok)
	assert.Empty(t, s.Ancestors(50))
}
