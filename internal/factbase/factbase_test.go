package factbase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwarden/internal/core"
)

func TestLookupCaseInsensitive(t *testing.T) {
	db := New()
	lower, ok := db.Lookup("explorer.exe")
	require.True(t, ok)
	upper, ok := db.Lookup("EXPLORER.EXE")
	require.True(t, ok)
	assert.Equal(t, lower, upper)
}

func TestLookupUnknown(t *testing.T) {
	db := New()
	_, ok := db.Lookup("definitely-not-a-real-process.exe")
	assert.False(t, ok)
}

func TestCoreOSEntriesAreCritical(t *testing.T) {
	db := New()
	for _, name := range []string{"csrss.exe", "lsass.exe", "winlogon.exe", "services.exe", "smss.exe", "wininit.exe"} {
		e, ok := db.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, core.TierCritical, e.Tier, name)
		assert.NotEmpty(t, e.KillImpact, name)
	}
}

func TestEveryEntryHasDescription(t *testing.T) {
	for name, e := range knownProcesses {
		assert.NotEmpty(t, e.Description, name)
		assert.Equal(t, strings.ToLower(name), name, "keys must be lowercase")
	}
}

func TestCriticalEntriesExplainImpact(t *testing.T) {
	for name, e := range knownProcesses {
		if e.Tier == core.TierCritical {
			assert.NotEmptyf(t, e.KillImpact, "%s is critical but has no kill impact", name)
		}
	}
}

func TestServiceDescriptions(t *testing.T) {
	db := New()
	assert.NotContains(t, db.ServiceDescription("Dhcp"), "Windows Service:")
	assert.Equal(t, "Windows Service: SomethingElse", db.ServiceDescription("SomethingElse"))
}

func TestCoverageBreadth(t *testing.T) {
	db := New()
	assert.GreaterOrEqual(t, db.Len(), 150)
}
