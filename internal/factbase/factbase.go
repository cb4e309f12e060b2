// Package factbase holds the static knowledge of known executables:
// canonical description, publisher, category, default safety tier, and the
// impact of killing them. Loaded once, immutable at runtime.
package factbase

import (
	"strings"

	"procwarden/internal/core"
)

// Category groups executables by their role on the system.
type Category string

const (
	CategorySystemCritical Category = "system_critical"
	CategoryWindowsService Category = "windows_service"
	CategoryUserApp        Category = "user_app"
	CategoryBackgroundApp  Category = "background_app"
	CategoryStartupItem    Category = "startup_item"
	CategoryUnknown        Category = "unknown"
)

// Entry is the fact-base record for one executable name.
type Entry struct {
	Description string
	Publisher   string
	Category    Category
	Tier        core.SafetyTier
	KillImpact  string
}

// DB is the immutable fact base. Construct with New; never mutate.
type DB struct {
	entries      map[string]Entry
	serviceDescs map[string]string
}

// New returns the built-in fact base.
func New() *DB {
	return &DB{
		entries:      knownProcesses,
		serviceDescs: knownServices,
	}
}

// Lookup finds the entry for an executable name. Matching is
// case-insensitive on the base name.
func (db *DB) Lookup(name string) (Entry, bool) {
	e, ok := db.entries[strings.ToLower(name)]
	return e, ok
}

// ServiceDescription returns a friendly description for a hosted service
// name, or a generic one when the service is not known.
func (db *DB) ServiceDescription(service string) string {
	if d, ok := db.serviceDescs[strings.ToLower(service)]; ok {
		return d
	}
	return "Windows Service: " + service
}

// Len reports how many executables the fact base knows about.
func (db *DB) Len() int {
	return len(db.entries)
}
