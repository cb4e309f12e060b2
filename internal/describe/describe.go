// Package describe derives a human-readable description for a process from
// the fact base, command-line analysis, the parent chain, and file metadata.
// Resolution is a pure function of the snapshot plus the immutable fact
// base; it never fails, it only degrades confidence.
package describe

import (
	"fmt"
	"strings"

	"procwarden/internal/core"
	"procwarden/internal/factbase"
	"procwarden/internal/snapshot"
)

// Resolver resolves descriptions against one fact base. Meta is optional.
type Resolver struct {
	Facts *factbase.DB
	Meta  core.MetadataReader
}

func NewResolver(facts *factbase.DB, meta core.MetadataReader) *Resolver {
	return &Resolver{Facts: facts, Meta: meta}
}

// helperProcesses are described by what they serve, via the parent link.
var helperProcesses = map[string]string{
	"conhost.exe":            "Console window for %s",
	"crashpad_handler.exe":   "Crash reporter for %s",
	"msedgewebview2.exe":     "Embedded web browser used by %s",
	"dllhost.exe":            "COM Surrogate launched by %s",
	"backgroundtaskhost.exe": "Background task running for %s",
	"werfault.exe":           "Error reporting — %s may have crashed",
	"werfaultsecure.exe":     "Secure crash data collection for %s",
}

// Resolve derives the description and confidence for one record.
// Priority: multi-role host command line > helper-by-parent > fact base >
// file metadata > unknown. Conflicting signals lower confidence; they are
// never resolved here; that is the classifier's call.
func (r *Resolver) Resolve(rec core.ProcessRecord, snap *snapshot.Snapshot) core.Description {
	name := strings.ToLower(rec.Name)

	// Multi-role hosts: the flag decides what the process actually is, so
	// the role-specific description beats the generic fact-base one.
	if role := roleFromCmdline(name, rec.Cmdline); role != "" {
		return core.Description{Text: role, Confidence: core.ConfidenceInferred}
	}

	// Helpers are described by what they serve, so the parent-derived text
	// beats their generic fact-base entry. Without a live parent they fall
	// through to the fact base like any other known name.
	if tmpl, ok := helperProcesses[name]; ok {
		if parent, ok := snap.Parent(rec.PID); ok {
			return core.Description{
				Text:       fmt.Sprintf(tmpl, r.parentApp(parent)),
				Confidence: core.ConfidenceInferred,
			}
		}
	}

	if entry, ok := r.Facts.Lookup(name); ok {
		text := entry.Description

		// svchost with a known service list: name the services.
		if name == "svchost.exe" && len(rec.Services) > 0 {
			descs := make([]string, 0, 3)
			for i, svc := range rec.Services {
				if i == 3 {
					break
				}
				descs = append(descs, r.Facts.ServiceDescription(svc))
			}
			text = "Service Host: " + strings.Join(descs, " | ")
		}

		conf := core.ConfidenceExact
		if suspiciousCmdline(rec.Cmdline) {
			// Fact base says known, command line says otherwise. Surface
			// the doubt; the classifier decides what it means.
			conf = core.ConfidenceInferred
		}
		return core.Description{Text: text, Confidence: conf}
	}

	if r.Meta != nil && rec.ExePath != "" {
		if desc := r.Meta.FileDescription(rec.ExePath); desc != "" {
			if parent, ok := snap.Parent(rec.PID); ok && !genericLauncher(parent.Name) {
				return core.Description{
					Text:       fmt.Sprintf("%s (launched by %s)", desc, r.parentApp(parent)),
					Confidence: core.ConfidenceInferred,
				}
			}
			return core.Description{Text: desc, Confidence: core.ConfidenceInferred}
		}
		if company := r.Meta.Company(rec.ExePath); company != "" {
			return core.Description{
				Text:       fmt.Sprintf("%s — published by %s", rec.Name, company),
				Confidence: core.ConfidenceInferred,
			}
		}
	}

	if parent, ok := snap.Parent(rec.PID); ok && !genericLauncher(parent.Name) {
		return core.Description{
			Text:       fmt.Sprintf("%s — helper process for %s", rec.Name, r.parentApp(parent)),
			Confidence: core.ConfidenceInferred,
		}
	}

	return core.Description{
		Text:       rec.Name + " — unknown purpose",
		Confidence: core.ConfidenceUnknown,
	}
}

// parentApp maps a parent record to a friendly application name.
func (r *Resolver) parentApp(parent core.ProcessRecord) string {
	if entry, ok := r.Facts.Lookup(parent.Name); ok {
		return entry.Description
	}
	return parent.Name
}

// genericLauncher reports parents that say nothing about the child: the
// shell and the service manager start half the system.
func genericLauncher(name string) bool {
	switch strings.ToLower(name) {
	case "explorer.exe", "services.exe", "svchost.exe", "wininit.exe", "userinit.exe":
		return true
	}
	return false
}
