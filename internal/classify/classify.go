// Package classify assigns a safety tier to each process in a snapshot.
// Rules are an ordered list of pure predicates, most specific first; the
// highest tier produced by any matching rule wins and tiers never downgrade
// within one evaluation. Classification never fails; missing signals
// degrade toward Caution, never silently toward Safe.
package classify

import (
	"strings"

	"procwarden/internal/core"
	"procwarden/internal/factbase"
	"procwarden/internal/snapshot"
)

// alwaysCritical are fixed core-OS names that stay Critical regardless of
// what the fact base says.
var alwaysCritical = map[string]bool{
	"system":               true,
	"system idle process":  true,
	"smss.exe":             true,
	"csrss.exe":            true,
	"wininit.exe":          true,
	"winlogon.exe":         true,
	"services.exe":         true,
	"lsass.exe":            true,
	"lsaiso.exe":           true,
	"ntoskrnl.exe":         true,
	"registry":             true,
	"memory compression":   true,
	"trustedinstaller.exe": true,
	"fontdrvhost.exe":      true,
	"dwm.exe":              true,
}

// essentialServices are services the running session cannot lose. A process
// hosting any of these is Critical.
var essentialServices = map[string]bool{
	"rpcss":      true,
	"dcomlaunch": true,
	"plugplay":   true,
	"power":      true,
	"eventlog":   true,
	"profsvc":    true,
	"winmgmt":    true,
	"lsm":        true,
}

// suspiciousDirs are writable drop locations. An unsigned binary running
// from one of these is never Safe.
var suspiciousDirs = []string{
	"\\temp\\",
	"\\tmp\\",
	"\\appdata\\local\\temp\\",
	"\\downloads\\",
	"\\desktop\\",
	"\\public\\",
	"\\programdata\\",
	"\\recycler\\",
	"\\$recycle.bin\\",
}

const defaultCriticalImpact = "Terminating this will crash or destabilize the operating system."

// Classifier evaluates the tier rules against one fact base.
type Classifier struct {
	Facts *factbase.DB
}

func New(facts *factbase.DB) *Classifier {
	return &Classifier{Facts: facts}
}

// Classify returns the tier and impact explanation for one record.
// Deterministic: the same record, fact base, and snapshot always produce
// the same verdict.
func (c *Classifier) Classify(rec core.ProcessRecord, desc core.Description, snap *snapshot.Snapshot) core.Safety {
	tier := core.TierSafe
	impact := ""
	elevate := func(t core.SafetyTier, why string) {
		// First rule to reach the running maximum keeps its explanation;
		// later, equally-high matches never overwrite a more specific one.
		if t > tier {
			tier = t
			impact = why
		}
	}

	// Rule 1: core OS process.
	if c.baseCritical(rec) {
		elevate(core.TierCritical, c.criticalImpact(rec.Name))
	}

	// Rule 2: hosts a session-essential service.
	if svc := essentialServiceOf(rec); svc != "" {
		elevate(core.TierCritical, "Hosts the essential service '"+svc+"'; the session cannot run without it.")
	}

	// Rule 3: fact base verdict, verbatim.
	if entry, ok := c.Facts.Lookup(rec.Name); ok {
		switch entry.Tier {
		case core.TierCritical:
			elevate(core.TierCritical, nonEmpty(entry.KillImpact, defaultCriticalImpact))
		case core.TierCaution:
			elevate(core.TierCaution, nonEmpty(entry.KillImpact, "This process provides important functionality."))
		}
	}

	// Rule 4: ancestor of (or itself) a Critical process. Killing this
	// process takes its whole descendant tree with it, so a Critical
	// descendant makes the ancestor Critical. The walk is over the fixed
	// snapshot, bounded against recycled-PID cycles.
	if tier < core.TierCritical && snap != nil {
		for _, pid := range snap.Descendants(rec.PID) {
			child, ok := snap.Get(pid)
			if !ok {
				continue
			}
			if c.baseCritical(child) || essentialServiceOf(child) != "" {
				elevate(core.TierCritical, "Its descendant "+child.Name+" is system critical; terminating the tree would take it down.")
				break
			}
		}
	}

	// Rule 5: unsigned binary in a writable drop directory. A Caution
	// floor even when the fact base says Safe, so the conflict stays
	// visible in the explanation instead of being swallowed.
	if rec.Signature == core.SigUnsigned {
		if dir := suspiciousDirOf(rec.ExePath); dir != "" {
			elevate(core.TierCaution, "Unsigned executable running from "+dir+" — treat with caution.")
		}
	}

	// Rules 6 and 7: Safe requires a positive signal (fact base Safe, or
	// user-owned with nothing suspicious). Anything else defaults to
	// Caution; unknown is never silently Safe.
	if tier == core.TierSafe {
		entry, known := c.Facts.Lookup(rec.Name)
		switch {
		case known && entry.Tier == core.TierSafe:
			impact = entry.KillImpact
		case !known && !rec.SystemOwned() && desc.Confidence != core.ConfidenceUnknown:
			// user-owned, described, no risk signal
		default:
			tier = core.TierCaution
			impact = "Unknown process — impact of terminating it cannot be determined."
		}
	}

	return core.Safety{Tier: tier, Impact: impact}
}

// baseCritical is the rule-1 predicate: fixed name list plus the kernel
// pseudo-PIDs.
func (c *Classifier) baseCritical(rec core.ProcessRecord) bool {
	if rec.PID == 0 || rec.PID == 4 {
		return true
	}
	return alwaysCritical[strings.ToLower(rec.Name)]
}

func (c *Classifier) criticalImpact(name string) string {
	if entry, ok := c.Facts.Lookup(name); ok && entry.KillImpact != "" {
		return entry.KillImpact
	}
	return defaultCriticalImpact
}

func essentialServiceOf(rec core.ProcessRecord) string {
	for _, svc := range rec.Services {
		if essentialServices[strings.ToLower(svc)] {
			return svc
		}
	}
	return ""
}

func suspiciousDirOf(exePath string) string {
	if exePath == "" {
		return ""
	}
	lower := strings.ToLower(exePath)
	for _, d := range suspiciousDirs {
		if strings.Contains(lower, d) {
			return strings.Trim(d, "\\")
		}
	}
	return ""
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
