package core

import (
	"strings"
	"time"
)

// SafetyTier gates both display and allowed actions.
// Ordered: Safe < Caution < Critical.
type SafetyTier int

const (
	TierSafe SafetyTier = iota
	TierCaution
	TierCritical
)

func (t SafetyTier) String() string {
	switch t {
	case TierSafe:
		return "safe"
	case TierCaution:
		return "caution"
	case TierCritical:
		return "critical"
	}
	return "unknown"
}

// Max returns the higher of two tiers. Tiers never downgrade once elevated
// within a single classification pass.
func (t SafetyTier) Max(other SafetyTier) SafetyTier {
	if other > t {
		return other
	}
	return t
}

// Safety is the classifier's verdict for one process in one scan cycle.
type Safety struct {
	Tier   SafetyTier
	Impact string // human explanation of what terminating this would do
}

// SignatureStatus is supplied by an external verifier; never computed here.
type SignatureStatus int

const (
	SigUnknown SignatureStatus = iota
	SigUnsigned
	SigSignedUnknownPublisher
	SigSignedTrusted
)

func (s SignatureStatus) Signed() bool {
	return s == SigSignedTrusted || s == SigSignedUnknownPublisher
}

// Confidence of a resolved description.
type Confidence int

const (
	ConfidenceUnknown Confidence = iota
	ConfidenceInferred
	ConfidenceExact
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceInferred:
		return "inferred"
	}
	return "unknown"
}

// Description is derived per scan cycle and never cached across PID reuse.
type Description struct {
	Text       string
	Confidence Confidence
}

// ProcessRecord is one process as observed in a single snapshot. Records are
// built fresh every cycle and never mutated after the snapshot is published.
// ParentPID is a weak reference: it may point to a PID that no longer exists
// or that was recycled by the OS.
type ProcessRecord struct {
	PID       int32
	ParentPID int32
	Name      string
	ExePath   string
	Cmdline   string
	Username  string
	Priority  int32
	CPU       float64
	MemoryRSS uint64
	ReadOps   uint64
	WriteOps  uint64
	Threads   int32
	Handles   int32
	Started   time.Time
	Services  []string // service names hosted by this process, may be empty
	Signature SignatureStatus
}

// SystemOwned reports whether the process runs under a system account
// rather than an interactive user.
func (r ProcessRecord) SystemOwned() bool {
	if r.Username == "" {
		return false
	}
	u := strings.ToUpper(r.Username)
	return strings.Contains(u, "SYSTEM") ||
		strings.Contains(u, "LOCAL SERVICE") ||
		strings.Contains(u, "NETWORK SERVICE")
}

// TerminationOutcome is the per-PID result of one termination request.
type TerminationOutcome int

const (
	// Terminated: the kill was issued and accepted by the OS.
	Terminated TerminationOutcome = iota
	// AlreadyExited: the process was gone before the kill landed. This is
	// an expected race, not an error.
	AlreadyExited
	// AccessDenied: insufficient privilege for this PID; the rest of the
	// tree is still attempted.
	AccessDenied
	// Blocked: policy refused the whole operation before any kill.
	Blocked
)

func (o TerminationOutcome) String() string {
	switch o {
	case Terminated:
		return "terminated"
	case AlreadyExited:
		return "already_exited"
	case AccessDenied:
		return "access_denied"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}

// TerminationResult is produced once per PID in the pre-kill snapshot.
type TerminationResult struct {
	PID     int32
	Name    string
	Outcome TerminationOutcome
}

