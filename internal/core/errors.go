package core

import "github.com/pkg/errors"

// Error taxonomy shared by the termination and suppression paths.
// Classification and description resolution never fail; a missing signal
// degrades to Unknown/Caution instead of raising.
var (
	// ErrNotFound: the target PID, service, key, or task no longer exists
	// at execution time.
	ErrNotFound = errors.New("target not found")

	// ErrAccessDenied: insufficient privilege for the requested mutation.
	ErrAccessDenied = errors.New("access denied")

	// ErrPolicyViolation: a Critical-tier suppression was attempted, or a
	// Critical-tier termination without override.
	ErrPolicyViolation = errors.New("policy violation")

	// ErrRevertFailed: snapshot restoration could not complete. The entry
	// stays in the log for manual remediation and is never auto-retried.
	ErrRevertFailed = errors.New("revert failed")
)
