//go:build !windows

package signature

import "procwarden/internal/core"

func verifyFile(exePath string) core.SignatureStatus {
	return core.SigUnknown
}
