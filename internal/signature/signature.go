// Package signature resolves the Authenticode trust status of executables.
// Results are cached per path: signature state does not change while a
// binary sits on disk, and verification is expensive.
package signature

import (
	"strings"
	"sync"

	"procwarden/internal/core"
)

// Trusted publishers (major software vendors)
var trustedPublishers = map[string]bool{
	"microsoft":  true,
	"google":     true,
	"mozilla":    true,
	"discord":    true,
	"slack":      true,
	"spotify":    true,
	"adobe":      true,
	"nvidia":     true,
	"amd":        true,
	"intel":      true,
	"valve":      true,
	"steam":      true,
	"notion":     true,
	"dropbox":    true,
	"zoom":       true,
	"logitech":   true,
	"razer":      true,
	"corsair":    true,
	"msi":        true,
	"asus":       true,
	"dell":       true,
	"hp":         true,
	"lenovo":     true,
	"samsung":    true,
	"openvpn":    true,
	"anydesk":    true,
	"teamviewer": true,
	"telegram":   true,
	"whatsapp":   true,
	"meta":       true,
	"apple":      true,
	"epic games": true,
	"oracle":     true,
	"docker":     true,
	"jetbrains":  true,
}

// Verifier caches Authenticode lookups per executable path.
type Verifier struct {
	mu    sync.Mutex
	cache map[string]core.SignatureStatus
}

func NewVerifier() *Verifier {
	return &Verifier{cache: make(map[string]core.SignatureStatus)}
}

// Status implements core.SignatureVerifier.
func (v *Verifier) Status(exePath string) core.SignatureStatus {
	if exePath == "" {
		return core.SigUnknown
	}

	v.mu.Lock()
	if s, ok := v.cache[exePath]; ok {
		v.mu.Unlock()
		return s
	}
	v.mu.Unlock()

	s := verifyFile(exePath)

	v.mu.Lock()
	v.cache[exePath] = s
	v.mu.Unlock()
	return s
}

// publisherTrusted checks the signer CN against the trusted vendor list.
func publisherTrusted(signer string) bool {
	if signer == "" {
		return false
	}
	lower := strings.ToLower(signer)
	for publisher := range trustedPublishers {
		if strings.Contains(lower, publisher) {
			return true
		}
	}
	return strings.Contains(lower, "windows")
}
