//go:build !windows

package snapshot

// SCMServiceMapper has no service control manager to talk to off Windows;
// it reports no hosted services.
type SCMServiceMapper struct{}

func (SCMServiceMapper) ServicesByPID() (map[int32][]string, error) {
	return map[int32][]string{}, nil
}
