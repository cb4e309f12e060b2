package snapshot

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// SCMServiceMapper maps PIDs to hosted service names by querying the
// service control manager. Used to flag service-hosting processes during
// classification.
type SCMServiceMapper struct{}

func (SCMServiceMapper) ServicesByPID() (map[int32][]string, error) {
	m, err := mgr.Connect()
	if err != nil {
		return nil, errors.Wrap(err, "connecting to service control manager")
	}
	defer m.Disconnect()

	names, err := m.ListServices()
	if err != nil {
		return nil, errors.Wrap(err, "listing services")
	}

	out := make(map[int32][]string)
	for _, name := range names {
		s, err := m.OpenService(name)
		if err != nil {
			continue
		}
		status, err := s.Query()
		s.Close()
		if err != nil || status.State != svc.Running || status.ProcessId == 0 {
			continue
		}
		pid := int32(status.ProcessId)
		out[pid] = append(out[pid], name)
	}
	return out, nil
}
