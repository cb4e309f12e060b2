package snapshot

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"

	"procwarden/internal/core"
)

// ServiceMapper resolves which service names a PID is hosting. The Windows
// implementation asks the service control manager; elsewhere it is empty.
type ServiceMapper interface {
	ServicesByPID() (map[int32][]string, error)
}

// LiveEnumerator reads the current process set from the OS. Signature status
// comes from the injected verifier; the enumerator never verifies anything
// itself.
type LiveEnumerator struct {
	Verifier core.SignatureVerifier
	Services ServiceMapper
}

// NewLiveEnumerator wires the live enumerator with its collaborators.
// Either may be nil; the corresponding signal is then left at its zero
// value (SigUnknown, no hosted services).
func NewLiveEnumerator(verifier core.SignatureVerifier, services ServiceMapper) *LiveEnumerator {
	return &LiveEnumerator{Verifier: verifier, Services: services}
}

// Processes implements core.Enumerator. Individual processes that exit or
// deny access mid-enumeration are skipped, not errors: the snapshot is
// whatever was observable.
func (e *LiveEnumerator) Processes() ([]core.ProcessRecord, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.Wrap(err, "enumerating processes")
	}

	var svcMap map[int32][]string
	if e.Services != nil {
		svcMap, _ = e.Services.ServicesByPID() // best effort
	}

	records := make([]core.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}

		rec := core.ProcessRecord{PID: p.Pid, Name: name}

		if ppid, err := p.Ppid(); err == nil {
			rec.ParentPID = ppid
		}
		if exe, err := p.Exe(); err == nil {
			rec.ExePath = exe
		}
		if cmd, err := p.Cmdline(); err == nil {
			rec.Cmdline = cmd
		}
		if user, err := p.Username(); err == nil {
			rec.Username = user
		}
		if nice, err := p.Nice(); err == nil {
			rec.Priority = nice
		}
		if cpu, err := p.CPUPercent(); err == nil {
			rec.CPU = cpu
		}
		if mem, err := p.MemoryInfo(); err == nil && mem != nil {
			rec.MemoryRSS = mem.RSS
		}
		if io, err := p.IOCounters(); err == nil && io != nil {
			rec.ReadOps = io.ReadCount
			rec.WriteOps = io.WriteCount
		}
		if th, err := p.NumThreads(); err == nil {
			rec.Threads = th
		}
		if created, err := p.CreateTime(); err == nil && created > 0 {
			rec.Started = time.UnixMilli(created)
		}
		if svcMap != nil {
			rec.Services = svcMap[p.Pid]
		}
		if e.Verifier != nil && rec.ExePath != "" {
			rec.Signature = e.Verifier.Status(rec.ExePath)
		}

		records = append(records, rec)
	}
	return records, nil
}
