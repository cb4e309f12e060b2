package suppress

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"

	"procwarden/internal/core"
)

// ServiceMechanism suppresses a respawning service by setting its start
// mode to Disabled. The captured snapshot is the prior start mode; revert
// restores exactly that mode, not a guessed "auto".
type ServiceMechanism struct{}

func (ServiceMechanism) Kind() Kind { return KindService }

func (ServiceMechanism) Capture(ctx context.Context, target string) (State, error) {
	var state State
	err := runBounded(ctx, "querying service "+target, func() error {
		m, err := mgr.Connect()
		if err != nil {
			return errors.Wrap(err, "connecting to service control manager")
		}
		defer m.Disconnect()

		s, err := m.OpenService(target)
		if err != nil {
			return serviceErr(target, err)
		}
		defer s.Close()

		cfg, err := s.Config()
		if err != nil {
			return errors.Wrapf(err, "reading config of service %q", target)
		}
		state = State{Existed: true, Value: strconv.FormatUint(uint64(cfg.StartType), 10)}
		return nil
	})
	return state, err
}

func (ServiceMechanism) Disable(ctx context.Context, target string) error {
	return runBounded(ctx, "disabling service "+target, func() error {
		m, err := mgr.Connect()
		if err != nil {
			return errors.Wrap(err, "connecting to service control manager")
		}
		defer m.Disconnect()

		s, err := m.OpenService(target)
		if err != nil {
			return serviceErr(target, err)
		}
		defer s.Close()

		cfg, err := s.Config()
		if err != nil {
			return errors.Wrapf(err, "reading config of service %q", target)
		}
		if cfg.StartType != mgr.StartDisabled {
			cfg.StartType = mgr.StartDisabled
			if err := s.UpdateConfig(cfg); err != nil {
				return errors.Wrapf(err, "disabling service %q", target)
			}
		}

		// Stopping the running instance is best effort; the reversible
		// part is the start mode.
		_, _ = s.Control(svc.Stop)
		return nil
	})
}

func (ServiceMechanism) Restore(ctx context.Context, target string, prior State) error {
	mode, err := strconv.ParseUint(prior.Value, 10, 32)
	if err != nil {
		return errors.Wrapf(err, "corrupt start-mode snapshot %q", prior.Value)
	}
	return runBounded(ctx, "restoring service "+target, func() error {
		m, err := mgr.Connect()
		if err != nil {
			return errors.Wrap(err, "connecting to service control manager")
		}
		defer m.Disconnect()

		s, err := m.OpenService(target)
		if err != nil {
			return serviceErr(target, err)
		}
		defer s.Close()

		cfg, err := s.Config()
		if err != nil {
			return errors.Wrapf(err, "reading config of service %q", target)
		}
		cfg.StartType = uint32(mode)
		return errors.Wrapf(s.UpdateConfig(cfg), "restoring start mode of service %q", target)
	})
}

func serviceErr(target string, err error) error {
	if errors.Is(err, windows.ERROR_SERVICE_DOES_NOT_EXIST) {
		return errors.Wrapf(core.ErrNotFound, "service %q", target)
	}
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return errors.Wrapf(core.ErrAccessDenied, "service %q", target)
	}
	return errors.Wrapf(err, "opening service %q", target)
}
