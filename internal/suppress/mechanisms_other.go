//go:build !windows

package suppress

// DefaultMechanisms returns no backends off Windows: the four respawn
// mechanisms this engine knows how to reverse are Windows subsystems.
// Tests exercise the manager through fake mechanisms instead.
func DefaultMechanisms(ifeoStub string) map[Kind]Mechanism {
	return map[Kind]Mechanism{}
}
