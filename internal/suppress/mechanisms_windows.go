package suppress

// DefaultMechanisms wires the four real Windows backends. ifeoStub is the
// debugger path written for IFEO blocks; it must not exist.
func DefaultMechanisms(ifeoStub string) map[Kind]Mechanism {
	return map[Kind]Mechanism{
		KindService: ServiceMechanism{},
		KindRunKey:  RunKeyMechanism{},
		KindTask:    TaskMechanism{},
		KindIFEO:    IFEOMechanism{StubPath: ifeoStub},
	}
}
