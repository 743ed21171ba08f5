package entity

// ModuleArg is one named, typed argument of a ModuleFunction.
type ModuleArg struct {
	Name string
	Type string
}

// ModuleFunction is one named function exposed by a Module, with its
// argument list.
type ModuleFunction struct {
	Name string
	Args []ModuleArg
}

// Module is an opaque external-module declaration carried through the
// pipeline unmodified: the analysis layer never inspects module bodies,
// only preserves their structure for the Writer to re-emit, the same way
// AxiomLayer is preserved-but-unused metadata on Variable.
type Module struct {
	Name      string
	Functions []ModuleFunction
}
