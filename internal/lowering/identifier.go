package lowering

// IdentifierKind records what a name denotes once it is known.
type IdentifierKind int

const (
	Unknown IdentifierKind = iota
	FunctionName
	StaticFunctionName
	TransitionName
	ProcedureName
	TemplateFunctionName
	ExternalFunctionName
	TypeName
	ComponentName
	Event
	Namespace
	BlockLabel
	ContextResource
	VirtualRegister
	VirtualRegisterIntermediate
	Memory
	State
	Variable
)

var identifierKindNames = [...]string{
	Unknown:                     "unknown",
	FunctionName:                "function",
	StaticFunctionName:          "static function",
	TransitionName:              "transition",
	ProcedureName:               "procedure",
	TemplateFunctionName:        "template function",
	ExternalFunctionName:        "external function",
	TypeName:                    "type",
	ComponentName:               "component",
	Event:                       "event",
	Namespace:                   "namespace",
	BlockLabel:                  "block label",
	ContextResource:             "context resource",
	VirtualRegister:             "virtual register",
	VirtualRegisterIntermediate: "intermediate register",
	Memory:                      "memory",
	State:                       "state",
	Variable:                    "variable",
}

func (k IdentifierKind) String() string {
	if k < 0 || int(k) >= len(identifierKindNames) {
		return "IdentifierKind(?)"
	}
	return identifierKindNames[k]
}

// Identifier is a name as it appears in source, plus its qualified form once
// the engine has resolved it.
type Identifier struct {
	Unresolved    string
	Resolved      string
	TypeReference string
	Kind          IdentifierKind
	IsDefinition  bool
}

// QualifiedName returns the resolved name, or "[unresolved]".
func (id Identifier) QualifiedName() string {
	if id.Resolved == "" {
		return "[unresolved]"
	}
	return id.Resolved
}

// qualify joins a namespace and a name the way symbols are reported.
func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "::" + name
}
