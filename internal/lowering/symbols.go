package lowering

import "scilla/internal/ast"

type SymbolKind int

const (
	InitParamSymbol SymbolKind = iota
	FieldSymbol
	TransitionSymbol
	ProcedureSymbol
	TypeSymbol
	ConstructorSymbol
	ImportSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case InitParamSymbol:
		return "init param"
	case FieldSymbol:
		return "field"
	case TransitionSymbol:
		return "transition"
	case ProcedureSymbol:
		return "procedure"
	case TypeSymbol:
		return "type"
	case ConstructorSymbol:
		return "constructor"
	case ImportSymbol:
		return "import"
	default:
		return "SymbolKind(?)"
	}
}

// Symbol is one finalized declaration with the source range it came from.
// Detail is a type or a signature, ready for display.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Namespace string
	Detail    string
	Start     ast.Position
	End       ast.Position
}

// QualifiedName returns the name prefixed by its namespace.
func (s Symbol) QualifiedName() string {
	return qualify(s.Namespace, s.Name)
}
