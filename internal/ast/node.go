package ast

import "fmt"

// Node is implemented by every syntax construct. Visit walks the node and
// its children in source order, reporting each step to the Converter.
type Node interface {
	NodeType() NodeType
	Visit(c Converter) (TraversalResult, error)
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// IsValid reports whether the position was set by the parser.
func (p Position) IsValid() bool { return p.Line > 0 }

// Ident is a plain name that no converter needs to see as a node of its own,
// such as a binder or a parameter name.
// Example: "owner", "msg", "_sender"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

func (i Ident) String() string { return i.Value }
