// Package contract holds the structured description of a Scilla contract's
// deployable surface: its name, constructor parameters, mutable fields and
// the typed signatures of its transitions.
package contract

import "slices"

// Contract is the result of lowering one contract source.
type Contract struct {
	Name        string
	InitParams  FieldList
	Fields      FieldList
	Transitions TransitionList

	// Procedures are internal components; they are not callable from
	// outside the contract and are kept apart from Transitions.
	Procedures TransitionList
	// Library is the name of the contract's own library, if it declares one.
	Library string
	Imports []Import
	// Types are the ADTs declared in the library.
	Types []TypeDefinition
}

// Import is one entry of an `import` declaration.
type Import struct {
	Name  string
	Alias string
}

// TypeDefinition is a library ADT: `type Name = | Ctor of A B | ...`.
type TypeDefinition struct {
	Namespace    string
	Name         string
	Constructors []Constructor
}

type Constructor struct {
	Name string
	Args []Type
}

// Equal reports whether both contracts describe the same surface, in the
// same declaration order.
func (c Contract) Equal(other Contract) bool {
	if c.Name != other.Name || c.Library != other.Library {
		return false
	}
	if !slices.Equal(c.Imports, other.Imports) {
		return false
	}
	if !c.InitParams.Equal(other.InitParams) || !c.Fields.Equal(other.Fields) {
		return false
	}
	if !c.Transitions.Equal(other.Transitions) || !c.Procedures.Equal(other.Procedures) {
		return false
	}
	return slices.EqualFunc(c.Types, other.Types, func(a, b TypeDefinition) bool {
		return a.Equal(b)
	})
}

func (d TypeDefinition) Equal(other TypeDefinition) bool {
	if d.Namespace != other.Namespace || d.Name != other.Name {
		return false
	}
	return slices.EqualFunc(d.Constructors, other.Constructors, func(a, b Constructor) bool {
		return a.Name == b.Name && slices.EqualFunc(a.Args, b.Args, TypeEqual)
	})
}

// Transition looks up a transition by name.
func (c Contract) Transition(name string) (Transition, bool) {
	return c.Transitions.Lookup(name)
}
