package contract

import (
	"slices"
	"strings"
)

// Transition is the signature of a transition or procedure.
type Transition struct {
	Name   string
	Params FieldList
}

func NewTransition(name string, params ...Field) Transition {
	return Transition{Name: name, Params: params}
}

// String renders the signature the way it is written in source,
// e.g. `setHello (msg : String)`.
func (t Transition) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return t.Name + " (" + strings.Join(params, ", ") + ")"
}

func (t Transition) Equal(other Transition) bool {
	return t.Name == other.Name && t.Params.Equal(other.Params)
}

// TransitionList keeps transitions in declaration order.
type TransitionList []Transition

func (l TransitionList) Equal(other TransitionList) bool {
	return slices.EqualFunc(l, other, Transition.Equal)
}

func (l TransitionList) Names() []string {
	names := make([]string, len(l))
	for i, t := range l {
		names[i] = t.Name
	}
	return names
}

func (l TransitionList) Lookup(name string) (Transition, bool) {
	for _, t := range l {
		if t.Name == name {
			return t, true
		}
	}
	return Transition{}, false
}
