package contract

import (
	"fmt"
	"slices"
)

// Field is a named, typed slot: a parameter, a contract field or an
// address interface member.
type Field struct {
	Name string
	Type Type
}

func NewField(name string, typ Type) Field {
	return Field{Name: name, Type: typ}
}

func (f Field) String() string {
	return fmt.Sprintf("%s : %s", f.Name, f.Type)
}

func (f Field) Equal(other Field) bool {
	return f.Name == other.Name && TypeEqual(f.Type, other.Type)
}

// FieldList keeps fields in declaration order. The zero value is empty.
type FieldList []Field

func (l FieldList) Equal(other FieldList) bool {
	return slices.EqualFunc(l, other, Field.Equal)
}

func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

func (l FieldList) Lookup(name string) (Field, bool) {
	for _, f := range l {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
