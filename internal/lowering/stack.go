package lowering

import (
	"strings"

	"scilla/contract"
	"scilla/internal/errors"
)

// stackObject is anything hooks pass to each other on the operand stack.
type stackObject interface {
	objectKind() string
}

// VariableDeclaration is a name with its final type, as produced by a typed
// identifier or an address interface field.
type VariableDeclaration struct {
	Name string
	Type contract.Type
}

// TypeDescriptor is a type under construction. SubTypes are kept in source
// order.
type TypeDescriptor struct {
	MainType string
	SubTypes []*TypeDescriptor
	Address  *AddressPayload
}

// String renders the descriptor as written in source, parenthesising
// applied arguments: "Map String (Pair ByStr20 BNum)".
func (d *TypeDescriptor) String() string {
	if d.Address != nil {
		if d.Address.TypeName == "" {
			return d.MainType + " with end"
		}
		return d.MainType + " with " + d.Address.TypeName + " end"
	}
	if len(d.SubTypes) == 0 {
		return d.MainType
	}
	var b strings.Builder
	b.WriteString(d.MainType)
	for _, sub := range d.SubTypes {
		b.WriteByte(' ')
		if len(sub.SubTypes) > 0 {
			b.WriteString("(" + sub.String() + ")")
		} else {
			b.WriteString(sub.String())
		}
	}
	return b.String()
}

// AddressPayload is the interface part of "ByStr20 with ... end".
type AddressPayload struct {
	TypeName string
	Fields   contract.FieldList
}

func (Identifier) objectKind() string          { return "identifier" }
func (VariableDeclaration) objectKind() string { return "variable declaration" }
func (*TypeDescriptor) objectKind() string     { return "type descriptor" }

type operandStack struct {
	items []stackObject
}

func (s *operandStack) push(obj stackObject) {
	s.items = append(s.items, obj)
}

func (s *operandStack) len() int {
	return len(s.items)
}

// popAs removes the top of the stack, failing when it is not a T.
func popAs[T stackObject](s *operandStack, want string) (T, error) {
	obj, err := peekAs[T](s, want)
	if err != nil {
		return obj, err
	}
	s.items = s.items[:len(s.items)-1]
	return obj, nil
}

func peekAs[T stackObject](s *operandStack, want string) (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, errors.Internal("expected %s found empty stack", want)
	}
	top := s.items[len(s.items)-1]
	obj, ok := top.(T)
	if !ok {
		return zero, errors.Internal("expected %s found %s", want, top.objectKind())
	}
	return obj, nil
}

func (s *operandStack) popIdentifier() (Identifier, error) {
	return popAs[Identifier](s, "identifier")
}

func (s *operandStack) popDeclaration() (VariableDeclaration, error) {
	return popAs[VariableDeclaration](s, "variable declaration")
}

func (s *operandStack) popDescriptor() (*TypeDescriptor, error) {
	return popAs[*TypeDescriptor](s, "type descriptor")
}

// popDeclarations pops n declarations and returns them in the order they
// were pushed. Zero declarations yield nil.
func (s *operandStack) popDeclarations(n int) ([]VariableDeclaration, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]VariableDeclaration, n)
	for i := n - 1; i >= 0; i-- {
		decl, err := s.popDeclaration()
		if err != nil {
			return nil, err
		}
		out[i] = decl
	}
	return out, nil
}

// popDescriptors pops n descriptors and returns them in the order they were
// pushed. Zero descriptors yield nil.
func (s *operandStack) popDescriptors(n int) ([]*TypeDescriptor, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]*TypeDescriptor, n)
	for i := n - 1; i >= 0; i-- {
		desc, err := s.popDescriptor()
		if err != nil {
			return nil, err
		}
		out[i] = desc
	}
	return out, nil
}

func toFields(decls []VariableDeclaration) contract.FieldList {
	if len(decls) == 0 {
		return nil
	}
	fields := make(contract.FieldList, len(decls))
	for i, d := range decls {
		fields[i] = contract.NewField(d.Name, d.Type)
	}
	return fields
}
