package contract

import (
	"fmt"
	"strings"
)

// Type is the resolved type of a parameter, field or constructor argument.
// The set of implementations is closed; values compare structurally with
// reflect.DeepEqual or Equal.
type Type interface {
	String() string
	isType()
}

// IntType covers the fixed width integers Int32..Int256 and Uint32..Uint256.
type IntType struct {
	Signed bool
	Bits   int
}

type StringType struct{}

// BNumType is the block number type.
type BNumType struct{}

type BoolType struct{}

type MapType struct {
	Key   Type
	Value Type
}

type OptionType struct {
	Elem Type
}

type PairType struct {
	First  Type
	Second Type
}

type ListType struct {
	Elem Type
}

// ByStrType is the raw, variable length byte string.
type ByStrType struct{}

// ByStrXType is a fixed width byte string other than the 20 byte address.
type ByStrXType struct {
	Size int
}

// AddressType is ByStr20. When Interface is set the address is annotated
// with the contract or library shape it is expected to have.
type AddressType struct {
	Interface *AddressInterface
}

// AddressInterface is the structural annotation of an address type:
// `ByStr20 with contract field f : T end`.
type AddressInterface struct {
	TypeName string
	Fields   FieldList
}

// OtherType keeps the name of any type the model does not enumerate,
// such as a user defined ADT.
type OtherType struct {
	Name string
}

func (IntType) isType()     {}
func (StringType) isType()  {}
func (BNumType) isType()    {}
func (BoolType) isType()    {}
func (MapType) isType()     {}
func (OptionType) isType()  {}
func (PairType) isType()    {}
func (ListType) isType()    {}
func (ByStrType) isType()   {}
func (ByStrXType) isType()  {}
func (AddressType) isType() {}
func (OtherType) isType()   {}

var (
	Int32   Type = IntType{Signed: true, Bits: 32}
	Int64   Type = IntType{Signed: true, Bits: 64}
	Int128  Type = IntType{Signed: true, Bits: 128}
	Int256  Type = IntType{Signed: true, Bits: 256}
	Uint32  Type = IntType{Bits: 32}
	Uint64  Type = IntType{Bits: 64}
	Uint128 Type = IntType{Bits: 128}
	Uint256 Type = IntType{Bits: 256}
	String  Type = StringType{}
	BNum    Type = BNumType{}
	Bool    Type = BoolType{}
	ByStr   Type = ByStrType{}
	ByStr20 Type = AddressType{}
)

func Map(key, value Type) Type     { return MapType{Key: key, Value: value} }
func Option(elem Type) Type        { return OptionType{Elem: elem} }
func Pair(first, second Type) Type { return PairType{First: first, Second: second} }
func List(elem Type) Type          { return ListType{Elem: elem} }
func ByStrX(size int) Type         { return ByStrXType{Size: size} }
func Other(name string) Type       { return OtherType{Name: name} }

// ByStr20With builds an annotated address type.
func ByStr20With(typeName string, fields ...Field) Type {
	return AddressType{Interface: &AddressInterface{TypeName: typeName, Fields: fields}}
}

func (t IntType) String() string {
	if t.Signed {
		return fmt.Sprintf("Int%d", t.Bits)
	}
	return fmt.Sprintf("Uint%d", t.Bits)
}

func (StringType) String() string { return "String" }
func (BNumType) String() string   { return "BNum" }
func (BoolType) String() string   { return "Bool" }
func (ByStrType) String() string  { return "ByStr" }

func (t MapType) String() string {
	return fmt.Sprintf("(Map %s, %s)", t.Key, t.Value)
}

func (t OptionType) String() string {
	return fmt.Sprintf("(Option %s)", t.Elem)
}

func (t PairType) String() string {
	return fmt.Sprintf("(Pair %s %s)", t.First, t.Second)
}

func (t ListType) String() string {
	return fmt.Sprintf("(List %s)", t.Elem)
}

func (t ByStrXType) String() string {
	return fmt.Sprintf("ByStr%d", t.Size)
}

func (t AddressType) String() string {
	if t.Interface == nil {
		return "ByStr20"
	}

	parts := []string{"ByStr20 with"}
	if t.Interface.TypeName != "" {
		parts = append(parts, t.Interface.TypeName)
	}
	if len(t.Interface.Fields) > 0 {
		fields := make([]string, len(t.Interface.Fields))
		for i, f := range t.Interface.Fields {
			fields[i] = fmt.Sprintf("field %s : %s", f.Name, f.Type)
		}
		parts = append(parts, strings.Join(fields, ", "))
	}
	parts = append(parts, "end")
	return strings.Join(parts, " ")
}

func (t OtherType) String() string { return t.Name }

// TypeEqual reports whether two types are structurally identical.
func TypeEqual(a, b Type) bool {
	switch x := a.(type) {
	case MapType:
		y, ok := b.(MapType)
		return ok && TypeEqual(x.Key, y.Key) && TypeEqual(x.Value, y.Value)
	case OptionType:
		y, ok := b.(OptionType)
		return ok && TypeEqual(x.Elem, y.Elem)
	case PairType:
		y, ok := b.(PairType)
		return ok && TypeEqual(x.First, y.First) && TypeEqual(x.Second, y.Second)
	case ListType:
		y, ok := b.(ListType)
		return ok && TypeEqual(x.Elem, y.Elem)
	case AddressType:
		y, ok := b.(AddressType)
		if !ok || (x.Interface == nil) != (y.Interface == nil) {
			return false
		}
		if x.Interface == nil {
			return true
		}
		return x.Interface.TypeName == y.Interface.TypeName && x.Interface.Fields.Equal(y.Interface.Fields)
	default:
		return a == b
	}
}
