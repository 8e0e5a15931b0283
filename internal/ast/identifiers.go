package ast

type MetaIdentifierKind int

const (
	// MetaName is a plain type name: "Uint128"
	MetaName MetaIdentifierKind = iota
	// MetaNameInNamespace is qualified by a library: "ListUtils.Foo"
	MetaNameInNamespace
	// MetaNameInHexspace is qualified by an address: "0xabc.Foo"
	MetaNameInHexspace
	// MetaByteString is the raw byte string type "ByStr"
	MetaByteString
)

// MetaIdentifier names a type or constructor, possibly qualified
// Example: "Uint128", "ByStr", "Lib.Status", "0x1234.Status"
type MetaIdentifier struct {
	Kind      MetaIdentifierKind
	Name      *WithMetadata[*TypeNameIdentifier] // nil for MetaByteString
	Namespace *WithMetadata[*TypeNameIdentifier] // MetaNameInNamespace only
	Hexspace  string                             // MetaNameInHexspace only
}

type TypeNameKind int

const (
	TypeOrEnumLike TypeNameKind = iota
	ByteStringType
	EventType
)

// TypeNameIdentifier is a capitalised name
// Example: "HelloWorld", "ByStr20", "Event"
type TypeNameIdentifier struct {
	Kind    TypeNameKind
	Name    Ident
	ByteStr *WithMetadata[*ByteStr] // ByteStringType only
}

type VariableKind int

const (
	VariableName VariableKind = iota
	SpecialIdentifier
	VariableInNamespace
)

// VariableIdentifier names a value
// Example: "msg", "_sender", "Lib.one"
type VariableIdentifier struct {
	Kind      VariableKind
	Name      Ident
	Namespace *WithMetadata[*TypeNameIdentifier] // VariableInNamespace only
}

// ByteStr is a fixed width byte string type name
// Example: "ByStr20", "ByStr32"
type ByteStr struct {
	Value Ident
}

// Value returns the spelling of the name.
func (n *TypeNameIdentifier) Value() string { return n.Name.Value }

func (*MetaIdentifier) NodeType() NodeType     { return META_IDENTIFIER }
func (*TypeNameIdentifier) NodeType() NodeType { return TYPE_NAME_IDENTIFIER }
func (*VariableIdentifier) NodeType() NodeType { return VARIABLE_IDENTIFIER }
func (*ByteStr) NodeType() NodeType            { return BYTE_STR }

// Visit walks the namespace, if any, then the name.
func (n *MetaIdentifier) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitMetaIdentifier(m, n) },
		optional(c, n.Namespace != nil, func() Node { return n.Namespace }),
		optional(c, n.Name != nil, func() Node { return n.Name }),
	)
}

func (n *TypeNameIdentifier) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeNameIdentifier(m, n) },
		optional(c, n.ByteStr != nil, func() Node { return n.ByteStr }),
	)
}

func (n *VariableIdentifier) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitVariableIdentifier(m, n) },
		optional(c, n.Namespace != nil, func() Node { return n.Namespace }),
	)
}

func (n *ByteStr) Visit(c Converter) (TraversalResult, error) {
	return walk(func(m TraversalMode) (TraversalResult, error) { return c.EmitByteStr(m, n) })
}
