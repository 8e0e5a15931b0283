package ast

// TypedIdentifier is a name with its type annotation
// Example: "owner : ByStr20"
type TypedIdentifier struct {
	Name       Ident
	Annotation *WithMetadata[*TypeAnnotation]
}

// TypeAnnotation is the `: Type` part of a typed identifier
type TypeAnnotation struct {
	Type *WithMetadata[ScillaType]
}

// ScillaType is a type expression.
type ScillaType interface {
	Node
	isScillaType()
}

// GenericType is a type name applied to zero or more arguments
// Example: "Uint128", "Option (Pair ByStr20 BNum)", "List Uint32"
type GenericType struct {
	Head      *WithMetadata[*MetaIdentifier]
	Arguments []*WithMetadata[TypeArgument]
}

// MapType is a map from key to value
// Example: "Map ByStr20 Uint128"
type MapType struct {
	Key   *WithMetadata[*TypeMapKey]
	Value *WithMetadata[*TypeMapValue]
}

// FunctionType is the type of a function value
// Example: "Uint128 -> Bool"
type FunctionType struct {
	From *WithMetadata[ScillaType]
	To   *WithMetadata[ScillaType]
}

// PolyFunctionType is a universally quantified type
// Example: "forall 'A. List 'A -> Uint32"
type PolyFunctionType struct {
	TypeVar Ident
	Body    *WithMetadata[ScillaType]
}

// EnclosedType is a parenthesised type
// Example: "(Pair String Uint32)"
type EnclosedType struct {
	Inner *WithMetadata[ScillaType]
}

// AddressScillaType is an address type used as a whole type expression
// Example: "ByStr20 with contract field balances : Map ByStr20 Uint128 end"
type AddressScillaType struct {
	Address *WithMetadata[*AddressType]
}

// TypeVarType is a type variable
// Example: "'A"
type TypeVarType struct {
	Name Ident
}

// TypeArgument is an argument of a generic type or of a constructor.
type TypeArgument interface {
	Node
	isTypeArgument()
}

// EnclosedTypeArgument is a parenthesised argument
// Example: "(Pair ByStr20 BNum)" in "Option (Pair ByStr20 BNum)"
type EnclosedTypeArgument struct {
	Type *WithMetadata[ScillaType]
}

// GenericTypeArgument is a bare type name argument
// Example: "Uint128" in "List Uint128"
type GenericTypeArgument struct {
	Identifier *WithMetadata[*MetaIdentifier]
}

// TemplateTypeArgument is a type variable argument
// Example: "'A" in "List 'A"
type TemplateTypeArgument struct {
	Name Ident
}

// AddressTypeArgument is an address type argument
// Example: "ByStr20 with end" in "Option ByStr20 with end"
type AddressTypeArgument struct {
	Address *WithMetadata[*AddressType]
}

// MapTypeArgument is an unparenthesised map argument
// Example: "Map String Uint32" in "Option Map String Uint32"
type MapTypeArgument struct {
	Key   *WithMetadata[*TypeMapKey]
	Value *WithMetadata[*TypeMapValue]
}

// TypeMapKey is the key type of a map. Exactly one of Identifier and Address
// is set.
// Example: "ByStr20", "(String)"
type TypeMapKey struct {
	Identifier *WithMetadata[*MetaIdentifier]
	Address    *WithMetadata[*AddressType]
	Enclosed   bool
}

// TypeMapValue is the value type of a map. Exactly one field is set.
// Example: "Uint128", "Map ByStr20 Uint128", "(List BNum)"
type TypeMapValue struct {
	Identifier *WithMetadata[*MetaIdentifier]
	Entry      *WithMetadata[*TypeMapEntry]
	Type       *WithMetadata[ScillaType] // parenthesised
	Address    *WithMetadata[*AddressType]
}

// TypeMapEntry is a nested, unparenthesised map used as a map value
// Example: "ByStr20 Uint128" in "Map ByStr20 Map ByStr20 Uint128"
type TypeMapEntry struct {
	Key   *WithMetadata[*TypeMapKey]
	Value *WithMetadata[*TypeMapValue]
}

// AddressType is a 20 byte address annotated with the shape of the
// contract or library it points to
// Example: "ByStr20 with contract field owner : ByStr20, field paused : Bool end"
type AddressType struct {
	Identifier *WithMetadata[*TypeNameIdentifier]
	TypeName   string // "contract", "library" or empty
	Fields     []*WithMetadata[*AddressTypeField]
}

// AddressTypeField is one field of an address interface
// Example: "field owner : ByStr20"
type AddressTypeField struct {
	Identifier *WithMetadata[*VariableIdentifier]
	Type       *WithMetadata[ScillaType]
}

func (*GenericType) isScillaType()       {}
func (*MapType) isScillaType()           {}
func (*FunctionType) isScillaType()      {}
func (*PolyFunctionType) isScillaType()  {}
func (*EnclosedType) isScillaType()      {}
func (*AddressScillaType) isScillaType() {}
func (*TypeVarType) isScillaType()       {}

func (*EnclosedTypeArgument) isTypeArgument() {}
func (*GenericTypeArgument) isTypeArgument()  {}
func (*TemplateTypeArgument) isTypeArgument() {}
func (*AddressTypeArgument) isTypeArgument()  {}
func (*MapTypeArgument) isTypeArgument()      {}

func (*TypedIdentifier) NodeType() NodeType      { return TYPED_IDENTIFIER }
func (*TypeAnnotation) NodeType() NodeType       { return TYPE_ANNOTATION }
func (*GenericType) NodeType() NodeType          { return SCILLA_TYPE }
func (*MapType) NodeType() NodeType              { return SCILLA_TYPE }
func (*FunctionType) NodeType() NodeType         { return SCILLA_TYPE }
func (*PolyFunctionType) NodeType() NodeType     { return SCILLA_TYPE }
func (*EnclosedType) NodeType() NodeType         { return SCILLA_TYPE }
func (*AddressScillaType) NodeType() NodeType    { return SCILLA_TYPE }
func (*TypeVarType) NodeType() NodeType          { return SCILLA_TYPE }
func (*EnclosedTypeArgument) NodeType() NodeType { return TYPE_ARGUMENT }
func (*GenericTypeArgument) NodeType() NodeType  { return TYPE_ARGUMENT }
func (*TemplateTypeArgument) NodeType() NodeType { return TYPE_ARGUMENT }
func (*AddressTypeArgument) NodeType() NodeType  { return TYPE_ARGUMENT }
func (*MapTypeArgument) NodeType() NodeType      { return TYPE_ARGUMENT }
func (*TypeMapKey) NodeType() NodeType           { return TYPE_MAP_KEY }
func (*TypeMapValue) NodeType() NodeType         { return TYPE_MAP_VALUE }
func (*TypeMapEntry) NodeType() NodeType         { return TYPE_MAP_ENTRY }
func (*AddressType) NodeType() NodeType          { return ADDRESS_TYPE }
func (*AddressTypeField) NodeType() NodeType     { return ADDRESS_TYPE_FIELD }

func (n *TypedIdentifier) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypedIdentifier(m, n) },
		one(c, n.Annotation),
	)
}

func (n *TypeAnnotation) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeAnnotation(m, n) },
		one(c, n.Type),
	)
}

// Visit walks the head, then the arguments left to right.
func (n *GenericType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) },
		one(c, n.Head),
		each(c, n.Arguments),
	)
}

// Visit walks the key, then the value.
func (n *MapType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) },
		one(c, n.Key),
		one(c, n.Value),
	)
}

func (n *FunctionType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) },
		one(c, n.From),
		one(c, n.To),
	)
}

func (n *PolyFunctionType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) },
		one(c, n.Body),
	)
}

func (n *EnclosedType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) },
		one(c, n.Inner),
	)
}

func (n *AddressScillaType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) },
		one(c, n.Address),
	)
}

func (n *TypeVarType) Visit(c Converter) (TraversalResult, error) {
	return walk(func(m TraversalMode) (TraversalResult, error) { return c.EmitScillaType(m, n) })
}

func (n *EnclosedTypeArgument) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeArgument(m, n) },
		one(c, n.Type),
	)
}

func (n *GenericTypeArgument) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeArgument(m, n) },
		one(c, n.Identifier),
	)
}

func (n *TemplateTypeArgument) Visit(c Converter) (TraversalResult, error) {
	return walk(func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeArgument(m, n) })
}

func (n *AddressTypeArgument) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeArgument(m, n) },
		one(c, n.Address),
	)
}

func (n *MapTypeArgument) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeArgument(m, n) },
		one(c, n.Key),
		one(c, n.Value),
	)
}

func (n *TypeMapKey) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeMapKey(m, n) },
		optional(c, n.Identifier != nil, func() Node { return n.Identifier }),
		optional(c, n.Address != nil, func() Node { return n.Address }),
	)
}

func (n *TypeMapValue) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeMapValue(m, n) },
		optional(c, n.Identifier != nil, func() Node { return n.Identifier }),
		optional(c, n.Entry != nil, func() Node { return n.Entry }),
		optional(c, n.Type != nil, func() Node { return n.Type }),
		optional(c, n.Address != nil, func() Node { return n.Address }),
	)
}

func (n *TypeMapEntry) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeMapEntry(m, n) },
		one(c, n.Key),
		one(c, n.Value),
	)
}

// Visit walks the base identifier, then each field in order.
func (n *AddressType) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitAddressType(m, n) },
		one(c, n.Identifier),
		each(c, n.Fields),
	)
}

func (n *AddressTypeField) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitAddressTypeField(m, n) },
		one(c, n.Identifier),
		one(c, n.Type),
	)
}
