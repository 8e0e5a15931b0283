package ast

// TraversalMode tells a converter hook whether the walk is entering a node,
// before its children, or leaving it, after all children were visited.
type TraversalMode int

const (
	Enter TraversalMode = iota
	Exit
)

func (m TraversalMode) String() string {
	if m == Exit {
		return "exit"
	}
	return "enter"
}

// TraversalResult is what a hook asks the walk to do next.
type TraversalResult int

const (
	// Continue descends into the children (on enter) or carries on with the
	// next sibling (on exit).
	Continue TraversalResult = iota
	// SkipChildren, returned on enter, leaves the node's children and exit
	// hook unvisited. The converter takes over the whole subtree.
	SkipChildren
)

func (r TraversalResult) String() string {
	if r == SkipChildren {
		return "skip-children"
	}
	return "continue"
}

// Converter receives the traversal events emitted by Node.Visit. There is one
// hook per node kind, called once with Enter and, unless the walk was cut
// short, once with Exit. A converter with nothing to do for a node kind
// returns Continue.
//
// PushSourcePosition and PopSourcePosition bracket every node wrapped in
// WithMetadata and are always balanced, also when a hook fails.
type Converter interface {
	PushSourcePosition(start, end Position)
	PopSourcePosition()

	EmitProgram(mode TraversalMode, node *Program) (TraversalResult, error)
	EmitImportDeclarations(mode TraversalMode, node *ImportDeclarations) (TraversalResult, error)
	EmitImportedName(mode TraversalMode, node *ImportedName) (TraversalResult, error)
	EmitLibraryDefinition(mode TraversalMode, node *LibraryDefinition) (TraversalResult, error)
	EmitLibraryEntry(mode TraversalMode, node LibraryEntry) (TraversalResult, error)
	EmitTypeAlternativeClause(mode TraversalMode, node *TypeAlternativeClause) (TraversalResult, error)
	EmitContractDefinition(mode TraversalMode, node *ContractDefinition) (TraversalResult, error)
	EmitWithConstraint(mode TraversalMode, node *WithConstraint) (TraversalResult, error)
	EmitContractField(mode TraversalMode, node *ContractField) (TraversalResult, error)

	EmitComponentDefinition(mode TraversalMode, node *ComponentDefinition) (TraversalResult, error)
	EmitComponentID(mode TraversalMode, node *ComponentID) (TraversalResult, error)
	EmitComponentParameters(mode TraversalMode, node *ComponentParameters) (TraversalResult, error)
	EmitParameterPair(mode TraversalMode, node *ParameterPair) (TraversalResult, error)
	EmitComponentBody(mode TraversalMode, node *ComponentBody) (TraversalResult, error)
	EmitStatementBlock(mode TraversalMode, node *StatementBlock) (TraversalResult, error)

	EmitStatement(mode TraversalMode, node Statement) (TraversalResult, error)
	EmitPatternMatchClause(mode TraversalMode, node *PatternMatchClause) (TraversalResult, error)
	EmitMapAccess(mode TraversalMode, node *MapAccess) (TraversalResult, error)

	EmitFullExpression(mode TraversalMode, node FullExpression) (TraversalResult, error)
	EmitMessageEntry(mode TraversalMode, node *MessageEntry) (TraversalResult, error)
	EmitPatternMatchExpressionClause(mode TraversalMode, node *PatternMatchExpressionClause) (TraversalResult, error)
	EmitAtomicExpression(mode TraversalMode, node *AtomicExpression) (TraversalResult, error)
	EmitValueLiteral(mode TraversalMode, node *ValueLiteral) (TraversalResult, error)
	EmitBuiltinArguments(mode TraversalMode, node *BuiltinArguments) (TraversalResult, error)
	EmitPattern(mode TraversalMode, node *Pattern) (TraversalResult, error)
	EmitArgumentPattern(mode TraversalMode, node *ArgumentPattern) (TraversalResult, error)

	EmitTypedIdentifier(mode TraversalMode, node *TypedIdentifier) (TraversalResult, error)
	EmitTypeAnnotation(mode TraversalMode, node *TypeAnnotation) (TraversalResult, error)
	EmitScillaType(mode TraversalMode, node ScillaType) (TraversalResult, error)
	EmitTypeArgument(mode TraversalMode, node TypeArgument) (TraversalResult, error)
	EmitTypeMapKey(mode TraversalMode, node *TypeMapKey) (TraversalResult, error)
	EmitTypeMapValue(mode TraversalMode, node *TypeMapValue) (TraversalResult, error)
	EmitTypeMapEntry(mode TraversalMode, node *TypeMapEntry) (TraversalResult, error)
	EmitAddressType(mode TraversalMode, node *AddressType) (TraversalResult, error)
	EmitAddressTypeField(mode TraversalMode, node *AddressTypeField) (TraversalResult, error)

	EmitMetaIdentifier(mode TraversalMode, node *MetaIdentifier) (TraversalResult, error)
	EmitTypeNameIdentifier(mode TraversalMode, node *TypeNameIdentifier) (TraversalResult, error)
	EmitVariableIdentifier(mode TraversalMode, node *VariableIdentifier) (TraversalResult, error)
	EmitByteStr(mode TraversalMode, node *ByteStr) (TraversalResult, error)
}
