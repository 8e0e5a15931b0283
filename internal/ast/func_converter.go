package ast

// FuncConverter adapts plain functions to the Converter interface. Every hook
// is routed to Emit with the node as its argument, so a caller can switch on
// the concrete node type. Nil functions continue everywhere.
type FuncConverter struct {
	Emit func(mode TraversalMode, node Node) (TraversalResult, error)
	Push func(start, end Position)
	Pop  func()
}

var _ Converter = (*FuncConverter)(nil)

func (f *FuncConverter) emit(mode TraversalMode, node Node) (TraversalResult, error) {
	if f.Emit == nil {
		return Continue, nil
	}
	return f.Emit(mode, node)
}

func (f *FuncConverter) PushSourcePosition(start, end Position) {
	if f.Push != nil {
		f.Push(start, end)
	}
}

func (f *FuncConverter) PopSourcePosition() {
	if f.Pop != nil {
		f.Pop()
	}
}

func (f *FuncConverter) EmitProgram(mode TraversalMode, node *Program) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitImportDeclarations(mode TraversalMode, node *ImportDeclarations) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitImportedName(mode TraversalMode, node *ImportedName) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitLibraryDefinition(mode TraversalMode, node *LibraryDefinition) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitLibraryEntry(mode TraversalMode, node LibraryEntry) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeAlternativeClause(mode TraversalMode, node *TypeAlternativeClause) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitContractDefinition(mode TraversalMode, node *ContractDefinition) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitWithConstraint(mode TraversalMode, node *WithConstraint) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitContractField(mode TraversalMode, node *ContractField) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitComponentDefinition(mode TraversalMode, node *ComponentDefinition) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitComponentID(mode TraversalMode, node *ComponentID) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitComponentParameters(mode TraversalMode, node *ComponentParameters) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitParameterPair(mode TraversalMode, node *ParameterPair) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitComponentBody(mode TraversalMode, node *ComponentBody) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitStatementBlock(mode TraversalMode, node *StatementBlock) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitStatement(mode TraversalMode, node Statement) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitPatternMatchClause(mode TraversalMode, node *PatternMatchClause) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitMapAccess(mode TraversalMode, node *MapAccess) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitFullExpression(mode TraversalMode, node FullExpression) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitMessageEntry(mode TraversalMode, node *MessageEntry) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitPatternMatchExpressionClause(mode TraversalMode, node *PatternMatchExpressionClause) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitAtomicExpression(mode TraversalMode, node *AtomicExpression) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitValueLiteral(mode TraversalMode, node *ValueLiteral) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitBuiltinArguments(mode TraversalMode, node *BuiltinArguments) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitPattern(mode TraversalMode, node *Pattern) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitArgumentPattern(mode TraversalMode, node *ArgumentPattern) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypedIdentifier(mode TraversalMode, node *TypedIdentifier) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeAnnotation(mode TraversalMode, node *TypeAnnotation) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitScillaType(mode TraversalMode, node ScillaType) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeArgument(mode TraversalMode, node TypeArgument) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeMapKey(mode TraversalMode, node *TypeMapKey) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeMapValue(mode TraversalMode, node *TypeMapValue) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeMapEntry(mode TraversalMode, node *TypeMapEntry) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitAddressType(mode TraversalMode, node *AddressType) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitAddressTypeField(mode TraversalMode, node *AddressTypeField) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitMetaIdentifier(mode TraversalMode, node *MetaIdentifier) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitTypeNameIdentifier(mode TraversalMode, node *TypeNameIdentifier) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitVariableIdentifier(mode TraversalMode, node *VariableIdentifier) (TraversalResult, error) {
	return f.emit(mode, node)
}

func (f *FuncConverter) EmitByteStr(mode TraversalMode, node *ByteStr) (TraversalResult, error) {
	return f.emit(mode, node)
}
