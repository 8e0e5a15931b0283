package ast

// Program represents an entire Scilla source file
// Example: "scilla_version 0 import BoolUtils library HelloWorld ... contract HelloWorld (owner : ByStr20) ..."
type Program struct {
	Version  int
	Imports  *WithMetadata[*ImportDeclarations] // nil when the file imports nothing
	Library  *WithMetadata[*LibraryDefinition]  // nil when the file declares no library
	Contract *WithMetadata[*ContractDefinition]
}

// ImportDeclarations is the `import` line of a file
// Example: "import BoolUtils ListUtils as LU"
type ImportDeclarations struct {
	Imports []*WithMetadata[*ImportedName]
}

// ImportedName is one imported library, optionally renamed
// Example: "ListUtils as LU"
type ImportedName struct {
	Name  *WithMetadata[*TypeNameIdentifier]
	Alias *WithMetadata[*TypeNameIdentifier] // nil without `as`
}

// LibraryDefinition is the contract's own library block
// Example: "library HelloWorld let one = Uint32 1 type Status = | Active | Paused"
type LibraryDefinition struct {
	Name        *WithMetadata[*TypeNameIdentifier]
	Definitions []*WithMetadata[LibraryEntry]
}

// LibraryEntry is a single `let` or `type` definition inside a library.
type LibraryEntry interface {
	Node
	isLibraryEntry()
}

// LetDefinition binds a library value
// Example: "let not_owner_code = Int32 1"
type LetDefinition struct {
	Name       Ident
	Annotation *WithMetadata[*TypeAnnotation] // nil without an explicit type
	Expression *WithMetadata[FullExpression]
}

// TypeDefinition declares an algebraic data type
// Example: "type Stake = | Stake of Uint128 BNum | NoStake"
type TypeDefinition struct {
	Name    *WithMetadata[*TypeNameIdentifier]
	Clauses []*WithMetadata[*TypeAlternativeClause]
}

// TypeAlternativeClause is one constructor of an ADT
// Example: "| Stake of Uint128 BNum"
type TypeAlternativeClause struct {
	Name      *WithMetadata[*TypeNameIdentifier]
	Arguments []*WithMetadata[TypeArgument]
}

// ContractDefinition is the `contract` block
// Example: "contract HelloWorld (owner : ByStr20) field welcome_msg : String = \"\" transition ..."
type ContractDefinition struct {
	Name       *WithMetadata[*TypeNameIdentifier]
	Parameters *WithMetadata[*ComponentParameters]
	Constraint *WithMetadata[*WithConstraint] // nil without `with ... =>`
	Fields     []*WithMetadata[*ContractField]
	Components []*WithMetadata[*ComponentDefinition]
}

// WithConstraint is the deployment constraint of a contract
// Example: "with builtin lt zero max =>"
type WithConstraint struct {
	Expression *WithMetadata[FullExpression]
}

// ContractField is a mutable field with its initial value
// Example: "field welcome_msg : String = \"\""
type ContractField struct {
	TypedIdentifier *WithMetadata[*TypedIdentifier]
	RightHandSide   *WithMetadata[FullExpression]
}

func (*LetDefinition) isLibraryEntry()  {}
func (*TypeDefinition) isLibraryEntry() {}

func (*Program) NodeType() NodeType               { return PROGRAM }
func (*ImportDeclarations) NodeType() NodeType    { return IMPORT_DECLARATIONS }
func (*ImportedName) NodeType() NodeType          { return IMPORTED_NAME }
func (*LibraryDefinition) NodeType() NodeType     { return LIBRARY_DEFINITION }
func (*LetDefinition) NodeType() NodeType         { return LIBRARY_ENTRY }
func (*TypeDefinition) NodeType() NodeType        { return LIBRARY_ENTRY }
func (*TypeAlternativeClause) NodeType() NodeType { return TYPE_ALTERNATIVE_CLAUSE }
func (*ContractDefinition) NodeType() NodeType    { return CONTRACT_DEFINITION }
func (*WithConstraint) NodeType() NodeType        { return WITH_CONSTRAINT }
func (*ContractField) NodeType() NodeType         { return CONTRACT_FIELD }

// Visit walks imports, then the library, then the contract.
func (n *Program) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitProgram(m, n) },
		optional(c, n.Imports != nil, func() Node { return n.Imports }),
		optional(c, n.Library != nil, func() Node { return n.Library }),
		one(c, n.Contract),
	)
}

func (n *ImportDeclarations) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitImportDeclarations(m, n) },
		each(c, n.Imports),
	)
}

// Visit walks the imported name, then the alias.
func (n *ImportedName) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitImportedName(m, n) },
		one(c, n.Name),
		optional(c, n.Alias != nil, func() Node { return n.Alias }),
	)
}

// Visit walks the library name, then each definition in order.
func (n *LibraryDefinition) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitLibraryDefinition(m, n) },
		one(c, n.Name),
		each(c, n.Definitions),
	)
}

func (n *LetDefinition) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitLibraryEntry(m, n) },
		optional(c, n.Annotation != nil, func() Node { return n.Annotation }),
		one(c, n.Expression),
	)
}

func (n *TypeDefinition) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitLibraryEntry(m, n) },
		one(c, n.Name),
		each(c, n.Clauses),
	)
}

func (n *TypeAlternativeClause) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitTypeAlternativeClause(m, n) },
		one(c, n.Name),
		each(c, n.Arguments),
	)
}

// Visit walks the name, parameters, constraint, fields and components in
// that order.
func (n *ContractDefinition) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitContractDefinition(m, n) },
		one(c, n.Name),
		one(c, n.Parameters),
		optional(c, n.Constraint != nil, func() Node { return n.Constraint }),
		each(c, n.Fields),
		each(c, n.Components),
	)
}

func (n *WithConstraint) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitWithConstraint(m, n) },
		one(c, n.Expression),
	)
}

func (n *ContractField) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitContractField(m, n) },
		one(c, n.TypedIdentifier),
		one(c, n.RightHandSide),
	)
}
