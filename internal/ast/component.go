package ast

// ComponentKind distinguishes transitions, callable from outside, from
// procedures, callable only from within the contract.
type ComponentKind int

const (
	Transition ComponentKind = iota
	Procedure
)

func (k ComponentKind) String() string {
	if k == Procedure {
		return "procedure"
	}
	return "transition"
}

// ComponentDefinition is a transition or procedure
// Example: "transition setHello (msg : String) welcome_msg := msg end"
type ComponentDefinition struct {
	Kind       ComponentKind
	Name       *WithMetadata[*ComponentID]
	Parameters *WithMetadata[*ComponentParameters]
	Body       *WithMetadata[*ComponentBody]
}

// ComponentID is the name of a component, either a regular or a
// capitalised identifier
// Example: "setHello", "ThrowError"
type ComponentID struct {
	Name Ident
}

// ComponentParameters is a parenthesised parameter list
// Example: "(to : ByStr20, amount : Uint128)"
type ComponentParameters struct {
	Parameters []*WithMetadata[*ParameterPair]
}

// ParameterPair is one entry of a parameter list
// Example: "amount : Uint128"
type ParameterPair struct {
	Identifier *WithMetadata[*TypedIdentifier]
}

// ComponentBody holds the statements of a component
type ComponentBody struct {
	Statements *WithMetadata[*StatementBlock]
}

// StatementBlock is a `;` separated sequence of statements
// Example: "accept; msg = {_tag : \"\"; _recipient : _sender; _amount : zero}"
type StatementBlock struct {
	Statements []*WithMetadata[Statement]
}

func (*ComponentDefinition) NodeType() NodeType { return COMPONENT_DEFINITION }
func (*ComponentID) NodeType() NodeType         { return COMPONENT_ID }
func (*ComponentParameters) NodeType() NodeType { return COMPONENT_PARAMETERS }
func (*ParameterPair) NodeType() NodeType       { return PARAMETER_PAIR }
func (*ComponentBody) NodeType() NodeType       { return COMPONENT_BODY }
func (*StatementBlock) NodeType() NodeType      { return STATEMENT_BLOCK }

// Visit walks the name, the parameters, then the body.
func (n *ComponentDefinition) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitComponentDefinition(m, n) },
		one(c, n.Name),
		one(c, n.Parameters),
		one(c, n.Body),
	)
}

func (n *ComponentID) Visit(c Converter) (TraversalResult, error) {
	return walk(func(m TraversalMode) (TraversalResult, error) { return c.EmitComponentID(m, n) })
}

func (n *ComponentParameters) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitComponentParameters(m, n) },
		each(c, n.Parameters),
	)
}

func (n *ParameterPair) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitParameterPair(m, n) },
		one(c, n.Identifier),
	)
}

func (n *ComponentBody) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitComponentBody(m, n) },
		one(c, n.Statements),
	)
}

func (n *StatementBlock) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatementBlock(m, n) },
		each(c, n.Statements),
	)
}
