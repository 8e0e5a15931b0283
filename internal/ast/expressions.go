package ast

// FullExpression is any Scilla expression.
type FullExpression interface {
	Node
	isFullExpression()
}

// LocalBindingExpr binds a value for the scope of its body
// Example: "let zero = Uint128 0 in builtin eq amount zero"
type LocalBindingExpr struct {
	Name       Ident
	Annotation *WithMetadata[*TypeAnnotation] // nil without an explicit type
	Expression *WithMetadata[FullExpression]
	Body       *WithMetadata[FullExpression]
}

// FunctionExpr is an anonymous function
// Example: "fun (a : Uint128) => builtin add a one"
type FunctionExpr struct {
	Parameter  Ident
	Annotation *WithMetadata[*TypeAnnotation]
	Body       *WithMetadata[FullExpression]
}

// FunctionCallExpr applies a function to arguments
// Example: "one_msg msg"
type FunctionCallExpr struct {
	Function  *WithMetadata[*VariableIdentifier]
	Arguments []*WithMetadata[*VariableIdentifier]
}

// AtomicExpr is a variable or literal used as an expression
// Example: "msg", "Uint128 0"
type AtomicExpr struct {
	Atom *WithMetadata[*AtomicExpression]
}

// ConstructorCallExpr builds an ADT value
// Example: "Cons {Message} msg nil", "Some {Uint128} amount", "True"
type ConstructorCallExpr struct {
	Constructor   *WithMetadata[*MetaIdentifier]
	TypeArguments []*WithMetadata[TypeArgument]
	Arguments     []*WithMetadata[*VariableIdentifier]
}

// BuiltinExpr calls a builtin operation
// Example: "builtin add a b", "builtin to_string ()"
type BuiltinExpr struct {
	Name      Ident
	Arguments *WithMetadata[*BuiltinArguments]
}

// MessageExpr is a message or event literal
// Example: "{_tag : \"Transfer\"; _recipient : to; _amount : zero}"
type MessageExpr struct {
	Entries []*WithMetadata[*MessageEntry]
}

// MatchExpr matches a value against patterns
// Example: "match opt with | Some v => v | None => zero end"
type MatchExpr struct {
	Variable *WithMetadata[*VariableIdentifier]
	Clauses  []*WithMetadata[*PatternMatchExpressionClause]
}

// TFunExpr abstracts an expression over a type variable
// Example: "tfun 'A => fun (l : List 'A) => ..."
type TFunExpr struct {
	TypeVar Ident
	Body    *WithMetadata[FullExpression]
}

// TAppExpr instantiates a type abstraction
// Example: "@list_length Message"
type TAppExpr struct {
	Identifier    *WithMetadata[*VariableIdentifier]
	TypeArguments []*WithMetadata[TypeArgument]
}

// MessageEntry is one `key : value` entry of a message literal
// Example: "_tag : \"Transfer\""
type MessageEntry struct {
	Name     Ident
	Literal  *WithMetadata[*ValueLiteral]
	Variable *WithMetadata[*VariableIdentifier]
}

// PatternMatchExpressionClause is one arm of a match expression
// Example: "| Some v => v"
type PatternMatchExpressionClause struct {
	Pattern    *WithMetadata[*Pattern]
	Expression *WithMetadata[FullExpression]
}

// AtomicExpression is either a variable or a literal
type AtomicExpression struct {
	Identifier *WithMetadata[*VariableIdentifier]
	Literal    *WithMetadata[*ValueLiteral]
}

type LiteralKind int

const (
	NumericLiteral LiteralKind = iota
	HexLiteral
	StringLiteral
	EmptyMapLiteral
)

// ValueLiteral is a constant
// Example: "Uint128 42", "BNum 100", "0x1234", "\"hello\"", "Emp ByStr20 Uint128"
type ValueLiteral struct {
	Kind     LiteralKind
	Value    string
	Type     *WithMetadata[*TypeNameIdentifier] // NumericLiteral only
	Key      *WithMetadata[*TypeMapKey]         // EmptyMapLiteral only
	MapValue *WithMetadata[*TypeMapValue]       // EmptyMapLiteral only
}

// BuiltinArguments is the argument list of a builtin call; `()` is empty
type BuiltinArguments struct {
	Arguments []*WithMetadata[*VariableIdentifier]
}

type PatternKind int

const (
	WildcardPattern PatternKind = iota
	BinderPattern
	ConstructorPattern
)

// Pattern is the left-hand side of a match arm
// Example: "_", "x", "Cons h t", "Pair (Some a) _"
type Pattern struct {
	Kind        PatternKind
	Binder      Ident
	Constructor *WithMetadata[*MetaIdentifier]
	Arguments   []*WithMetadata[*ArgumentPattern]
}

type ArgumentPatternKind int

const (
	WildcardArgument ArgumentPatternKind = iota
	BinderArgument
	ConstructorArgument
	PatternArgument
)

// ArgumentPattern is an argument of a constructor pattern
// Example: "h", "_", "None", "(Some a)"
type ArgumentPattern struct {
	Kind        ArgumentPatternKind
	Binder      Ident
	Constructor *WithMetadata[*MetaIdentifier]
	Pattern     *WithMetadata[*Pattern]
}

func (*LocalBindingExpr) isFullExpression()    {}
func (*FunctionExpr) isFullExpression()        {}
func (*FunctionCallExpr) isFullExpression()    {}
func (*AtomicExpr) isFullExpression()          {}
func (*ConstructorCallExpr) isFullExpression() {}
func (*BuiltinExpr) isFullExpression()         {}
func (*MessageExpr) isFullExpression()         {}
func (*MatchExpr) isFullExpression()           {}
func (*TFunExpr) isFullExpression()            {}
func (*TAppExpr) isFullExpression()            {}

func (*LocalBindingExpr) NodeType() NodeType             { return FULL_EXPRESSION }
func (*FunctionExpr) NodeType() NodeType                 { return FULL_EXPRESSION }
func (*FunctionCallExpr) NodeType() NodeType             { return FULL_EXPRESSION }
func (*AtomicExpr) NodeType() NodeType                   { return FULL_EXPRESSION }
func (*ConstructorCallExpr) NodeType() NodeType          { return FULL_EXPRESSION }
func (*BuiltinExpr) NodeType() NodeType                  { return FULL_EXPRESSION }
func (*MessageExpr) NodeType() NodeType                  { return FULL_EXPRESSION }
func (*MatchExpr) NodeType() NodeType                    { return FULL_EXPRESSION }
func (*TFunExpr) NodeType() NodeType                     { return FULL_EXPRESSION }
func (*TAppExpr) NodeType() NodeType                     { return FULL_EXPRESSION }
func (*MessageEntry) NodeType() NodeType                 { return MESSAGE_ENTRY }
func (*PatternMatchExpressionClause) NodeType() NodeType { return PATTERN_MATCH_EXPRESSION_CLAUSE }
func (*AtomicExpression) NodeType() NodeType             { return ATOMIC_EXPRESSION }
func (*ValueLiteral) NodeType() NodeType                 { return VALUE_LITERAL }
func (*BuiltinArguments) NodeType() NodeType             { return BUILTIN_ARGUMENTS }
func (*Pattern) NodeType() NodeType                      { return PATTERN }
func (*ArgumentPattern) NodeType() NodeType              { return ARGUMENT_PATTERN }

func (n *LocalBindingExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		optional(c, n.Annotation != nil, func() Node { return n.Annotation }),
		one(c, n.Expression),
		one(c, n.Body),
	)
}

func (n *FunctionExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Annotation),
		one(c, n.Body),
	)
}

// Visit walks the callee, then the arguments left to right.
func (n *FunctionCallExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Function),
		each(c, n.Arguments),
	)
}

func (n *AtomicExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Atom),
	)
}

func (n *ConstructorCallExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Constructor),
		each(c, n.TypeArguments),
		each(c, n.Arguments),
	)
}

func (n *BuiltinExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Arguments),
	)
}

func (n *MessageExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		each(c, n.Entries),
	)
}

func (n *MatchExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Variable),
		each(c, n.Clauses),
	)
}

func (n *TFunExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Body),
	)
}

func (n *TAppExpr) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitFullExpression(m, n) },
		one(c, n.Identifier),
		each(c, n.TypeArguments),
	)
}

func (n *MessageEntry) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitMessageEntry(m, n) },
		optional(c, n.Literal != nil, func() Node { return n.Literal }),
		optional(c, n.Variable != nil, func() Node { return n.Variable }),
	)
}

func (n *PatternMatchExpressionClause) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitPatternMatchExpressionClause(m, n) },
		one(c, n.Pattern),
		one(c, n.Expression),
	)
}

func (n *AtomicExpression) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitAtomicExpression(m, n) },
		optional(c, n.Identifier != nil, func() Node { return n.Identifier }),
		optional(c, n.Literal != nil, func() Node { return n.Literal }),
	)
}

func (n *ValueLiteral) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitValueLiteral(m, n) },
		optional(c, n.Type != nil, func() Node { return n.Type }),
		optional(c, n.Key != nil, func() Node { return n.Key }),
		optional(c, n.MapValue != nil, func() Node { return n.MapValue }),
	)
}

func (n *BuiltinArguments) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitBuiltinArguments(m, n) },
		each(c, n.Arguments),
	)
}

func (n *Pattern) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitPattern(m, n) },
		optional(c, n.Constructor != nil, func() Node { return n.Constructor }),
		each(c, n.Arguments),
	)
}

func (n *ArgumentPattern) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitArgumentPattern(m, n) },
		optional(c, n.Constructor != nil, func() Node { return n.Constructor }),
		optional(c, n.Pattern != nil, func() Node { return n.Pattern }),
	)
}
