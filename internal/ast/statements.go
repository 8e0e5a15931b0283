package ast

// Statement is a single imperative step inside a component body.
type Statement interface {
	Node
	isStatement()
}

// LoadStmt reads a contract field into a local
// Example: "msg <- welcome_msg"
type LoadStmt struct {
	Left  Ident
	Right *WithMetadata[*VariableIdentifier]
}

// RemoteFetchStmt reads state of another contract through its address
// Example: "bal <- & token.balances[owner]", "ok <- & exists token.balances[owner]", "c <- & addr as ByStr20 with contract field paused : Bool end"
type RemoteFetchStmt struct {
	Left    Ident
	Address Ident
	Field   Ident // empty for an address cast
	Keys    []*WithMetadata[*MapAccess]
	Exists  bool
	Cast    *WithMetadata[ScillaType] // nil unless `as`
}

// StoreStmt writes a local into a contract field
// Example: "welcome_msg := msg"
type StoreStmt struct {
	Left  Ident
	Right *WithMetadata[*VariableIdentifier]
}

// BindStmt binds the value of an expression to a local
// Example: "e = {_eventname : \"getHello\"; msg : msg}"
type BindStmt struct {
	Left  Ident
	Right *WithMetadata[FullExpression]
}

// MapUpdateStmt writes one entry of a map field
// Example: "balances[to] := amount"
type MapUpdateStmt struct {
	Map   Ident
	Keys  []*WithMetadata[*MapAccess]
	Value *WithMetadata[*VariableIdentifier]
}

// MapGetStmt reads, or tests the presence of, one entry of a map field
// Example: "bal <- balances[owner]", "ok <- exists balances[owner]"
type MapGetStmt struct {
	Left   Ident
	Map    Ident
	Keys   []*WithMetadata[*MapAccess]
	Exists bool
}

// MapDeleteStmt removes one entry of a map field
// Example: "delete balances[owner]"
type MapDeleteStmt struct {
	Map  Ident
	Keys []*WithMetadata[*MapAccess]
}

// ReadFromBCStmt reads blockchain state
// Example: "blk <- & BLOCKNUMBER", "ts <- & TIMESTAMP(bnum)"
type ReadFromBCStmt struct {
	Left      Ident
	Query     *WithMetadata[*TypeNameIdentifier]
	Arguments []*WithMetadata[*VariableIdentifier]
}

// AcceptStmt accepts the incoming funds
// Example: "accept"
type AcceptStmt struct{}

// SendStmt sends a list of messages
// Example: "send msgs"
type SendStmt struct {
	Messages *WithMetadata[*VariableIdentifier]
}

// EventStmt emits an event
// Example: "event e"
type EventStmt struct {
	Event *WithMetadata[*VariableIdentifier]
}

// ThrowStmt aborts the transition, optionally with an exception value
// Example: "throw", "throw err"
type ThrowStmt struct {
	Error *WithMetadata[*VariableIdentifier] // nil for a bare throw
}

// MatchStmt branches on a value
// Example: "match opt with | Some v => x := v | None => end"
type MatchStmt struct {
	Variable *WithMetadata[*VariableIdentifier]
	Clauses  []*WithMetadata[*PatternMatchClause]
}

// CallProcStmt calls a procedure
// Example: "ThrowError err", "do_transfer from to amount"
type CallProcStmt struct {
	Component *WithMetadata[*ComponentID]
	Arguments []*WithMetadata[*VariableIdentifier]
}

// IterateStmt calls a procedure once for each element of a list
// Example: "forall recipients send_one"
type IterateStmt struct {
	List      *WithMetadata[*VariableIdentifier]
	Component *WithMetadata[*ComponentID]
}

// PatternMatchClause is one arm of a match statement
// Example: "| Some v => x := v"
type PatternMatchClause struct {
	Pattern *WithMetadata[*Pattern]
	Body    *WithMetadata[*StatementBlock]
}

// MapAccess is one `[key]` of a map lookup
// Example: "[owner]"
type MapAccess struct {
	Key *WithMetadata[*VariableIdentifier]
}

func (*LoadStmt) isStatement()        {}
func (*RemoteFetchStmt) isStatement() {}
func (*StoreStmt) isStatement()       {}
func (*BindStmt) isStatement()        {}
func (*MapUpdateStmt) isStatement()   {}
func (*MapGetStmt) isStatement()      {}
func (*MapDeleteStmt) isStatement()   {}
func (*ReadFromBCStmt) isStatement()  {}
func (*AcceptStmt) isStatement()      {}
func (*SendStmt) isStatement()        {}
func (*EventStmt) isStatement()       {}
func (*ThrowStmt) isStatement()       {}
func (*MatchStmt) isStatement()       {}
func (*CallProcStmt) isStatement()    {}
func (*IterateStmt) isStatement()     {}

func (*LoadStmt) NodeType() NodeType           { return STATEMENT }
func (*RemoteFetchStmt) NodeType() NodeType    { return STATEMENT }
func (*StoreStmt) NodeType() NodeType          { return STATEMENT }
func (*BindStmt) NodeType() NodeType           { return STATEMENT }
func (*MapUpdateStmt) NodeType() NodeType      { return STATEMENT }
func (*MapGetStmt) NodeType() NodeType         { return STATEMENT }
func (*MapDeleteStmt) NodeType() NodeType      { return STATEMENT }
func (*ReadFromBCStmt) NodeType() NodeType     { return STATEMENT }
func (*AcceptStmt) NodeType() NodeType         { return STATEMENT }
func (*SendStmt) NodeType() NodeType           { return STATEMENT }
func (*EventStmt) NodeType() NodeType          { return STATEMENT }
func (*ThrowStmt) NodeType() NodeType          { return STATEMENT }
func (*MatchStmt) NodeType() NodeType          { return STATEMENT }
func (*CallProcStmt) NodeType() NodeType       { return STATEMENT }
func (*IterateStmt) NodeType() NodeType        { return STATEMENT }
func (*PatternMatchClause) NodeType() NodeType { return PATTERN_MATCH_CLAUSE }
func (*MapAccess) NodeType() NodeType          { return MAP_ACCESS }

func (n *LoadStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Right),
	)
}

func (n *RemoteFetchStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		each(c, n.Keys),
		optional(c, n.Cast != nil, func() Node { return n.Cast }),
	)
}

func (n *StoreStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Right),
	)
}

func (n *BindStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Right),
	)
}

// Visit walks the keys left to right, then the stored value.
func (n *MapUpdateStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		each(c, n.Keys),
		one(c, n.Value),
	)
}

func (n *MapGetStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		each(c, n.Keys),
	)
}

func (n *MapDeleteStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		each(c, n.Keys),
	)
}

func (n *ReadFromBCStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Query),
		each(c, n.Arguments),
	)
}

func (n *AcceptStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) })
}

func (n *SendStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Messages),
	)
}

func (n *EventStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Event),
	)
}

func (n *ThrowStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		optional(c, n.Error != nil, func() Node { return n.Error }),
	)
}

func (n *MatchStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Variable),
		each(c, n.Clauses),
	)
}

func (n *CallProcStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.Component),
		each(c, n.Arguments),
	)
}

func (n *IterateStmt) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitStatement(m, n) },
		one(c, n.List),
		one(c, n.Component),
	)
}

func (n *PatternMatchClause) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitPatternMatchClause(m, n) },
		one(c, n.Pattern),
		one(c, n.Body),
	)
}

func (n *MapAccess) Visit(c Converter) (TraversalResult, error) {
	return walk(
		func(m TraversalMode) (TraversalResult, error) { return c.EmitMapAccess(m, n) },
		one(c, n.Key),
	)
}
