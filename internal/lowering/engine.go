// Package lowering turns a parsed Scilla program into the contract surface
// description. The Engine is an ast.Converter: one depth-first walk drives
// it, and its hooks pass partial results to each other on an operand stack.
package lowering

import (
	"github.com/tliron/commonlog"

	"scilla/contract"
	"scilla/internal/ast"
	"scilla/internal/errors"
)

type engineState int

const (
	stateIdle engineState = iota
	stateTraversing
	stateDone
	stateFailed
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the default "scilla.lowering" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// Engine lowers exactly one program. It is not safe for concurrent use;
// build one per lowering.
type Engine struct {
	log   commonlog.Logger
	state engineState

	stack      operandStack
	namespaces []Identifier
	positions  []ast.SourceRange

	inComponent bool

	contract contract.Contract
	symbols  []Symbol
}

var _ ast.Converter = (*Engine)(nil)

func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: commonlog.GetLogger("scilla.lowering")}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lower walks program once and returns the contract it declares. The first
// error aborts the walk; no partial contract is returned.
func (e *Engine) Lower(program *ast.Program) (contract.Contract, error) {
	if e.state != stateIdle {
		return contract.Contract{}, errors.Internal("engine already used").WithCode(errors.ErrorEngineState)
	}
	if program == nil || program.Contract == nil {
		e.state = stateFailed
		return contract.Contract{}, errors.Internal("no contract to lower").WithCode(errors.ErrorEngineState)
	}

	e.state = stateTraversing
	if _, err := program.Visit(e); err != nil {
		e.state = stateFailed
		e.log.Debugf("lowering failed: %s", err)
		return contract.Contract{}, err
	}
	if err := e.checkBalanced(); err != nil {
		e.state = stateFailed
		return contract.Contract{}, err
	}

	e.state = stateDone
	e.log.Debugf("lowered contract %s: %d transition(s), %d procedure(s)",
		e.contract.Name, len(e.contract.Transitions), len(e.contract.Procedures))
	return e.contract, nil
}

// Symbols returns the declarations recorded by Lower, in source order.
func (e *Engine) Symbols() []Symbol {
	return e.symbols
}

// StackDepths reports the current depth of the operand, namespace and
// position stacks.
func (e *Engine) StackDepths() (operands, namespaces, positions int) {
	return e.stack.len(), len(e.namespaces), len(e.positions)
}

func (e *Engine) checkBalanced() error {
	operands, namespaces, positions := e.StackDepths()
	if operands != 0 || namespaces != 0 || positions != 0 {
		return errors.Internal("unbalanced stacks after lowering: %d operand(s), %d namespace(s), %d position(s)",
			operands, namespaces, positions).WithCode(errors.ErrorUnbalancedStack)
	}
	return nil
}

func (e *Engine) PushSourcePosition(start, end ast.Position) {
	e.positions = append(e.positions, ast.SourceRange{Start: start, End: end})
}

func (e *Engine) PopSourcePosition() {
	if len(e.positions) > 0 {
		e.positions = e.positions[:len(e.positions)-1]
	}
}

// position is the start of the innermost node being visited.
func (e *Engine) position() ast.Position {
	return e.sourceRange().Start
}

func (e *Engine) sourceRange() ast.SourceRange {
	if len(e.positions) == 0 {
		return ast.SourceRange{}
	}
	return e.positions[len(e.positions)-1]
}

func (e *Engine) pushNamespace(name string) {
	e.namespaces = append(e.namespaces, Identifier{Unresolved: name, Resolved: name, Kind: Namespace, IsDefinition: true})
	e.log.Debugf("enter namespace %s", name)
}

func (e *Engine) popNamespace() {
	if len(e.namespaces) == 0 {
		return
	}
	e.log.Debugf("leave namespace %s", e.currentNamespace())
	e.namespaces = e.namespaces[:len(e.namespaces)-1]
}

func (e *Engine) currentNamespace() string {
	if len(e.namespaces) == 0 {
		return ""
	}
	return e.namespaces[len(e.namespaces)-1].Resolved
}

// record adds a symbol for the node at the top of the position stack.
func (e *Engine) record(kind SymbolKind, name, detail string) {
	r := e.sourceRange()
	sym := Symbol{
		Name:      name,
		Kind:      kind,
		Namespace: e.currentNamespace(),
		Detail:    detail,
		Start:     r.Start,
		End:       r.End,
	}
	e.symbols = append(e.symbols, sym)
	e.log.Debugf("declared %s %s", kind, sym.QualifiedName())
}
