package lowering

import "scilla/internal/ast"

// Statements, expressions and patterns carry no part of the contract
// surface. Their subtrees are never entered.

func (e *Engine) EmitStatementBlock(mode ast.TraversalMode, node *ast.StatementBlock) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitStatement(mode ast.TraversalMode, node ast.Statement) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitPatternMatchClause(mode ast.TraversalMode, node *ast.PatternMatchClause) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitMapAccess(mode ast.TraversalMode, node *ast.MapAccess) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitFullExpression(mode ast.TraversalMode, node ast.FullExpression) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitMessageEntry(mode ast.TraversalMode, node *ast.MessageEntry) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitPatternMatchExpressionClause(mode ast.TraversalMode, node *ast.PatternMatchExpressionClause) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitAtomicExpression(mode ast.TraversalMode, node *ast.AtomicExpression) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitValueLiteral(mode ast.TraversalMode, node *ast.ValueLiteral) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitBuiltinArguments(mode ast.TraversalMode, node *ast.BuiltinArguments) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitPattern(mode ast.TraversalMode, node *ast.Pattern) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitArgumentPattern(mode ast.TraversalMode, node *ast.ArgumentPattern) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}
