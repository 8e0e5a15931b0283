package parser

import "scilla/internal/ast"

// parseStatementBlock parses `;` separated statements up to, but not
// including, the closing 'end' or the next match arm.
func (p *Parser) parseStatementBlock() *ast.WithMetadata[*ast.StatementBlock] {
	mark := p.current
	block := &ast.StatementBlock{}

	for !p.check(END) && !p.check(PIPE) && !p.isAtEnd() {
		block.Statements = append(block.Statements, p.parseStatement())
		if !p.match(SEMICOLON) {
			break
		}
	}
	return wrapFrom(p, mark, block)
}

func (p *Parser) parseStatement() *ast.WithMetadata[ast.Statement] {
	mark := p.current
	return wrapFrom(p, mark, p.statement())
}

func (p *Parser) statement() ast.Statement {
	switch p.peek().Type {
	case ACCEPT:
		p.advance()
		return &ast.AcceptStmt{}

	case SEND:
		p.advance()
		return &ast.SendStmt{Messages: p.parseVariable()}

	case EVENT:
		p.advance()
		return &ast.EventStmt{Event: p.parseVariable()}

	case THROW:
		p.advance()
		stmt := &ast.ThrowStmt{}
		if p.startsVariable() {
			stmt.Error = p.parseVariable()
		}
		return stmt

	case DELETE:
		p.advance()
		stmt := &ast.MapDeleteStmt{Map: p.consumeIdent("expected map name after 'delete'")}
		stmt.Keys = p.parseMapAccesses()
		if len(stmt.Keys) == 0 {
			p.errorAtCurrent("expected '[' after map name")
		}
		return stmt

	case MATCH:
		return p.parseMatchStatement()

	case FORALL:
		p.advance()
		stmt := &ast.IterateStmt{List: p.parseVariable()}
		if !p.check(IDENTIFIER) && !p.check(CID) {
			p.errorAtCurrent("expected procedure name after list")
		}
		stmt.Component = p.parseComponentID()
		return stmt

	case CID:
		return p.parseProcedureCall()

	case IDENTIFIER, SPECIAL_ID:
		switch {
		case p.checkAt(1, LEFT_ARROW):
			return p.parseFetch()
		case p.checkAt(1, ASSIGN):
			left := p.makeIdent(p.advance())
			p.advance()
			return &ast.StoreStmt{Left: left, Right: p.parseVariable()}
		case p.checkAt(1, EQUAL):
			left := p.makeIdent(p.advance())
			p.advance()
			return &ast.BindStmt{Left: left, Right: p.parseExpression()}
		case p.checkAt(1, LEFT_BRACKET):
			stmt := &ast.MapUpdateStmt{Map: p.makeIdent(p.advance())}
			stmt.Keys = p.parseMapAccesses()
			p.consume(ASSIGN, "expected ':=' after map keys")
			stmt.Value = p.parseVariable()
			return stmt
		}
		if p.check(IDENTIFIER) {
			return p.parseProcedureCall()
		}
	}

	p.errorAtCurrent("expected statement")
	return nil
}

// parseFetch parses the statements of the form "x <- ...".
func (p *Parser) parseFetch() ast.Statement {
	left := p.makeIdent(p.advance())
	p.consume(LEFT_ARROW, "expected '<-'")

	switch {
	case p.match(AMPERSAND):
		return p.parseRemoteFetch(left)

	case p.match(EXISTS):
		stmt := &ast.MapGetStmt{Left: left, Exists: true, Map: p.consumeIdent("expected map name after 'exists'")}
		stmt.Keys = p.parseMapAccesses()
		if len(stmt.Keys) == 0 {
			p.errorAtCurrent("expected '[' after map name")
		}
		return stmt

	case p.check(IDENTIFIER) && p.checkAt(1, LEFT_BRACKET):
		stmt := &ast.MapGetStmt{Left: left, Map: p.makeIdent(p.advance())}
		stmt.Keys = p.parseMapAccesses()
		return stmt
	}

	return &ast.LoadStmt{Left: left, Right: p.parseVariable()}
}

// parseRemoteFetch parses what follows "x <- &": a blockchain query, a
// remote field read or an address cast.
func (p *Parser) parseRemoteFetch(left ast.Ident) ast.Statement {
	if p.check(CID) {
		stmt := &ast.ReadFromBCStmt{Left: left, Query: p.typeName(p.advance())}
		if p.match(LEFT_PAREN) {
			if !p.check(RIGHT_PAREN) {
				for {
					stmt.Arguments = append(stmt.Arguments, p.parseVariable())
					if !p.match(COMMA) {
						break
					}
				}
			}
			p.consume(RIGHT_PAREN, "expected ')' after blockchain query arguments")
		}
		return stmt
	}

	stmt := &ast.RemoteFetchStmt{Left: left}
	if p.match(EXISTS) {
		stmt.Exists = true
	}
	stmt.Address = p.consumeName("expected address")

	if !stmt.Exists && p.match(AS) {
		stmt.Cast = p.parseType()
		return stmt
	}

	p.consume(DOT, "expected '.' after address")
	stmt.Field = p.consumeName("expected remote field name")
	stmt.Keys = p.parseMapAccesses()
	if stmt.Exists && len(stmt.Keys) == 0 {
		p.errorAtCurrent("expected '[' after remote map name")
	}
	return stmt
}

func (p *Parser) parseMapAccesses() []*ast.WithMetadata[*ast.MapAccess] {
	var keys []*ast.WithMetadata[*ast.MapAccess]
	for p.check(LEFT_BRACKET) {
		mark := p.current
		p.advance()
		access := &ast.MapAccess{Key: p.parseVariable()}
		p.consume(RIGHT_BRACKET, "expected ']' after map key")
		keys = append(keys, wrapFrom(p, mark, access))
	}
	return keys
}

func (p *Parser) parseMatchStatement() ast.Statement {
	p.consume(MATCH, "expected 'match'")
	stmt := &ast.MatchStmt{Variable: p.parseVariable()}
	p.consume(WITH, "expected 'with' after match variable")

	for p.check(PIPE) {
		mark := p.current
		p.advance()
		clause := &ast.PatternMatchClause{Pattern: p.parsePattern()}
		p.consume(FAT_ARROW, "expected '=>' after pattern")
		clause.Body = p.parseStatementBlock()
		stmt.Clauses = append(stmt.Clauses, wrapFrom(p, mark, clause))
	}
	p.consume(END, "expected 'end' after match clauses")
	return stmt
}

// ThrowIfNotOwner owner, do_transfer from to amount
func (p *Parser) parseProcedureCall() ast.Statement {
	stmt := &ast.CallProcStmt{Component: p.parseComponentID()}
	for p.startsVariable() {
		stmt.Arguments = append(stmt.Arguments, p.parseVariable())
	}
	return stmt
}
