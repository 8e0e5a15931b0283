package parser

import (
	"strconv"

	"scilla/internal/ast"
)

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF, Position: Position{Line: 1, Column: 1}})
	}
	return &Parser{filename: filename, tokens: tokens}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseProgram parses a whole source file. It stops at the first syntax
// error and returns nil; the error is available from Errors.
func (p *Parser) ParseProgram() (program *ast.Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program = nil
		}
	}()

	return p.parseProgram()
}

func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{}

	p.consume(SCILLA_VERSION, "expected 'scilla_version' at start of file")
	version := p.consume(NUMBER, "expected version number after 'scilla_version'")
	program.Version, _ = strconv.Atoi(version.Lexeme)

	if p.check(IMPORT) {
		program.Imports = p.parseImports()
	}
	if p.check(LIBRARY) {
		program.Library = p.parseLibrary()
	}
	program.Contract = p.parseContract()

	if !p.isAtEnd() {
		p.errorAtCurrent("expected end of file after contract")
	}
	return program
}

// import BoolUtils ListUtils as LU
func (p *Parser) parseImports() *ast.WithMetadata[*ast.ImportDeclarations] {
	mark := p.current
	p.consume(IMPORT, "expected 'import'")

	decls := &ast.ImportDeclarations{}
	for p.check(CID) {
		nameMark := p.current
		imported := &ast.ImportedName{Name: p.consumeTypeName("expected library name")}
		if p.match(AS) {
			imported.Alias = p.consumeTypeName("expected alias after 'as'")
		}
		decls.Imports = append(decls.Imports, wrapFrom(p, nameMark, imported))
	}
	if len(decls.Imports) == 0 {
		p.errorAtCurrent("expected library name after 'import'")
	}
	return wrapFrom(p, mark, decls)
}

func (p *Parser) parseLibrary() *ast.WithMetadata[*ast.LibraryDefinition] {
	mark := p.current
	p.consume(LIBRARY, "expected 'library'")

	lib := &ast.LibraryDefinition{Name: p.consumeTypeName("expected library name")}
	for {
		switch {
		case p.check(LET):
			lib.Definitions = append(lib.Definitions, p.parseLetDefinition())
		case p.check(TYPE):
			lib.Definitions = append(lib.Definitions, p.parseTypeDefinition())
		default:
			return wrapFrom(p, mark, lib)
		}
	}
}

// let one = Uint32 1
func (p *Parser) parseLetDefinition() *ast.WithMetadata[ast.LibraryEntry] {
	mark := p.current
	p.consume(LET, "expected 'let'")

	def := &ast.LetDefinition{Name: p.consumeIdent("expected name after 'let'")}
	if p.check(COLON) {
		def.Annotation = p.parseTypeAnnotation()
	}
	p.consume(EQUAL, "expected '=' in library definition")
	def.Expression = p.parseExpression()

	return wrapFrom[ast.LibraryEntry](p, mark, def)
}

// type Status = | Active | Paused of BNum
func (p *Parser) parseTypeDefinition() *ast.WithMetadata[ast.LibraryEntry] {
	mark := p.current
	p.consume(TYPE, "expected 'type'")

	def := &ast.TypeDefinition{Name: p.consumeTypeName("expected type name after 'type'")}
	if p.match(EQUAL) {
		for p.check(PIPE) {
			def.Clauses = append(def.Clauses, p.parseTypeAlternativeClause())
		}
		if len(def.Clauses) == 0 {
			p.errorAtCurrent("expected '|' before constructor")
		}
	}
	return wrapFrom[ast.LibraryEntry](p, mark, def)
}

func (p *Parser) parseTypeAlternativeClause() *ast.WithMetadata[*ast.TypeAlternativeClause] {
	mark := p.current
	p.consume(PIPE, "expected '|'")

	clause := &ast.TypeAlternativeClause{Name: p.consumeTypeName("expected constructor name")}
	if p.match(OF) {
		clause.Arguments = p.parseTypeArguments()
		if len(clause.Arguments) == 0 {
			p.errorAtCurrent("expected constructor argument type after 'of'")
		}
	}
	return wrapFrom(p, mark, clause)
}

func (p *Parser) parseContract() *ast.WithMetadata[*ast.ContractDefinition] {
	mark := p.current
	p.consume(CONTRACT, "expected 'contract'")

	contract := &ast.ContractDefinition{
		Name:       p.consumeTypeName("expected contract name"),
		Parameters: p.parseParameters(),
	}

	if p.check(WITH) {
		constraintMark := p.current
		p.advance()
		constraint := &ast.WithConstraint{Expression: p.parseExpression()}
		p.consume(FAT_ARROW, "expected '=>' after contract constraint")
		contract.Constraint = wrapFrom(p, constraintMark, constraint)
	}

	for p.check(FIELD) {
		contract.Fields = append(contract.Fields, p.parseField())
	}
	for p.check(TRANSITION) || p.check(PROCEDURE) {
		contract.Components = append(contract.Components, p.parseComponent())
	}

	return wrapFrom(p, mark, contract)
}

// field welcome_msg : String = ""
func (p *Parser) parseField() *ast.WithMetadata[*ast.ContractField] {
	mark := p.current
	p.consume(FIELD, "expected 'field'")

	field := &ast.ContractField{TypedIdentifier: p.parseTypedIdentifier()}
	p.consume(EQUAL, "expected '=' after field type")
	field.RightHandSide = p.parseExpression()

	return wrapFrom(p, mark, field)
}

func (p *Parser) parseComponent() *ast.WithMetadata[*ast.ComponentDefinition] {
	mark := p.current
	component := &ast.ComponentDefinition{Kind: ast.Transition}
	if p.advance().Type == PROCEDURE {
		component.Kind = ast.Procedure
	}

	if !p.check(IDENTIFIER) && !p.check(CID) {
		p.errorAtCurrent("expected " + component.Kind.String() + " name")
	}
	component.Name = p.parseComponentID()
	component.Parameters = p.parseParameters()

	bodyMark := p.current
	body := &ast.ComponentBody{Statements: p.parseStatementBlock()}
	component.Body = wrapFrom(p, bodyMark, body)
	p.consume(END, "expected 'end' after "+component.Kind.String()+" body")

	return wrapFrom(p, mark, component)
}

func (p *Parser) parseComponentID() *ast.WithMetadata[*ast.ComponentID] {
	tok := p.advance()
	id := p.makeIdent(tok)
	return ast.Wrap(&ast.ComponentID{Name: id}, id.Pos, id.EndPos)
}

// (to : ByStr20, amount : Uint128)
func (p *Parser) parseParameters() *ast.WithMetadata[*ast.ComponentParameters] {
	mark := p.current
	p.consume(LEFT_PAREN, "expected '(' before parameters")

	params := &ast.ComponentParameters{}
	if !p.check(RIGHT_PAREN) {
		for {
			pairMark := p.current
			pair := &ast.ParameterPair{Identifier: p.parseTypedIdentifier()}
			params.Parameters = append(params.Parameters, wrapFrom(p, pairMark, pair))
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' after parameters")

	return wrapFrom(p, mark, params)
}

func (p *Parser) parseTypedIdentifier() *ast.WithMetadata[*ast.TypedIdentifier] {
	mark := p.current
	typed := &ast.TypedIdentifier{Name: p.consumeIdent("expected identifier")}
	typed.Annotation = p.parseTypeAnnotation()
	return wrapFrom(p, mark, typed)
}

func (p *Parser) parseTypeAnnotation() *ast.WithMetadata[*ast.TypeAnnotation] {
	mark := p.current
	p.consume(COLON, "expected ':' before type")
	return wrapFrom(p, mark, &ast.TypeAnnotation{Type: p.parseType()})
}
