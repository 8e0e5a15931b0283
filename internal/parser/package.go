package parser

import "scilla/internal/ast"

// ParseSource scans and parses a Scilla file. The program is nil whenever
// any error is reported. Parsing is skipped when scanning fails.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewFileScanner(path, source)
	tokens := scanner.ScanTokens()
	if len(scanner.errors) > 0 {
		return nil, nil, scanner.errors
	}

	parser := NewParser(path, tokens)
	program := parser.ParseProgram()

	return program, parser.errors, scanner.errors
}
