// Package scilla extracts the deployable surface of a Scilla smart contract:
// its name, constructor parameters, mutable fields and the typed signatures
// of its transitions.
package scilla

import (
	"os"
	"slices"

	"scilla/contract"
	"scilla/internal/ast"
	"scilla/internal/errors"
	"scilla/internal/lowering"
	"scilla/internal/parser"
)

// Error is the error type of every function in this package.
type Error = errors.Error

// Analysis is everything a single lowering pass learns about a source file.
type Analysis struct {
	Contract contract.Contract
	Symbols  []lowering.Symbol
	Program  *ast.Program
}

var keywords = func() []string {
	ks := make([]string, 0, len(parser.KEYWORDS))
	for k := range parser.KEYWORDS {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}()

// ParseContract parses and lowers source.
func ParseContract(source string) (contract.Contract, error) {
	analysis, err := Analyze("", source)
	if err != nil {
		return contract.Contract{}, err
	}
	return analysis.Contract, nil
}

// ParseContractFile reads path and lowers its content.
func ParseContractFile(path string) (contract.Contract, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return contract.Contract{}, errors.IO(path, err)
	}

	analysis, err := Analyze(path, string(source))
	if err != nil {
		return contract.Contract{}, err
	}
	return analysis.Contract, nil
}

// Analyze lowers source and keeps the AST and symbol table next to the
// contract. filename only appears in positions.
func Analyze(filename, source string) (*Analysis, error) {
	program, err := Parse(filename, source)
	if err != nil {
		return nil, err
	}

	engine := lowering.NewEngine()
	c, err := engine.Lower(program)
	if err != nil {
		return nil, err
	}
	return &Analysis{Contract: c, Symbols: engine.Symbols(), Program: program}, nil
}

// Parse returns the AST of source, or the first scan or syntax error.
func Parse(filename, source string) (*ast.Program, error) {
	program, parseErrors, scanErrors := parser.ParseSource(filename, source)

	if len(scanErrors) > 0 {
		se := scanErrors[0]
		return nil, errors.InvalidCharacter(position(filename, se.Position), se.Message, max(1, se.Length))
	}
	if len(parseErrors) > 0 {
		pe := parseErrors[0]
		return nil, errors.Syntax(position(filename, pe.Position), pe.Message, pe.Found, keywords)
	}
	if program == nil {
		return nil, errors.Internal("parser returned no program")
	}
	return program, nil
}

func position(filename string, pos parser.Position) ast.Position {
	return ast.Position{Filename: filename, Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

func IsParseError(err error) bool {
	return isKind(err, errors.KindParse)
}

func IsVisitError(err error) bool {
	return isKind(err, errors.KindVisit)
}

func IsInternalError(err error) bool {
	return isKind(err, errors.KindInternal)
}

func IsIOError(err error) bool {
	return isKind(err, errors.KindIO)
}

func isKind(err error, kind errors.Kind) bool {
	k, ok := errors.KindOf(err)
	return ok && k == kind
}
