package errors

import (
	"fmt"

	"scilla/internal/ast"
)

// Syntax creates a parse error. When the offending token looks like a
// misspelt keyword, the closest keywords are suggested.
func Syntax(pos ast.Position, message, found string, keywords []string) *Error {
	err := Parse(pos, message).WithLength(max(1, len(found)))
	for _, kw := range findSimilarNames(found, keywords) {
		err = err.WithSuggestion(fmt.Sprintf("did you mean '%s'?", kw))
	}
	return err
}

// InvalidCharacter creates an error for input the lexer cannot tokenise
func InvalidCharacter(pos ast.Position, message string, length int) *Error {
	return Parse(pos, message).WithCode(ErrorInvalidCharacter).WithLength(length)
}

// UnsupportedType creates an error for type expressions without a
// structural lowering
func UnsupportedType(pos ast.Position, what string) *Error {
	return Visit(pos, "%s types are not supported", what).
		WithCode(ErrorUnsupportedType).
		WithNote("only data types can appear in parameters, fields and address interfaces")
}

// TypeArity creates an error for built-in types applied to the wrong number
// of arguments
func TypeArity(pos ast.Position, name string, expected, actual int) *Error {
	return Visit(pos, "type '%s' expects %d argument(s), got %d", name, expected, actual).
		WithCode(ErrorTypeArity)
}

// InvalidAddress creates an error for an address interface attached to a
// type other than ByStr20
func InvalidAddress(pos ast.Position, name string) *Error {
	return Visit(pos, "address interface on '%s'", name).
		WithCode(ErrorInvalidAddress).
		WithSuggestion("use 'ByStr20 with ... end'")
}

// ByteStringWidth creates an error for a ByStr<N> type whose width is zero
// or does not fit in an int
func ByteStringWidth(pos ast.Position, name string) *Error {
	return Visit(pos, "invalid byte string width in '%s'", name).
		WithCode(ErrorByteStringWidth)
}

// Config creates an error for a configuration file that cannot be read or
// decoded
func Config(path string, err error) *Error {
	return IO(path, err).WithCode(ErrorConfig)
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if target != candidate && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
