package errors

import (
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"scilla/internal/ast"
)

// Kind classifies an Error by the stage that produced it
type Kind int

const (
	// KindParse is malformed source reported by the scanner or parser
	KindParse Kind = iota + 1
	// KindVisit is a conversion hook rejecting an AST shape
	KindVisit
	// KindInternal is an operand stack or engine state violation
	KindInternal
	// KindIO is a failure to read a source file
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindVisit:
		return "visit error"
	case KindInternal:
		return "internal error"
	case KindIO:
		return "io error"
	default:
		return "error"
	}
}

// Error is the single error type returned by the parsing pipeline
type Error struct {
	Kind        Kind
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    ast.Position // Location in source, zero when unknown
	Length      int          // Length of the problematic region
	Suggestions []string     // Suggested fixes
	Notes       []string     // Additional context notes
	Err         error        // Wrapped cause, carries a stack trace
}

// Sentinels for errors.Is; they match any error of the same kind.
var (
	ErrParse    = &Error{Kind: KindParse}
	ErrVisit    = &Error{Kind: KindVisit}
	ErrInternal = &Error{Kind: KindInternal}
	ErrIO       = &Error{Kind: KindIO}
)

// Parse reports malformed source at pos.
func Parse(pos ast.Position, msg string) *Error {
	return &Error{Kind: KindParse, Code: ErrorSyntax, Message: msg, Position: pos, Length: 1}
}

// Visit reports a conversion hook failure at pos.
func Visit(pos ast.Position, format string, args ...any) *Error {
	return &Error{Kind: KindVisit, Code: ErrorVisitFailed, Message: fmt.Sprintf(format, args...), Position: pos, Length: 1}
}

// Internal reports a broken lowering invariant. The cause records the
// caller's stack.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Code: ErrorStackMismatch, Err: pkgerrors.Errorf(format, args...)}
}

// IO wraps a failure to read path.
func IO(path string, err error) *Error {
	return &Error{Kind: KindIO, Code: ErrorFileAccess, Err: pkgerrors.Wrapf(err, "read %s", path)}
}

// WithCode replaces the default code of the error's kind.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// WithLength sets the length of the error span
func (e *Error) WithLength(length int) *Error {
	e.Length = length
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(message string) *Error {
	e.Suggestions = append(e.Suggestions, message)
	return e
}

// WithNote adds a context note to the error
func (e *Error) WithNote(note string) *Error {
	e.Notes = append(e.Notes, note)
	return e
}

// Text is the message without the position prefix.
func (e *Error) Text() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return e.Message + ": " + e.Err.Error()
	}
}

func (e *Error) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Position, e.Kind, e.Text())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Text())
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same kind, and of the same code when the target
// carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

// Format prints the wrapped stack trace for %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.Error())
			if e.Err != nil {
				fmt.Fprintf(s, "\n%+v", e.Err)
			}
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
