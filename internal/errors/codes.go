package errors

// Error codes for the Scilla parser
// These codes are used in error messages and diagnostics
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Scanner and parser errors
// E0200-E0299: Lowering errors reported by conversion hooks
// E0900-E0999: Internal and tooling errors

const (
	// Parser errors (reserved range: E0100-E0199)

	// E0100: Unexpected token
	ErrorSyntax = "E0100"

	// E0101: Character that starts no token
	ErrorInvalidCharacter = "E0101"

	// Lowering errors (reserved range: E0200-E0299)

	// E0200: Generic hook failure
	ErrorVisitFailed = "E0200"

	// E0201: Function, polymorphic and type variable types
	ErrorUnsupportedType = "E0201"

	// E0202: Wrong number of type arguments for a built-in type
	ErrorTypeArity = "E0202"

	// E0203: Address interface on a type other than ByStr20
	ErrorInvalidAddress = "E0203"

	// E0204: Byte string width that is zero or out of range
	ErrorByteStringWidth = "E0204"

	// Internal and tooling errors (reserved range: E0900-E0999)

	// E0900: Operand stack held the wrong kind of object
	ErrorStackMismatch = "E0900"

	// E0901: Engine used outside its lifecycle
	ErrorEngineState = "E0901"

	// E0902: Stacks not empty after lowering
	ErrorUnbalancedStack = "E0902"

	// E0910: Source file could not be read
	ErrorFileAccess = "E0910"

	// E0911: Configuration file could not be loaded
	ErrorConfig = "E0911"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Source does not match the Scilla grammar"
	case ErrorInvalidCharacter:
		return "Character is not part of any Scilla token"
	case ErrorVisitFailed:
		return "Syntax tree node could not be lowered"
	case ErrorUnsupportedType:
		return "Type expression has no structural lowering"
	case ErrorTypeArity:
		return "Built-in type applied to the wrong number of arguments"
	case ErrorInvalidAddress:
		return "Address interfaces are only allowed on ByStr20"
	case ErrorByteStringWidth:
		return "Byte string width must be a positive integer"
	case ErrorStackMismatch:
		return "Operand stack held an unexpected object"
	case ErrorEngineState:
		return "Lowering engine used more than once"
	case ErrorUnbalancedStack:
		return "Lowering left objects on a stack"
	case ErrorFileAccess:
		return "Source file could not be read"
	case ErrorConfig:
		return "Configuration file is invalid"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Lowering"
	case code >= "E0900" && code < "E1000":
		return "Internal"
	default:
		return "Unknown"
	}
}
