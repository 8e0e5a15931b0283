package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Program level
	PROGRAM
	IMPORT_DECLARATIONS
	IMPORTED_NAME
	LIBRARY_DEFINITION
	LIBRARY_ENTRY
	TYPE_ALTERNATIVE_CLAUSE
	CONTRACT_DEFINITION
	WITH_CONSTRAINT
	CONTRACT_FIELD

	// Components
	COMPONENT_DEFINITION
	COMPONENT_ID
	COMPONENT_PARAMETERS
	PARAMETER_PAIR
	COMPONENT_BODY
	STATEMENT_BLOCK

	// Statements
	STATEMENT
	PATTERN_MATCH_CLAUSE
	MAP_ACCESS

	// Expressions
	FULL_EXPRESSION
	MESSAGE_ENTRY
	PATTERN_MATCH_EXPRESSION_CLAUSE
	ATOMIC_EXPRESSION
	VALUE_LITERAL
	BUILTIN_ARGUMENTS
	PATTERN
	ARGUMENT_PATTERN

	// Types
	TYPED_IDENTIFIER
	TYPE_ANNOTATION
	SCILLA_TYPE
	TYPE_ARGUMENT
	TYPE_MAP_KEY
	TYPE_MAP_VALUE
	TYPE_MAP_ENTRY
	ADDRESS_TYPE
	ADDRESS_TYPE_FIELD

	// Identifiers
	META_IDENTIFIER
	TYPE_NAME_IDENTIFIER
	VARIABLE_IDENTIFIER
	BYTE_STR
)

var nodeTypeNames = [...]string{
	ILLEGAL:                         "ILLEGAL",
	PROGRAM:                         "PROGRAM",
	IMPORT_DECLARATIONS:             "IMPORT_DECLARATIONS",
	IMPORTED_NAME:                   "IMPORTED_NAME",
	LIBRARY_DEFINITION:              "LIBRARY_DEFINITION",
	LIBRARY_ENTRY:                   "LIBRARY_ENTRY",
	TYPE_ALTERNATIVE_CLAUSE:         "TYPE_ALTERNATIVE_CLAUSE",
	CONTRACT_DEFINITION:             "CONTRACT_DEFINITION",
	WITH_CONSTRAINT:                 "WITH_CONSTRAINT",
	CONTRACT_FIELD:                  "CONTRACT_FIELD",
	COMPONENT_DEFINITION:            "COMPONENT_DEFINITION",
	COMPONENT_ID:                    "COMPONENT_ID",
	COMPONENT_PARAMETERS:            "COMPONENT_PARAMETERS",
	PARAMETER_PAIR:                  "PARAMETER_PAIR",
	COMPONENT_BODY:                  "COMPONENT_BODY",
	STATEMENT_BLOCK:                 "STATEMENT_BLOCK",
	STATEMENT:                       "STATEMENT",
	PATTERN_MATCH_CLAUSE:            "PATTERN_MATCH_CLAUSE",
	MAP_ACCESS:                      "MAP_ACCESS",
	FULL_EXPRESSION:                 "FULL_EXPRESSION",
	MESSAGE_ENTRY:                   "MESSAGE_ENTRY",
	PATTERN_MATCH_EXPRESSION_CLAUSE: "PATTERN_MATCH_EXPRESSION_CLAUSE",
	ATOMIC_EXPRESSION:               "ATOMIC_EXPRESSION",
	VALUE_LITERAL:                   "VALUE_LITERAL",
	BUILTIN_ARGUMENTS:               "BUILTIN_ARGUMENTS",
	PATTERN:                         "PATTERN",
	ARGUMENT_PATTERN:                "ARGUMENT_PATTERN",
	TYPED_IDENTIFIER:                "TYPED_IDENTIFIER",
	TYPE_ANNOTATION:                 "TYPE_ANNOTATION",
	SCILLA_TYPE:                     "SCILLA_TYPE",
	TYPE_ARGUMENT:                   "TYPE_ARGUMENT",
	TYPE_MAP_KEY:                    "TYPE_MAP_KEY",
	TYPE_MAP_VALUE:                  "TYPE_MAP_VALUE",
	TYPE_MAP_ENTRY:                  "TYPE_MAP_ENTRY",
	ADDRESS_TYPE:                    "ADDRESS_TYPE",
	ADDRESS_TYPE_FIELD:              "ADDRESS_TYPE_FIELD",
	META_IDENTIFIER:                 "META_IDENTIFIER",
	TYPE_NAME_IDENTIFIER:            "TYPE_NAME_IDENTIFIER",
	VARIABLE_IDENTIFIER:             "VARIABLE_IDENTIFIER",
	BYTE_STR:                        "BYTE_STR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}
