package lsp

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scilla/internal/errors"
)

// ConvertError transforms a lowering failure into LSP diagnostics for IDE
// display. A nil error yields an empty list, which clears stale diagnostics.
func ConvertError(err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	var serr *errors.Error
	if !pkgerrors.As(err, &serr) {
		return append(diagnostics, protocol.Diagnostic{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("scilla"),
			Message:  err.Error(),
		})
	}

	start := toPosition(serr.Position)
	end := start
	end.Character += uint32(max(1, serr.Length))

	message := serr.Text()
	if len(serr.Suggestions) > 0 {
		message += " (" + strings.Join(serr.Suggestions, "; ") + ")"
	}

	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: serr.Code},
		Source:   ptrString(diagnosticSource(serr.Kind)),
		Message:  message,
	})
}

func diagnosticSource(kind errors.Kind) string {
	switch kind {
	case errors.KindParse:
		return "scilla-parser"
	case errors.KindVisit:
		return "scilla-lowering"
	default:
		return "scilla"
	}
}
