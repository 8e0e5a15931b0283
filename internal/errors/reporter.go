package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorReporter handles consistent error formatting and suggestions
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats an error with a source snippet. Errors without a
// position get the header and notes only.
func (er *ErrorReporter) FormatError(err *Error) string {
	var result strings.Builder

	levelColor := er.getKindColor(err.Kind)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0100]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor("error"), err.Code, err.Text()))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor("error"), err.Text()))
	}

	lineNumberWidth := er.getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	if err.Position.IsValid() {
		// Location line: --> filename:line:column
		result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
			indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

		// Line before, if any
		if err.Position.Line > 1 && err.Position.Line-1 < len(er.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line-1)),
				dim("│"),
				er.lines[err.Position.Line-2]))
		}

		if err.Position.Line <= len(er.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
				dim("│"),
				er.lines[err.Position.Line-1]))

			marker := er.createMarker(err.Position.Column, err.Length, err.Kind)
			result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
		}

		// Line after, if any
		if err.Position.Line < len(er.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line+1)),
				dim("│"),
				er.lines[err.Position.Line]))
		}
	}

	for i, suggestion := range err.Suggestions {
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		if i == 0 {
			result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
				indent, suggestionColor("help"), suggestionColor("try"), suggestion))
		} else {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				indent, suggestionColor("    "), suggestion))
		}
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.Kind == KindInternal {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), "the source parsed but its tree does not match the lowering rules"))
	}

	result.WriteString("\n")
	return result.String()
}

// getKindColor returns the color function for an error kind
func (er *ErrorReporter) getKindColor(kind Kind) func(...interface{}) string {
	switch kind {
	case KindInternal:
		return color.New(color.FgMagenta, color.Bold).SprintFunc()
	case KindIO:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, kind Kind) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))
	marker := strings.Repeat("^", length)
	return spaces + er.getKindColor(kind)(marker)
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
