// Package ollerr renders lexer/compiler diagnostics with source context,
// grounded on the teacher's internal/errors package. Unlike that package,
// Oliver's own lexer/compiler/evaluator never return a Go error for a
// language-level failure — those surface as a first-class *value.Error
// (spec §7) — so Diagnostic only covers the lex/compile stage. The lexer
// and compiler do not create Diagnostics: they never reject a malformed
// program, and nothing in the pipeline currently builds one.
package ollerr

import (
	"fmt"
	"strings"
)

// Position is a 1-indexed line/column, as reported by source.Reader.Position.
type Position struct {
	Line   int
	Column int
}

// Diagnostic is a single lex/compile failure with enough context to render
// a caret pointing at the offending column (teacher's CompilerError).
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Pos     Position
}

// New builds a Diagnostic.
func New(pos Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the uncolored rendering.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with its source line and a caret. When
// color is true it adds the teacher's ANSI bold/red sequences.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", d.Pos.Line, d.Pos.Column)
	}

	line := d.sourceLine(d.Pos.Line)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (d *Diagnostic) sourceLine(n int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatAll renders a batch of diagnostics, numbering them when there is
// more than one (teacher's FormatErrors).
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Compilation failed with %d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
