package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ax77/rcc/internal/token"
)

// Level is the severity of a diagnostic.
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
)

// Diagnostic is one reportable problem anchored to a source location.
type Diagnostic struct {
	Level    Level
	Code     string // diagnostic code like L0001
	Message  string // primary message
	Position token.Position
	Length   int      // length of the problematic region
	Notes    []string // additional context notes
}

// Reporter formats diagnostics against one source file.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for a file.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a diagnostic with Rust-like styling: a coded header, the
// location, the offending source line and a caret marker under it.
func (r *Reporter) Format(d Diagnostic) string {
	var result strings.Builder

	lvl := d.Level
	if lvl == "" {
		lvl = Error
	}

	levelColor := getLevelColor(lvl)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[L0001]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(lvl)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(lvl)), d.Message))
	}

	// Location line: --> filename:line:column
	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))

	// Separator line
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Main error line with its marker
	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)),
			dim("│"),
			r.lines[d.Position.Line-1]))

		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), createMarker(d.Position.Column, d.Length, lvl)))
	}

	// Notes
	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	result.WriteString("\n")
	return result.String()
}

func getLevelColor(l Level) func(...interface{}) string {
	switch l {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the caret underline for a diagnostic.
func createMarker(column, length int, l Level) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := getLevelColor(l)
	return spaces + markerColor(strings.Repeat("^", length))
}

// lineNumberWidth calculates the gutter width for line numbers.
func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
