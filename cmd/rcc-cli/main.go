// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ax77/rcc/internal/lexer"
	"github.com/ax77/rcc/internal/report"
	"github.com/ax77/rcc/internal/token"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: rcc-cli <file.rs>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	tokens, scanErrors := lexer.LexSource(string(source))

	reporter := report.NewReporter(path, string(source))
	for _, scanErr := range scanErrors {
		fmt.Print(reporter.Format(report.Diagnostic{
			Code:     scanErr.Code,
			Message:  scanErr.Message,
			Position: scanErr.Position,
			Length:   scanErr.Length,
		}))
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if len(scanErrors) > 0 {
		color.Red("Tokenizing failed after %s", formattedDuration)
		os.Exit(1)
	}

	printTokens(tokens)
	color.Green("Successfully tokenized %s in %s", path, formattedDuration)
}

// printTokens dumps the cooked stream, one token per line: position,
// type, lexeme, then the interned UID and grouping flags when present.
func printTokens(tokens []token.Token) {
	for _, t := range tokens {
		if t.Is(token.EOF) {
			break
		}

		extra := ""
		if t.Ident != nil {
			extra = fmt.Sprintf("  uid=%d", t.Ident.UID)
		}
		if t.Flags != 0 {
			extra += fmt.Sprintf("  [%s]", t.Flags)
		}

		fmt.Printf("%4d:%-4d %-18s %q%s\n",
			t.Position.Line, t.Position.Column, t.Type, t.Lexeme, extra)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
