// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ax77/rcc/grammar"
	"github.com/ax77/rcc/internal/ident"
	"github.com/ax77/rcc/internal/keywords"
	"github.com/ax77/rcc/internal/lexer"
	"github.com/ax77/rcc/internal/report"
	"github.com/ax77/rcc/internal/token"
)

const PROMPT = ">> "

// Start runs the token REPL. Every line is echoed back highlighted, then
// lexed and dumped token by token. One interner lives for the whole
// session, so an identifier typed twice resolves to the same UID and the
// interner size only grows on genuinely new names.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)
	interner := ident.NewInterner(keywords.All())
	dim := color.New(color.Faint).SprintFunc()

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		if highlighted, err := grammar.Highlight(line); err == nil {
			fmt.Println(highlighted)
		}

		tokens, scanErrors := lexer.LexSourceWith(line, interner)

		reporter := report.NewReporter("<repl>", line)
		for _, scanErr := range scanErrors {
			fmt.Print(reporter.Format(report.Diagnostic{
				Code:     scanErr.Code,
				Message:  scanErr.Message,
				Position: scanErr.Position,
				Length:   scanErr.Length,
			}))
		}

		for _, t := range tokens {
			if t.Is(token.EOF) {
				continue
			}
			uid := ""
			if t.Ident != nil {
				uid = fmt.Sprintf("  uid=%d", t.Ident.UID)
			}
			fmt.Printf("  %-14s %q%s\n", t.Type, t.Lexeme, uid)
		}

		fmt.Println(dim(fmt.Sprintf("interned: %d names", interner.Len())))
	}
}
