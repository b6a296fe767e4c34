// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/ax77/rcc/internal/keywords"
	"github.com/ax77/rcc/internal/rustgen"
)

// rcc-kwgen prints the generated Rust keyword table to stdout: the
// Keywords struct, its constructor and the make_id_map builder, derived
// from the compiled-in keyword list. Redirect the output into the
// tokenizer's tok_maps module to regenerate it.
func main() {
	if err := rustgen.Emit(os.Stdout, keywords.All()); err != nil {
		fmt.Fprintf(os.Stderr, "rcc-kwgen: %v\n", err)
		os.Exit(1)
	}
}
