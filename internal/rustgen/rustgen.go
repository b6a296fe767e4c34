// Package rustgen renders the Rust keyword table consumed by the
// companion tokenizer: a Keywords struct holding one shared identifier
// record per keyword, a constructor assigning each record its rank, and
// the id-map builder the tokenizer resolves names through. The three
// blocks are spliced into the tokenizer's tok_maps module by the build.
package rustgen

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"github.com/ax77/rcc/internal/keywords"
)

const structText = `pub struct Keywords {
{{- range .}}
    pub {{.}}_id: shared_ptr<Ident>,
{{- end}}
}
`

const constructorText = `impl Keywords {
    pub fn new() -> Self {
        Keywords {
{{- range $rank, $kw := .}}
            {{$kw}}_id: shared_ptr::new(Ident::new("{{$kw}}".to_string(), {{$rank}})),
{{- end}}
        }
    }
}
`

const lookupText = `pub fn make_id_map(keywords: &Keywords) -> HashMap<String, shared_ptr<Ident>> {
    let mut idmap: HashMap<String, shared_ptr<Ident>> = HashMap::new();
{{- range .}}
    idmap.insert("{{.}}".to_string(), shared_ptr::_cloneref(&keywords.{{.}}_id));
{{- end}}
    return idmap;
}
`

var (
	structTmpl      = template.Must(template.New("struct").Parse(structText))
	constructorTmpl = template.Must(template.New("constructor").Parse(constructorText))
	lookupTmpl      = template.Must(template.New("lookup").Parse(lookupText))
)

// RenderStructBlock renders the Keywords struct declaration: one
// <keyword>_id field per entry, in the order given. words must already
// be normalized; see keywords.Normalize.
func RenderStructBlock(words []string) (string, error) {
	return execute(structTmpl, words)
}

// RenderConstructorBlock renders the Keywords constructor. Each field is
// initialized with a fresh identifier record carrying the keyword text
// and its rank, which is its index in words.
func RenderConstructorBlock(words []string) (string, error) {
	return execute(constructorTmpl, words)
}

// RenderLookupBlock renders make_id_map, which maps each keyword text to
// a clone of the reference held by the corresponding struct field, so
// map and struct share one record per keyword.
func RenderLookupBlock(words []string) (string, error) {
	return execute(lookupTmpl, words)
}

func execute(tmpl *template.Template, words []string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, words); err != nil {
		return "", fmt.Errorf("rendering %s block: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// Emit normalizes words and writes the three blocks to w in their fixed
// order: struct, constructor, lookup builder. Each block is followed by
// a blank line so the output can be pasted between other items.
func Emit(w io.Writer, words []string) error {
	normalized, err := keywords.Normalize(words)
	if err != nil {
		return err
	}
	renderers := []func([]string) (string, error){
		RenderStructBlock,
		RenderConstructorBlock,
		RenderLookupBlock,
	}
	for _, render := range renderers {
		block, err := render(normalized)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", block); err != nil {
			return fmt.Errorf("writing keyword table: %w", err)
		}
	}
	return nil
}
