// Package format pretty-prints JSON, YAML, and XML documents for the
// dx fmt command.
package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the indent width for all formats.
const DefaultIndent = 2

// JSON re-indents a JSON document. An indent of 0 produces compact
// single-line output.
func JSON(data []byte, indent int) (string, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}
	if indent <= 0 {
		return oj.JSON(v), nil
	}
	return oj.JSON(v, indent), nil
}

// JSONPath extracts the values matching path from a JSON document. Each
// match is emitted as one compact JSON line.
func JSONPath(data []byte, path string) (string, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}
	expr, err := jp.ParseString(path)
	if err != nil {
		return "", fmt.Errorf("parse jsonpath %q: %w", path, err)
	}
	var b strings.Builder
	for _, m := range expr.Get(v) {
		b.WriteString(oj.JSON(m))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// YAML re-indents a YAML document.
func YAML(data []byte) (string, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("parse yaml: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(DefaultIndent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// XML re-indents an XML document.
func XML(data []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("parse xml: %w", err)
	}
	doc.Indent(DefaultIndent)
	out, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return out, nil
}
