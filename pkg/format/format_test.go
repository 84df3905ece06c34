package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONIndent(t *testing.T) {
	out, err := JSON([]byte(`{"b":1,"a":[2,3]}`), 2)
	require.NoError(t, err)
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, `"a": [`)
}

func TestJSONCompact(t *testing.T) {
	out, err := JSON([]byte("{\n  \"a\": 1\n}"), 0)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestJSONInvalid(t *testing.T) {
	_, err := JSON([]byte(`{"a":`), 2)
	assert.Error(t, err)
}

func TestJSONPath(t *testing.T) {
	doc := []byte(`{"users":[{"name":"ada"},{"name":"bob"}]}`)
	out, err := JSONPath(doc, "$.users[*].name")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{`"ada"`, `"bob"`}, lines)
}

func TestJSONPathNoMatch(t *testing.T) {
	out, err := JSONPath([]byte(`{"a":1}`), "$.missing")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestJSONPathInvalidExpr(t *testing.T) {
	_, err := JSONPath([]byte(`{}`), "$[")
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	out, err := YAML([]byte("b: 1\na:\n    - x\n    - y\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "a:\n")
	assert.Contains(t, out, "  - x\n")
}

func TestYAMLInvalid(t *testing.T) {
	_, err := YAML([]byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestXML(t *testing.T) {
	out, err := XML([]byte(`<root><item id="1">a</item><item id="2">b</item></root>`))
	require.NoError(t, err)
	assert.Contains(t, out, "\n  <item id=\"1\">a</item>")
}

func TestXMLInvalid(t *testing.T) {
	_, err := XML([]byte(`<root><unclosed>`))
	assert.Error(t, err)
}
