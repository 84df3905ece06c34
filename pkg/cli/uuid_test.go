package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUUIDSeeded(t *testing.T) {
	gen := func() string {
		var buf bytes.Buffer
		require.NoError(t, runUUID(&buf, 3, "42"))
		return buf.String()
	}
	a, b := gen(), gen()
	assert.Equal(t, a, b)

	lines := strings.Split(strings.TrimRight(a, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, l)
	}
	assert.NotEqual(t, lines[0], lines[1])
}

func TestRunUUIDUnseeded(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, runUUID(&a, 1, ""))
	require.NoError(t, runUUID(&b, 1, ""))
	assert.NotEqual(t, a.String(), b.String())
}

func TestRunUUIDErrors(t *testing.T) {
	assert.Error(t, runUUID(&bytes.Buffer{}, 0, ""))
	assert.Error(t, runUUID(&bytes.Buffer{}, 1, "bogus"))
}
