package faker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dxcli/dx/internal/rng"
)

func TestNumerify(t *testing.T) {
	r := rng.New(42)
	out := Numerify(r, "###-##-####")
	assert.Len(t, out, 11)
	for i, c := range out {
		if i == 3 || i == 6 {
			assert.Equal(t, byte('-'), out[i])
			continue
		}
		assert.True(t, c >= '0' && c <= '9', "position %d: %q", i, c)
	}
}

func TestLetterify(t *testing.T) {
	r := rng.New(1)
	out := Letterify(r, "??-9-??")
	assert.Len(t, out, 7)
	assert.Equal(t, "-9-", out[2:5])
	for _, i := range []int{0, 1, 5, 6} {
		assert.True(t, out[i] >= 'a' && out[i] <= 'z', "position %d: %q", i, out[i])
	}
}

func TestBothify(t *testing.T) {
	r := rng.New(7)
	out := Bothify(r, "#?#?")
	assert.Len(t, out, 4)
	assert.True(t, out[0] >= '0' && out[0] <= '9')
	assert.True(t, out[1] >= 'a' && out[1] <= 'z')
	assert.True(t, out[2] >= '0' && out[2] <= '9')
	assert.True(t, out[3] >= 'a' && out[3] <= 'z')
}

func TestExemplify(t *testing.T) {
	r := rng.New(3)
	out := Exemplify(r, `\d:\w:\W:\\:`)
	assert.Len(t, out, 8)
	assert.True(t, out[0] >= '0' && out[0] <= '9')
	assert.Equal(t, byte(':'), out[1])
	assert.True(t, strings.ContainsRune(exemplifyAlnum, rune(out[2])))
	assert.Equal(t, byte(':'), out[3])
	assert.NotContains(t, exemplifyAlnum, string(out[4]))
	assert.Equal(t, byte(':'), out[5])
	assert.Equal(t, byte('\\'), out[6])
	assert.Equal(t, byte(':'), out[7])
}

func TestExemplifyUnknownEscapePassesThrough(t *testing.T) {
	r := rng.New(0)
	assert.Equal(t, `\q`, Exemplify(r, `\q`))
	assert.Equal(t, `\`, Exemplify(r, `\`))
}

// Literal characters must not advance the stream: a placeholder's draws
// depend only on the number of substitutions before it.
func TestPlaceholderStreamIndependentOfLiterals(t *testing.T) {
	a := rng.New(99)
	b := rng.New(99)
	short := Numerify(a, "#")
	long := Numerify(b, "prefix # suffix")
	assert.Equal(t, short, strings.TrimSuffix(strings.TrimPrefix(long, "prefix "), " suffix"))
}

func TestPlaceholdersDeterministic(t *testing.T) {
	a := Bothify(rng.New(5), "##??##??")
	b := Bothify(rng.New(5), "##??##??")
	assert.Equal(t, a, b)
}
