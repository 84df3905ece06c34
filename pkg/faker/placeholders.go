package faker

import (
	"strings"

	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/charset"
)

// Numerify replaces every '#' in s with a random digit. All other
// characters keep their positions.
func Numerify(r *rng.RNG, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '#' {
			b.WriteByte(charset.Digits[r.IntN(10)])
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Letterify replaces every '?' in s with a random lowercase letter.
func Letterify(r *rng.RNG, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '?' {
			b.WriteByte(charset.AlphaLower[r.IntN(26)])
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Bothify applies both the '#' and '?' substitutions.
func Bothify(r *rng.RNG, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '#':
			b.WriteByte(charset.Digits[r.IntN(10)])
		case '?':
			b.WriteByte(charset.AlphaLower[r.IntN(26)])
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

const exemplifyAlnum = charset.AlphaLower + charset.AlphaUpper + charset.Digits

// Exemplify rewrites backslash classes: \d becomes a digit, \w an
// alphanumeric, \W a symbol, and \\ a literal backslash. Everything else
// passes through unchanged.
func Exemplify(r *rng.RNG, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'd':
			b.WriteByte(charset.Digits[r.IntN(10)])
		case 'w':
			b.WriteByte(exemplifyAlnum[r.IntN(len(exemplifyAlnum))])
		case 'W':
			b.WriteByte(charset.Symbols[r.IntN(len(charset.Symbols))])
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(s[i])
			continue
		}
		i++
	}
	return b.String()
}
