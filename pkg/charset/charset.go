// Package charset builds character sets from class flags and generates
// fixed-length random strings over them.
package charset

import (
	"strings"

	"github.com/dxcli/dx/internal/rng"
)

// Fixed character classes.
const (
	AlphaLower = "abcdefghijklmnopqrstuvwxyz"
	AlphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits     = "0123456789"
	Symbols    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Class is a bit set of character classes.
type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Symbol

	// Alphanumeric is the fallback when no class is requested.
	Alphanumeric = Lower | Upper | Digit
)

// Build concatenates the requested classes into a single charset string.
// An empty class set falls back to Alphanumeric.
func Build(classes Class) string {
	if classes == 0 {
		classes = Alphanumeric
	}
	var b strings.Builder
	if classes&Lower != 0 {
		b.WriteString(AlphaLower)
	}
	if classes&Upper != 0 {
		b.WriteString(AlphaUpper)
	}
	if classes&Digit != 0 {
		b.WriteString(Digits)
	}
	if classes&Symbol != 0 {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Random draws length characters uniformly from the given classes.
// There is no guarantee that every requested class is represented;
// draws are independent and reproducible under a fixed seed.
func Random(r *rng.RNG, length int, classes Class) string {
	if length <= 0 {
		return ""
	}
	set := Build(classes)
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(set[r.IntN(len(set))])
	}
	return b.String()
}

// Password is Random with the conventional flag spelling used by the CLI.
func Password(r *rng.RNG, length int, lower, upper, digits, symbols bool) string {
	var classes Class
	if lower {
		classes |= Lower
	}
	if upper {
		classes |= Upper
	}
	if digits {
		classes |= Digit
	}
	if symbols {
		classes |= Symbol
	}
	return Random(r, length, classes)
}
