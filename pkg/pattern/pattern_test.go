package pattern

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/dxcli/dx/internal/rng"
)

// sorted normalizes a rune set for comparison.
func sorted(chars []rune) []rune {
	out := append([]rune(nil), chars...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// genMatches compiles src, generates n strings, and checks each against
// the anchored verification regexp.
func genMatches(t *testing.T, src, verify string, n int) {
	t.Helper()
	p, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	re := regexp.MustCompile("^" + verify + "$")
	r := rng.New(42)
	for i := 0; i < n; i++ {
		s := p.Generate(r)
		if !re.MatchString(s) {
			t.Fatalf("Generate(%q) = %q, does not match %q", src, s, verify)
		}
	}
}

func TestGenerateShapes(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		verify string
	}{
		{"literal", "abc", "abc"},
		{"set", "[abc]", "[abc]"},
		{"range", "[a-z]{4}", "[a-z]{4}"},
		{"digits", `\d{3}`, "[0-9]{3}"},
		{"word", `\w+`, "[0-9A-Za-z_]{1,8}"},
		{"negated", "[^a-z]{5}", "[^a-z]{5}"},
		{"exact count", "x{3}", "xxx"},
		{"bounded count", "a{2,4}", "a{2,4}"},
		{"optional", "ab?", "ab?"},
		{"star", "a*", "a{0,8}"},
		{"plus", "a+", "a{1,8}"},
		{"alternation", "(ab|cd)", "(ab|cd)"},
		{"top-level alternation", "ab|cd", "(ab|cd)"},
		{"escape literal", `\.\d`, `\.[0-9]`},
		{"licence plate", `[A-Z]{3}-\d{4}`, "[A-Z]{3}-[0-9]{4}"},
		{"ssn", `\d{3}-\d{2}-\d{4}`, "[0-9]{3}-[0-9]{2}-[0-9]{4}"},
		{"nested group", "(a(b|c)){2}", "(a(b|c)){2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genMatches(t, tt.src, tt.verify, 200)
		})
	}
}

func TestDotIsPrintableASCII(t *testing.T) {
	p, err := Compile(".")
	if err != nil {
		t.Fatal(err)
	}
	r := rng.New(1)
	for i := 0; i < 500; i++ {
		s := p.Generate(r)
		if len(s) != 1 || s[0] < 0x20 || s[0] > 0x7E {
			t.Fatalf("dot produced %q", s)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	const src = `(foo|bar)-[a-f0-9]{8}\d*`
	p, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	a := rng.New(1234)
	b := rng.New(1234)
	for i := 0; i < 50; i++ {
		if x, y := p.Generate(a), p.Generate(b); x != y {
			t.Fatalf("draw %d diverged: %q != %q", i, x, y)
		}
	}
}

func TestMaxRepeatOption(t *testing.T) {
	p, err := Compile("a+", WithMaxRepeat(3))
	if err != nil {
		t.Fatal(err)
	}
	r := rng.New(5)
	for i := 0; i < 200; i++ {
		if n := len(p.Generate(r)); n < 1 || n > 3 {
			t.Fatalf("a+ with ceiling 3 generated %d characters", n)
		}
	}
}

func TestAlternationCoversBranches(t *testing.T) {
	p, err := Compile("(a|b|c)")
	if err != nil {
		t.Fatal(err)
	}
	r := rng.New(77)
	seen := map[string]int{}
	for i := 0; i < 3000; i++ {
		seen[p.Generate(r)]++
	}
	for _, branch := range []string{"a", "b", "c"} {
		if seen[branch] < 800 {
			t.Fatalf("branch %q drawn only %d of 3000 times", branch, seen[branch])
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed class", "[abc"},
		{"empty class", "[]"},
		{"unmatched close", "ab)"},
		{"unclosed group", "(ab"},
		{"leading quantifier", "*a"},
		{"double quantifier", "a**"},
		{"bad bound", "a{x}"},
		{"inverted bound", "a{5,2}"},
		{"inverted range", "[z-a]"},
		{"trailing backslash", `ab\`},
		{"unclosed bound", "a{2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded", tt.src)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Compile(%q) returned %T, want *pattern.Error", tt.src, err)
			}
			if perr.Position < 0 || perr.Position > len(tt.src) {
				t.Fatalf("error position %d outside source", perr.Position)
			}
		})
	}
}

func TestNegatedClassSet(t *testing.T) {
	got := subtract([]rune("abcde"), []rune("bd"))
	if string(sorted(got)) != "ace" {
		t.Fatalf("subtract = %q, want %q", string(got), "ace")
	}
}

func TestErrorMessageIncludesPosition(t *testing.T) {
	_, err := Compile("ab[")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "at 2") {
		t.Fatalf("error %q does not report position 2", err.Error())
	}
}
