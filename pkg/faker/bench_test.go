package faker

import (
	"testing"

	"github.com/dxcli/dx/pkg/template"
)

func BenchmarkRenderTemplate(b *testing.B) {
	f, err := New(WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	t, err := template.Parse(`{first_name} {last_name} <{email}> {{numerify('###-##-####')}}`)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.RenderTemplate(t); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	f, err := New(WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Eval(`weighted([['a', 3], ['b', 1]])`); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegexify(b *testing.B) {
	f, err := New(WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Regexify(`[A-Z]{2}[0-9]{2} [0-9]{4} [0-9]{4}`); err != nil {
			b.Fatal(err)
		}
	}
}
