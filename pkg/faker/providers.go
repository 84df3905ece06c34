package faker

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/dxcli/dx/internal/dict"
	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/template"
)

// defaultProviders builds the simple-hole provider set. Word-list
// providers draw from the dictionary registry so user-supplied lists
// override the built-in data; the rest delegate to gofakeit, which
// shares the faker's PCG source.
func defaultProviders(d *dict.Registry, gf *gofakeit.Faker) *template.ProviderRegistry {
	pr := template.NewProviderRegistry()

	fromList := func(list string) template.Provider {
		return func(r *rng.RNG) (string, error) {
			words, ok := d.Lookup(list)
			if !ok {
				return "", &template.UnknownProviderError{Name: list, Pos: -1}
			}
			return r.Pick(words)
		}
	}

	pr.MustRegister("first_name", fromList("first_names"))
	pr.MustRegister("last_name", fromList("last_names"))
	pr.MustRegister("city", fromList("cities"))
	pr.MustRegister("country", fromList("countries"))
	pr.MustRegister("street", fromList("streets"))
	pr.MustRegister("noun", fromList("nouns"))
	pr.MustRegister("adjective", fromList("adjectives"))
	pr.MustRegister("verb", fromList("verbs"))
	pr.MustRegister("word", fromList("words"))
	pr.MustRegister("color", fromList("colors"))
	pr.MustRegister("domain", fromList("domains"))

	pr.MustRegister("name", func(r *rng.RNG) (string, error) {
		first, err := fromList("first_names")(r)
		if err != nil {
			return "", err
		}
		last, err := fromList("last_names")(r)
		if err != nil {
			return "", err
		}
		return first + " " + last, nil
	})

	fromFake := func(fn func() string) template.Provider {
		return func(r *rng.RNG) (string, error) { return fn(), nil }
	}

	pr.MustRegister("email", fromFake(gf.Email))
	pr.MustRegister("url", fromFake(gf.URL))
	pr.MustRegister("phone", fromFake(gf.Phone))
	pr.MustRegister("company", fromFake(gf.Company))
	pr.MustRegister("job_title", fromFake(gf.JobTitle))
	pr.MustRegister("user_agent", fromFake(gf.UserAgent))
	pr.MustRegister("ipv4", fromFake(gf.IPv4Address))
	pr.MustRegister("ipv6", fromFake(gf.IPv6Address))
	pr.MustRegister("mac_address", fromFake(gf.MacAddress))
	pr.MustRegister("hex_color", fromFake(gf.HexColor))
	pr.MustRegister("ssn", fromFake(gf.SSN))
	pr.MustRegister("currency_code", func(r *rng.RNG) (string, error) {
		return gf.CurrencyShort(), nil
	})
	pr.MustRegister("credit_card", func(r *rng.RNG) (string, error) {
		return gf.CreditCardNumber(nil), nil
	})
	pr.MustRegister("latitude", func(r *rng.RNG) (string, error) {
		return strconv.FormatFloat(gf.Latitude(), 'f', 6, 64), nil
	})
	pr.MustRegister("longitude", func(r *rng.RNG) (string, error) {
		return strconv.FormatFloat(gf.Longitude(), 'f', 6, 64), nil
	})

	pr.MustRegister("uuid", func(r *rng.RNG) (string, error) {
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return "", err
		}
		return id.String(), nil
	})
	pr.MustRegister("boolean", func(r *rng.RNG) (string, error) {
		b, err := r.Bernoulli(0.5)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	})

	return pr
}
