package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	exprlang "github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/dxcli/dx/internal/dict"
	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/cli/internal/output"
	"github.com/dxcli/dx/pkg/faker"
)

var (
	fakeSeed        string
	fakeCount       int
	fakeUnique      bool
	fakeRetries     int
	fakeNullProb    float64
	fakeWhere       string
	fakeDicts       []string
	fakeInteractive bool
)

var fakeCmd = &cobra.Command{
	Use:   "fake",
	Short: "Generate fake data from templates and expressions",
	Long: `Generate fake data from templates and expressions.

Templates mix literal text with {provider} holes and {{ expression }}
holes. With a fixed --seed the output is fully reproducible.

Examples:
  dx fake template '{first_name} {last_name} <{email}>' --seed 42
  dx fake template '{{numerify('###-##-####')}}' --count 10 --unique
  dx fake expr 'number(1, 100)' --count 5 --where 'int(value) > 50'
  dx fake providers
  dx fake -i`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fakeInteractive {
			return runInteractive(cmd.OutOrStdout())
		}
		return cmd.Help()
	},
}

var fakeTemplateCmd = &cobra.Command{
	Use:   "template <template>",
	Short: "Render a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := fakeOptionsFromFlags()
		if err != nil {
			return err
		}
		return runFake(cmd.OutOrStdout(), args[0], opts)
	},
}

var fakeExprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Evaluate a bare expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := fakeOptionsFromFlags()
		if err != nil {
			return err
		}
		opts.bare = true
		return runFake(cmd.OutOrStdout(), args[0], opts)
	},
}

var fakeProvidersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := fakeOptionsFromFlags()
		if err != nil {
			return err
		}
		f, err := newFaker(opts)
		if err != nil {
			return err
		}
		names := f.Providers().Names()
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), names)
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// fakeOptions is the resolved generation configuration, after flags have
// been layered over file and environment config.
type fakeOptions struct {
	seed      string
	count     int
	unique    bool
	retries   int
	nullProb  float64
	maxRepeat int
	where     string
	dicts     []string

	// bare evaluates src as a single expression instead of a template.
	bare bool
}

func fakeOptionsFromFlags() (fakeOptions, error) {
	opts := fakeOptions{
		seed:      cfg.Seed,
		count:     cfg.Count,
		retries:   cfg.Retries,
		nullProb:  cfg.NullProb,
		maxRepeat: cfg.MaxRepeat,
		dicts:     append([]string(nil), cfg.Dicts...),
	}
	if fakeSeed != "" {
		opts.seed = fakeSeed
	}
	if fakeCmd.PersistentFlags().Changed("count") {
		opts.count = fakeCount
	}
	if fakeCmd.PersistentFlags().Changed("retries") {
		opts.retries = fakeRetries
	}
	if fakeCmd.PersistentFlags().Changed("null-prob") {
		opts.nullProb = fakeNullProb
	}
	opts.unique = fakeUnique
	opts.where = fakeWhere
	opts.dicts = append(opts.dicts, fakeDicts...)

	if opts.count < 0 {
		return opts, fmt.Errorf("count must not be negative, got %d", opts.count)
	}
	return opts, nil
}

// newFaker builds the generation kernel for one command invocation.
func newFaker(opts fakeOptions) (*faker.Faker, error) {
	var fopts []faker.Option
	if opts.seed != "" {
		seed, err := rng.ParseSeed(opts.seed)
		if err != nil {
			return nil, err
		}
		fopts = append(fopts, faker.WithSeed(seed))
	}
	if opts.maxRepeat > 0 {
		fopts = append(fopts, faker.WithMaxRepeat(opts.maxRepeat))
	}

	if len(opts.dicts) > 0 {
		d := dict.Default()
		for _, pattern := range opts.dicts {
			paths, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, fmt.Errorf("dict glob %q: %w", pattern, err)
			}
			if len(paths) == 0 {
				return nil, fmt.Errorf("dict glob %q matched no files", pattern)
			}
			for _, path := range paths {
				words, err := dict.LoadFile(path)
				if err != nil {
					return nil, err
				}
				name := dict.ListName(path)
				if err := d.Add(name, words); err != nil {
					return nil, err
				}
				logger.Debug("loaded word list", "name", name, "path", path, "words", len(words))
			}
		}
		fopts = append(fopts, faker.WithDictionaries(d))
	}

	return faker.New(fopts...)
}

// runFake renders src count times and writes one value per line. Null
// slots from --null-prob render as empty lines in text mode and JSON
// null in --json mode.
func runFake(w io.Writer, src string, opts fakeOptions) error {
	f, err := newFaker(opts)
	if err != nil {
		return err
	}

	keep, err := whereFilter(opts.where)
	if err != nil {
		return err
	}

	if opts.nullProb > 0 {
		vals, err := nullableValues(f, src, opts, keep)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(w, vals)
		}
		for _, v := range vals {
			if v == nil {
				fmt.Fprintln(w)
			} else {
				fmt.Fprintln(w, *v)
			}
		}
		return nil
	}

	vals, err := plainValues(f, src, opts, keep)
	if err != nil {
		return err
	}
	if jsonOutput {
		return output.JSON(w, vals)
	}
	for _, v := range vals {
		fmt.Fprintln(w, v)
	}
	return nil
}

// generateFn builds the per-slot generator, applying the --where
// predicate via a retry loop when one is set.
func generateFn(f *faker.Faker, src string, opts fakeOptions, keep func(string) bool) func() (string, error) {
	render := f.Render
	if opts.bare {
		render = f.Eval
	}
	if keep == nil {
		return func() (string, error) { return render(src) }
	}
	return func() (string, error) {
		return faker.Until(func() (string, error) { return render(src) }, keep, opts.retries)
	}
}

func plainValues(f *faker.Faker, src string, opts fakeOptions, keep func(string) bool) ([]string, error) {
	generate := generateFn(f, src, opts, keep)
	if opts.unique {
		return faker.BatchUnique(opts.count, opts.retries, generate)
	}
	return faker.Batch(opts.count, generate)
}

func nullableValues(f *faker.Faker, src string, opts fakeOptions, keep func(string) bool) ([]*string, error) {
	if opts.unique {
		return nil, errors.New("--unique and --null-prob cannot be combined")
	}
	generate := generateFn(f, src, opts, keep)
	return faker.BatchNullable(f.RNG(), opts.count, opts.nullProb, generate)
}

// whereFilter compiles a --where predicate. The expression sees each
// generated value as `value` and must yield a boolean.
func whereFilter(src string) (func(string) bool, error) {
	if src == "" {
		return nil, nil
	}
	env := map[string]interface{}{"value": ""}
	program, err := exprlang.Compile(src, exprlang.Env(env), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile --where %q: %w", src, err)
	}
	return func(v string) bool {
		out, err := exprlang.Run(program, map[string]interface{}{"value": v})
		if err != nil {
			logger.Debug("where predicate failed", "value", v, "error", err)
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}, nil
}

func init() {
	rootCmd.AddCommand(fakeCmd)
	fakeCmd.AddCommand(fakeTemplateCmd)
	fakeCmd.AddCommand(fakeExprCmd)
	fakeCmd.AddCommand(fakeProvidersCmd)

	fakeCmd.Flags().BoolVarP(&fakeInteractive, "interactive", "i", false, "Build the generation interactively")

	fakeCmd.PersistentFlags().StringVar(&fakeSeed, "seed", "", "Seed for reproducible output (unsigned decimal)")
	fakeCmd.PersistentFlags().IntVar(&fakeCount, "count", 1, "Number of values to generate")
	fakeCmd.PersistentFlags().BoolVar(&fakeUnique, "unique", false, "Require pairwise-distinct values")
	fakeCmd.PersistentFlags().IntVar(&fakeRetries, "retries", 1000, "Per-slot retry cap for --unique and --where")
	fakeCmd.PersistentFlags().Float64Var(&fakeNullProb, "null-prob", 0, "Probability of a null slot in [0, 1]")
	fakeCmd.PersistentFlags().StringVar(&fakeWhere, "where", "", "Keep only values matching this predicate (sees `value`)")
	fakeCmd.PersistentFlags().StringArrayVar(&fakeDicts, "dict", nil, "Glob of word list files to register (repeatable)")
}
