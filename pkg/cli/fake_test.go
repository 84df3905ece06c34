package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxcli/dx/pkg/cliconfig"
)

func testOpts() fakeOptions {
	return fakeOptions{count: 1, retries: 1000}
}

func TestRunFakeDeterministic(t *testing.T) {
	opts := testOpts()
	opts.seed = "42"
	opts.count = 5

	render := func() string {
		var buf bytes.Buffer
		err := runFake(&buf, `{first_name} {{numerify('###')}}`, opts)
		require.NoError(t, err)
		return buf.String()
	}
	a, b := render(), render()
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimRight(a, "\n"), "\n"), 5)
}

func TestRunFakeUnique(t *testing.T) {
	opts := testOpts()
	opts.seed = "42"
	opts.count = 5
	opts.unique = true

	var buf bytes.Buffer
	require.NoError(t, runFake(&buf, `{{letterify('??')}}`, opts))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	seen := map[string]struct{}{}
	for _, l := range lines {
		_, dup := seen[l]
		assert.False(t, dup, "duplicate %q", l)
		seen[l] = struct{}{}
	}
}

func TestRunFakeWhere(t *testing.T) {
	opts := testOpts()
	opts.seed = "7"
	opts.count = 20
	opts.where = `int(value) > 50`

	var buf bytes.Buffer
	require.NoError(t, runFake(&buf, `{{number(1, 100)}}`, opts))
	for _, l := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		n, err := strconv.Atoi(l)
		require.NoError(t, err)
		assert.Greater(t, n, 50)
	}
}

func TestRunFakeWhereInvalid(t *testing.T) {
	opts := testOpts()
	opts.where = `value +` // incomplete expression
	err := runFake(&bytes.Buffer{}, `x`, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--where")
}

func TestRunFakeNullProb(t *testing.T) {
	opts := testOpts()
	opts.seed = "42"
	opts.count = 200
	opts.nullProb = 0.5

	var buf bytes.Buffer
	require.NoError(t, runFake(&buf, `v`, opts))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 200)

	empty := 0
	for _, l := range lines {
		if l == "" {
			empty++
		}
	}
	assert.Greater(t, empty, 60)
	assert.Less(t, empty, 140)
}

func TestRunFakeUniqueNullConflict(t *testing.T) {
	opts := testOpts()
	opts.unique = true
	opts.nullProb = 0.5
	err := runFake(&bytes.Buffer{}, `x`, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestRunFakeInvalidSeed(t *testing.T) {
	opts := testOpts()
	opts.seed = "not-a-seed"
	err := runFake(&bytes.Buffer{}, `x`, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed")
}

func TestRunFakeParseErrorSurfaces(t *testing.T) {
	opts := testOpts()
	err := runFake(&bytes.Buffer{}, `{{unclosed`, opts)
	require.Error(t, err)
}

func TestNewFakerWithDicts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planets.txt")
	require.NoError(t, os.WriteFile(path, []byte("# solar system\nmercury\nvenus\n"), 0o644))

	opts := testOpts()
	opts.seed = "1"
	opts.dicts = []string{filepath.Join(dir, "*.txt")}

	var buf bytes.Buffer
	require.NoError(t, runFake(&buf, `{planets}`, opts))
	got := strings.TrimRight(buf.String(), "\n")
	assert.Contains(t, []string{"mercury", "venus"}, got)
}

func TestNewFakerDictGlobNoMatch(t *testing.T) {
	opts := testOpts()
	opts.dicts = []string{filepath.Join(t.TempDir(), "*.txt")}
	err := runFake(&bytes.Buffer{}, `x`, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched no files")
}

func TestFakeOptionsFromFlagsValidation(t *testing.T) {
	cfg = cliconfig.NewDefault()
	t.Cleanup(func() { cfg = nil })

	fakeCount = -1
	require.NoError(t, fakeCmd.PersistentFlags().Set("count", "-1"))
	t.Cleanup(func() {
		fakeCount = 1
		_ = fakeCmd.PersistentFlags().Set("count", "1")
	})

	_, err := fakeOptionsFromFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestRunFakeBareExpression(t *testing.T) {
	opts := testOpts()
	opts.seed = "42"
	opts.bare = true

	var buf bytes.Buffer
	require.NoError(t, runFake(&buf, `number(10, 20)`, opts))
	n, err := strconv.Atoi(strings.TrimRight(buf.String(), "\n"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 10)
	assert.LessOrEqual(t, n, 20)

	// Error offsets refer to the expression as typed, not to any
	// internal wrapping.
	buf.Reset()
	err = runFake(&buf, `number(1,`, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error at 9")
}

func TestFakeOptionsFromFlagsMaxRepeat(t *testing.T) {
	cfg = cliconfig.NewDefault()
	cfg.MaxRepeat = 3
	t.Cleanup(func() { cfg = nil })

	opts, err := fakeOptionsFromFlags()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.maxRepeat)
}

func TestRunFakeMaxRepeatCapsQuantifiers(t *testing.T) {
	opts := testOpts()
	opts.seed = "11"
	opts.count = 50
	opts.maxRepeat = 1

	var buf bytes.Buffer
	require.NoError(t, runFake(&buf, `{{regexify('a*')}}b`, opts))
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 2, "unbounded repeat not capped: %q", line)
	}
}
