package backend

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/typeshare/internal/collect"
	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/parse"
	"github.com/phobologic/typeshare/internal/refs"
)

// generate runs a fixture from testdata through the full pipeline.
func generate(t *testing.T, fixture, backend string, options map[string]string) []byte {
	t.Helper()

	src, err := os.ReadFile(filepath.Join("testdata", fixture+".rs"))
	require.NoError(t, err)
	items, err := parse.Rust(context.Background(), src)
	require.NoError(t, err)
	coll, err := collect.New(collect.Options{}).Collect(items)
	require.NoError(t, err)

	b, err := New(backend)
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg := &Config{
		Options:    options,
		Declared:   refs.Declared(coll),
		References: refs.Edges(coll),
	}
	require.NoError(t, Dispatch(&buf, b, cfg, coll))
	return buf.Bytes()
}

func TestGolden(t *testing.T) {
	t.Parallel()

	options := map[string]string{
		OptionPrefix:  "App",
		OptionPackage: "com.example.types",
	}
	cases := []struct {
		fixture  string
		backends []string
		options  map[string]string
	}{
		{"person", []string{"typescript", "swift"}, nil},
		{"rename", []string{"typescript", "swift"}, nil},
		{"rename_all", []string{"typescript", "swift"}, nil},
		{"colors", []string{"typescript", "swift"}, nil},
		{"bare_enum", []string{"typescript", "swift"}, nil},
		{"algebraic", []string{"typescript", "swift"}, nil},
		{"showcase", []string{"diag", "typescript", "swift", "java", "toon"}, options},
	}

	for _, tc := range cases {
		for _, name := range tc.backends {
			t.Run(tc.fixture+"/"+name, func(t *testing.T) {
				t.Parallel()
				g := goldie.New(t,
					goldie.WithFixtureDir("testdata/golden"),
					goldie.WithNameSuffix(".golden"),
				)
				g.Assert(t, tc.fixture+"."+name, generate(t, tc.fixture, name, tc.options))
			})
		}
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"diag", "java", "swift", "toon", "typescript"}, Names())

	spec, err := Lookup("ts")
	require.NoError(t, err)
	assert.Equal(t, "typescript", spec.Name)
	assert.Equal(t, ".ts", spec.Extension)

	b1, err := New("toon")
	require.NoError(t, err)
	b2, err := New("toon")
	require.NoError(t, err)
	assert.NotSame(t, b1, b2, "each run gets its own backend instance")
	assert.Equal(t, "toon", b1.Name())
}

func TestUnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := New("cobol")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ir.ErrUnknownBackend))
	assert.Contains(t, err.Error(), `"cobol"`)
	hints := errors.GetAllHints(err)
	require.NotEmpty(t, hints)
	assert.Contains(t, hints[0], "typescript")
}

// recorder logs every call it receives.
type recorder struct {
	calls  []string
	failOn string
}

func (r *recorder) Name() string { return "recorder" }

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if call == r.failOn {
		return errors.New("disk full")
	}
	return nil
}

func (r *recorder) BeginFile(io.Writer, *Config) error { return r.record("begin") }
func (r *recorder) EndFile(io.Writer, *Config) error   { return r.record("end") }

func (r *recorder) WriteStruct(_ io.Writer, _ *Config, s *ir.StructDecl) error {
	return r.record("struct " + s.ID.Original)
}

func (r *recorder) WriteConstEnum(_ io.Writer, _ *Config, e *ir.ConstEnumDecl) error {
	return r.record("const " + e.ID.Original)
}

func (r *recorder) WriteAlgebraicEnum(_ io.Writer, _ *Config, e *ir.AlgebraicEnumDecl) error {
	return r.record("algebraic " + e.ID.Original)
}

func orderedCollection() *ir.Collection {
	return &ir.Collection{
		Structs: []*ir.StructDecl{
			{ID: ir.NewIdentifier("StructB")},
			{ID: ir.NewIdentifier("StructD")},
		},
		Enums: []ir.EnumDecl{
			&ir.ConstEnumDecl{ID: ir.NewIdentifier("EnumA")},
			&ir.AlgebraicEnumDecl{ID: ir.NewIdentifier("EnumC")},
		},
	}
}

func TestDispatchOrder(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	require.NoError(t, Dispatch(io.Discard, r, &Config{}, orderedCollection()))
	assert.Equal(t, []string{
		"begin",
		"struct StructB",
		"struct StructD",
		"const EnumA",
		"algebraic EnumC",
		"end",
	}, r.calls)
}

func TestDispatchStopsOnError(t *testing.T) {
	t.Parallel()

	r := &recorder{failOn: "struct StructD"}
	err := Dispatch(io.Discard, r, &Config{}, orderedCollection())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "struct StructD")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "struct StructD", r.calls[len(r.calls)-1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestDispatchWriteError(t *testing.T) {
	t.Parallel()

	b, err := New("diag")
	require.NoError(t, err)
	err = Dispatch(failingWriter{}, b, &Config{}, orderedCollection())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "diag: struct StructB"), err.Error())
}

func TestBanner(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "// \n// Generated\n// \n\n", banner("//", ""))
	assert.Equal(t, "/// \n/// Generated by typeshare 1.2.0\n/// \n\n", banner("///", "1.2.0"))
}

func TestConfigNil(t *testing.T) {
	t.Parallel()

	var cfg *Config
	assert.Equal(t, "", cfg.Option(OptionPrefix))
	assert.False(t, cfg.IsDeclared("Person"))
}
