// Package generate runs the full pipeline for one input: parse, collect,
// and dispatch to a backend.
package generate

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/phobologic/typeshare/internal/backend"
	"github.com/phobologic/typeshare/internal/collect"
	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/lang"
	"github.com/phobologic/typeshare/internal/logging"
	"github.com/phobologic/typeshare/internal/parse"
	"github.com/phobologic/typeshare/internal/refs"
)

// Options configures a run.
type Options struct {
	// Backend is a registered backend name or alias.
	Backend string
	// UseMarker restricts generation to items carrying #[typeshare].
	UseMarker bool
	// Version is printed in generated banners when non-empty.
	Version string
	// BackendOptions are forwarded to the backend unchanged.
	BackendOptions map[string]string
	Logger         *zap.SugaredLogger
}

// Generator holds the parser and backend spec for a sequence of inputs.
// It is not safe for concurrent use.
type Generator struct {
	opts   Options
	spec   *backend.Spec
	parser *sitter.Parser
	log    *zap.SugaredLogger
}

// New resolves the backend. An unknown name returns an error wrapping
// ir.ErrUnknownBackend.
func New(opts Options) (*Generator, error) {
	spec, err := backend.Lookup(opts.Backend)
	if err != nil {
		return nil, err
	}
	return &Generator{
		opts:   opts,
		spec:   spec,
		parser: lang.Languages["rust"].NewParser(),
		log:    logging.OrNop(opts.Logger).With(logging.FieldBackend, spec.Name),
	}, nil
}

// Extension is the output file extension of the selected backend.
func (g *Generator) Extension() string {
	return g.spec.Extension
}

// Source generates code for src and writes it to w. Nothing is written
// unless every stage succeeds.
func (g *Generator) Source(ctx context.Context, src []byte, w io.Writer) error {
	return g.run(ctx, src, w, g.log)
}

// File reads path and generates code for it. Read failures wrap
// ir.ErrSourceRead.
func (g *Generator) File(ctx context.Context, path string, w io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(ir.ErrSourceRead, "%s: %v", path, err)
	}
	if err := g.run(ctx, src, w, g.log.With(logging.FieldFile, path)); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

func (g *Generator) run(ctx context.Context, src []byte, w io.Writer, log *zap.SugaredLogger) error {
	items, err := parse.File(ctx, g.parser, src)
	if err != nil {
		return err
	}

	c := collect.New(collect.Options{UseMarker: g.opts.UseMarker, Logger: log})
	coll, err := c.Collect(items)
	if err != nil {
		log.Debugw("discarding collected declarations", logging.FieldCount, c.Partial().Len())
		return err
	}
	log.Debugw("collected declarations",
		"structs", len(coll.Structs),
		"enums", len(coll.Enums),
	)
	if ext := refs.External(coll); len(ext) > 0 {
		log.Debugw("external type references", "types", ext, logging.FieldCount, len(ext))
	}

	cfg := &backend.Config{
		Version:    g.opts.Version,
		Options:    g.opts.BackendOptions,
		Declared:   refs.Declared(coll),
		References: refs.Edges(coll),
	}

	var buf bytes.Buffer
	if err := backend.Dispatch(&buf, g.spec.New(), cfg, coll); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "writing output")
}

// Source runs a one-off Generator over src.
func Source(ctx context.Context, src []byte, w io.Writer, opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}
	return g.Source(ctx, src, w)
}

// File runs a one-off Generator over the file at path.
func File(ctx context.Context, path string, w io.Writer, opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}
	return g.File(ctx, path, w)
}
