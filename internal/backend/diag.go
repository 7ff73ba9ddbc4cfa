package backend

import (
	"io"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

func init() {
	register(&Spec{
		Name:      "diag",
		Extension: ".txt",
		New:       func() Backend { return &diag{} },
	})
}

// diag renders declarations as tagged lines with no target syntax. Its
// output is stable and is what conformance tests assert against.
type diag struct{}

func (*diag) Name() string { return "diag" }

func (*diag) BeginFile(io.Writer, *Config) error { return nil }

func (*diag) EndFile(io.Writer, *Config) error { return nil }

func (*diag) WriteStruct(w io.Writer, _ *Config, s *ir.StructDecl) error {
	var b strings.Builder
	b.WriteString("BEGIN STRUCT:" + s.ID.Original + "\n")
	for _, f := range s.Fields {
		switch {
		case f.IsSequence:
			b.WriteString("SEQ ")
		case f.IsMap:
			b.WriteString("MAP ")
		}
		b.WriteString("FIELD:" + f.ID.Renamed + "\n")
	}
	b.WriteString("END STRUCT:" + s.ID.Original + "\n")
	return flush(w, &b)
}

func (*diag) WriteConstEnum(w io.Writer, _ *Config, e *ir.ConstEnumDecl) error {
	var b strings.Builder
	b.WriteString("BEGIN ENUM:" + e.ID.Original + "\n")
	for _, c := range e.Cases {
		b.WriteString("CASE:" + c.ID.Renamed + "=" + diagLiteral(c.Discriminant) + "\n")
	}
	b.WriteString("END ENUM:" + e.ID.Original + "\n")
	return flush(w, &b)
}

func (*diag) WriteAlgebraicEnum(w io.Writer, _ *Config, e *ir.AlgebraicEnumDecl) error {
	var b strings.Builder
	b.WriteString("BEGIN ENUM:" + e.ID.Original + "\n")
	for _, c := range e.Cases {
		b.WriteString("CASE:" + c.ID.Renamed + "(" + ir.ShapeString(c.Payload.Shape) + ")\n")
	}
	b.WriteString("END ENUM:" + e.ID.Original + "\n")
	return flush(w, &b)
}

func diagLiteral(lit *ir.Literal) string {
	switch {
	case lit == nil:
		return ""
	case !lit.Supported():
		return "!UNSUPPORTED(" + lit.Raw + ")"
	default:
		return lit.Raw
	}
}
