package backend

import (
	"io"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

func init() {
	register(&Spec{
		Name:      "typescript",
		Aliases:   []string{"ts"},
		Extension: ".ts",
		New:       func() Backend { return &typeScript{} },
	})
}

var typeScriptTypes = map[string]string{
	"String": "string",
	"str":    "string",
	"&str":   "string",
	"char":   "string",
	"i8":     "number",
	"i16":    "number",
	"i32":    "number",
	"i64":    "number",
	"u8":     "number",
	"u16":    "number",
	"u32":    "number",
	"u64":    "number",
	"isize":  "number",
	"usize":  "number",
	"f32":    "number",
	"f64":    "number",
	"bool":   "boolean",
}

type typeScript struct{}

func (*typeScript) Name() string { return "typescript" }

func (*typeScript) types() *typeMapper {
	return &typeMapper{
		mapping: typeScriptTypes,
		sequence: func(elem string) string {
			if strings.Contains(elem, " ") {
				return "(" + elem + ")[]"
			}
			return elem + "[]"
		},
		dict:     func(k, v string) string { return "Record<" + k + ", " + v + ">" },
		optional: func(inner string) string { return inner + " | undefined" },
	}
}

func (*typeScript) BeginFile(w io.Writer, cfg *Config) error {
	_, err := io.WriteString(w, banner("//", cfg.Version))
	return err
}

func (*typeScript) EndFile(io.Writer, *Config) error { return nil }

func (t *typeScript) WriteStruct(w io.Writer, _ *Config, s *ir.StructDecl) error {
	types := t.types()

	var b strings.Builder
	commentLines(&b, 0, "//", s.Comments)
	b.WriteString("export interface " + s.ID.Original + " {\n")
	for _, f := range s.Fields {
		commentLines(&b, 1, "//", f.Comments)
		shape, optional := ir.Unwrap(f.Shape)
		b.WriteString("\t" + tsProperty(f.ID.Renamed))
		if optional {
			b.WriteString("?")
		}
		b.WriteString(": " + types.render(shape) + ";\n")
	}
	b.WriteString("}\n\n")
	return flush(w, &b)
}

func (*typeScript) WriteConstEnum(w io.Writer, _ *Config, e *ir.ConstEnumDecl) error {
	var b strings.Builder
	commentLines(&b, 0, "//", e.Comments)
	b.WriteString("export enum " + e.ID.Original + " {\n")
	for _, c := range e.Cases {
		commentLines(&b, 1, "//", c.Comments)
		b.WriteString("\t" + tsProperty(c.ID.Renamed) + " = " + tsLiteral(c) + ",\n")
	}
	b.WriteString("}\n\n")
	return flush(w, &b)
}

func (t *typeScript) WriteAlgebraicEnum(w io.Writer, _ *Config, e *ir.AlgebraicEnumDecl) error {
	types := t.types()

	var b strings.Builder
	commentLines(&b, 0, "//", e.Comments)
	b.WriteString("export type " + e.ID.Original + " = \n")
	for i, c := range e.Cases {
		commentLines(&b, 1, "//", c.Comments)
		b.WriteString("\t| " + types.render(c.Payload.Shape))
		if i == len(e.Cases)-1 {
			b.WriteString(";")
		}
		b.WriteString("\n")
	}
	if len(e.Cases) == 0 {
		b.WriteString("\tnever;\n")
	}
	b.WriteString("\n")
	return flush(w, &b)
}

// tsLiteral renders a case value. Enum members must be numbers or strings,
// so everything that is not numeric is emitted as a string.
func tsLiteral(c ir.ConstCase) string {
	lit := c.Discriminant
	switch {
	case lit == nil:
		return quoted(c.ID.Renamed)
	case !lit.Supported():
		return "/* unsupported literal: " + lit.Raw + " */"
	}
	switch lit.Kind {
	case ir.LiteralInt, ir.LiteralFloat, ir.LiteralByte:
		return lit.Value
	default:
		return quoted(lit.Value)
	}
}

// tsProperty quotes names that are not valid identifiers.
func tsProperty(name string) string {
	if isIdent(name) {
		return name
	}
	return quoted(name)
}
