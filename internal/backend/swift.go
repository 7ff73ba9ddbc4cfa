package backend

import (
	"io"
	"strconv"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

func init() {
	register(&Spec{
		Name:      "swift",
		Extension: ".swift",
		New:       func() Backend { return &swift{} },
	})
}

var swiftTypes = map[string]string{
	"String": "String",
	"str":    "String",
	"&str":   "String",
	"char":   "Character",
	"i8":     "Int8",
	"i16":    "Int16",
	"i32":    "Int32",
	"i64":    "Int64",
	"u8":     "UInt8",
	"u16":    "UInt16",
	"u32":    "UInt32",
	"u64":    "UInt64",
	"isize":  "Int",
	"usize":  "UInt",
	"f32":    "Float",
	"f64":    "Double",
	"bool":   "Bool",
}

// swiftRawTypes maps the backing literal kind of a constant enum to its raw
// value type.
var swiftRawTypes = map[ir.LiteralKind]string{
	ir.LiteralInt:    "Int",
	ir.LiteralString: "String",
	ir.LiteralByte:   "UInt8",
	ir.LiteralChar:   "Int8",
	ir.LiteralFloat:  "Float",
	ir.LiteralBool:   "Bool",
}

var swiftKeywords = map[string]struct{}{
	"associatedtype": {}, "class": {}, "deinit": {}, "enum": {}, "extension": {},
	"fileprivate": {}, "func": {}, "import": {}, "init": {}, "inout": {},
	"internal": {}, "let": {}, "open": {}, "operator": {}, "private": {},
	"protocol": {}, "public": {}, "static": {}, "struct": {}, "subscript": {},
	"typealias": {}, "var": {}, "break": {}, "case": {}, "continue": {},
	"default": {}, "defer": {}, "do": {}, "else": {}, "fallthrough": {},
	"for": {}, "guard": {}, "if": {}, "in": {}, "repeat": {}, "return": {},
	"switch": {}, "where": {}, "while": {}, "as": {}, "catch": {}, "false": {},
	"is": {}, "nil": {}, "rethrows": {}, "super": {}, "self": {}, "Self": {},
	"throw": {}, "throws": {}, "true": {}, "try": {},
}

// swift emits Codable structs and enums. The prefix option is prepended to
// every declared type name, including references to declared types.
type swift struct{}

func (*swift) Name() string { return "swift" }

func (*swift) types(cfg *Config) *typeMapper {
	return &typeMapper{
		mapping:  swiftTypes,
		nominal:  func(name string) string { return swiftTypeName(cfg, name) },
		sequence: func(elem string) string { return "[" + elem + "]" },
		dict:     func(k, v string) string { return "[" + k + ": " + v + "]" },
		optional: func(inner string) string { return inner + "?" },
	}
}

func swiftTypeName(cfg *Config, name string) string {
	if cfg.IsDeclared(name) {
		return cfg.Option(OptionPrefix) + name
	}
	return name
}

func (*swift) BeginFile(w io.Writer, cfg *Config) error {
	_, err := io.WriteString(w, banner("///", cfg.Version)+"import Foundation\n\n")
	return err
}

func (*swift) EndFile(io.Writer, *Config) error { return nil }

func (s *swift) WriteStruct(w io.Writer, cfg *Config, decl *ir.StructDecl) error {
	types := s.types(cfg)
	name := cfg.Option(OptionPrefix) + decl.ID.Original

	var (
		b      strings.Builder
		params []string
		fields []string
		args   []string
		keys   []string
		remap  bool
	)
	commentLines(&b, 0, "///", decl.Comments)
	b.WriteString("public struct " + name + ": Codable {\n")
	for _, f := range decl.Fields {
		commentLines(&b, 1, "///", f.Comments)
		plain := sanitizeIdent(f.ID.Renamed)
		ident := swiftIdent(plain)
		typ := types.render(f.Shape)
		if plain != f.ID.Renamed {
			remap = true
			keys = append(keys, "\t\tcase "+ident+" = "+quoted(f.ID.Renamed)+"\n")
		} else {
			keys = append(keys, "\t\tcase "+ident+"\n")
		}
		b.WriteString("\tpublic let " + ident + ": " + typ + "\n")
		params = append(params, ident+": "+typ)
		fields = append(fields, ident)
		args = append(args, ident+": decoded."+ident)
	}

	if remap {
		b.WriteString("\n\tenum CodingKeys: String, CodingKey {\n")
		b.WriteString(strings.Join(keys, ""))
		b.WriteString("\t}\n")
	}

	b.WriteString("\n\tpublic init(" + strings.Join(params, ", ") + ") {\n")
	for _, f := range fields {
		b.WriteString("\t\tself." + f + " = " + f + "\n")
	}
	b.WriteString("\t}\n}\n\n")

	b.WriteString("\npublic extension " + name + " {\n")
	b.WriteString("\tinit(data: Data) throws {\n")
	b.WriteString("\t\tlet decoded = try JSONDecoder().decode(" + name + ".self, from: data)\n")
	b.WriteString("\t\tself.init(" + strings.Join(args, ", ") + ")\n")
	b.WriteString("\t}\n}\n\n")
	return flush(w, &b)
}

func (*swift) WriteConstEnum(w io.Writer, cfg *Config, e *ir.ConstEnumDecl) error {
	raw := "String"
	if e.Backing != nil {
		if t, ok := swiftRawTypes[*e.Backing]; ok {
			raw = t
		}
	}

	var b strings.Builder
	commentLines(&b, 0, "///", e.Comments)
	b.WriteString("public enum " + cfg.Option(OptionPrefix) + e.ID.Original + ": " + raw + ", Codable {\n")
	for _, c := range e.Cases {
		commentLines(&b, 1, "///", c.Comments)
		b.WriteString("\tcase " + swiftIdent(sanitizeIdent(c.ID.Renamed)) + " = " + swiftLiteral(c) + "\n")
	}
	b.WriteString("}\n\n")
	return flush(w, &b)
}

func (s *swift) WriteAlgebraicEnum(w io.Writer, cfg *Config, e *ir.AlgebraicEnumDecl) error {
	types := s.types(cfg)

	var b strings.Builder
	commentLines(&b, 0, "///", e.Comments)
	b.WriteString("public enum " + cfg.Option(OptionPrefix) + e.ID.Original + ": Codable {\n")
	for _, c := range e.Cases {
		commentLines(&b, 1, "///", c.Comments)
		b.WriteString("\tcase " + swiftIdent(sanitizeIdent(c.ID.Renamed)) + "(" + types.render(c.Payload.Shape) + ")\n")
	}
	b.WriteString("}\n\n")
	return flush(w, &b)
}

func swiftLiteral(c ir.ConstCase) string {
	lit := c.Discriminant
	switch {
	case lit == nil:
		return quoted(c.ID.Renamed)
	case !lit.Supported():
		return "/* unsupported: " + lit.Raw + " */"
	}
	switch lit.Kind {
	case ir.LiteralString:
		return quoted(lit.Value)
	case ir.LiteralChar:
		// Int8 raw values hold the character code.
		if r := []rune(lit.Value); len(r) == 1 {
			return strconv.Itoa(int(r[0]))
		}
		return quoted(lit.Value)
	default:
		return lit.Value
	}
}

// swiftIdent escapes reserved words with backticks.
func swiftIdent(name string) string {
	if _, ok := swiftKeywords[name]; ok {
		return "`" + name + "`"
	}
	return name
}
