package backend

import (
	"io"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/naming"
)

func init() {
	register(&Spec{
		Name:      "java",
		Extension: ".java",
		New:       func() Backend { return &java{} },
	})
}

var javaTypes = map[string]string{
	"String": "String",
	"str":    "String",
	"&str":   "String",
	"char":   "char",
	"i8":     "byte",
	"i16":    "short",
	"i32":    "int",
	"i64":    "long",
	"i128":   "java.math.BigInteger",
	"u8":     "byte",
	"u16":    "short",
	"u32":    "int",
	"u64":    "long",
	"u128":   "java.math.BigInteger",
	"isize":  "long",
	"usize":  "long",
	"f32":    "float",
	"f64":    "double",
	"bool":   "boolean",
}

// javaBoxed maps primitives to the wrapper classes generics require.
var javaBoxed = map[string]string{
	"byte":    "Byte",
	"short":   "Short",
	"int":     "Integer",
	"long":    "Long",
	"float":   "Float",
	"double":  "Double",
	"boolean": "Boolean",
	"char":    "Character",
}

var javaKeywords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {}, "case": {},
	"catch": {}, "char": {}, "class": {}, "const": {}, "continue": {}, "default": {},
	"do": {}, "double": {}, "else": {}, "enum": {}, "extends": {}, "final": {},
	"finally": {}, "float": {}, "for": {}, "goto": {}, "if": {}, "implements": {},
	"import": {}, "instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {}, "return": {},
	"short": {}, "static": {}, "strictfp": {}, "super": {}, "switch": {},
	"synchronized": {}, "this": {}, "throw": {}, "throws": {}, "transient": {}, "try": {},
	"void": {}, "volatile": {}, "while": {}, "true": {}, "false": {}, "null": {},
}

// java emits Jackson-annotated classes. Algebraic enums become an abstract
// class with one nested subclass per case, tagged by a "type" property and
// carrying the payload in "content".
type java struct{}

func (*java) Name() string { return "java" }

func (*java) types() *typeMapper {
	m := &typeMapper{mapping: javaTypes}
	m.sequence = func(elem string) string { return "List<" + box(elem) + ">" }
	m.dict = func(k, v string) string { return "Map<" + box(k) + ", " + box(v) + ">" }
	m.optional = box
	return m
}

func box(t string) string {
	if boxed, ok := javaBoxed[t]; ok {
		return boxed
	}
	return t
}

func (*java) BeginFile(w io.Writer, cfg *Config) error {
	var b strings.Builder
	b.WriteString(banner("//", cfg.Version))
	if pkg := cfg.Option(OptionPackage); pkg != "" {
		b.WriteString("package " + pkg + ";\n\n")
	}
	b.WriteString("import java.util.*;\n")
	b.WriteString("import com.fasterxml.jackson.annotation.*;\n\n")
	return flush(w, &b)
}

func (*java) EndFile(io.Writer, *Config) error { return nil }

func (j *java) WriteStruct(w io.Writer, _ *Config, s *ir.StructDecl) error {
	types := j.types()

	var b strings.Builder
	commentLines(&b, 0, "//", s.Comments)
	b.WriteString("public class " + s.ID.Original + " {\n")
	for _, f := range s.Fields {
		commentLines(&b, 1, "//", f.Comments)
		b.WriteString("\t@JsonProperty(" + quoted(f.ID.Renamed) + ")\n")
		b.WriteString("\tpublic " + types.render(f.Shape) + " " + javaMember(naming.ToCamelCase(f.ID.Original)) + ";\n")
	}
	b.WriteString("}\n\n")
	return flush(w, &b)
}

func (*java) WriteConstEnum(w io.Writer, _ *Config, e *ir.ConstEnumDecl) error {
	valueType := javaValueType(e.Backing)

	var b strings.Builder
	commentLines(&b, 0, "//", e.Comments)
	b.WriteString("public enum " + e.ID.Original + " {\n")
	for i, c := range e.Cases {
		commentLines(&b, 1, "//", c.Comments)
		b.WriteString("\t" + javaMember(c.ID.Original) + "(" + javaLiteral(c, valueType) + ")")
		if i < len(e.Cases)-1 {
			b.WriteString(",\n")
		}
	}
	b.WriteString(";\n\n")
	b.WriteString("\tprivate final " + valueType + " value;\n\n")
	b.WriteString("\t" + e.ID.Original + "(" + valueType + " value) {\n")
	b.WriteString("\t\tthis.value = value;\n")
	b.WriteString("\t}\n\n")
	b.WriteString("\t@JsonValue\n")
	b.WriteString("\tpublic " + valueType + " getValue() {\n")
	b.WriteString("\t\treturn value;\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n\n")
	return flush(w, &b)
}

func (j *java) WriteAlgebraicEnum(w io.Writer, _ *Config, e *ir.AlgebraicEnumDecl) error {
	types := j.types()
	name := e.ID.Original

	var b strings.Builder
	commentLines(&b, 0, "//", e.Comments)
	b.WriteString("@JsonTypeInfo(use = JsonTypeInfo.Id.NAME, include = JsonTypeInfo.As.PROPERTY, property = \"type\")\n")
	b.WriteString("@JsonSubTypes({\n")
	for i, c := range e.Cases {
		b.WriteString("\t@JsonSubTypes.Type(value = " + name + "." + javaCaseClass(c.ID.Original) +
			".class, name = " + quoted(c.ID.Renamed) + ")")
		if i < len(e.Cases)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("})\n")
	b.WriteString("public abstract class " + name + " {\n")
	for i, c := range e.Cases {
		if i > 0 {
			b.WriteString("\n")
		}
		commentLines(&b, 1, "//", c.Comments)
		b.WriteString("\tpublic static final class " + javaCaseClass(c.ID.Original) + " extends " + name + " {\n")
		b.WriteString("\t\t@JsonProperty(\"content\")\n")
		b.WriteString("\t\tpublic " + types.render(c.Payload.Shape) + " content;\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n\n")
	return flush(w, &b)
}

// javaValueType is the field type holding a constant enum's value.
func javaValueType(backing *ir.LiteralKind) string {
	if backing == nil {
		return "String"
	}
	switch *backing {
	case ir.LiteralInt:
		return "long"
	case ir.LiteralFloat:
		return "double"
	case ir.LiteralByte:
		return "byte"
	case ir.LiteralChar:
		return "char"
	case ir.LiteralBool:
		return "boolean"
	default:
		return "String"
	}
}

func javaLiteral(c ir.ConstCase, valueType string) string {
	lit := c.Discriminant
	switch {
	case lit == nil:
		return quoted(c.ID.Renamed)
	case !lit.Supported():
		return "/* unsupported literal: " + lit.Raw + " */"
	}
	switch lit.Kind {
	case ir.LiteralString:
		return quoted(lit.Value)
	case ir.LiteralChar:
		return "'" + lit.Value + "'"
	case ir.LiteralByte:
		return "(byte) " + lit.Value
	case ir.LiteralInt:
		if valueType == "long" {
			return lit.Value + "L"
		}
		return lit.Value
	default:
		return lit.Value
	}
}

// javaMember makes name a legal Java identifier, suffixing reserved words
// with an underscore.
func javaMember(name string) string {
	member := sanitizeIdent(name)
	if _, ok := javaKeywords[member]; ok {
		return member + "_"
	}
	return member
}

// javaCaseClass names the nested class for an algebraic case. The suffix
// keeps cases such as String from shadowing java.lang classes.
func javaCaseClass(name string) string {
	return naming.ToPascalCase(name) + "Case"
}
