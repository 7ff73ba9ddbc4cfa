package backend

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/typeshare/internal/ir"
)

func render(t *testing.T, b Backend, cfg *Config, coll *ir.Collection) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Dispatch(&buf, b, cfg, coll))
	return buf.String()
}

func TestSwiftCodingKeys(t *testing.T) {
	t.Parallel()

	coll := &ir.Collection{Structs: []*ir.StructDecl{{
		ID: ir.NewIdentifier("Match"),
		Fields: []ir.FieldDecl{
			{ID: ir.Identifier{Original: "kind", Renamed: "kind-of"}, Shape: ir.Scalar{Name: "String"}},
			{ID: ir.NewIdentifier("default"), Shape: ir.Scalar{Name: "bool"}},
		},
	}}}

	out := render(t, &swift{}, &Config{}, coll)
	assert.Contains(t, out, "\tpublic let kind_of: String\n")
	assert.Contains(t, out, "\tpublic let `default`: Bool\n")
	assert.Contains(t, out, "\tenum CodingKeys: String, CodingKey {\n")
	assert.Contains(t, out, "\t\tcase kind_of = \"kind-of\"\n")
	assert.Contains(t, out, "\t\tcase `default`\n")
}

func TestSwiftPrefixOnlyDeclared(t *testing.T) {
	t.Parallel()

	coll := &ir.Collection{Structs: []*ir.StructDecl{{
		ID: ir.NewIdentifier("Order"),
		Fields: []ir.FieldDecl{
			{ID: ir.NewIdentifier("customer"), Shape: ir.Scalar{Name: "Customer"}},
			{ID: ir.NewIdentifier("at"), Shape: ir.Scalar{Name: "DateTime"}},
		},
	}}}
	cfg := &Config{
		Options:  map[string]string{OptionPrefix: "App"},
		Declared: map[string]bool{"Order": true, "Customer": true},
	}

	out := render(t, &swift{}, cfg, coll)
	assert.Contains(t, out, "public struct AppOrder: Codable {\n")
	assert.Contains(t, out, "\tpublic let customer: AppCustomer\n")
	assert.Contains(t, out, "\tpublic let at: DateTime\n")
	assert.NotContains(t, out, "CodingKeys")
}

func TestSwiftCharDiscriminant(t *testing.T) {
	t.Parallel()

	kind := ir.LiteralChar
	coll := &ir.Collection{Enums: []ir.EnumDecl{&ir.ConstEnumDecl{
		ID:      ir.NewIdentifier("Grade"),
		Backing: &kind,
		Cases: []ir.ConstCase{
			{ID: ir.NewIdentifier("A"), Discriminant: &ir.Literal{Kind: ir.LiteralChar, Raw: "'a'", Value: "a"}},
		},
	}}}

	out := render(t, &swift{}, &Config{}, coll)
	assert.Contains(t, out, "public enum Grade: Int8, Codable {\n")
	assert.Contains(t, out, "\tcase A = 97\n")
}

func TestTypeScriptProperties(t *testing.T) {
	t.Parallel()

	coll := &ir.Collection{Structs: []*ir.StructDecl{{
		ID: ir.NewIdentifier("Headers"),
		Fields: []ir.FieldDecl{
			{ID: ir.Identifier{Original: "content_type", Renamed: "content-type"}, Shape: ir.Scalar{Name: "String"}},
			{
				ID:         ir.NewIdentifier("retry"),
				Shape:      ir.Optional{Inner: ir.Sequence{Inner: ir.Optional{Inner: ir.Scalar{Name: "u32"}}}},
				IsOptional: true,
			},
		},
	}}}

	out := render(t, &typeScript{}, &Config{}, coll)
	assert.Contains(t, out, "\t\"content-type\": string;\n")
	assert.Contains(t, out, "\tretry?: (number | undefined)[];\n")
}

func TestTypeScriptUnsupportedLiteral(t *testing.T) {
	t.Parallel()

	coll := &ir.Collection{Enums: []ir.EnumDecl{&ir.ConstEnumDecl{
		ID: ir.NewIdentifier("Flags"),
		Cases: []ir.ConstCase{
			{ID: ir.NewIdentifier("Both"), Discriminant: &ir.Literal{Kind: ir.LiteralUnsupported, Raw: "A | B"}},
			{ID: ir.NewIdentifier("None")},
		},
	}}}

	out := render(t, &typeScript{}, &Config{}, coll)
	assert.Contains(t, out, "\tBoth = /* unsupported literal: A | B */,\n")
	assert.Contains(t, out, "\tNone = \"None\",\n")
}

func TestTypeScriptEmptyAlgebraic(t *testing.T) {
	t.Parallel()

	coll := &ir.Collection{Enums: []ir.EnumDecl{&ir.AlgebraicEnumDecl{ID: ir.NewIdentifier("Nothing")}}}
	assert.Contains(t, render(t, &typeScript{}, &Config{}, coll), "export type Nothing = \n\tnever;\n")
}

func TestJavaNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "class_", javaMember("class"))
	assert.Equal(t, "orderId", javaMember("orderId"))
	assert.Equal(t, "StringCase", javaCaseClass("String"))
	assert.Equal(t, "NumberArrayCase", javaCaseClass("number_array"))
}

func TestJavaValueType(t *testing.T) {
	t.Parallel()

	intKind, boolKind := ir.LiteralInt, ir.LiteralBool
	assert.Equal(t, "String", javaValueType(nil))
	assert.Equal(t, "long", javaValueType(&intKind))
	assert.Equal(t, "boolean", javaValueType(&boolKind))

	c := ir.ConstCase{ID: ir.NewIdentifier("Paid"), Discriminant: &ir.Literal{Kind: ir.LiteralInt, Raw: "2", Value: "2"}}
	assert.Equal(t, "2L", javaLiteral(c, "long"))
}

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"simple", "hello", "hello"},
		{"leading space", " hello", `" hello"`},
		{"trailing space", "hello ", `"hello "`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"true keyword", "true", `"true"`},
		{"True keyword", "True", `"True"`},
		{"null keyword", "null", `"null"`},
		{"integer", "42", "42"},
		{"negative integer", "-1", "-1"},
		{"float", "3.14", "3.14"},
		{"comma", "MAP String,i32", `"MAP String,i32"`},
		{"colon", "a:b", `"a:b"`},
		{"quote", `"red"`, `"\"red\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"bracket", "a[b", `"a[b"`},
		{"dash prefix", "-foo", `"-foo"`},
		{"shape", "SEQ i32", "SEQ i32"},
		{"expression", "1 << 4", "1 << 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, encodeValue(tt.in))
		})
	}
}

func TestFormatTabular(t *testing.T) {
	t.Parallel()

	got := formatTabular("cases", []string{"enum", "name"}, [][]string{
		{"Colors", "Red"},
		{"Colors", "custom-green"},
	})
	assert.Equal(t, "cases[2]{enum,name}:\n  Colors,Red\n  Colors,custom-green", got)
	assert.Equal(t, "fields[0]{struct}:", formatTabular("fields", []string{"struct"}, nil))
}
