// Package parse is the source front-end: it parses a Rust file with
// tree-sitter and returns its top-level structs and enums as items carrying
// raw attribute fragments and normalized type text.
package parse

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/lang"
)

// ItemKind distinguishes struct and enum items.
type ItemKind int

const (
	Struct ItemKind = iota
	Enum
)

func (k ItemKind) String() string {
	if k == Enum {
		return "enum"
	}
	return "struct"
}

// VariantShape tags the body of an enum variant.
type VariantShape int

const (
	// Unit is a variant without a body: `Red` or `Red = 1`.
	Unit VariantShape = iota
	// Payload is a variant with exactly one unnamed field: `Number(i32)`.
	Payload
	// Tuple is a variant with several unnamed fields: `Pair(i32, i32)`.
	Tuple
	// Named is a variant with named fields: `Point { x: i32 }`.
	Named
)

func (s VariantShape) String() string {
	switch s {
	case Payload:
		return "payload"
	case Tuple:
		return "tuple"
	case Named:
		return "named"
	default:
		return "unit"
	}
}

// Item is a top-level struct or enum.
type Item struct {
	Kind  ItemKind
	Name  string
	Line  int
	Attrs []string

	// Struct items.
	Fields []Field
	// TupleStruct is set for `struct Foo(A, B);` whose fields have no names.
	TupleStruct bool

	// Enum items.
	Variants []Variant
}

// Field is a named struct field.
type Field struct {
	Name  string
	Type  string
	Line  int
	Attrs []string
}

// Variant is one enum variant.
type Variant struct {
	Name  string
	Shape VariantShape
	Line  int
	Attrs []string
	// Payload is the normalized type text when Shape is Payload.
	Payload string
	// Discriminant is the explicit `= value`, nil when absent.
	Discriminant *ir.Literal
}

// Rust parses source with a fresh parser for the Rust grammar.
func Rust(ctx context.Context, source []byte) ([]Item, error) {
	return File(ctx, lang.Languages["rust"].NewParser(), source)
}

// File parses source and returns its top-level items in source order.
// The parser must be configured for Rust. Any syntax error in the file fails
// the whole parse with ir.ErrSourceSyntax.
func File(ctx context.Context, parser *sitter.Parser, source []byte) ([]Item, error) {
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrap(ir.ErrSourceSyntax, err.Error())
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, source)
	}

	var items []Item
	var pending []string

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if attr, ok := attributeOrDoc(child, source); ok {
			pending = append(pending, attr...)
			continue
		}
		if isComment(child) {
			continue
		}

		switch child.Type() {
		case "struct_item":
			items = append(items, parseStruct(child, source, pending))
		case "enum_item":
			items = append(items, parseEnum(child, source, pending))
		}
		pending = nil
	}

	return items, nil
}

func parseStruct(node *sitter.Node, source []byte, attrs []string) Item {
	item := Item{
		Kind:  Struct,
		Name:  identText(node.ChildByFieldName("name"), source),
		Line:  line(node),
		Attrs: attrs,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return item
	}
	if body.Type() == "ordered_field_declaration_list" {
		item.TupleStruct = true
		return item
	}

	var pending []string
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		if attr, ok := attributeOrDoc(child, source); ok {
			pending = append(pending, attr...)
			continue
		}
		if child.Type() != "field_declaration" {
			continue
		}
		item.Fields = append(item.Fields, Field{
			Name:  identText(child.ChildByFieldName("name"), source),
			Type:  typeText(child.ChildByFieldName("type"), source),
			Line:  line(child),
			Attrs: pending,
		})
		pending = nil
	}
	return item
}

func parseEnum(node *sitter.Node, source []byte, attrs []string) Item {
	item := Item{
		Kind:  Enum,
		Name:  identText(node.ChildByFieldName("name"), source),
		Line:  line(node),
		Attrs: attrs,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return item
	}

	var pending []string
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		if attr, ok := attributeOrDoc(child, source); ok {
			pending = append(pending, attr...)
			continue
		}
		if child.Type() != "enum_variant" {
			continue
		}
		item.Variants = append(item.Variants, parseVariant(child, source, pending))
		pending = nil
	}
	return item
}

func parseVariant(node *sitter.Node, source []byte, attrs []string) Variant {
	v := Variant{
		Name:  identText(node.ChildByFieldName("name"), source),
		Shape: Unit,
		Line:  line(node),
		Attrs: attrs,
	}

	if body := node.ChildByFieldName("body"); body != nil {
		switch body.Type() {
		case "field_declaration_list":
			v.Shape = Named
		case "ordered_field_declaration_list":
			types := orderedTypes(body)
			switch len(types) {
			case 0:
				v.Shape = Unit
			case 1:
				v.Shape = Payload
				v.Payload = typeText(types[0], source)
			default:
				v.Shape = Tuple
			}
		}
	}

	if value := node.ChildByFieldName("value"); value != nil {
		v.Discriminant = Literal(value, source)
	}
	return v
}

// orderedTypes returns the type nodes of a tuple field list, skipping
// punctuation, attributes, visibility modifiers and comments.
func orderedTypes(list *sitter.Node) []*sitter.Node {
	var types []*sitter.Node
	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)
		switch child.Type() {
		case "attribute_item", "visibility_modifier", "line_comment", "block_comment":
			continue
		}
		types = append(types, child)
	}
	return types
}

// attributeOrDoc converts an outer attribute or doc comment node into
// canonical attribute fragments.
func attributeOrDoc(node *sitter.Node, source []byte) ([]string, bool) {
	switch node.Type() {
	case "attribute_item":
		text := strings.TrimSpace(lang.NodeText(node, source))
		text = strings.TrimSpace(strings.TrimPrefix(text, "#"))
		text = strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
		return []string{lang.CompactTokens(text)}, true
	case "line_comment":
		text := strings.TrimRight(lang.NodeText(node, source), "\r\n")
		if !strings.HasPrefix(text, "///") || strings.HasPrefix(text, "////") {
			return nil, false
		}
		return []string{docFragment(strings.TrimPrefix(text, "///"))}, true
	case "block_comment":
		text := lang.NodeText(node, source)
		if !strings.HasPrefix(text, "/**") || strings.HasPrefix(text, "/***") || text == "/**/" {
			return nil, false
		}
		return blockDoc(text), true
	}
	return nil, false
}

// blockDoc splits a /** ... */ comment into one doc fragment per line,
// dropping the leading " * " gutter.
func blockDoc(text string) []string {
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
	lines := strings.Split(body, "\n")

	var frags []string
	for i, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		trimmed := strings.TrimLeft(l, " \t")
		if strings.HasPrefix(trimmed, "*") {
			l = strings.TrimPrefix(trimmed, "*")
		}
		if (i == 0 || i == len(lines)-1) && strings.TrimSpace(l) == "" {
			continue
		}
		frags = append(frags, docFragment(l))
	}
	return frags
}

func docFragment(text string) string {
	return `doc="` + text + `"`
}

func isComment(node *sitter.Node) bool {
	switch node.Type() {
	case "line_comment", "block_comment", "inner_attribute_item":
		return true
	}
	return false
}

// identText returns an identifier without its raw-identifier prefix.
func identText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return strings.TrimPrefix(lang.NodeText(node, source), "r#")
}

func typeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return lang.CompactTokens(lang.NodeText(node, source))
}

func line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// syntaxError locates the first ERROR or MISSING node in the tree.
func syntaxError(root *sitter.Node, source []byte) error {
	bad := firstError(root)
	if bad == nil {
		return errors.Wrap(ir.ErrSourceSyntax, "malformed input")
	}
	pos := bad.StartPoint()
	if bad.IsMissing() {
		return errors.Wrapf(ir.ErrSourceSyntax, "line %d, column %d: missing %s",
			pos.Row+1, pos.Column+1, bad.Type())
	}
	snippet := lang.CollapseWhitespace(lang.NodeText(bad, source))
	if len(snippet) > 40 {
		snippet = snippet[:40] + "..."
	}
	return errors.Wrapf(ir.ErrSourceSyntax, "line %d, column %d: unexpected %q",
		pos.Row+1, pos.Column+1, snippet)
}

func firstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if bad := firstError(node.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
