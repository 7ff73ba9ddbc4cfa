package parse

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/lang"
)

var intSuffixes = []string{
	"i128", "u128", "isize", "usize", "i64", "u64", "i32", "u32", "i16", "u16", "i8", "u8",
}

// Literal classifies a discriminant expression. Expressions that are not
// plain literals come back as ir.LiteralUnsupported with their raw text.
func Literal(node *sitter.Node, source []byte) *ir.Literal {
	raw := lang.CollapseWhitespace(lang.NodeText(node, source))
	lit := &ir.Literal{Kind: ir.LiteralUnsupported, Raw: raw}

	switch node.Type() {
	case "integer_literal":
		if v, ok := decodeInt(raw); ok {
			lit.Kind, lit.Value = ir.LiteralInt, v
		}
	case "float_literal":
		lit.Kind, lit.Value = ir.LiteralFloat, decodeFloat(raw)
	case "boolean_literal":
		lit.Kind, lit.Value = ir.LiteralBool, raw
	case "string_literal":
		if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) >= 2 {
			lit.Kind, lit.Value = ir.LiteralString, raw[1:len(raw)-1]
		}
	case "raw_string_literal":
		if v, ok := decodeRawString(raw); ok {
			lit.Kind, lit.Value = ir.LiteralString, v
		}
	case "char_literal":
		if strings.HasPrefix(raw, "b'") {
			if v, ok := decodeByte(raw[1:]); ok {
				lit.Kind, lit.Value = ir.LiteralByte, v
			}
		} else if strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") && len(raw) >= 3 {
			lit.Kind, lit.Value = ir.LiteralChar, raw[1:len(raw)-1]
		}
	case "unary_expression":
		negative(node, source, lit)
	}
	return lit
}

// negative accepts `-<integer>` and `-<float>`.
func negative(node *sitter.Node, source []byte, lit *ir.Literal) {
	if node.NamedChildCount() != 1 || !strings.HasPrefix(lit.Raw, "-") {
		return
	}
	operand := node.NamedChild(0)
	text := lang.NodeText(operand, source)
	switch operand.Type() {
	case "integer_literal":
		if v, ok := decodeInt(text); ok {
			lit.Kind, lit.Value = ir.LiteralInt, "-"+v
		}
	case "float_literal":
		lit.Kind, lit.Value = ir.LiteralFloat, "-"+decodeFloat(text)
	}
}

// decodeInt renders an integer literal in decimal, dropping separators and
// type suffixes.
func decodeInt(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}
	if base != 16 {
		s = trimIntSuffix(s)
	} else if i := strings.IndexAny(s, "iu"); i > 0 {
		// Hex digits never include i or u.
		s = s[:i]
	}
	if n, err := strconv.ParseInt(s, base, 64); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	if n, err := strconv.ParseUint(s, base, 64); err == nil {
		return strconv.FormatUint(n, 10), true
	}
	return "", false
}

func trimIntSuffix(s string) string {
	for _, suf := range intSuffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf) {
			return s[:len(s)-len(suf)]
		}
	}
	return s
}

func decodeFloat(raw string) string {
	s := strings.ReplaceAll(raw, "_", "")
	s = strings.TrimSuffix(s, "f32")
	s = strings.TrimSuffix(s, "f64")
	return strings.TrimSuffix(s, ".")
}

// decodeRawString turns r#"..."# into a double-quote-safe string body.
func decodeRawString(raw string) (string, bool) {
	s := strings.TrimPrefix(raw, "r")
	hashes := len(s) - len(strings.TrimLeft(s, "#"))
	s = s[hashes:]
	s = s[:len(s)-hashes]
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	body := s[1 : len(s)-1]
	body = strings.ReplaceAll(body, `\`, `\\`)
	return strings.ReplaceAll(body, `"`, `\"`), true
}

// decodeByte converts a quoted byte literal such as 'a' or '\n' to decimal.
func decodeByte(quoted string) (string, bool) {
	if len(quoted) < 3 || quoted[0] != '\'' || quoted[len(quoted)-1] != '\'' {
		return "", false
	}
	body := quoted[1 : len(quoted)-1]
	if len(body) == 1 {
		return strconv.Itoa(int(body[0])), true
	}
	switch body {
	case `\n`:
		return "10", true
	case `\r`:
		return "13", true
	case `\t`:
		return "9", true
	case `\0`:
		return "0", true
	case `\\`:
		return "92", true
	case `\'`:
		return "39", true
	case `\"`:
		return "34", true
	}
	if strings.HasPrefix(body, `\x`) && len(body) == 4 {
		if n, err := strconv.ParseUint(body[2:], 16, 8); err == nil {
			return strconv.FormatUint(n, 10), true
		}
	}
	return "", false
}
