package backend

import (
	"io"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

// typeMapper converts IR shapes to target type text.
type typeMapper struct {
	// mapping translates Rust primitive names.
	mapping map[string]string
	// nominal rewrites names that are not primitives; nil keeps them.
	nominal  func(name string) string
	sequence func(elem string) string
	dict     func(key, value string) string
	optional func(inner string) string
}

func (m *typeMapper) render(s ir.Shape) string {
	switch s := s.(type) {
	case ir.Scalar:
		return m.scalar(s.Name)
	case ir.Optional:
		return m.optional(m.render(s.Inner))
	case ir.Sequence:
		return m.sequence(m.render(s.Inner))
	case ir.Map:
		return m.dict(m.scalar(s.Key), m.render(s.Value))
	default:
		return ""
	}
}

func (m *typeMapper) scalar(name string) string {
	if mapped, ok := m.mapping[name]; ok {
		return mapped
	}
	if m.nominal != nil {
		return m.nominal(name)
	}
	return name
}

// banner renders the generated-file header as comment lines.
func banner(comment, version string) string {
	title := "Generated"
	if version != "" {
		title = "Generated by typeshare " + version
	}
	return comment + " \n" + comment + " " + title + "\n" + comment + " \n\n"
}

// commentLines renders doc comments, one per line, at the given indent.
func commentLines(b *strings.Builder, indent int, prefix string, comments []string) {
	for _, c := range comments {
		b.WriteString(strings.Repeat("\t", indent))
		b.WriteString(prefix)
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString("\n")
	}
}

func quoted(s string) string {
	return `"` + s + `"`
}

// flush writes b to w in one call.
func flush(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// isIdent reports whether s is a plain ASCII identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// sanitizeIdent replaces every byte that cannot appear in an identifier
// with an underscore and prefixes names starting with a digit.
func sanitizeIdent(s string) string {
	if s == "" {
		return "_"
	}
	out := []byte(s)
	for i, c := range out {
		if c != '_' && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			out[i] = '_'
		}
	}
	if out[0] >= '0' && out[0] <= '9' {
		return "_" + string(out)
	}
	return string(out)
}
