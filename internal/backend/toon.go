package backend

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

func init() {
	register(&Spec{
		Name:      "toon",
		Extension: ".toon",
		New:       func() Backend { return &toon{} },
	})
}

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// toon dumps the collection in TOON (Token-Oriented Object Notation)
// tabular form. Rows are buffered and the tables written by EndFile.
type toon struct {
	structs [][]string
	fields  [][]string
	enums   [][]string
	cases   [][]string
}

func (*toon) Name() string { return "toon" }

func (*toon) BeginFile(io.Writer, *Config) error { return nil }

func (t *toon) WriteStruct(_ io.Writer, _ *Config, s *ir.StructDecl) error {
	t.structs = append(t.structs, []string{
		s.ID.Original,
		s.ID.Renamed,
		strconv.Itoa(len(s.Fields)),
		strings.Join(s.Comments, "\n"),
	})
	for _, f := range s.Fields {
		t.fields = append(t.fields, []string{
			s.ID.Original,
			f.ID.Original,
			f.ID.Renamed,
			ir.ShapeString(f.Shape),
		})
	}
	return nil
}

func (t *toon) WriteConstEnum(_ io.Writer, _ *Config, e *ir.ConstEnumDecl) error {
	backing := ""
	if e.Backing != nil {
		backing = e.Backing.String()
	}
	t.enums = append(t.enums, []string{
		e.ID.Original,
		e.ID.Renamed,
		"const",
		backing,
		strconv.Itoa(len(e.Cases)),
		strings.Join(e.Comments, "\n"),
	})
	for _, c := range e.Cases {
		value := ""
		if c.Discriminant != nil {
			value = c.Discriminant.Raw
		}
		t.cases = append(t.cases, []string{e.ID.Original, c.ID.Original, c.ID.Renamed, value})
	}
	return nil
}

func (t *toon) WriteAlgebraicEnum(_ io.Writer, _ *Config, e *ir.AlgebraicEnumDecl) error {
	t.enums = append(t.enums, []string{
		e.ID.Original,
		e.ID.Renamed,
		"algebraic",
		"",
		strconv.Itoa(len(e.Cases)),
		strings.Join(e.Comments, "\n"),
	})
	for _, c := range e.Cases {
		t.cases = append(t.cases, []string{
			e.ID.Original,
			c.ID.Original,
			c.ID.Renamed,
			ir.ShapeString(c.Payload.Shape),
		})
	}
	return nil
}

func (t *toon) EndFile(w io.Writer, cfg *Config) error {
	var parts []string
	parts = append(parts, "generator: typeshare")
	if cfg.Version != "" {
		parts = append(parts, fmt.Sprintf("version: %s", encodeValue(cfg.Version)))
	}
	var references [][]string
	for _, e := range cfg.References {
		references = append(references, []string{e.From, e.To})
	}
	parts = append(parts,
		formatTabular("structs", []string{"name", "renamed", "fields", "comment"}, t.structs),
		formatTabular("fields", []string{"struct", "name", "renamed", "shape"}, t.fields),
		formatTabular("enums", []string{"name", "renamed", "kind", "backing", "cases", "comment"}, t.enums),
		formatTabular("cases", []string{"enum", "name", "renamed", "value"}, t.cases),
		formatTabular("references", []string{"from", "to"}, references),
	)
	_, err := io.WriteString(w, strings.Join(parts, "\n")+"\n")
	return err
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
