// Package attrs extracts documentation, rename rules and the export marker
// from raw attribute fragments.
//
// Fragments are the canonical attribute text produced by the front-end: the
// body of #[...] with whitespace outside string literals removed, and doc
// comments desugared to doc="...". Matching is purely textual.
package attrs

import "strings"

const (
	docPrefix = `doc="`
	docSuffix = `"`

	serdePrefix = "serde("
	serdeSuffix = ")"

	renamePrefix    = `rename="`
	renameAllPrefix = `rename_all="`
	valueSuffix     = `"`

	marker = "typeshare"
)

// Metadata is everything the collector needs from an item's attributes.
type Metadata struct {
	Comments  []string
	RenameAll *string
	Rename    *string
	HasMarker bool
}

// Extract scans fragments in source order. Unrecognized fragments are
// ignored.
func Extract(fragments []string) Metadata {
	var md Metadata
	for _, f := range fragments {
		if c, ok := Doc(f); ok {
			md.Comments = append(md.Comments, c)
			continue
		}
		if IsMarker(f) {
			md.HasMarker = true
			continue
		}
		if md.Rename == nil {
			if v, ok := Rename(f); ok {
				md.Rename = &v
			}
		}
		if md.RenameAll == nil {
			if v, ok := RenameAll(f); ok {
				md.RenameAll = &v
			}
		}
	}
	return md
}

// Doc returns the comment text of a doc fragment. One leading space is
// dropped so "/// text" yields "text".
func Doc(fragment string) (string, bool) {
	if !strings.HasPrefix(fragment, docPrefix) || !strings.HasSuffix(fragment, docSuffix) ||
		len(fragment) < len(docPrefix)+len(docSuffix) {
		return "", false
	}
	text := fragment[len(docPrefix) : len(fragment)-len(docSuffix)]
	return strings.TrimPrefix(text, " "), true
}

// Rename returns the literal of a serde(rename="...") part.
func Rename(fragment string) (string, bool) {
	return serdeValue(fragment, renamePrefix)
}

// RenameAll returns the policy keyword of a serde(rename_all="...") part.
func RenameAll(fragment string) (string, bool) {
	return serdeValue(fragment, renameAllPrefix)
}

// IsMarker reports whether the fragment is the typeshare export marker,
// with or without arguments.
func IsMarker(fragment string) bool {
	return fragment == marker || strings.HasPrefix(fragment, marker+"(")
}

func serdeValue(fragment, prefix string) (string, bool) {
	for _, part := range serdeParts(fragment) {
		if strings.HasPrefix(part, prefix) && strings.HasSuffix(part, valueSuffix) &&
			len(part) >= len(prefix)+len(valueSuffix) {
			return part[len(prefix) : len(part)-len(valueSuffix)], true
		}
	}
	return "", false
}

// serdeParts splits the argument list of a serde(...) fragment on commas
// that are not inside string literals.
func serdeParts(fragment string) []string {
	if !strings.HasPrefix(fragment, serdePrefix) || !strings.HasSuffix(fragment, serdeSuffix) {
		return nil
	}
	body := fragment[len(serdePrefix) : len(fragment)-len(serdeSuffix)]

	var parts []string
	inString := false
	escaped := false
	start := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == ',' && !inString:
			parts = append(parts, body[start:i])
			start = i + 1
		}
	}
	return append(parts, body[start:])
}
