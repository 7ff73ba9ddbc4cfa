// Package naming computes the identifiers emitted by backends from source
// identifiers, serde case policies and explicit renames.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CasePolicy is a serde rename_all keyword.
type CasePolicy string

const (
	Lowercase          CasePolicy = "lowercase"
	Uppercase          CasePolicy = "UPPERCASE"
	PascalCase         CasePolicy = "PascalCase"
	CamelCase          CasePolicy = "camelCase"
	SnakeCase          CasePolicy = "snake_case"
	ScreamingSnakeCase CasePolicy = "SCREAMING_SNAKE_CASE"
	KebabCase          CasePolicy = "kebab-case"
	// ScreamingKebabCase is accepted but currently converts like KebabCase.
	ScreamingKebabCase CasePolicy = "SCREAMING-KEBAB-CASE"
)

// Policy converts an optional rename_all value into a policy pointer.
func Policy(value *string) *CasePolicy {
	if value == nil {
		return nil
	}
	p := CasePolicy(*value)
	return &p
}

// Rename returns the emitted identifier. An explicit override always wins
// over the bulk policy.
func Rename(original string, policy *CasePolicy, override *string) string {
	if override != nil {
		return *override
	}
	if policy == nil {
		return original
	}
	return Apply(*policy, original)
}

// Apply converts s under policy. Unknown policies return s unchanged.
func Apply(policy CasePolicy, s string) string {
	switch policy {
	case Lowercase:
		return cases.Lower(language.Und).String(s)
	case Uppercase:
		return cases.Upper(language.Und).String(s)
	case PascalCase:
		return ToPascalCase(s)
	case CamelCase:
		return ToCamelCase(s)
	case SnakeCase:
		return ToSnakeCase(s)
	case ScreamingSnakeCase:
		return strings.ToUpper(ToSnakeCase(s))
	case KebabCase, ScreamingKebabCase:
		return ToKebabCase(s)
	default:
		return s
	}
}

// ToPascalCase converts any casing to PascalCase ("first_name" -> "FirstName").
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToCamelCase converts any casing to camelCase ("first_name" -> "firstName").
func ToCamelCase(s string) string {
	var b strings.Builder
	for i, w := range Words(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToSnakeCase converts any casing to snake_case, keeping acronyms whole
// ("HTTPServer" -> "http_server").
func ToSnakeCase(s string) string {
	return joinLower(Words(s), "_")
}

// ToKebabCase converts any casing to kebab-case.
func ToKebabCase(s string) string {
	return joinLower(Words(s), "-")
}

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func capitalize(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Words segments an identifier. Separators are '_', '-' and whitespace;
// lower-to-upper transitions start a word; uppercase runs are kept whole,
// except that a trailing capital followed by lowercase starts the next word
// ("HTTPServer") and runs made of known acronyms are split ("HTMLAPI").
// Digits stay attached to the preceding word.
func Words(s string) []string {
	chunks := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var words []string
	for _, chunk := range chunks {
		for _, w := range splitCase([]rune(chunk)) {
			words = append(words, splitAcronyms(w)...)
		}
	}
	return words
}

func splitCase(runes []rune) []string {
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		r, prev := runes[i], runes[i-1]
		if !unicode.IsUpper(r) {
			continue
		}
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			words = append(words, string(runes[start:i]))
			start = i
			continue
		}
		if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			// "APIs" keeps its plural s.
			if isPluralAcronym(runes, start, i) {
				continue
			}
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

// isPluralAcronym reports whether runes[start:i+1] is an acronym followed by
// a lone lowercase "s" at the end of the chunk or before the next capital.
func isPluralAcronym(runes []rune, start, i int) bool {
	if i+1 >= len(runes) || runes[i+1] != 's' {
		return false
	}
	if i+2 < len(runes) && !unicode.IsUpper(runes[i+2]) {
		return false
	}
	return IsAcronym(string(runes[start : i+1]))
}

// splitAcronyms splits an all-uppercase word into dictionary acronyms when
// the whole word decomposes into them ("HTMLAPI" -> "HTML", "API").
// Otherwise the word is returned unchanged.
func splitAcronyms(w string) []string {
	if len(w) < 4 || strings.ToUpper(w) != w || IsAcronym(w) {
		return []string{w}
	}
	if parts := decompose(w); parts != nil {
		return parts
	}
	return []string{w}
}

// decompose finds a longest-first split of w into acronyms, or nil.
func decompose(w string) []string {
	if w == "" {
		return []string{}
	}
	for n := min(len(w), maxAcronymLen); n >= 2; n-- {
		if !IsAcronym(w[:n]) {
			continue
		}
		if rest := decompose(w[n:]); rest != nil {
			return append([]string{w[:n]}, rest...)
		}
	}
	return nil
}
