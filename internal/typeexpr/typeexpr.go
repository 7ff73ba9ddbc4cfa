// Package typeexpr classifies a normalized Rust type expression into a
// wrapper shape.
//
// Only one optional layer and one sequence-or-map layer are peeled. The
// unwrapped text is not normalized again, so Vec<Option<T>> is a sequence of
// the opaque scalar "Option<T>".
package typeexpr

import (
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

var optionalHeads = []string{"Option", "std::option::Option", "core::option::Option"}

var sequenceHeads = []string{
	"Vec", "std::vec::Vec", "alloc::vec::Vec",
	"VecDeque", "std::collections::VecDeque",
	"HashSet", "std::collections::HashSet",
	"BTreeSet", "std::collections::BTreeSet",
}

var mapHeads = []string{
	"HashMap", "std::collections::HashMap",
	"BTreeMap", "std::collections::BTreeMap",
	"IndexMap", "indexmap::IndexMap",
}

// Result is the classification of one type expression.
type Result struct {
	Shape      ir.Shape
	IsOptional bool
	IsSequence bool
	IsMap      bool
	// Elem is the opaque element name: the sequence element, the map value,
	// or the scalar itself.
	Elem string
	// Key is the map key name, empty unless IsMap.
	Key string
}

// Normalize classifies raw. Unrecognized envelopes yield Scalar(raw).
func Normalize(raw string) Result {
	text := strings.TrimSpace(raw)
	var r Result

	if inner, ok := unwrap(text, optionalHeads); ok {
		r.IsOptional = true
		text = inner
	}

	var shape ir.Shape
	if inner, ok := unwrap(text, sequenceHeads); ok {
		r.IsSequence = true
		r.Elem = inner
		shape = ir.Sequence{Inner: ir.Scalar{Name: inner}}
	} else if inner, ok := unwrap(text, mapHeads); ok {
		key, value, split := splitTopLevel(inner)
		if split {
			r.IsMap = true
			r.Key = key
			r.Elem = value
			shape = ir.Map{Key: key, Value: ir.Scalar{Name: value}}
		}
	}
	if shape == nil {
		r.Elem = text
		shape = ir.Scalar{Name: text}
	}

	if r.IsOptional {
		shape = ir.Optional{Inner: shape}
	}
	r.Shape = shape
	return r
}

// unwrap strips Head<...> for any of heads and returns the inner text. The
// closing bracket must match the opening one.
func unwrap(text string, heads []string) (string, bool) {
	for _, head := range heads {
		prefix := head + "<"
		if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, ">") {
			continue
		}
		inner := text[len(prefix) : len(text)-1]
		if !balanced(inner) {
			continue
		}
		return inner, true
	}
	return "", false
}

// balanced reports whether angle brackets in s never close below depth zero
// and end at zero, so Option<A>,Vec<B> is not treated as one envelope.
func balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// splitTopLevel splits "K,V" at the first comma outside brackets.
func splitTopLevel(s string) (string, string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", false
}
