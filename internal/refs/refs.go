// Package refs analyzes the nominal type references of a collection: which
// names it declares, which declared types use which, and which referenced
// names come from elsewhere.
package refs

import (
	"regexp"
	"sort"
	"strings"

	"github.com/phobologic/typeshare/internal/ir"
)

var pathRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z_][A-Za-z0-9_]*)*`)

// builtins are names that never refer to a user type: primitives and the
// standard wrappers that may survive inside an opaque element name.
var builtins = map[string]struct{}{
	"bool": {}, "char": {}, "str": {}, "String": {},
	"i8": {}, "i16": {}, "i32": {}, "i64": {}, "i128": {}, "isize": {},
	"u8": {}, "u16": {}, "u32": {}, "u64": {}, "u128": {}, "usize": {},
	"f32": {}, "f64": {},
	"Option": {}, "Vec": {}, "VecDeque": {}, "HashSet": {}, "BTreeSet": {},
	"HashMap": {}, "BTreeMap": {}, "IndexMap": {}, "Box": {}, "Rc": {}, "Arc": {},
	"static": {},
}

// Edge records that From has a field or payload referring to To.
type Edge struct {
	From string
	To   string
}

// Declared returns the original names of every struct and enum in coll.
func Declared(coll *ir.Collection) map[string]bool {
	declared := make(map[string]bool, coll.Len())
	for _, s := range coll.Structs {
		declared[s.ID.Original] = true
	}
	for _, e := range coll.Enums {
		declared[e.EnumID().Original] = true
	}
	return declared
}

// Names returns the user type names mentioned by a shape, in order of
// appearance and without duplicates. Path-qualified names keep their path.
func Names(s ir.Shape) []string {
	var text []string
	collectText(s, &text)

	seen := make(map[string]struct{})
	var names []string
	for _, t := range text {
		for _, name := range pathRe.FindAllString(t, -1) {
			if isBuiltin(name) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

func collectText(s ir.Shape, out *[]string) {
	switch s := s.(type) {
	case ir.Scalar:
		*out = append(*out, s.Name)
	case ir.Optional:
		collectText(s.Inner, out)
	case ir.Sequence:
		collectText(s.Inner, out)
	case ir.Map:
		*out = append(*out, s.Key)
		collectText(s.Value, out)
	}
}

func isBuiltin(name string) bool {
	last := name
	if i := strings.LastIndex(name, "::"); i >= 0 {
		last = name[i+2:]
	}
	_, ok := builtins[last]
	return ok
}

// Edges returns the references between declared types, deduplicated and
// sorted. Self references are dropped.
func Edges(coll *ir.Collection) []Edge {
	declared := Declared(coll)
	seen := make(map[Edge]struct{})
	var edges []Edge

	add := func(from string, shape ir.Shape) {
		for _, name := range Names(shape) {
			if !declared[name] || name == from {
				continue
			}
			e := Edge{From: from, To: name}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	forEachShape(coll, add)

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// External returns the sorted names referenced by coll that it does not
// declare.
func External(coll *ir.Collection) []string {
	declared := Declared(coll)
	seen := make(map[string]struct{})
	var names []string
	forEachShape(coll, func(_ string, shape ir.Shape) {
		for _, name := range Names(shape) {
			if declared[name] {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	})
	sort.Strings(names)
	return names
}

func forEachShape(coll *ir.Collection, fn func(owner string, shape ir.Shape)) {
	for _, s := range coll.Structs {
		for _, f := range s.Fields {
			fn(s.ID.Original, f.Shape)
		}
	}
	for _, e := range coll.Enums {
		a, ok := e.(*ir.AlgebraicEnumDecl)
		if !ok {
			continue
		}
		for _, c := range a.Cases {
			fn(a.ID.Original, c.Payload.Shape)
		}
	}
}
