package ir

// Shape describes the wrapper structure of a field type. The set of
// implementations is closed: Scalar, Optional, Sequence and Map.
type Shape interface {
	isShape()
}

// Scalar is a plain type name. Names that are not known primitives are
// nominal references and are passed through untouched.
type Scalar struct {
	Name string
}

// Optional wraps a value that may be absent.
type Optional struct {
	Inner Shape
}

// Sequence is an ordered collection of Inner.
type Sequence struct {
	Inner Shape
}

// Map is an associative collection keyed by Key.
type Map struct {
	Key   string
	Value Shape
}

func (Scalar) isShape()   {}
func (Optional) isShape() {}
func (Sequence) isShape() {}
func (Map) isShape()      {}

// ShapeString renders a shape in the compact form used by diagnostics:
// "T", "OPT T", "SEQ T", "MAP K,T".
func ShapeString(s Shape) string {
	switch s := s.(type) {
	case Scalar:
		return s.Name
	case Optional:
		return "OPT " + ShapeString(s.Inner)
	case Sequence:
		return "SEQ " + ShapeString(s.Inner)
	case Map:
		return "MAP " + s.Key + "," + ShapeString(s.Value)
	default:
		return ""
	}
}

// Unwrap strips an Optional layer, if any, and reports whether it did.
func Unwrap(s Shape) (Shape, bool) {
	if o, ok := s.(Optional); ok {
		return o.Inner, true
	}
	return s, false
}
