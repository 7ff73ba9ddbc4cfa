package ir

// LiteralKind classifies an enum discriminant literal.
type LiteralKind int

const (
	LiteralUnsupported LiteralKind = iota
	LiteralString
	LiteralByte
	LiteralChar
	LiteralInt
	LiteralFloat
	LiteralBool
)

var literalKindNames = [...]string{
	LiteralUnsupported: "unsupported",
	LiteralString:      "string",
	LiteralByte:        "byte",
	LiteralChar:        "char",
	LiteralInt:         "int",
	LiteralFloat:       "float",
	LiteralBool:        "bool",
}

func (k LiteralKind) String() string {
	if int(k) < len(literalKindNames) {
		return literalKindNames[k]
	}
	return "unsupported"
}

// Literal is a discriminant as written in the source.
type Literal struct {
	Kind LiteralKind
	// Raw is the verbatim source text.
	Raw string
	// Value is the decoded value: string contents without quotes, bytes in
	// decimal, integers in decimal without suffix, booleans as true/false.
	// Empty for unsupported literals.
	Value string
}

// Supported reports whether backends can render the literal as a value.
func (l *Literal) Supported() bool {
	return l != nil && l.Kind != LiteralUnsupported
}
