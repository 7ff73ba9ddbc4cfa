// Package ir defines the backend-agnostic declaration model built from Rust
// source: structs, constant enums and algebraic enums.
package ir

// Identifier pairs the name found in the source with the name emitted by
// backends. Renamed equals Original unless a case policy or explicit rename
// applied.
type Identifier struct {
	Original string
	Renamed  string
}

// NewIdentifier returns an identifier whose renamed form is the original.
func NewIdentifier(name string) Identifier {
	return Identifier{Original: name, Renamed: name}
}

func (id Identifier) String() string {
	if id.Original == id.Renamed {
		return "(" + id.Original + ")"
	}
	return "(" + id.Original + ", " + id.Renamed + ")"
}

// StructDecl is one shared record type.
type StructDecl struct {
	ID       Identifier
	Comments []string
	Fields   []FieldDecl
}

// FieldDecl is a struct field or the payload of an algebraic enum case.
type FieldDecl struct {
	ID       Identifier
	Comments []string
	Shape    Shape

	// Wrapper flags recorded by the type normalizer. IsSequence and IsMap are
	// mutually exclusive.
	IsOptional bool
	IsSequence bool
	IsMap      bool
}

// EnumDecl is either a *ConstEnumDecl or an *AlgebraicEnumDecl.
type EnumDecl interface {
	EnumID() Identifier
	isEnumDecl()
}

// ConstEnumDecl is an enum whose variants are all unit-shaped.
type ConstEnumDecl struct {
	ID       Identifier
	Comments []string
	// Backing is the literal kind of the first case's discriminant, nil when
	// the first case has none.
	Backing *LiteralKind
	Cases   []ConstCase
}

// ConstCase is one variant of a constant enum.
type ConstCase struct {
	ID           Identifier
	Comments     []string
	Discriminant *Literal
}

// AlgebraicEnumDecl is an enum whose variants all carry exactly one unnamed
// payload.
type AlgebraicEnumDecl struct {
	ID       Identifier
	Comments []string
	Cases    []AlgebraicCase
}

// AlgebraicCase is one variant of an algebraic enum.
type AlgebraicCase struct {
	ID       Identifier
	Comments []string
	Payload  FieldDecl
}

func (e *ConstEnumDecl) EnumID() Identifier     { return e.ID }
func (e *AlgebraicEnumDecl) EnumID() Identifier { return e.ID }

func (*ConstEnumDecl) isEnumDecl()     {}
func (*AlgebraicEnumDecl) isEnumDecl() {}

// Collection holds everything collected from one source file. Structs and
// enums each keep source order.
type Collection struct {
	Structs []*StructDecl
	Enums   []EnumDecl
}

// Len returns the total number of declarations.
func (c *Collection) Len() int {
	return len(c.Structs) + len(c.Enums)
}
