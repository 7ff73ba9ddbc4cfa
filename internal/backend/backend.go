// Package backend defines the contract every target-language emitter
// implements, the registry of available emitters, and the dispatcher that
// drives one of them over a collection.
package backend

import (
	"io"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/refs"
)

// Option keys understood by the bundled backends.
const (
	OptionPrefix  = "prefix"
	OptionPackage = "package"
)

// Config is handed to every backend call of a run.
type Config struct {
	// Version is printed in the generated banner when non-empty.
	Version string
	// Options are backend-specific settings forwarded verbatim.
	Options map[string]string
	// Declared holds the original names of every type in the collection.
	Declared map[string]bool
	// References lists the links between declared types.
	References []refs.Edge
}

// Option returns the named option, or "" when unset.
func (c *Config) Option(key string) string {
	if c == nil {
		return ""
	}
	return c.Options[key]
}

// IsDeclared reports whether name is a type declared in this run.
func (c *Config) IsDeclared(name string) bool {
	return c != nil && c.Declared[name]
}

// Backend renders declarations in one target syntax. Calls arrive in the
// order fixed by Dispatch. A backend may keep state between calls of a
// single run and must not retain the declarations it is handed.
type Backend interface {
	Name() string
	BeginFile(w io.Writer, cfg *Config) error
	WriteStruct(w io.Writer, cfg *Config, s *ir.StructDecl) error
	WriteConstEnum(w io.Writer, cfg *Config, e *ir.ConstEnumDecl) error
	WriteAlgebraicEnum(w io.Writer, cfg *Config, e *ir.AlgebraicEnumDecl) error
	EndFile(w io.Writer, cfg *Config) error
}

// Spec describes a registered backend.
type Spec struct {
	Name      string
	Aliases   []string
	Extension string
	New       func() Backend
}

// Backends maps backend names and aliases to their spec.
// Populated by init() functions in per-backend files.
var Backends = map[string]*Spec{}

func register(s *Spec) {
	Backends[s.Name] = s
	for _, a := range s.Aliases {
		Backends[a] = s
	}
}

// Lookup returns the spec registered under name or one of its aliases.
func Lookup(name string) (*Spec, error) {
	s, ok := Backends[name]
	if !ok {
		return nil, errors.WithHintf(errors.Wrapf(ir.ErrUnknownBackend, "%q", name),
			"available backends: %v", Names())
	}
	return s, nil
}

// New returns a fresh instance of the named backend.
func New(name string) (Backend, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.New(), nil
}

// Names returns the canonical backend names, sorted.
func Names() []string {
	var names []string
	for key, s := range Backends {
		if key == s.Name {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}

// Dispatch drives b over coll: BeginFile, every struct, every enum, EndFile.
// The first write error stops the run and names the declaration involved.
func Dispatch(w io.Writer, b Backend, cfg *Config, coll *ir.Collection) error {
	if err := b.BeginFile(w, cfg); err != nil {
		return errors.Wrapf(err, "%s: begin file", b.Name())
	}
	for _, s := range coll.Structs {
		if err := b.WriteStruct(w, cfg, s); err != nil {
			return errors.Wrapf(err, "%s: struct %s", b.Name(), s.ID.Original)
		}
	}
	for _, e := range coll.Enums {
		var err error
		switch e := e.(type) {
		case *ir.ConstEnumDecl:
			err = b.WriteConstEnum(w, cfg, e)
		case *ir.AlgebraicEnumDecl:
			err = b.WriteAlgebraicEnum(w, cfg, e)
		default:
			err = errors.AssertionFailedf("unexpected enum declaration %T", e)
		}
		if err != nil {
			return errors.Wrapf(err, "%s: enum %s", b.Name(), e.EnumID().Original)
		}
	}
	if err := b.EndFile(w, cfg); err != nil {
		return errors.Wrapf(err, "%s: end file", b.Name())
	}
	return nil
}
