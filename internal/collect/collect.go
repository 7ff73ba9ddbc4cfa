// Package collect builds the declaration IR from parsed source items.
package collect

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/phobologic/typeshare/internal/attrs"
	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/logging"
	"github.com/phobologic/typeshare/internal/naming"
	"github.com/phobologic/typeshare/internal/parse"
	"github.com/phobologic/typeshare/internal/typeexpr"
)

// Options configures a Collector.
type Options struct {
	// UseMarker restricts collection to items carrying #[typeshare].
	UseMarker bool
	// Logger receives per-item debug lines and warnings. Nil disables logging.
	Logger *zap.SugaredLogger
}

// Collector accumulates declarations for one source file. It is not safe for
// concurrent use; each input gets its own Collector.
type Collector struct {
	opts Options
	log  *zap.SugaredLogger
	coll ir.Collection
}

// New returns an empty Collector.
func New(opts Options) *Collector {
	return &Collector{opts: opts, log: logging.OrNop(opts.Logger)}
}

// Collect processes items in source order. Structs and enums go to separate
// collections, each keeping source order. An enum that is neither constant
// nor algebraic stops collection with an error wrapping
// ir.ErrUnsupportedShape; items collected before it stay available through
// Partial.
func (c *Collector) Collect(items []parse.Item) (*ir.Collection, error) {
	for i := range items {
		if err := c.collectItem(&items[i]); err != nil {
			return nil, err
		}
	}
	return &c.coll, nil
}

// Partial returns what has been collected so far.
func (c *Collector) Partial() *ir.Collection {
	return &c.coll
}

func (c *Collector) collectItem(item *parse.Item) error {
	md := attrs.Extract(item.Attrs)
	if c.opts.UseMarker && !md.HasMarker {
		c.log.Debugw("skipping unmarked item", logging.FieldItem, item.Name, logging.FieldLine, item.Line)
		return nil
	}

	switch item.Kind {
	case parse.Struct:
		if item.TupleStruct {
			c.log.Warnw("skipping tuple struct without named fields",
				logging.FieldItem, item.Name, logging.FieldLine, item.Line)
			return nil
		}
		s := c.buildStruct(item, md)
		c.coll.Structs = append(c.coll.Structs, s)
		c.log.Debugw("collected struct", logging.FieldItem, s.ID.Original, logging.FieldCount, len(s.Fields))
	case parse.Enum:
		e, err := c.buildEnum(item, md)
		if err != nil {
			return err
		}
		c.coll.Enums = append(c.coll.Enums, e)
		c.log.Debugw("collected enum", logging.FieldItem, e.EnumID().Original)
	}
	return nil
}

func (c *Collector) buildStruct(item *parse.Item, md attrs.Metadata) *ir.StructDecl {
	policy := naming.Policy(md.RenameAll)
	s := &ir.StructDecl{
		ID:       itemID(item.Name, md),
		Comments: md.Comments,
		Fields:   make([]ir.FieldDecl, 0, len(item.Fields)),
	}
	for _, f := range item.Fields {
		fmd := attrs.Extract(f.Attrs)
		s.Fields = append(s.Fields, field(f.Name, f.Type, fmd, policy))
	}
	return s
}

// buildEnum classifies the variants: all unit-shaped makes a constant enum,
// all single-payload makes an algebraic one. An enum without variants is a
// constant enum with no cases.
func (c *Collector) buildEnum(item *parse.Item, md attrs.Metadata) (ir.EnumDecl, error) {
	policy := naming.Policy(md.RenameAll)
	id := itemID(item.Name, md)

	if bad := invalidVariant(item.Variants); bad != nil {
		return nil, errors.WithHint(
			errors.Wrapf(ir.ErrUnsupportedShape, "enum %s (line %d): variant %s is %s-shaped",
				item.Name, item.Line, bad.Name, bad.Shape),
			"enum variants must be all unit-shaped or all carry exactly one unnamed value")
	}

	if allUnit(item.Variants) {
		e := &ir.ConstEnumDecl{ID: id, Comments: md.Comments}
		for _, v := range item.Variants {
			vmd := attrs.Extract(v.Attrs)
			e.Cases = append(e.Cases, ir.ConstCase{
				ID:           ir.Identifier{Original: v.Name, Renamed: naming.Rename(v.Name, policy, vmd.Rename)},
				Comments:     vmd.Comments,
				Discriminant: v.Discriminant,
			})
			if v.Discriminant != nil && !v.Discriminant.Supported() {
				c.log.Warnw("unsupported discriminant literal",
					logging.FieldItem, item.Name, "variant", v.Name, "literal", v.Discriminant.Raw,
					zap.Error(errors.Wrapf(ir.ErrUnsupportedLiteral, "%s::%s", item.Name, v.Name)))
			}
		}
		if len(e.Cases) > 0 && e.Cases[0].Discriminant != nil {
			kind := e.Cases[0].Discriminant.Kind
			e.Backing = &kind
		}
		return e, nil
	}

	e := &ir.AlgebraicEnumDecl{ID: id, Comments: md.Comments}
	for _, v := range item.Variants {
		vmd := attrs.Extract(v.Attrs)
		payload := field(v.Name, v.Payload, vmd, policy)
		e.Cases = append(e.Cases, ir.AlgebraicCase{
			ID:       payload.ID,
			Comments: vmd.Comments,
			Payload:  payload,
		})
	}
	return e, nil
}

// invalidVariant returns the first variant that rules out both enum kinds:
// one with named fields or several payloads, or, in a mix of unit and
// payload variants, the first variant disagreeing with the first one.
func invalidVariant(variants []parse.Variant) *parse.Variant {
	for i := range variants {
		switch variants[i].Shape {
		case parse.Named, parse.Tuple:
			return &variants[i]
		}
	}
	if len(variants) == 0 {
		return nil
	}
	first := variants[0].Shape
	for i := range variants[1:] {
		if variants[i+1].Shape != first {
			return &variants[i+1]
		}
	}
	return nil
}

func allUnit(variants []parse.Variant) bool {
	for _, v := range variants {
		if v.Shape != parse.Unit {
			return false
		}
	}
	return true
}

// itemID names a struct or enum. The bulk policy applies to members only,
// so the item itself honors just an explicit rename.
func itemID(name string, md attrs.Metadata) ir.Identifier {
	return ir.Identifier{Original: name, Renamed: naming.Rename(name, nil, md.Rename)}
}

func field(name, typ string, md attrs.Metadata, policy *naming.CasePolicy) ir.FieldDecl {
	r := typeexpr.Normalize(typ)
	return ir.FieldDecl{
		ID:         ir.Identifier{Original: name, Renamed: naming.Rename(name, policy, md.Rename)},
		Comments:   md.Comments,
		Shape:      r.Shape,
		IsOptional: r.IsOptional,
		IsSequence: r.IsSequence,
		IsMap:      r.IsMap,
	}
}
