package typeexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phobologic/typeshare/internal/ir"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		shape ir.Shape
		opt   bool
		seq   bool
		isMap bool
		elem  string
		key   string
	}{
		{
			name:  "scalar",
			in:    "String",
			shape: ir.Scalar{Name: "String"},
			elem:  "String",
		},
		{
			name:  "optional",
			in:    "Option<String>",
			shape: ir.Optional{Inner: ir.Scalar{Name: "String"}},
			opt:   true,
			elem:  "String",
		},
		{
			name:  "sequence",
			in:    "Vec<String>",
			shape: ir.Sequence{Inner: ir.Scalar{Name: "String"}},
			seq:   true,
			elem:  "String",
		},
		{
			name:  "optional sequence",
			in:    "Option<Vec<String>>",
			shape: ir.Optional{Inner: ir.Sequence{Inner: ir.Scalar{Name: "String"}}},
			opt:   true,
			seq:   true,
			elem:  "String",
		},
		{
			name:  "map",
			in:    "HashMap<String,i32>",
			shape: ir.Map{Key: "String", Value: ir.Scalar{Name: "i32"}},
			isMap: true,
			elem:  "i32",
			key:   "String",
		},
		{
			name:  "qualified map",
			in:    "std::collections::BTreeMap<String,Vec<u8>>",
			shape: ir.Map{Key: "String", Value: ir.Scalar{Name: "Vec<u8>"}},
			isMap: true,
			elem:  "Vec<u8>",
			key:   "String",
		},
		{
			name:  "sequence of optional stays opaque",
			in:    "Vec<Option<String>>",
			shape: ir.Sequence{Inner: ir.Scalar{Name: "Option<String>"}},
			seq:   true,
			elem:  "Option<String>",
		},
		{
			name:  "nested optional only peeled once",
			in:    "Option<Option<i32>>",
			shape: ir.Optional{Inner: ir.Scalar{Name: "Option<i32>"}},
			opt:   true,
			elem:  "Option<i32>",
		},
		{
			name:  "nominal reference",
			in:    "ItemDetailsFieldValue",
			shape: ir.Scalar{Name: "ItemDetailsFieldValue"},
			elem:  "ItemDetailsFieldValue",
		},
		{
			name:  "unbalanced envelope is scalar",
			in:    "Option<A>,Vec<B>",
			shape: ir.Scalar{Name: "Option<A>,Vec<B>"},
			elem:  "Option<A>,Vec<B>",
		},
		{
			name:  "map without comma is scalar",
			in:    "HashMap<K>",
			shape: ir.Scalar{Name: "HashMap<K>"},
			elem:  "HashMap<K>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.in)
			assert.Equal(t, tt.shape, got.Shape)
			assert.Equal(t, tt.opt, got.IsOptional, "IsOptional")
			assert.Equal(t, tt.seq, got.IsSequence, "IsSequence")
			assert.Equal(t, tt.isMap, got.IsMap, "IsMap")
			assert.Equal(t, tt.elem, got.Elem, "Elem")
			assert.Equal(t, tt.key, got.Key, "Key")
		})
	}
}
