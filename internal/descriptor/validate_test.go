package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gc-derive/internal/diagnostic"
)

func TestValidate_Valid(t *testing.T) {
	d := NewStruct("Point", Field{Name: "x", Type: "f64"}, Field{Name: "y", Type: "f64"}).
		WithScopes("a").
		WithTypes("C", "T")

	res := Validate(d)
	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diagnostic.CodeNilDescriptor, res.Errors[0].Code)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		desc *Descriptor
		code string
		want string
	}{
		{
			name: "empty type name",
			desc: NewStruct(""),
			code: diagnostic.CodeInvalidName,
			want: "invalid type name",
		},
		{
			name: "keyword type name",
			desc: NewStruct("impl"),
			code: diagnostic.CodeInvalidName,
			want: "reserved word",
		},
		{
			name: "static scope",
			desc: NewStruct("X").WithScopes("static"),
			code: diagnostic.CodeInvalidName,
			want: "scope parameter \"static\" is a reserved word",
		},
		{
			name: "duplicate scope",
			desc: NewStruct("X").WithScopes("a", "a"),
			code: diagnostic.CodeDuplicateName,
			want: "duplicate scope parameter 'a",
		},
		{
			name: "duplicate type parameter",
			desc: NewStruct("X").WithTypes("T", "T"),
			code: diagnostic.CodeDuplicateName,
			want: `duplicate type parameter "T"`,
		},
		{
			name: "invalid type parameter",
			desc: NewStruct("X").WithTypes("1T"),
			code: diagnostic.CodeInvalidName,
			want: `invalid type parameter "1T"`,
		},
		{
			name: "where without bounds",
			desc: &Descriptor{Name: "X", Variants: []Variant{{Style: StyleUnit}}, Where: []Predicate{{Subject: "T"}}},
			code: diagnostic.CodeBadPredicate,
			want: "has no bounds",
		},
		{
			name: "struct with two variants",
			desc: &Descriptor{Name: "X", Variants: []Variant{{Style: StyleUnit}, {Style: StyleUnit}}},
			code: diagnostic.CodeBadShape,
			want: "exactly one variant, got 2",
		},
		{
			name: "named struct variant",
			desc: &Descriptor{Name: "X", Variants: []Variant{{Name: "A", Style: StyleUnit}}},
			code: diagnostic.CodeBadShape,
			want: "struct variant must be unnamed",
		},
		{
			name: "unnamed enum variant",
			desc: NewEnum("E", Variant{Style: StyleUnit}),
			code: diagnostic.CodeBadShape,
			want: "enum variant must be named",
		},
		{
			name: "duplicate variant",
			desc: NewEnum("E", Variant{Name: "A", Style: StyleUnit}, Variant{Name: "A", Style: StyleUnit}),
			code: diagnostic.CodeDuplicateName,
			want: `duplicate variant "A"`,
		},
		{
			name: "duplicate field",
			desc: NewStruct("P", Field{Name: "x", Type: "u8"}, Field{Name: "x", Type: "u8"}),
			code: diagnostic.CodeDuplicateName,
			want: `duplicate field "x"`,
		},
		{
			name: "named tuple field",
			desc: &Descriptor{Name: "P", Variants: []Variant{{Style: StyleTuple, Fields: []Field{{Name: "x", Type: "u8"}}}}},
			code: diagnostic.CodeBadShape,
			want: "tuple field cannot be named",
		},
		{
			name: "unnamed field in named variant",
			desc: NewStruct("P", Field{Type: "u8"}),
			code: diagnostic.CodeBadShape,
			want: "unnamed field",
		},
		{
			name: "unit variant with fields",
			desc: NewEnum("E", Variant{Name: "A", Style: StyleUnit, Fields: []Field{{Type: "u8"}}}),
			code: diagnostic.CodeBadShape,
			want: "unit variant cannot have fields",
		},
		{
			name: "field without type",
			desc: NewStruct("P", Field{Name: "x"}),
			code: diagnostic.CodeBadShape,
			want: "field has no type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.desc)
			require.False(t, res.IsValid())
			assert.Equal(t, tt.code, res.Errors[0].Code)
			assert.Contains(t, res.Error().Error(), tt.want)
		})
	}
}

func TestValidate_FieldPaths(t *testing.T) {
	d := NewEnum("Node",
		Variant{Name: "Branch", Style: StyleNamed, Fields: []Field{{Name: "left", Type: "u8"}, {Name: "left", Type: "u8"}}},
	)

	res := Validate(d)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Node::Branch.left", res.Errors[0].FieldPath)
	assert.Equal(t, "Node", res.Errors[0].TypeName)
}

func TestValidate_EmptyEnumWarns(t *testing.T) {
	res := Validate(NewEnum("Never"))
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.CodeBadShape, res.Warnings[0].Code)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "Node", NewPath("Node").String())
	assert.Equal(t, "Node", NewPath("Node").Variant("").String())
	assert.Equal(t, "Node::Leaf", NewPath("Node").Variant("Leaf").String())
	assert.Equal(t, "Node::Leaf.0", NewPath("Node").Variant("Leaf").Field("0").String())
	assert.Equal(t, "Point.x", NewPath("Point").Field("x").String())
}

func TestDescriptor_Helpers(t *testing.T) {
	d := NewEnum("Node",
		Variant{Name: "A", Style: StyleTuple, Fields: []Field{{Type: "u8"}}},
		Variant{Name: "B", Style: StyleNamed, Fields: []Field{{Name: "x", Type: "u8"}, {Name: "y", Type: "u8"}}},
	).WithScopes("a").WithTypes("C")

	assert.True(t, d.IsEnum())
	assert.Equal(t, []string{"C"}, d.TypeNames())
	declared := d.Declared()
	assert.Len(t, declared, 3)

	for _, name := range []string{"C", "Node", "a"} {
		assert.True(t, declared.Has(name), name)
	}
	assert.Equal(t, "enum", d.Kind.String())
	assert.Equal(t, "tuple", StyleTuple.String())
}
