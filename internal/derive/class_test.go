package derive

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gc-derive/internal/descriptor"
	"gc-derive/internal/diagnostic"
)

func classItems(t *testing.T, b *Block) (*Marker, *Impl, *Impl) {
	t.Helper()

	require.Len(t, b.Items, 3, "block: %s", spew.Sdump(b))

	m, ok := b.Items[0].(*Marker)
	require.True(t, ok)

	forward, ok := b.Items[1].(*Impl)
	require.True(t, ok)

	reverse, ok := b.Items[2].(*Impl)
	require.True(t, ok)

	return m, forward, reverse
}

func TestClass_NoParameters(t *testing.T) {
	d := descriptor.NewStruct("Window")
	d.Visibility = "pub"

	m, forward, reverse := classItems(t, generate(t, CapClass, testOpts, d))

	assert.Equal(t, "WindowClass", m.Name)
	assert.Equal(t, "pub", m.Visibility)
	assert.Empty(t, m.Scopes)
	assert.Empty(t, m.Types)

	assert.True(t, forward.Generics.IsEmpty())
	assert.Equal(t, "::gc::HasClass", forward.Trait.String())
	assert.Equal(t, "Window", forward.Self.String())
	assert.Equal(t, "WindowClass", assoc(t, forward, AssocClass).String())
	assert.False(t, forward.Unsafe)
	assert.Empty(t, forward.Attrs)

	// The reverse association is generic over a synthesized witness.
	assert.Equal(t, Generics{Scopes: []string{"a"}, Types: params("C")}, reverse.Generics)
	assert.Equal(t, "::gc::ClassOf<'a, C>", reverse.Trait.String())
	assert.Equal(t, "WindowClass", reverse.Self.String())
	assert.Equal(t, "Window", assoc(t, reverse, AssocInstance).String())
}

func TestClass_SplitsParameters(t *testing.T) {
	d := descriptor.NewStruct("Node").WithScopes("a", "b")
	d.Types = []descriptor.Param{{Name: "C"}, {Name: "T", Bounds: []string{"Clone"}}}
	d.Where = []descriptor.Predicate{{Subject: "T", Bounds: []string{"'b"}}}

	m, forward, reverse := classItems(t, generate(t, CapClass, testOpts, d))

	assert.Equal(t, []string{"b"}, m.Scopes)
	assert.Equal(t, []string{"T"}, m.Types)
	assert.Equal(t, "NodeClass<'b, T>", m.Ref().String())

	assert.Equal(t, declaredGenerics(d), forward.Generics)
	assert.Equal(t, "Node<'a, 'b, C, T>", forward.Self.String())
	assert.Equal(t, "NodeClass<'b, T>", assoc(t, forward, AssocClass).String())
	assert.Equal(t, d.Where, forward.Where)

	assert.Equal(t, []string{"a", "b"}, reverse.Generics.Scopes)
	assert.Equal(t, d.Types, reverse.Generics.Types)
	assert.Equal(t, "::gc::ClassOf<'a, C>", reverse.Trait.String())
	assert.Equal(t, "NodeClass<'b, T>", reverse.Self.String())
	assert.Equal(t, forward.Self, assoc(t, reverse, AssocInstance))
	assert.Equal(t, d.Where, reverse.Where)
}

func TestClass_PartialDefaults(t *testing.T) {
	tests := []struct {
		name      string
		desc      *descriptor.Descriptor
		scope     string
		typ       string
		defScope  bool
		defType   bool
		trait     string
		instance  string
		markerRef string
	}{
		{
			name:      "scope only",
			desc:      descriptor.NewStruct("Ref").WithScopes("x"),
			scope:     "x",
			typ:       "C",
			defType:   true,
			trait:     "ClassOf<'x, C>",
			instance:  "Ref<'x>",
			markerRef: "RefClass",
		},
		{
			name:      "types only",
			desc:      descriptor.NewStruct("Cell").WithTypes("H", "T"),
			scope:     "a",
			typ:       "H",
			defScope:  true,
			trait:     "ClassOf<'a, H>",
			instance:  "Cell<H, T>",
			markerRef: "CellClass<T>",
		},
		{
			name:      "defaults avoid declared names",
			desc:      descriptor.NewStruct("C"),
			scope:     "a",
			typ:       "C1",
			defScope:  true,
			defType:   true,
			trait:     "ClassOf<'a, C1>",
			instance:  "C",
			markerRef: "CClass",
		},
		{
			name:      "default scope avoids type parameter named a",
			desc:      descriptor.NewStruct("Odd").WithTypes("a"),
			scope:     "a1",
			typ:       "a",
			defScope:  true,
			trait:     "ClassOf<'a1, a>",
			instance:  "Odd<a>",
			markerRef: "OddClass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &ClassGenerator{}

			w, err := g.Witness(tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.scope, w.Scope)
			assert.Equal(t, tt.typ, w.Type.Name)
			assert.Equal(t, tt.defScope, w.ScopeDefaulted)
			assert.Equal(t, tt.defType, w.TypeDefaulted)

			b, err := g.Generate(tt.desc)
			require.NoError(t, err)

			m, _, reverse := classItems(t, b)
			assert.Equal(t, tt.trait, reverse.Trait.String())
			assert.Equal(t, tt.instance, assoc(t, reverse, AssocInstance).String())
			assert.Equal(t, tt.markerRef, m.Ref().String())
		})
	}
}

func TestClass_MarkerSuffix(t *testing.T) {
	opts := testOpts
	opts.MarkerSuffix = "Marker"

	m, _, _ := classItems(t, generate(t, CapClass, opts, descriptor.NewStruct("Window")))
	assert.Equal(t, "WindowMarker", m.Name)
	assert.Contains(t, m.Doc, "Window")
}

func TestClass_Collisions(t *testing.T) {
	tests := []struct {
		name string
		desc *descriptor.Descriptor
		opts Options
		msg  string
	}{
		{
			name: "marker name is a type parameter",
			desc: descriptor.NewStruct("Window").WithTypes("WindowClass"),
			msg:  `marker type name "WindowClass"`,
		},
		{
			name: "strict default scope",
			desc: descriptor.NewStruct("Odd").WithTypes("a"),
			opts: Options{StrictNames: true},
			msg:  `default instance scope "a"`,
		},
		{
			name: "strict default type",
			desc: descriptor.NewStruct("C"),
			opts: Options{StrictNames: true},
			msg:  `default instance type "C"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := (&ClassGenerator{opts: tt.opts}).Generate(tt.desc)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, diagnostic.ErrCollision)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestClass_Malformed(t *testing.T) {
	_, err := (&ClassGenerator{}).Generate(descriptor.NewStruct("bad name"))
	assert.ErrorIs(t, err, diagnostic.ErrMalformed)
}
