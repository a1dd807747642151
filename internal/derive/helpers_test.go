package derive

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"gc-derive/internal/descriptor"
)

var testOpts = Options{Runtime: "::gc"}

// generate runs one generator and returns its single impl or marker items.
func generate(t *testing.T, c Capability, opts Options, d *descriptor.Descriptor) *Block {
	t.Helper()

	g, err := New(c, opts)
	require.NoError(t, err)
	require.Equal(t, c, g.Capability())

	b, err := g.Generate(d)
	require.NoError(t, err, "descriptor: %s", spew.Sdump(d))
	require.NotNil(t, b)
	require.Equal(t, c, b.Capability)
	require.Equal(t, d.Name, b.TypeName)

	return b
}

// soleImpl returns the only impl of a block.
func soleImpl(t *testing.T, b *Block) *Impl {
	t.Helper()

	impls := b.Impls()
	require.Len(t, impls, 1, "block: %s", spew.Sdump(b))

	return impls[0]
}

func assoc(t *testing.T, impl *Impl, name string) TypeRef {
	t.Helper()

	ref, ok := impl.AssocType(name)
	require.True(t, ok, "impl has no associated type %s: %s", name, spew.Sdump(impl))

	return ref
}

func params(names ...string) []descriptor.Param {
	out := make([]descriptor.Param, 0, len(names))
	for _, n := range names {
		out = append(out, descriptor.Param{Name: n})
	}

	return out
}
