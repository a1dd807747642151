package derive

import (
	"fmt"

	"gc-derive/internal/descriptor"
	"gc-derive/internal/diagnostic"
)

// Generator produces the implementation block of one capability.
type Generator interface {
	Capability() Capability
	// Generate returns the block for d, or an error and no block.
	Generate(d *descriptor.Descriptor) (*Block, error)
}

// New returns the generator for c.
func New(c Capability, opts Options) (Generator, error) {
	switch c {
	case CapRootable:
		return &RootableGenerator{opts: opts}, nil
	case CapTransplantable:
		return &TransplantableGenerator{opts: opts}, nil
	case CapClass:
		return &ClassGenerator{opts: opts}, nil
	case CapTrace:
		return &TraceGenerator{opts: opts}, nil
	default:
		return nil, fmt.Errorf("no generator for capability %d", int(c))
	}
}

// Generators returns one generator per capability in emission order.
func Generators(opts Options) []Generator {
	gens := make([]Generator, 0, len(AllCapabilities))

	for _, c := range AllCapabilities {
		g, err := New(c, opts)
		if err != nil {
			panic(err)
		}

		gens = append(gens, g)
	}

	return gens
}

// GenerateAll runs the generators for caps against d in emission order.
// If any of them fails no blocks are returned.
func GenerateAll(d *descriptor.Descriptor, caps []Capability, opts Options) ([]*Block, error) {
	ordered := make([]Capability, 0, len(caps))
	for _, c := range AllCapabilities {
		for _, want := range caps {
			if want == c {
				ordered = append(ordered, c)
				break
			}
		}
	}

	blocks := make([]*Block, 0, len(ordered))

	for _, c := range ordered {
		g, err := New(c, opts)
		if err != nil {
			return nil, err
		}

		b, err := g.Generate(d)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, b)
	}

	return blocks, nil
}

// checkDescriptor rejects malformed descriptors before any generation.
func checkDescriptor(d *descriptor.Descriptor, c Capability) error {
	res := descriptor.Validate(d)
	if res.IsValid() {
		return nil
	}

	name := ""
	if d != nil {
		name = d.Name
	}

	return diagnostic.Malformed(name, c.String(), res)
}
