package derive

import (
	"fmt"
	"strings"

	"gc-derive/internal/common"
	"gc-derive/internal/match"
)

// Capability identifies one of the four generated capability families.
type Capability int

const (
	CapRootable Capability = iota
	CapTransplantable
	CapClass
	CapTrace
)

// AllCapabilities lists every capability in emission order.
var AllCapabilities = []Capability{CapRootable, CapTransplantable, CapClass, CapTrace}

// String returns the name used in descriptor files and diagnostics.
func (c Capability) String() string {
	switch c {
	case CapRootable:
		return "rootable"
	case CapTransplantable:
		return "transplantable"
	case CapClass:
		return "class"
	case CapTrace:
		return "trace"
	default:
		return common.UnknownStr
	}
}

var capabilityAliases = map[string]Capability{
	"rootable":          CapRootable,
	"lifetime":          CapRootable,
	"transplantable":    CapTransplantable,
	"class":             CapClass,
	"class-association": CapClass,
	"trace":             CapTrace,
	"traceable":         CapTrace,
}

// ParseCapability resolves a capability name, case-insensitively.
// Unknown names produce an error suggesting the closest known name.
func ParseCapability(name string) (Capability, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := capabilityAliases[key]; ok {
		return c, nil
	}

	known := make([]string, 0, len(capabilityAliases))
	for k := range capabilityAliases {
		known = append(known, k)
	}

	if s, ok := match.Closest(key, known, 3); ok {
		return 0, fmt.Errorf("unknown capability %q (did you mean %q?)", name, s)
	}

	return 0, fmt.Errorf("unknown capability %q", name)
}

// ParseCapabilities resolves a list of names into capabilities in emission
// order, dropping duplicates.
func ParseCapabilities(list []string) ([]Capability, error) {
	seen := make(map[Capability]bool)

	for _, name := range list {
		c, err := ParseCapability(name)
		if err != nil {
			return nil, err
		}

		seen[c] = true
	}

	var out []Capability

	for _, c := range AllCapabilities {
		if seen[c] {
			out = append(out, c)
		}
	}

	return out, nil
}
