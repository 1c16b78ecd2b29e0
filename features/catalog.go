package features

import "github.com/coreos/go-semver/semver"

// Feature is one catalog entry: a named capability toggle with its bit
// index and the minimum backend toolchain version that understands it.
// A nil MinVersion means the feature has always been available.
type Feature struct {
	MinVersion *semver.Version
	Name       string
	Bit        uint32
}

var (
	byName  map[string]uint32
	byBit   map[uint32]string
	allMask Set
)

func init() {
	byName = make(map[string]uint32, len(Catalog))
	byBit = make(map[uint32]string, len(Catalog))
	for _, f := range Catalog {
		byName[f.Name] = f.Bit
		byBit[f.Bit] = f.Name
		allMask.SetBit(f.Bit, true)
	}
}

// FindBit looks up a feature name in the catalog.
func FindBit(name string) (uint32, bool) {
	bit, ok := byName[name]
	return bit, ok
}

// BitName returns the catalog name for a bit, or "" if unregistered.
func BitName(bit uint32) string {
	return byBit[bit]
}

// Count returns the number of registered features.
func Count() int {
	return len(Catalog)
}

// SupportedMask returns the set of catalog features available to a
// backend of the given version. A nil version imposes no constraint.
func SupportedMask(v *semver.Version) Set {
	if v == nil {
		return allMask
	}
	var s Set
	for _, f := range Catalog {
		if f.MinVersion != nil && v.LessThan(*f.MinVersion) {
			continue
		}
		s.SetBit(f.Bit, true)
	}
	return s
}

// SetNames returns the catalog names of all set bits, in bit order.
func SetNames(s Set) []string {
	var names []string
	for _, f := range Catalog {
		if s.Test(f.Bit) {
			names = append(names, f.Name)
		}
	}
	return names
}
