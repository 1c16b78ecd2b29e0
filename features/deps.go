package features

// Dep is a single dependency edge: Feature requires Requires.
type Dep struct {
	Feature  uint32
	Requires uint32
}

// EnableDepends closes s under the edge list by pulling in every
// prerequisite of an enabled feature. The edge list carries no ordering
// guarantee and may even contain cycles, so the scan repeats until a
// full pass changes nothing, with MaxBits passes as the ceiling.
func EnableDepends(s Set, deps []Dep) Set {
	for pass := 0; pass < MaxBits; pass++ {
		changed := false
		for _, d := range deps {
			if s.Test(d.Feature) && !s.Test(d.Requires) {
				s.SetBit(d.Requires, true)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return s
}

// DisableDepends closes s under the edge list in the other direction:
// every feature whose prerequisite is absent gets cleared.
func DisableDepends(s Set, deps []Dep) Set {
	for pass := 0; pass < MaxBits; pass++ {
		changed := false
		for _, d := range deps {
			if !s.Test(d.Requires) && s.Test(d.Feature) {
				s.SetBit(d.Feature, false)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return s
}
