package features

import "math/bits"

const (
	// Words is the number of 64-bit words in a Set. Sized to cover the
	// full catalog with room for future extensions of the same family.
	Words = 2

	wordBits = 64

	// MaxBits is the hard ceiling on feature bit indices.
	MaxBits = Words * wordBits
)

// Set is a fixed-width bitset over the feature catalog.
// It is a value type; copies are independent and comparison with ==
// is exact equality.
type Set [Words]uint64

// Mask builds a Set with the given bits enabled.
func Mask(bs ...uint32) Set {
	var s Set
	for _, b := range bs {
		s.SetBit(b, true)
	}
	return s
}

// SetBit sets or clears a single bit. Bits outside the catalog range
// are ignored, preserving the all-high-bits-zero invariant.
func (s *Set) SetBit(bit uint32, v bool) {
	if bit >= MaxBits {
		return
	}
	if v {
		s[bit/wordBits] |= 1 << (bit % wordBits)
	} else {
		s[bit/wordBits] &^= 1 << (bit % wordBits)
	}
}

// Test reports whether a bit is set. Out-of-range bits are false.
func (s Set) Test(bit uint32) bool {
	if bit >= MaxBits {
		return false
	}
	return s[bit/wordBits]&(1<<(bit%wordBits)) != 0
}

// Union returns the bitwise OR of both sets.
func (s Set) Union(o Set) Set {
	var r Set
	for i := range s {
		r[i] = s[i] | o[i]
	}
	return r
}

// Intersect returns the bitwise AND of both sets.
func (s Set) Intersect(o Set) Set {
	var r Set
	for i := range s {
		r[i] = s[i] & o[i]
	}
	return r
}

// AndNot returns s with every bit of o cleared.
func (s Set) AndNot(o Set) Set {
	var r Set
	for i := range s {
		r[i] = s[i] &^ o[i]
	}
	return r
}

// IsEmpty reports whether no bit is set.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Count returns the number of set bits across all words.
func (s Set) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}
