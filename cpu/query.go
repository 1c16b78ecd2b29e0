package cpu

import "github.com/wippyai/jit-dispatch/features"

// HasFeature reports whether the detected host enables a feature bit.
func HasFeature(bit uint32) bool {
	_, s := Host()
	return s.Test(bit)
}

// HasFMA reports whether the host has hardware fused multiply-add at
// the given float width. Requires the base FP extension for the width
// plus Zfa.
func HasFMA(bits int) bool {
	_, s := Host()
	return hasFMA(s, bits)
}

func hasFMA(s features.Set, bits int) bool {
	switch bits {
	case 32:
		return s.Test(features.F) && s.Test(features.Zfa)
	case 64:
		return s.Test(features.D) && s.Test(features.Zfa)
	default:
		return false
	}
}
