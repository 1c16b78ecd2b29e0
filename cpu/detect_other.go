//go:build !linux

package cpu

import "github.com/wippyai/jit-dispatch/features"

// detectHost has no capability probe off Linux; the generic profile
// with no features is the designed fallback, not an error.
func detectHost() (ID, features.Set) {
	return Generic, features.Set{}
}
