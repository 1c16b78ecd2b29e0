package features

import (
	"testing"

	"github.com/coreos/go-semver/semver"
)

func TestFindBit(t *testing.T) {
	tests := []struct {
		name string
		want uint32
		ok   bool
	}{
		{"f", F, true},
		{"d", D, true},
		{"zba", Zba, true},
		{"ztso", Ztso, true},
		{"xventana-custom", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		bit, ok := FindBit(tt.name)
		if ok != tt.ok || (ok && bit != tt.want) {
			t.Errorf("FindBit(%q): got (%d, %v), want (%d, %v)", tt.name, bit, ok, tt.want, tt.ok)
		}
	}
}

func TestBitName(t *testing.T) {
	if got := BitName(V); got != "v" {
		t.Errorf("BitName(V): got %q", got)
	}
	if got := BitName(40); got != "" {
		t.Errorf("BitName(retired bit): got %q, want empty", got)
	}
}

func TestCatalogBitsUnique(t *testing.T) {
	seen := make(map[uint32]string, len(Catalog))
	for _, f := range Catalog {
		if prev, dup := seen[f.Bit]; dup {
			t.Errorf("bit %d assigned to both %q and %q", f.Bit, prev, f.Name)
		}
		seen[f.Bit] = f.Name
		if f.Bit >= MaxBits {
			t.Errorf("feature %q bit %d exceeds set width", f.Name, f.Bit)
		}
	}
	if Count() != len(seen) {
		t.Errorf("Count() = %d, want %d", Count(), len(seen))
	}
}

func TestDepsReferenceCatalogBits(t *testing.T) {
	for _, d := range Deps {
		if BitName(d.Feature) == "" {
			t.Errorf("dep edge references unregistered feature bit %d", d.Feature)
		}
		if BitName(d.Requires) == "" {
			t.Errorf("dep edge references unregistered prerequisite bit %d", d.Requires)
		}
	}
}

func TestSupportedMask(t *testing.T) {
	all := SupportedMask(nil)
	for _, f := range Catalog {
		if !all.Test(f.Bit) {
			t.Errorf("nil version excludes %q", f.Name)
		}
	}

	old := SupportedMask(semver.New("16.0.0"))
	if old.Test(Zvkned) {
		t.Error("llvm 16 mask includes zvkned (needs 17)")
	}
	if !old.Test(V) {
		t.Error("llvm 16 mask lost unversioned feature v")
	}

	mid := SupportedMask(semver.New("17.0.5"))
	if !mid.Test(Zvkned) {
		t.Error("llvm 17 mask excludes zvkned")
	}
	if mid.Test(Zvfbfwma) {
		t.Error("llvm 17 mask includes zvfbfwma (needs 18)")
	}
}
