package artifact

import (
	"testing"

	"github.com/wippyai/jit-dispatch/features"
	"github.com/wippyai/jit-dispatch/target"
)

func TestCloneTargets(t *testing.T) {
	clones, err := CloneTargets("rv64gc;rv64gcv;rv64gc,+zfh,xfoo", target.GenericBackend)
	if err != nil {
		t.Fatalf("CloneTargets: %v", err)
	}
	if len(clones) != 3 {
		t.Fatalf("got %d clones, want 3", len(clones))
	}

	if clones[0].CPUName != "rv64gc" {
		t.Errorf("primary CPUName = %q", clones[0].CPUName)
	}
	if clones[0].Flags != 0 {
		t.Errorf("primary flags = %#x, want 0", clones[0].Flags)
	}
	for i := 1; i < len(clones); i++ {
		if clones[i].Flags&target.FlagCloneAll == 0 {
			t.Errorf("clone %d missing clone-all flag", i)
		}
	}
	if clones[2].CPUFeatures != "xfoo" {
		t.Errorf("clone 2 CPUFeatures = %q, want passthrough token", clones[2].CPUFeatures)
	}

	for i, c := range clones {
		if c.BaseIdx != 0 {
			t.Errorf("clone %d BaseIdx = %d, want 0", i, c.BaseIdx)
		}
		decoded, err := Decode(c.Data)
		if err != nil {
			t.Fatalf("Decode clone %d: %v", i, err)
		}
		if len(decoded) != 1 {
			t.Fatalf("clone %d blob holds %d targets, want 1", i, len(decoded))
		}
		if decoded[0].Name != clones[i].CPUName {
			t.Errorf("clone %d blob name = %q, want %q", i, decoded[0].Name, c.CPUName)
		}
	}

	second, err := Decode(clones[2].Data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !second[0].Features.Test(features.Zfh) || !second[0].Features.Test(features.Zfhmin) {
		t.Error("clone 2 must carry zfh and its dependency zfhmin")
	}
}

func TestCloneTargetsErrors(t *testing.T) {
	if _, err := CloneTargets("", target.GenericBackend); err == nil {
		t.Error("expected error for empty spec")
	}
	if _, err := CloneTargets("rv64gc;no-such-cpu", target.GenericBackend); err == nil {
		t.Error("expected error for unknown clone base name")
	}
}
