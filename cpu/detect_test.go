package cpu

import (
	"strings"
	"testing"

	"github.com/wippyai/jit-dispatch/features"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		name string
		isa  string
		want features.Set
	}{
		{
			"plain rv64imafdc",
			"rv64imafdc",
			features.Mask(features.M, features.A, features.F, features.D, features.C),
		},
		{
			"g shorthand",
			"rv64gc",
			features.Mask(features.M, features.A, features.F, features.D, features.C),
		},
		{
			"multi-letter extensions",
			"rv64imafdc_zicsr_zifencei_zba_zbb_zbs",
			features.Mask(features.M, features.A, features.F, features.D, features.C,
				features.Zba, features.Zbb, features.Zbs),
		},
		{
			"vector",
			"rv64gcv_zvbb",
			features.Mask(features.M, features.A, features.F, features.D, features.C,
				features.V, features.Zvbb),
		},
		{
			"unknown tokens ignored",
			"rv64gc_xtheadba_zzz",
			features.Mask(features.M, features.A, features.F, features.D, features.C),
		},
		{
			"not a riscv string",
			"x86_64 sse2 avx",
			features.Set{},
		},
		{
			"empty",
			"",
			features.Set{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseISA(tt.isa); got != tt.want {
				t.Errorf("parseISA(%q):\n got %v\nwant %v",
					tt.isa, features.SetNames(got), features.SetNames(tt.want))
			}
		})
	}
}

func TestNormalizeUarch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sifive,u74-mc", "sifive-u74-mc"},
		{"sifive,u74", "sifive-u74-mc"},
		{" SiFive,U87-MC ", "sifive-u87-mc"},
		{"thead,c910", "thead-c910"},
	}
	for _, tt := range tests {
		if got := normalizeUarch(tt.in); got != tt.want {
			t.Errorf("normalizeUarch(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBestMatchScoring(t *testing.T) {
	tests := []struct {
		name     string
		detected features.Set
		want     ID
	}{
		{"nothing detected stays generic", features.Set{}, Generic},
		{
			// rv64gc and rv64imafdc carry identical masks; rv64gc is
			// declared first, so the tie goes to it. rv64gcv's extra v
			// bit is undetected and contributes nothing.
			"tie broken by declaration order",
			features.Mask(features.M, features.A, features.F, features.D, features.C),
			RV64GC,
		},
		{
			"vector host prefers rv64gcv",
			features.Mask(features.M, features.A, features.F, features.D, features.C, features.V),
			RV64GCV,
		},
		{
			"u74 features pick u74",
			sifiveU74Set,
			SiFiveU74,
		},
		{
			"partial detection still scores",
			features.Mask(features.F, features.D, features.C),
			RV64GC,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestMatch(tt.detected); got != tt.want {
				t.Errorf("bestMatch: got %s, want %s", NameOf(got), NameOf(tt.want))
			}
		})
	}
}

const sampleCpuinfo = `processor	: 0
hart		: 0
isa		: rv64imafdc_zicsr_zifencei_zba_zbb_zbs_zicbom_zicbop_zicboz
mmu		: sv39
uarch		: sifive,u74-mc

processor	: 1
hart		: 1
isa		: rv64imafdc_zicsr_zifencei_zba_zbb_zbs_zicbom_zicbop_zicboz
mmu		: sv39
uarch		: sifive,u74-mc
`

func TestDetectFromCpuinfo(t *testing.T) {
	id, feats := detectFrom(strings.NewReader(sampleCpuinfo))
	if id != SiFiveU74 {
		t.Errorf("profile: got %s, want sifive-u74-mc", NameOf(id))
	}
	if feats != sifiveU74Set {
		t.Errorf("features:\n got %v\nwant %v",
			features.SetNames(feats), features.SetNames(sifiveU74Set))
	}
}

func TestDetectFromUarchOverridesScore(t *testing.T) {
	// The ISA line only justifies rv64gc, but the uarch line names a
	// database profile exactly, which wins outright.
	text := "isa\t: rv64imafdc\nuarch\t: sifive,u87-mc\n"
	id, _ := detectFrom(strings.NewReader(text))
	if id != SiFiveU87 {
		t.Errorf("got %s, want sifive-u87-mc", NameOf(id))
	}
}

func TestDetectFromUnknownUarchKeepsScore(t *testing.T) {
	text := "isa\t: rv64imafdcv\nuarch\t: acme,rocket99\n"
	id, _ := detectFrom(strings.NewReader(text))
	if id != RV64GCV {
		t.Errorf("got %s, want rv64gcv", NameOf(id))
	}
}

func TestDetectFromEmptyInput(t *testing.T) {
	id, feats := detectFrom(strings.NewReader(""))
	if id != Generic || !feats.IsEmpty() {
		t.Errorf("got (%s, %v), want generic with no features", NameOf(id), feats)
	}
}

func TestHostIsStable(t *testing.T) {
	id1, s1 := Host()
	id2, s2 := Host()
	if id1 != id2 || s1 != s2 {
		t.Error("Host() returned different answers across calls")
	}
}
