package cpu

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/jit-dispatch/features"
)

var (
	hostOnce sync.Once
	hostID   ID
	hostSet  features.Set
)

// Host returns the detected host profile id and raw feature set.
// Detection runs once; every later call observes the cached result.
// Recomputation would be side-effect-free and yield the same answer,
// so the cache is an optimization, not a correctness requirement.
func Host() (ID, features.Set) {
	hostOnce.Do(func() {
		hostID, hostSet = detectHost()
		Logger().Debug("host cpu detected",
			zap.String("profile", NameOf(hostID)),
			zap.Int("features", hostSet.Count()))
	})
	return hostID, hostSet
}

// detectFrom parses a /proc/cpuinfo-style capability description.
// The isa line carries the feature tokens; the uarch line, when it
// names a database profile exactly, overrides the score-based guess.
func detectFrom(r io.Reader) (ID, features.Set) {
	var (
		feats features.Set
		uarch string
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			// Harts report identical capabilities; start the next
			// block clean anyway.
			feats = features.Set{}
		case "isa":
			feats = parseISA(value)
		case "uarch":
			uarch = value
		}
	}

	id := bestMatch(feats)
	if uarch != "" {
		if p := Find(normalizeUarch(uarch)); p != nil {
			id = p.ID
		}
	}
	return id, feats
}

// parseISA maps a RISC-V ISA string such as
// "rv64imafdc_zicsr_zba_zbb" onto catalog bits. Single-letter
// extensions follow the rv64 prefix directly; multi-letter extensions
// are underscore-separated. Unrecognized tokens are ignored, never
// errors.
func parseISA(isa string) features.Set {
	var s features.Set

	isa = strings.ToLower(strings.TrimSpace(isa))
	if !strings.HasPrefix(isa, "rv64") && !strings.HasPrefix(isa, "rv32") {
		return s
	}

	rest := isa[len("rv64"):]
	i := 0
	for ; i < len(rest); i++ {
		c := rest[i]
		if c == '_' {
			break
		}
		switch c {
		case 'i', 'e':
			// Base integer ISA, implied by the prefix.
		case 'g':
			// G = IMAFD plus Zicsr/Zifencei.
			s.SetBit(features.M, true)
			s.SetBit(features.A, true)
			s.SetBit(features.F, true)
			s.SetBit(features.D, true)
		default:
			if bit, ok := features.FindBit(string(c)); ok {
				s.SetBit(bit, true)
			}
		}
	}

	for _, tok := range strings.Split(rest[i:], "_") {
		if tok == "" {
			continue
		}
		if bit, ok := features.FindBit(tok); ok {
			s.SetBit(bit, true)
		}
	}
	return s
}

// normalizeUarch canonicalizes a "vendor,uarch" string to the database
// spelling, e.g. "sifive,u74" -> "sifive-u74-mc".
func normalizeUarch(uarch string) string {
	cand := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(uarch)), ",", "-")
	if Find(cand) != nil {
		return cand
	}
	if Find(cand+"-mc") != nil {
		return cand + "-mc"
	}
	return cand
}

// bestMatch scores every database profile as the population count of
// the intersection with the detected features. The strictly highest
// score wins; ties go to the earliest declared entry.
func bestMatch(detected features.Set) ID {
	best := Generic
	bestScore := 0
	for i := range profiles {
		score := detected.Intersect(profiles[i].Features).Count()
		if score > bestScore {
			bestScore = score
			best = profiles[i].ID
		}
	}
	return best
}
