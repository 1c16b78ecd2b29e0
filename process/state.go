package process

import (
	"sync"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"

	"github.com/wippyai/jit-dispatch/artifact"
	"github.com/wippyai/jit-dispatch/errors"
	"github.com/wippyai/jit-dispatch/target"
)

// SpecEnvVar names the environment variable consulted by DefaultSpec.
const SpecEnvVar = "JIT_CPU_TARGET"

// DefaultSpec returns the target spec string for this process: the
// value of JIT_CPU_TARGET, or "native" when unset.
func DefaultSpec() string {
	return env.Str(SpecEnvVar, target.NativeName)
}

// State is the process-wide target state. The zero value is not
// usable; construct with New.
type State struct {
	be      target.Backend
	targets []target.Target
	mu      sync.Mutex
	ready   bool
}

// New creates an uninitialized State bound to a backend.
func New(be target.Backend) *State {
	return &State{be: be}
}

// InitPrimary resolves a spec string and installs the result as the
// process target list. This is the startup path when no precompiled
// primary artifact is involved. It fails if the state was already
// initialized.
func (s *State) InitPrimary(spec string) ([]target.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil, errors.AlreadyInitialized()
	}

	specs, err := target.ParseSpecs(spec)
	if err != nil {
		return nil, err
	}
	if err := target.CheckSpecs(specs); err != nil {
		return nil, err
	}

	s.targets = target.ResolveAll(specs, s.be)
	s.ready = true

	Logger().Info("process targets initialized",
		zap.String("spec", spec),
		zap.Int("targets", len(s.targets)))
	return s.copyTargets(), nil
}

// MatchPrimaryImage initializes the process target state from a
// precompiled primary artifact: the spec's first target is resolved
// and becomes the single active target, and the returned index names
// the embedded descriptor whose name equals the resolved target's,
// defaulting to index 0 when no name matches. It fails if the state
// was already initialized.
func (s *State) MatchPrimaryImage(blob []byte, spec string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return 0, errors.AlreadyInitialized()
	}

	specs, err := target.ParseSpecs(spec)
	if err != nil {
		return 0, err
	}
	want := target.Resolve(specs[0], s.be)

	embedded, err := artifact.Decode(blob)
	if err != nil {
		return 0, err
	}
	if len(embedded) == 0 {
		return 0, errors.Rejected("primary artifact has no targets")
	}

	best := matchByName(embedded, want.Name)

	// The resolved target is the live one; the embedded descriptor only
	// selects which precompiled variant to load.
	s.targets = []target.Target{want}
	s.ready = true

	Logger().Info("primary artifact matched",
		zap.String("target", want.Name),
		zap.Int("index", best))
	return best, nil
}

// MatchSecondary matches a secondary artifact against the active
// target and returns the index of the embedded descriptor whose name
// equals the active target's, defaulting to index 0 when none matches.
// Secondary loading requires a single active target; a multi-target
// process must finish primary selection first.
func (s *State) MatchSecondary(blob []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return 0, errors.NotInitialized(errors.PhaseMatch)
	}
	if len(s.targets) != 1 {
		return 0, errors.Incompatible("expected a single active target")
	}

	embedded, err := artifact.Decode(blob)
	if err != nil {
		return 0, err
	}
	if len(embedded) == 0 {
		return 0, errors.Rejected("artifact has no targets")
	}

	best := matchByName(embedded, s.targets[0].Name)

	Logger().Debug("secondary artifact matched",
		zap.String("target", embedded[best].Name),
		zap.Int("index", best))
	return best, nil
}

// Targets returns a copy of the active target list, or a
// not-initialized error before primary selection.
func (s *State) Targets() ([]target.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, errors.NotInitialized(errors.PhaseMatch)
	}
	return s.copyTargets(), nil
}

// Ready reports whether primary selection has happened.
func (s *State) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *State) copyTargets() []target.Target {
	out := make([]target.Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// matchByName returns the index of the candidate named name, or 0 when
// no candidate matches. A later duplicate wins over an earlier one.
func matchByName(candidates []target.Target, name string) int {
	best := 0
	for i, c := range candidates {
		if c.Name == name {
			best = i
		}
	}
	return best
}
