package artifact

import (
	"github.com/wippyai/jit-dispatch/target"
)

// TargetSpec describes one compilation target handed to the code
// generator: the backend-facing CPU name and feature string plus the
// serialized descriptor embedded in the produced artifact.
type TargetSpec struct {
	CPUName     string
	CPUFeatures string
	Data        []byte
	Flags       uint32
	BaseIdx     int
}

// CloneTargets parses and resolves a multi-target spec string into one
// TargetSpec per requested target. Clone targets (index >= 1) are
// validated strictly: an unknown base name there is an error, not a
// fallback.
func CloneTargets(specStr string, be target.Backend) ([]TargetSpec, error) {
	specs, err := target.ParseSpecs(specStr)
	if err != nil {
		return nil, err
	}
	if err := target.CheckSpecs(specs); err != nil {
		return nil, err
	}

	targets := target.ResolveAll(specs, be)

	out := make([]TargetSpec, 0, len(targets))
	for _, t := range targets {
		name, feats := target.BackendTarget(t)
		out = append(out, TargetSpec{
			CPUName:     name,
			CPUFeatures: feats,
			Data:        Encode([]target.Target{t}),
			Flags:       t.Flags,
			BaseIdx:     0,
		})
	}
	return out, nil
}
