// Package jitdispatch resolves CPU feature targets for function
// multiversioning: it detects what the host CPU can do, parses the
// requested target list, and decides which compiled variant of the code
// a process should load and run.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	jitdispatch/         Root package (documentation only)
//	├── features/        Fixed-width feature bitsets, catalog and dependency closure
//	├── cpu/             Capability database and host CPU detection
//	├── target/          Target spec parsing and descriptor resolution
//	├── artifact/        Serialization of target lists embedded in artifacts
//	├── process/         One-shot per-process target state machine
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Resolve a target spec against the host:
//
//	specs, err := target.ParseSpecs("rv64gc,+zba,-c;rv64gcv")
//	if err != nil {
//		return err
//	}
//	targets := target.ResolveAll(specs, target.GenericBackend)
//
// Initialize the process target state from the environment:
//
//	state := process.New(target.GenericBackend)
//	targets, err := state.InitPrimary(process.DefaultSpec())
//
// Match a precompiled artifact against the running process:
//
//	idx, err := state.MatchSecondary(blob)
package jitdispatch
