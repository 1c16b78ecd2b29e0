// Package process holds the per-process target state: which targets
// the current process compiles for, selected once at startup and
// consulted for every artifact loaded afterwards.
//
// The state moves through exactly one transition, from uninitialized
// to ready, under a mutex. Initialization happens either from a spec
// string alone (InitPrimary) or by matching a precompiled primary
// artifact against the spec (MatchPrimaryImage). Secondary artifacts
// are then matched against the active target.
package process
