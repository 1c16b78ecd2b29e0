// Package cpu holds the static CPU capability database and the host
// detector.
//
// The database maps named RISC-V profiles to baseline feature sets and
// a fallback profile reported when a codegen backend does not recognize
// the exact name. Host detection parses the platform capability
// description once per process; unsupported platforms degrade to the
// generic profile with no detected features, which is the designed
// fallback rather than an error.
package cpu
