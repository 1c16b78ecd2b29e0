// Package errors provides structured error types for target resolution
// and artifact matching.
//
// Every error carries a Phase (where it happened) and a Kind (what went
// wrong), so callers can distinguish fatal configuration mistakes
// (already_initialized, invalid_spec) from soft outcomes (unknown_name)
// and loader rejections (rejected) without string matching.
package errors
