package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in target processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // target spec string parsing
	PhaseDetect  Phase = "detect"  // host capability probing
	PhaseResolve Phase = "resolve" // descriptor resolution
	PhaseDecode  Phase = "decode"  // embedded target list decoding
	PhaseInit    Phase = "init"    // primary target initialization
	PhaseMatch   Phase = "match"   // secondary artifact matching
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidSpec        Kind = "invalid_spec"
	KindUnknownName        Kind = "unknown_name"
	KindInvalidData        Kind = "invalid_data"
	KindNotInitialized     Kind = "not_initialized"
	KindAlreadyInitialized Kind = "already_initialized"
	KindIncompatible       Kind = "incompatible"
	KindRejected           Kind = "rejected"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Target string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Target != "" {
		b.WriteString(" target ")
		b.WriteString(e.Target)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// InvalidSpec creates an invalid target spec error
func InvalidSpec(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidSpec,
		Detail: detail,
	}
}

// UnknownName creates an unknown CPU name error
func UnknownName(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownName,
		Target: name,
		Detail: "name not in the capability database",
	}
}

// InvalidData creates an invalid serialized data error
func InvalidData(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// NotInitialized is returned when the process target state is consulted
// before the primary artifact has been loaded
func NotInitialized(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: "process targets not initialized",
	}
}

// AlreadyInitialized is returned on a second primary initialization
func AlreadyInitialized() *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindAlreadyInitialized,
		Detail: "process targets already initialized",
	}
}

// Incompatible is returned when the live target list cannot host a
// secondary artifact at all (e.g. a multi-target process)
func Incompatible(detail string) *Error {
	return &Error{
		Phase:  PhaseMatch,
		Kind:   KindIncompatible,
		Detail: detail,
	}
}

// Rejected creates a structured rejection with a human-readable reason.
// Rejections are a loader outcome, not a crash: the caller may choose
// to recompile or refuse the artifact.
func Rejected(reason string, args ...any) *Error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &Error{
		Phase:  PhaseMatch,
		Kind:   KindRejected,
		Detail: reason,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
