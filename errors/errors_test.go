package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		err  *Error
		want []string
	}{
		{
			InvalidSpec("empty target specification"),
			[]string{"[parse]", "invalid_spec", "empty target specification"},
		},
		{
			UnknownName(PhaseResolve, "rv64xyz"),
			[]string{"[resolve]", "unknown_name", "target rv64xyz"},
		},
		{
			Rejected("artifact has no targets"),
			[]string{"[match]", "rejected", "artifact has no targets"},
		},
		{
			InvalidData("truncated header", fmt.Errorf("unexpected EOF")),
			[]string{"[decode]", "invalid_data", "caused by: unexpected EOF"},
		},
	}
	for _, tt := range tests {
		msg := tt.err.Error()
		for _, part := range tt.want {
			if !strings.Contains(msg, part) {
				t.Errorf("%q missing %q", msg, part)
			}
		}
	}
}

func TestErrorIsMatchesPhaseAndKind(t *testing.T) {
	err := AlreadyInitialized()
	if !stderrors.Is(err, &Error{Phase: PhaseInit, Kind: KindAlreadyInitialized}) {
		t.Error("Is failed on matching phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseMatch, Kind: KindAlreadyInitialized}) {
		t.Error("Is matched wrong phase")
	}
	if stderrors.Is(err, stderrors.New("already initialized")) {
		t.Error("Is matched plain error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("short read")
	err := Wrap(PhaseDecode, KindInvalidData, cause, "target name")
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestRejectedFormatsArgs(t *testing.T) {
	err := Rejected("no target named %q in artifact", "rv64gcv")
	if !strings.Contains(err.Error(), `"rv64gcv"`) {
		t.Errorf("args not formatted: %q", err.Error())
	}
}
