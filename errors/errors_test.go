package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseTraverse,
				Kind:   KindOverflow,
				Path:   []string{"machine", "prefix"},
				Offset: 17,
				Detail: "capacity 8 exceeded",
			},
			contains: []string{"[traverse]", "overflow", "machine.prefix", "offset 17", "capacity 8 exceeded"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindTruncated,
				Offset: NoOffset,
			},
			contains: []string{"[decode]", "truncated"},
			excludes: []string{"offset"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidInput,
				Offset: NoOffset,
				Detail: "read program",
				Cause:  errors.New("no such file"),
			},
			contains: []string{"[load]", "invalid_input", "read program", "caused by", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Load("open", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidOpcode(3, 0x08)

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidOpcode}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseTraverse, Kind: KindInvalidOpcode}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, ErrInvalidOpcode) {
		t.Error("errors.Is should match kind-only target")
	}

	wrapped := fmt.Errorf("advance: %w", err)
	if !errors.Is(wrapped, ErrInvalidOpcode) {
		t.Error("errors.Is should match through fmt wrapping")
	}
	if errors.Is(wrapped, ErrOverflow) {
		t.Error("errors.Is should not match unrelated kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseAssemble, KindInvalidInput).
		Path("line", "3").
		Offset(9).
		Value("q").
		Cause(cause).
		Detail("unknown mnemonic %q", "q").
		Build()

	if err.Phase != PhaseAssemble {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseAssemble)
	}
	if err.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
	}
	if len(err.Path) != 2 || err.Path[0] != "line" || err.Path[1] != "3" {
		t.Errorf("Path = %v, want [line 3]", err.Path)
	}
	if err.Offset != 9 {
		t.Errorf("Offset = %d, want 9", err.Offset)
	}
	if err.Value != "q" {
		t.Errorf("Value = %v, want q", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != `unknown mnemonic "q"` {
		t.Errorf("Detail = %q", err.Detail)
	}

	if got := New(PhaseDecode, KindTruncated).Build().Offset; got != NoOffset {
		t.Errorf("default Offset = %d, want NoOffset", got)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidOpcode", func(t *testing.T) {
		err := InvalidOpcode(5, 0x09)
		if err.Kind != KindInvalidOpcode || err.Offset != 5 {
			t.Errorf("Kind=%v Offset=%d", err.Kind, err.Offset)
		}
		if !strings.Contains(err.Detail, "001") {
			t.Errorf("Detail = %q, should contain opcode bits", err.Detail)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(10, "payload", 4, 1)
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
		if !strings.Contains(err.Detail, "4 byte(s), 1 left") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		err := InvalidUTF8(PhaseTraverse, 2, []byte{0xff, 0xfe})
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if !strings.Contains(err.Detail, "fffe") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseTraverse, []string{"control"}, 64)
		if err.Kind != KindOverflow || err.Value != 64 {
			t.Errorf("Kind=%v Value=%v", err.Kind, err.Value)
		}
	})

	t.Run("Underflow", func(t *testing.T) {
		err := Underflow(PhaseTraverse, []string{"prefix"}, 3, 1)
		if err.Kind != KindUnderflow || err.Value != 3 {
			t.Errorf("Kind=%v Value=%v", err.Kind, err.Value)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseDecode, []string{"program"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseEncode, "length 40 exceeds 31")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		malformed bool
		capacity  bool
	}{
		{"invalid opcode", InvalidOpcode(0, 0), true, false},
		{"truncated", Truncated(0, "priority", 1, 0), true, false},
		{"invalid utf8", InvalidUTF8(PhaseTraverse, 0, []byte{0xff}), true, false},
		{"overflow", Overflow(PhaseTraverse, nil, 1), false, true},
		{"underflow", Underflow(PhaseTraverse, nil, 2, 1), false, true},
		{"wrapped overflow", fmt.Errorf("x: %w", Overflow(PhaseTraverse, nil, 1)), false, true},
		{"plain error", errors.New("boom"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMalformed(tt.err); got != tt.malformed {
				t.Errorf("IsMalformed = %v, want %v", got, tt.malformed)
			}
			if got := IsCapacity(tt.err); got != tt.capacity {
				t.Errorf("IsCapacity = %v, want %v", got, tt.capacity)
			}
		})
	}
}
