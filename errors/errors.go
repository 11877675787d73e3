package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // control byte / node decoding
	PhaseTraverse Phase = "traverse" // trie walk and stack bookkeeping
	PhaseEncode   Phase = "encode"   // control byte packing
	PhaseAssemble Phase = "assemble" // program listing / builder
	PhaseLoad     Phase = "load"     // reading program files
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidOpcode Kind = "invalid_opcode"
	KindTruncated     Kind = "truncated"
	KindInvalidUTF8   Kind = "invalid_utf8"
	KindOverflow      Kind = "overflow"
	KindUnderflow     Kind = "underflow"
	KindInvalidInput  Kind = "invalid_input"
	KindOutOfBounds   Kind = "out_of_bounds"
)

// NoOffset marks an error that is not tied to a program position.
const NoOffset = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" in ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
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

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Targets for errors.Is checks that only care about the kind.
var (
	ErrInvalidOpcode = &Error{Kind: KindInvalidOpcode, Offset: NoOffset}
	ErrTruncated     = &Error{Kind: KindTruncated, Offset: NoOffset}
	ErrInvalidUTF8   = &Error{Kind: KindInvalidUTF8, Offset: NoOffset}
	ErrOverflow      = &Error{Kind: KindOverflow, Offset: NoOffset}
	ErrUnderflow     = &Error{Kind: KindUnderflow, Offset: NoOffset}
)

// IsMalformed reports whether err describes a program that is not a valid
// pre-order trie encoding.
func IsMalformed(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindInvalidOpcode, KindTruncated, KindInvalidUTF8:
		return true
	}
	return false
}

// IsCapacity reports whether err is a stack capacity violation.
func IsCapacity(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindOverflow || e.Kind == KindUnderflow
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Path sets the component path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the program offset the error refers to
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidOpcode creates an error for a control byte whose opcode may not
// appear in a well-formed program
func InvalidOpcode(offset int, raw byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidOpcode,
		Offset: offset,
		Value:  raw,
		Detail: fmt.Sprintf("control byte 0x%02x has opcode %03b (neither word nor descendants)", raw, raw&0x07),
	}
}

// Truncated creates an error for a node whose bytes run past the end of the program
func Truncated(offset int, what string, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("%s needs %d byte(s), %d left", what, need, have),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Offset: offset,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// Overflow creates a capacity overflow error
func Overflow(phase Phase, path []string, capacity int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Offset: NoOffset,
		Value:  capacity,
		Detail: fmt.Sprintf("capacity %d exceeded", capacity),
	}
}

// Underflow creates an error for removing more elements than are present
func Underflow(phase Phase, path []string, want, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnderflow,
		Path:   path,
		Offset: NoOffset,
		Value:  want,
		Detail: fmt.Sprintf("cannot drop %d element(s), %d present", want, have),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Offset: NoOffset,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

// Load wraps a failure to read a program from outside the process
func Load(detail string, cause error) *Error {
	return Wrap(PhaseLoad, KindInvalidInput, cause, detail)
}
