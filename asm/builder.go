package asm

import (
	"strconv"

	"github.com/wippyai/t9vm/errors"
	"github.com/wippyai/t9vm/instr"
)

// Builder appends nodes to a program in pre-order. The first error is kept
// and returned by Bytes; later calls are ignored.
type Builder struct {
	buf   []byte
	err   error
	nodes int
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Node appends one node. A priority byte is written only when op ends a word.
// Invalid opcodes are accepted so that malformed programs can be produced.
func (b *Builder) Node(op instr.Opcode, prio byte, payload string) *Builder {
	if b.err != nil {
		return b
	}
	in, err := instr.Make(len(payload), op)
	if err != nil {
		b.err = errors.New(errors.PhaseAssemble, errors.KindOverflow).
			Path("node", strconv.Itoa(b.nodes)).
			Offset(len(b.buf)).
			Cause(err).
			Detail("payload %q", payload).
			Build()
		return b
	}
	b.buf = append(b.buf, byte(in))
	if in.IsWord() {
		b.buf = append(b.buf, prio)
	}
	b.buf = append(b.buf, payload...)
	b.nodes++
	return b
}

func (b *Builder) U(payload string) *Builder { return b.Node(instr.OpU, 0, payload) }
func (b *Builder) V(payload string) *Builder { return b.Node(instr.OpV, 0, payload) }
func (b *Builder) W(payload string) *Builder { return b.Node(instr.OpW, 0, payload) }
func (b *Builder) X(payload string) *Builder { return b.Node(instr.OpX, 0, payload) }
func (b *Builder) Y(payload string) *Builder { return b.Node(instr.OpY, 0, payload) }
func (b *Builder) Z(payload string) *Builder { return b.Node(instr.OpZ, 0, payload) }

// Raw appends bytes verbatim.
func (b *Builder) Raw(bs ...byte) *Builder {
	if b.err == nil {
		b.buf = append(b.buf, bs...)
	}
	return b
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out, nil
}

// MustBytes is like Bytes but panics on error.
func (b *Builder) MustBytes() []byte {
	out, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return out
}
