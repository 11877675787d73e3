package instr

import (
	"fmt"

	"github.com/wippyai/t9vm/errors"
)

const (
	OpcodeMask byte = 0b00000_111
	LenMask    byte = 0b11111_000
	LenShift        = 3

	// MaxLen is the largest payload length a control byte can carry.
	MaxLen = 31
)

// Opcode is the 3-bit node kind held in the low bits of a control byte.
type Opcode uint8

const (
	OpS Opcode = iota // !word, !children, !last (invalid)
	OpT               // !word, !children,  last (invalid)
	OpU               // !word,  children, !last
	OpV               // !word,  children,  last
	OpW               //  word, !children, !last
	OpX               //  word, !children,  last
	OpY               //  word,  children, !last
	OpZ               //  word,  children,  last
)

// Facets are the three flags an opcode encodes.
type Facets struct {
	Word     bool // node terminates a word and carries a priority byte
	Children bool // node is followed by at least one child node
	Last     bool // node is the last sibling at its level
}

type opInfo struct {
	facets   Facets
	mnemonic string
	valid    bool
}

var table = [8]opInfo{
	OpS: {Facets{Word: false, Children: false, Last: false}, "s", false},
	OpT: {Facets{Word: false, Children: false, Last: true}, "t", false},
	OpU: {Facets{Word: false, Children: true, Last: false}, "u", true},
	OpV: {Facets{Word: false, Children: true, Last: true}, "v", true},
	OpW: {Facets{Word: true, Children: false, Last: false}, "w", true},
	OpX: {Facets{Word: true, Children: false, Last: true}, "x", true},
	OpY: {Facets{Word: true, Children: true, Last: false}, "y", true},
	OpZ: {Facets{Word: true, Children: true, Last: true}, "z", true},
}

// Facets returns the flags encoded by op.
func (op Opcode) Facets() Facets {
	return table[op&7].facets
}

// Valid reports whether op may appear in a well-formed program.
func (op Opcode) Valid() bool {
	return table[op&7].valid
}

func (op Opcode) String() string {
	return table[op&7].mnemonic
}

// ParseOpcode maps a mnemonic letter ("s".."z") back to its opcode.
func ParseOpcode(s string) (Opcode, bool) {
	for i := range table {
		if table[i].mnemonic == s {
			return Opcode(i), true
		}
	}
	return 0, false
}

// OpcodeFor returns the opcode whose facets equal f.
func OpcodeFor(f Facets) Opcode {
	var op Opcode
	if f.Word {
		op |= 0b100
	}
	if f.Children {
		op |= 0b010
	}
	if f.Last {
		op |= 0b001
	}
	return op
}

// Instr is a packed control byte: payload length in the high 5 bits, opcode
// in the low 3.
type Instr uint8

// Decode interprets b as a control byte. Every byte decodes; use Valid to
// reject the two opcodes a well-formed program never contains.
func Decode(b byte) Instr {
	return Instr(b)
}

// Encode packs a payload length and facets into a control byte.
func Encode(length int, f Facets) (Instr, error) {
	return Make(length, OpcodeFor(f))
}

// Make packs a payload length and opcode into a control byte.
func Make(length int, op Opcode) (Instr, error) {
	if length < 0 || length > MaxLen {
		return 0, errors.New(errors.PhaseEncode, errors.KindOverflow).
			Value(length).
			Detail("payload length %d outside 0..%d", length, MaxLen).
			Build()
	}
	return Instr(byte(op)&OpcodeMask | byte(length)<<LenShift&LenMask), nil
}

// MustMake is like Make but panics on an out-of-range length. It is meant for
// program literals in tests and tooling.
func MustMake(length int, op Opcode) Instr {
	i, err := Make(length, op)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Instr) Opcode() Opcode {
	return Opcode(byte(i) & OpcodeMask)
}

// Len returns the payload length in bytes.
func (i Instr) Len() int {
	return int((byte(i) & LenMask) >> LenShift)
}

func (i Instr) Facets() Facets {
	return i.Opcode().Facets()
}

func (i Instr) IsWord() bool {
	return table[i.Opcode()].facets.Word
}

func (i Instr) HasChildren() bool {
	return table[i.Opcode()].facets.Children
}

func (i Instr) IsLast() bool {
	return table[i.Opcode()].facets.Last
}

func (i Instr) Valid() bool {
	return table[i.Opcode()].valid
}

// NodeSize returns the number of bytes the node occupies, excluding children.
func (i Instr) NodeSize() int {
	n := 1 + i.Len()
	if i.IsWord() {
		n++
	}
	return n
}

// String renders the instruction as mnemonic plus length, e.g. "y4".
func (i Instr) String() string {
	return fmt.Sprintf("%s%d", i.Opcode(), i.Len())
}
