package asm

import (
	"github.com/wippyai/t9vm/errors"
	"github.com/wippyai/t9vm/instr"
)

// Line is one decoded node of a program.
type Line struct {
	Payload  []byte
	Offset   int
	Instr    instr.Instr
	Priority byte
	// PriorityAddr is the offset of the priority byte, or -1 for non-word nodes.
	PriorityAddr int
}

// Disassemble decodes program node by node in storage order. It does not walk
// the tree, so invalid opcodes are listed rather than rejected; a node whose
// bytes run past the end of program is an error.
func Disassemble(program []byte) ([]Line, error) {
	var lines []Line
	pc := 0
	for pc < len(program) {
		l := Line{Offset: pc, Instr: instr.Decode(program[pc]), PriorityAddr: -1}
		pc++

		if l.Instr.IsWord() {
			if pc >= len(program) {
				return lines, errors.Truncated(l.Offset, "priority", 1, 0)
			}
			l.PriorityAddr = pc
			l.Priority = program[pc]
			pc++
		}

		n := l.Instr.Len()
		if left := len(program) - pc; n > left {
			return lines, errors.Truncated(l.Offset, "payload", n, left)
		}
		l.Payload = program[pc : pc+n : pc+n]
		pc += n

		lines = append(lines, l)
	}
	return lines, nil
}
