package t9vm

import (
	"github.com/wippyai/t9vm/asm"
	"github.com/wippyai/t9vm/vm"
)

// Words returns every word in program, in program order, using default limits.
func Words(program []byte) ([]string, error) {
	return vm.New(program).Collect()
}

// CountWords returns the number of word-terminating nodes stored in program.
// It scans the buffer linearly without walking the tree.
func CountWords(program []byte) (int, error) {
	lines, err := asm.Disassemble(program)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range lines {
		if l.Instr.IsWord() {
			n++
		}
	}
	return n, nil
}
