// Package t9vm decodes packed prefix-trie programs for predictive text.
//
// A trie is built offline and shipped as a flat byte buffer. At runtime the
// words are enumerated lazily by a small machine that needs only three
// bounded stacks and a read cursor: no tree is materialized and nothing
// recurses, which suits keypad completion on small devices.
//
// # Architecture Overview
//
//	t9vm/        Root package with one-shot helpers
//	├── vm/      Traversal engine (Machine), completion, logger
//	├── instr/   Control byte codec: opcode, facets, payload length
//	├── stack/   Fixed-capacity stack with explicit overflow/underflow
//	├── asm/     Node-level program builder, text listings, disassembler
//	├── errors/  Structured error types for debugging
//	└── cmd/t9/  Developer CLI and interactive completion view
//
// # Quick Start
//
// Enumerate a program:
//
//	m := vm.New(program)
//	for word, err := range m.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(word)
//	}
//
// Complete a prefix:
//
//	cands, err := vm.New(program).Complete("app", 10)
//
// Write a program by hand:
//
//	program, err := asm.Parse(`
//	y:3 a
//	x:1 s
//	x:2 bite
//	`)
//
// # Program Format
//
// Each node is a control byte, a priority byte if the node ends a word, and
// up to 31 payload bytes. Children follow their parent directly, before the
// parent's next sibling. See package instr for the control byte layout.
//
// # Thread Safety
//
// A vm.Machine is NOT thread-safe. Any number of machines may read the same
// program buffer concurrently as long as nobody writes to it.
package t9vm
