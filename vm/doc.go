// Package vm enumerates the words stored in a packed trie program.
//
// A program is a pre-order flattening of a trie. Each node is a control byte
// (see package instr), a priority byte when the node ends a word, and 0-31
// payload bytes. A node's children follow it directly, before its next
// sibling, and the last sibling at every level carries the "last" flag.
//
// Machine walks the program with three bounded stacks and a read cursor and
// no recursion:
//
//	control   control bytes of the nodes from the root to the cursor
//	prefix    their payload bytes, i.e. the current word prefix
//	priority  offsets of the priority bytes of word nodes on that path
//
// Each call to Next backtracks out of the previous word's node (if it has no
// children), then pushes nodes from the cursor until one ends a word:
//
//	m := vm.New(program)
//	for {
//	    word, ok, err := m.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if !ok {
//	        break
//	    }
//	    prio, _ := m.Priority()
//	    fmt.Println(word, prio)
//	}
//
// Words come out in the order the encoder laid them out; the machine neither
// sorts nor checks sibling order.
//
// # Errors
//
// Malformed programs (an opcode that is neither word nor descendants, a node
// cut off by the end of the buffer, a word that is not valid UTF-8) and stack
// limits set by Config are reported as *errors.Error from Next. A failed
// machine keeps returning the same error until Reset.
package vm
