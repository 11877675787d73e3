// Package instr packs and unpacks the control byte that describes one trie
// node in a program.
//
// A control byte holds the payload length in bits 3-7 and an opcode in bits
// 0-2. The opcode selects one of eight combinations of three facets:
//
//	op  mnemonic  word  children  last
//	000 s         no    no        no    invalid
//	001 t         no    no        yes   invalid
//	010 u         no    yes       no
//	011 v         no    yes       yes
//	100 w         yes   no        no
//	101 x         yes   no        yes
//	110 y         yes   yes       no
//	111 z         yes   yes       yes
//
// A node that neither ends a word nor has descendants is a dead end, so s and
// t never occur in a well-formed program. Decode accepts them anyway; callers
// check Valid.
package instr
