// Package asm writes and reads trie programs at the node level.
//
// It does not build a trie from a word list: callers lay out nodes in
// pre-order themselves and are responsible for the "last" markers and
// sibling order. Builder is the programmatic form, Parse the text form:
//
//	y:3 a
//	y aaron
//	x s
//	u pp
//	v "_"
//
// Disassemble goes the other way and Format renders its result back into a
// listing that Parse accepts.
package asm
