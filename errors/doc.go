// Package errors provides structured error types for the t9vm module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the program offset, a component path and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncated).
//		Offset(42).
//		Detail("payload needs %d byte(s)", 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidOpcode(offset, b)
//	err := errors.Overflow(errors.PhaseTraverse, []string{"prefix"}, 256)
//
// Malformed programs (invalid_opcode, truncated, invalid_utf8) and capacity
// violations (overflow, underflow) can be told apart with IsMalformed and
// IsCapacity. All errors implement the standard error interface and support
// errors.Is/As.
package errors
