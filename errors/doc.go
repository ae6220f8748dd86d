// Package errors provides structured error types for the devmem library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the address space, element type, offending value and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAlloc, errors.KindAllocation).
//		Space("host").
//		ElemType("float32").
//		Detail("mlock %d bytes", n).
//		Cause(errno).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AllocationFailed(errors.PhaseAlloc, 1024, 8)
//	err := errors.InvalidShape(errors.PhaseView, 10, 3)
//
// Only allocation failures are reported at runtime by the library itself.
// Shape and index violations on the view hot path are undefined behaviour;
// the shape constructors here exist for owners that validate up front.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
