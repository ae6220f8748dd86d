package address

import "unsafe"

// Address is the capability set every address strategy provides. A is the
// strategy type itself, so Add and Diff stay statically typed:
//
//	func first[T any, A Address[T, A]](a A) T { return *a.Deref() }
type Address[T any, A any] interface {
	comparable

	// Deref returns a pointer to the element at this address.
	Deref() *T

	// Add returns the address n logical elements away. n may be negative.
	Add(n int) A

	// Diff returns the number of logical elements between o and this address.
	Diff(o A) int

	// Strip returns the raw contiguous address of the current element.
	Strip() Plain[T]

	// Addr returns the numeric address used for equality.
	Addr() uintptr

	// IsNil reports whether this is the null address.
	IsNil() bool
}

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
