package address

import "unsafe"

// Plain addresses contiguous storage. It holds the base pointer it was
// created from and an element offset, so advancing never materialises a
// pointer outside the storage; only Deref does.
type Plain[T any] struct {
	base unsafe.Pointer
	off  int
}

// Of returns the plain address of *p.
func Of[T any](p *T) Plain[T] {
	return Plain[T]{base: unsafe.Pointer(p)}
}

// FromSlice returns the plain address of the first element of s, or the
// null address if s has no capacity.
func FromSlice[T any](s []T) Plain[T] {
	if cap(s) == 0 {
		return Plain[T]{}
	}
	return Plain[T]{base: unsafe.Pointer(unsafe.SliceData(s))}
}

// FromPointer interprets p as the address of a T.
func FromPointer[T any](p unsafe.Pointer) Plain[T] {
	return Plain[T]{base: p}
}

func (p Plain[T]) Deref() *T {
	return (*T)(unsafe.Add(p.base, p.off*int(SizeOf[T]())))
}

func (p Plain[T]) Add(n int) Plain[T] {
	return Plain[T]{base: p.base, off: p.off + n}
}

func (p Plain[T]) Diff(o Plain[T]) int {
	size := SizeOf[T]()
	if size == 0 {
		return p.off - o.off
	}
	return int(p.Addr()-o.Addr()) / int(size)
}

func (p Plain[T]) Strip() Plain[T] { return p }

func (p Plain[T]) Addr() uintptr {
	return uintptr(p.base) + uintptr(p.off)*SizeOf[T]()
}

func (p Plain[T]) IsNil() bool { return p.base == nil }

// Slice returns the n elements starting at p as a Go slice sharing the
// same storage.
func (p Plain[T]) Slice(n int) []T {
	if p.base == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(p.Deref(), n)
}
