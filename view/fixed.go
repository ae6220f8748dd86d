package view

import (
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/iterator"
)

// Size carries a length in a type so it is fixed at compile time.
type Size interface {
	Len() int
}

type (
	Len1  struct{}
	Len2  struct{}
	Len3  struct{}
	Len4  struct{}
	Len8  struct{}
	Len16 struct{}
)

func (Len1) Len() int  { return 1 }
func (Len2) Len() int  { return 2 }
func (Len3) Len() int  { return 3 }
func (Len4) Len() int  { return 4 }
func (Len8) Len() int  { return 8 }
func (Len16) Len() int { return 16 }

// Fixed is a view of N contiguous elements, where N is a Size type.
//
//	v := view.NewFixed[float32, view.Len4](address.FromSlice(buf))
type Fixed[T any, N Size] struct {
	ptr address.Plain[T]
}

// NewFixed returns a fixed-length view starting at p.
func NewFixed[T any, N Size](p address.Plain[T]) Fixed[T, N] {
	return Fixed[T, N]{ptr: p}
}

// Len returns N.
func (f Fixed[T, N]) Len() int {
	var n N
	return n.Len()
}

// Pointer returns the address of the first element.
func (f Fixed[T, N]) Pointer() address.Plain[T] { return f.ptr }

// Ptr returns a pointer to element i. i is not checked.
func (f Fixed[T, N]) Ptr(i int) *T { return f.ptr.Add(i).Deref() }

// At returns element i. i is not checked.
func (f Fixed[T, N]) At(i int) T { return *f.ptr.Add(i).Deref() }

// Set stores v at element i. i is not checked.
func (f Fixed[T, N]) Set(i int, v T) { *f.ptr.Add(i).Deref() = v }

func (f Fixed[T, N]) Begin() iterator.Contiguous[T] { return iterator.NewContiguous(f.ptr) }

func (f Fixed[T, N]) End() iterator.Contiguous[T] { return iterator.NewContiguous(f.ptr.Add(f.Len())) }

func (f Fixed[T, N]) CBegin() iterator.ReadOnly[T, iterator.Contiguous[T]] {
	return iterator.NewReadOnly[T](f.Begin())
}

func (f Fixed[T, N]) CEnd() iterator.ReadOnly[T, iterator.Contiguous[T]] {
	return iterator.NewReadOnly[T](f.End())
}

func (f Fixed[T, N]) RBegin() iterator.Reverse[T, iterator.Contiguous[T]] {
	return iterator.NewReverse[T](f.End())
}

func (f Fixed[T, N]) REnd() iterator.Reverse[T, iterator.Contiguous[T]] {
	return iterator.NewReverse[T](f.Begin())
}

// Values copies the view into a new slice.
func (f Fixed[T, N]) Values() []T {
	return iterator.Collect[T](f.Begin(), f.End())
}

func (f *Fixed[T, N]) swapFields(o *Fixed[T, N]) {
	f.ptr, o.ptr = o.ptr, f.ptr
}

func (f *Fixed[T, N]) swapElements(o *Fixed[T, N]) {
	iterator.SwapRanges[T](f.Begin(), f.End(), o.Begin())
}
