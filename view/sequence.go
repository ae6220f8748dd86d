package view

import (
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/iterator"
)

// Sequence is a view of length elements reached through the address
// strategy P. It makes no assumption about contiguity.
type Sequence[T any, P address.Address[T, P]] struct {
	ptr    P
	length int
}

// NewSequence returns a view of length elements starting at p.
func NewSequence[T any, P address.Address[T, P]](p P, length int) Sequence[T, P] {
	return Sequence[T, P]{ptr: p, length: length}
}

// Len returns the number of elements in the view.
func (s Sequence[T, P]) Len() int { return s.length }

// Pointer returns the address of the first element.
func (s Sequence[T, P]) Pointer() P { return s.ptr }

// Ptr returns a pointer to element i. i is not checked.
func (s Sequence[T, P]) Ptr(i int) *T { return s.ptr.Add(i).Deref() }

// At returns element i. i is not checked.
func (s Sequence[T, P]) At(i int) T { return *s.ptr.Add(i).Deref() }

// Set stores v at element i. i is not checked.
func (s Sequence[T, P]) Set(i int, v T) { *s.ptr.Add(i).Deref() = v }

func (s Sequence[T, P]) Begin() iterator.Iter[T, P] { return iterator.New[T](s.ptr) }

func (s Sequence[T, P]) End() iterator.Iter[T, P] { return iterator.New[T](s.ptr.Add(s.length)) }

func (s Sequence[T, P]) CBegin() iterator.ReadOnly[T, iterator.Iter[T, P]] {
	return iterator.NewReadOnly[T](s.Begin())
}

func (s Sequence[T, P]) CEnd() iterator.ReadOnly[T, iterator.Iter[T, P]] {
	return iterator.NewReadOnly[T](s.End())
}

func (s Sequence[T, P]) RBegin() iterator.Reverse[T, iterator.Iter[T, P]] {
	return iterator.NewReverse[T](s.End())
}

func (s Sequence[T, P]) REnd() iterator.Reverse[T, iterator.Iter[T, P]] {
	return iterator.NewReverse[T](s.Begin())
}

func (s Sequence[T, P]) CRBegin() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Iter[T, P]]] {
	return iterator.NewReadOnly[T](s.RBegin())
}

func (s Sequence[T, P]) CREnd() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Iter[T, P]]] {
	return iterator.NewReadOnly[T](s.REnd())
}

// Values copies the view into a new slice.
func (s Sequence[T, P]) Values() []T {
	return iterator.Collect[T](s.Begin(), s.End())
}

func (s *Sequence[T, P]) swapFields(o *Sequence[T, P]) {
	s.ptr, o.ptr = o.ptr, s.ptr
	s.length, o.length = o.length, s.length
}

func (s *Sequence[T, P]) swapElements(o *Sequence[T, P]) {
	iterator.SwapRanges[T](s.Begin(), s.End(), o.Begin())
}
