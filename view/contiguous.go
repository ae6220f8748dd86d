package view

import (
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/iterator"
)

// ContiguousSequence is a Sequence whose elements are consecutive in memory.
// Its iterators work on the raw address directly.
type ContiguousSequence[T any] struct {
	Sequence[T, address.Plain[T]]
}

// NewContiguous returns a contiguous view of length elements starting at p.
func NewContiguous[T any](p address.Plain[T], length int) ContiguousSequence[T] {
	return ContiguousSequence[T]{Sequence: NewSequence[T](p, length)}
}

// OverSlice returns a contiguous view of s. The view aliases s.
func OverSlice[T any](s []T) ContiguousSequence[T] {
	return NewContiguous(address.FromSlice(s), len(s))
}

func (s ContiguousSequence[T]) Begin() iterator.Contiguous[T] {
	return iterator.NewContiguous(s.ptr)
}

func (s ContiguousSequence[T]) End() iterator.Contiguous[T] {
	return iterator.NewContiguous(s.ptr.Add(s.length))
}

func (s ContiguousSequence[T]) CBegin() iterator.ReadOnly[T, iterator.Contiguous[T]] {
	return iterator.NewReadOnly[T](s.Begin())
}

func (s ContiguousSequence[T]) CEnd() iterator.ReadOnly[T, iterator.Contiguous[T]] {
	return iterator.NewReadOnly[T](s.End())
}

func (s ContiguousSequence[T]) RBegin() iterator.Reverse[T, iterator.Contiguous[T]] {
	return iterator.NewReverse[T](s.End())
}

func (s ContiguousSequence[T]) REnd() iterator.Reverse[T, iterator.Contiguous[T]] {
	return iterator.NewReverse[T](s.Begin())
}

func (s ContiguousSequence[T]) CRBegin() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Contiguous[T]]] {
	return iterator.NewReadOnly[T](s.RBegin())
}

func (s ContiguousSequence[T]) CREnd() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Contiguous[T]]] {
	return iterator.NewReadOnly[T](s.REnd())
}

// Slice returns the view as a Go slice sharing its storage.
func (s ContiguousSequence[T]) Slice() []T { return s.ptr.Slice(s.length) }

func (s *ContiguousSequence[T]) swapFields(o *ContiguousSequence[T]) {
	s.Sequence.swapFields(&o.Sequence)
}

func (s *ContiguousSequence[T]) swapElements(o *ContiguousSequence[T]) {
	iterator.SwapRanges[T](s.Begin(), s.End(), o.Begin())
}
