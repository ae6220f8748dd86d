package view

import (
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/iterator"
)

// ReadOnlySequence is the read-only form of a Sequence. It hands out
// element copies and read-only iterators only.
type ReadOnlySequence[T any, P address.Address[T, P]] struct {
	s Sequence[T, P]
}

// ReadOnly returns the read-only form of s. Both alias the same storage.
func (s Sequence[T, P]) ReadOnly() ReadOnlySequence[T, P] {
	return ReadOnlySequence[T, P]{s: s}
}

func (r ReadOnlySequence[T, P]) Len() int { return r.s.Len() }

// At returns element i. i is not checked.
func (r ReadOnlySequence[T, P]) At(i int) T { return r.s.At(i) }

func (r ReadOnlySequence[T, P]) Begin() iterator.ReadOnly[T, iterator.Iter[T, P]] {
	return r.s.CBegin()
}

func (r ReadOnlySequence[T, P]) End() iterator.ReadOnly[T, iterator.Iter[T, P]] {
	return r.s.CEnd()
}

func (r ReadOnlySequence[T, P]) RBegin() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Iter[T, P]]] {
	return r.s.CRBegin()
}

func (r ReadOnlySequence[T, P]) REnd() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Iter[T, P]]] {
	return r.s.CREnd()
}

// Values copies the view into a new slice.
func (r ReadOnlySequence[T, P]) Values() []T { return r.s.Values() }

// ReadOnlyContiguous is the read-only form of a ContiguousSequence.
type ReadOnlyContiguous[T any] struct {
	s ContiguousSequence[T]
}

// ReadOnly returns the read-only form of s. Both alias the same storage.
func (s ContiguousSequence[T]) ReadOnly() ReadOnlyContiguous[T] {
	return ReadOnlyContiguous[T]{s: s}
}

func (r ReadOnlyContiguous[T]) Len() int { return r.s.Len() }

// At returns element i. i is not checked.
func (r ReadOnlyContiguous[T]) At(i int) T { return r.s.At(i) }

func (r ReadOnlyContiguous[T]) Begin() iterator.ReadOnly[T, iterator.Contiguous[T]] {
	return r.s.CBegin()
}

func (r ReadOnlyContiguous[T]) End() iterator.ReadOnly[T, iterator.Contiguous[T]] {
	return r.s.CEnd()
}

func (r ReadOnlyContiguous[T]) RBegin() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Contiguous[T]]] {
	return r.s.CRBegin()
}

func (r ReadOnlyContiguous[T]) REnd() iterator.ReadOnly[T, iterator.Reverse[T, iterator.Contiguous[T]]] {
	return r.s.CREnd()
}

// Values copies the view into a new slice.
func (r ReadOnlyContiguous[T]) Values() []T { return r.s.Values() }
