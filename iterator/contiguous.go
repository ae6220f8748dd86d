package iterator

import "github.com/wippyai/devmem/address"

// Contiguous iterates storage known to be contiguous. It works on the raw
// address directly instead of going through a wrapped strategy.
type Contiguous[T any] struct {
	p address.Plain[T]
}

// NewContiguous returns a contiguous iterator positioned at p.
func NewContiguous[T any](p address.Plain[T]) Contiguous[T] {
	return Contiguous[T]{p: p}
}

func (it Contiguous[T]) Ptr() *T { return it.p.Deref() }

func (it Contiguous[T]) Get() T { return *it.p.Deref() }

func (it Contiguous[T]) Set(v T) { *it.p.Deref() = v }

func (it Contiguous[T]) Next() Contiguous[T] { return Contiguous[T]{p: it.p.Add(1)} }

func (it Contiguous[T]) Prev() Contiguous[T] { return Contiguous[T]{p: it.p.Add(-1)} }

func (it Contiguous[T]) Add(n int) Contiguous[T] { return Contiguous[T]{p: it.p.Add(n)} }

func (it Contiguous[T]) Sub(o Contiguous[T]) int { return it.p.Diff(o.p) }

func (it Contiguous[T]) Equal(o Contiguous[T]) bool { return it.p.Addr() == o.p.Addr() }

func (it Contiguous[T]) Less(o Contiguous[T]) bool { return it.p.Addr() < o.p.Addr() }

func (it Contiguous[T]) Addr() uintptr { return it.p.Addr() }

// Address returns the raw address at the current position.
func (it Contiguous[T]) Address() address.Plain[T] { return it.p }

// Inc advances it by one element in place.
func (it *Contiguous[T]) Inc() { it.p = it.p.Add(1) }

// Dec moves it back by one element in place.
func (it *Contiguous[T]) Dec() { it.p = it.p.Add(-1) }
