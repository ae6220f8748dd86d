package iterator

import "github.com/wippyai/devmem/address"

// RandomAccess is the contract shared by every iterator kind.
type RandomAccess[T any, I any] interface {
	comparable
	Ptr() *T
	Get() T
	Set(v T)
	Next() I
	Prev() I
	Add(n int) I
	Sub(o I) int
	Equal(o I) bool
	Less(o I) bool
	Addr() uintptr
}

// Iter is a random-access iterator over any address strategy.
type Iter[T any, P address.Address[T, P]] struct {
	p P
}

// New returns an iterator positioned at p.
func New[T any, P address.Address[T, P]](p P) Iter[T, P] {
	return Iter[T, P]{p: p}
}

func (it Iter[T, P]) Ptr() *T { return it.p.Deref() }

func (it Iter[T, P]) Get() T { return *it.p.Deref() }

func (it Iter[T, P]) Set(v T) { *it.p.Deref() = v }

func (it Iter[T, P]) Next() Iter[T, P] { return Iter[T, P]{p: it.p.Add(1)} }

func (it Iter[T, P]) Prev() Iter[T, P] { return Iter[T, P]{p: it.p.Add(-1)} }

func (it Iter[T, P]) Add(n int) Iter[T, P] { return Iter[T, P]{p: it.p.Add(n)} }

func (it Iter[T, P]) Sub(o Iter[T, P]) int { return it.p.Diff(o.p) }

func (it Iter[T, P]) Equal(o Iter[T, P]) bool { return it.p.Addr() == o.p.Addr() }

func (it Iter[T, P]) Less(o Iter[T, P]) bool { return it.p.Diff(o.p) < 0 }

func (it Iter[T, P]) Addr() uintptr { return it.p.Addr() }

// Address returns the address strategy at the current position.
func (it Iter[T, P]) Address() P { return it.p }

// Inc advances it by one element in place.
func (it *Iter[T, P]) Inc() { it.p = it.p.Add(1) }

// Dec moves it back by one element in place.
func (it *Iter[T, P]) Dec() { it.p = it.p.Add(-1) }
