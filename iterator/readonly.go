package iterator

// ReadOnly wraps an iterator and only allows reading through it.
type ReadOnly[T any, I RandomAccess[T, I]] struct {
	it I
}

// NewReadOnly returns the read-only variant of it.
func NewReadOnly[T any, I RandomAccess[T, I]](it I) ReadOnly[T, I] {
	return ReadOnly[T, I]{it: it}
}

func (c ReadOnly[T, I]) Get() T { return c.it.Get() }

func (c ReadOnly[T, I]) Next() ReadOnly[T, I] { return ReadOnly[T, I]{it: c.it.Next()} }

func (c ReadOnly[T, I]) Prev() ReadOnly[T, I] { return ReadOnly[T, I]{it: c.it.Prev()} }

func (c ReadOnly[T, I]) Add(n int) ReadOnly[T, I] { return ReadOnly[T, I]{it: c.it.Add(n)} }

func (c ReadOnly[T, I]) Sub(o ReadOnly[T, I]) int { return c.it.Sub(o.it) }

func (c ReadOnly[T, I]) Equal(o ReadOnly[T, I]) bool { return c.it.Equal(o.it) }

func (c ReadOnly[T, I]) Less(o ReadOnly[T, I]) bool { return c.it.Less(o.it) }

func (c ReadOnly[T, I]) Addr() uintptr { return c.it.Addr() }

// Mutable returns the writable iterator c was derived from.
func (c ReadOnly[T, I]) Mutable() I { return c.it }

// Inc advances c by one element in place.
func (c *ReadOnly[T, I]) Inc() { c.it = c.it.Next() }
