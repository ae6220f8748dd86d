package iterator

// Reverse walks a range backwards. A reverse iterator built from position b
// refers to the element just before b, so Reverse(end) is the last element
// and Reverse(begin) is one before the first.
type Reverse[T any, I RandomAccess[T, I]] struct {
	base I
}

// NewReverse returns a reverse iterator over base.
func NewReverse[T any, I RandomAccess[T, I]](base I) Reverse[T, I] {
	return Reverse[T, I]{base: base}
}

// Base returns the underlying forward iterator, one past the element r refers to.
func (r Reverse[T, I]) Base() I { return r.base }

func (r Reverse[T, I]) Ptr() *T { return r.base.Prev().Ptr() }

func (r Reverse[T, I]) Get() T { return r.base.Prev().Get() }

func (r Reverse[T, I]) Set(v T) { r.base.Prev().Set(v) }

func (r Reverse[T, I]) Next() Reverse[T, I] { return Reverse[T, I]{base: r.base.Prev()} }

func (r Reverse[T, I]) Prev() Reverse[T, I] { return Reverse[T, I]{base: r.base.Next()} }

func (r Reverse[T, I]) Add(n int) Reverse[T, I] { return Reverse[T, I]{base: r.base.Add(-n)} }

func (r Reverse[T, I]) Sub(o Reverse[T, I]) int { return o.base.Sub(r.base) }

func (r Reverse[T, I]) Equal(o Reverse[T, I]) bool { return r.base.Equal(o.base) }

func (r Reverse[T, I]) Less(o Reverse[T, I]) bool { return o.base.Less(r.base) }

func (r Reverse[T, I]) Addr() uintptr { return r.base.Addr() }

// Inc advances r by one element in place.
func (r *Reverse[T, I]) Inc() { r.base = r.base.Prev() }

// Dec moves r back by one element in place.
func (r *Reverse[T, I]) Dec() { r.base = r.base.Next() }
