package address

// Padded addresses a row-major matrix whose rows are individually
// contiguous but start pitch elements apart, with pitch >= width. Logical
// element i lives at row i/width, column i%width.
type Padded[T any] struct {
	base  Plain[T]
	idx   int
	width int
	pitch int
}

// NewPadded returns the address of logical element 0 of storage starting at
// base, with rows of width elements placed pitch elements apart.
func NewPadded[T any](base Plain[T], width, pitch int) Padded[T] {
	return Padded[T]{base: base, width: width, pitch: pitch}
}

func (p Padded[T]) raw() Plain[T] {
	if p.width == 0 {
		return p.base
	}
	row, col := p.idx/p.width, p.idx%p.width
	if col < 0 {
		row, col = row-1, col+p.width
	}
	return p.base.Add(row*p.pitch + col)
}

func (p Padded[T]) Deref() *T { return p.raw().Deref() }

func (p Padded[T]) Add(n int) Padded[T] {
	p.idx += n
	return p
}

func (p Padded[T]) Diff(o Padded[T]) int { return p.idx - o.idx }

func (p Padded[T]) Strip() Plain[T] { return p.raw() }

func (p Padded[T]) Addr() uintptr { return p.raw().Addr() }

func (p Padded[T]) IsNil() bool { return p.base.IsNil() }

// Width returns the number of logical elements per row.
func (p Padded[T]) Width() int { return p.width }

// Pitch returns the distance in elements between the starts of two rows.
func (p Padded[T]) Pitch() int { return p.pitch }
