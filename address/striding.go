package address

// Striding advances an underlying strategy by a fixed number of elements
// per logical step. A matrix column over row-major storage is a Striding
// address whose stride is the number of columns.
type Striding[T any, P Address[T, P]] struct {
	base   P
	stride int
}

// NewStriding returns a striding address that starts at base.
func NewStriding[T any, P Address[T, P]](base P, stride int) Striding[T, P] {
	return Striding[T, P]{base: base, stride: stride}
}

func (s Striding[T, P]) Deref() *T { return s.base.Deref() }

func (s Striding[T, P]) Add(n int) Striding[T, P] {
	return Striding[T, P]{base: s.base.Add(n * s.stride), stride: s.stride}
}

func (s Striding[T, P]) Diff(o Striding[T, P]) int {
	if s.stride == 0 {
		return 0
	}
	return s.base.Diff(o.base) / s.stride
}

func (s Striding[T, P]) Strip() Plain[T] { return s.base.Strip() }

func (s Striding[T, P]) Addr() uintptr { return s.base.Addr() }

func (s Striding[T, P]) IsNil() bool { return s.base.IsNil() }

// Stride returns the number of underlying elements per logical step.
func (s Striding[T, P]) Stride() int { return s.stride }

// Base returns the underlying address of the current element.
func (s Striding[T, P]) Base() P { return s.base }
