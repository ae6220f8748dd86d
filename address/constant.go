package address

// Const is the read-only variant of an address strategy. It can be moved
// and compared like the strategy it wraps but only hands out copies of
// elements.
type Const[T any, P Address[T, P]] struct {
	p P
}

// AsConst returns the read-only variant of p.
func AsConst[T any, P Address[T, P]](p P) Const[T, P] {
	return Const[T, P]{p: p}
}

// Load returns a copy of the element at this address.
func (c Const[T, P]) Load() T { return *c.p.Deref() }

func (c Const[T, P]) Add(n int) Const[T, P] { return Const[T, P]{p: c.p.Add(n)} }

func (c Const[T, P]) Diff(o Const[T, P]) int { return c.p.Diff(o.p) }

func (c Const[T, P]) Addr() uintptr { return c.p.Addr() }

func (c Const[T, P]) IsNil() bool { return c.p.IsNil() }

// Mutable returns the writable strategy this address was derived from.
func (c Const[T, P]) Mutable() P { return c.p }
