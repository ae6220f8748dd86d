//go:build !device

package view

// Swap exchanges the contents of s and o by exchanging the view fields.
func (s *Sequence[T, P]) Swap(o *Sequence[T, P]) { s.swapFields(o) }

// Swap exchanges the contents of s and o by exchanging the view fields.
func (s *ContiguousSequence[T]) Swap(o *ContiguousSequence[T]) { s.swapFields(o) }

// Swap exchanges the contents of f and o by exchanging the view fields.
func (f *Fixed[T, N]) Swap(o *Fixed[T, N]) { f.swapFields(o) }

// Swap exchanges the contents of m and o by exchanging the view fields.
func (m *Matrix[T, P]) Swap(o *Matrix[T, P]) { m.swapFields(o) }

// Swap exchanges the contents of m and o by exchanging the view fields.
func (m *RowMatrix[T, P]) Swap(o *RowMatrix[T, P]) { m.swapFields(o) }
