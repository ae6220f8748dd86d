//go:build device

package view

// Swap exchanges the elements of s and o one by one. Both views must have
// the same length.
func (s *Sequence[T, P]) Swap(o *Sequence[T, P]) { s.swapElements(o) }

// Swap exchanges the elements of s and o one by one. Both views must have
// the same length.
func (s *ContiguousSequence[T]) Swap(o *ContiguousSequence[T]) { s.swapElements(o) }

// Swap exchanges the elements of f and o one by one.
func (f *Fixed[T, N]) Swap(o *Fixed[T, N]) { f.swapElements(o) }

// Swap exchanges the elements of m and o one by one. Both matrices must
// have the same shape.
func (m *Matrix[T, P]) Swap(o *Matrix[T, P]) { m.swapElements(o) }

// Swap exchanges the elements of m and o one by one. Both matrices must
// have the same shape.
func (m *RowMatrix[T, P]) Swap(o *RowMatrix[T, P]) { m.swapElements(o) }
