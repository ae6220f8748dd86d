package view

import (
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/errors"
)

// Matrix is a row-major view of rows*cols elements. The column count is
// derived from the length and is never stored.
type Matrix[T any, P address.Address[T, P]] struct {
	Sequence[T, P]
	rows int
}

// NewMatrix returns a rows x cols view starting at p.
func NewMatrix[T any, P address.Address[T, P]](p P, rows, cols int) Matrix[T, P] {
	return Matrix[T, P]{Sequence: NewSequence[T](p, rows*cols), rows: rows}
}

// Rows returns the number of rows.
func (m Matrix[T, P]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T, P]) Cols() int {
	if m.rows == 0 {
		return 0
	}
	return m.length / m.rows
}

// Row returns row r. It uses the same address strategy as m.
func (m Matrix[T, P]) Row(r int) Sequence[T, P] {
	cols := m.Cols()
	return NewSequence[T](m.ptr.Add(r*cols), cols)
}

// Index is an alias for Row.
func (m Matrix[T, P]) Index(r int) Sequence[T, P] { return m.Row(r) }

// Column returns column c as a view striding over m by the column count.
func (m Matrix[T, P]) Column(c int) Sequence[T, address.Striding[T, P]] {
	return NewSequence[T](address.NewStriding[T](m.ptr.Add(c), m.Cols()), m.rows)
}

// CRow returns row r as a read-only view.
func (m Matrix[T, P]) CRow(r int) ReadOnlySequence[T, P] { return m.Row(r).ReadOnly() }

// CColumn returns column c as a read-only view.
func (m Matrix[T, P]) CColumn(c int) ReadOnlySequence[T, address.Striding[T, P]] {
	return m.Column(c).ReadOnly()
}

func (m *Matrix[T, P]) swapFields(o *Matrix[T, P]) {
	m.Sequence.swapFields(&o.Sequence)
	m.rows, o.rows = o.rows, m.rows
}

func (m *Matrix[T, P]) swapElements(o *Matrix[T, P]) {
	m.Sequence.swapElements(&o.Sequence)
}

// RowMatrix is a Matrix whose rows each occupy contiguous memory. Rows need
// not be adjacent to one another; padding between rows is expressed by the
// address strategy the owner supplies (see address.Padded).
type RowMatrix[T any, P address.Address[T, P]] struct {
	Matrix[T, P]
}

// NewRowMatrix returns a rows x cols view with contiguous rows starting at p.
func NewRowMatrix[T any, P address.Address[T, P]](p P, rows, cols int) RowMatrix[T, P] {
	return RowMatrix[T, P]{Matrix: NewMatrix[T](p, rows, cols)}
}

// Row returns row r as a contiguous view.
func (m RowMatrix[T, P]) Row(r int) ContiguousSequence[T] {
	cols := m.Cols()
	return NewContiguous(m.ptr.Add(r*cols).Strip(), cols)
}

// Index is an alias for Row.
func (m RowMatrix[T, P]) Index(r int) ContiguousSequence[T] { return m.Row(r) }

// CRow returns row r as a read-only contiguous view.
func (m RowMatrix[T, P]) CRow(r int) ReadOnlyContiguous[T] { return m.Row(r).ReadOnly() }

// Ptr returns a pointer to the element at (row, col), found at flat offset
// row*Cols()+col. Neither index is checked.
func (m RowMatrix[T, P]) Ptr(row, col int) *T {
	return m.ptr.Add(row*m.Cols() + col).Strip().Deref()
}

// At returns the element at (row, col). Neither index is checked.
func (m RowMatrix[T, P]) At(row, col int) T { return *m.Ptr(row, col) }

// Set stores v at (row, col). Neither index is checked.
func (m RowMatrix[T, P]) Set(row, col int, v T) { *m.Ptr(row, col) = v }

func (m *RowMatrix[T, P]) swapFields(o *RowMatrix[T, P]) {
	m.Matrix.swapFields(&o.Matrix)
}

func (m *RowMatrix[T, P]) swapElements(o *RowMatrix[T, P]) {
	m.Matrix.swapElements(&o.Matrix)
}

// CheckShape reports whether length elements split evenly into rows.
// Views never call it; owners may before constructing a Matrix.
func CheckShape(length, rows int) error {
	switch {
	case length < 0 || rows < 0:
		return errors.InvalidInput(errors.PhaseView, "negative matrix dimension")
	case rows == 0 && length != 0:
		return errors.InvalidShape(errors.PhaseView, length, rows)
	case rows != 0 && length%rows != 0:
		return errors.InvalidShape(errors.PhaseView, length, rows)
	}
	return nil
}
