package address

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iota32(n int) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = int32(i)
	}
	return s
}

func TestPlain_AddDeref(t *testing.T) {
	data := iota32(8)
	p := FromSlice(data)

	for i := range data {
		assert.Equal(t, int32(i), *p.Add(i).Deref())
		assert.Equal(t, uintptr(unsafe.Pointer(&data[i])), p.Add(i).Addr())
	}

	*p.Add(3).Deref() = 42
	assert.Equal(t, int32(42), data[3])
}

func TestPlain_Diff(t *testing.T) {
	data := iota32(8)
	p := FromSlice(data)

	assert.Equal(t, 5, p.Add(5).Diff(p))
	assert.Equal(t, -5, p.Diff(p.Add(5)))
	assert.Equal(t, 0, p.Add(2).Diff(Of(&data[2])))
}

func TestPlain_Null(t *testing.T) {
	var p Plain[float64]
	assert.True(t, p.IsNil())
	assert.Equal(t, Plain[float64]{}, p)

	assert.True(t, FromSlice([]float64(nil)).IsNil())
	assert.False(t, FromSlice(make([]float64, 0, 1)).IsNil())
	assert.Nil(t, p.Slice(4))
}

func TestPlain_SliceAliases(t *testing.T) {
	data := iota32(6)
	s := FromSlice(data).Add(2).Slice(3)

	require.Len(t, s, 3)
	assert.Equal(t, []int32{2, 3, 4}, s)
	s[0] = -1
	assert.Equal(t, int32(-1), data[2])
}

func TestStriding(t *testing.T) {
	// 3x4 row-major, column 1 with stride 4
	data := iota32(12)
	s := NewStriding[int32](FromSlice(data).Add(1), 4)

	assert.Equal(t, 4, s.Stride())
	got := []int32{*s.Deref(), *s.Add(1).Deref(), *s.Add(2).Deref()}
	assert.Equal(t, []int32{1, 5, 9}, got)

	assert.Equal(t, 2, s.Add(2).Diff(s))
	assert.Equal(t, -1, s.Diff(s.Add(1)))
	assert.Equal(t, uintptr(unsafe.Pointer(&data[9])), s.Add(2).Addr())
	assert.Equal(t, FromSlice(data).Add(5), s.Add(1).Strip())
	assert.Equal(t, FromSlice(data).Add(5), s.Add(1).Base())
}

func TestStriding_Null(t *testing.T) {
	var s Striding[int32, Plain[int32]]
	assert.True(t, s.IsNil())
	assert.Equal(t, 0, s.Diff(s))
}

func TestPadded(t *testing.T) {
	// 3 rows of width 3 stored with a pitch of 5; padding holds -1.
	data := []int32{
		0, 1, 2, -1, -1,
		3, 4, 5, -1, -1,
		6, 7, 8, -1, -1,
	}
	p := NewPadded(FromSlice(data), 3, 5)

	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 5, p.Pitch())
	for i := 0; i < 9; i++ {
		assert.Equal(t, int32(i), *p.Add(i).Deref(), "logical element %d", i)
	}

	last := p.Add(8)
	assert.Equal(t, int32(5), *last.Add(-3).Deref())
	assert.Equal(t, int32(2), *p.Add(3).Add(-1).Deref())
	assert.Equal(t, 8, last.Diff(p))

	row1 := p.Add(3).Strip()
	assert.Equal(t, []int32{3, 4, 5}, row1.Slice(3))
	assert.Equal(t, uintptr(unsafe.Pointer(&data[10])), p.Add(6).Addr())
}

func TestConst(t *testing.T) {
	data := iota32(4)
	p := FromSlice(data)
	c := AsConst[int32](p)

	assert.Equal(t, int32(0), c.Load())
	assert.Equal(t, int32(3), c.Add(3).Load())
	assert.Equal(t, 3, c.Add(3).Diff(c))
	assert.Equal(t, p.Add(2).Addr(), c.Add(2).Addr())
	assert.False(t, c.IsNil())

	m := c.Add(1).Mutable()
	*m.Deref() = 10
	assert.Equal(t, int32(10), c.Add(1).Load())
}

func TestConst_OverStriding(t *testing.T) {
	data := iota32(6)
	s := NewStriding[int32](FromSlice(data), 2)
	c := AsConst[int32](s)

	assert.Equal(t, int32(4), c.Add(2).Load())
	assert.Equal(t, s, c.Mutable())
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, uintptr(4), SizeOf[int32]())
	assert.Equal(t, uintptr(16), SizeOf[complex128]())
	assert.Equal(t, uintptr(0), SizeOf[struct{}]())
}

func TestPlain_ZeroSizedElements(t *testing.T) {
	var x [4]struct{}
	p := FromSlice(x[:])
	assert.Equal(t, 3, p.Add(3).Diff(p))
}
