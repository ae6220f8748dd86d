package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/devmem/address"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 10
	}
	return s
}

func TestIter_ForwardTraversal(t *testing.T) {
	data := seq(5)
	begin := New[int](address.FromSlice(data))
	end := begin.Add(len(data))

	var got []int
	for it := begin; !it.Equal(end); it = it.Next() {
		got = append(got, it.Get())
	}
	assert.Equal(t, data, got)
	assert.Equal(t, 5, Distance[int](begin, end))
}

func TestIter_RandomAccess(t *testing.T) {
	data := seq(6)
	begin := New[int](address.FromSlice(data))
	it := begin.Add(4)

	assert.Equal(t, 40, it.Get())
	assert.Equal(t, 30, it.Prev().Get())
	assert.Equal(t, 4, it.Sub(begin))
	assert.Equal(t, -4, begin.Sub(it))
	assert.True(t, begin.Less(it))
	assert.False(t, it.Less(begin))
	assert.False(t, it.Less(it))

	it.Set(-1)
	assert.Equal(t, -1, data[4])
	*begin.Ptr() = 7
	assert.Equal(t, 7, data[0])
}

func TestIter_IncDec(t *testing.T) {
	data := seq(3)
	it := New[int](address.FromSlice(data))
	it.Inc()
	it.Inc()
	assert.Equal(t, 20, it.Get())
	it.Dec()
	assert.Equal(t, 10, it.Get())
	assert.Equal(t, address.FromSlice(data).Add(1), it.Address())
}

func TestIter_Striding(t *testing.T) {
	data := seq(12)
	col := address.NewStriding[int](address.FromSlice(data).Add(2), 4)
	begin := New[int](col)
	end := begin.Add(3)

	assert.Equal(t, []int{20, 60, 100}, Collect[int](begin, end))
	assert.Equal(t, 3, end.Sub(begin))
	assert.True(t, begin.Less(end))
}

func TestIter_EqualityIsByAddress(t *testing.T) {
	data := seq(8)
	a := New[int](address.FromSlice(data)).Add(3)
	b := New[int](address.FromSlice(data[2:])).Add(1)

	assert.NotEqual(t, a.Address(), b.Address())
	assert.True(t, a.Equal(b))
}

func TestContiguous(t *testing.T) {
	data := seq(4)
	begin := NewContiguous(address.FromSlice(data))
	end := begin.Add(4)

	assert.Equal(t, data, Collect[int](begin, end))
	assert.Equal(t, 4, end.Sub(begin))
	assert.True(t, begin.Less(end))
	assert.Equal(t, 30, end.Prev().Get())

	it := begin
	it.Inc()
	it.Set(11)
	assert.Equal(t, 11, data[1])
	it.Dec()
	assert.True(t, it.Equal(begin))
	assert.Equal(t, address.FromSlice(data), it.Address())
}

func TestReverse_Law(t *testing.T) {
	data := seq(5)
	begin := NewContiguous(address.FromSlice(data))
	end := begin.Add(len(data))

	rbegin := NewReverse[int](end)
	rend := NewReverse[int](begin)

	assert.Equal(t, end.Prev().Get(), rbegin.Get())
	assert.Equal(t, []int{40, 30, 20, 10, 0}, Collect[int](rbegin, rend))
	assert.Equal(t, 5, rend.Sub(rbegin))
	assert.True(t, rbegin.Less(rend))
	assert.True(t, rbegin.Base().Equal(end))
}

func TestReverse_Movement(t *testing.T) {
	data := seq(5)
	begin := New[int](address.FromSlice(data))
	r := NewReverse[int](begin.Add(5))

	assert.Equal(t, 20, r.Add(2).Get())
	assert.Equal(t, 30, r.Add(2).Prev().Get())
	assert.Equal(t, 30, r.Next().Get())

	r.Inc()
	r.Inc()
	assert.Equal(t, 20, r.Get())
	r.Dec()
	assert.Equal(t, 30, r.Get())

	r.Set(99)
	assert.Equal(t, 99, data[3])
	*r.Ptr() = 98
	assert.Equal(t, 98, data[3])
}

func TestReverse_OverStriding(t *testing.T) {
	data := seq(6)
	s := New[int](address.NewStriding[int](address.FromSlice(data), 2))
	rb := NewReverse[int](s.Add(3))
	re := NewReverse[int](s)

	assert.Equal(t, []int{40, 20, 0}, Collect[int](rb, re))
}

func TestReadOnly(t *testing.T) {
	data := seq(3)
	begin := NewReadOnly[int](NewContiguous(address.FromSlice(data)))
	end := begin.Add(3)

	assert.Equal(t, data, CollectReadOnly[int](begin, end))
	assert.Equal(t, 10, begin.Next().Get())
	assert.Equal(t, 10, end.Prev().Prev().Get())
	assert.Equal(t, 3, end.Sub(begin))
	assert.True(t, begin.Less(end))
	assert.Equal(t, begin.Add(1).Addr(), begin.Mutable().Next().Addr())

	c := begin
	c.Inc()
	assert.True(t, c.Equal(begin.Next()))

	c.Mutable().Set(5)
	assert.Equal(t, 5, data[1])
}

func TestForEach(t *testing.T) {
	data := seq(4)
	begin := NewContiguous(address.FromSlice(data))
	ForEach[int](begin, begin.Add(4), func(v *int) { *v++ })
	assert.Equal(t, []int{1, 11, 21, 31}, data)
}

func TestSwapRanges(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{7, 8, 9, 10, 11, 12}

	first := NewContiguous(address.FromSlice(a))
	other := New[int](address.NewStriding[int](address.FromSlice(b), 2))

	next := SwapRanges[int](first, first.Add(3), other)
	require.Equal(t, []int{7, 9, 11}, a)
	assert.Equal(t, []int{1, 8, 2, 10, 3, 12}, b)
	assert.True(t, next.Equal(other.Add(3)))
}

func TestCollect_Empty(t *testing.T) {
	var p address.Plain[int]
	it := NewContiguous(p)
	assert.Empty(t, Collect[int](it, it))
}
