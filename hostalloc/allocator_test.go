package hostalloc

import (
	stderrors "errors"
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/errors"
	"github.com/wippyai/devmem/view"
)

// recordingPlatform wraps the heap platform and can be told to fail.
type recordingPlatform struct {
	mu     sync.Mutex
	inner  *heapPlatform
	fail   error
	nilOK  bool
	allocs []int
	frees  int
}

func newRecording() *recordingPlatform {
	return &recordingPlatform{inner: newHeapPlatform()}
}

func (r *recordingPlatform) AllocHost(size int) (unsafe.Pointer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.allocs = append(r.allocs, size)
	if r.fail != nil {
		return nil, r.fail
	}
	if r.nilOK {
		return nil, nil
	}
	return r.inner.AllocHost(size)
}

func (r *recordingPlatform) FreeHost(p unsafe.Pointer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frees++
	return r.inner.FreeHost(p)
}

func TestAllocator_AllocateDeallocate(t *testing.T) {
	plat := newRecording()
	a := New[float64](WithPlatform(plat), WithLogger(zaptest.NewLogger(t)))

	p, err := a.Allocate(16)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []int{16 * 8}, plat.allocs)
	assert.Equal(t, 1, plat.inner.Live())

	s := unsafe.Slice(p, 16)
	for i := range s {
		assert.Zero(t, s[i])
		s[i] = float64(i)
	}

	require.NoError(t, a.Deallocate(p, 16))
	assert.Equal(t, 1, plat.frees)
	assert.Equal(t, 0, plat.inner.Live())
}

func TestAllocator_ZeroAndNil(t *testing.T) {
	plat := newRecording()
	a := New[int32](WithPlatform(plat))

	p, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, plat.allocs)

	require.NoError(t, a.Deallocate(nil, 10))
	assert.Equal(t, 0, plat.frees)

	s, err := a.AllocateSlice(0)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestAllocator_PlatformFailure(t *testing.T) {
	plat := newRecording()
	plat.fail = stderrors.New("cannot allocate memory")
	a := New[int64](WithPlatform(plat))

	p, err := a.Allocate(1 << 20)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, err, plat.fail)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "host", e.Space)
	assert.Equal(t, "int64", e.ElemType)
}

func TestAllocator_PlatformReturnsNil(t *testing.T) {
	plat := newRecording()
	plat.nilOK = true
	a := New[byte](WithPlatform(plat))

	p, err := a.Allocate(4)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestAllocator_Overflow(t *testing.T) {
	plat := newRecording()
	a := New[[64]byte](WithPlatform(plat))

	p, err := a.Allocate(a.MaxSize() + 1)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseAlloc, Kind: errors.KindOverflow})
	assert.Empty(t, plat.allocs, "platform must not be called on overflow")
}

func TestAllocator_Negative(t *testing.T) {
	a := New[int](WithPlatform(newRecording()))
	_, err := a.Allocate(-1)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseAlloc, Kind: errors.KindInvalidInput})
}

func TestAllocator_DeallocateUnknown(t *testing.T) {
	a := New[int](WithPlatform(newRecording()))
	var x int
	err := a.Deallocate(&x, 1)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseAlloc, Kind: errors.KindInvalidInput})
}

func TestAllocator_MaxSize(t *testing.T) {
	assert.Equal(t, math.MaxInt/8, New[uint64]().MaxSize())
	assert.Equal(t, math.MaxInt, New[struct{}]().MaxSize())
}

func TestAllocator_ConstructDestroy(t *testing.T) {
	type pair struct{ a, b int32 }
	a := New[pair](WithPlatform(Heap()))

	p, err := a.Allocate(1)
	require.NoError(t, err)
	defer a.Deallocate(p, 1)

	a.Construct(p, pair{1, 2})
	assert.Equal(t, pair{1, 2}, *p)
	a.Destroy(p)
	assert.Equal(t, pair{}, *p)
}

func TestRebind(t *testing.T) {
	plat := newRecording()
	a := New[int32](WithPlatform(plat))
	b := Rebind[float64](a)

	pa, err := a.Allocate(3)
	require.NoError(t, err)
	pb, err := b.Allocate(3)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 24}, plat.allocs)

	require.NoError(t, b.Deallocate(pb, 3))
	require.NoError(t, a.Deallocate(pa, 3))
	assert.Equal(t, 0, plat.inner.Live())
}

func TestHeap_Live(t *testing.T) {
	h := newHeapPlatform()
	p, err := h.AllocHost(10)
	require.NoError(t, err)
	assert.Equal(t, 0, int(uintptr(p)%8))
	assert.Equal(t, 1, h.Live())
	require.NoError(t, h.FreeHost(p))
	assert.Error(t, h.FreeHost(p))

	_, err = h.AllocHost(0)
	assert.Error(t, err)

	var _ Outstanding = Heap().(*heapPlatform)
}

func TestPinned_MatrixOverLockedMemory(t *testing.T) {
	a := New[int32](WithPlatform(Pinned()))
	buf, err := a.AllocateSlice(12)
	if err != nil {
		// RLIMIT_MEMLOCK or a sandbox may refuse even one locked page.
		t.Skipf("pinned memory unavailable: %v", err)
	}
	defer func() {
		require.NoError(t, a.Deallocate(&buf[0], len(buf)))
	}()

	for i := range buf {
		a.Construct(&buf[i], int32(i))
	}
	m := view.NewRowMatrix[int32](address.FromSlice(buf), 3, 4)
	assert.Equal(t, int32(6), m.At(1, 2))
	assert.Equal(t, []int32{4, 5, 6, 7}, m.Row(1).Values())
	assert.Equal(t, []int32{2, 6, 10}, m.Column(2).Values())
}

func TestPinned_Bookkeeping(t *testing.T) {
	plat := Pinned()
	before := plat.(Outstanding).Live()

	a := New[byte](WithPlatform(plat))
	p, err := a.Allocate(4096)
	if err != nil {
		t.Skipf("pinned memory unavailable: %v", err)
	}
	assert.Equal(t, before+1, plat.(Outstanding).Live())
	require.NoError(t, a.Deallocate(p, 4096))
	assert.Equal(t, before, plat.(Outstanding).Live())
}

func TestHeap_HugeAllocation(t *testing.T) {
	a := New[byte](WithPlatform(Heap()))
	live := Heap().(Outstanding).Live()

	for _, n := range []int{math.MaxInt / 2, a.MaxSize() - 3, a.MaxSize()} {
		var (
			p   *byte
			err error
		)
		require.NotPanics(t, func() { p, err = a.Allocate(n) }, "n=%d", n)
		assert.Nil(t, p, "n=%d", n)
		assert.ErrorIs(t, err, ErrOutOfMemory, "n=%d", n)
	}
	assert.Equal(t, live, Heap().(Outstanding).Live())
}

func TestHeap_Words(t *testing.T) {
	tests := []struct {
		size  int
		words int
	}{
		{1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3},
	}
	for _, tt := range tests {
		buf, err := heapWords(tt.size)
		require.NoError(t, err)
		assert.Len(t, buf, tt.words, "size %d", tt.size)
	}

	_, err := newHeapPlatform().AllocHost(math.MaxInt)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseAlloc, Kind: errors.KindAllocation})
}
