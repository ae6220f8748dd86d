package hostalloc

import (
	"sync"
	"unsafe"

	"github.com/wippyai/devmem/errors"
)

// Platform is the operating system's page-locked allocation API.
type Platform interface {
	// AllocHost returns size bytes of host memory. It either returns a
	// non-nil address or an error.
	AllocHost(size int) (unsafe.Pointer, error)

	// FreeHost releases memory returned by AllocHost.
	FreeHost(p unsafe.Pointer) error
}

// Outstanding is implemented by platforms that keep allocation bookkeeping.
type Outstanding interface {
	// Live returns the number of allocations not yet released.
	Live() int
}

var (
	heapOnce sync.Once
	heapInst *heapPlatform
)

// Heap returns a platform that allocates from the Go heap. Memory is not
// page-locked.
func Heap() Platform {
	heapOnce.Do(func() { heapInst = newHeapPlatform() })
	return heapInst
}

// MaxHeapBytes is the largest request the heap platform accepts. Larger
// requests fail with an allocation error instead of reaching the runtime.
const MaxHeapBytes uint64 = 1 << 40

type heapPlatform struct {
	mu      sync.Mutex
	regions map[unsafe.Pointer][]uint64
}

func newHeapPlatform() *heapPlatform {
	return &heapPlatform{regions: make(map[unsafe.Pointer][]uint64)}
}

func (h *heapPlatform) AllocHost(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "non-positive allocation size")
	}
	if uint64(size) > MaxHeapBytes {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, uint64(size), 8)
	}
	buf, err := heapWords(size)
	if err != nil {
		return nil, err
	}
	p := unsafe.Pointer(unsafe.SliceData(buf))

	h.mu.Lock()
	h.regions[p] = buf
	h.mu.Unlock()
	return p, nil
}

// heapWords returns zeroed uint64 backing for size bytes, so every element
// type up to 8-byte alignment is valid. A request the runtime rejects as too
// large is reported as an allocation error.
func heapWords(size int) (buf []uint64, err error) {
	words := size / 8
	if size%8 != 0 {
		words++
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.New(errors.PhaseAlloc, errors.KindAllocation).
				Value(size).
				Detail("heap allocation of %d bytes failed: %v", size, r).
				Build()
		}
	}()
	return make([]uint64, words), nil
}

func (h *heapPlatform) FreeHost(p unsafe.Pointer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.regions[p]; !ok {
		return errors.InvalidInput(errors.PhaseAlloc, "release of memory not allocated by this platform")
	}
	delete(h.regions, p)
	return nil
}

func (h *heapPlatform) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.regions)
}
