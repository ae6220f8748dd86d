package device

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/devmem/errors"
)

// arenaBase is the first offset the arena hands out.
const arenaBase = 16

// ErrExhausted is returned when the arena cannot grow linear memory any
// further. Match with errors.Is.
var ErrExhausted = &errors.Error{
	Phase:  errors.PhaseDevice,
	Kind:   errors.KindAllocation,
	Detail: "device memory exhausted",
}

// Arena is a bump allocator over linear memory. Individual allocations are
// never freed; Reset releases all of them at once. Every allocation starts
// zeroed.
type Arena struct {
	mem  *Memory
	next uint32
	high uint32 // end of the furthest allocation since creation
	mu   sync.Mutex
}

// NewArena creates an arena over mem.
func NewArena(mem *Memory) *Arena {
	return &Arena{mem: mem, next: arenaBase, high: arenaBase}
}

// Alloc reserves size bytes aligned to align and returns their offset.
// align must be a power of two; 0 means 1.
func (a *Arena) Alloc(size, align uint32) (uint32, error) {
	if align == 0 {
		align = 1
	}
	if align&(align-1) != 0 {
		return 0, errors.New(errors.PhaseDevice, errors.KindInvalidInput).
			Value(align).
			Detail("alignment %d is not a power of two", align).
			Build()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	start := (uint64(a.next) + uint64(align) - 1) &^ (uint64(align) - 1)
	end := start + uint64(size)
	if end > math.MaxUint32 {
		return 0, a.exhausted(size, align, nil)
	}

	if cur := uint64(a.mem.Size()); end > cur {
		pages := (end - cur + PageSize - 1) / PageSize
		prev, ok := a.mem.Mem.Grow(uint32(pages))
		if !ok {
			return 0, a.exhausted(size, align, errors.AllocationFailed(errors.PhaseDevice, uint64(size), uint64(align)))
		}
		Logger().Debug("device memory grown",
			zap.Uint32("from_pages", prev),
			zap.Uint64("by_pages", pages))
	}

	// Memory past the high-water mark has never been handed out and is
	// still zero.
	if dirty := min(end, uint64(a.high)); dirty > start {
		if err := a.mem.Write(uint32(start), make([]byte, dirty-start)); err != nil {
			return 0, err
		}
	}

	a.next = uint32(end)
	a.high = max(a.high, a.next)
	return uint32(start), nil
}

func (a *Arena) exhausted(size, align uint32, cause error) error {
	Logger().Debug("device allocation failed",
		zap.Uint32("size", size),
		zap.Uint32("align", align),
		zap.Uint32("used", a.next-arenaBase))
	return &errors.Error{
		Phase:  ErrExhausted.Phase,
		Kind:   ErrExhausted.Kind,
		Space:  "device",
		Value:  size,
		Detail: ErrExhausted.Detail,
		Cause:  cause,
	}
}

// Reset releases every allocation. Addresses handed out earlier must not be
// used afterwards; their bytes are cleared when the space is handed out
// again.
func (a *Arena) Reset() {
	a.mu.Lock()
	a.next = arenaBase
	a.mu.Unlock()
}

// Used returns the number of bytes handed out since creation or the last
// Reset, including alignment padding.
func (a *Arena) Used() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next - arenaBase
}
