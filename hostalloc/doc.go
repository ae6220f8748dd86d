// Package hostalloc allocates page-locked ("pinned") host memory for staging
// data on its way to or from the accelerator address space.
//
// # Platform
//
// The Platform interface is the boundary to the operating system's
// page-locked allocation API. Pinned returns the default platform: on Linux,
// macOS and the BSDs it maps anonymous memory and locks it with mlock; on
// other systems it falls back to the Go heap and nothing is locked. Heap is
// always available for tests and tools that do not need locked pages.
//
// # Allocator
//
// Allocator[T] is a stateless value. Each Allocate and Deallocate call is
// independent; Rebind converts an allocator to another element type.
//
//	a := hostalloc.New[float32]()
//	buf, err := a.AllocateSlice(1 << 20)
//	if err != nil {
//	    return err // errors.Is(err, hostalloc.ErrOutOfMemory)
//	}
//	defer a.Deallocate(&buf[0], len(buf))
//
// Allocation never reports success with a nil address: any platform
// failure, and any element count whose byte size overflows, is returned as
// an error matching ErrOutOfMemory.
//
// Pinned memory is not scanned by the garbage collector. T must not contain
// Go pointers that are the only reference to their target.
//
// # Thread Safety
//
// Allocators and the platforms returned by Pinned and Heap are safe for
// concurrent use.
package hostalloc
