package device

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/errors"
)

// Guest addresses a T stored in linear memory at a byte offset. The offset
// is kept signed so positions before the start of memory, such as the one a
// reverse range ends at, still order and subtract correctly. Only offsets
// inside linear memory may be dereferenced.
type Guest[T any] struct {
	mem api.Memory
	off int64
}

// At returns the guest address of offset off in mem.
func At[T any](mem api.Memory, off uint32) Guest[T] {
	return Guest[T]{mem: mem, off: int64(off)}
}

// Alloc reserves room for n elements of T in the arena and returns the
// address of the first. The elements start zeroed.
func Alloc[T any](a *Arena, n int) (Guest[T], error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if n < 0 {
		return Guest[T]{}, errors.InvalidInput(errors.PhaseDevice, "negative element count")
	}
	if size != 0 && uint64(n) > math.MaxUint32/uint64(size) {
		return Guest[T]{}, errors.Overflow(errors.PhaseDevice, n, size)
	}
	off, err := a.Alloc(uint32(uint64(n)*uint64(size)), uint32(unsafe.Alignof(zero)))
	if err != nil {
		return Guest[T]{}, err
	}
	return Guest[T]{mem: a.mem.Mem, off: int64(off)}, nil
}

// Offset returns the byte offset in linear memory. It is only meaningful
// for addresses inside linear memory.
func (g Guest[T]) Offset() uint32 { return uint32(g.off) }

// Deref returns a host alias of the element. It panics if the element does
// not lie within linear memory.
func (g Guest[T]) Deref() *T {
	size := uint32(address.SizeOf[T]())
	var (
		buf []byte
		ok  bool
	)
	if g.off >= 0 && g.off <= math.MaxUint32 {
		buf, ok = g.mem.Read(uint32(g.off), size)
	}
	if !ok {
		panic(errors.New(errors.PhaseDevice, errors.KindOutOfBounds).
			Space("device").
			ElemType(reflect.TypeOf((*T)(nil)).Elem().String()).
			Value(g.off).
			Detail("offset %d outside %d byte memory", g.off, g.mem.Size()).
			Build())
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(buf)))
}

func (g Guest[T]) Add(n int) Guest[T] {
	return Guest[T]{mem: g.mem, off: g.off + int64(n)*int64(address.SizeOf[T]())}
}

func (g Guest[T]) Diff(o Guest[T]) int {
	size := int64(address.SizeOf[T]())
	if size == 0 {
		return 0
	}
	return int((g.off - o.off) / size)
}

// Strip returns a plain address aliasing the current linear memory buffer.
// It is invalidated by memory growth. An offset that is neither inside
// memory nor a whole number of elements from its start yields the null
// address.
func (g Guest[T]) Strip() address.Plain[T] {
	if g.mem == nil {
		return address.Plain[T]{}
	}
	all, ok := g.mem.Read(0, g.mem.Size())
	if !ok || len(all) == 0 {
		return address.Plain[T]{}
	}
	base := unsafe.Pointer(unsafe.SliceData(all))
	size := int64(address.SizeOf[T]())
	switch {
	case size != 0 && g.off%size == 0:
		return address.FromPointer[T](base).Add(int(g.off / size))
	case g.off >= 0 && g.off <= int64(len(all)):
		return address.FromPointer[T](unsafe.Add(base, g.off))
	}
	return address.Plain[T]{}
}

func (g Guest[T]) Addr() uintptr { return uintptr(g.off) }

func (g Guest[T]) IsNil() bool { return g.mem == nil }
