package hostalloc

import (
	"math"
	"reflect"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/devmem"
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/errors"
)

// ErrOutOfMemory matches every allocation failure returned by Allocate.
var ErrOutOfMemory = &errors.Error{
	Phase:  errors.PhaseAlloc,
	Kind:   errors.KindAllocation,
	Detail: "out of memory",
}

// Allocator hands out page-locked host memory for elements of type T. The
// zero value uses the Pinned platform and the package logger.
type Allocator[T any] struct {
	platform Platform
	logger   *zap.Logger
}

type options struct {
	platform Platform
	logger   *zap.Logger
}

// Option configures an Allocator.
type Option func(*options)

// WithPlatform selects the allocation API. The default is Pinned().
func WithPlatform(p Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithLogger sets the logger used for allocation events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New returns an allocator for elements of type T.
func New[T any](opts ...Option) Allocator[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Allocator[T]{platform: o.platform, logger: o.logger}
}

// Rebind returns an allocator for U configured like a. The two share no
// state.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{platform: a.platform, logger: a.logger}
}

func (a Allocator[T]) plat() Platform {
	if a.platform == nil {
		return Pinned()
	}
	return a.platform
}

func (a Allocator[T]) log() *zap.Logger {
	if a.logger == nil {
		return Logger()
	}
	return a.logger
}

func elemType[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// MaxSize returns the largest element count whose byte size fits in an int.
func (a Allocator[T]) MaxSize() int {
	size := address.SizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

// Allocate returns storage for n elements. Zero elements yield a nil pointer
// and no error. The memory is zeroed.
func (a Allocator[T]) Allocate(n int) (*T, error) {
	switch {
	case n < 0:
		return nil, errors.New(errors.PhaseAlloc, errors.KindInvalidInput).
			Space(devmem.SpaceHost.String()).
			ElemType(elemType[T]()).
			Value(n).
			Detail("negative element count %d", n).
			Build()
	case n == 0:
		return nil, nil
	case n > a.MaxSize():
		return nil, a.outOfMemory(n, errors.Overflow(errors.PhaseAlloc, n, address.SizeOf[T]()))
	}

	bytes := max(n*int(address.SizeOf[T]()), 1)
	p, err := a.plat().AllocHost(bytes)
	if err != nil {
		return nil, a.outOfMemory(n, err)
	}
	if p == nil {
		return nil, a.outOfMemory(n, errors.NilPointer(errors.PhaseAlloc, elemType[T]()))
	}

	a.log().Debug("allocate pinned",
		zap.String("type", elemType[T]()),
		zap.Int("count", n),
		zap.Int("bytes", bytes),
		zap.Uintptr("addr", uintptr(p)))
	return (*T)(p), nil
}

// AllocateSlice is Allocate returning the storage as a slice of length n.
func (a Allocator[T]) AllocateSlice(n int) ([]T, error) {
	p, err := a.Allocate(n)
	if err != nil || p == nil {
		return nil, err
	}
	return unsafe.Slice(p, n), nil
}

// Deallocate releases storage returned by Allocate. Releasing nil is a
// no-op.
func (a Allocator[T]) Deallocate(p *T, n int) error {
	if p == nil {
		return nil
	}
	if err := a.plat().FreeHost(unsafe.Pointer(p)); err != nil {
		return errors.New(errors.PhaseAlloc, errors.KindInvalidInput).
			Space(devmem.SpaceHost.String()).
			ElemType(elemType[T]()).
			Detail("release %d elements", n).
			Cause(err).
			Build()
	}
	a.log().Debug("deallocate pinned",
		zap.String("type", elemType[T]()),
		zap.Int("count", n),
		zap.Uintptr("addr", uintptr(unsafe.Pointer(p))))
	return nil
}

// Construct stores v at p.
func (a Allocator[T]) Construct(p *T, v T) { *p = v }

// Destroy resets the element at p to its zero value.
func (a Allocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

func (a Allocator[T]) outOfMemory(n int, cause error) error {
	a.log().Debug("pinned allocation failed",
		zap.String("type", elemType[T]()),
		zap.Int("count", n),
		zap.Error(cause))
	return errors.New(errors.PhaseAlloc, errors.KindAllocation).
		Space(devmem.SpaceHost.String()).
		ElemType(elemType[T]()).
		Value(n).
		Detail("out of memory allocating %d elements", n).
		Cause(cause).
		Build()
}
