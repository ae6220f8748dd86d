package main

import (
	"context"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/devmem"
	"github.com/wippyai/devmem/address"
	"github.com/wippyai/devmem/device"
	"github.com/wippyai/devmem/errors"
	"github.com/wippyai/devmem/hostalloc"
	"github.com/wippyai/devmem/launch"
	"github.com/wippyai/devmem/view"
)

// grid is a row matrix of int32 with its backing storage.
type grid interface {
	Rows() int
	Cols() int
	At(row, col int) int32
	Set(row, col int, v int32)
	Row(r int) []int32
	Column(c int) []int32
	Space() devmem.Space
	Describe() string
	// Raw describes where element (row, col) lives and its stored bytes.
	Raw(row, col int) (string, error)
	Close(ctx context.Context) error
}

type matrixGrid[P address.Address[int32, P]] struct {
	m       view.RowMatrix[int32, P]
	space   devmem.Space
	backing string
	raw     func(row, col int) (string, error)
	release func(ctx context.Context) error
}

func (g *matrixGrid[P]) Rows() int                 { return g.m.Rows() }
func (g *matrixGrid[P]) Cols() int                 { return g.m.Cols() }
func (g *matrixGrid[P]) At(row, col int) int32     { return g.m.At(row, col) }
func (g *matrixGrid[P]) Set(row, col int, v int32) { g.m.Set(row, col, v) }
func (g *matrixGrid[P]) Row(r int) []int32         { return g.m.Row(r).Values() }
func (g *matrixGrid[P]) Column(c int) []int32      { return g.m.Column(c).Values() }
func (g *matrixGrid[P]) Space() devmem.Space       { return g.space }
func (g *matrixGrid[P]) Describe() string          { return g.backing }

func (g *matrixGrid[P]) Raw(row, col int) (string, error) {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return "", errors.OutOfBounds(errors.PhaseCLI, row*g.Cols()+col, g.m.Len())
	}
	if g.raw == nil {
		p := g.m.Ptr(row, col)
		b := unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
		return fmt.Sprintf("host %#x: % x", uintptr(unsafe.Pointer(p)), b), nil
	}
	return g.raw(row, col)
}

func (g *matrixGrid[P]) Close(ctx context.Context) error {
	if g.release == nil {
		return nil
	}
	return g.release(ctx)
}

type gridOptions struct {
	rows   int
	cols   int
	space  string
	pinned bool
	log    *zap.Logger
}

// newGrid allocates rows*cols elements in the requested space and fills
// element (r, c) with r*cols+c using a kernel launch.
func newGrid(ctx context.Context, opts gridOptions) (grid, error) {
	if opts.rows <= 0 || opts.cols <= 0 {
		return nil, errors.New(errors.PhaseCLI, errors.KindInvalidInput).
			Detail("rows and cols must be positive, got %dx%d", opts.rows, opts.cols).
			Build()
	}
	if err := view.CheckShape(opts.rows*opts.cols, opts.rows); err != nil {
		return nil, err
	}
	log := opts.log
	if log == nil {
		log = zap.NewNop()
	}
	n := opts.rows * opts.cols

	var g grid
	switch opts.space {
	case "host", "":
		if opts.pinned {
			alloc := hostalloc.New[int32](
				hostalloc.WithPlatform(hostalloc.Pinned()),
				hostalloc.WithLogger(log),
			)
			p, err := alloc.Allocate(n)
			if err != nil {
				return nil, fmt.Errorf("pinned allocation: %w", err)
			}
			g = &matrixGrid[address.Plain[int32]]{
				m:       view.NewRowMatrix[int32](address.Of(p), opts.rows, opts.cols),
				space:   devmem.SpaceHost,
				backing: "page-locked host memory",
				release: func(context.Context) error { return alloc.Deallocate(p, n) },
			}
		} else {
			data := make([]int32, n)
			g = &matrixGrid[address.Plain[int32]]{
				m:       view.NewRowMatrix[int32](address.FromSlice(data), opts.rows, opts.cols),
				space:   devmem.SpaceHost,
				backing: "Go heap",
			}
		}

	case "device":
		dev, err := device.New(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("start device: %w", err)
		}
		ptr, err := device.Alloc[int32](dev.Arena(), n)
		if err != nil {
			_ = dev.Close(ctx)
			return nil, fmt.Errorf("device allocation: %w", err)
		}
		g = &matrixGrid[device.Guest[int32]]{
			m:       view.NewRowMatrix[int32](ptr, opts.rows, opts.cols),
			space:   devmem.SpaceDevice,
			backing: fmt.Sprintf("linear memory at offset %d", ptr.Offset()),
			raw:     deviceRaw(dev.Memory(), ptr, opts.cols),
			release: dev.Close,
		}

	default:
		return nil, errors.Unsupported(errors.PhaseCLI, fmt.Sprintf("memory space %q (want host or device)", opts.space))
	}

	cols := opts.cols
	err := launch.Launch(ctx, launch.Cover(n, 64), func(th launch.Thread) {
		if th.Global >= n {
			return
		}
		g.Set(th.Global/cols, th.Global%cols, int32(th.Global))
	})
	if err != nil {
		_ = g.Close(ctx)
		return nil, err
	}

	log.Debug("grid ready",
		zap.Stringer("space", g.Space()),
		zap.String("backing", g.Describe()),
		zap.Int("rows", opts.rows),
		zap.Int("cols", opts.cols))
	return g, nil
}

// deviceRaw reads element bytes back through the device memory API rather
// than through the view.
func deviceRaw(mem *device.Memory, first device.Guest[int32], cols int) func(row, col int) (string, error) {
	return func(row, col int) (string, error) {
		off := first.Add(row*cols + col).Offset()
		b, err := mem.Read(off, 4)
		if err != nil {
			return "", err
		}
		v, err := mem.ReadU32(off)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("device +%#x: % x (u32 %#x)", off, b, v), nil
	}
}
