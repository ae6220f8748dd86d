// Package devmem provides non-owning views over memory that lives either in
// the host address space or in a separate accelerator address space.
//
// The same view code is compiled for two execution contexts. The default
// build is the host context; building with -tags device produces the
// accelerator context. Code that must behave differently in the two
// contexts is split into build-tagged files rather than branching at run
// time; OnDevice reports which one a binary was built for.
//
// # Architecture Overview
//
//	devmem/        Root package with the address Space type and build target
//	├── address/   Address strategies: plain, striding, padded, read-only
//	├── iterator/  Random-access, contiguous, reverse and read-only iterators
//	├── view/      Sequence, fixed, contiguous, matrix and row-matrix views
//	├── hostalloc/ Page-locked host memory allocator
//	├── device/    Accelerator memory space backed by wazero linear memory
//	├── launch/    SIMT-style kernel launcher
//	├── errors/    Structured error types
//	└── cmd/       devview command line tool
//
// # Quick Start
//
// View twelve host integers as a 3x4 matrix:
//
//	data := []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
//	m := view.NewRowMatrix[int32](address.FromSlice(data), 3, 4)
//	m.At(1, 2)           // 6
//	m.Row(1).Values()    // [4 5 6 7]
//	m.Column(2).Values() // [2 6 10]
//
// The same matrix over accelerator memory:
//
//	dev, err := device.New(ctx, nil)
//	if err != nil {
//	    return err
//	}
//	defer dev.Close(ctx)
//
//	g, err := device.Alloc[int32](dev.Arena(), 12)
//	if err != nil {
//	    return err
//	}
//	m := view.NewRowMatrix[int32](g, 3, 4)
//
// # Memory Model
//
// Views never own storage and never synchronize. Several views may alias
// the same storage; a write through one is visible through all of them.
// When accelerator threads touch overlapping elements concurrently the
// caller is responsible for partitioning the work.
package devmem
