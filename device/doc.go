// Package device provides an accelerator address space backed by
// WebAssembly linear memory.
//
// A Device owns a wazero runtime running a memory-only module. Addresses in
// this space are 32-bit offsets into the module's linear memory; they are
// not valid host pointers, and host pointers are not valid offsets.
//
// # Guest addresses
//
// Guest[T] is an address strategy over linear memory. It satisfies
// address.Address, so every view in the view package works on device
// memory unchanged:
//
//	dev, err := device.New(ctx, nil)
//	if err != nil {
//	    return err
//	}
//	defer dev.Close(ctx)
//
//	g, err := device.Alloc[float32](dev.Arena(), rows*cols)
//	if err != nil {
//	    return err
//	}
//	m := view.NewRowMatrix[float32](g, rows, cols)
//
// Dereferencing a Guest recomputes the host alias of the offset each time.
// Plain addresses obtained through Strip alias the current linear memory
// buffer and become invalid when the memory grows.
//
// # Arena
//
// Arena is a bump allocator over linear memory. It grows the memory when it
// runs out and reports ErrExhausted when growing is not allowed. Offsets
// below 16 are never handed out, so offset 0 never names an allocation.
//
// # Thread Safety
//
// Arena is safe for concurrent use. Device.Close must not race with any
// other use of the device.
package device
