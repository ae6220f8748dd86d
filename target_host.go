//go:build !device

package devmem

// OnDevice reports whether this binary was built for the accelerator
// execution context.
const OnDevice = false
