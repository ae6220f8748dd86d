//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package hostalloc

// Pinned returns the Go heap platform; page locking is not available on
// this operating system.
func Pinned() Platform {
	return Heap()
}
