//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package hostalloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/wippyai/devmem/errors"
)

var (
	pinnedOnce sync.Once
	pinnedInst *lockedPlatform
)

// Pinned returns the platform that maps anonymous memory and locks it into
// RAM with mlock.
func Pinned() Platform {
	pinnedOnce.Do(func() { pinnedInst = newLockedPlatform() })
	return pinnedInst
}

type lockedPlatform struct {
	mu      sync.Mutex
	regions map[unsafe.Pointer][]byte
}

func newLockedPlatform() *lockedPlatform {
	return &lockedPlatform{regions: make(map[unsafe.Pointer][]byte)}
}

func (l *lockedPlatform) AllocHost(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "non-positive allocation size")
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	if err := unix.Mlock(b); err != nil {
		_ = unix.Munmap(b)
		return nil, err
	}
	p := unsafe.Pointer(unsafe.SliceData(b))

	l.mu.Lock()
	l.regions[p] = b
	l.mu.Unlock()
	return p, nil
}

func (l *lockedPlatform) FreeHost(p unsafe.Pointer) error {
	l.mu.Lock()
	b, ok := l.regions[p]
	delete(l.regions, p)
	l.mu.Unlock()
	if !ok {
		return errors.InvalidInput(errors.PhaseAlloc, "release of memory not allocated by this platform")
	}
	if err := unix.Munlock(b); err != nil {
		Logger().Sugar().Debugf("munlock %d bytes: %v", len(b), err)
	}
	return unix.Munmap(b)
}

func (l *lockedPlatform) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.regions)
}
