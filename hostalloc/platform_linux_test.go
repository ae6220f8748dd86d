//go:build linux

package hostalloc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPinned_ExceedsLockedLimit(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root may lock memory past RLIMIT_MEMLOCK")
	}
	var rl unix.Rlimit
	require.NoError(t, unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl))
	if rl.Cur > 1<<30 {
		t.Skipf("locked memory limit too high to exceed: %d", rl.Cur)
	}

	plat := Pinned()
	before := plat.(Outstanding).Live()

	n := int(rl.Cur) + 1<<20
	a := New[byte](WithPlatform(plat))
	p, err := a.Allocate(n)
	if err == nil {
		require.NoError(t, a.Deallocate(p, n))
		t.Skip("mlock not enforced")
	}

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, before, plat.(Outstanding).Live())
}
