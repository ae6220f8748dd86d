package launch

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/devmem/errors"
)

// Grid is the shape of a launch.
type Grid struct {
	Blocks  int
	Threads int
}

// Size returns the total number of logical threads.
func (g Grid) Size() int { return g.Blocks * g.Threads }

// Cover returns the smallest grid of threadsPerBlock-wide blocks with at
// least n threads.
func Cover(n, threadsPerBlock int) Grid {
	if threadsPerBlock <= 0 {
		threadsPerBlock = 1
	}
	return Grid{Blocks: (n + threadsPerBlock - 1) / threadsPerBlock, Threads: threadsPerBlock}
}

// Thread identifies one logical thread of a launch.
type Thread struct {
	Block  int // block index
	Index  int // thread index within the block
	Global int // Block*Threads + Index
}

// Config controls how a launch is scheduled.
type Config struct {
	// Workers bounds the number of goroutines. 0 means GOMAXPROCS.
	Workers int
}

// Launch runs fn once for every thread of grid and waits for all of them.
func Launch(ctx context.Context, grid Grid, fn func(Thread)) error {
	return LaunchWithConfig(ctx, grid, nil, fn)
}

// LaunchWithConfig is Launch with explicit scheduling configuration.
// If ctx is canceled, blocks that have not started are skipped and the
// context error is returned wrapped in a canceled error.
func LaunchWithConfig(ctx context.Context, grid Grid, cfg *Config, fn func(Thread)) error {
	if fn == nil {
		return errors.InvalidInput(errors.PhaseLaunch, "nil kernel")
	}
	if grid.Blocks < 0 || grid.Threads < 0 {
		return errors.New(errors.PhaseLaunch, errors.KindInvalidInput).
			Value(grid).
			Detail("negative grid %dx%d", grid.Blocks, grid.Threads).
			Build()
	}
	if err := ctx.Err(); err != nil {
		return errors.Canceled(errors.PhaseLaunch, err)
	}
	if grid.Size() == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if cfg != nil && cfg.Workers > 0 {
		workers = cfg.Workers
	}
	workers = min(workers, grid.Blocks)

	Logger().Debug("launch",
		zap.Int("blocks", grid.Blocks),
		zap.Int("threads", grid.Threads),
		zap.Int("workers", workers))

	var (
		next atomic.Int64
		done atomic.Int64
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				b := int(next.Add(1) - 1)
				if b >= grid.Blocks {
					return
				}
				base := b * grid.Threads
				for i := 0; i < grid.Threads; i++ {
					fn(Thread{Block: b, Index: i, Global: base + i})
				}
				done.Add(1)
			}
		}()
	}
	wg.Wait()

	if int(done.Load()) < grid.Blocks {
		Logger().Debug("launch canceled",
			zap.Int64("completed_blocks", done.Load()),
			zap.Int("blocks", grid.Blocks))
		return errors.Canceled(errors.PhaseLaunch, ctx.Err())
	}
	return nil
}
