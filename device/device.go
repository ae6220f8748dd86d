package device

import (
	"context"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/devmem/errors"
)

// PageSize is the size of one linear memory page.
const PageSize = 65536

// Config holds configuration for device creation
type Config struct {
	// MemoryPages is the initial size of linear memory in pages (64KB each).
	// 0 means 1 page.
	MemoryPages uint32

	// MemoryLimitPages caps how far the arena may grow linear memory.
	// 0 means the wazero default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

// Device is an accelerator address space.
type Device struct {
	runtime wazero.Runtime
	module  api.Module
	memory  *Memory
	arena   *Arena
	closed  atomic.Bool
}

// New starts a device with the given configuration. A nil cfg uses defaults.
func New(ctx context.Context, cfg *Config) (*Device, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.MemoryPages == 0 {
		c.MemoryPages = 1
	}
	if c.MemoryLimitPages > 0 && c.MemoryPages > c.MemoryLimitPages {
		return nil, errors.New(errors.PhaseDevice, errors.KindInvalidInput).
			Detail("initial %d pages exceed limit of %d", c.MemoryPages, c.MemoryLimitPages).
			Build()
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if c.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(c.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	compiled, err := rt.CompileModule(ctx, memoryModule(c.MemoryPages, c.MemoryLimitPages))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseDevice, errors.KindNotInitialized, err, "compile memory module")
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("device"))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseDevice, errors.KindNotInitialized, err, "instantiate memory module")
	}

	mem := mod.ExportedMemory(memoryExport)
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, errors.NotInitialized(errors.PhaseDevice, "linear memory")
	}

	Logger().Debug("device started",
		zap.Uint32("pages", c.MemoryPages),
		zap.Uint32("limit_pages", c.MemoryLimitPages),
		zap.Uint32("bytes", mem.Size()))

	memory := &Memory{Mem: mem}
	return &Device{
		runtime: rt,
		module:  mod,
		memory:  memory,
		arena:   NewArena(memory),
	}, nil
}

// Memory returns bounds-checked access to the device's linear memory.
func (d *Device) Memory() *Memory { return d.memory }

// Arena returns the device's allocator.
func (d *Device) Arena() *Arena { return d.arena }

// Close releases the device. Views over its memory must not be used
// afterwards.
func (d *Device) Close(ctx context.Context) error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	Logger().Debug("device closed", zap.Uint32("bytes", d.memory.Size()))
	return d.runtime.Close(ctx)
}
