package device

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/devmem/errors"
)

// Memory adapts wazero api.Memory with bounds-reporting errors.
type Memory struct {
	Mem api.Memory
}

// Size returns the current size of linear memory in bytes.
func (m *Memory) Size() uint32 { return m.Mem.Size() }

// Read returns length bytes at offset. The slice aliases linear memory.
func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, errors.New(errors.PhaseDevice, errors.KindOutOfBounds).
			Space("device").
			Value(offset).
			Detail("memory read out of bounds: offset=%d, length=%d", offset, length).
			Build()
	}
	return data, nil
}

// Write writes data at offset.
func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return errors.New(errors.PhaseDevice, errors.KindOutOfBounds).
			Space("device").
			Value(offset).
			Detail("memory write out of bounds: offset=%d, length=%d", offset, len(data)).
			Build()
	}
	return nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseDevice, int(offset), int(m.Mem.Size()))
	}
	return v, nil
}
