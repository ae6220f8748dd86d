package device

const memoryExport = "memory"

// memoryModule encodes a WebAssembly module whose only content is one
// exported linear memory of minPages pages, capped at maxPages when
// maxPages is non-zero.
func memoryModule(minPages, maxPages uint32) []byte {
	bin := []byte{
		0x00, 0x61, 0x73, 0x6d, // magic
		0x01, 0x00, 0x00, 0x00, // version
	}

	// memory section: one memory with limits
	mem := []byte{0x01}
	if maxPages > 0 {
		mem = append(mem, 0x01)
		mem = appendULEB(mem, minPages)
		mem = appendULEB(mem, maxPages)
	} else {
		mem = append(mem, 0x00)
		mem = appendULEB(mem, minPages)
	}
	bin = append(bin, 0x05)
	bin = appendULEB(bin, uint32(len(mem)))
	bin = append(bin, mem...)

	// export section: "memory" -> memory 0
	exp := []byte{0x01}
	exp = appendULEB(exp, uint32(len(memoryExport)))
	exp = append(exp, memoryExport...)
	exp = append(exp, 0x02, 0x00)
	bin = append(bin, 0x07)
	bin = appendULEB(bin, uint32(len(exp)))
	bin = append(bin, exp...)

	return bin
}

func appendULEB(b []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b = append(b, c|0x80)
			continue
		}
		return append(b, c)
	}
}
