// memory_access.go - Bounds-checked guest linear-memory access

package main

import "unicode/utf8"

// GuestMemory is the minimal slice of the wazero api.Memory surface the
// host calls need: byte-range reads and writes against the guest's
// linear memory, expressed so this package does not otherwise depend on
// the wasm engine's types. memory_wazero.go adapts a wazero api.Memory
// to this interface.
type GuestMemory interface {
	// Size returns the current length of linear memory in bytes.
	Size() uint32
	// Read returns the byte range [offset, offset+length) and true, or
	// false if the range falls outside linear memory.
	Read(offset, length uint32) ([]byte, bool)
	// Bytes returns the whole backing slice, for canvas overrides.
	Bytes() []byte
}

// readBytes validates and returns a copy of mem[ptr:ptr+length],
// reporting ok=false on any out-of-bounds access. Every host call that
// accepts a (ptr, len) pair goes through this rather than indexing mem
// directly, so the bounds check lives in exactly one place; readBytes
// itself logs nothing, and the calling host call logs the HostError.
func readBytes(mem GuestMemory, ptr, length uint32) ([]byte, bool) {
	raw, ok := mem.Read(ptr, length)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

// readString validates and decodes a UTF-8 string from mem[ptr:ptr+length].
func readString(mem GuestMemory, ptr, length uint32) (string, bool) {
	raw, ok := readBytes(mem, ptr, length)
	if !ok {
		return "", false
	}
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// writeBytes validates bounds and copies data into mem[ptr:ptr+len(data)],
// returning the number of bytes written (0 if out of bounds).
func writeBytes(mem GuestMemory, ptr uint32, data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}
	dst, ok := mem.Read(ptr, uint32(len(data)))
	if !ok {
		return 0
	}
	return uint32(copy(dst, data))
}
