// memory_wazero.go - Adapts wazero's api.Memory to GuestMemory

package main

import "github.com/tetratelabs/wazero/api"

// wazeroMemory adapts a wazero guest module's linear memory to the
// GuestMemory interface the rest of this package is written against, so
// the host calls never mention wazero's api types.
type wazeroMemory struct {
	mem api.Memory
}

func newWazeroMemory(mem api.Memory) GuestMemory {
	return wazeroMemory{mem: mem}
}

func (w wazeroMemory) Size() uint32 {
	return w.mem.Size()
}

func (w wazeroMemory) Read(offset, length uint32) ([]byte, bool) {
	return w.mem.Read(offset, length)
}

func (w wazeroMemory) Bytes() []byte {
	buf, ok := w.mem.Read(0, w.mem.Size())
	if !ok {
		return nil
	}
	return buf
}
