package main

// fakeMemory is a flat byte slice implementing GuestMemory, for host call
// tests that need guest-memory-backed ptr/len arguments without a real
// wazero instance.
type fakeMemory struct {
	buf []byte
}

func newFakeMemory(size int) *fakeMemory {
	return &fakeMemory{buf: make([]byte, size)}
}

func (m *fakeMemory) Size() uint32 { return uint32(len(m.buf)) }

func (m *fakeMemory) Read(offset, length uint32) ([]byte, bool) {
	if uint64(offset)+uint64(length) > uint64(len(m.buf)) {
		return nil, false
	}
	return m.buf[offset : offset+length], true
}

func (m *fakeMemory) Bytes() []byte { return m.buf }

func (m *fakeMemory) writeString(ptr uint32, s string) {
	copy(m.buf[ptr:], s)
}

// newTestState returns a HostState wired to a FakeDevice and a fake
// guest memory large enough for the ptr/len arithmetic these tests use.
func newTestState(memSize int) (*HostState, *FakeDevice, *fakeMemory) {
	device := NewFakeDevice(fixedTime)
	s := New("author", "app", device)
	mem := newFakeMemory(memSize)
	s.SetMemory(mem)
	return s, device, mem
}
