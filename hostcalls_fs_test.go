package main

import "testing"

func TestFsSaveFileAndLoadFileRoundTrip(t *testing.T) {
	s, _, mem := newTestState(256)
	mem.writeString(0, "save.bin")
	mem.writeString(16, "hello")

	if ok := fsSaveFile(s, 0, 8, 16, 5); ok != 1 {
		t.Fatalf("fsSaveFile = %d, want 1", ok)
	}

	mem.writeString(32, "save.bin")
	n := fsLoadFile(s, 1, 32, 8, 64, 32)
	if n != 5 {
		t.Fatalf("fsLoadFile returned %d bytes, want 5", n)
	}
	if got := string(mem.buf[64 : 64+5]); got != "hello" {
		t.Fatalf("fsLoadFile wrote %q, want %q", got, "hello")
	}
}

func TestFsSaveFileOomPointerLogsAndReturnsZero(t *testing.T) {
	s, device, mem := newTestState(16)
	mem.writeString(0, "save.bin")

	// dataPtr+dataLen reaches past the end of the fake memory.
	got := fsSaveFile(s, 0, 8, 8, 1000)
	if got != 0 {
		t.Fatalf("fsSaveFile with out-of-bounds data = %d, want 0", got)
	}
	if len(device.ErrorLogs()) == 0 {
		t.Fatalf("expected an OomPointer error to be logged")
	}
}

func TestFsLoadFileOomPointerPathLogsAndReturnsZero(t *testing.T) {
	s, device, _ := newTestState(16)

	got := fsLoadFile(s, 0, 0, 1000, 0, 16)
	if got != 0 {
		t.Fatalf("fsLoadFile with out-of-bounds path = %d, want 0", got)
	}
	if len(device.ErrorLogs()) == 0 {
		t.Fatalf("expected a BadUTF8 error to be logged for the unreadable path")
	}
}

func TestFsSaveFileAlwaysUsesCallersOwnDataDirectory(t *testing.T) {
	s, _, mem := newTestState(256)
	mem.writeString(0, "other/save.bin")
	mem.writeString(32, "x")

	if ok := fsSaveFile(s, 0, 14, 32, 1); ok != 1 {
		t.Fatalf("fsSaveFile = %d, want 1", ok)
	}
	fs := s.Device().FS().(*fakeFS)
	if _, ok := fs.files["data/author/app/other/save.bin"]; !ok {
		t.Fatalf("expected file rooted under the caller's own author/app directory, got %v", fs.files)
	}
}
