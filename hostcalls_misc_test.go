package main

import "testing"

func TestMiscLogDebugForwardsToDeviceUnderAppSource(t *testing.T) {
	s, device, mem := newTestState(64)
	mem.writeString(0, "guest says hi")

	miscLogDebug(s, 0, 13)

	logs := device.DebugLogs()
	if len(logs) != 1 || logs[0] != "app: guest says hi" {
		t.Fatalf("DebugLogs() = %v, want one entry %q", logs, "app: guest says hi")
	}
}

func TestMiscLogErrorWithBadPointerLogsHostError(t *testing.T) {
	s, device, _ := newTestState(8)

	miscLogError(s, 0, 1000)

	if len(device.ErrorLogs()) != 1 {
		t.Fatalf("ErrorLogs() = %v, want exactly one logged HostError", device.ErrorLogs())
	}
}

func TestMiscGetNameWritesAuthorSlashApp(t *testing.T) {
	s, _, mem := newTestState(64)

	n := miscGetName(s, 0, 64)
	if n != uint32(len("author/app")) {
		t.Fatalf("miscGetName returned %d bytes, want %d", n, len("author/app"))
	}
	if got := string(mem.buf[:n]); got != "author/app" {
		t.Fatalf("miscGetName wrote %q, want %q", got, "author/app")
	}
}

func TestMiscGetRandomAdvancesSeed(t *testing.T) {
	s, _, _ := newTestState(8)
	s.SetSeed(1)

	first := miscGetRandom(s)
	second := miscGetRandom(s)
	if first == second {
		t.Fatalf("successive misc.get_random calls returned the same value: %d", first)
	}
	if s.Seed() != second {
		t.Fatalf("HostState.Seed() = %d, want it to match the last returned value %d", s.Seed(), second)
	}
}

func TestMiscQuitSetsExitFlag(t *testing.T) {
	s, _, _ := newTestState(8)
	if s.Exit() {
		t.Fatalf("Exit() should start false")
	}
	miscQuit(s)
	if !s.Exit() {
		t.Fatalf("Exit() should be true after misc.quit")
	}
}
