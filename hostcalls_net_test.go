package main

import "testing"

func TestNetSaveStashAndLoadStashRoundTrip(t *testing.T) {
	s, _, mem := newTestState(128)
	mem.writeString(0, "token123")

	if ok := netSaveStash(s, 0, 0, 8); ok != 1 {
		t.Fatalf("netSaveStash = %d, want 1", ok)
	}

	n := netLoadStash(s, 32, 32)
	if n != 8 {
		t.Fatalf("netLoadStash returned %d bytes, want 8", n)
	}
	if got := string(mem.buf[32 : 32+8]); got != "token123" {
		t.Fatalf("netLoadStash wrote %q, want %q", got, "token123")
	}
}

func TestNetSaveStashRejectsNonLocalPeer(t *testing.T) {
	s, device, mem := newTestState(64)
	mem.writeString(0, "data")

	got := netSaveStash(s, 1, 0, 4)
	if got != 0 {
		t.Fatalf("netSaveStash with peer_id=1 = %d, want 0", got)
	}
	if len(device.ErrorLogs()) == 0 {
		t.Fatalf("expected an error logged for the unsupported remote peer_id")
	}
}

func TestNetSaveStashOomPointerLogsAndReturnsZero(t *testing.T) {
	s, device, _ := newTestState(8)

	got := netSaveStash(s, 0, 0, 1000)
	if got != 0 {
		t.Fatalf("netSaveStash with out-of-bounds data = %d, want 0", got)
	}
	if len(device.ErrorLogs()) == 0 {
		t.Fatalf("expected an OomPointer error to be logged")
	}
}

func TestNetGetMeOfflineReturnsNegativeOne(t *testing.T) {
	s, _, _ := newTestState(8)
	if got := netGetMe(s); got != -1 {
		t.Fatalf("netGetMe outside a session = %d, want -1", got)
	}
}

func TestNetGetPeersOfflineReturnsZero(t *testing.T) {
	s, _, _ := newTestState(8)
	if got := netGetPeers(s, 0, 8); got != 0 {
		t.Fatalf("netGetPeers outside a session = %d, want 0", got)
	}
}
