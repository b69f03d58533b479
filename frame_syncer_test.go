package main

import "testing"

func twoPeerSyncer() (*FrameSyncer, *Peer, *Peer) {
	local := NewPeer(nil, "me")
	remote := NewPeer(testAddr("1.2.3.4:9"), "them")
	return NewFrameSyncer([]*Peer{local, remote}), local, remote
}

func TestFrameSyncerLocalIndex(t *testing.T) {
	s, _, _ := twoPeerSyncer()
	if got := s.LocalIndex(); got != 0 {
		t.Fatalf("LocalIndex() = %d, want 0", got)
	}
}

func TestFrameSyncerReadyGatesOnBothPeers(t *testing.T) {
	s, _, remote := twoPeerSyncer()

	if s.Ready() {
		t.Fatalf("Ready() should be false before either peer has input")
	}

	s.InsertLocal(FrameInput{Buttons: 1})
	if s.Ready() {
		t.Fatalf("Ready() should be false with only the local peer's input")
	}

	if ok := s.InsertRemote(remote.Addr, 0, FrameInput{Buttons: 2}); !ok {
		t.Fatalf("InsertRemote at frame 0 (cursor 0) should succeed")
	}
	if !s.Ready() {
		t.Fatalf("Ready() should be true once both peers have frame 0 input")
	}
}

func TestFrameSyncerInsertRemoteUnknownAddr(t *testing.T) {
	s, _, _ := twoPeerSyncer()
	if ok := s.InsertRemote(testAddr("nowhere:1"), 0, FrameInput{}); ok {
		t.Fatalf("InsertRemote with an unknown address should fail")
	}
}

func TestFrameSyncerAdvanceMovesFrameAndPeerCursors(t *testing.T) {
	s, _, remote := twoPeerSyncer()
	s.InsertLocal(FrameInput{Buttons: 1})
	s.InsertRemote(remote.Addr, 0, FrameInput{Buttons: 2})
	s.Advance()

	if s.Frame() != 1 {
		t.Fatalf("Frame() after Advance = %d, want 1", s.Frame())
	}
	if _, ok := s.RemoteInput(1); ok {
		t.Fatalf("RemoteInput(1) should report false before frame 1 input arrives")
	}
}

func TestFrameSyncerLocalInputZeroValueBeforeSample(t *testing.T) {
	s, _, _ := twoPeerSyncer()
	if got := s.LocalInput(); got != (FrameInput{}) {
		t.Fatalf("LocalInput() before InsertLocal = %+v, want zero value", got)
	}
}
