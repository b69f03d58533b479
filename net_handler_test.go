package main

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestNetHandlerLobbyToGameTransition(t *testing.T) {
	d := NewFakeDevice(fixedTime)
	h := NewNetHandler(d.Net())

	if h.Kind() != NetOffline {
		t.Fatalf("new NetHandler kind = %v, want NetOffline", h.Kind())
	}

	local := NewPeer(nil, "me")
	remote := NewPeer(testAddr("1.2.3.4:9"), "them")
	h.StartLobby([]*Peer{local, remote})
	if h.Kind() != NetConnecting {
		t.Fatalf("kind after StartLobby = %v, want NetConnecting", h.Kind())
	}

	h.JoinGame("author", "app")
	if h.Kind() != NetInGame {
		t.Fatalf("kind after JoinGame = %v, want NetInGame", h.Kind())
	}
	if h.Syncer() == nil {
		t.Fatalf("Syncer() should be non-nil once NetInGame")
	}

	h.Disconnect()
	if h.Kind() != NetOffline {
		t.Fatalf("kind after Disconnect = %v, want NetOffline", h.Kind())
	}
	if h.Syncer() != nil {
		t.Fatalf("Syncer() should be nil after Disconnect")
	}
}

func TestNetHandlerReadyTrivialWhenNotInGame(t *testing.T) {
	d := NewFakeDevice(fixedTime)
	h := NewNetHandler(d.Net())
	if !h.Ready() {
		t.Fatalf("Ready() should be trivially true while offline")
	}
	h.StartLobby([]*Peer{NewPeer(nil, "me")})
	if !h.Ready() {
		t.Fatalf("Ready() should be trivially true in the lobby")
	}
}

func TestNetHandlerPollDecodesRemoteState(t *testing.T) {
	d := NewFakeDevice(fixedTime)
	h := NewNetHandler(d.Net())
	remoteAddr := testAddr("1.2.3.4:9")

	h.StartLobby([]*Peer{NewPeer(nil, "me"), NewPeer(remoteAddr, "them")})
	h.JoinGame("author", "app")

	buf := make([]byte, 1+4+4+4)
	buf[0] = stateMsgTag
	binary.LittleEndian.PutUint32(buf[1:5], 0)
	binary.LittleEndian.PutUint32(buf[5:9], 42)
	binary.LittleEndian.PutUint32(buf[9:13], 7)
	d.Inject(NetMessage{Addr: remoteAddr, Data: buf})

	h.Poll(d.Now())

	got, ok := h.Syncer().RemoteInput(1)
	if !ok {
		t.Fatalf("RemoteInput(1) after decoding a remote state message should be present")
	}
	if got.Buttons != 42 || got.Pad != 7 {
		t.Fatalf("RemoteInput(1) = %+v, want {Buttons:42 Pad:7}", got)
	}
}

func TestNetHandlerBroadcastsOnRepeatInterval(t *testing.T) {
	d := NewFakeDevice(fixedTime)
	h := NewNetHandler(d.Net())
	remoteAddr := testAddr("1.2.3.4:9")
	h.StartLobby([]*Peer{NewPeer(nil, "me"), NewPeer(remoteAddr, "them")})
	h.JoinGame("author", "app")

	h.SampleLocalInput(FrameInput{Buttons: 1})
	h.Poll(d.Now())
	if len(d.Sent()) != 1 {
		t.Fatalf("first Poll() after joining should broadcast once, got %d sends", len(d.Sent()))
	}

	h.Poll(d.Now())
	if len(d.Sent()) != 1 {
		t.Fatalf("Poll() before repeatEvery elapses should not rebroadcast, got %d sends", len(d.Sent()))
	}

	d.Advance(repeatEvery + time.Millisecond)
	h.Poll(d.Now())
	if len(d.Sent()) != 2 {
		t.Fatalf("Poll() after repeatEvery elapses should rebroadcast, got %d sends", len(d.Sent()))
	}
}
