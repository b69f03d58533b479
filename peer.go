// peer.go - Netplay peer records

package main

// MaxPeers is the default RuntimeConfig.MaxPeers. Neither StartLobby nor
// NewFrameSyncer checks a peer list's length against it. Peer-index
// identifiers are plain positional integers, valid only within a session.
const MaxPeers = 8

// FrameInput is one peer's input snapshot for a single frame: the local
// buttons/pad sample the host reads just before calling the guest's
// update, or the equivalent bytes received from a remote peer.
type FrameInput struct {
	Buttons uint32
	Pad     uint32 // (x<<16)|y packed exactly as input.read_pad returns it
}

// Peer is one netplay participant. Addr is nil for the local device —
// exactly one peer in a FrameSyncer's list has a nil Addr.
type Peer struct {
	Addr NetAddr
	Name string // display name, truncated to 16 bytes
	ring *RingBuf[FrameInput]
}

// NewPeer constructs a peer with a fresh, empty ring buffer.
func NewPeer(addr NetAddr, name string) *Peer {
	if len(name) > 16 {
		name = name[:16]
	}
	return &Peer{Addr: addr, Name: name, ring: NewRingBuf[FrameInput]()}
}

// IsLocal reports whether this peer represents the local device.
func (p *Peer) IsLocal() bool { return p.Addr == nil }
