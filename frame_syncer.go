// frame_syncer.go - Lock-step frame synchronization gate

package main

import "sync"

// FrameSyncer holds the authoritative frame counter for a netplay
// session and a bounded list of peers. The guest's update is invoked
// only when Ready() holds: every peer has a stored FrameInput for the
// current frame.
type FrameSyncer struct {
	mu    sync.Mutex
	frame uint32
	peers []*Peer
}

// NewFrameSyncer starts a session at frame 0 with the given peers (one
// of which must be local; callers are expected to have validated this).
func NewFrameSyncer(peers []*Peer) *FrameSyncer {
	return &FrameSyncer{peers: peers}
}

// Frame returns the current frame counter.
func (s *FrameSyncer) Frame() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Peers returns the peer list. Callers must not mutate the returned
// slice.
func (s *FrameSyncer) Peers() []*Peer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peers
}

// LocalIndex returns the index of the unique peer with Addr == nil, or
// -1 if none is present (a setup bug, not a runtime condition — the
// invariant is supposed to be enforced at NetHandler construction).
func (s *FrameSyncer) LocalIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.peers {
		if p.IsLocal() {
			return i
		}
	}
	return -1
}

// Ready reports whether every peer has a stored FrameInput at the
// current frame.
func (s *FrameSyncer) Ready() bool {
	s.mu.Lock()
	frame := s.frame
	peers := s.peers
	s.mu.Unlock()

	for _, p := range peers {
		if _, ok := p.ring.Get(frame); !ok {
			return false
		}
	}
	return true
}

// InsertLocal records the local peer's input sample for the current
// frame, sampled just before the guest's update export runs.
func (s *FrameSyncer) InsertLocal(input FrameInput) {
	s.mu.Lock()
	frame := s.frame
	idx := -1
	for i, p := range s.peers {
		if p.IsLocal() {
			idx = i
			break
		}
	}
	s.mu.Unlock()
	if idx < 0 {
		return
	}
	s.peers[idx].ring.Insert(frame, input)
}

// InsertRemote records a remote peer's state for frame, identified by
// addr. It returns false if addr does not match any known peer, or if
// the ring buffer's drift bound refused the insert.
func (s *FrameSyncer) InsertRemote(addr NetAddr, frame uint32, input FrameInput) bool {
	s.mu.Lock()
	var target *Peer
	for _, p := range s.peers {
		if !p.IsLocal() && p.Addr.String() == addr.String() {
			target = p
			break
		}
	}
	s.mu.Unlock()
	if target == nil {
		return false
	}
	return target.ring.Insert(frame, input)
}

// LocalInput returns the local peer's stored input for the current
// frame, or the zero value if it has not been sampled yet.
func (s *FrameSyncer) LocalInput() FrameInput {
	s.mu.Lock()
	frame := s.frame
	var local *Peer
	for _, p := range s.peers {
		if p.IsLocal() {
			local = p
			break
		}
	}
	s.mu.Unlock()
	if local == nil {
		return FrameInput{}
	}
	v, _ := local.ring.Get(frame)
	return v
}

// RemoteInput returns peer index idx's stored input for the current
// frame.
func (s *FrameSyncer) RemoteInput(idx int) (FrameInput, bool) {
	s.mu.Lock()
	frame := s.frame
	if idx < 0 || idx >= len(s.peers) {
		s.mu.Unlock()
		return FrameInput{}, false
	}
	p := s.peers[idx]
	s.mu.Unlock()
	return p.ring.Get(frame)
}

// Advance moves the frame cursor forward by one, and advances every
// peer's ring buffer cursor to match, evicting drift-expired slots in
// step. Advance is only ever called after a successful guest update.
func (s *FrameSyncer) Advance() {
	s.mu.Lock()
	s.frame++
	next := s.frame
	peers := s.peers
	s.mu.Unlock()

	for _, p := range peers {
		p.ring.Advance(next)
	}
}
