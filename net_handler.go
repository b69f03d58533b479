// net_handler.go - The NetHandler tagged union and its tick-driven polling

package main

import (
	"encoding/binary"
	"sync"
	"time"
)

// NetHandlerKind discriminates the NetHandler union. Transitions replace
// the whole variant atomically, never mutate one variant's fields into
// another's shape.
type NetHandlerKind int

const (
	NetOffline NetHandlerKind = iota
	NetConnecting                // Connection: peers discovered, not yet in a game
	NetInGame                    // FrameSyncer: lock-step session active
)

// joinMsgTag / stateMsgTag distinguish the two wire message shapes
// exchanged over Net: a lobby join announcement (peer picks an app) and
// a per-frame input state. Both fit comfortably in MaxNetMessageSize.
const (
	joinMsgTag  byte = 0x4A // 'J'
	stateMsgTag byte = 0x53 // 'S'
)

// Connection is the launcher-phase variant: peers have been discovered
// (e.g. by a beacon out of scope for this package) but no app has been
// picked yet.
type Connection struct {
	mu    sync.Mutex
	peers []*Peer
}

// NewConnection starts a lobby with the given peers.
func NewConnection(peers []*Peer) *Connection {
	return &Connection{peers: peers}
}

func (c *Connection) Peers() []*Peer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.peers
}

// repeatEvery is the local-state rebroadcast interval.
const repeatEvery = 5 * time.Millisecond

// NetHandler is the per-guest networking state machine: None (offline),
// Connection (lobby), or FrameSyncer (in-game). kind says which variant
// is active; at most one of connection/syncer is set, and both are nil
// while offline.
type NetHandler struct {
	mu         sync.Mutex
	kind       NetHandlerKind
	connection *Connection
	syncer     *FrameSyncer

	net           Net
	lastBroadcast time.Time
	author, app   string
}

// NewNetHandler returns an offline NetHandler bound to net for sending
// and receiving datagrams.
func NewNetHandler(net Net) *NetHandler {
	return &NetHandler{kind: NetOffline, net: net}
}

func (h *NetHandler) Kind() NetHandlerKind {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.kind
}

// StartLobby transitions to Connection with the given peers.
func (h *NetHandler) StartLobby(peers []*Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.kind = NetConnecting
	h.connection = NewConnection(peers)
	h.syncer = nil
}

// Disconnect transitions to None, discarding any lobby or in-game state.
func (h *NetHandler) Disconnect() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.kind = NetOffline
	h.connection = nil
	h.syncer = nil
}

// Syncer returns the active FrameSyncer, or nil if the handler is not
// NetInGame.
func (h *NetHandler) Syncer() *FrameSyncer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.syncer
}

// JoinGame transitions Connection -> FrameSyncer: a peer (possibly the
// local one) has picked an author/app pair, freezing the current lobby
// peer list into a lock-step session.
func (h *NetHandler) JoinGame(author, app string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kind != NetConnecting || h.connection == nil {
		return
	}
	h.syncer = NewFrameSyncer(h.connection.Peers())
	h.connection = nil
	h.kind = NetInGame
	h.author, h.app = author, app
}

// Poll performs the single per-tick network step: receive at most one
// message, route it, and rebroadcast the local
// state if the repeat interval has elapsed. now is the device's clock,
// passed in rather than read here so tests can drive it deterministically.
func (h *NetHandler) Poll(now time.Time) {
	h.mu.Lock()
	kind := h.kind
	h.mu.Unlock()
	if kind == NetOffline {
		return
	}

	if msg, ok := h.net.Recv(); ok {
		h.handleMessage(msg)
	}

	h.mu.Lock()
	syncer := h.syncer
	due := now.Sub(h.lastBroadcast) >= repeatEvery
	h.mu.Unlock()
	if syncer == nil || !due {
		return
	}
	h.broadcastLocal(syncer, now)
}

func (h *NetHandler) handleMessage(msg NetMessage) {
	if len(msg.Data) == 0 {
		return
	}
	switch msg.Data[0] {
	case stateMsgTag:
		h.handleStateMessage(msg)
	case joinMsgTag:
		// A remote peer announced its app selection; local policy is to
		// follow suit only once the local device also selects an app
		// (out of scope: the launcher UI drives that), so this is
		// ignored here.
	}
}

func (h *NetHandler) handleStateMessage(msg NetMessage) {
	if len(msg.Data) < 1+4+4+4 {
		return
	}
	frame := binary.LittleEndian.Uint32(msg.Data[1:5])
	buttons := binary.LittleEndian.Uint32(msg.Data[5:9])
	pad := binary.LittleEndian.Uint32(msg.Data[9:13])

	h.mu.Lock()
	syncer := h.syncer
	h.mu.Unlock()
	if syncer == nil {
		return
	}
	syncer.InsertRemote(msg.Addr, frame, FrameInput{Buttons: buttons, Pad: pad})
}

func (h *NetHandler) broadcastLocal(syncer *FrameSyncer, now time.Time) {
	input := syncer.LocalInput()
	frame := syncer.Frame()

	buf := make([]byte, 1+4+4+4)
	buf[0] = stateMsgTag
	binary.LittleEndian.PutUint32(buf[1:5], frame)
	binary.LittleEndian.PutUint32(buf[5:9], input.Buttons)
	binary.LittleEndian.PutUint32(buf[9:13], input.Pad)

	for _, p := range syncer.Peers() {
		if p.IsLocal() {
			continue
		}
		_ = h.net.Send(p.Addr, buf)
	}

	h.mu.Lock()
	h.lastBroadcast = now
	h.mu.Unlock()
}

// SampleLocalInput records the local device's input for the current
// frame, sampled just before the guest's update runs. It is
// a no-op unless the handler is NetInGame.
func (h *NetHandler) SampleLocalInput(input FrameInput) {
	h.mu.Lock()
	syncer := h.syncer
	h.mu.Unlock()
	if syncer == nil {
		return
	}
	syncer.InsertLocal(input)
}

// Ready reports whether the in-game FrameSyncer is ready to advance, or
// true trivially when the handler is not in a game (offline/lobby ticks
// never gate update).
func (h *NetHandler) Ready() bool {
	h.mu.Lock()
	syncer := h.syncer
	kind := h.kind
	h.mu.Unlock()
	if kind != NetInGame {
		return true
	}
	return syncer.Ready()
}

// Advance moves the in-game FrameSyncer's cursor forward after a
// successful guest update; a no-op when not NetInGame.
func (h *NetHandler) Advance() {
	h.mu.Lock()
	syncer := h.syncer
	h.mu.Unlock()
	if syncer != nil {
		syncer.Advance()
	}
}
