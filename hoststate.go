// hoststate.go - Aggregated per-guest state

package main

import "sync"

// Transition records a pending guest-instance replacement requested by
// misc.restart.
type Transition struct {
	Author, App string
}

// HostState is the single mutable record every host call reads and
// writes. One HostState exists per guest instance; it is created by New
// and discarded on guest exit.
//
// Every host call borrows HostState exclusively for its duration (the
// runtime never calls two host calls concurrently, and the netplay
// rebroadcast runs inside NetHandler.Poll on the same tick loop), so the
// mutex here only makes each accessor safe to call from any goroutine;
// the runtime itself touches HostState from one goroutine.
type HostState struct {
	mu sync.Mutex

	device Device

	Author, App string // each bounded to 16 bytes

	frame   *FrameBuffer
	palette *Palette
	canvas  *CanvasOverride // nil when inactive

	memory GuestMemory // populated on first host call after instantiation

	seed uint32

	exit  bool
	next  *Transition
	title string // menu.set_title, truncated to 64 bytes

	called string // last host-call name, for diagnostics/log source

	audio *AudioGraph
	net   *NetHandler

	conn uint32 // set_conn_status raw value, opaque to the host
}

// New creates a fresh HostState for a guest identified by (author, app),
// bound to device.
func New(author, app string, device Device) *HostState {
	if len(author) > 16 {
		author = author[:16]
	}
	if len(app) > 16 {
		app = app[:16]
	}
	return &HostState{
		device:  device,
		Author:  author,
		App:     app,
		frame:   NewFrameBuffer(FrameWidth, FrameHeight),
		palette: NewPalette(),
		seed:    1,
		audio:   NewAudioGraph(44100),
		net:     NewNetHandler(device.Net()),
	}
}

// recordCall stamps the canonical name of the host call currently
// executing into state.called, before doing any work, so that any
// error logged during that call can name its source.
func (s *HostState) recordCall(name string) {
	s.mu.Lock()
	s.called = name
	s.mu.Unlock()
}

func (s *HostState) logError(e HostError, detail string) {
	s.mu.Lock()
	source := s.called
	s.mu.Unlock()
	s.device.LogError("runtime", source+": "+e.String()+": "+detail)
}

// drawTarget returns the surface active draws should route to: the
// CanvasBuffer over guest memory if set_canvas is active and still
// valid, otherwise the primary FrameBuffer.
func (s *HostState) drawTarget() DrawTarget {
	s.mu.Lock()
	canvas := s.canvas
	mem := s.memory
	s.mu.Unlock()

	if canvas != nil && mem != nil && validCanvas(*canvas, mem.Size()) {
		return NewCanvasBuffer(mem.Bytes(), *canvas)
	}
	return s.frame
}

// SetCanvas installs a canvas override after validating it against the
// guest's current memory size. It returns false (logging ErrOomPointer)
// if the range or width is invalid.
func (s *HostState) SetCanvas(start, size, width uint32) bool {
	s.mu.Lock()
	mem := s.memory
	s.mu.Unlock()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "set_canvas before memory captured")
		return false
	}
	c := CanvasOverride{Start: start, End: start + size, Width: width}
	if start > c.End || !validCanvas(c, mem.Size()) {
		s.logError(ErrOomPointer, "set_canvas out of range")
		return false
	}
	s.mu.Lock()
	s.canvas = &c
	s.mu.Unlock()
	return true
}

// UnsetCanvas clears any active canvas override, routing subsequent
// draws back to the framebuffer.
func (s *HostState) UnsetCanvas() {
	s.mu.Lock()
	s.canvas = nil
	s.mu.Unlock()
}

// FrameBuffer exposes the primary display surface, for the runtime's
// flush step.
func (s *HostState) FrameBuffer() *FrameBuffer { return s.frame }

// Palette exposes the current palette, for the runtime's flush step.
func (s *HostState) Palette() *Palette { return s.palette }

// Exit reports whether misc.quit has been called.
func (s *HostState) Exit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exit
}

// RequestExit sets the exit flag (misc.quit / menu.request_exit_to_launcher).
func (s *HostState) RequestExit() {
	s.mu.Lock()
	s.exit = true
	s.mu.Unlock()
}

// Next returns the pending transition, if any (misc.restart).
func (s *HostState) Next() *Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// RequestRestart sets a pending transition back to the same (author,
// app), so the runtime reloads the current guest rather than exiting.
func (s *HostState) RequestRestart() {
	s.mu.Lock()
	s.next = &Transition{Author: s.Author, App: s.App}
	s.mu.Unlock()
}

// SetMemory installs the guest's exported linear memory, captured once
// by the runtime after instantiation.
func (s *HostState) SetMemory(mem GuestMemory) {
	s.mu.Lock()
	s.memory = mem
	s.mu.Unlock()
}

// Memory returns the guest's linear memory accessor, or nil before the
// runtime has captured it.
func (s *HostState) Memory() GuestMemory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory
}

// Seed returns the current xorshift seed without mixing it.
func (s *HostState) Seed() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// SetSeed installs a new seed directly (misc.set_seed).
func (s *HostState) SetSeed(v uint32) {
	s.mu.Lock()
	s.seed = v
	s.mu.Unlock()
}

// NextRandom mixes the seed with xorshift32 and returns the new value,
// which also becomes the stored seed (misc.get_random).
func (s *HostState) NextRandom() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = xorshift32(s.seed)
	return s.seed
}

// Audio exposes the per-guest audio node tree.
func (s *HostState) Audio() *AudioGraph { return s.audio }

// NetHandler exposes the per-guest networking state machine.
func (s *HostState) NetHandler() *NetHandler { return s.net }

// Device exposes the device capability set this guest is bound to.
func (s *HostState) Device() Device { return s.device }

// SetConnStatus records an opaque connection-status value from the
// guest (misc/net.set_conn_status), forwarded verbatim to whatever the
// out-of-scope UI reads it back as.
func (s *HostState) SetConnStatus(v uint32) {
	s.mu.Lock()
	s.conn = v
	s.mu.Unlock()
}

// SetTitle records a guest-chosen display title (menu.set_title),
// truncated to 64 bytes.
func (s *HostState) SetTitle(title string) {
	if len(title) > 64 {
		title = title[:64]
	}
	s.mu.Lock()
	s.title = title
	s.mu.Unlock()
}

// Title returns the last title set by menu.set_title.
func (s *HostState) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}
