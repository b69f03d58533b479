// device.go - The Device capability set consumed by the host runtime

package main

import (
	"context"
	"time"
)

// Point is a signed 2D coordinate, used for pad/stick samples.
type Point struct {
	X, Y int16
}

// InputState is one device-wide input sample.
type InputState struct {
	Pad     *Point
	Left    *Point
	Right   *Point
	Buttons uint8
}

// NetAddr identifies a network peer endpoint. Its zero value is never a
// valid address; device implementations define their own concrete
// representation (e.g. a UDP host:port string) behind this opaque type.
type NetAddr interface {
	String() string
}

// NetMessage is one inbound datagram, at most 64 bytes, from Addr.
type NetMessage struct {
	Addr NetAddr
	Data []byte
}

// MaxNetMessageSize bounds every datagram exchanged by the netplay core.
const MaxNetMessageSize = 64

// Display is the draw target consumed by the runtime loop's flush step:
// a fixed-origin, 8-8-8 color surface.
type Display interface {
	// Clear paints the whole surface black before the guest's first
	// frame.
	Clear() error
	// Present uploads a palette-expanded RGBA8888 frame (width*height*4
	// bytes, row-major) for display.
	Present(rgba []byte, width, height int) error
	Close() error
}

// AudioOut is the sink the audio graph mixes into; see audio_graph.go.
type AudioOut interface {
	Start()
	Stop()
	Close()
}

// FS is the filesystem capability: two well-known roots ("roms",
// read-only ROM assets, and "data", per-app read/write storage), with
// every write confined under baseDir so a guest can never escape its
// sandboxed storage area.
type FS interface {
	OpenFile(path []string) ([]byte, error)
	CreateFile(path []string, data []byte) error
	RemoveFile(path []string) error
	ListDirs(root string) ([]string, error)
}

// Net is the non-blocking datagram transport backing NetHandler.
type Net interface {
	// Recv returns at most one pending message, or ok=false if none is
	// available; it never blocks.
	Recv() (msg NetMessage, ok bool)
	Send(addr NetAddr, data []byte) error
}

// Device aggregates every hardware capability the runtime mediates guest
// access through. A concrete Device is assembled once per process and
// shared by every HostState the runtime creates (one guest instance at a
// time, per the Non-goals).
type Device interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
	LogDebug(source, msg string)
	LogError(source, msg string)
	ReadInput() (InputState, bool)

	Display() Display
	AudioOut() AudioOut
	FS() FS
	Net() Net
}
