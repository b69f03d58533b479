// config.go - Runtime configuration, assembled programmatically
//
// There is no on-disk config file format here: main.go builds a
// RuntimeConfig from DefaultConfig and its command-line flags and hands
// it to NewNativeDevice and NewRuntime.

package main

// RuntimeConfig bundles every knob the runtime needs besides the
// Device and the guest ROM bytes themselves.
type RuntimeConfig struct {
	// FrameRate is the guest's fixed update/render cadence, in Hz.
	FrameRate int
	// Width, Height size the display backend. HostState's primary
	// FrameBuffer is always FrameWidth x FrameHeight.
	Width, Height int
	// RomsRoot is the directory main.go loads cartridges from. The fs.*
	// host calls address fixed "roms" and "data" roots through the
	// device's FS; DataRoot is carried here but not read.
	RomsRoot, DataRoot string
	// MaxPeers defaults to the MaxPeers constant; the netplay code does
	// not read it.
	MaxPeers int
	// Sudo gates whether the "sudo" host module is ever instantiated
	// for a guest. Off by default; a launcher flips it for development
	// builds only.
	Sudo bool
}

// DefaultConfig returns the standard handheld geometry: 240x160 at
// 60Hz, sudo disabled.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FrameRate: 60,
		Width:     FrameWidth,
		Height:    FrameHeight,
		RomsRoot:  "roms",
		DataRoot:  "data",
		MaxPeers:  MaxPeers,
		Sudo:      false,
	}
}
