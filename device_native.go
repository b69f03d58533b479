// device_native.go - Assembles the concrete Device for a real console
//
// Constructs each backend, then hands them to the thing that drives
// them, with no mode switch to make: there's one guest engine here, not
// a selection of interchangeable backend cores.

package main

import (
	"context"
	"time"
)

// InputSource is implemented by a Display backend capable of also
// reporting input (ebiten owns both the window and the keyboard event
// loop, so EbitenDisplay satisfies this; the headless display does
// not).
type InputSource interface {
	ReadInput() (InputState, bool)
}

// NativeDevice is the production Device: a platform display/audio
// backend, native sandboxed filesystem roots, and a UDP transport.
type NativeDevice struct {
	LoggingDevice
	display Display
	audio   AudioOut
	fs      FS
	net     Net
	input   InputSource
}

// NewNativeDevice assembles a Device from config, opening a UDP socket
// on localAddr for Net (pass ":0" for an ephemeral port if netplay is
// unused). scale sets the display's pixel magnification.
func NewNativeDevice(config RuntimeConfig, localAddr string, scale int) (*NativeDevice, error) {
	// A placeholder graph until Runtime.Boot binds the first guest's own;
	// AudioOut.SetGraph rebinds it on every boot.
	placeholder := NewAudioGraph(44100)
	display := NewPlatformDisplay(config.Width, config.Height, scale)
	audioOut, err := NewPlatformAudioOut(44100, placeholder)
	if err != nil {
		return nil, err
	}
	netConn, err := NewUDPNet(localAddr)
	if err != nil {
		return nil, err
	}

	d := &NativeDevice{
		display: display,
		audio:   audioOut,
		fs:      NewNativeFS("."), // fs host calls address "roms/..." and "data/..." beneath the working directory
		net:     netConn,
	}
	if src, ok := display.(InputSource); ok {
		d.input = src
	}
	return d, nil
}

func (d *NativeDevice) Now() time.Time { return time.Now() }

func (d *NativeDevice) Sleep(ctx context.Context, dur time.Duration) {
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (d *NativeDevice) ReadInput() (InputState, bool) {
	if d.input == nil {
		return InputState{}, false
	}
	return d.input.ReadInput()
}

func (d *NativeDevice) Display() Display   { return d.display }
func (d *NativeDevice) AudioOut() AudioOut { return d.audio }
func (d *NativeDevice) FS() FS             { return d.fs }
func (d *NativeDevice) Net() Net           { return d.net }
