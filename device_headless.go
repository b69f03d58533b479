//go:build headless

// device_headless.go - Stand-in Display/AudioOut for headless builds
//
// Same build tag, same "count frames/do nothing" shape as the other
// platform backends, so CI and sandboxed test environments never need
// a real window or audio device.

package main

type HeadlessDisplay struct {
	frameCount uint64
}

func NewPlatformDisplay(width, height, scale int) Display {
	return &HeadlessDisplay{}
}

func (h *HeadlessDisplay) Clear() error { return nil }

func (h *HeadlessDisplay) Present(rgba []byte, width, height int) error {
	h.frameCount++
	return nil
}

func (h *HeadlessDisplay) Close() error { return nil }

type HeadlessAudioOut struct {
	started bool
}

func NewPlatformAudioOut(sampleRateHz int, graph *AudioGraph) (AudioOut, error) {
	return &HeadlessAudioOut{}, nil
}

func (h *HeadlessAudioOut) Start()                    { h.started = true }
func (h *HeadlessAudioOut) Stop()                     { h.started = false }
func (h *HeadlessAudioOut) Close()                    { h.started = false }
func (h *HeadlessAudioOut) SetGraph(graph *AudioGraph) {}
