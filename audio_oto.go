//go:build !headless

// audio_oto.go - oto/v3-backed AudioOut
//
// Uses an atomic.Pointer-guarded source swapped in under oto's Read
// callback, with a pre-allocated sample buffer in the hot path to avoid
// allocating on every audio tick. Pulls one mixed sample per frame from
// an AudioGraph, since the node tree here has no background generator
// goroutine of its own.

package main

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// OtoAudioOut streams an AudioGraph's MixSample output to hardware via
// oto.
type OtoAudioOut struct {
	ctx       *oto.Context
	player    *oto.Player
	graph     atomic.Pointer[AudioGraph]
	sampleBuf []float32
	started   bool
	mu        sync.Mutex
}

// NewOtoAudioOut opens an oto context at sampleRate and binds it to
// graph's mixed output.
func NewOtoAudioOut(sampleRate int, graph *AudioGraph) (*OtoAudioOut, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	out := &OtoAudioOut{ctx: ctx, sampleBuf: make([]float32, 4096)}
	out.graph.Store(graph)
	out.player = ctx.NewPlayer(out)
	return out, nil
}

// Read implements io.Reader for oto's player, pulling one mixed sample
// per output frame.
func (o *OtoAudioOut) Read(p []byte) (int, error) {
	graph := o.graph.Load()
	if graph == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4
	if len(o.sampleBuf) < numSamples {
		o.sampleBuf = make([]float32, numSamples)
	}
	samples := o.sampleBuf[:numSamples]
	for i := range samples {
		samples[i] = graph.MixSample()
	}
	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (o *OtoAudioOut) Start() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.started {
		o.player.Play()
		o.started = true
	}
}

func (o *OtoAudioOut) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.started {
		o.player.Pause()
		o.started = false
	}
}

// SetGraph rebinds the node tree this output mixes from, used when the
// runtime tears down one guest and boots another.
func (o *OtoAudioOut) SetGraph(graph *AudioGraph) {
	o.graph.Store(graph)
}

func (o *OtoAudioOut) Close() {
	o.Stop()
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = o.player.Close()
}

// NewPlatformAudioOut returns the real oto-backed AudioOut for this
// build.
func NewPlatformAudioOut(sampleRateHz int, graph *AudioGraph) (AudioOut, error) {
	return NewOtoAudioOut(sampleRateHz, graph)
}
