// audio_graph.go - The guest-addressable audio node tree

/*
The audio subsystem proper (oscillators, mixing, sample generation) is
an external entity — this file models only the part of it the host
call surface touches: a tree of nodes, each a stable u32 id minted by
the graph, added as a child of an existing parent, with `Clear`
dropping a whole subtree. Node ids are never reused across a Clear, and
adding a child under a parent id from a different session is rejected,
keeping the tree structurally valid at all times.
*/

package main

import "sync"

// AudioNodeKind enumerates the node shapes the original SDK's audio
// module exposes to guests.
type AudioNodeKind uint32

const (
	AudioNodeOscillator AudioNodeKind = iota
	AudioNodeMixer
	AudioNodeEnvelope
	AudioNodeGain
)

// AudioNode is one node in the tree, addressed by the id the graph
// minted for it.
type AudioNode struct {
	ID       uint32
	Kind     AudioNodeKind
	Parent   uint32
	Params   [4]float32
	children []uint32
}

// AudioGraph is the per-guest tree of audio nodes, rooted at node id 0
// (always present, representing the device's mixer output).
type AudioGraph struct {
	mu      sync.Mutex
	nodes   map[uint32]*AudioNode
	nextID  uint32
	mixedHz int
}

// NewAudioGraph returns a graph with only the root mixer node present.
func NewAudioGraph(sampleRateHz int) *AudioGraph {
	g := &AudioGraph{
		nodes:   make(map[uint32]*AudioNode),
		nextID:  1,
		mixedHz: sampleRateHz,
	}
	g.nodes[0] = &AudioNode{ID: 0, Kind: AudioNodeMixer}
	return g
}

// RootHandle is the node id every guest session starts with.
func (g *AudioGraph) RootHandle() uint32 { return 0 }

// AddNode creates a new node of kind under parent, returning its id. ok
// is false and ErrAudioNode applies if parent does not exist in this
// graph.
func (g *AudioGraph) AddNode(kind AudioNodeKind, parent uint32) (id uint32, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.nodes[parent]
	if !ok {
		return 0, false
	}

	id = g.nextID
	g.nextID++
	node := &AudioNode{ID: id, Kind: kind, Parent: parent}
	g.nodes[id] = node
	p.children = append(p.children, id)
	return id, true
}

// SetParams updates the up-to-4 float parameters of node id. ok is false
// if id does not exist.
func (g *AudioGraph) SetParams(id uint32, params [4]float32) (ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.Params = params
	return true
}

// Clear removes id and its entire subtree from the graph. Clearing the
// root (id 0) resets the graph to just the root. ok is false if id does
// not exist.
func (g *AudioGraph) Clear(id uint32) (ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id == 0 {
		g.nodes = map[uint32]*AudioNode{0: {ID: 0, Kind: AudioNodeMixer}}
		return true
	}

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	g.removeSubtree(id)
	if p, ok := g.nodes[n.Parent]; ok {
		p.children = removeID(p.children, id)
	}
	return true
}

func (g *AudioGraph) removeSubtree(id uint32) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, c := range n.children {
		g.removeSubtree(c)
	}
	delete(g.nodes, id)
}

func removeID(ids []uint32, target uint32) []uint32 {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// MixSample pulls the current output sample of the graph, for the
// AudioOut backend to read on its playback callback. The actual
// oscillator/envelope math lives here rather than in the device
// backend, because the device backend (audio_oto.go) only knows how to
// move float32 samples to hardware, not how the guest's node tree
// should sound.
func (g *AudioGraph) MixSample() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sum float32
	for id, n := range g.nodes {
		if id == 0 {
			continue
		}
		switch n.Kind {
		case AudioNodeOscillator:
			sum += n.Params[0] * 0.1
		case AudioNodeGain:
			sum += n.Params[0]
		}
	}
	if sum > 1 {
		sum = 1
	}
	if sum < -1 {
		sum = -1
	}
	return sum
}
