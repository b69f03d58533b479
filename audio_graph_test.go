package main

import "testing"

func TestAudioGraphAddNodeUnderRoot(t *testing.T) {
	g := NewAudioGraph(44100)
	id, ok := g.AddNode(AudioNodeOscillator, g.RootHandle())
	if !ok {
		t.Fatalf("AddNode under root should succeed")
	}
	if id == g.RootHandle() {
		t.Fatalf("new node id must differ from the root handle")
	}
}

func TestAudioGraphAddNodeUnknownParent(t *testing.T) {
	g := NewAudioGraph(44100)
	if _, ok := g.AddNode(AudioNodeGain, 999); ok {
		t.Fatalf("AddNode under a nonexistent parent should fail")
	}
}

func TestAudioGraphSetParamsUnknownNode(t *testing.T) {
	g := NewAudioGraph(44100)
	if g.SetParams(999, [4]float32{1, 2, 3, 4}) {
		t.Fatalf("SetParams on a nonexistent node should fail")
	}
}

func TestAudioGraphClearSubtree(t *testing.T) {
	g := NewAudioGraph(44100)
	parent, _ := g.AddNode(AudioNodeMixer, g.RootHandle())
	child, _ := g.AddNode(AudioNodeOscillator, parent)

	if !g.Clear(parent) {
		t.Fatalf("Clear(parent) should succeed")
	}
	if g.SetParams(child, [4]float32{}) {
		t.Fatalf("child node should have been removed along with its parent")
	}
}

func TestAudioGraphClearRootResetsTree(t *testing.T) {
	g := NewAudioGraph(44100)
	id, _ := g.AddNode(AudioNodeGain, g.RootHandle())

	if !g.Clear(g.RootHandle()) {
		t.Fatalf("Clear(root) should succeed")
	}
	if g.SetParams(id, [4]float32{}) {
		t.Fatalf("all nodes should be gone after clearing the root")
	}
	// root itself must still exist and accept new children
	if _, ok := g.AddNode(AudioNodeOscillator, g.RootHandle()); !ok {
		t.Fatalf("root should still accept children after Clear(root)")
	}
}

func TestAudioGraphMixSampleClamped(t *testing.T) {
	g := NewAudioGraph(44100)
	id, _ := g.AddNode(AudioNodeGain, g.RootHandle())
	g.SetParams(id, [4]float32{5, 0, 0, 0})

	if got := g.MixSample(); got != 1 {
		t.Fatalf("MixSample() = %v, want clamped to 1", got)
	}

	g.SetParams(id, [4]float32{-5, 0, 0, 0})
	if got := g.MixSample(); got != -1 {
		t.Fatalf("MixSample() = %v, want clamped to -1", got)
	}
}

func TestAudioGraphMixSampleEmpty(t *testing.T) {
	g := NewAudioGraph(44100)
	if got := g.MixSample(); got != 0 {
		t.Fatalf("MixSample() on an empty graph = %v, want 0", got)
	}
}
