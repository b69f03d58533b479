// hostcalls_audio.go - audio.* host calls over the AudioGraph

package main

// audioAddNode implements audio.add_node(kind, parent) -> u32 id, or 0
// with ErrAudioNode logged if parent does not exist.
func audioAddNode(s *HostState, kind, parent uint32) uint32 {
	s.recordCall("audio.add_node")
	id, ok := s.Audio().AddNode(AudioNodeKind(kind), parent)
	if !ok {
		s.logError(ErrAudioNode, "add_node: unknown parent")
		return 0
	}
	return id
}

// audioSetParams implements audio.set_params(id, p0, p1, p2, p3).
func audioSetParams(s *HostState, id uint32, p0, p1, p2, p3 float32) {
	s.recordCall("audio.set_params")
	if !s.Audio().SetParams(id, [4]float32{p0, p1, p2, p3}) {
		s.logError(ErrAudioNode, "set_params: unknown node")
	}
}

// audioClear implements audio.clear(id).
func audioClear(s *HostState, id uint32) {
	s.recordCall("audio.clear")
	if !s.Audio().Clear(id) {
		s.logError(ErrAudioNode, "clear: unknown node")
	}
}

// audioRoot implements audio.root() -> u32, the stable id of the guest
// session's mixer root.
func audioRoot(s *HostState) uint32 {
	s.recordCall("audio.root")
	return s.Audio().RootHandle()
}
