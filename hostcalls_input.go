// hostcalls_input.go - input.* host calls

package main

// packPad encodes a Point as (x<<16)|y, or the absent sentinel
// 0xFFFFFFFF when p is nil.
func packPad(p *Point) uint32 {
	if p == nil {
		return 0xFFFFFFFF
	}
	return (uint32(uint16(p.X)) << 16) | uint32(uint16(p.Y))
}

// inputReadPad implements input.read_pad(which) -> packed u32, where
// which selects 0=pad, 1=left stick, 2=right stick.
func inputReadPad(s *HostState, which uint32) uint32 {
	s.recordCall("input.read_pad")
	state, ok := s.Device().ReadInput()
	if !ok {
		return 0xFFFFFFFF
	}
	switch which {
	case 0:
		return packPad(state.Pad)
	case 1:
		return packPad(state.Left)
	case 2:
		return packPad(state.Right)
	default:
		return 0xFFFFFFFF
	}
}

// inputReadButtons implements input.read_buttons() -> u32 bitmask.
func inputReadButtons(s *HostState) uint32 {
	s.recordCall("input.read_buttons")
	state, ok := s.Device().ReadInput()
	if !ok {
		return 0
	}
	return uint32(state.Buttons)
}
