// hostcalls_misc.go - misc.* host calls: seeding, randomness, logging,
// lifecycle

package main

// miscSetSeed implements misc.set_seed(seed).
func miscSetSeed(s *HostState, seed uint32) {
	s.recordCall("misc.set_seed")
	s.SetSeed(seed)
}

// miscGetRandom implements misc.get_random() -> u32, the xorshift32
// generator advanced by one step.
func miscGetRandom(s *HostState) uint32 {
	s.recordCall("misc.get_random")
	return s.NextRandom()
}

// miscLogDebug implements misc.log_debug(ptr, len), forwarding the
// guest's message to the device's structured logger under source "app".
func miscLogDebug(s *HostState, ptr, length uint32) {
	s.recordCall("misc.log_debug")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "log_debug")
		return
	}
	msg, ok := readString(mem, ptr, length)
	if !ok {
		s.logError(ErrBadUTF8, "log_debug")
		return
	}
	s.Device().LogDebug("app", msg)
}

// miscLogError implements misc.log_error(ptr, len), forwarding to the
// device's structured logger at error level under source "app".
func miscLogError(s *HostState, ptr, length uint32) {
	s.recordCall("misc.log_error")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "log_error")
		return
	}
	msg, ok := readString(mem, ptr, length)
	if !ok {
		s.logError(ErrBadUTF8, "log_error")
		return
	}
	s.Device().LogError("app", msg)
}

// miscQuit implements misc.quit(), requesting a clean exit to the
// launcher at the next tick boundary.
func miscQuit(s *HostState) {
	s.recordCall("misc.quit")
	s.RequestExit()
}

// miscRestart implements misc.restart(), requesting the current guest be
// torn down and re-instantiated fresh at the next tick boundary.
func miscRestart(s *HostState) {
	s.recordCall("misc.restart")
	s.RequestRestart()
}

// miscGetName implements misc.get_name(buf_ptr, buf_len) -> bytes
// written, copying "author/app" (truncated to buf_len) into guest
// memory.
func miscGetName(s *HostState, bufPtr, bufLen uint32) uint32 {
	s.recordCall("misc.get_name")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "get_name")
		return 0
	}
	name := s.Author + "/" + s.App
	if uint32(len(name)) > bufLen {
		name = name[:bufLen]
	}
	return writeBytes(mem, bufPtr, []byte(name))
}
