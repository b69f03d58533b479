// hostcalls_menu.go - menu.* host calls
//
// menu rounds out the launcher-facing surface a guest needs beyond the
// core playfield: a guest can ask to return to the launcher, set its
// displayed title, and read a locale tag.

package main

// menuRequestExitToLauncher implements
// menu.request_exit_to_launcher(), identical in effect to misc.quit.
func menuRequestExitToLauncher(s *HostState) {
	s.recordCall("menu.request_exit_to_launcher")
	s.RequestExit()
}

// menuSetTitle implements menu.set_title(ptr, len).
func menuSetTitle(s *HostState, ptr, length uint32) {
	s.recordCall("menu.set_title")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "set_title")
		return
	}
	title, ok := readString(mem, ptr, length)
	if !ok {
		s.logError(ErrBadUTF8, "set_title")
		return
	}
	s.SetTitle(title)
}

// menuGetLocale implements menu.get_locale(buf_ptr, buf_len) -> bytes
// written, a BCP-47 tag. The tag is always "en-US" (truncated to
// buf_len); the Device is not consulted.
func menuGetLocale(s *HostState, bufPtr, bufLen uint32) uint32 {
	s.recordCall("menu.get_locale")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "get_locale")
		return 0
	}
	locale := "en-US"
	if uint32(len(locale)) > bufLen {
		locale = locale[:bufLen]
	}
	return writeBytes(mem, bufPtr, []byte(locale))
}
