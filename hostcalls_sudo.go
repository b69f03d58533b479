// hostcalls_sudo.go - sudo.* host calls, gated behind RuntimeConfig.Sudo
//
// sudo.eval runs a guest-supplied Lua snippet through gopher-lua for
// debug/development builds, exposing get_random/log_debug back into the
// script so a developer can poke at host state from a REPL-like guest
// without recompiling the WASM module. linker.go binds this module only
// when the runtime was constructed with sudo enabled; on a locked-down
// runtime a guest importing it fails CheckImports with
// UsedDisabledSudoHostFunction.

package main

import (
	lua "github.com/yuin/gopher-lua"
)

// sudoEval implements sudo.eval(ptr, len) -> 1 on a script that ran to
// completion, 0 on a parse/runtime error (logged under ErrBufferSize,
// the closest fit for "guest supplied something the host could not
// use").
func sudoEval(s *HostState, ptr, length uint32) uint32 {
	s.recordCall("sudo.eval")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "sudo.eval")
		return 0
	}
	script, ok := readString(mem, ptr, length)
	if !ok {
		s.logError(ErrBadUTF8, "sudo.eval")
		return 0
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("get_random", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(s.NextRandom()))
		return 1
	}))
	L.SetGlobal("log_debug", L.NewFunction(func(L *lua.LState) int {
		msg := L.ToString(1)
		s.Device().LogDebug("sudo", msg)
		return 0
	}))

	if err := L.DoString(script); err != nil {
		s.logError(ErrBufferSize, "sudo.eval: "+err.Error())
		return 0
	}
	return 1
}
