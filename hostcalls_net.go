// hostcalls_net.go - net.* host calls over NetHandler
//
// get_peers/get_me hand the guest positional peer-index identifiers
// that are valid only within the current session, never a raw address —
// addresses stay host-side inside Peer.Addr.

package main

// netGetMe implements net.get_me() -> i32 local peer index, or -1 if
// not in an active session.
func netGetMe(s *HostState) int32 {
	s.recordCall("net.get_me")
	syncer := s.NetHandler().Syncer()
	if syncer == nil {
		return -1
	}
	return int32(syncer.LocalIndex())
}

// netGetPeers implements net.get_peers(buf_ptr, buf_len) -> peer count,
// writing one zero-padded 16-byte name per peer in session order
// (including the local peer) into guest memory.
func netGetPeers(s *HostState, bufPtr, bufLen uint32) uint32 {
	s.recordCall("net.get_peers")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "get_peers")
		return 0
	}
	syncer := s.NetHandler().Syncer()
	if syncer == nil {
		return 0
	}
	peers := syncer.Peers()

	const nameWidth = 16
	buf := make([]byte, 0, len(peers)*nameWidth)
	for _, p := range peers {
		name := make([]byte, nameWidth)
		copy(name, p.Name)
		buf = append(buf, name...)
	}
	if uint32(len(buf)) > bufLen {
		buf = buf[:bufLen-(bufLen%nameWidth)]
	}
	writeBytes(mem, bufPtr, buf)
	return uint32(len(peers))
}

// netSetConnStatus implements net.set_conn_status(v), recording an
// opaque value the out-of-scope UI layer reads back.
func netSetConnStatus(s *HostState, v uint32) {
	s.recordCall("net.set_conn_status")
	s.SetConnStatus(v)
}

// netJoinGame implements net.join_game(author_ptr, author_len, app_ptr,
// app_len), promoting a lobby Connection into an in-game FrameSyncer.
func netJoinGame(s *HostState, authorPtr, authorLen, appPtr, appLen uint32) {
	s.recordCall("net.join_game")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "join_game")
		return
	}
	author, ok := readString(mem, authorPtr, authorLen)
	if !ok {
		s.logError(ErrBadUTF8, "join_game")
		return
	}
	app, ok := readString(mem, appPtr, appLen)
	if !ok {
		s.logError(ErrBadUTF8, "join_game")
		return
	}
	s.NetHandler().JoinGame(author, app)
}

// netDisconnect implements net.disconnect().
func netDisconnect(s *HostState) {
	s.recordCall("net.disconnect")
	s.NetHandler().Disconnect()
}

// netSaveStash / netLoadStash implement a small per-peer key/value
// scratch area layered over the same "data" FS root fs.* writes use,
// keyed by the guest's own author/app plus a fixed file name — a
// lighter-weight sibling to fs.save_file for frequent small blobs (e.g.
// a rejoin token) that doesn't want a guest-chosen path.
const stashFile = "stash"

// netSaveStash implements net.save_stash(peer_id, ptr, len) -> 1 on
// success, 0 otherwise. peer_id names which peer's data this is; this
// runtime has no channel for writing data on a remote peer's behalf, so
// only peer_id 0 is written, and any other peer_id is treated as an
// error-logged no-op. peer_id is compared with 0, not with the index
// net.get_me reports.
func netSaveStash(s *HostState, peerID, dataPtr, dataLen uint32) uint32 {
	s.recordCall("net.save_stash")
	if peerID != 0 {
		s.logError(ErrFileWrite, "save_stash: non-zero remote peer_id unsupported")
		return 0
	}
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "save_stash")
		return 0
	}
	data, ok := readBytes(mem, dataPtr, dataLen)
	if !ok {
		s.logError(ErrOomPointer, "save_stash")
		return 0
	}
	path := s.dataPath([]string{stashFile})
	if err := s.Device().FS().CreateFile(path, data); err != nil {
		s.logError(ErrFileWrite, "save_stash: "+err.Error())
		return 0
	}
	return 1
}

func netLoadStash(s *HostState, bufPtr, bufLen uint32) uint32 {
	s.recordCall("net.load_stash")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "load_stash")
		return 0
	}
	path := s.dataPath([]string{stashFile})
	data, err := s.Device().FS().OpenFile(path)
	if err != nil {
		return 0
	}
	if uint32(len(data)) > bufLen {
		data = data[:bufLen]
	}
	return writeBytes(mem, bufPtr, data)
}
