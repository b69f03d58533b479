// hostcalls_wasi.go - minimal wasi_snapshot_preview1 subset
//
// Guest toolchains that default to a WASI target (Rust's
// wasm32-wasip1, for one) emit calls into this module even when the
// program never touches a real file descriptor. This is a
// forwarding/stub subset, not a filesystem: every call either reports
// "no data" in WASI's own error-code convention or, for fd_write on
// stdout/stderr, forwards to the device log.
// wasiErrno values are the subset of WASI's errno space these calls can
// produce.

package main

import "encoding/binary"

const (
	wasiErrnoSuccess uint32 = 0
	wasiErrnoBadF    uint32 = 8
	wasiErrnoInval   uint32 = 28
)

// wasiEnvironGet implements environ_get(environ_ptr, environ_buf_ptr).
// The guest is reported a fully empty environment.
func wasiEnvironGet(s *HostState, environPtr, environBufPtr uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.environ_get")
	return wasiErrnoSuccess
}

// wasiEnvironSizesGet implements
// environ_sizes_get(count_ptr, buf_size_ptr) -> errno, writing 0 for
// both outputs (no environment variables).
func wasiEnvironSizesGet(s *HostState, countPtr, bufSizePtr uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.environ_sizes_get")
	mem := s.Memory()
	if mem == nil {
		return wasiErrnoInval
	}
	zero := make([]byte, 4)
	writeBytes(mem, countPtr, zero)
	writeBytes(mem, bufSizePtr, zero)
	return wasiErrnoSuccess
}

// wasiClockTimeGet implements clock_time_get(id, precision, time_ptr),
// writing the device's current time as nanoseconds since the Unix
// epoch regardless of which clock id was requested (the runtime has
// only one clock source).
func wasiClockTimeGet(s *HostState, id uint64, precision uint64, timePtr uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.clock_time_get")
	mem := s.Memory()
	if mem == nil {
		return wasiErrnoInval
	}
	ns := uint64(s.Device().Now().UnixNano())
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, ns)
	writeBytes(mem, timePtr, buf)
	return wasiErrnoSuccess
}

// wasiFdClose implements fd_close(fd) -> errno. There are no real file
// descriptors, so every close succeeds trivially.
func wasiFdClose(s *HostState, fd uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.fd_close")
	return wasiErrnoSuccess
}

// wasiFdRead implements fd_read(fd, iovs_ptr, iovs_len, nread_ptr) ->
// errno. Reads from any fd report zero bytes: this is not a real
// filesystem (fs.* covers guest storage), only enough surface to let a
// WASI-targeted toolchain's startup code run without trapping.
func wasiFdRead(s *HostState, fd, iovsPtr, iovsLen, nreadPtr uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.fd_read")
	mem := s.Memory()
	if mem == nil {
		return wasiErrnoInval
	}
	writeBytes(mem, nreadPtr, make([]byte, 4))
	return wasiErrnoSuccess
}

// wasiFdSeek implements fd_seek(fd, offset, whence, newoffset_ptr) ->
// errno, always reporting position 0.
func wasiFdSeek(s *HostState, fd uint32, offset int64, whence uint32, newoffsetPtr uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.fd_seek")
	mem := s.Memory()
	if mem == nil {
		return wasiErrnoInval
	}
	writeBytes(mem, newoffsetPtr, make([]byte, 8))
	return wasiErrnoSuccess
}

// wasiFdWrite implements fd_write(fd, iovs_ptr, iovs_len, nwritten_ptr)
// -> errno. fd 1/2 (stdout/stderr) are forwarded to the device logger
// under source "app" at debug/error level respectively, mirroring the
// effect of misc.log_debug/log_error for guests that only know how to
// write to a stream. Any other fd reports EBADF.
func wasiFdWrite(s *HostState, fd, iovsPtr, iovsLen, nwrittenPtr uint32) uint32 {
	s.recordCall("wasi_snapshot_preview1.fd_write")
	mem := s.Memory()
	if mem == nil {
		return wasiErrnoInval
	}
	if fd != 1 && fd != 2 {
		return wasiErrnoBadF
	}

	var written uint32
	var out []byte
	for i := uint32(0); i < iovsLen; i++ {
		desc, ok := readBytes(mem, iovsPtr+i*8, 8)
		if !ok {
			break
		}
		ptr := binary.LittleEndian.Uint32(desc[0:4])
		length := binary.LittleEndian.Uint32(desc[4:8])
		chunk, ok := readBytes(mem, ptr, length)
		if !ok {
			break
		}
		out = append(out, chunk...)
		written += length
	}

	if len(out) > 0 {
		if fd == 1 {
			s.Device().LogDebug("app", string(out))
		} else {
			s.Device().LogError("app", string(out))
		}
	}

	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, written)
	writeBytes(mem, nwrittenPtr, buf)
	return wasiErrnoSuccess
}

// wasiProcExit implements proc_exit(code), treated identically to
// misc.quit: the guest is torn down cleanly at the next tick boundary
// rather than abruptly, since nothing downstream distinguishes exit
// codes.
func wasiProcExit(s *HostState, code uint32) {
	s.recordCall("wasi_snapshot_preview1.proc_exit")
	s.RequestExit()
}
