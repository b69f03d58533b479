// hostcalls_fs.go - fs.* host calls over the sandboxed FS capability
//
// Paths cross the ABI as a single UTF-8 string with '/' separators,
// relative to the selected root, e.g. "save.bin" or "levels/1.bin";
// splitPath turns that into the segment slice FS expects. Every write is
// confined under the guest's own (Author, App) directory — a guest cannot
// address another app's data, because under the "data" root the host
// always prefixes the whole guest-supplied path with
// "data/<Author>/<App>", so a guest spelling "other/save.bin" lands in
// "data/<Author>/<App>/other/save.bin".

package main

import "strings"

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// dataPath builds a "data/<author>/<app>/..." path from the calling
// guest's own identity followed by every segment of tail.
func (s *HostState) dataPath(tail []string) []string {
	return append([]string{"data", s.Author, s.App}, tail...)
}

// fsLoadFile implements fs.load_file(root, path_ptr, path_len, buf_ptr,
// buf_len) -> bytes written, 0 on any failure. root: 0 = roms (full
// guest-supplied path), 1 = data (path confined to the guest's own
// author/app directory).
func fsLoadFile(s *HostState, root uint32, pathPtr, pathLen, bufPtr, bufLen uint32) uint32 {
	s.recordCall("fs.load_file")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "load_file")
		return 0
	}
	rel, ok := readString(mem, pathPtr, pathLen)
	if !ok {
		s.logError(ErrBadUTF8, "load_file")
		return 0
	}

	var path []string
	if root == 1 {
		path = s.dataPath(splitPath(rel))
	} else {
		path = append([]string{"roms"}, splitPath(rel)...)
	}

	data, err := s.Device().FS().OpenFile(path)
	if err != nil {
		s.logError(ErrFileWrite, "load_file: "+err.Error())
		return 0
	}
	if uint32(len(data)) > bufLen {
		s.logError(ErrBufferSize, "load_file")
		data = data[:bufLen]
	}
	return writeBytes(mem, bufPtr, data)
}

// fsSaveFile implements fs.save_file(path_ptr, path_len, data_ptr,
// data_len) -> 1 on success, 0 on failure. Writes always land under the
// guest's own data directory.
func fsSaveFile(s *HostState, pathPtr, pathLen, dataPtr, dataLen uint32) uint32 {
	s.recordCall("fs.save_file")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "save_file")
		return 0
	}
	rel, ok := readString(mem, pathPtr, pathLen)
	if !ok {
		s.logError(ErrBadUTF8, "save_file")
		return 0
	}
	data, ok := readBytes(mem, dataPtr, dataLen)
	if !ok {
		s.logError(ErrOomPointer, "save_file")
		return 0
	}

	path := s.dataPath(splitPath(rel))
	if err := s.Device().FS().CreateFile(path, data); err != nil {
		s.logError(ErrFileWrite, "save_file: "+err.Error())
		return 0
	}
	return 1
}

// fsRemoveFile implements fs.remove_file(path_ptr, path_len) -> 1 on
// success, 0 on failure. Confined to the guest's own data directory.
func fsRemoveFile(s *HostState, pathPtr, pathLen uint32) uint32 {
	s.recordCall("fs.remove_file")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "remove_file")
		return 0
	}
	rel, ok := readString(mem, pathPtr, pathLen)
	if !ok {
		s.logError(ErrBadUTF8, "remove_file")
		return 0
	}
	path := s.dataPath(splitPath(rel))
	if err := s.Device().FS().RemoveFile(path); err != nil {
		s.logError(ErrFileWrite, "remove_file: "+err.Error())
		return 0
	}
	return 1
}

// fsListDirs implements fs.list_dirs(root, buf_ptr, buf_len) -> bytes
// written, a newline-joined listing of the requested root's immediate
// subdirectories ("roms" or the guest's own data directory).
func fsListDirs(s *HostState, root, bufPtr, bufLen uint32) uint32 {
	s.recordCall("fs.list_dirs")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "list_dirs")
		return 0
	}

	rootName := "roms"
	if root == 1 {
		rootName = strings.Join(s.dataPath(nil), "/")
	}
	dirs, err := s.Device().FS().ListDirs(rootName)
	if err != nil {
		s.logError(ErrFileWrite, "list_dirs: "+err.Error())
		return 0
	}
	joined := strings.Join(dirs, "\n")
	if uint32(len(joined)) > bufLen {
		s.logError(ErrBufferSize, "list_dirs")
		joined = joined[:bufLen]
	}
	return writeBytes(mem, bufPtr, []byte(joined))
}
