// linker.go - Resolves guest imports to host functions
//
// A guest module names every host call it needs as a (module, name)
// import pair. The linker recognizes the full module names
// ("graphics", "audio", "input", "net", "stats", "misc", "menu", "fs",
// "wasi_snapshot_preview1") and, for the five most frequently imported
// modules, the short aliases a size-conscious guest toolchain may emit
// instead ("g", "i", "n", "s", "m" for graphics/input/net/stats/misc
// respectively). sudo is bound only when the runtime was constructed
// with elevated privileges; on a locked-down runtime a sudo import fails
// with UsedDisabledSudoHostFunction rather than UnknownHostFunction.

package main

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
)

// aliasOf maps a module's short alias to its full name.
var aliasOf = map[string]string{
	"g": "graphics",
	"i": "input",
	"n": "net",
	"s": "stats",
	"m": "misc",
}

// funcAliasOf maps each aliased module's full name to the short
// function names a golfed guest may import under the short module,
// and the full function name each resolves to. Not every
// function in an aliased module has a short form. CheckImports keys off
// this table (funcAliasOf[full][short] = fullFuncName); BuildHostModules
// exports the same short names from the register*Aliased functions,
// which list them by hand.
var funcAliasOf = map[string]map[string]string{
	"graphics": {
		"a": "draw_arc", "c": "draw_circle", "ca": "set_canvas",
		"cr": "unset_canvas", "cs": "clear_screen", "e": "draw_ellipse",
		"i": "draw_image", "l": "draw_line", "p": "draw_point",
		"q": "draw_qr", "r": "draw_rect", "rr": "draw_rounded_rect",
		"s": "draw_sector", "sc": "set_color", "si": "draw_sub_image",
		"t": "draw_triangle", "x": "draw_text",
	},
	"input": {"p": "read_pad", "b": "read_buttons"},
	"net":   {"l": "load_stash", "m": "get_me", "p": "get_peers", "s": "save_stash"},
	"stats": {"p": "add_progress", "s": "add_score"},
	"misc": {
		"d": "log_debug", "e": "log_error", "n": "get_name",
		"q": "quit", "r": "get_random", "s": "set_seed",
	},
}

// canonicalModule resolves a guest-supplied module name (full or
// aliased) to its canonical form, used both for import validation and
// for deciding which host module to actually bind.
func canonicalModule(module string) string {
	if full, ok := aliasOf[module]; ok {
		return full
	}
	return module
}

// knownHostFunctions lists every (canonical module, function name) pair
// the linker can resolve. sudo's functions are listed separately since
// whether they count as "known" depends on runtime configuration.
var knownHostFunctions = map[string]map[string]bool{
	"graphics": {
		"set_canvas": true, "unset_canvas": true, "set_color": true,
		"clear_screen": true, "draw_point": true, "draw_line": true,
		"draw_rect": true, "draw_rounded_rect": true, "draw_circle": true,
		"draw_ellipse": true, "draw_arc": true, "draw_sector": true,
		"draw_triangle": true, "draw_text": true, "draw_image": true,
		"draw_sub_image": true, "draw_qr": true,
	},
	"audio": {
		"add_node": true, "set_params": true, "clear": true, "root": true,
	},
	"input": {
		"read_pad": true, "read_buttons": true,
	},
	"menu": {
		"request_exit_to_launcher": true, "set_title": true, "get_locale": true,
	},
	"fs": {
		"load_file": true, "save_file": true, "remove_file": true, "list_dirs": true,
	},
	"net": {
		"get_me": true, "get_peers": true, "set_conn_status": true,
		"join_game": true, "disconnect": true, "save_stash": true, "load_stash": true,
	},
	"stats": {
		"add_score": true, "add_progress": true, "get_best_score": true,
	},
	"misc": {
		"set_seed": true, "get_random": true, "log_debug": true, "log_error": true,
		"quit": true, "restart": true, "get_name": true,
	},
	"wasi_snapshot_preview1": {
		"environ_get": true, "environ_sizes_get": true, "clock_time_get": true,
		"fd_close": true, "fd_read": true, "fd_seek": true, "fd_write": true,
		"proc_exit": true,
	},
}

var knownSudoFunctions = map[string]bool{
	"eval": true,
}

// CheckImports validates every import a compiled guest module declares
// against the known host surface, before any instantiation is
// attempted. It returns the first LinkError encountered: an unknown
// (module, name) pair, or a sudo import on a runtime without elevated
// privileges.
func CheckImports(compiled wazero.CompiledModule, sudoEnabled bool) error {
	for _, fn := range compiled.ImportedFunctions() {
		module, name, ok := fn.Import()
		if !ok {
			continue
		}
		canon := canonicalModule(module)

		if canon == "sudo" {
			if !sudoEnabled {
				return ErrUsedDisabledSudoHostFunction(name)
			}
			if !knownSudoFunctions[name] {
				return ErrUnknownHostFunction(module, name)
			}
			continue
		}

		if module != canon {
			// Short module alias (g/i/n/s/m): the import name itself
			// must be one of the short function aliases for canon, per
			// the short-alias table, not a full function name.
			aliases, ok := funcAliasOf[canon]
			if !ok || aliases[name] == "" {
				return ErrUnknownHostFunction(module, name)
			}
			continue
		}

		names, ok := knownHostFunctions[canon]
		if !ok || !names[name] {
			return ErrUnknownHostFunction(module, name)
		}
	}
	return nil
}

// BuildHostModules instantiates every host module (and its aliases) a
// guest bound to state may import. sudoEnabled gates whether the "sudo"
// module is instantiated at all; a guest importing it on a disabled
// runtime fails at CheckImports before BuildHostModules ever runs.
func BuildHostModules(ctx context.Context, rt wazero.Runtime, state *HostState, sudoEnabled bool) error {
	builders := map[string]func(wazero.HostModuleBuilder){
		"graphics": func(b wazero.HostModuleBuilder) { registerGraphics(b, state) },
		"audio":    func(b wazero.HostModuleBuilder) { registerAudio(b, state) },
		"input":    func(b wazero.HostModuleBuilder) { registerInput(b, state) },
		"menu":     func(b wazero.HostModuleBuilder) { registerMenu(b, state) },
		"fs":       func(b wazero.HostModuleBuilder) { registerFS(b, state) },
		"net":      func(b wazero.HostModuleBuilder) { registerNet(b, state) },
		"stats":    func(b wazero.HostModuleBuilder) { registerStats(b, state) },
		"misc":     func(b wazero.HostModuleBuilder) { registerMisc(b, state) },
	}

	aliasBuilders := map[string]func(wazero.HostModuleBuilder){
		"graphics": func(b wazero.HostModuleBuilder) { registerGraphicsAliased(b, state) },
		"input":    func(b wazero.HostModuleBuilder) { registerInputAliased(b, state) },
		"net":      func(b wazero.HostModuleBuilder) { registerNetAliased(b, state) },
		"stats":    func(b wazero.HostModuleBuilder) { registerStatsAliased(b, state) },
		"misc":     func(b wazero.HostModuleBuilder) { registerMiscAliased(b, state) },
	}

	names := []string{"graphics", "audio", "input", "menu", "fs", "net", "stats", "misc", "wasi_snapshot_preview1"}
	for _, moduleName := range names {
		b := rt.NewHostModuleBuilder(moduleName)
		if moduleName == "wasi_snapshot_preview1" {
			registerWASI(b, state)
		} else {
			builders[moduleName](b)
		}
		if _, err := b.Instantiate(ctx); err != nil {
			return fmt.Errorf("instantiate host module %q: %w", moduleName, err)
		}
	}

	// Short-alias modules (g/i/n/s/m) are registered separately from
	// their full-name counterparts: the import name under "g" is a
	// short function code ("a", "ca", ...), not "draw_arc", so each
	// needs its own builder exporting under the short alias names.
	for alias, canon := range aliasOf {
		b := rt.NewHostModuleBuilder(alias)
		aliasBuilders[canon](b)
		if _, err := b.Instantiate(ctx); err != nil {
			return fmt.Errorf("instantiate host module %q: %w", alias, err)
		}
	}

	if sudoEnabled {
		b := rt.NewHostModuleBuilder("sudo")
		registerSudo(b, state)
		if _, err := b.Instantiate(ctx); err != nil {
			return fmt.Errorf("instantiate host module \"sudo\": %w", err)
		}
	}
	return nil
}

func registerGraphics(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, size, width uint32) {
		graphicsSetCanvas(s, ptr, size, width)
	}).Export("set_canvas")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		graphicsUnsetCanvas(s)
	}).Export("unset_canvas")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, idx, r, g, bl uint32) {
		graphicsSetColor(s, idx, r, g, bl)
	}).Export("set_color")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		graphicsClearScreen(s)
	}).Export("clear_screen")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, color uint32) {
		graphicsDrawPoint(s, x, y, color)
	}).Export("draw_point")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x1, y1, x2, y2 int32, color, stroke uint32) {
		graphicsDrawLine(s, x1, y1, x2, y2, color, stroke)
	}).Export("draw_line")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y, w, h int32, color, filled uint32) {
		graphicsDrawRect(s, x, y, w, h, color, filled)
	}).Export("draw_rect")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y, w, h, radius int32, color, filled uint32) {
		graphicsDrawRoundedRect(s, x, y, w, h, radius, color, filled)
	}).Export("draw_rounded_rect")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, r int32, color, filled uint32) {
		graphicsDrawCircle(s, cx, cy, r, color, filled)
	}).Export("draw_circle")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, rx, ry int32, color, filled uint32) {
		graphicsDrawEllipse(s, cx, cy, rx, ry, color, filled)
	}).Export("draw_ellipse")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, r, angle1, angle2 int32, color, stroke uint32) {
		graphicsDrawArc(s, cx, cy, r, angle1, angle2, color, stroke)
	}).Export("draw_arc")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, r, angle1, angle2 int32, color uint32) {
		graphicsDrawSector(s, cx, cy, r, angle1, angle2, color)
	}).Export("draw_sector")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x1, y1, x2, y2, x3, y3 int32, color, filled uint32) {
		graphicsDrawTriangle(s, x1, y1, x2, y2, x3, y3, color, filled)
	}).Export("draw_triangle")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length, color uint32) {
		graphicsDrawText(s, x, y, ptr, length, color)
	}).Export("draw_text")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length uint32) {
		graphicsDrawImage(s, x, y, ptr, length)
	}).Export("draw_image")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length uint32, sx, sy, sw, sh int32) {
		graphicsDrawSubImage(s, x, y, ptr, length, sx, sy, sw, sh)
	}).Export("draw_sub_image")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length, scale, fg, bg uint32) {
		graphicsDrawQR(s, x, y, ptr, length, scale, fg, bg)
	}).Export("draw_qr")
}

func registerAudio(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, kind, parent uint32) uint32 {
		return audioAddNode(s, kind, parent)
	}).Export("add_node")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, id uint32, p0, p1, p2, p3 float32) {
		audioSetParams(s, id, p0, p1, p2, p3)
	}).Export("set_params")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, id uint32) {
		audioClear(s, id)
	}).Export("clear")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) uint32 {
		return audioRoot(s)
	}).Export("root")
}

func registerInput(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, which uint32) uint32 {
		return inputReadPad(s, which)
	}).Export("read_pad")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) uint32 {
		return inputReadButtons(s)
	}).Export("read_buttons")
}

func registerMenu(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		menuRequestExitToLauncher(s)
	}).Export("request_exit_to_launcher")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, length uint32) {
		menuSetTitle(s, ptr, length)
	}).Export("set_title")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return menuGetLocale(s, bufPtr, bufLen)
	}).Export("get_locale")
}

func registerFS(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, root, pathPtr, pathLen, bufPtr, bufLen uint32) uint32 {
		return fsLoadFile(s, root, pathPtr, pathLen, bufPtr, bufLen)
	}).Export("load_file")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, pathPtr, pathLen, dataPtr, dataLen uint32) uint32 {
		return fsSaveFile(s, pathPtr, pathLen, dataPtr, dataLen)
	}).Export("save_file")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, pathPtr, pathLen uint32) uint32 {
		return fsRemoveFile(s, pathPtr, pathLen)
	}).Export("remove_file")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, root, bufPtr, bufLen uint32) uint32 {
		return fsListDirs(s, root, bufPtr, bufLen)
	}).Export("list_dirs")
}

func registerNet(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) int32 {
		return netGetMe(s)
	}).Export("get_me")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return netGetPeers(s, bufPtr, bufLen)
	}).Export("get_peers")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, v uint32) {
		netSetConnStatus(s, v)
	}).Export("set_conn_status")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, authorPtr, authorLen, appPtr, appLen uint32) {
		netJoinGame(s, authorPtr, authorLen, appPtr, appLen)
	}).Export("join_game")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		netDisconnect(s)
	}).Export("disconnect")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, peerID, dataPtr, dataLen uint32) uint32 {
		return netSaveStash(s, peerID, dataPtr, dataLen)
	}).Export("save_stash")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return netLoadStash(s, bufPtr, bufLen)
	}).Export("load_stash")
}

func registerStats(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, value int64) uint32 {
		return statsAddScore(s, value)
	}).Export("add_score")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, value int64) uint32 {
		return statsAddProgress(s, value)
	}).Export("add_progress")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) int64 {
		return statsGetBestScore(s)
	}).Export("get_best_score")
}

func registerMisc(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, seed uint32) {
		miscSetSeed(s, seed)
	}).Export("set_seed")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) uint32 {
		return miscGetRandom(s)
	}).Export("get_random")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, length uint32) {
		miscLogDebug(s, ptr, length)
	}).Export("log_debug")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, length uint32) {
		miscLogError(s, ptr, length)
	}).Export("log_error")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		miscQuit(s)
	}).Export("quit")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		miscRestart(s)
	}).Export("restart")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return miscGetName(s, bufPtr, bufLen)
	}).Export("get_name")
}

func registerWASI(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, environPtr, environBufPtr uint32) uint32 {
		return wasiEnvironGet(s, environPtr, environBufPtr)
	}).Export("environ_get")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, countPtr, bufSizePtr uint32) uint32 {
		return wasiEnvironSizesGet(s, countPtr, bufSizePtr)
	}).Export("environ_sizes_get")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, id, precision uint64, timePtr uint32) uint32 {
		return wasiClockTimeGet(s, id, precision, timePtr)
	}).Export("clock_time_get")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, fd uint32) uint32 {
		return wasiFdClose(s, fd)
	}).Export("fd_close")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, fd, iovsPtr, iovsLen, nreadPtr uint32) uint32 {
		return wasiFdRead(s, fd, iovsPtr, iovsLen, nreadPtr)
	}).Export("fd_read")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, fd uint32, offset int64, whence, newoffsetPtr uint32) uint32 {
		return wasiFdSeek(s, fd, offset, whence, newoffsetPtr)
	}).Export("fd_seek")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, fd, iovsPtr, iovsLen, nwrittenPtr uint32) uint32 {
		return wasiFdWrite(s, fd, iovsPtr, iovsLen, nwrittenPtr)
	}).Export("fd_write")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, code uint32) {
		wasiProcExit(s, code)
	}).Export("proc_exit")
}

func registerSudo(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, length uint32) uint32 {
		return sudoEval(s, ptr, length)
	}).Export("eval")
}

// registerGraphicsAliased exports the short function names of module
// "g", each delegating to the identical graphics host call as its
// full-name counterpart registered under "graphics".
func registerGraphicsAliased(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, size, width uint32) {
		graphicsSetCanvas(s, ptr, size, width)
	}).Export("ca")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		graphicsUnsetCanvas(s)
	}).Export("cr")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, idx, r, g, bl uint32) {
		graphicsSetColor(s, idx, r, g, bl)
	}).Export("sc")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		graphicsClearScreen(s)
	}).Export("cs")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, color uint32) {
		graphicsDrawPoint(s, x, y, color)
	}).Export("p")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x1, y1, x2, y2 int32, color, stroke uint32) {
		graphicsDrawLine(s, x1, y1, x2, y2, color, stroke)
	}).Export("l")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y, w, h int32, color, filled uint32) {
		graphicsDrawRect(s, x, y, w, h, color, filled)
	}).Export("r")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y, w, h, radius int32, color, filled uint32) {
		graphicsDrawRoundedRect(s, x, y, w, h, radius, color, filled)
	}).Export("rr")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, r int32, color, filled uint32) {
		graphicsDrawCircle(s, cx, cy, r, color, filled)
	}).Export("c")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, rx, ry int32, color, filled uint32) {
		graphicsDrawEllipse(s, cx, cy, rx, ry, color, filled)
	}).Export("e")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, r, angle1, angle2 int32, color, stroke uint32) {
		graphicsDrawArc(s, cx, cy, r, angle1, angle2, color, stroke)
	}).Export("a")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, cx, cy, r, angle1, angle2 int32, color uint32) {
		graphicsDrawSector(s, cx, cy, r, angle1, angle2, color)
	}).Export("s")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x1, y1, x2, y2, x3, y3 int32, color, filled uint32) {
		graphicsDrawTriangle(s, x1, y1, x2, y2, x3, y3, color, filled)
	}).Export("t")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length, color uint32) {
		graphicsDrawText(s, x, y, ptr, length, color)
	}).Export("x")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length uint32) {
		graphicsDrawImage(s, x, y, ptr, length)
	}).Export("i")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length uint32, sx, sy, sw, sh int32) {
		graphicsDrawSubImage(s, x, y, ptr, length, sx, sy, sw, sh)
	}).Export("si")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, x, y int32, ptr, length, scale, fg, bg uint32) {
		graphicsDrawQR(s, x, y, ptr, length, scale, fg, bg)
	}).Export("q")
}

// registerInputAliased exports the short function names of module "i".
func registerInputAliased(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, which uint32) uint32 {
		return inputReadPad(s, which)
	}).Export("p")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) uint32 {
		return inputReadButtons(s)
	}).Export("b")
}

// registerNetAliased exports the short function names of module "n".
// join_game, disconnect, and set_conn_status have no short form.
func registerNetAliased(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) int32 {
		return netGetMe(s)
	}).Export("m")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return netGetPeers(s, bufPtr, bufLen)
	}).Export("p")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, peerID, dataPtr, dataLen uint32) uint32 {
		return netSaveStash(s, peerID, dataPtr, dataLen)
	}).Export("s")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return netLoadStash(s, bufPtr, bufLen)
	}).Export("l")
}

// registerStatsAliased exports the short function names of module "s".
// get_best_score has no short form.
func registerStatsAliased(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, value int64) uint32 {
		return statsAddScore(s, value)
	}).Export("s")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, value int64) uint32 {
		return statsAddProgress(s, value)
	}).Export("p")
}

// registerMiscAliased exports the short function names of module "m".
// restart has no short form.
func registerMiscAliased(b wazero.HostModuleBuilder, s *HostState) {
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, seed uint32) {
		miscSetSeed(s, seed)
	}).Export("s")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) uint32 {
		return miscGetRandom(s)
	}).Export("r")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, length uint32) {
		miscLogDebug(s, ptr, length)
	}).Export("d")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, ptr, length uint32) {
		miscLogError(s, ptr, length)
	}).Export("e")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context) {
		miscQuit(s)
	}).Export("q")
	b.NewFunctionBuilder().WithFunc(func(ctx context.Context, bufPtr, bufLen uint32) uint32 {
		return miscGetName(s, bufPtr, bufLen)
	}).Export("n")
}
