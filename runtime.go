// runtime.go - Boots a guest module and drives its update/render loop
//
// Each tick samples input and polls the network before the guest sees a
// frame, gates on NetHandler.Ready(), calls the guest's update export,
// flushes the framebuffer through the active palette to the Display,
// then sleeps to the next frame deadline. Run drives this loop on the
// caller's goroutine; there is no background goroutine, generation
// counter or lock of its own. One wazero guest instance replaces a
// multi-backend emulator core.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Runtime owns one guest instance's lifetime: compiling and
// instantiating its WASM module, wiring the host call surface, and
// driving its update/render cadence until exit or replacement.
type Runtime struct {
	device Device
	config RuntimeConfig

	rt    wazero.Runtime
	state *HostState
	mod   api.Module

	updateFn api.Function
	renderFn api.Function
}

// NewRuntime prepares a Runtime bound to device, ready to Boot a guest.
func NewRuntime(device Device, config RuntimeConfig) *Runtime {
	return &Runtime{device: device, config: config}
}

// Boot compiles romBytes, validates its imports, instantiates it
// alongside the host module set, captures its exported memory into a
// fresh HostState, and calls its startup exports in order
// (_initialize, then _start, then boot — whichever are present). It
// returns a LinkError if an import cannot be resolved, or a
// RuntimeError if instantiation itself traps.
func (r *Runtime) Boot(ctx context.Context, author, app string, romBytes []byte) error {
	r.rt = wazero.NewRuntime(ctx)

	compiled, err := r.rt.CompileModule(ctx, romBytes)
	if err != nil {
		return &RuntimeError{Phase: "compile", Cause: err}
	}

	if err := CheckImports(compiled, r.config.Sudo); err != nil {
		return err
	}

	state := New(author, app, r.device)
	if err := BuildHostModules(ctx, r.rt, state, r.config.Sudo); err != nil {
		return &RuntimeError{Phase: "link", Cause: err}
	}
	if binder, ok := r.device.AudioOut().(interface{ SetGraph(*AudioGraph) }); ok {
		binder.SetGraph(state.Audio())
	}

	mod, err := r.rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithStartFunctions())
	if err != nil {
		return &RuntimeError{Phase: "instantiate", Cause: err}
	}

	mem := mod.Memory()
	if mem == nil {
		return &RuntimeError{Phase: "instantiate", Cause: fmt.Errorf("guest module exports no memory")}
	}
	state.SetMemory(newWazeroMemory(mem))

	r.state = state
	r.mod = mod
	r.updateFn = mod.ExportedFunction("update")
	r.renderFn = mod.ExportedFunction("render")

	for _, name := range []string{"_initialize", "_start", "boot"} {
		if fn := mod.ExportedFunction(name); fn != nil {
			if _, err := fn.Call(ctx); err != nil {
				return &RuntimeError{Phase: "boot", Cause: err}
			}
		}
	}
	return nil
}

// Run clears the display, then drives the tick loop until the guest
// requests exit or a restart, the context is cancelled, or a guest call
// traps. On a clean exit it returns the pending Transition (nil if the
// guest simply quit).
func (r *Runtime) Run(ctx context.Context) (*Transition, error) {
	period := time.Second / time.Duration(r.config.FrameRate)
	deadline := r.device.Now()
	if err := r.device.Display().Clear(); err != nil {
		return nil, err
	}

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if r.state.Exit() || r.state.Next() != nil {
			return r.state.Next(), nil
		}

		if err := r.tick(ctx); err != nil {
			return nil, err
		}

		deadline = deadline.Add(period)
		if sleep := deadline.Sub(r.device.Now()); sleep > 0 {
			r.device.Sleep(ctx, sleep)
		} else {
			deadline = r.device.Now()
		}
	}
}

func (r *Runtime) tick(ctx context.Context) error {
	input, _ := r.device.ReadInput()
	net := r.state.NetHandler()
	net.Poll(r.device.Now())
	net.SampleLocalInput(FrameInput{Buttons: uint32(input.Buttons), Pad: packPad(input.Pad)})

	if !net.Ready() {
		return nil
	}

	if r.updateFn != nil {
		if _, err := r.updateFn.Call(ctx); err != nil {
			return &RuntimeError{Phase: "update", Cause: err}
		}
	}
	net.Advance()

	if r.renderFn != nil {
		if _, err := r.renderFn.Call(ctx); err != nil {
			return &RuntimeError{Phase: "render", Cause: err}
		}
	}

	return r.flush()
}

// flush expands the active FrameBuffer through its Palette and presents
// it to the Display. A canvas override draws directly into guest memory
// and never touches the primary FrameBuffer, so it has nothing to flush
// here — the guest is responsible for blitting canvas content onto the
// framebuffer itself before render returns.
func (r *Runtime) flush() error {
	fb := r.state.FrameBuffer()
	rgba := make([]byte, fb.Width()*fb.Height()*4)
	r.state.Palette().Expand(fb, rgba)
	return r.device.Display().Present(rgba, fb.Width(), fb.Height())
}

// Close tears down the wazero runtime and everything instantiated
// inside it.
func (r *Runtime) Close(ctx context.Context) error {
	if r.rt == nil {
		return nil
	}
	return r.rt.Close(ctx)
}
