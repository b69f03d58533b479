//go:build !headless

// display_ebiten.go - Ebiten-backed Display
//
// Uses a mutex-guarded frame buffer fed by Present and drawn from
// ebiten's own Draw callback. No clipboard integration or resolution
// negotiation, since neither has a guest-facing equivalent here.
// golang.design/x/clipboard is dropped entirely (see DESIGN.md) since
// no component in this runtime reads or writes a host clipboard.

package main

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// buttonKeys maps the console's 8-bit button bitmask to keyboard keys,
// low bit first. Arrow keys drive the d-pad separately (see ReadInput).
var buttonKeys = [8]ebiten.Key{
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyA, ebiten.KeyS,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
}

// EbitenDisplay presents palette-expanded RGBA8888 frames through an
// ebiten window, scaled up from the console's native resolution.
type EbitenDisplay struct {
	mu     sync.RWMutex
	img    *image.RGBA
	width  int
	height int
	scale  int

	started bool
	ready   chan struct{}

	lastInput InputState
}

// NewEbitenDisplay returns a Display that will open a window of
// width*scale x height*scale once Start (implicit on first Present) is
// called.
func NewEbitenDisplay(width, height, scale int) *EbitenDisplay {
	if scale < 1 {
		scale = 1
	}
	return &EbitenDisplay{
		width:  width,
		height: height,
		scale:  scale,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		ready:  make(chan struct{}, 1),
	}
}

func (d *EbitenDisplay) start() {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}
	d.started = true
	d.mu.Unlock()

	ebiten.SetWindowSize(d.width*d.scale, d.height*d.scale)
	ebiten.SetWindowTitle("firefly")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		_ = ebiten.RunGame(d)
	}()
}

// Update satisfies ebiten.Game. The runtime drives guest update/render
// on its own cadence, so the only work here is sampling keyboard state
// into lastInput: ebiten input functions are only safe to call from
// this callback, never from the tick goroutine that calls ReadInput.
func (d *EbitenDisplay) Update() error {
	var buttons uint8
	for i, key := range buttonKeys {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << uint(i)
		}
	}

	var pad *Point
	var x, y int16
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		y++
	}
	if x != 0 || y != 0 {
		pad = &Point{X: x, Y: y}
	}

	d.mu.Lock()
	d.lastInput = InputState{Pad: pad, Buttons: buttons}
	d.mu.Unlock()
	return nil
}

// Draw satisfies ebiten.Game, blitting the last-presented frame.
func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.RLock()
	img := d.img
	d.mu.RUnlock()
	screen.WritePixels(img.Pix)
}

// Layout satisfies ebiten.Game, keeping the logical screen at native
// console resolution; ebiten handles the scale-up itself.
func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}

// Clear paints the presented frame black.
func (d *EbitenDisplay) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.img.Pix {
		d.img.Pix[i] = 0
	}
	return nil
}

// Present copies a freshly expanded RGBA8888 frame in for the next Draw
// call, starting the ebiten window on first use.
func (d *EbitenDisplay) Present(rgba []byte, width, height int) error {
	d.start()
	d.mu.Lock()
	defer d.mu.Unlock()
	if width != d.width || height != d.height {
		d.img = image.NewRGBA(image.Rect(0, 0, width, height))
		d.width, d.height = width, height
	}
	copy(d.img.Pix, rgba)
	return nil
}

// Close is a no-op: ebiten's own window-close handling tears the
// process down.
func (d *EbitenDisplay) Close() error { return nil }

// NewPlatformDisplay returns the real windowed Display for this build.
func NewPlatformDisplay(width, height, scale int) Display {
	return NewEbitenDisplay(width, height, scale)
}

// ReadInput returns the key state captured by the most recent Update
// call. It satisfies the InputSource interface NativeDevice looks for.
func (d *EbitenDisplay) ReadInput() (InputState, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastInput, true
}
