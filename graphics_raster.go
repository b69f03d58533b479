// graphics_raster.go - Rasterization of drawing primitives onto an indexed surface

/*
Per-primitive graphics math (line/arc/text rasterization) is delegated
to a drawing library, github.com/fogleman/gg, rather than hand-rolled.
Each
graphics.draw_* host call issues the equivalent gg command against a
scratch RGBA context sized to the active draw surface, then the touched
pixels are quantized back down to the surface's index depth (2 bits on
the framebuffer, 4 bits on the canvas) and written through the same
coalescing SetPixel path draw_point uses, so every drawing primitive and
draw_point share one write discipline.
*/

package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// rasterize runs draw against a transparent scratch canvas the size of
// target, then copies every touched (non-transparent) pixel into target
// using idx as the surface color value.
func rasterize(target DrawTarget, idx byte, draw func(ctx *gg.Context)) {
	w, h := target.Width(), target.Height()
	if w <= 0 || h <= 0 {
		return
	}
	ctx := gg.NewContext(w, h)
	ctx.SetRGBA(1, 1, 1, 1)
	draw(ctx)

	img := ctx.Image().(*image.RGBA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a != 0 {
				target.SetPixel(x, y, idx)
			}
		}
	}
}

func rasterLine(target DrawTarget, x1, y1, x2, y2 int, color byte, stroke int) {
	rasterize(target, color, func(ctx *gg.Context) {
		ctx.SetLineWidth(lineWidth(stroke))
		ctx.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		ctx.Stroke()
	})
}

func rasterRect(target DrawTarget, x, y, w, h int, col byte, filled bool) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
		if filled {
			ctx.Fill()
		} else {
			ctx.Stroke()
		}
	})
}

func rasterRoundedRect(target DrawTarget, x, y, w, h, radius int, col byte, filled bool) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
		if filled {
			ctx.Fill()
		} else {
			ctx.Stroke()
		}
	})
}

func rasterCircle(target DrawTarget, cx, cy, r int, col byte, filled bool) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.DrawCircle(float64(cx), float64(cy), float64(r))
		if filled {
			ctx.Fill()
		} else {
			ctx.Stroke()
		}
	})
}

func rasterEllipse(target DrawTarget, cx, cy, rx, ry int, col byte, filled bool) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.DrawEllipse(float64(cx), float64(cy), float64(rx), float64(ry))
		if filled {
			ctx.Fill()
		} else {
			ctx.Stroke()
		}
	})
}

func rasterArc(target DrawTarget, cx, cy, r int, angle1, angle2 float64, col byte, stroke int) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.SetLineWidth(lineWidth(stroke))
		ctx.DrawArc(float64(cx), float64(cy), float64(r), angle1, angle2)
		ctx.Stroke()
	})
}

func rasterSector(target DrawTarget, cx, cy, r int, angle1, angle2 float64, col byte) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.MoveTo(float64(cx), float64(cy))
		ctx.DrawArc(float64(cx), float64(cy), float64(r), angle1, angle2)
		ctx.LineTo(float64(cx), float64(cy))
		ctx.Fill()
	})
}

func rasterTriangle(target DrawTarget, x1, y1, x2, y2, x3, y3 int, col byte, filled bool) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.MoveTo(float64(x1), float64(y1))
		ctx.LineTo(float64(x2), float64(y2))
		ctx.LineTo(float64(x3), float64(y3))
		ctx.ClosePath()
		if filled {
			ctx.Fill()
		} else {
			ctx.Stroke()
		}
	})
}

func rasterText(target DrawTarget, x, y int, text string, col byte) {
	rasterize(target, col, func(ctx *gg.Context) {
		ctx.DrawString(text, float64(x), float64(y))
	})
}

func lineWidth(stroke int) float64 {
	if stroke < 1 {
		return 1
	}
	return float64(stroke)
}

// quantizeIndex maps a true-color sample down to the active surface's
// index space: nearest palette entry for the 2-bit framebuffer, coarse
// luminance bucket for the 4-bit canvas (which has no palette of its
// own).
func quantizeIndex(target DrawTarget, p *Palette, c color.Color) byte {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

	if fb, ok := target.(*FrameBuffer); ok {
		_ = fb
		best := byte(0)
		bestDist := int64(1) << 62
		for i := 0; i < 4; i++ {
			e := p.At(i)
			dist := sq(int64(e.R)-int64(r8)) + sq(int64(e.G)-int64(g8)) + sq(int64(e.B)-int64(b8))
			if dist < bestDist {
				bestDist = dist
				best = byte(i)
			}
		}
		return best
	}

	lum := (int(r8) + int(g8) + int(b8)) / 3
	return byte(lum >> 4)
}

func sq(v int64) int64 { return v * v }
