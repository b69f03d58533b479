// hostcalls_graphics.go - graphics.* host calls

package main

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// graphicsSetCanvas implements graphics.set_canvas(ptr, size, width).
func graphicsSetCanvas(s *HostState, ptr, size, width uint32) {
	s.recordCall("graphics.set_canvas")
	s.SetCanvas(ptr, size, width)
}

// graphicsUnsetCanvas implements graphics.unset_canvas().
func graphicsUnsetCanvas(s *HostState) {
	s.recordCall("graphics.unset_canvas")
	s.UnsetCanvas()
}

// graphicsSetColor implements graphics.set_color(idx, r, g, b).
func graphicsSetColor(s *HostState, idx, r, g, b uint32) {
	s.recordCall("graphics.set_color")
	s.Palette().Set(int(idx), RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
}

// graphicsClearScreen implements graphics.clear_screen().
func graphicsClearScreen(s *HostState) {
	s.recordCall("graphics.clear_screen")
	target := s.drawTarget()
	if fb, ok := target.(*FrameBuffer); ok {
		fb.Clear()
		return
	}
	w, h := target.Width(), target.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			target.SetPixel(x, y, 0)
		}
	}
}

// graphicsDrawPoint implements graphics.draw_point(x, y, color).
func graphicsDrawPoint(s *HostState, x, y int32, color uint32) {
	s.recordCall("graphics.draw_point")
	s.drawTarget().SetPixel(int(x), int(y), byte(color))
}

// graphicsDrawLine implements graphics.draw_line(x1,y1,x2,y2,color,stroke).
func graphicsDrawLine(s *HostState, x1, y1, x2, y2 int32, color, stroke uint32) {
	s.recordCall("graphics.draw_line")
	rasterLine(s.drawTarget(), int(x1), int(y1), int(x2), int(y2), byte(color), int(stroke))
}

// graphicsDrawRect implements graphics.draw_rect(x,y,w,h,color,filled).
func graphicsDrawRect(s *HostState, x, y, w, h int32, color, filled uint32) {
	s.recordCall("graphics.draw_rect")
	rasterRect(s.drawTarget(), int(x), int(y), int(w), int(h), byte(color), filled != 0)
}

// graphicsDrawRoundedRect implements
// graphics.draw_rounded_rect(x,y,w,h,radius,color,filled).
func graphicsDrawRoundedRect(s *HostState, x, y, w, h, radius int32, color, filled uint32) {
	s.recordCall("graphics.draw_rounded_rect")
	rasterRoundedRect(s.drawTarget(), int(x), int(y), int(w), int(h), int(radius), byte(color), filled != 0)
}

// graphicsDrawCircle implements graphics.draw_circle(cx,cy,r,color,filled).
func graphicsDrawCircle(s *HostState, cx, cy, r int32, color, filled uint32) {
	s.recordCall("graphics.draw_circle")
	rasterCircle(s.drawTarget(), int(cx), int(cy), int(r), byte(color), filled != 0)
}

// graphicsDrawEllipse implements
// graphics.draw_ellipse(cx,cy,rx,ry,color,filled).
func graphicsDrawEllipse(s *HostState, cx, cy, rx, ry int32, color, filled uint32) {
	s.recordCall("graphics.draw_ellipse")
	rasterEllipse(s.drawTarget(), int(cx), int(cy), int(rx), int(ry), byte(color), filled != 0)
}

// graphicsDrawArc implements
// graphics.draw_arc(cx,cy,r,angle1,angle2,color,stroke), angles in
// tenths of a degree (guest-side fixed point, to keep the ABI integer
// only).
func graphicsDrawArc(s *HostState, cx, cy, r int32, angle1, angle2 int32, color, stroke uint32) {
	s.recordCall("graphics.draw_arc")
	a1 := float64(angle1) / 10 * math.Pi / 180
	a2 := float64(angle2) / 10 * math.Pi / 180
	rasterArc(s.drawTarget(), int(cx), int(cy), int(r), a1, a2, byte(color), int(stroke))
}

// graphicsDrawSector implements
// graphics.draw_sector(cx,cy,r,angle1,angle2,color).
func graphicsDrawSector(s *HostState, cx, cy, r int32, angle1, angle2 int32, color uint32) {
	s.recordCall("graphics.draw_sector")
	a1 := float64(angle1) / 10 * math.Pi / 180
	a2 := float64(angle2) / 10 * math.Pi / 180
	rasterSector(s.drawTarget(), int(cx), int(cy), int(r), a1, a2, byte(color))
}

// graphicsDrawTriangle implements
// graphics.draw_triangle(x1,y1,x2,y2,x3,y3,color,filled).
func graphicsDrawTriangle(s *HostState, x1, y1, x2, y2, x3, y3 int32, color, filled uint32) {
	s.recordCall("graphics.draw_triangle")
	rasterTriangle(s.drawTarget(), int(x1), int(y1), int(x2), int(y2), int(x3), int(y3), byte(color), filled != 0)
}

// graphicsDrawText implements graphics.draw_text(x,y,ptr,len,color).
func graphicsDrawText(s *HostState, x, y int32, ptr, length, color uint32) {
	s.recordCall("graphics.draw_text")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "draw_text")
		return
	}
	text, ok := readString(mem, ptr, length)
	if !ok {
		s.logError(ErrOomPointer, "draw_text")
		return
	}
	rasterText(s.drawTarget(), int(x), int(y), text, byte(color))
}

// graphicsDrawQR implements graphics.draw_qr(x,y,ptr,len,scale,fg,bg).
func graphicsDrawQR(s *HostState, x, y int32, ptr, length, scale, fg, bg uint32) {
	s.recordCall("graphics.draw_qr")
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "draw_qr")
		return
	}
	data, ok := readBytes(mem, ptr, length)
	if !ok {
		s.logError(ErrOomPointer, "draw_qr")
		return
	}
	qr, err := qrcode.New(string(data), qrcode.Medium)
	if err != nil {
		s.logError(ErrBufferSize, "draw_qr: "+err.Error())
		return
	}
	bitmap := qr.Bitmap()
	target := s.drawTarget()
	px := int(scale)
	if px < 1 {
		px = 1
	}
	for row, line := range bitmap {
		for col, dark := range line {
			color := byte(bg)
			if dark {
				color = byte(fg)
			}
			for dy := 0; dy < px; dy++ {
				for dx := 0; dx < px; dx++ {
					target.SetPixel(int(x)+col*px+dx, int(y)+row*px+dy, color)
				}
			}
		}
	}
}

// graphicsDrawImage implements graphics.draw_image(x,y,ptr,len).
func graphicsDrawImage(s *HostState, x, y int32, ptr, length uint32) {
	s.recordCall("graphics.draw_image")
	blitImage(s, int(x), int(y), ptr, length, nil)
}

// graphicsDrawSubImage implements
// graphics.draw_sub_image(x,y,ptr,len,sx,sy,sw,sh).
func graphicsDrawSubImage(s *HostState, x, y int32, ptr, length uint32, sx, sy, sw, sh int32) {
	s.recordCall("graphics.draw_sub_image")
	rect := image.Rect(int(sx), int(sy), int(sx+sw), int(sy+sh))
	blitImage(s, int(x), int(y), ptr, length, &rect)
}

func blitImage(s *HostState, x, y int, ptr, length uint32, sub *image.Rectangle) {
	mem := s.Memory()
	if mem == nil {
		s.logError(ErrMemoryNotFound, "draw_image")
		return
	}
	data, ok := readBytes(mem, ptr, length)
	if !ok {
		s.logError(ErrOomPointer, "draw_image")
		return
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		s.logError(ErrBufferSize, "draw_image: "+err.Error())
		return
	}
	srcRect := img.Bounds()
	if sub != nil {
		srcRect = sub.Intersect(img.Bounds())
	}

	target := s.drawTarget()
	w := srcRect.Dx()
	h := srcRect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, srcRect.Min, draw.Src)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			idx := quantizeIndex(target, s.Palette(), dst.At(px, py))
			target.SetPixel(x+px, y+py, idx)
		}
	}
}
