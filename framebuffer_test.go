package main

import "testing"

func TestFrameBufferPixelRoundTrip(t *testing.T) {
	fb := NewFrameBuffer(8, 4)
	fb.SetPixel(3, 1, 2)
	if got := fb.GetPixel(3, 1); got != 2 {
		t.Fatalf("GetPixel(3,1) = %d, want 2", got)
	}
	fb.SetPixel(0, 0, 5) // truncated to 2 bits -> 1
	if got := fb.GetPixel(0, 0); got != 1 {
		t.Fatalf("GetPixel(0,0) = %d, want 1 (color truncated to 2 bits)", got)
	}
}

func TestFrameBufferOutOfBoundsNoOp(t *testing.T) {
	fb := NewFrameBuffer(8, 4)
	fb.SetPixel(-1, 0, 3)
	fb.SetPixel(0, -1, 3)
	fb.SetPixel(8, 0, 3)
	fb.SetPixel(0, 4, 3)
	for _, b := range fb.Bytes() {
		if b != 0 {
			t.Fatalf("out-of-bounds SetPixel mutated backing storage: %v", fb.Bytes())
		}
	}
	if got := fb.GetPixel(8, 0); got != 0 {
		t.Fatalf("GetPixel out of bounds = %d, want 0", got)
	}
}

func TestFrameBufferClear(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetPixel(1, 1, 3)
	fb.Clear()
	if got := fb.GetPixel(1, 1); got != 0 {
		t.Fatalf("GetPixel after Clear = %d, want 0", got)
	}
}

func TestFrameBufferPackedSize(t *testing.T) {
	fb := NewFrameBuffer(FrameWidth, FrameHeight)
	want := (FrameWidth*FrameHeight + 3) / 4 // 2 bpp -> 4 pixels/byte
	if got := len(fb.Bytes()); got != want {
		t.Fatalf("len(Bytes()) = %d, want %d", got, want)
	}
}

func TestPaletteSetAtIgnoresOutOfRangeIndex(t *testing.T) {
	p := NewPalette()
	p.Set(1, RGB{R: 10, G: 20, B: 30})
	if got := p.At(1); got != (RGB{10, 20, 30}) {
		t.Fatalf("At(1) = %+v, want {10 20 30}", got)
	}
	p.Set(-1, RGB{R: 99})
	p.Set(4, RGB{R: 99})
	if got := p.At(-1); got != (RGB{}) {
		t.Fatalf("At(-1) = %+v, want zero value", got)
	}
	if got := p.At(4); got != (RGB{}) {
		t.Fatalf("At(4) = %+v, want zero value", got)
	}
}

func TestPaletteExpand(t *testing.T) {
	fb := NewFrameBuffer(2, 1)
	fb.SetPixel(0, 0, 0)
	fb.SetPixel(1, 0, 1)

	p := NewPalette()
	p.Set(0, RGB{R: 1, G: 2, B: 3})
	p.Set(1, RGB{R: 4, G: 5, B: 6})

	dst := make([]byte, 2*1*4)
	p.Expand(fb, dst)

	want := []byte{1, 2, 3, 0xFF, 4, 5, 6, 0xFF}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("dst[%d] = %d, want %d (dst=%v)", i, dst[i], b, dst)
		}
	}
}

func TestPaletteExpandTruncatesToShortDst(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	dst := make([]byte, 4) // far too small; must not panic
	p := NewPalette()
	p.Expand(fb, dst)
}
