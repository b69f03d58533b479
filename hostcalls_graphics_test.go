package main

import "testing"

func TestGraphicsDrawTextOomPointerLogsAndDoesNotPanic(t *testing.T) {
	s, device, _ := newTestState(8)

	graphicsDrawText(s, 0, 0, 0, 1000, 1)

	if len(device.ErrorLogs()) == 0 {
		t.Fatalf("expected an OomPointer error to be logged for the unreadable text")
	}
}

func TestGraphicsDrawPointSetsFramebufferPixel(t *testing.T) {
	s, _, _ := newTestState(8)
	s.Palette().Set(2, RGB{R: 10, G: 20, B: 30})

	graphicsDrawPoint(s, 5, 5, 2)

	if idx := s.FrameBuffer().GetPixel(5, 5); idx != 2 {
		t.Fatalf("GetPixel(5,5) = %d, want 2", idx)
	}
}

func TestGraphicsClearScreenResetsFramebuffer(t *testing.T) {
	s, _, _ := newTestState(8)
	graphicsDrawPoint(s, 1, 1, 3)
	graphicsClearScreen(s)

	if idx := s.FrameBuffer().GetPixel(1, 1); idx != 0 {
		t.Fatalf("GetPixel(1,1) after clear = %d, want 0", idx)
	}
}

func TestGraphicsSetCanvasOomPointerRejected(t *testing.T) {
	s, _, _ := newTestState(16)

	if ok := s.SetCanvas(0, 1000, 8); ok {
		t.Fatalf("SetCanvas with an out-of-bounds range should be rejected")
	}
	if s.drawTarget() != s.FrameBuffer() {
		t.Fatalf("a rejected canvas override must leave drawTarget at the primary framebuffer")
	}
}
