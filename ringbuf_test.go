package main

import "testing"

func TestRingBufDriftBound(t *testing.T) {
	r := NewRingBuf[int]()
	r.Advance(10)

	if ok := r.Insert(12, 42); !ok {
		t.Fatalf("Insert(12) at cursor 10 (drift 2) should be accepted")
	}
	if v, ok := r.Get(12); !ok || v != 42 {
		t.Fatalf("Get(12) = %v, %v; want 42, true", v, ok)
	}

	if ok := r.Insert(13, 99); ok {
		t.Fatalf("Insert(13) at cursor 10 (drift 3) should be refused")
	}
	if _, ok := r.Get(13); ok {
		t.Fatalf("Get(13) should report false after refused insert")
	}
}

func TestRingBufBackwardDrift(t *testing.T) {
	r := NewRingBuf[int]()
	r.Advance(10)

	if ok := r.Insert(8, 1); !ok {
		t.Fatalf("Insert(8) at cursor 10 (drift -2) should be accepted")
	}
	if ok := r.Insert(7, 1); ok {
		t.Fatalf("Insert(7) at cursor 10 (drift -3) should be refused")
	}
}

func TestRingBufGetRequiresExactFrame(t *testing.T) {
	r := NewRingBuf[string]()
	r.Insert(0, "a")
	r.Advance(3)               // bring frame RingBufSize within the drift bound
	r.Insert(RingBufSize, "b") // same slot index as frame 0

	if _, ok := r.Get(0); ok {
		t.Fatalf("Get(0) should report false once slot 0 holds frame %d's value", RingBufSize)
	}
	if v, ok := r.Get(RingBufSize); !ok || v != "b" {
		t.Fatalf("Get(%d) = %v, %v; want b, true", RingBufSize, v, ok)
	}
}

func TestRingBufNeverInitializedIsEmpty(t *testing.T) {
	r := NewRingBuf[int]()
	if _, ok := r.Get(0); ok {
		t.Fatalf("Get on a never-written slot should report false")
	}
}

func TestRingBufCursor(t *testing.T) {
	r := NewRingBuf[int]()
	if r.Cursor() != 0 {
		t.Fatalf("new RingBuf cursor = %d, want 0", r.Cursor())
	}
	r.Advance(7)
	if r.Cursor() != 7 {
		t.Fatalf("Cursor() = %d, want 7", r.Cursor())
	}
}
