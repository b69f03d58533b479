// device_fake.go - An in-memory Device for tests
//
// A second, trivial implementation of each hardware-backed interface
// that tests and CI can drive without real hardware, the same idea as
// the headless Display/AudioOut backends. FakeDevice goes one step
// further and keeps state observable, since tests need to assert on
// what was logged/displayed/sent, not just that the calls didn't
// panic.

package main

import (
	"context"
	"time"
)

type fakeDisplay struct {
	cleared  bool
	frames   [][]byte
	fw, fh   int
}

func (d *fakeDisplay) Clear() error { d.cleared = true; return nil }
func (d *fakeDisplay) Present(rgba []byte, w, h int) error {
	buf := make([]byte, len(rgba))
	copy(buf, rgba)
	d.frames = append(d.frames, buf)
	d.fw, d.fh = w, h
	return nil
}
func (d *fakeDisplay) Close() error { return nil }

type fakeAudioOut struct {
	started bool
}

func (a *fakeAudioOut) Start() { a.started = true }
func (a *fakeAudioOut) Stop()  { a.started = false }
func (a *fakeAudioOut) Close() {}

type fakeFS struct {
	files map[string][]byte
}

func newFakeFS() *fakeFS { return &fakeFS{files: make(map[string][]byte)} }

func fakeKey(path []string) string {
	key := ""
	for i, p := range path {
		if i > 0 {
			key += "/"
		}
		key += p
	}
	return key
}

func (f *fakeFS) OpenFile(path []string) ([]byte, error) {
	data, ok := f.files[fakeKey(path)]
	if !ok {
		return nil, errNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (f *fakeFS) CreateFile(path []string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	f.files[fakeKey(path)] = buf
	return nil
}

func (f *fakeFS) RemoveFile(path []string) error {
	delete(f.files, fakeKey(path))
	return nil
}

func (f *fakeFS) ListDirs(root string) ([]string, error) {
	seen := map[string]bool{}
	var dirs []string
	prefix := root + "/"
	for k := range f.files {
		if len(k) <= len(prefix) || k[:len(prefix)] != prefix {
			continue
		}
		rest := k[len(prefix):]
		for i, c := range rest {
			if c == '/' {
				name := rest[:i]
				if !seen[name] {
					seen[name] = true
					dirs = append(dirs, name)
				}
				break
			}
		}
	}
	return dirs, nil
}

type fakeNet struct {
	inbox chan NetMessage
	sent  []NetMessage
}

func newFakeNet() *fakeNet {
	return &fakeNet{inbox: make(chan NetMessage, 64)}
}

func (n *fakeNet) Recv() (NetMessage, bool) {
	select {
	case m := <-n.inbox:
		return m, true
	default:
		return NetMessage{}, false
	}
}

func (n *fakeNet) Send(addr NetAddr, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	n.sent = append(n.sent, NetMessage{Addr: addr, Data: buf})
	return nil
}

// FakeDevice is a fully in-memory Device for unit tests: a clock that
// only advances when told to, an input queue tests can push samples
// into, and the fake capability backends above.
type FakeDevice struct {
	clock time.Time

	input   []InputState
	debug   []string
	errors  []string

	display *fakeDisplay
	audio   *fakeAudioOut
	fs      *fakeFS
	net     *fakeNet
}

// NewFakeDevice returns a FakeDevice with its clock starting at the
// given time.
func NewFakeDevice(start time.Time) *FakeDevice {
	return &FakeDevice{
		clock:   start,
		display: &fakeDisplay{},
		audio:   &fakeAudioOut{},
		fs:      newFakeFS(),
		net:     newFakeNet(),
	}
}

// Advance moves the fake clock forward, for tests driving time-gated
// logic like the netplay rebroadcast interval.
func (d *FakeDevice) Advance(dur time.Duration) { d.clock = d.clock.Add(dur) }

// QueueInput appends a sample ReadInput will return on successive
// calls, in FIFO order; once exhausted, ReadInput returns ok=false.
func (d *FakeDevice) QueueInput(s InputState) { d.input = append(d.input, s) }

// Inject queues one datagram into the fake Net's inbox, where the next
// Recv returns it, for tests exercising NetHandler.Poll.
func (d *FakeDevice) Inject(msg NetMessage) { d.net.inbox <- msg }

// Sent returns every datagram Send wrote, in order.
func (d *FakeDevice) Sent() []NetMessage { return d.net.sent }

// DebugLogs / ErrorLogs return every message logged at that level, for
// assertions.
func (d *FakeDevice) DebugLogs() []string { return d.debug }
func (d *FakeDevice) ErrorLogs() []string { return d.errors }

// Frames returns every RGBA8888 buffer Present received, in order.
func (d *FakeDevice) Frames() [][]byte { return d.display.frames }

func (d *FakeDevice) Now() time.Time { return d.clock }

func (d *FakeDevice) Sleep(ctx context.Context, dur time.Duration) {
	d.clock = d.clock.Add(dur)
}

func (d *FakeDevice) LogDebug(source, msg string) {
	d.debug = append(d.debug, source+": "+msg)
}

func (d *FakeDevice) LogError(source, msg string) {
	d.errors = append(d.errors, source+": "+msg)
}

func (d *FakeDevice) ReadInput() (InputState, bool) {
	if len(d.input) == 0 {
		return InputState{}, false
	}
	s := d.input[0]
	d.input = d.input[1:]
	return s, true
}

func (d *FakeDevice) Display() Display   { return d.display }
func (d *FakeDevice) AudioOut() AudioOut { return d.audio }
func (d *FakeDevice) FS() FS             { return d.fs }
func (d *FakeDevice) Net() Net           { return d.net }

type notFoundError struct{}

func (notFoundError) Error() string { return "file not found" }

var errNotFound = notFoundError{}
