package main

import "time"

// fixedTime is a stable starting clock for tests that need a FakeDevice
// but don't care what wall-clock time it starts at.
var fixedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type testAddr string

func (a testAddr) String() string { return string(a) }
