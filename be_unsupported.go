//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// The framebuffer and canvas byte packing is defined little-endian; guest
// memory reads/writes assume the host matches. Fail the build loudly on
// any architecture le_check.go doesn't already cover.
var _ = "this runtime requires a little-endian architecture" + 1
