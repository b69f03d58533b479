//go:build amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm

// le_check.go - this runtime requires a little-endian host architecture.
//
// The framebuffer and canvas surfaces are stored little-endian-packed, and
// the guest-memory accessors assume the host's native byte order matches.
// This file compiles on known LE targets. The sibling file be_unsupported.go
// contains a deliberate compile error for any architecture not listed here.

package main
