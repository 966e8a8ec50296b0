package core

import "golang.org/x/sys/cpu"

// preferCT64 reports whether to use the 64-bit-lane bitsliced backend
// instead of the 32-bit one on this machine. AEZ's AES4/AES10 never get
// real AES-NI acceleration here (spec places the AES-NI fast path out of
// scope); the signal consulted is whether the host reports SSE2 (x86) or
// ASIMD (arm64). Every other host gets the 32-bit backend.
func preferCT64() bool {
	return cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
}
