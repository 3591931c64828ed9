package credential

import "runtime"

// wipe zeroes b. Best-effort: the runtime may already have copied it.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
