// Package memzero provides best-effort wiping of sensitive byte slices.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. Uses a constant-time copy so the write is not
// elided.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
