// pkg/crypto/wipe.go

package crypto

// SecureZero overwrites a byte slice to reduce the chance of sensitive
// data lingering in memory. Go strings are immutable, so callers that
// want wipeable passwords must keep them as []byte until the last
// moment.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
