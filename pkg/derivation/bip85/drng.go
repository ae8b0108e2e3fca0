package bip85

import (
	"golang.org/x/crypto/sha3"
)

// Reader is the deterministic random number generator of the scheme: a
// SHAKE-256 stream seeded with 64 bytes of application entropy. Reads are
// sequential, so a shorter output is always a prefix of a longer one.
type Reader struct {
	shake sha3.ShakeHash
}

// NewReader seeds a deterministic RNG with the full application entropy.
func NewReader(entropy []byte) (*Reader, error) {
	if len(entropy) != EntropySize {
		return nil, ErrInvalidEntropyLength
	}
	shake := sha3.NewShake256()
	shake.Write(entropy)
	return &Reader{shake}, nil
}

// Read fills p with the next deterministic bytes of the stream. It never
// fails.
func (r *Reader) Read(p []byte) (int, error) {
	return r.shake.Read(p)
}
