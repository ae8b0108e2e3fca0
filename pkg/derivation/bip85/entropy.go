package bip85

import (
	"crypto/hmac"
	"crypto/sha512"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// EntropySize is the length in bytes of the application entropy extracted
// from a derived key.
const EntropySize = 64

// entropyHMACKey is the fixed application tag keying the entropy
// extraction, distinct from the child-derivation domain separator.
var entropyHMACKey = []byte("bip-entropy-from-k")

// Entropy extracts the 64-byte application entropy from a derived 32-byte
// private key. Applications truncate the result to the length they need, so
// shorter requests are always a prefix of longer ones.
func Entropy(key []byte) []byte {
	mac := hmac.New(sha512.New, entropyHMACKey)
	mac.Write(key)
	return mac.Sum(nil)
}

// validPrivateKey reports whether the given 32 bytes are a usable secp256k1
// private key. Out-of-range keys must hard fail so callers retry with the
// next child index.
func validPrivateKey(key []byte) bool {
	k := new(big.Int).SetBytes(key)
	defer k.SetInt64(0)
	return k.Sign() != 0 && k.Cmp(btcec.S256().N) < 0
}
