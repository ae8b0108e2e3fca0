package bip39

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length in bytes of the canonical root seed produced by
	// the key-stretching function.
	SeedSize = 64

	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// Seed stretches a mnemonic phrase and an optional passphrase into the
// canonical 64-byte root seed via PBKDF2-HMAC-SHA512. Both inputs are
// NFKD-normalized first. The phrase is not checksum-validated here, use
// MnemonicToEntropy for that.
func Seed(words []string, passphrase string) []byte {
	phrase := norm.NFKD.String(strings.Join(words, " "))
	salt := norm.NFKD.String(seedSaltPrefix + passphrase)
	return pbkdf2.Key(
		[]byte(phrase), []byte(salt), seedIterations, SeedSize, sha512.New,
	)
}
