package bip85

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"math/bits"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/seedforge/seedforge/pkg/derivation/bip32"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
)

/*
One pure encoder per application. Every encoder consumes the full 64-byte
application entropy plus its own parameters, validated before any entropy is
touched.
*/

// Words encodes the leading entropy bytes as a checksummed mnemonic phrase
// of the given word count and wordlist.
func Words(entropy []byte, wordCount int, wordlist *bip39.Wordlist) ([]string, error) {
	if len(entropy) != EntropySize {
		return nil, ErrInvalidEntropyLength
	}
	numBytes, err := bip39.EntropyBytesForWordCount(wordCount)
	if err != nil {
		return nil, err
	}
	return bip39.EntropyToMnemonic(entropy[:numBytes], wordlist)
}

// HexString renders the leading numBytes of entropy as lowercase hex.
func HexString(entropy []byte, numBytes int) (string, error) {
	if len(entropy) != EntropySize {
		return "", ErrInvalidEntropyLength
	}
	if err := CheckLength(Hex, numBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(entropy[:numBytes]), nil
}

// PasswordBase64 encodes the whole entropy block in standard base64 and
// truncates to exactly length characters. The encoding is positional over
// the full block, so no modulo bias is introduced.
func PasswordBase64(entropy []byte, length int) (string, error) {
	if len(entropy) != EntropySize {
		return "", ErrInvalidEntropyLength
	}
	if err := CheckLength(Base64Password, length); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(entropy)[:length], nil
}

// PasswordBase85 encodes the whole entropy block in RFC 1924 base85 and
// truncates to exactly length characters.
func PasswordBase85(entropy []byte, length int) (string, error) {
	if len(entropy) != EntropySize {
		return "", ErrInvalidEntropyLength
	}
	if err := CheckLength(Base85Password, length); err != nil {
		return "", err
	}
	return base85Encode(entropy)[:length], nil
}

// PrivateKeyWIF frames the leading 32 entropy bytes as a compressed private
// key in wallet import format for the given network.
func PrivateKeyWIF(entropy []byte, network bip32.Network) (string, error) {
	if len(entropy) != EntropySize {
		return "", ErrInvalidEntropyLength
	}
	params, err := bip32.NetworkParams(network)
	if err != nil {
		return "", err
	}
	if !validPrivateKey(entropy[:32]) {
		return "", bip32.ErrInvalidDerivedKey
	}

	priv, _ := btcec.PrivKeyFromBytes(entropy[:32])
	defer priv.Zero()
	wif, err := btcutil.NewWIF(priv, params, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// MasterKey frames the entropy as a fresh extended private master key:
// the first 32 bytes become the chain code, the last 32 the key.
func MasterKey(entropy []byte, network bip32.Network) (string, error) {
	if len(entropy) != EntropySize {
		return "", ErrInvalidEntropyLength
	}
	key, err := bip32.NewExtendedKey(entropy[32:], entropy[:32], network)
	if err != nil {
		return "", err
	}
	defer key.Zero()
	return key.String(), nil
}

// RawBytes returns the leading numBytes of entropy as-is.
func RawBytes(entropy []byte, numBytes int) ([]byte, error) {
	if len(entropy) != EntropySize {
		return nil, ErrInvalidEntropyLength
	}
	if err := CheckLength(Raw, numBytes); err != nil {
		return nil, err
	}
	out := make([]byte, numBytes)
	copy(out, entropy[:numBytes])
	return out, nil
}

// DRNGBytes reads numBytes from the deterministic RNG seeded with the
// entropy, for outputs longer than the native extraction size.
func DRNGBytes(entropy []byte, numBytes int) ([]byte, error) {
	if err := CheckLength(DRNG, numBytes); err != nil {
		return nil, err
	}
	drng, err := NewReader(entropy)
	if err != nil {
		return nil, err
	}
	out := make([]byte, numBytes)
	drng.Read(out)
	return out, nil
}

// DiceRolls derives rolls zero-indexed die values in [0, sides) from the
// deterministic RNG. Candidates are masked to ceil(log2(sides)) bits and
// values at or above sides are discarded, so every face stays equally
// likely.
func DiceRolls(entropy []byte, sides, rolls int) ([]int, error) {
	if err := CheckDice(sides, rolls); err != nil {
		return nil, err
	}
	drng, err := NewReader(entropy)
	if err != nil {
		return nil, err
	}

	rollBits := bits.Len(uint(sides - 1))
	numBytes := (rollBits + 7) / 8
	mask := uint32(1)<<rollBits - 1

	out := make([]int, 0, rolls)
	buf := make([]byte, 4)
	for len(out) < rolls {
		drng.Read(buf[4-numBytes:])
		candidate := binary.BigEndian.Uint32(buf) & mask
		if int(candidate) < sides {
			out = append(out, int(candidate))
		}
	}
	return out, nil
}
