package bip32

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/seedforge/seedforge/pkg/derivation/path"
)

const (
	// MinSeedSize and MaxSeedSize bound the supported root seed lengths.
	MinSeedSize = 16
	MaxSeedSize = 64

	keySize = 32
)

// masterHMACKey is the fixed domain-separation constant keying the master
// key derivation.
var masterHMACKey = []byte("Bitcoin seed")

// NewMaster derives the master extended key from a root seed via HMAC-SHA512
// keyed by the scheme's domain-separation constant. The left half of the
// digest is the master key, the right half the chain code.
func NewMaster(seed []byte, network Network) (*ExtendedKey, error) {
	if _, ok := networks[network]; !ok {
		return nil, ErrUnknownNetwork
	}
	if len(seed) < MinSeedSize || len(seed) > MaxSeedSize {
		return nil, ErrInvalidSeedLength
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	digest := mac.Sum(nil)
	defer zeroBytes(digest)

	key, chainCode := digest[:keySize], digest[keySize:]
	if !withinCurveOrder(key) {
		return nil, ErrInvalidDerivedKey
	}

	master := &ExtendedKey{
		network:   network,
		chainCode: make([]byte, keySize),
		key:       make([]byte, keySize),
	}
	copy(master.key, key)
	copy(master.chainCode, chainCode)
	return master, nil
}

// Derive computes the child extended key for the given index. Indexes at or
// above hdkeychain.HardenedKeyStart use the hardened, private-serialization
// branch; lower indexes use the compressed public key of the parent.
func (k *ExtendedKey) Derive(index uint32) (*ExtendedKey, error) {
	if k.depth == 255 {
		return nil, ErrDerivationTooDeep
	}

	data := make([]byte, 0, keySize+5)
	if index >= hdkeychain.HardenedKeyStart {
		data = append(data, 0x00)
		data = append(data, k.key...)
	} else {
		data = append(data, compressedPubKey(k.key)...)
	}
	data = binary.BigEndian.AppendUint32(data, index)
	defer zeroBytes(data)

	mac := hmac.New(sha512.New, k.chainCode)
	mac.Write(data)
	digest := mac.Sum(nil)
	defer zeroBytes(digest)

	il := new(big.Int).SetBytes(digest[:keySize])
	defer il.SetInt64(0)
	if il.Cmp(btcec.S256().N) >= 0 {
		return nil, ErrInvalidDerivedKey
	}

	parentKey := new(big.Int).SetBytes(k.key)
	defer parentKey.SetInt64(0)
	il.Add(il, parentKey)
	il.Mod(il, btcec.S256().N)
	if il.Sign() == 0 {
		return nil, ErrInvalidDerivedKey
	}

	child := &ExtendedKey{
		network:     k.network,
		depth:       k.depth + 1,
		childNumber: index,
		chainCode:   make([]byte, keySize),
		key:         il.FillBytes(make([]byte, keySize)),
	}
	copy(child.chainCode, digest[keySize:])
	copy(child.parentFP[:], btcutil.Hash160(compressedPubKey(k.key))[:fingerprintSize])
	return child, nil
}

// DerivePath folds Derive over every component of the path in order and
// returns the resulting extended key. Intermediate keys are zeroed.
func (k *ExtendedKey) DerivePath(derivationPath path.DerivationPath) (*ExtendedKey, error) {
	current := k
	for _, component := range derivationPath {
		next, err := current.Derive(component)
		if current != k {
			current.Zero()
		}
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func compressedPubKey(key []byte) []byte {
	priv, pub := btcec.PrivKeyFromBytes(key)
	defer priv.Zero()
	return pub.SerializeCompressed()
}

func withinCurveOrder(key []byte) bool {
	k := new(big.Int).SetBytes(key)
	defer k.SetInt64(0)
	return k.Sign() != 0 && k.Cmp(btcec.S256().N) < 0
}
