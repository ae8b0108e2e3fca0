package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects the extended-key serialization version bytes.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

var networks = map[Network]*chaincfg.Params{
	Mainnet: &chaincfg.MainNetParams,
	Testnet: &chaincfg.TestNet3Params,
}

// NetworkParams returns the chain parameters of the given network.
func NetworkParams(network Network) (*chaincfg.Params, error) {
	params, ok := networks[network]
	if !ok {
		return nil, ErrUnknownNetwork
	}
	return params, nil
}

// ExtendedKey is a private HD node: a 32-byte key plus the 32-byte chain
// code, along with the metadata needed for base58 serialization. The key
// material is owned exclusively by the node, callers get defensive copies.
type ExtendedKey struct {
	network     Network
	depth       uint8
	parentFP    [fingerprintSize]byte
	childNumber uint32
	chainCode   []byte
	key         []byte
}

const fingerprintSize = 4

// Key returns a copy of the 32-byte private key material.
func (k *ExtendedKey) Key() []byte {
	key := make([]byte, len(k.key))
	copy(key, k.key)
	return key
}

// ChainCode returns a copy of the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	chainCode := make([]byte, len(k.chainCode))
	copy(chainCode, k.chainCode)
	return chainCode
}

// Network returns the network the key serializes for.
func (k *ExtendedKey) Network() Network {
	return k.network
}

// Depth returns the number of derivation steps from the master key.
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ChildNumber returns the index this key was derived with, including the
// hardened offset.
func (k *ExtendedKey) ChildNumber() uint32 {
	return k.childNumber
}

// String returns the base58check xprv/tprv serialization of the key.
func (k *ExtendedKey) String() string {
	params := networks[k.network]
	return hdkeychain.NewExtendedKey(
		params.HDPrivateKeyID[:], k.key, k.chainCode, k.parentFP[:],
		k.depth, k.childNumber, true,
	).String()
}

// Zero overwrites the sensitive material of the key. The key must not be
// used afterwards.
func (k *ExtendedKey) Zero() {
	zeroBytes(k.key)
	zeroBytes(k.chainCode)
}

// NewExtendedKey assembles a master-depth extended key from raw key
// material, copying both buffers.
func NewExtendedKey(key, chainCode []byte, network Network) (*ExtendedKey, error) {
	if _, ok := networks[network]; !ok {
		return nil, ErrUnknownNetwork
	}
	if len(key) != keySize || len(chainCode) != keySize {
		return nil, ErrMalformedKey
	}
	if !withinCurveOrder(key) {
		return nil, ErrInvalidDerivedKey
	}

	k := &ExtendedKey{
		network:   network,
		chainCode: make([]byte, keySize),
		key:       make([]byte, keySize),
	}
	copy(k.key, key)
	copy(k.chainCode, chainCode)
	return k, nil
}

// ParseExtendedKey decodes a base58check xprv/tprv string into an
// ExtendedKey. Public keys are rejected.
func ParseExtendedKey(encoded string) (*ExtendedKey, error) {
	decoded, err := hdkeychain.NewKeyFromString(encoded)
	if err != nil {
		return nil, ErrMalformedKey
	}
	if !decoded.IsPrivate() {
		return nil, ErrNotPrivate
	}

	network := Network("")
	for name, params := range networks {
		if decoded.IsForNet(params) {
			network = name
			break
		}
	}
	if network == "" {
		return nil, ErrUnknownNetwork
	}

	privKey, err := decoded.ECPrivKey()
	if err != nil {
		return nil, ErrMalformedKey
	}

	key := &ExtendedKey{
		network:     network,
		depth:       decoded.Depth(),
		childNumber: decoded.ChildIndex(),
		chainCode:   decoded.ChainCode(),
		key:         privKey.Serialize(),
	}
	binary.BigEndian.PutUint32(key.parentFP[:], decoded.ParentFingerprint())
	return key, nil
}

func zeroBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
