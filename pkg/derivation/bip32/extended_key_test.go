package bip32_test

import (
	"encoding/hex"
	"testing"

	"github.com/seedforge/seedforge/pkg/derivation/bip32"
	"github.com/stretchr/testify/require"
)

const testXprv = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqj" +
	"iChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"

func TestParseExtendedKey(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		key, err := bip32.ParseExtendedKey(testXprv)
		require.NoError(t, err)
		require.Equal(t, bip32.Mainnet, key.Network())
		require.Equal(t, uint8(0), key.Depth())
		require.Equal(t, testXprv, key.String())
	})

	t.Run("round trip preserves key material", func(t *testing.T) {
		t.Parallel()

		seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
		master, err := bip32.NewMaster(seed, bip32.Mainnet)
		require.NoError(t, err)

		parsed, err := bip32.ParseExtendedKey(master.String())
		require.NoError(t, err)
		require.Equal(t, master.Key(), parsed.Key())
		require.Equal(t, master.ChainCode(), parsed.ChainCode())
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		for _, encoded := range []string{"", "notakey", testXprv[:50]} {
			_, err := bip32.ParseExtendedKey(encoded)
			require.ErrorIs(t, err, bip32.ErrMalformedKey)
		}
	})

	t.Run("public key rejected", func(t *testing.T) {
		t.Parallel()

		// Derived from the test vector above by neutering the master key.
		xpub := "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2g" +
			"Z29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
		_, err := bip32.ParseExtendedKey(xpub)
		require.ErrorIs(t, err, bip32.ErrNotPrivate)
	})
}

func TestNewExtendedKey(t *testing.T) {
	t.Parallel()

	key := make([]byte, 32)
	key[31] = 1
	chainCode := make([]byte, 32)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		extKey, err := bip32.NewExtendedKey(key, chainCode, bip32.Mainnet)
		require.NoError(t, err)
		require.Equal(t, key, extKey.Key())
		require.Equal(t, chainCode, extKey.ChainCode())
	})

	t.Run("copies its inputs", func(t *testing.T) {
		t.Parallel()

		buf := make([]byte, 32)
		buf[31] = 7
		extKey, err := bip32.NewExtendedKey(buf, chainCode, bip32.Mainnet)
		require.NoError(t, err)

		buf[31] = 9
		require.Equal(t, uint8(7), extKey.Key()[31])
	})

	t.Run("invalid sizes", func(t *testing.T) {
		t.Parallel()

		_, err := bip32.NewExtendedKey(key[:31], chainCode, bip32.Mainnet)
		require.ErrorIs(t, err, bip32.ErrMalformedKey)
		_, err = bip32.NewExtendedKey(key, chainCode[:31], bip32.Mainnet)
		require.ErrorIs(t, err, bip32.ErrMalformedKey)
	})

	t.Run("zero key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := bip32.NewExtendedKey(make([]byte, 32), chainCode, bip32.Mainnet)
		require.ErrorIs(t, err, bip32.ErrInvalidDerivedKey)
	})

	t.Run("unknown network", func(t *testing.T) {
		t.Parallel()

		_, err := bip32.NewExtendedKey(key, chainCode, "signet")
		require.ErrorIs(t, err, bip32.ErrUnknownNetwork)
	})
}

func TestExtendedKeyZero(t *testing.T) {
	t.Parallel()

	key := make([]byte, 32)
	key[31] = 1
	extKey, err := bip32.NewExtendedKey(key, make([]byte, 32), bip32.Mainnet)
	require.NoError(t, err)

	extKey.Zero()
	require.Equal(t, make([]byte, 32), extKey.Key())
	require.Equal(t, make([]byte, 32), extKey.ChainCode())
}

func TestNetworkParams(t *testing.T) {
	t.Parallel()

	params, err := bip32.NetworkParams(bip32.Mainnet)
	require.NoError(t, err)
	require.NotNil(t, params)

	params, err = bip32.NetworkParams(bip32.Testnet)
	require.NoError(t, err)
	require.NotNil(t, params)

	_, err = bip32.NetworkParams("signet")
	require.ErrorIs(t, err, bip32.ErrUnknownNetwork)
}
