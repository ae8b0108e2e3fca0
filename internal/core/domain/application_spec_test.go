package domain_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/seedforge/seedforge/internal/core/domain"
	"github.com/seedforge/seedforge/pkg/derivation/bip32"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/seedforge/seedforge/pkg/derivation/bip85"
	"github.com/seedforge/seedforge/pkg/derivation/path"
	"github.com/stretchr/testify/require"
)

const h = hdkeychain.HardenedKeyStart

func TestApplicationSpecValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		specs := []domain.ApplicationSpec{
			{Application: bip85.Mnemonic, Words: 12, Language: bip39.English},
			{Application: bip85.Mnemonic, Words: 24, Language: bip39.Czech, Index: 42},
			{Application: bip85.WIF, Network: bip32.Mainnet},
			{Application: bip85.XPRV, Network: bip32.Testnet},
			{Application: bip85.Hex, Length: 16},
			{Application: bip85.Base64Password, Length: 86},
			{Application: bip85.Base85Password, Length: 10},
			{Application: bip85.Dice, Sides: 6, Rolls: 10},
			{Application: bip85.Raw, Length: 64},
			{Application: bip85.DRNG, Length: 1024},
		}
		for _, spec := range specs {
			require.NoError(t, spec.Validate())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			spec        domain.ApplicationSpec
			expectedErr error
		}{
			{
				domain.ApplicationSpec{Application: "rot13"},
				bip85.ErrUnsupportedApplication,
			},
			{
				domain.ApplicationSpec{
					Application: bip85.Mnemonic, Words: 13, Language: bip39.English,
				},
				bip39.ErrUnsupportedWordCount,
			},
			{
				domain.ApplicationSpec{
					Application: bip85.Mnemonic, Words: 12, Language: "klingon",
				},
				bip39.ErrUnsupportedLanguage,
			},
			{
				domain.ApplicationSpec{Application: bip85.WIF, Network: "signet"},
				bip32.ErrUnknownNetwork,
			},
			{
				domain.ApplicationSpec{Application: bip85.Hex, Length: 65},
				bip85.ErrParameterOutOfRange,
			},
			{
				domain.ApplicationSpec{Application: bip85.Dice, Sides: 1, Rolls: 10},
				bip85.ErrParameterOutOfRange,
			},
			{
				domain.ApplicationSpec{
					Application: bip85.Hex, Length: 32, Index: hdkeychain.HardenedKeyStart,
				},
				domain.ErrInvalidChildIndex,
			},
		}
		for _, tt := range tests {
			require.ErrorIs(t, tt.spec.Validate(), tt.expectedErr)
		}
	})
}

func TestApplicationSpecPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     domain.ApplicationSpec
		expected path.DerivationPath
	}{
		{
			domain.ApplicationSpec{
				Application: bip85.Mnemonic, Words: 12, Language: bip39.English,
			},
			path.DerivationPath{h + 83696968, h + 39, h, h + 12, h},
		},
		{
			domain.ApplicationSpec{
				Application: bip85.Mnemonic, Words: 18, Language: bip39.French, Index: 3,
			},
			path.DerivationPath{h + 83696968, h + 39, h + 6, h + 18, h + 3},
		},
		{
			domain.ApplicationSpec{Application: bip85.WIF, Network: bip32.Mainnet},
			path.DerivationPath{h + 83696968, h + 2, h},
		},
		{
			domain.ApplicationSpec{
				Application: bip85.XPRV, Network: bip32.Mainnet, Index: 1,
			},
			path.DerivationPath{h + 83696968, h + 32, h + 1},
		},
		{
			domain.ApplicationSpec{Application: bip85.Hex, Length: 32},
			path.DerivationPath{h + 83696968, h + 128169, h + 32, h},
		},
		{
			domain.ApplicationSpec{Application: bip85.Base64Password, Length: 24},
			path.DerivationPath{h + 83696968, h + 707764, h + 24, h},
		},
		{
			domain.ApplicationSpec{Application: bip85.Base85Password, Length: 20},
			path.DerivationPath{h + 83696968, h + 707785, h + 20, h},
		},
		{
			domain.ApplicationSpec{Application: bip85.Dice, Sides: 6, Rolls: 10},
			path.DerivationPath{h + 83696968, h + 89101, h + 6, h + 10, h},
		},
		{
			domain.ApplicationSpec{Application: bip85.Raw, Length: 64, Index: 7},
			path.DerivationPath{h + 83696968, h, h + 7},
		},
		{
			domain.ApplicationSpec{Application: bip85.DRNG, Length: 128},
			path.DerivationPath{h + 83696968, h, h},
		},
	}
	for _, tt := range tests {
		derivationPath, err := tt.spec.Path()
		require.NoError(t, err)
		require.Equal(t, tt.expected, derivationPath)
		require.True(t, derivationPath.AllHardened())
	}

	_, err := domain.ApplicationSpec{Application: "rot13"}.Path()
	require.ErrorIs(t, err, bip85.ErrUnsupportedApplication)
}

func TestApplicationSpecEntropyBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     domain.ApplicationSpec
		expected int
	}{
		{domain.ApplicationSpec{Application: bip85.Mnemonic, Words: 12}, 128},
		{domain.ApplicationSpec{Application: bip85.Mnemonic, Words: 24}, 256},
		{domain.ApplicationSpec{Application: bip85.WIF}, 256},
		{domain.ApplicationSpec{Application: bip85.Hex, Length: 32}, 256},
		{domain.ApplicationSpec{Application: bip85.Raw, Length: 16}, 128},
		{domain.ApplicationSpec{Application: bip85.DRNG, Length: 64}, 512},
		{domain.ApplicationSpec{Application: bip85.XPRV}, 512},
		{domain.ApplicationSpec{Application: bip85.Base64Password, Length: 20}, 512},
		{domain.ApplicationSpec{Application: bip85.Dice, Sides: 6, Rolls: 10}, 512},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.spec.EntropyBits())
	}
}

func TestEncodedOutputString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output   domain.EncodedOutput
		expected string
	}{
		{
			domain.EncodedOutput{
				Type:     domain.OutputMnemonic,
				Mnemonic: []string{"abandon", "ability", "able"},
			},
			"abandon ability able",
		},
		{
			domain.EncodedOutput{Type: domain.OutputHex, Hex: "deadbeef"},
			"deadbeef",
		},
		{
			domain.EncodedOutput{Type: domain.OutputPassword, Password: "s3cret"},
			"s3cret",
		},
		{
			domain.EncodedOutput{Type: domain.OutputRaw, Raw: []byte{0xde, 0xad}},
			"dead",
		},
		{
			domain.EncodedOutput{Type: domain.OutputKey, Key: "xprv123"},
			"xprv123",
		},
		{
			domain.EncodedOutput{Type: domain.OutputRolls, Rolls: []int{4, 1, 4}},
			"4,1,4",
		},
		{
			domain.EncodedOutput{},
			"",
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.output.String())
	}
}
