package bip85_test

import (
	"testing"

	"github.com/seedforge/seedforge/pkg/derivation/bip85"
	"github.com/stretchr/testify/require"
)

func TestApplicationCode(t *testing.T) {
	t.Parallel()

	codes := map[bip85.Application]uint32{
		bip85.Mnemonic:       39,
		bip85.WIF:            2,
		bip85.XPRV:           32,
		bip85.Hex:            128169,
		bip85.Base64Password: 707764,
		bip85.Base85Password: 707785,
		bip85.Dice:           89101,
		bip85.Raw:            0,
		bip85.DRNG:           0,
	}
	for application, expected := range codes {
		code, err := application.Code()
		require.NoError(t, err)
		require.Equal(t, expected, code)
	}

	_, err := bip85.Application("rot13").Code()
	require.ErrorIs(t, err, bip85.ErrUnsupportedApplication)
}

func TestCheckLength(t *testing.T) {
	t.Parallel()

	bounds := map[bip85.Application][2]int{
		bip85.Hex:            {16, 64},
		bip85.Base64Password: {20, 86},
		bip85.Base85Password: {10, 80},
		bip85.Raw:            {1, 64},
		bip85.DRNG:           {1, 1024},
	}
	for application, b := range bounds {
		require.NoError(t, bip85.CheckLength(application, b[0]))
		require.NoError(t, bip85.CheckLength(application, b[1]))
		require.ErrorIs(
			t, bip85.CheckLength(application, b[0]-1), bip85.ErrParameterOutOfRange,
		)
		require.ErrorIs(
			t, bip85.CheckLength(application, b[1]+1), bip85.ErrParameterOutOfRange,
		)
	}

	require.ErrorIs(
		t, bip85.CheckLength(bip85.WIF, 32), bip85.ErrUnsupportedApplication,
	)
}

func TestCheckDice(t *testing.T) {
	t.Parallel()

	require.NoError(t, bip85.CheckDice(2, 1))
	require.NoError(t, bip85.CheckDice(65536, 100))

	require.ErrorIs(t, bip85.CheckDice(1, 10), bip85.ErrParameterOutOfRange)
	require.ErrorIs(t, bip85.CheckDice(65537, 10), bip85.ErrParameterOutOfRange)
	require.ErrorIs(t, bip85.CheckDice(6, 0), bip85.ErrParameterOutOfRange)
	require.ErrorIs(t, bip85.CheckDice(6, 101), bip85.ErrParameterOutOfRange)
}
