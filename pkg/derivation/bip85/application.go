package bip85

import (
	"fmt"
)

// Purpose is the fixed first path component identifying the
// application-entropy derivation scheme.
const Purpose uint32 = 83696968

// Application selects one of the supported derived-secret encodings.
type Application string

const (
	// Mnemonic derives a new mnemonic phrase of 12 to 24 words.
	Mnemonic Application = "mnemonic"
	// WIF derives a private key in wallet import format.
	WIF Application = "wif"
	// XPRV derives a new extended private master key.
	XPRV Application = "xprv"
	// Hex derives 16 to 64 bytes rendered as lowercase hex.
	Hex Application = "hex"
	// Base64Password derives a password of 20 to 86 base64 characters.
	Base64Password Application = "base64"
	// Base85Password derives a password of 10 to 80 base85 characters.
	Base85Password Application = "base85"
	// Dice derives die rolls via the deterministic RNG.
	Dice Application = "dice"
	// Raw returns 1 to 64 bytes of application entropy unencoded.
	Raw Application = "raw"
	// DRNG streams an arbitrary amount of bytes from the deterministic RNG
	// seeded with the application entropy.
	DRNG Application = "drng"
)

// applicationCodes maps each application to its hardened-less path
// component, the second component of every derivation path.
var applicationCodes = map[Application]uint32{
	Mnemonic:       39,
	WIF:            2,
	XPRV:           32,
	Hex:            128169,
	Base64Password: 707764,
	Base85Password: 707785,
	Dice:           89101,
	Raw:            0,
	DRNG:           0,
}

// lengthRanges bounds the length parameter of the applications that carry
// one, in bytes or characters depending on the application.
var lengthRanges = map[Application][2]int{
	Hex:            {16, 64},
	Base64Password: {20, 86},
	Base85Password: {10, 80},
	Raw:            {1, EntropySize},
	DRNG:           {1, maxDRNGBytes},
}

const (
	maxDRNGBytes = 1024

	minDiceSides = 2
	maxDiceSides = 1 << 16
	minDiceRolls = 1
	maxDiceRolls = 100
)

// Code returns the hardened-less path component of the application.
func (a Application) Code() (uint32, error) {
	code, ok := applicationCodes[a]
	if !ok {
		return 0, ErrUnsupportedApplication
	}
	return code, nil
}

// CheckDice validates the dice application parameters.
func CheckDice(sides, rolls int) error {
	if sides < minDiceSides || sides > maxDiceSides {
		return fmt.Errorf(
			"%w: sides %d not in [%d, %d]",
			ErrParameterOutOfRange, sides, minDiceSides, maxDiceSides,
		)
	}
	if rolls < minDiceRolls || rolls > maxDiceRolls {
		return fmt.Errorf(
			"%w: rolls %d not in [%d, %d]",
			ErrParameterOutOfRange, rolls, minDiceRolls, maxDiceRolls,
		)
	}
	return nil
}

// CheckLength validates the length parameter of a length-bearing
// application against its bounds.
func CheckLength(app Application, length int) error {
	bounds, ok := lengthRanges[app]
	if !ok {
		return ErrUnsupportedApplication
	}
	if length < bounds[0] || length > bounds[1] {
		return fmt.Errorf(
			"%w: %s length %d not in [%d, %d]",
			ErrParameterOutOfRange, app, length, bounds[0], bounds[1],
		)
	}
	return nil
}
