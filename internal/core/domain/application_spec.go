package domain

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/seedforge/seedforge/pkg/derivation/bip32"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/seedforge/seedforge/pkg/derivation/bip85"
	"github.com/seedforge/seedforge/pkg/derivation/path"
)

// ApplicationSpec identifies one supported application along with its
// parameters. Specs are validated before any derivation work occurs and are
// immutable once built.
type ApplicationSpec struct {
	// Application selects the encoder.
	Application bip85.Application
	// Words is the mnemonic word count, mnemonic application only.
	Words int
	// Language is the output wordlist language, mnemonic application only.
	Language bip39.Language
	// Length is the output length in bytes or characters for the hex,
	// password, raw and drng applications.
	Length int
	// Sides and Rolls parametrize the dice application.
	Sides int
	Rolls int
	// Index is the child index, incremented for fresh secrets.
	Index uint32
	// Network selects the serialization network for the wif and xprv
	// applications.
	Network bip32.Network
}

// Validate checks every parameter against the bounds of the selected
// application.
func (s ApplicationSpec) Validate() error {
	if s.Index >= hdkeychain.HardenedKeyStart {
		return ErrInvalidChildIndex
	}

	switch s.Application {
	case bip85.Mnemonic:
		if _, err := bip39.EntropyBytesForWordCount(s.Words); err != nil {
			return err
		}
		if _, err := s.Language.Code(); err != nil {
			return err
		}
		return nil
	case bip85.WIF, bip85.XPRV:
		_, err := bip32.NetworkParams(s.Network)
		return err
	case bip85.Hex, bip85.Base64Password, bip85.Base85Password,
		bip85.Raw, bip85.DRNG:
		return bip85.CheckLength(s.Application, s.Length)
	case bip85.Dice:
		return bip85.CheckDice(s.Sides, s.Rolls)
	default:
		return bip85.ErrUnsupportedApplication
	}
}

// Path builds the canonical all-hardened derivation path of the spec:
// purpose, application code, application parameters, child index.
func (s ApplicationSpec) Path() (path.DerivationPath, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	code, err := s.Application.Code()
	if err != nil {
		return nil, err
	}

	components := []uint32{bip85.Purpose, code}
	switch s.Application {
	case bip85.Mnemonic:
		languageCode, _ := s.Language.Code()
		components = append(components, languageCode, uint32(s.Words))
	case bip85.Hex, bip85.Base64Password, bip85.Base85Password:
		components = append(components, uint32(s.Length))
	case bip85.Dice:
		components = append(components, uint32(s.Sides), uint32(s.Rolls))
	}
	components = append(components, s.Index)

	derivationPath := make(path.DerivationPath, len(components))
	for i, component := range components {
		derivationPath[i] = component + hdkeychain.HardenedKeyStart
	}
	return derivationPath, nil
}

// EntropyBits returns the number of entropy bits the application consumes,
// for caller display.
func (s ApplicationSpec) EntropyBits() int {
	switch s.Application {
	case bip85.Mnemonic:
		numBytes, err := bip39.EntropyBytesForWordCount(s.Words)
		if err != nil {
			return 0
		}
		return numBytes * 8
	case bip85.WIF:
		return 256
	case bip85.Hex, bip85.Raw, bip85.DRNG:
		return s.Length * 8
	default:
		// xprv, passwords and dice consume the whole extracted block.
		return bip85.EntropySize * 8
	}
}
