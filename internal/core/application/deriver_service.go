package application

import (
	"github.com/seedforge/seedforge/internal/core/domain"
	"github.com/seedforge/seedforge/pkg/derivation/bip32"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/seedforge/seedforge/pkg/derivation/bip85"
	"github.com/seedforge/seedforge/pkg/derivation/path"
	log "github.com/sirupsen/logrus"
	bip39data "github.com/tyler-smith/go-bip39"
)

// DeriverService is responsible for the derivation of deterministic secrets:
//   - Normalize a raw seed or a mnemonic (+passphrase) into the canonical
//     root seed.
//   - Walk the hardened derivation path of the requested application.
//   - Extract the application entropy and encode it with the application's
//     encoder.
//
// It also covers the mnemonic utilities used by the CLI: random mnemonic
// generation, validation and master key export.
//
// Wordlists are loaded once at construction and shared read-only across
// calls; every derivation call owns its seed and key buffers exclusively and
// wipes them before returning.
type DeriverService struct {
	network   bip32.Network
	wordlists map[bip39.Language]*bip39.Wordlist
}

// NewDeriverService returns a service deriving keys for the given network
// with the reference wordlists of the given languages preloaded.
func NewDeriverService(
	network bip32.Network, languages []bip39.Language,
) (*DeriverService, error) {
	if _, err := bip32.NetworkParams(network); err != nil {
		return nil, err
	}

	wordlists := make(map[bip39.Language]*bip39.Wordlist, len(languages))
	for _, language := range languages {
		wordlist, err := bip39.ReferenceWordlist(language)
		if err != nil {
			return nil, err
		}
		wordlists[language] = wordlist
	}
	return &DeriverService{network, wordlists}, nil
}

// DeriveSecretRequest is the structured input of a derivation call. Exactly
// one of Seed and Mnemonic must be set.
type DeriveSecretRequest struct {
	// Seed is a raw root seed of 16 to 64 bytes.
	Seed []byte
	// Mnemonic is a checksummed phrase in the given language, stretched
	// together with Passphrase into the root seed.
	Mnemonic   []string
	Passphrase string
	Language   bip39.Language
	// Spec selects the application and its parameters.
	Spec domain.ApplicationSpec
}

func (r DeriveSecretRequest) validate() error {
	if len(r.Seed) == 0 && len(r.Mnemonic) == 0 {
		return domain.ErrMissingSeedSource
	}
	if len(r.Seed) > 0 && len(r.Mnemonic) > 0 {
		return domain.ErrAmbiguousSeedSource
	}
	return r.Spec.Validate()
}

// DeriveSecret runs the full pipeline: seed normalization, path walk,
// entropy extraction, application encoding. The same request always yields
// a byte-identical output.
func (s *DeriverService) DeriveSecret(
	req DeriveSecretRequest,
) (*domain.EncodedOutput, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	seed, err := s.normalizeSeed(req)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(seed)

	master, err := bip32.NewMaster(seed, s.network)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	return s.deriveFromMaster(master, req.Spec)
}

// DeriveSecretFromExtendedKey is like DeriveSecret but starts from an
// already-derived base58 extended private master key.
func (s *DeriverService) DeriveSecretFromExtendedKey(
	encodedKey string, spec domain.ApplicationSpec,
) (*domain.EncodedOutput, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	master, err := bip32.ParseExtendedKey(encodedKey)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	return s.deriveFromMaster(master, spec)
}

func (s *DeriverService) deriveFromMaster(
	master *bip32.ExtendedKey, spec domain.ApplicationSpec,
) (*domain.EncodedOutput, error) {
	derivationPath, err := spec.Path()
	if err != nil {
		return nil, err
	}
	// Application paths are hardened end to end.
	if !derivationPath.AllHardened() {
		return nil, path.ErrNonHardenedPath
	}

	log.WithFields(log.Fields{
		"application": spec.Application,
		"path":        derivationPath.String(),
	}).Debug("deriving secret")

	derived, err := master.DerivePath(derivationPath)
	if err != nil {
		return nil, err
	}
	defer derived.Zero()

	key := derived.Key()
	defer zeroBytes(key)
	entropy := bip85.Entropy(key)
	defer zeroBytes(entropy)

	return s.encode(entropy, spec)
}

func (s *DeriverService) encode(
	entropy []byte, spec domain.ApplicationSpec,
) (*domain.EncodedOutput, error) {
	out := &domain.EncodedOutput{EntropyBits: spec.EntropyBits()}

	switch spec.Application {
	case bip85.Mnemonic:
		wordlist, ok := s.wordlists[spec.Language]
		if !ok {
			return nil, bip39.ErrUnsupportedLanguage
		}
		words, err := bip85.Words(entropy, spec.Words, wordlist)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputMnemonic
		out.Mnemonic = words
		out.Language = spec.Language
	case bip85.Hex:
		encoded, err := bip85.HexString(entropy, spec.Length)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputHex
		out.Hex = encoded
	case bip85.Base64Password:
		password, err := bip85.PasswordBase64(entropy, spec.Length)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputPassword
		out.Password = password
	case bip85.Base85Password:
		password, err := bip85.PasswordBase85(entropy, spec.Length)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputPassword
		out.Password = password
	case bip85.WIF:
		encoded, err := bip85.PrivateKeyWIF(entropy, spec.Network)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputKey
		out.Key = encoded
	case bip85.XPRV:
		encoded, err := bip85.MasterKey(entropy, spec.Network)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputKey
		out.Key = encoded
	case bip85.Raw:
		raw, err := bip85.RawBytes(entropy, spec.Length)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputRaw
		out.Raw = raw
	case bip85.DRNG:
		raw, err := bip85.DRNGBytes(entropy, spec.Length)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputRaw
		out.Raw = raw
	case bip85.Dice:
		rolls, err := bip85.DiceRolls(entropy, spec.Sides, spec.Rolls)
		if err != nil {
			return nil, err
		}
		out.Type = domain.OutputRolls
		out.Rolls = rolls
	default:
		return nil, bip85.ErrUnsupportedApplication
	}
	return out, nil
}

func (s *DeriverService) normalizeSeed(req DeriveSecretRequest) ([]byte, error) {
	if len(req.Seed) > 0 {
		if len(req.Seed) < bip32.MinSeedSize || len(req.Seed) > bip32.MaxSeedSize {
			return nil, bip32.ErrInvalidSeedLength
		}
		seed := make([]byte, len(req.Seed))
		copy(seed, req.Seed)
		return seed, nil
	}

	language := req.Language
	if language == "" {
		language = bip39.English
	}
	wordlist, ok := s.wordlists[language]
	if !ok {
		return nil, bip39.ErrUnsupportedLanguage
	}

	words := bip39.NormalizeWords(req.Mnemonic)
	entropy, err := bip39.MnemonicToEntropy(words, wordlist)
	if err != nil {
		return nil, err
	}
	zeroBytes(entropy)

	return bip39.Seed(words, req.Passphrase), nil
}

// GenerateMnemonic returns a fresh random mnemonic of the given word count
// and language.
func (s *DeriverService) GenerateMnemonic(
	language bip39.Language, wordCount int,
) ([]string, error) {
	wordlist, ok := s.wordlists[language]
	if !ok {
		return nil, bip39.ErrUnsupportedLanguage
	}
	numBytes, err := bip39.EntropyBytesForWordCount(wordCount)
	if err != nil {
		return nil, err
	}

	entropy, err := bip39data.NewEntropy(numBytes * 8)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(entropy)

	return bip39.EntropyToMnemonic(entropy, wordlist)
}

// ValidateMnemonic normalizes the given phrase and verifies its checksum
// against the wordlist of the given language, returning the normalized
// words.
func (s *DeriverService) ValidateMnemonic(
	mnemonic []string, language bip39.Language,
) ([]string, error) {
	wordlist, ok := s.wordlists[language]
	if !ok {
		return nil, bip39.ErrUnsupportedLanguage
	}

	words := bip39.NormalizeWords(mnemonic)
	entropy, err := bip39.MnemonicToEntropy(words, wordlist)
	if err != nil {
		return nil, err
	}
	zeroBytes(entropy)
	return words, nil
}

// MasterKeyFromMnemonic stretches the given phrase and passphrase into the
// root seed and returns the base58 master extended private key. The phrase
// is normalized but not checksum-validated, so free-form phrases work too.
func (s *DeriverService) MasterKeyFromMnemonic(
	mnemonic []string, passphrase string,
) (string, error) {
	seed := bip39.Seed(bip39.NormalizeWords(mnemonic), passphrase)
	defer zeroBytes(seed)

	master, err := bip32.NewMaster(seed, s.network)
	if err != nil {
		return "", err
	}
	defer master.Zero()
	return master.String(), nil
}

func zeroBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
