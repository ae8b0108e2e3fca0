package bip39

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// entropyBytesByWordCount maps the supported mnemonic lengths to the entropy
// size that encodes them. The checksum adds wordCount/3 bits on top.
var entropyBytesByWordCount = map[int]int{
	12: 16,
	15: 20,
	18: 24,
	21: 28,
	24: 32,
}

// EntropyBytesForWordCount returns the entropy size in bytes encoded by a
// mnemonic of the given word count.
func EntropyBytesForWordCount(wordCount int) (int, error) {
	numBytes, ok := entropyBytesByWordCount[wordCount]
	if !ok {
		return 0, ErrUnsupportedWordCount
	}
	return numBytes, nil
}

// EntropyToMnemonic encodes entropy into an ordered word sequence of the
// given wordlist. The checksum, the first ENT/32 bits of the SHA-256 hash of
// the entropy, is appended to the entropy bit string before chunking it into
// 11-bit wordlist indexes.
func EntropyToMnemonic(entropy []byte, wordlist *Wordlist) ([]string, error) {
	if wordlist == nil {
		return nil, ErrUnsupportedLanguage
	}
	checksumBits, err := checksumBitsForEntropy(entropy)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(entropy)
	bits := new(big.Int).SetBytes(entropy)
	bits.Lsh(bits, uint(checksumBits))
	bits.Or(bits, big.NewInt(int64(hash[0]>>(8-checksumBits))))

	wordCount := (len(entropy)*8 + checksumBits) / wordBits
	wordMask := big.NewInt(WordlistSize - 1)
	index := new(big.Int)

	words := make([]string, wordCount)
	for i := wordCount - 1; i >= 0; i-- {
		index.And(bits, wordMask)
		bits.Rsh(bits, wordBits)
		words[i] = wordlist.Word(int(index.Int64()))
	}
	return words, nil
}

// MnemonicToEntropy decodes an ordered word sequence back into its entropy,
// recomputing and verifying the checksum bits.
func MnemonicToEntropy(words []string, wordlist *Wordlist) ([]byte, error) {
	if wordlist == nil {
		return nil, ErrUnsupportedLanguage
	}
	entropyBytes, ok := entropyBytesByWordCount[len(words)]
	if !ok {
		return nil, ErrUnsupportedWordCount
	}

	bits := new(big.Int)
	for _, word := range words {
		index, ok := wordlist.Index(word)
		if !ok {
			return nil, ErrUnknownWord
		}
		bits.Lsh(bits, wordBits)
		bits.Or(bits, big.NewInt(int64(index)))
	}

	checksumBits := len(words) / 3
	checksum := new(big.Int).And(
		bits, big.NewInt(int64(1<<checksumBits-1)),
	)
	bits.Rsh(bits, uint(checksumBits))

	entropy := bits.FillBytes(make([]byte, entropyBytes))
	hash := sha256.Sum256(entropy)
	if uint8(checksum.Int64()) != hash[0]>>(8-checksumBits) {
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}

// NormalizeWords returns the NFKD-normalized, lowercased copy of the given
// word sequence.
func NormalizeWords(words []string) []string {
	normalized := make([]string, len(words))
	for i, word := range words {
		normalized[i] = norm.NFKD.String(strings.ToLower(strings.TrimSpace(word)))
	}
	return normalized
}

// IsMnemonicValid returns whether the word sequence is a well-formed mnemonic
// of the wordlist with a matching checksum.
func IsMnemonicValid(words []string, wordlist *Wordlist) bool {
	_, err := MnemonicToEntropy(words, wordlist)
	return err == nil
}

func checksumBitsForEntropy(entropy []byte) (int, error) {
	for _, numBytes := range entropyBytesByWordCount {
		if len(entropy) == numBytes {
			return len(entropy) * 8 / 32, nil
		}
	}
	return 0, ErrInvalidEntropySize
}
