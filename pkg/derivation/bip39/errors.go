package bip39

import (
	"fmt"
)

var (
	ErrUnknownWord          = fmt.Errorf("word not found in wordlist")
	ErrChecksumMismatch     = fmt.Errorf("mnemonic checksum mismatch")
	ErrUnsupportedWordCount = fmt.Errorf("word count must be one of 12, 15, 18, 21, 24")
	ErrInvalidEntropySize   = fmt.Errorf("entropy size must be one of 16, 20, 24, 28, 32 bytes")
	ErrUnsupportedLanguage  = fmt.Errorf("unsupported wordlist language")
	ErrInvalidWordlist      = fmt.Errorf("wordlist must contain exactly 2048 unique words")
)
