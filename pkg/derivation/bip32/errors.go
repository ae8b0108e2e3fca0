package bip32

import (
	"fmt"
)

var (
	ErrInvalidSeedLength = fmt.Errorf("seed length must be between 16 and 64 bytes")
	ErrInvalidDerivedKey = fmt.Errorf("invalid derived key, try the next child index")
	ErrNotPrivate        = fmt.Errorf("extended key must be private")
	ErrUnknownNetwork    = fmt.Errorf("unknown network")
	ErrDerivationTooDeep = fmt.Errorf("derivation depth exceeds 255")
	ErrMalformedKey      = fmt.Errorf("malformed extended key")
)
