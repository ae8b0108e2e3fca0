package domain

import (
	"fmt"
)

var (
	ErrMissingSeedSource   = fmt.Errorf("missing seed source, provide raw seed bytes or a mnemonic")
	ErrAmbiguousSeedSource = fmt.Errorf("provide either raw seed bytes or a mnemonic, not both")
	ErrInvalidChildIndex   = fmt.Errorf("child index must be lower than 2^31")
)
