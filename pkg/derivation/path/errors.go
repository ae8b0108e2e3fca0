package path

import (
	"fmt"
)

var (
	ErrMissingDerivationPath   = fmt.Errorf("missing derivation path")
	ErrMalformedDerivationPath = fmt.Errorf("path must not start or end with a '/'")
	ErrRequiredAbsolutePath    = fmt.Errorf("path must be an absolute derivation starting with 'm/'")
	ErrInvalidPathComponent    = fmt.Errorf("path component out of unsigned 32-bit range")
	ErrNonHardenedPath         = fmt.Errorf("path must contain only hardened components")
	ErrInvalidPathLength       = fmt.Errorf("path must have at least purpose and application components")
)
