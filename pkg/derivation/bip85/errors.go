package bip85

import (
	"fmt"
)

var (
	ErrParameterOutOfRange    = fmt.Errorf("application parameter out of range")
	ErrUnsupportedApplication = fmt.Errorf("unsupported application")
	ErrInvalidEntropyLength   = fmt.Errorf("application entropy must be 64 bytes")
)
