package path

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// DerivationPath is the data structure representing an HD path, ie. an
// ordered list of child indexes. Hardened components carry the
// hdkeychain.HardenedKeyStart offset.
type DerivationPath []uint32

// ParseDerivationPath converts a derivation path in string format, like
// "m/83696968'/39'/0'", to a DerivationPath type. Both "'" and "h"/"H" mark
// hardened components.
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	return parseDerivationPath(strPath, false)
}

// ParseAbsoluteDerivationPath is like ParseDerivationPath but requires the
// path to start with the master key marker "m/".
func ParseAbsoluteDerivationPath(strPath string) (DerivationPath, error) {
	return parseDerivationPath(strPath, true)
}

// Hardened returns whether the i-th component of the path is hardened.
func (path DerivationPath) Hardened(i int) bool {
	return path[i] >= hdkeychain.HardenedKeyStart
}

// AllHardened returns whether every component of the path is hardened.
func (path DerivationPath) AllHardened() bool {
	for i := range path {
		if !path.Hardened(i) {
			return false
		}
	}
	return true
}

// Purpose returns the first path component without the hardened offset, or
// an error if the path is too short to address an application.
func (path DerivationPath) Purpose() (uint32, error) {
	if len(path) < 2 {
		return 0, ErrInvalidPathLength
	}
	purpose := path[0]
	if purpose >= hdkeychain.HardenedKeyStart {
		purpose -= hdkeychain.HardenedKeyStart
	}
	return purpose, nil
}

func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	result := "m"
	for _, component := range path {
		var hardened bool
		if component >= hdkeychain.HardenedKeyStart {
			component -= hdkeychain.HardenedKeyStart
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

func parseDerivationPath(
	strPath string, checkAbsolutePath bool,
) (DerivationPath, error) {
	if strPath == "" {
		return nil, ErrMissingDerivationPath
	}

	elems := strings.Split(strPath, "/")
	if containsEmptyString(elems) {
		return nil, ErrMalformedDerivationPath
	}
	if checkAbsolutePath {
		if elems[0] != "m" {
			return nil, ErrRequiredAbsolutePath
		}
	}
	if strings.TrimSpace(elems[0]) == "m" {
		elems = elems[1:]
	}
	if len(elems) == 0 {
		return nil, ErrMalformedDerivationPath
	}

	path := make(DerivationPath, 0, len(elems))
	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		var value uint32

		if strings.HasSuffix(elem, "'") ||
			strings.HasSuffix(elem, "h") || strings.HasSuffix(elem, "H") {
			value = hdkeychain.HardenedKeyStart
			elem = strings.TrimSpace(elem[:len(elem)-1])
		}

		// use big int for conversion
		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return nil, fmt.Errorf("%w: invalid elem '%s'", ErrInvalidPathComponent, elem)
		}

		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			return nil, fmt.Errorf(
				"%w: elem %v must be in range [0, %d]", ErrInvalidPathComponent, bigval, max,
			)
		}
		value += uint32(bigval.Uint64())

		path = append(path, value)
	}

	return path, nil
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if s == "" {
			return true
		}
	}
	return false
}
