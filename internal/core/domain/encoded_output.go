package domain

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/seedforge/seedforge/pkg/derivation/bip39"
)

// OutputType tags the variant of an EncodedOutput.
type OutputType string

const (
	OutputMnemonic OutputType = "mnemonic"
	OutputHex      OutputType = "hex"
	OutputPassword OutputType = "password"
	OutputRaw      OutputType = "raw"
	OutputKey      OutputType = "key"
	OutputRolls    OutputType = "rolls"
)

// EncodedOutput is the final result of a derivation call: a tagged variant
// over the supported application outputs, plus the number of entropy bits
// consumed for caller display. Immutable once returned.
type EncodedOutput struct {
	Type        OutputType
	Mnemonic    []string
	Language    bip39.Language
	Hex         string
	Password    string
	Raw         []byte
	Key         string
	Rolls       []int
	EntropyBits int
}

// String renders the output in its conventional display form.
func (o EncodedOutput) String() string {
	switch o.Type {
	case OutputMnemonic:
		return strings.Join(o.Mnemonic, " ")
	case OutputHex:
		return o.Hex
	case OutputPassword:
		return o.Password
	case OutputRaw:
		return hex.EncodeToString(o.Raw)
	case OutputKey:
		return o.Key
	case OutputRolls:
		rolls := make([]string, len(o.Rolls))
		for i, roll := range o.Rolls {
			rolls[i] = strconv.Itoa(roll)
		}
		return strings.Join(rolls, ",")
	default:
		return ""
	}
}
