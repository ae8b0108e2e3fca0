package bip85

import (
	"encoding/binary"
)

// base85Alphabet is the RFC 1924 character set used by the base85 password
// application. Note this is not the ascii85/btoa alphabet.
const base85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

// base85Encode encodes src in base85 with the RFC 1924 alphabet: 4-byte
// big-endian groups become 5 characters, with a final partial group padded
// with zero bytes and its output truncated proportionally.
func base85Encode(src []byte) string {
	padded := src
	if rem := len(src) % 4; rem != 0 {
		padded = make([]byte, len(src)+4-rem)
		copy(padded, src)
	}

	out := make([]byte, 0, len(padded)/4*5)
	for i := 0; i < len(padded); i += 4 {
		group := binary.BigEndian.Uint32(padded[i:])
		var chunk [5]byte
		for j := 4; j >= 0; j-- {
			chunk[j] = base85Alphabet[group%85]
			group /= 85
		}
		out = append(out, chunk[:]...)
	}

	return string(out[:(len(src)*5+3)/4])
}
