package mines

import (
	"fmt"
	"math/big"
	"strings"
)

// EncodeKey packs a row-major '0'/'1' bitmap string into its canonical board
// key: the bits read as one big-endian integer, rendered as bare lowercase
// hex. Integer conversion drops leading zero bits, so the result is
// left-padded with '0' back to ceil(len(bits)/4) hex digits; this is what
// makes DecodeKey(EncodeKey(bits), len(bits)) == bits hold for every bitmap.
func EncodeKey(bits string) (string, error) {
	if bits == "" {
		return "", ValidationError{"cannot encode an empty bitmap"}
	}
	n, ok := new(big.Int).SetString(bits, 2)
	if !ok || n.Sign() < 0 {
		return "", ValidationError{fmt.Sprintf("bitmap %q is not a binary string", bits)}
	}
	key := n.Text(16)
	if pad := (len(bits)+3)/4 - len(key); pad > 0 {
		key = strings.Repeat("0", pad) + key
	}
	return key, nil
}

// DecodeKey unpacks a board key into a bitmap of exactly cellCount bits,
// restoring the leading zeros the integer form dropped. Keys shorter than
// the canonical width are accepted as-is; a key whose value needs more than
// cellCount bits cannot belong to the board and is rejected.
func DecodeKey(key string, cellCount int) (string, error) {
	if cellCount <= 0 {
		return "", ValidationError{fmt.Sprintf("cell count must be positive, got %d", cellCount)}
	}
	for _, c := range key {
		if !isHexDigit(c) {
			return "", MalformedKeyError{fmt.Sprintf(
				"key %q contains non-hexadecimal character %q", key, c,
			)}
		}
	}
	n, ok := new(big.Int).SetString(key, 16)
	if !ok {
		return "", MalformedKeyError{fmt.Sprintf("key %q is not hexadecimal", key)}
	}
	bits := n.Text(2)
	if len(bits) > cellCount {
		return "", MalformedKeyError{fmt.Sprintf(
			"key %q encodes %d bits but the board has %d cells",
			key, len(bits), cellCount,
		)}
	}
	if pad := cellCount - len(bits); pad > 0 {
		bits = strings.Repeat("0", pad) + bits
	}
	return bits, nil
}

func isHexDigit(c rune) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
