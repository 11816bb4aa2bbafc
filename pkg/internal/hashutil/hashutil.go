package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the lowercase hex SHA256 digest of data.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Short returns the first n hex characters of the SHA256 digest of text.
// n is clamped to the length of the full digest.
func Short(text string, n int) string {
	full := Sum([]byte(text))
	if n < 0 || n > len(full) {
		n = len(full)
	}
	return full[:n]
}
