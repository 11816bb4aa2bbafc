package generated

import "github.com/arthur-debert/bmad-swarm/pkg/internal/hashutil"

// FingerprintLen is the number of hex characters kept from the digest.
const FingerprintLen = 8

// Fingerprint returns the first 8 lowercase hex characters of the SHA-256
// digest of text. It is an equality check, not a security measure.
func Fingerprint(text string) string {
	return hashutil.Short(text, FingerprintLen)
}
