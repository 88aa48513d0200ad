// Package fingerprint derives short content fingerprints used as HTTP entity
// tags for catalog reads.
package fingerprint

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Sum returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 16 bytes (32 hex chars).
func Sum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:16])
}

// ETag returns Sum(b) as a strong entity tag, quotes included.
func ETag(b []byte) string { return `"` + Sum(b) + `"` }
