package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fintab/deskstate/internal/value"
)

// DomainSnapshot is the domain prefix for snapshot content hashes.
// The version suffix enables future algorithm migration.
const DomainSnapshot = "deskstate/workspace/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00}) // Null separator
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ContentHash computes the content-addressed hash of a sanitized tab
// mapping. The hash is stable across process restarts and platforms
// because it is taken over canonical JSON.
func ContentHash(tabs value.Object) (string, error) {
	canonical, err := value.MarshalCanonical(tabs)
	if err != nil {
		return "", fmt.Errorf("ContentHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSnapshot, canonical), nil
}
