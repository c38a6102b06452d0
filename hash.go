package rootstream

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// HashFunc maps an arbitrary byte sequence to a 32-byte digest.
type HashFunc func([]byte) [32]byte

// SHA256 is the default hash primitive. Only streams built on SHA256 match
// the published test vectors.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// BLAKE3 yields a stream that is internally consistent but not interoperable
// with SHA256 streams.
func BLAKE3(b []byte) [32]byte {
	return blake3.Sum256(b)
}

// SHA3 yields a stream that is internally consistent but not interoperable
// with SHA256 streams.
func SHA3(b []byte) [32]byte {
	return sha3.Sum256(b)
}

var hashesByName = map[string]HashFunc{
	"sha256":   SHA256,
	"blake3":   BLAKE3,
	"sha3-256": SHA3,
}

// HashNames lists the names accepted by HashByName.
func HashNames() []string {
	return []string{"sha256", "blake3", "sha3-256"}
}

// HashByName looks up a hash primitive by its case-insensitive name.
func HashByName(name string) (HashFunc, error) {
	h, ok := hashesByName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q: want one of %s", name, strings.Join(HashNames(), ", "))
	}
	return h, nil
}
