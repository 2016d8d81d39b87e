package transfer

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// PlaceholderPrefix marks transaction hashes synthesized while no relay has
// reported a real settlement transaction. A prefixed value is never a valid
// on-chain hash, so it cannot be mistaken for settlement proof.
const PlaceholderPrefix = "sim:"

// PlaceholderHash derives a placeholder hash from the business key, the source
// chain and a caller-supplied suffix. The same inputs always yield the same hash.
func PlaceholderHash(bridgeID, chain, suffix string) string {
	digest := crypto.Keccak256Hash([]byte(bridgeID), []byte{0}, []byte(chain), []byte{0}, []byte(suffix))
	return PlaceholderPrefix + digest.Hex()
}

// NewPlaceholderHash synthesizes a unique placeholder hash using a random suffix.
func NewPlaceholderHash(bridgeID, chain string) string {
	return PlaceholderHash(bridgeID, chain, uuid.NewString())
}

// IsPlaceholderHash reports whether h was produced by PlaceholderHash.
func IsPlaceholderHash(h string) bool {
	return strings.HasPrefix(h, PlaceholderPrefix)
}
