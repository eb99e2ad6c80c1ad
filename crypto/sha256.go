package crypto

import "crypto/sha256"

// SHA256Provider is the default HashProvider: SHA-256 for the state-root
// function and the anchoring payload digest. It is the zero-value,
// always-correct backend.
type SHA256Provider struct{}

func (SHA256Provider) Sum(data []byte) [32]byte {
	return sha256.Sum256(data)
}
