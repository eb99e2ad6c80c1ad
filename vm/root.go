package vm

import "crypto/sha256"

// sum256 hashes a program's encoded instruction stream. The pluggable
// HashProvider abstraction lives one layer up in the crypto package; vm
// stays a dependency-free leaf and always uses SHA-256 directly for its
// program roots.
func sum256(b []byte) [32]byte {
	return sha256.Sum256(b)
}
