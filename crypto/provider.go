// Package crypto provides the pluggable hash backend used by the
// sequencer's state-root agreement check and by the anchoring client's
// payload digest. It is deliberately narrow: this rollup core never
// verifies signatures or manages key material, so the provider surface
// is a single hash hook rather than a full signing/verification
// interface.
package crypto

// HashProvider is the narrow hashing interface shared by the consensus
// core's state-root hook and the anchoring client's payload digest.
// Implementations must be pure and deterministic: equal inputs always
// produce equal outputs, across calls and across processes.
type HashProvider interface {
	Sum(data []byte) [32]byte
}
