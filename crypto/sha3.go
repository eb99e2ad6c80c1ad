package crypto

import "golang.org/x/crypto/sha3"

// SHA3Provider is an alternate HashProvider backend. It exists to prove,
// and to exercise in tests, that the consensus core's state-root hook and
// the anchoring client's digest are genuinely swappable. It is never the
// default backend; callers must substitute it explicitly.
type SHA3Provider struct{}

func (SHA3Provider) Sum(data []byte) [32]byte {
	h := sha3.New256()
	_, _ = h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
