package crypto

import "testing"

func TestSHA256ProviderDeterministic(t *testing.T) {
	var p HashProvider = SHA256Provider{}
	a := p.Sum([]byte("hello"))
	b := p.Sum([]byte("hello"))
	if a != b {
		t.Fatalf("expected identical digests, got %x and %x", a, b)
	}
}

func TestSHA3ProviderDiffersFromSHA256(t *testing.T) {
	sha256Sum := SHA256Provider{}.Sum([]byte("hello"))
	sha3Sum := SHA3Provider{}.Sum([]byte("hello"))
	if sha256Sum == sha3Sum {
		t.Fatalf("expected different digests between backends")
	}
}

func TestSHA3ProviderDeterministic(t *testing.T) {
	var p HashProvider = SHA3Provider{}
	a := p.Sum([]byte("same input"))
	b := p.Sum([]byte("same input"))
	if a != b {
		t.Fatalf("expected identical digests, got %x and %x", a, b)
	}
}
