package sequencer

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"

	"github.com/venuechain/rollup-core/crypto"
	"github.com/venuechain/rollup-core/vm"
)

// AnchoringClient is the external anchoring layer's stand-in: a
// deterministic encoder that serializes a batch payload, base64-encodes
// it, appends the encoded string to an observable transcript, and returns
// it as the transaction handle. Submission is a synchronous in-memory
// append; there is no real network transport. The payload's root digest
// is computed with a pluggable crypto.HashProvider.
type AnchoringClient struct {
	transcript []string
	hasher     crypto.HashProvider
}

// NewAnchoringClient returns an AnchoringClient with an empty transcript,
// hashing payload roots with crypto.SHA256Provider.
func NewAnchoringClient() *AnchoringClient {
	return NewAnchoringClientWithHasher(crypto.SHA256Provider{})
}

// NewAnchoringClientWithHasher returns an AnchoringClient that hashes
// payload roots with hasher instead of the default SHA256Provider.
func NewAnchoringClientWithHasher(hasher crypto.HashProvider) *AnchoringClient {
	return &AnchoringClient{hasher: hasher}
}

// payloadInstruction and payload declare their fields in lexicographic
// key order so that encoding/json's declaration-order emission matches
// the canonical key order the anchoring payload requires.
type payloadInstruction struct {
	Arg int64  `json:"arg"`
	Op  string `json:"op"`
}

type payload struct {
	Program []payloadInstruction `json:"program"`
	Root    string               `json:"root"`
}

// Submit builds the payload for program, appends its base64 encoding to
// the transcript, and returns that encoding as the transaction handle.
func (c *AnchoringClient) Submit(program []vm.CurveInstruction) string {
	instructions := make([]payloadInstruction, len(program))
	for i, ins := range program {
		instructions[i] = payloadInstruction{Op: ins.Opcode.String(), Arg: ins.Operand}
	}

	root := c.hasher.Sum(vm.EncodeCurveProgram(program))
	p := payload{Root: hex.EncodeToString(root[:]), Program: instructions}

	raw, err := json.Marshal(p)
	if err != nil {
		panic("sequencer: anchoring payload encoding failed: " + err.Error())
	}

	handle := base64.StdEncoding.EncodeToString(raw)
	c.transcript = append(c.transcript, handle)
	return handle
}

// Transcript returns a copy of the submitted handles in submission order.
func (c *AnchoringClient) Transcript() []string {
	return append([]string(nil), c.transcript...)
}
