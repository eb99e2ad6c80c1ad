package sequencer

import (
	"errors"

	"github.com/venuechain/rollup-core/vm"
)

// MineResult summarizes one completed propose-and-commit round.
type MineResult struct {
	Handle  string
	Height  uint64
	TxCount int
}

// Miner owns a Mempool and a ConsensusCore and wires the two together:
// drain up to maxTxs transactions from one lane, concatenate their
// programs into a Block, and hand it to consensus.
type Miner struct {
	mempool   *Mempool
	consensus *ConsensusCore
}

// NewMiner constructs a Miner over mempool and consensus.
func NewMiner(mempool *Mempool, consensus *ConsensusCore) (*Miner, error) {
	if mempool == nil {
		return nil, errors.New("nil mempool")
	}
	if consensus == nil {
		return nil, errors.New("nil consensus core")
	}
	return &Miner{mempool: mempool, consensus: consensus}, nil
}

// Mine drains up to maxTxs transactions from the lane named by kind,
// assembles them into a Block in FIFO order, and proposes it to
// consensus.
func (m *Miner) Mine(kind Lane, maxTxs int) (*MineResult, error) {
	txs := m.mempool.GetTxs(kind, maxTxs)

	var program []vm.CurveInstruction
	for _, tx := range txs {
		program = append(program, tx.Program...)
	}

	handle, err := m.consensus.ProposeAndCommit(Block{Program: program, Kind: kind})
	if err != nil {
		return nil, err
	}

	return &MineResult{
		Handle:  handle,
		Height:  m.consensus.Height(),
		TxCount: len(txs),
	}, nil
}
