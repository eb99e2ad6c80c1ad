package sequencer

import (
	"log/slog"

	"github.com/venuechain/rollup-core/vm"
)

// Block is a batch of curve-ISA instructions ready for consensus: no
// header, no parent link, the committed-height counter is external.
type Block struct {
	Program []vm.CurveInstruction
	Kind    Lane
}

// ConsensusCore owns a leader schedule, an anchoring client, and a
// pluggable state-root function. Its only externally visible state is a
// monotone committed-height counter.
type ConsensusCore struct {
	schedule       *LeaderSchedule
	anchor         *AnchoringClient
	stateRoot      StateRootFunc
	validatorCount int
	height         uint64
	logger         *slog.Logger
}

// NewConsensusCore constructs a ConsensusCore over validators, submitting
// committed blocks to anchor. A nil stateRoot defaults to
// DefaultStateRoot. Fails if validators is empty. Commit and divergence
// events are logged to slog.Default().
func NewConsensusCore(validators []string, anchor *AnchoringClient, stateRoot StateRootFunc) (*ConsensusCore, error) {
	schedule, err := NewLeaderSchedule(validators)
	if err != nil {
		return nil, err
	}
	if stateRoot == nil {
		stateRoot = DefaultStateRoot
	}
	return &ConsensusCore{
		schedule:       schedule,
		anchor:         anchor,
		stateRoot:      stateRoot,
		validatorCount: len(validators),
		logger:         slog.Default(),
	}, nil
}

// Height returns the current committed-height counter.
func (c *ConsensusCore) Height() uint64 { return c.height }

// ProposeAndCommit advances the leader schedule one tick, computes the
// state root of block.Program once per validator, and requires all
// results to agree before advancing height and anchoring. State-root
// checks happen before the height advance, which happens before the
// anchoring submission.
func (c *ConsensusCore) ProposeAndCommit(block Block) (string, error) {
	c.schedule.Next()

	roots := make(map[[32]byte]struct{}, 1)
	for i := 0; i < c.validatorCount; i++ {
		roots[c.stateRoot(block.Program)] = struct{}{}
	}
	if len(roots) != 1 {
		c.logger.Warn("consensus state roots diverged",
			"lane", block.Kind,
			"validator_count", c.validatorCount,
			"distinct_roots", len(roots),
		)
		return "", errStateRootsDiverged()
	}

	c.height++
	handle := c.anchor.Submit(block.Program)
	c.logger.Info("consensus block committed",
		"height", c.height,
		"lane", block.Kind,
		"handle", handle,
	)
	return handle, nil
}
