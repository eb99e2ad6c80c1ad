package sequencer

import (
	"log/slog"
	"time"

	"github.com/venuechain/rollup-core/vm"
)

// Lane names a mempool lane. The only valid values are LaneFast and
// LaneBig; any other value passed to a Mempool method is a programming
// error, not a user error.
type Lane string

const (
	LaneFast Lane = "fast"
	LaneBig  Lane = "big"
)

const (
	nonceWindow  = 8
	pruneHorizon = 86400 * time.Second
)

// Tx is one transaction admitted to the mempool: a curve-ISA program
// submitted by sender under a monotone-by-arrival timestamp.
type Tx struct {
	Sender    string
	Nonce     uint64
	Program   []vm.CurveInstruction
	Kind      Lane
	Timestamp time.Time
}

// Mempool holds two FIFO lanes, "fast" and "big", each windowed to at
// most 8 distinct nonces per sender and pruned of entries older than
// 86,400 seconds. The wall clock is injected so tests can back-date
// transactions deterministically.
type Mempool struct {
	clock  func() time.Time
	fast   []Tx
	big    []Tx
	logger *slog.Logger
}

// NewMempool returns an empty Mempool using clock as its time source,
// logging admission and pruning events to slog.Default().
func NewMempool(clock func() time.Time) *Mempool {
	return &Mempool{clock: clock, logger: slog.Default()}
}

func (m *Mempool) lane(kind Lane) *[]Tx {
	switch kind {
	case LaneFast:
		return &m.fast
	case LaneBig:
		return &m.big
	default:
		panic("sequencer: unknown mempool lane " + string(kind))
	}
}

func (m *Mempool) prune() {
	cutoff := m.clock().Add(-pruneHorizon)
	fastBefore, bigBefore := len(m.fast), len(m.big)
	m.fast = pruneLane(m.fast, cutoff)
	m.big = pruneLane(m.big, cutoff)
	if dropped := (fastBefore - len(m.fast)) + (bigBefore - len(m.big)); dropped > 0 {
		m.logger.Info("mempool pruned stale transactions",
			"dropped", dropped,
			"fast_remaining", len(m.fast),
			"big_remaining", len(m.big),
		)
	}
}

func pruneLane(txs []Tx, cutoff time.Time) []Tx {
	kept := make([]Tx, 0, len(txs))
	for _, tx := range txs {
		if !tx.Timestamp.Before(cutoff) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// AddTx prunes, then admits tx into the lane matching tx.Kind. Admission
// is rejected when tx.Sender already holds 8 distinct nonces in that lane
// and tx.Nonce is not one of them; duplicate nonces from the same sender
// are never rejected, since the window bounds distinct nonces, not
// occupancy.
func (m *Mempool) AddTx(tx Tx) error {
	m.prune()
	lane := m.lane(tx.Kind)

	distinct := make(map[uint64]struct{})
	for _, t := range *lane {
		if t.Sender == tx.Sender {
			distinct[t.Nonce] = struct{}{}
		}
	}
	if _, seen := distinct[tx.Nonce]; !seen && len(distinct) >= nonceWindow {
		m.logger.Warn("mempool tx rejected",
			"sender", tx.Sender,
			"nonce", tx.Nonce,
			"lane", tx.Kind,
			"reason", ErrCodeNonceWindowExceeded,
		)
		return errNonceWindowExceeded(tx.Sender, tx.Kind)
	}

	*lane = append(*lane, tx)
	m.logger.Info("mempool tx admitted",
		"sender", tx.Sender,
		"nonce", tx.Nonce,
		"lane", tx.Kind,
	)
	return nil
}

// GetTxs prunes, then removes and returns the first min(limit, len) items
// of the lane matching kind, in FIFO order.
func (m *Mempool) GetTxs(kind Lane, limit int) []Tx {
	m.prune()
	lane := m.lane(kind)

	n := limit
	if n > len(*lane) {
		n = len(*lane)
	}
	if n < 0 {
		n = 0
	}

	out := append([]Tx(nil), (*lane)[:n]...)
	*lane = (*lane)[n:]
	return out
}

// Len reports the current length of the lane matching kind, without
// pruning or draining.
func (m *Mempool) Len(kind Lane) int {
	return len(*m.lane(kind))
}
