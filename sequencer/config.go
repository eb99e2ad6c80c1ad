package sequencer

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the sequencer's validated run configuration: the validator
// set, the per-block transaction budget, the two mempool lane names, and
// the wall-clock collaborator the mempool uses for pruning. Build one
// with DefaultConfig, normalize validator input with NormalizeValidators,
// and check the result with Validate before any component reads it.
type Config struct {
	Validators     []string
	MaxTxsPerBlock int
	FastLane       Lane
	BigLane        Lane
	Clock          func() time.Time
}

// DefaultConfig returns a Config with no validators configured (the
// caller supplies them via NormalizeValidators), a 16-tx block budget,
// the fixed "fast"/"big" lane names, and time.Now as the wall clock.
func DefaultConfig() Config {
	return Config{
		Validators:     nil,
		MaxTxsPerBlock: 16,
		FastLane:       LaneFast,
		BigLane:        LaneBig,
		Clock:          time.Now,
	}
}

// NormalizeValidators dedupes raw, comma-splitting and trimming each
// token, preserving first-seen order. A validator listed twice, or
// passed across two comma-joined tokens, appears once in the output.
func NormalizeValidators(raw ...string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, token := range raw {
		for _, v := range strings.Split(token, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Validate checks cfg for the invariants every sequencer component
// assumes: at least one validator, a positive block budget, two distinct
// non-empty lane names, and a non-nil clock. It never panics; callers
// decide how to surface the returned error.
func Validate(cfg Config) error {
	if len(cfg.Validators) == 0 {
		return errors.New("validators is required")
	}
	if cfg.MaxTxsPerBlock <= 0 {
		return errors.New("max_txs_per_block must be > 0")
	}
	if strings.TrimSpace(string(cfg.FastLane)) == "" {
		return errors.New("fast lane name is required")
	}
	if strings.TrimSpace(string(cfg.BigLane)) == "" {
		return errors.New("big lane name is required")
	}
	if cfg.FastLane == cfg.BigLane {
		return fmt.Errorf("fast and big lane names must differ, both are %q", cfg.FastLane)
	}
	if cfg.Clock == nil {
		return errors.New("clock is required")
	}
	return nil
}
