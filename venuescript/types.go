// Package venuescript parses the block-structured venue-configuration DSL
// ("venue script") into a typed AST, validates cross-block invariants, and
// projects the AST into a deterministic manifest of CPI call descriptors.
package venuescript

import "math/big"

// Script is the root of a parsed venue script: exactly one router, zero or
// more slabs, zero or more oracles.
type Script struct {
	Router  RouterBlock
	Slabs   []SlabBlock
	Oracles []OracleBlock
}

// RouterBlock is the capital and capability-management surface of the
// venue.
type RouterBlock struct {
	Name                string
	CollateralAssets    []CollateralSpec
	PortfolioMargin     *PortfolioMarginSpec
	CapTTLMs            *uint64
	ReservationBatchMs  *uint64
	Capabilities        []CapabilitySpec
}

// CollateralSpec names one collateral asset and its vault cap.
type CollateralSpec struct {
	Asset    string
	VaultCap uint64
}

// PortfolioMarginSpec names the cross-margining model and correlation
// matrix reference a router uses.
type PortfolioMarginSpec struct {
	Model        string
	CorrelMatrix string
}

// CapabilitySpec is a named, asset-scoped, quantity-bounded grant. Limit is
// a u128 in the source grammar; Go represents it as an arbitrary-precision
// integer since no native 128-bit integer type exists.
type CapabilitySpec struct {
	Name   string
	Asset  string
	Limit  *big.Int
	TTLMs  *uint64
}

// SlabBlock is a declared market instance within a router.
type SlabBlock struct {
	Name          string
	MakerClass    MakerClassSpec
	Matching      *MatchingSpec
	Fee           FeeSpec
	Risk          RiskSpec
	AntiToxicity  *AntiToxicitySpec
	BatchWindowMs *uint64
	Oracle        *string
}

// MakerClassSpec names the maker tier and its allowance.
type MakerClassSpec struct {
	Class     string
	Allowance uint64
}

// MatchingSpec configures FIFO/pending-promotion behavior, declared only.
type MatchingSpec struct {
	Fifo             bool
	PendingPromotion bool
}

// FeeSpec is the slab's maker/taker fee schedule.
type FeeSpec struct {
	MakerBps      uint16
	TakerBps      uint16
	RebateDelayMs uint64
}

// RiskSpec carries the slab's margin ratios.
type RiskSpec struct {
	ImrBps uint16
	MmrBps uint16
}

// AntiToxicitySpec configures the slab's toxic-flow deterrents.
type AntiToxicitySpec struct {
	KillBandBps uint16
	JitPenalty  bool
	ArgTaxBps   *uint16
}

// OracleBlock is a price feed a slab may reference.
type OracleBlock struct {
	Name               string
	HeartbeatMs        uint64
	KillBandRouterRef  *string
}
