package venuescript

import "math/big"

// Manifest is the deterministic projection of a Script: one RouterManifest,
// one SlabManifest per slab, one OracleManifest per oracle. Struct fields
// are declared in the lexicographic order of their JSON tags so that
// encoding/json's declaration-order emission matches the required stable
// key order without a custom marshaler.
type Manifest struct {
	Oracles []OracleManifest `json:"oracles"`
	Router  RouterManifest   `json:"router"`
	Slabs   []SlabManifest   `json:"slabs"`
}

// RouterManifest is the router's manifest projection.
type RouterManifest struct {
	Capabilities       []CapabilitySchema `json:"capabilities"`
	CpiDescriptors     []CpiDescriptor    `json:"cpi_descriptors"`
	ID                 string             `json:"id"`
	ReservationBatchMs *uint64            `json:"reservation_batch_ms"`
}

// CapabilitySchema is a capability with its TTL fully resolved (see
// resolveCapabilityTTL).
type CapabilitySchema struct {
	Asset string   `json:"asset"`
	Limit *big.Int `json:"limit"`
	Name  string   `json:"name"`
	TTLMs uint64   `json:"ttl_ms"`
}

// SlabManifest is one slab's manifest projection.
type SlabManifest struct {
	BatchWindowMs  *uint64         `json:"batch_window_ms"`
	CpiDescriptors []CpiDescriptor `json:"cpi_descriptors"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Oracle         *string         `json:"oracle"`
}

// OracleManifest is one oracle's manifest projection.
type OracleManifest struct {
	HeartbeatMs      uint64  `json:"heartbeat_ms"`
	Name             string  `json:"name"`
	RouterDependency *string `json:"router_dependency"`
}

// CpiDescriptor documents one cross-program call the emitted system
// expects to make: a module, an entrypoint, an ordered account list, and
// an ordered argument list.
type CpiDescriptor struct {
	Accounts   []string             `json:"accounts"`
	Args       []ArgumentDescriptor `json:"args"`
	Entrypoint string               `json:"entrypoint"`
	Module     string               `json:"module"`
}

// ArgumentDescriptor names one call argument and its type hint.
type ArgumentDescriptor struct {
	Name     string `json:"name"`
	TypeHint string `json:"type_hint"`
}
