package venuescript

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
)

// EmitManifest projects script into its deterministic Manifest. It is a
// pure function: output depends only on script's contents, never on map
// iteration order or wall time.
func EmitManifest(script *Script) *Manifest {
	routerAccounts := make([]string, 0, 1+len(script.Router.CollateralAssets))
	routerAccounts = append(routerAccounts, "router_state")
	for _, asset := range script.Router.CollateralAssets {
		routerAccounts = append(routerAccounts, "vault::"+asset.Asset)
	}

	capabilities := make([]CapabilitySchema, 0, len(script.Router.Capabilities))
	for _, cap := range script.Router.Capabilities {
		capabilities = append(capabilities, CapabilitySchema{
			Name:  cap.Name,
			Asset: cap.Asset,
			Limit: cap.Limit,
			TTLMs: resolveCapabilityTTL(cap, script.Router.CapTTLMs),
		})
	}
	for _, schema := range capabilities {
		assertValidCapabilitySchema(schema)
	}

	routerDescriptors := []CpiDescriptor{
		{
			Module:     "router",
			Entrypoint: "reserve",
			Accounts:   routerAccounts,
			Args: []ArgumentDescriptor{
				{Name: "user", TypeHint: "Pubkey"},
				{Name: "slab", TypeHint: "Hash"},
				{Name: "qty", TypeHint: "u64"},
			},
		},
		{
			Module:     "router",
			Entrypoint: "commit",
			Accounts:   routerAccounts,
			Args: []ArgumentDescriptor{
				{Name: "reservation", TypeHint: "Hash"},
				{Name: "fill", TypeHint: "Fill"},
			},
		},
		{
			Module:     "router",
			Entrypoint: "cancel",
			Accounts:   routerAccounts,
			Args: []ArgumentDescriptor{
				{Name: "reservation", TypeHint: "Hash"},
			},
		},
		{
			Module:     "router",
			Entrypoint: "liquidation_call",
			Accounts:   routerAccounts,
			Args: []ArgumentDescriptor{
				{Name: "user", TypeHint: "Pubkey"},
				{Name: "slab", TypeHint: "Hash"},
			},
		},
	}

	slabs := make([]SlabManifest, 0, len(script.Slabs))
	for _, slab := range script.Slabs {
		slabAccounts := []string{"slab::" + slab.Name, "escrow::" + slab.Name}
		args := []ArgumentDescriptor{
			{Name: "user", TypeHint: "Pubkey"},
			{Name: "qty", TypeHint: "u64"},
		}
		if slab.Oracle != nil {
			args = append(args, ArgumentDescriptor{Name: "oracle_price", TypeHint: "i64"})
		}
		descriptors := []CpiDescriptor{
			{Module: slab.Name, Entrypoint: "reserve", Accounts: slabAccounts, Args: args},
			{
				Module:     slab.Name,
				Entrypoint: "commit",
				Accounts:   slabAccounts,
				Args: []ArgumentDescriptor{
					{Name: "reservation", TypeHint: "Hash"},
					{Name: "fill", TypeHint: "Fill"},
				},
			},
			{
				Module:     slab.Name,
				Entrypoint: "cancel",
				Accounts:   slabAccounts,
				Args: []ArgumentDescriptor{
					{Name: "reservation", TypeHint: "Hash"},
				},
			},
		}
		slabs = append(slabs, SlabManifest{
			Name:           slab.Name,
			ID:             RouteID(slab.Name),
			Oracle:         slab.Oracle,
			BatchWindowMs:  slab.BatchWindowMs,
			CpiDescriptors: descriptors,
		})
	}

	oracles := make([]OracleManifest, 0, len(script.Oracles))
	for _, oracle := range script.Oracles {
		oracles = append(oracles, OracleManifest{
			Name:             oracle.Name,
			HeartbeatMs:      oracle.HeartbeatMs,
			RouterDependency: oracle.KillBandRouterRef,
		})
	}

	manifest := &Manifest{
		Router: RouterManifest{
			ID:                 RouteID(script.Router.Name),
			ReservationBatchMs: script.Router.ReservationBatchMs,
			Capabilities:       capabilities,
			CpiDescriptors:     routerDescriptors,
		},
		Slabs:   slabs,
		Oracles: oracles,
	}
	slog.Default().Info("manifest emitted",
		"router_id", manifest.Router.ID,
		"slab_count", len(manifest.Slabs),
		"oracle_count", len(manifest.Oracles),
	)
	return manifest
}

// resolveCapabilityTTL applies the resolution order: the capability's own
// ttl_ms wins; else the router's cap_ttl_ms; else 0.
func resolveCapabilityTTL(cap CapabilitySpec, routerCapTTLMs *uint64) uint64 {
	if cap.TTLMs != nil {
		return *cap.TTLMs
	}
	if routerCapTTLMs != nil {
		return *routerCapTTLMs
	}
	return 0
}

// ToJSON renders m as pretty-printed JSON with a two-space indent. Struct
// field declaration order already matches the required lexicographic key
// order (see manifest_types.go), so no custom marshaler is needed. Two
// calls against an equal Manifest value produce byte-identical output.
func (m *Manifest) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// RouteID derives the deterministic 128-bit identifier for name: the
// lowercase hex of the first 16 bytes of SHA-256(name).
func RouteID(name string) string {
	digest := sha256.Sum256([]byte(name))
	return hex.EncodeToString(digest[:16])
}

// HoldID derives the deterministic 128-bit identifier for a (user, slab)
// pair: the lowercase hex of the first 16 bytes of SHA-256(user + "::" +
// slab).
func HoldID(user, slab string) string {
	h := sha256.New()
	h.Write([]byte(user))
	h.Write([]byte("::"))
	h.Write([]byte(slab))
	digest := h.Sum(nil)
	return hex.EncodeToString(digest[:16])
}
