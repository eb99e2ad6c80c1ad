package venuescript

// Validate runs the cross-block semantic checks over a complete AST.
// The validator never mutates script and never re-inspects line numbers;
// errors reference the offending entity by name.
func Validate(script *Script) error {
	slabNames := make(map[string]struct{}, len(script.Slabs))
	for _, slab := range script.Slabs {
		if _, dup := slabNames[slab.Name]; dup {
			return errDuplicateSlab(slab.Name)
		}
		slabNames[slab.Name] = struct{}{}
	}

	oracleNames := make(map[string]struct{}, len(script.Oracles))
	for _, oracle := range script.Oracles {
		if _, dup := oracleNames[oracle.Name]; dup {
			return errDuplicateOracle(oracle.Name)
		}
		oracleNames[oracle.Name] = struct{}{}
	}

	routerName := script.Router.Name

	for _, slab := range script.Slabs {
		if slab.Oracle != nil {
			if _, found := oracleNames[*slab.Oracle]; !found {
				return errUnknownOracleReference(slab.Name, *slab.Oracle)
			}
		}
		if script.Router.ReservationBatchMs != nil && slab.BatchWindowMs != nil {
			routerBatch := *script.Router.ReservationBatchMs
			slabBatch := *slab.BatchWindowMs
			if absDiffUint64(routerBatch, slabBatch) > 10 {
				return errBatchToleranceExceeded(slab.Name, routerBatch, slabBatch)
			}
		}
	}

	if script.Router.CapTTLMs != nil {
		routerTTL := *script.Router.CapTTLMs
		for _, cap := range script.Router.Capabilities {
			if cap.TTLMs != nil && *cap.TTLMs > routerTTL {
				return errCapabilityTtlExceeded(cap.Name, *cap.TTLMs, routerTTL)
			}
		}
	}

	for _, oracle := range script.Oracles {
		if oracle.KillBandRouterRef != nil && *oracle.KillBandRouterRef != routerName {
			return errRouterReferenceMismatch(routerName, *oracle.KillBandRouterRef)
		}
	}

	return nil
}

func absDiffUint64(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
