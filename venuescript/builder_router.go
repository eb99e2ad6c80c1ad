package venuescript

type routerBuilder struct {
	name               string
	collateralAssets   []CollateralSpec
	portfolioMargin    *PortfolioMarginSpec
	capTTLMs           *uint64
	reservationBatchMs *uint64
	capabilities       []CapabilitySpec
}

func newRouterBuilder(name string) *routerBuilder {
	return &routerBuilder{name: name}
}

func (b *routerBuilder) apply(tokens []string, line int) error {
	switch tokens[0] {
	case "COLLATERAL":
		kv := parseKV(tokens)
		asset, ok := kv["asset"]
		if !ok {
			return errMissingField(line, "ROUTER", "asset")
		}
		vaultCapStr, ok := kv["vault_cap"]
		if !ok {
			return errMissingField(line, "ROUTER", "vault_cap")
		}
		vaultCap, err := parseU64(vaultCapStr, line)
		if err != nil {
			return err
		}
		b.collateralAssets = append(b.collateralAssets, CollateralSpec{Asset: asset, VaultCap: vaultCap})

	case "PORTFOLIO_MARGIN":
		kv := parseKV(tokens)
		model, ok := kv["model"]
		if !ok {
			return errMissingField(line, "ROUTER", "model")
		}
		correl, ok := kv["correl_matrix"]
		if !ok {
			return errMissingField(line, "ROUTER", "correl_matrix")
		}
		b.portfolioMargin = &PortfolioMarginSpec{Model: model, CorrelMatrix: correl}

	case "CAP_TTL":
		kv := parseKV(tokens)
		msStr, ok := kv["ms"]
		if !ok {
			return errMissingField(line, "ROUTER", "ms")
		}
		ms, err := parseU64(msStr, line)
		if err != nil {
			return err
		}
		b.capTTLMs = &ms

	case "RESERVATION_BATCH":
		kv := parseKV(tokens)
		msStr, ok := kv["ms"]
		if !ok {
			return errMissingField(line, "ROUTER", "ms")
		}
		ms, err := parseU64(msStr, line)
		if err != nil {
			return err
		}
		b.reservationBatchMs = &ms

	case "CAP":
		kv := parseKV(tokens)
		name, ok := kv["name"]
		if !ok {
			return errMissingField(line, "ROUTER", "name")
		}
		asset, ok := kv["asset"]
		if !ok {
			return errMissingField(line, "ROUTER", "asset")
		}
		limitStr, ok := kv["limit"]
		if !ok {
			return errMissingField(line, "ROUTER", "limit")
		}
		limit, err := parseU128(limitStr, line)
		if err != nil {
			return err
		}
		var ttlMs *uint64
		if ttlStr, ok := kv["ttl_ms"]; ok {
			ttl, err := parseU64(ttlStr, line)
			if err != nil {
				return err
			}
			ttlMs = &ttl
		}
		b.capabilities = append(b.capabilities, CapabilitySpec{Name: name, Asset: asset, Limit: limit, TTLMs: ttlMs})

	default:
		return errUnknownStatement(line, "ROUTER", tokens[0], routerKeywords)
	}
	return nil
}

func (b *routerBuilder) finish(line int) (RouterBlock, error) {
	if len(b.collateralAssets) == 0 {
		return RouterBlock{}, errMissingField(line, "ROUTER", "COLLATERAL")
	}
	return RouterBlock{
		Name:               b.name,
		CollateralAssets:   b.collateralAssets,
		PortfolioMargin:    b.portfolioMargin,
		CapTTLMs:           b.capTTLMs,
		ReservationBatchMs: b.reservationBatchMs,
		Capabilities:       b.capabilities,
	}, nil
}
