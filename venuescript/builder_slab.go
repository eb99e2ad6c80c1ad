package venuescript

type slabBuilder struct {
	name          string
	makerClass    *MakerClassSpec
	matching      *MatchingSpec
	fee           *FeeSpec
	risk          *RiskSpec
	antiToxicity  *AntiToxicitySpec
	batchWindowMs *uint64
	oracle        *string
}

func newSlabBuilder(name string) *slabBuilder {
	return &slabBuilder{name: name}
}

func (b *slabBuilder) apply(tokens []string, line int) error {
	switch tokens[0] {
	case "MAKER_CLASS":
		if len(tokens) < 2 {
			return errSyntax(line, "MAKER_CLASS requires a class name")
		}
		class := tokens[1]
		kv := parseKV(tokens)
		allowanceStr, ok := kv["allowance"]
		if !ok {
			return errMissingField(line, "SLAB", "allowance")
		}
		allowance, err := parseU64(allowanceStr, line)
		if err != nil {
			return err
		}
		b.makerClass = &MakerClassSpec{Class: class, Allowance: allowance}

	case "MATCHING":
		kv := parseKV(tokens)
		fifoStr, ok := kv["fifo"]
		if !ok {
			return errMissingField(line, "SLAB", "fifo")
		}
		pendingStr, ok := kv["pending_promotion"]
		if !ok {
			return errMissingField(line, "SLAB", "pending_promotion")
		}
		fifo, err := parseBool(fifoStr, line)
		if err != nil {
			return err
		}
		pending, err := parseBool(pendingStr, line)
		if err != nil {
			return err
		}
		b.matching = &MatchingSpec{Fifo: fifo, PendingPromotion: pending}

	case "FEE":
		kv := parseKV(tokens)
		makerStr, ok := kv["maker_bps"]
		if !ok {
			return errMissingField(line, "SLAB", "maker_bps")
		}
		takerStr, ok := kv["taker_bps"]
		if !ok {
			return errMissingField(line, "SLAB", "taker_bps")
		}
		delayStr, ok := kv["rebate_delay_ms"]
		if !ok {
			return errMissingField(line, "SLAB", "rebate_delay_ms")
		}
		maker, err := parseU16(makerStr, line)
		if err != nil {
			return err
		}
		taker, err := parseU16(takerStr, line)
		if err != nil {
			return err
		}
		delay, err := parseU64(delayStr, line)
		if err != nil {
			return err
		}
		b.fee = &FeeSpec{MakerBps: maker, TakerBps: taker, RebateDelayMs: delay}

	case "RISK":
		kv := parseKV(tokens)
		imrStr, ok := kv["imr_bps"]
		if !ok {
			return errMissingField(line, "SLAB", "imr_bps")
		}
		mmrStr, ok := kv["mmr_bps"]
		if !ok {
			return errMissingField(line, "SLAB", "mmr_bps")
		}
		imr, err := parseU16(imrStr, line)
		if err != nil {
			return err
		}
		mmr, err := parseU16(mmrStr, line)
		if err != nil {
			return err
		}
		b.risk = &RiskSpec{ImrBps: imr, MmrBps: mmr}

	case "ANTI_TOXICITY":
		kv := parseKV(tokens)
		killBandStr, ok := kv["kill_band_bps"]
		if !ok {
			return errMissingField(line, "SLAB", "kill_band_bps")
		}
		jitStr, ok := kv["jit_penalty"]
		if !ok {
			return errMissingField(line, "SLAB", "jit_penalty")
		}
		killBand, err := parseU16(killBandStr, line)
		if err != nil {
			return err
		}
		jit, err := parseBool(jitStr, line)
		if err != nil {
			return err
		}
		var argTaxBps *uint16
		if argStr, ok := kv["arg_tax_bps"]; ok {
			v, err := parseU16(argStr, line)
			if err != nil {
				return err
			}
			argTaxBps = &v
		}
		b.antiToxicity = &AntiToxicitySpec{KillBandBps: killBand, JitPenalty: jit, ArgTaxBps: argTaxBps}

	case "BATCH_WINDOW":
		kv := parseKV(tokens)
		msStr, ok := kv["ms"]
		if !ok {
			return errMissingField(line, "SLAB", "ms")
		}
		ms, err := parseU64(msStr, line)
		if err != nil {
			return err
		}
		b.batchWindowMs = &ms

	case "ORACLE_LINK":
		kv := parseKV(tokens)
		id, ok := kv["id"]
		if !ok {
			return errMissingField(line, "SLAB", "id")
		}
		b.oracle = &id

	default:
		return errUnknownStatement(line, "SLAB", tokens[0], slabKeywords)
	}
	return nil
}

func (b *slabBuilder) finish(line int) (SlabBlock, error) {
	if b.makerClass == nil {
		return SlabBlock{}, errMissingField(line, "SLAB", "MAKER_CLASS")
	}
	if b.fee == nil {
		return SlabBlock{}, errMissingField(line, "SLAB", "FEE")
	}
	if b.risk == nil {
		return SlabBlock{}, errMissingField(line, "SLAB", "RISK")
	}
	return SlabBlock{
		Name:          b.name,
		MakerClass:    *b.makerClass,
		Matching:      b.matching,
		Fee:           *b.fee,
		Risk:          *b.risk,
		AntiToxicity:  b.antiToxicity,
		BatchWindowMs: b.batchWindowMs,
		Oracle:        b.oracle,
	}, nil
}
