package venuescript

type oracleBuilder struct {
	name              string
	heartbeatMs       *uint64
	killBandRouterRef *string
}

func newOracleBuilder(name string) *oracleBuilder {
	return &oracleBuilder{name: name}
}

func (b *oracleBuilder) apply(tokens []string, line int) error {
	switch tokens[0] {
	case "HEARTBEAT":
		kv := parseKV(tokens)
		msStr, ok := kv["ms"]
		if !ok {
			return errMissingField(line, "ORACLE", "ms")
		}
		ms, err := parseU64(msStr, line)
		if err != nil {
			return err
		}
		b.heartbeatMs = &ms

	case "KILL_BAND_SYNC":
		kv := parseKV(tokens)
		routerRef, ok := kv["router_ref"]
		if !ok {
			return errMissingField(line, "ORACLE", "router_ref")
		}
		b.killBandRouterRef = &routerRef

	default:
		return errUnknownStatement(line, "ORACLE", tokens[0], oracleKeywords)
	}
	return nil
}

func (b *oracleBuilder) finish(line int) (OracleBlock, error) {
	if b.heartbeatMs == nil {
		return OracleBlock{}, errMissingField(line, "ORACLE", "HEARTBEAT")
	}
	return OracleBlock{
		Name:              b.name,
		HeartbeatMs:       *b.heartbeatMs,
		KillBandRouterRef: b.killBandRouterRef,
	}, nil
}
