package venuescript

import "fmt"

// ErrorKind distinguishes the named ScriptError variants.
type ErrorKind string

const (
	KindSyntax                  ErrorKind = "syntax"
	KindUnexpectedToken         ErrorKind = "unexpected_token"
	KindDuplicateRouter         ErrorKind = "duplicate_router"
	KindMissingRouter           ErrorKind = "missing_router"
	KindMissingBlockTerminator  ErrorKind = "missing_block_terminator"
	KindDuplicateSlab           ErrorKind = "duplicate_slab"
	KindDuplicateOracle         ErrorKind = "duplicate_oracle"
	KindUnknownStatement        ErrorKind = "unknown_statement"
	KindMissingField            ErrorKind = "missing_field"
	KindUnknownOracleReference  ErrorKind = "unknown_oracle_reference"
	KindRouterReferenceMismatch ErrorKind = "router_reference_mismatch"
	KindBatchToleranceExceeded  ErrorKind = "batch_tolerance_exceeded"
	KindCapabilityTtlExceeded   ErrorKind = "capability_ttl_exceeded"
)

// ScriptError is a recoverable parse or validation error. Exactly one
// named Kind is set per instance; the remaining fields populated are
// whichever ones that kind carries. Suggestion is additive: a
// fuzzy-matched candidate keyword, set only on UnknownStatement errors
// and on the Syntax error for an unrecognized block head, and it never
// changes which Kind is returned.
type ScriptError struct {
	Kind ErrorKind

	Line int

	Message string // Syntax

	Token string // UnexpectedToken

	Name string // DuplicateSlab, DuplicateOracle

	Block     string // UnknownStatement, MissingField
	Statement string // UnknownStatement
	Field     string // MissingField

	Slab   string // UnknownOracleReference, BatchToleranceExceeded
	Oracle string // UnknownOracleReference

	Router    string // RouterReferenceMismatch
	Reference string // RouterReferenceMismatch

	RouterMs uint64 // BatchToleranceExceeded
	SlabMs   uint64 // BatchToleranceExceeded

	Capability string // CapabilityTtlExceeded
	TTL        uint64 // CapabilityTtlExceeded
	RouterTTL  uint64 // CapabilityTtlExceeded

	Suggestion string
}

func (e *ScriptError) Error() string {
	switch e.Kind {
	case KindSyntax:
		return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Message)
	case KindUnexpectedToken:
		return fmt.Sprintf("unexpected token '%s' on line %d", e.Token, e.Line)
	case KindDuplicateRouter:
		return fmt.Sprintf("duplicate router block declared on line %d", e.Line)
	case KindMissingRouter:
		return "script is missing a ROUTER block"
	case KindMissingBlockTerminator:
		return "unterminated block in script"
	case KindDuplicateSlab:
		return fmt.Sprintf("duplicate SLAB block named '%s'", e.Name)
	case KindDuplicateOracle:
		return fmt.Sprintf("duplicate ORACLE block named '%s'", e.Name)
	case KindUnknownStatement:
		return fmt.Sprintf("unknown statement '%s' in %s block on line %d", e.Statement, e.Block, e.Line)
	case KindMissingField:
		return fmt.Sprintf("missing field '%s' for %s block on line %d", e.Field, e.Block, e.Line)
	case KindUnknownOracleReference:
		return fmt.Sprintf("slab '%s' references unknown oracle '%s'", e.Slab, e.Oracle)
	case KindRouterReferenceMismatch:
		return fmt.Sprintf("oracle kill band references '%s' but router is named '%s'", e.Reference, e.Router)
	case KindBatchToleranceExceeded:
		return fmt.Sprintf("slab '%s' batch window %dms exceeds router batch %dms by more than 10ms", e.Slab, e.SlabMs, e.RouterMs)
	case KindCapabilityTtlExceeded:
		return fmt.Sprintf("capability '%s' ttl %dms exceeds router CAP_TTL %dms", e.Capability, e.TTL, e.RouterTTL)
	default:
		return "unknown script error"
	}
}

func errSyntax(line int, message string) *ScriptError {
	return &ScriptError{Kind: KindSyntax, Line: line, Message: message}
}

func errUnexpectedToken(line int, token string) *ScriptError {
	return &ScriptError{Kind: KindUnexpectedToken, Line: line, Token: token}
}

func errDuplicateRouter(line int) *ScriptError {
	return &ScriptError{Kind: KindDuplicateRouter, Line: line}
}

func errMissingRouter() *ScriptError {
	return &ScriptError{Kind: KindMissingRouter}
}

func errMissingBlockTerminator() *ScriptError {
	return &ScriptError{Kind: KindMissingBlockTerminator}
}

func errDuplicateSlab(name string) *ScriptError {
	return &ScriptError{Kind: KindDuplicateSlab, Name: name}
}

func errDuplicateOracle(name string) *ScriptError {
	return &ScriptError{Kind: KindDuplicateOracle, Name: name}
}

func errUnknownStatement(line int, block, statement string, candidates []string) *ScriptError {
	return &ScriptError{
		Kind:       KindUnknownStatement,
		Line:       line,
		Block:      block,
		Statement:  statement,
		Suggestion: suggest(statement, candidates),
	}
}

func errMissingField(line int, block, field string) *ScriptError {
	return &ScriptError{Kind: KindMissingField, Line: line, Block: block, Field: field}
}

func errUnknownOracleReference(slab, oracle string) *ScriptError {
	return &ScriptError{Kind: KindUnknownOracleReference, Slab: slab, Oracle: oracle}
}

func errRouterReferenceMismatch(router, reference string) *ScriptError {
	return &ScriptError{Kind: KindRouterReferenceMismatch, Router: router, Reference: reference}
}

func errBatchToleranceExceeded(slab string, routerMs, slabMs uint64) *ScriptError {
	return &ScriptError{Kind: KindBatchToleranceExceeded, Slab: slab, RouterMs: routerMs, SlabMs: slabMs}
}

func errCapabilityTtlExceeded(capability string, ttl, routerTTL uint64) *ScriptError {
	return &ScriptError{Kind: KindCapabilityTtlExceeded, Capability: capability, TTL: ttl, RouterTTL: routerTTL}
}
