// Package vm implements two deterministic, stack-free instruction sets:
// the bonding-curve VM and the asset/ledger VM. Both are pure state
// transducers, a straight traversal over an instruction vector with no
// branching and no halting condition. Operands wrap in two's complement;
// neither VM performs overflow checks.
package vm

import "encoding/binary"

// CurveOpcode is an opcode of instruction set A (the bonding-curve VM).
type CurveOpcode byte

const (
	Buy CurveOpcode = iota
	Sell
	AddLiquidity
	MigrateToAmm
)

func (op CurveOpcode) String() string {
	switch op {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case AddLiquidity:
		return "ADD_LIQUIDITY"
	case MigrateToAmm:
		return "MIGRATE_TO_AMM"
	default:
		return "UNKNOWN"
	}
}

// CurveInstruction is one instruction of the bonding-curve ISA: an
// opcode plus a signed 64-bit operand.
type CurveInstruction struct {
	Opcode  CurveOpcode
	Operand int64
}

// AssetOpcode is an opcode of instruction set B (the asset/ledger VM).
type AssetOpcode byte

const (
	Mint AssetOpcode = iota
	Transfer
	Burn
)

func (op AssetOpcode) String() string {
	switch op {
	case Mint:
		return "MINT"
	case Transfer:
		return "TRANSFER"
	case Burn:
		return "BURN"
	default:
		return "UNKNOWN"
	}
}

// AssetInstruction is one instruction of the asset ISA: an opcode plus
// a signed 64-bit operand.
type AssetInstruction struct {
	Opcode  AssetOpcode
	Operand int64
}

// encodeInstruction appends the fixed-width wire encoding
// (opcode_byte, operand_little_endian_8) to dst.
func encodeInstruction(dst []byte, opcode byte, operand int64) []byte {
	dst = append(dst, opcode)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(operand))
	return append(dst, buf[:]...)
}
