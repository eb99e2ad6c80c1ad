package vm

// CurveState is the bonding-curve VM's mutable state.
type CurveState struct {
	Balance      int64
	Liquidity    int64
	Migrated     bool
	MigrateValue int64
}

// CurveVM executes a bonding-curve program against its own state.
type CurveVM struct {
	State CurveState
}

// NewCurveVM returns a CurveVM with zeroed state.
func NewCurveVM() *CurveVM {
	return &CurveVM{}
}

// Execute traverses program in order, mutating v.State per opcode.
// BUY adds to balance, SELL subtracts, ADD_LIQUIDITY adds to liquidity,
// MIGRATE_TO_AMM sets Migrated and overwrites MigrateValue on repeat.
func (v *CurveVM) Execute(program []CurveInstruction) {
	for _, ins := range program {
		switch ins.Opcode {
		case Buy:
			v.State.Balance += ins.Operand
		case Sell:
			v.State.Balance -= ins.Operand
		case AddLiquidity:
			v.State.Liquidity += ins.Operand
		case MigrateToAmm:
			v.State.Migrated = true
			v.State.MigrateValue = ins.Operand
		}
	}
}

// EncodeCurveProgram is the wire encoding a curve program hashes to: the
// concatenation, in instruction order, of (opcode_byte, operand_le8).
// Callers that need to hash this encoding with a pluggable HashProvider
// (see the crypto package) use this directly instead of CurveProgramRoot.
func EncodeCurveProgram(program []CurveInstruction) []byte {
	buf := make([]byte, 0, len(program)*9)
	for _, ins := range program {
		buf = encodeInstruction(buf, byte(ins.Opcode), ins.Operand)
	}
	return buf
}

// CurveProgramRoot is the content-addressed hash of a curve program:
// SHA-256 over EncodeCurveProgram(program).
func CurveProgramRoot(program []CurveInstruction) [32]byte {
	return sum256(EncodeCurveProgram(program))
}
