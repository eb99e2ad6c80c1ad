package vm

// AssetState is the asset/ledger VM's mutable state: total supply and the
// amount moved by the most recent TRANSFER (zero if none has executed yet).
type AssetState struct {
	Supply       int64
	LastTransfer int64
}

// AssetVM executes an asset program against its own state.
type AssetVM struct {
	State AssetState
}

// NewAssetVM returns an AssetVM with zeroed state.
func NewAssetVM() *AssetVM {
	return &AssetVM{}
}

// Execute traverses program in order, mutating v.State per opcode. MINT
// adds to supply, BURN subtracts from supply, TRANSFER records its operand
// as LastTransfer without touching supply.
func (v *AssetVM) Execute(program []AssetInstruction) {
	for _, ins := range program {
		switch ins.Opcode {
		case Mint:
			v.State.Supply += ins.Operand
		case Burn:
			v.State.Supply -= ins.Operand
		case Transfer:
			v.State.LastTransfer = ins.Operand
		}
	}
}

// AssetProgramRoot is the content-addressed hash of an asset program:
// SHA-256 over the concatenation, in instruction order, of
// (opcode_byte, operand_le8).
func AssetProgramRoot(program []AssetInstruction) [32]byte {
	buf := make([]byte, 0, len(program)*9)
	for _, ins := range program {
		buf = encodeInstruction(buf, byte(ins.Opcode), ins.Operand)
	}
	return sum256(buf)
}
