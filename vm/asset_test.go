package vm

import "testing"

func TestAssetVMBasicExecution(t *testing.T) {
	v := NewAssetVM()
	v.Execute([]AssetInstruction{
		{Opcode: Mint, Operand: 5},
		{Opcode: Transfer, Operand: 2},
		{Opcode: Burn, Operand: 1},
	})

	if v.State.Supply != 4 {
		t.Errorf("supply = %d, want 4", v.State.Supply)
	}
	if v.State.LastTransfer != 2 {
		t.Errorf("lastTransfer = %d, want 2", v.State.LastTransfer)
	}
}

func TestAssetVMTransferDoesNotTouchSupply(t *testing.T) {
	v := NewAssetVM()
	v.Execute([]AssetInstruction{
		{Opcode: Mint, Operand: 10},
		{Opcode: Transfer, Operand: 7},
	})
	if v.State.Supply != 10 {
		t.Errorf("supply = %d, want 10", v.State.Supply)
	}
}

func TestAssetVMLastTransferKeepsMostRecent(t *testing.T) {
	v := NewAssetVM()
	v.Execute([]AssetInstruction{
		{Opcode: Transfer, Operand: 3},
		{Opcode: Transfer, Operand: 9},
	})
	if v.State.LastTransfer != 9 {
		t.Errorf("lastTransfer = %d, want 9", v.State.LastTransfer)
	}
}

func TestAssetProgramRootMatchesAcrossEqualPrograms(t *testing.T) {
	program := []AssetInstruction{
		{Opcode: Mint, Operand: 5},
		{Opcode: Burn, Operand: 1},
	}
	a := AssetProgramRoot(program)
	b := AssetProgramRoot(append([]AssetInstruction{}, program...))
	if a != b {
		t.Errorf("expected identical roots, got %x and %x", a, b)
	}
}

func TestAssetOpcodeString(t *testing.T) {
	cases := map[AssetOpcode]string{
		Mint:     "MINT",
		Transfer: "TRANSFER",
		Burn:     "BURN",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
