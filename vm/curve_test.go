package vm

import "testing"

func TestCurveVMBasicProgram(t *testing.T) {
	v := NewCurveVM()
	v.Execute([]CurveInstruction{
		{Opcode: Buy, Operand: 5},
		{Opcode: Sell, Operand: 2},
		{Opcode: AddLiquidity, Operand: 3},
		{Opcode: MigrateToAmm, Operand: 1},
	})

	if v.State.Balance != 3 {
		t.Errorf("balance = %d, want 3", v.State.Balance)
	}
	if v.State.Liquidity != 3 {
		t.Errorf("liquidity = %d, want 3", v.State.Liquidity)
	}
	if !v.State.Migrated {
		t.Errorf("migrated = false, want true")
	}
	if v.State.MigrateValue != 1 {
		t.Errorf("migrateValue = %d, want 1", v.State.MigrateValue)
	}
}

func TestCurveVMEmptyProgram(t *testing.T) {
	v := NewCurveVM()
	v.Execute(nil)
	if v.State != (CurveState{}) {
		t.Errorf("expected zero state, got %+v", v.State)
	}
}

func TestCurveVMSellBelowZeroGoesNegative(t *testing.T) {
	v := NewCurveVM()
	v.Execute([]CurveInstruction{
		{Opcode: Buy, Operand: 1},
		{Opcode: Sell, Operand: 2},
	})
	if v.State.Balance != -1 {
		t.Errorf("balance = %d, want -1", v.State.Balance)
	}
}

func TestCurveProgramRootDeterministic(t *testing.T) {
	program := []CurveInstruction{
		{Opcode: Buy, Operand: 5},
		{Opcode: Sell, Operand: 2},
	}
	a := CurveProgramRoot(program)
	b := CurveProgramRoot(program)
	if a != b {
		t.Errorf("expected identical roots, got %x and %x", a, b)
	}
}

func TestCurveProgramRootDiffersOnOrder(t *testing.T) {
	p1 := []CurveInstruction{{Opcode: Buy, Operand: 5}, {Opcode: Sell, Operand: 2}}
	p2 := []CurveInstruction{{Opcode: Sell, Operand: 2}, {Opcode: Buy, Operand: 5}}
	if CurveProgramRoot(p1) == CurveProgramRoot(p2) {
		t.Errorf("expected different roots for reordered programs")
	}
}

func TestCurveOpcodeString(t *testing.T) {
	cases := map[CurveOpcode]string{
		Buy:          "BUY",
		Sell:         "SELL",
		AddLiquidity: "ADD_LIQUIDITY",
		MigrateToAmm: "MIGRATE_TO_AMM",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
