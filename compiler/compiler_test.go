package compiler

import (
	"testing"

	"github.com/venuechain/rollup-core/vm"
)

func TestCompileCurveProgram(t *testing.T) {
	script := "BUY 5\nSELL 2\nADD_LIQUIDITY 3\nMIGRATE_TO_AMM 1\n"
	program, err := CompileCurveProgram(script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []vm.CurveInstruction{
		{Opcode: vm.Buy, Operand: 5},
		{Opcode: vm.Sell, Operand: 2},
		{Opcode: vm.AddLiquidity, Operand: 3},
		{Opcode: vm.MigrateToAmm, Operand: 1},
	}
	if len(program) != len(want) {
		t.Fatalf("got %d instructions, want %d", len(program), len(want))
	}
	for i := range want {
		if program[i] != want[i] {
			t.Errorf("instruction %d = %+v, want %+v", i, program[i], want[i])
		}
	}
}

func TestCompileCurveProgramLowercaseMnemonic(t *testing.T) {
	program, err := CompileCurveProgram("buy 5\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program) != 1 || program[0].Opcode != vm.Buy {
		t.Errorf("expected BUY 5, got %+v", program)
	}
}

func TestCompileCurveProgramBlankLinesIgnored(t *testing.T) {
	program, err := CompileCurveProgram("\nBUY 5\n\n   \nSELL 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program) != 2 {
		t.Fatalf("got %d instructions, want 2", len(program))
	}
}

func TestCompileCurveProgramInvalidStatement(t *testing.T) {
	_, err := CompileCurveProgram("BUY 5 extra\n")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T (%v)", err, err)
	}
	if ce.Code != ErrInvalidStatement {
		t.Errorf("code = %v, want %v", ce.Code, ErrInvalidStatement)
	}
	if ce.Msg != "Invalid statement: BUY 5 extra" {
		t.Errorf("msg = %q", ce.Msg)
	}
}

func TestCompileCurveProgramInvalidAmount(t *testing.T) {
	_, err := CompileCurveProgram("BUY abc\n")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T (%v)", err, err)
	}
	if ce.Code != ErrInvalidAmount {
		t.Errorf("code = %v, want %v", ce.Code, ErrInvalidAmount)
	}
	if ce.Msg != "Invalid amount in: BUY abc" {
		t.Errorf("msg = %q", ce.Msg)
	}
}

func TestCompileCurveProgramUnknownCommand(t *testing.T) {
	_, err := CompileCurveProgram("MINT 5\n")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T (%v)", err, err)
	}
	if ce.Code != ErrUnknownCommand {
		t.Errorf("code = %v, want %v", ce.Code, ErrUnknownCommand)
	}
	if ce.Msg != "Unknown command: MINT" {
		t.Errorf("msg = %q", ce.Msg)
	}
}

func TestCompileAssetProgram(t *testing.T) {
	program, err := CompileAssetProgram("MINT 5\nTRANSFER 2\nBURN 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []vm.AssetInstruction{
		{Opcode: vm.Mint, Operand: 5},
		{Opcode: vm.Transfer, Operand: 2},
		{Opcode: vm.Burn, Operand: 1},
	}
	for i := range want {
		if program[i] != want[i] {
			t.Errorf("instruction %d = %+v, want %+v", i, program[i], want[i])
		}
	}
}

func TestAssetPipelineEndToEnd(t *testing.T) {
	program, err := CompileAssetProgram("MINT 100\nTRANSFER 50\nBURN 10\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assetVM := vm.NewAssetVM()
	assetVM.Execute(program)

	if assetVM.State.Supply != 90 {
		t.Errorf("supply = %d, want 90", assetVM.State.Supply)
	}
	if assetVM.State.LastTransfer != 50 {
		t.Errorf("lastTransfer = %d, want 50", assetVM.State.LastTransfer)
	}
}

func TestCompileAssetProgramUnknownCommand(t *testing.T) {
	_, err := CompileAssetProgram("BUY 5\n")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T (%v)", err, err)
	}
	if ce.Msg != "Unknown command: BUY" {
		t.Errorf("msg = %q", ce.Msg)
	}
}
