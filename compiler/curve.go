package compiler

import (
	"fmt"

	"github.com/venuechain/rollup-core/vm"
)

// CompileCurveProgram parses script and maps each line onto a
// bonding-curve instruction. The mnemonics are BUY, SELL, ADD_LIQUIDITY,
// and MIGRATE_TO_AMM.
func CompileCurveProgram(script string) ([]vm.CurveInstruction, error) {
	commands, err := parseScript(script)
	if err != nil {
		return nil, err
	}

	program := make([]vm.CurveInstruction, 0, len(commands))
	for _, c := range commands {
		op, ok := curveOpcode(c.Opcode)
		if !ok {
			return nil, newError(ErrUnknownCommand, fmt.Sprintf("Unknown command: %s", c.Opcode))
		}
		program = append(program, vm.CurveInstruction{Opcode: op, Operand: c.Operand})
	}
	return program, nil
}

func curveOpcode(mnemonic string) (vm.CurveOpcode, bool) {
	switch mnemonic {
	case "BUY":
		return vm.Buy, true
	case "SELL":
		return vm.Sell, true
	case "ADD_LIQUIDITY":
		return vm.AddLiquidity, true
	case "MIGRATE_TO_AMM":
		return vm.MigrateToAmm, true
	default:
		return 0, false
	}
}
