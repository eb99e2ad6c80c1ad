package compiler

import (
	"fmt"

	"github.com/venuechain/rollup-core/vm"
)

// CompileAssetProgram parses script and maps each line onto an asset/ledger
// instruction. The mnemonics are MINT, TRANSFER, and BURN.
func CompileAssetProgram(script string) ([]vm.AssetInstruction, error) {
	commands, err := parseScript(script)
	if err != nil {
		return nil, err
	}

	program := make([]vm.AssetInstruction, 0, len(commands))
	for _, c := range commands {
		op, ok := assetOpcode(c.Opcode)
		if !ok {
			return nil, newError(ErrUnknownCommand, fmt.Sprintf("Unknown command: %s", c.Opcode))
		}
		program = append(program, vm.AssetInstruction{Opcode: op, Operand: c.Operand})
	}
	return program, nil
}

func assetOpcode(mnemonic string) (vm.AssetOpcode, bool) {
	switch mnemonic {
	case "MINT":
		return vm.Mint, true
	case "TRANSFER":
		return vm.Transfer, true
	case "BURN":
		return vm.Burn, true
	default:
		return 0, false
	}
}
