package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one line of a text script after tokenizing but before it is
// mapped to an instruction set: an uppercased mnemonic plus a signed
// operand.
type Command struct {
	Opcode  string
	Operand int64
}

// parseScript splits script into non-blank lines and tokenizes each into
// a Command. Every line must carry exactly two whitespace-separated
// fields: a mnemonic and a base-10 signed operand. The mnemonic is
// case-folded to upper; it is not validated against any opcode set here,
// that happens when a Command is compiled against a specific instruction
// set.
func parseScript(script string) ([]Command, error) {
	var commands []Command
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return nil, newError(ErrInvalidStatement, fmt.Sprintf("Invalid statement: %s", trimmed))
		}
		operand, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, newError(ErrInvalidAmount, fmt.Sprintf("Invalid amount in: %s", trimmed))
		}
		commands = append(commands, Command{
			Opcode:  strings.ToUpper(fields[0]),
			Operand: operand,
		})
	}
	return commands, nil
}
