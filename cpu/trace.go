package cpu

import (
	"fmt"
	"strings"
)

// Trace returns a single line summary of the CPU state: the program
// counter, the next three bytes of memory, and the register bank.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Memory.Peek(cpu.Pc),
		cpu.Memory.Peek(cpu.Pc+1),
		cpu.Memory.Peek(cpu.Pc+2),
	)

	for _, reg := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", reg)
	}

	return sb.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "halt",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "sp",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "ir":
			op := Opcode(cpu.Ir)
			strval = fmt.Sprintf("%08b %v", cpu.Ir, op)
		case "halt":
			strval = "false"
			if cpu.Halted {
				strval = "true"
			}
		case "sp":
			sp := cpu.Register[REG_SP]
			strval = fmt.Sprintf("%02X -> %02X", sp, cpu.Memory.Peek(int(sp)))
		default:
			val := cpu.Register[reg[1]-'0']
			strval = fmt.Sprintf("%02X (%d)", val, val)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
