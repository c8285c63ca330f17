package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Channel is an observation channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("0x%x", STACK_TOP),
	"SP":          fmt.Sprintf("r%d", REG_SP),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Output Channel // Receives PRN values and the halt notice, if set.

	Memory   Memory    // Main memory.
	Register Registers // Register bank.
	Pc       int       // Address of the next instruction to fetch.
	Ir       byte      // Most recently fetched instruction byte.
	Halted   bool      // Set once HLT has executed.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears memory and registers.
// - Sets the stack pointer to STACK_TOP.
// - Zeros the program counter and statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load installs a program image into memory starting at address 0.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrProgramSize(len(image))
		return
	}

	copy(cpu.Memory[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Fetch reads the instruction at the program counter, and its operands.
func (cpu *Cpu) Fetch() (op Opcode, operands []byte, err error) {
	ir, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}
	cpu.Ir = ir

	op, err = Decode(ir)
	if err != nil {
		return
	}

	operands = make([]byte, op.Operands())
	for n := range operands {
		operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
//
// The program counter only advances when the instruction completes
// without a fault.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	op, operands, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v  %v %v", cpu.Trace(), op, operands)
	}

	err = cpu.Execute(op, operands...)
	if err != nil {
		return
	}

	cpu.Pc += op.Length()
	cpu.Ticks++

	return
}

// Run executes instructions until the CPU halts or faults.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(op Opcode, operands ...byte) (err error) {
	_, err = Decode(byte(op))
	if err != nil {
		return
	}

	switch {
	case len(operands) < op.Operands():
		err = ErrOpcodeValueMissing
		return
	case len(operands) > op.Operands():
		err = ErrOpcodeExtraArgs
		return
	}

	switch op {
	case OP_HLT:
		if cpu.Output != nil {
			err = cpu.Output.Halt()
			if err != nil {
				return
			}
		}
		cpu.Halted = true
	case OP_LDI:
		err = cpu.Register.Set(int(operands[0]), operands[1])
	case OP_PRN:
		var value byte
		value, err = cpu.Register.Get(int(operands[0]))
		if err != nil {
			return
		}
		if cpu.Output != nil {
			err = cpu.Output.Print(value)
		}
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		alu, _ := op.AluOp()
		err = cpu.Register.Alu(alu, int(operands[0]), int(operands[1]))
	case OP_PUSH:
		err = cpu.push(int(operands[0]))
	case OP_POP:
		err = cpu.pop(int(operands[0]))
	default:
		err = ErrOpcode(op)
	}

	return
}

// push decrements the stack pointer, then stores register reg at the new
// top of stack.
func (cpu *Cpu) push(reg int) (err error) {
	value, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	sp := int(cpu.Register[REG_SP]) - 1
	err = cpu.Memory.Write(sp, value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = byte(sp)

	return
}

// pop loads register reg from the top of stack, then increments the
// stack pointer.
func (cpu *Cpu) pop(reg int) (err error) {
	sp := int(cpu.Register[REG_SP])
	if sp+1 >= len(cpu.Memory) {
		err = ErrAddress(sp + 1)
		return
	}

	value, err := cpu.Memory.Read(sp)
	if err != nil {
		return
	}

	err = cpu.Register.Set(reg, value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = byte(sp + 1)

	return
}
