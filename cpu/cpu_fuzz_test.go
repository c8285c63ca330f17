package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

// modelTick computes the expected result of executing op on a copy of
// the register bank and memory.
func modelTick(regs Registers, mem Memory, op Opcode, a, b byte) (Registers, Memory, []byte, error) {
	var printed []byte

	switch op {
	case OP_HLT:
	case OP_LDI:
		if a >= REGISTER_COUNT {
			return regs, mem, nil, ErrRegister(a)
		}
		regs[a] = b
	case OP_PRN:
		if a >= REGISTER_COUNT {
			return regs, mem, nil, ErrRegister(a)
		}
		printed = append(printed, regs[a])
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		if a >= REGISTER_COUNT {
			return regs, mem, nil, ErrRegister(a)
		}
		if b >= REGISTER_COUNT {
			return regs, mem, nil, ErrRegister(b)
		}
		x, y := int(regs[a]), int(regs[b])
		switch op {
		case OP_ADD:
			regs[a] = byte((x + y) % 256)
		case OP_SUB:
			regs[a] = byte((x - y + 256) % 256)
		case OP_MUL:
			regs[a] = byte((x * y) % 256)
		case OP_DIV:
			if y == 0 {
				return regs, mem, nil, ErrDivisionByZero
			}
			regs[a] = byte(x / y)
		}
	case OP_PUSH:
		if a >= REGISTER_COUNT {
			return regs, mem, nil, ErrRegister(a)
		}
		sp := int(regs[REG_SP])
		if sp == 0 {
			return regs, mem, nil, ErrAddress(-1)
		}
		mem[sp-1] = regs[a]
		regs[REG_SP] = byte(sp - 1)
	case OP_POP:
		sp := int(regs[REG_SP])
		if sp == MEMORY_SIZE-1 {
			return regs, mem, nil, ErrAddress(MEMORY_SIZE)
		}
		if a >= REGISTER_COUNT {
			return regs, mem, nil, ErrRegister(a)
		}
		regs[a] = mem[sp]
		regs[REG_SP] = byte(sp + 1)
	}

	return regs, mem, printed, nil
}

func FuzzCpu(f *testing.F) {
	for _, op := range Opcodes {
		f.Add(byte(op), byte(0), byte(1), byte(7), byte(3), byte(STACK_TOP))
		f.Add(byte(op), byte(7), byte(7), byte(0xff), byte(0), byte(1))
	}
	f.Add(byte(0xff), byte(0), byte(0), byte(0), byte(0), byte(0))
	f.Add(byte(OP_DIV), byte(0), byte(1), byte(5), byte(0), byte(STACK_TOP))
	f.Add(byte(OP_PUSH), byte(0), byte(0), byte(1), byte(0), byte(0))
	f.Add(byte(OP_POP), byte(0), byte(0), byte(1), byte(0), byte(0xff))
	f.Add(byte(OP_LDI), byte(8), byte(0), byte(1), byte(0), byte(STACK_TOP))

	f.Fuzz(func(t *testing.T, ir, a, b, x, y, sp byte) {
		assert := assert.New(t)

		tape := &io.Tape{Output: &bytes.Buffer{}, Quiet: true}

		cpu := NewCpu()
		cpu.Output = tape
		cpu.Register = Registers{x, y, x ^ y, x + y, x - y, x * y, ^x, sp}
		for n := range cpu.Memory {
			cpu.Memory[n] = byte(n) ^ x
		}
		cpu.Memory[0] = ir
		cpu.Memory[1] = a
		cpu.Memory[2] = b

		before := *cpu

		err := cpu.Tick()

		op, decode_err := Decode(ir)
		if decode_err != nil {
			assert.ErrorIs(err, ErrOpcode(0))
			assert.Equal(before.Register, cpu.Register)
			assert.Equal(before.Memory, cpu.Memory)
			assert.Equal(0, cpu.Pc)
			assert.Empty(tape.Values)
			return
		}

		regs, mem, printed, expected := modelTick(before.Register, before.Memory, op, a, b)
		if expected != nil {
			assert.ErrorIs(err, expected)
			assert.Equal(before.Register, cpu.Register)
			assert.Equal(before.Memory, cpu.Memory)
			assert.Equal(0, cpu.Pc)
			assert.False(cpu.Halted)
			assert.Empty(tape.Values)
			return
		}

		assert.NoError(err)
		assert.Equal(regs, cpu.Register)
		assert.Equal(mem, cpu.Memory)
		assert.Equal(printed, tape.Values)
		assert.Equal(op.Length(), cpu.Pc)
		assert.Equal(op == OP_HLT, cpu.Halted)
		assert.Equal(1, cpu.Ticks)
	})
}
