package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(DEFAULT_TICK_LIMIT, emu.TickLimit)
	assert.Equal(byte(cpu.STACK_TOP), emu.Cpu.Register[cpu.REG_SP])
}

func doAssemble(emu *Emulator, program []string, t *testing.T) (output *bytes.Buffer) {
	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	output = &bytes.Buffer{}
	emu.Tape.Output = output
	emu.Tape.Quiet = true

	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}

	return
}

func doRunSingle(emu *Emulator, program []string, t *testing.T) (output []byte) {
	assert := assert.New(t)

	out := doAssemble(emu, program, t)

	for _, line := range emu.Program.Lines {
		here := program[line.LineNo-1]
		assert.Equal(line.LineNo, emu.LineNo(), here)
		assert.Equal(line.Address, emu.Cpu.Pc, here)

		done, err := emu.Tick()
		if err != nil {
			t.Log(emu.Cpu.String())
			t.Fatalf("%v", err)
		}
		assert.Equal(line.Address+len(line.Codes), emu.Cpu.Pc, here)
		assert.Equal(line.Words[0] == "HLT", done, here)
	}

	output = out.Bytes()
	return
}

func TestEmulatorPrint8(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"LDI R0,8",
		"PRN R0",
		"HLT",
	}

	output := doRunSingle(emu, program, t)
	assert.Equal("8\n", string(output))
	assert.Equal(6, emu.Pc())
	assert.Equal(3, emu.Ticks())
	assert.True(emu.Cpu.Halted)

	// Ticking a halted emulator is done, and harmless.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(6, emu.Pc())
}

func TestEmulatorStack(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"LDI R0, 1",
		"LDI R1, 2",
		"PUSH R0",
		"PUSH R1",
		"ADD R0, R1",
		"PRN R0",
		"POP R0",
		"POP R1",
		"PRN R0",
		"PRN R1",
		"LDI R2, STACK_TOP",
		"HLT",
	}

	output := doRunSingle(emu, program, t)
	assert.Equal("3\n2\n1\n", string(output))
	assert.Equal(byte(cpu.STACK_TOP), emu.Cpu.Register[cpu.REG_SP])
	assert.Equal(emu.Cpu.Register[2], emu.Cpu.Register[cpu.REG_SP])
	assert.Equal([]byte{3, 2, 1}, emu.Tape.Values)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doAssemble(emu, []string{
		"LDI R0, 9",
		"LDI R1, 3",
		"MUL R0, R1",
		"PRN R0",
		"HLT",
	}, t)

	assert.NoError(emu.Run())
	assert.Equal([]byte{27}, emu.Tape.Values)

	// Reset reloads the program and forgets the tape.
	assert.NoError(emu.Reset())
	assert.Empty(emu.Tape.Values)
	assert.Equal(0, emu.Pc())
	assert.NoError(emu.Run())
	assert.Equal([]byte{27}, emu.Tape.Values)
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	output := doAssemble(emu, []string{
		"LDI R0, 1",
		"; divide by zero",
		"DIV R0, R1",
		"PRN R0",
		"HLT",
	}, t)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrDivisionByZero)

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(3, rerr.LineNo)
		assert.Equal(3, rerr.Address)
	}

	assert.Equal(3, emu.Pc())
	assert.Empty(output.String())
}

func TestEmulatorUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	output := doAssemble(emu, []string{
		".byte 0b11111111",
		"HLT",
	}, t)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrOpcode(0))

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(1, rerr.LineNo)
		assert.Equal(0, rerr.Address)
	}
	assert.Equal(0, emu.Pc())
	assert.Empty(output.String())
}

func TestEmulatorNoSource(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Tape.Output = &bytes.Buffer{}

	// Without a listing, faults report only the address.
	emu.Cpu.Memory[0] = 0xff
	_, err := emu.Tick()

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(0, rerr.LineNo)
		assert.Equal(f("address 0x%02x %v", 0, cpu.ErrOpcode(0xff)), rerr.Error())
	}
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doAssemble(emu, []string{
		"LDI R0, 1",
		"LDI R0, 2",
		"LDI R0, 3",
		"HLT",
	}, t)

	emu.TickLimit = 2
	err := emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(2, emu.Ticks())
	assert.Equal(byte(2), emu.Cpu.Register[0])

	emu.TickLimit = 4
	assert.NoError(emu.Run())
	assert.True(emu.Cpu.Halted)
}

func TestEmulatorTooLarge(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = &cpu.Program{
		Lines: []cpu.Line{
			{LineNo: 1, Address: 0, Codes: make([]byte, cpu.MEMORY_SIZE+1)},
		},
	}

	err := emu.Reset()
	assert.ErrorIs(err, cpu.ErrProgramSize(0))
	assert.Equal(0, emu.Ticks())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("8", defines["REGISTER_COUNT"])
	assert.Equal("256", defines["MEMORY_SIZE"])
	assert.Equal("r7", defines["SP"])

	// Early exit from the iterator.
	count := 0
	for range emu.Defines() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestEmulatorMonitor(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doAssemble(emu, []string{
		"LDI R0, 1",
		"PRN R0",
		"HLT",
	}, t)

	var pcs []int
	emu.Monitor = func(emu *Emulator) {
		pcs = append(pcs, emu.Pc())
	}

	assert.NoError(emu.Run())
	assert.Equal([]int{0, 3, 5}, pcs)

	// The monitor sees each instruction before the tick limit stops the run.
	pcs = nil
	assert.NoError(emu.Reset())
	emu.TickLimit = 1
	err := emu.Run()
	assert.ErrorIs(err, ErrTickLimit)

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(2, rerr.LineNo)
		assert.Equal(3, rerr.Address)
	}
	assert.Equal([]int{0}, pcs)
}
