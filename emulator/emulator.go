// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs LS-8 programs: a CPU, its program listing, and
// its observation tape.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

const (
	DEFAULT_TICK_LIMIT = 0 // No limit on executed instructions.
)

var _emulator_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%d", cpu.REGISTER_COUNT),
}

// Emulator state. CPU + program listing + observation tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape receiving PRN and HLT observations.

	TickLimit int // Maximum instructions executed by Run, or 0 for no limit.

	Monitor func(emu *Emulator) // If set, called before each instruction executes.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:       cpu.NewCpu(),
		Program:   &cpu.Program{},
		TickLimit: DEFAULT_TICK_LIMIT,
	}

	emu.Cpu.Output = &emu.Tape

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return func(yield func(key, value string) bool) {
		for _, seq := range []iter.Seq2[string, string]{
			maps.All(_emulator_defines),
			emu.Cpu.Defines(),
		} {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Reset the CPU, and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.Tape.Rewind()

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emu: reset, %d lines", len(emu.Program.Lines))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: pc, Err: err}
		}
	}()

	if emu.Monitor != nil && !emu.Cpu.Halted {
		emu.Monitor(emu)
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the program halts, faults, or exceeds
// the tick limit.
func (emu *Emulator) Run() (err error) {
	for {
		if emu.TickLimit > 0 && emu.Cpu.Ticks >= emu.TickLimit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Address: emu.Cpu.Pc, Err: ErrTickLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
