// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command ls8 runs LS-8 programs.
//
// Usage:
//
//	ls8 [flags] program.ls8
//	ls8 -a [flags] program.asm
//
// The exit status is 0 when the program halts, 1 when the CPU faults, and
// 2 when the program cannot be read or the arguments are invalid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

const (
	EXIT_OK    = 0
	EXIT_FAULT = 1
	EXIT_USAGE = 2
)

type options struct {
	assemble bool
	save     bool
	verbose  bool
	trace    bool
	limit    int
	output   string
	lang     string
	path     string
}

func parseFlags(args []string) (opts options, err error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	fs.BoolVar(&opts.assemble, "a", false, "Program is assembly source")
	fs.BoolVar(&opts.save, "s", false, "Write the program image to output, do not execute")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose mode")
	fs.BoolVar(&opts.trace, "t", false, "Trace each instruction to stderr")
	fs.IntVar(&opts.limit, "n", emulator.DEFAULT_TICK_LIMIT, "Maximum instructions to execute (0 is unlimited)")
	fs.StringVar(&opts.output, "o", "-", "Output")
	fs.StringVar(&opts.lang, "lang", "", "Message language (BCP 47 tag)")

	err = fs.Parse(args[1:])
	if err != nil {
		return
	}

	if fs.NArg() != 1 {
		err = fmt.Errorf("%v: expected one program, got %v", args[0], fs.Args())
		return
	}

	opts.path = fs.Arg(0)

	return
}

// loadProgram reads a program image, or assembles a program source.
func loadProgram(opts options, emu *emulator.Emulator) (prog *cpu.Program, err error) {
	inf, err := os.Open(opts.path)
	if err != nil {
		return
	}
	defer inf.Close()

	if !opts.assemble {
		prog, err = cpu.LoadImage(inf)
		return
	}

	asm := &cpu.Assembler{Verbose: opts.verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(inf)

	return
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		log.Print(err)
		return EXIT_USAGE
	}

	if len(opts.lang) != 0 {
		err = translate.SetLanguage(strings.Split(opts.lang, ",")...)
		if err != nil {
			log.Printf("-lang %v: %v", opts.lang, err)
			return EXIT_USAGE
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.TickLimit = opts.limit

	prog, err := loadProgram(opts, emu)
	if err != nil {
		log.Printf("%v: %v", opts.path, err)
		return EXIT_USAGE
	}

	out := stdout
	if opts.output != "-" {
		ouf, err := os.Create(opts.output)
		if err != nil {
			log.Printf("%v: %v", opts.output, err)
			return EXIT_USAGE
		}
		defer ouf.Close()
		out = ouf
	}

	if opts.save {
		err = prog.WriteImage(out)
		if err != nil {
			log.Printf("%v: %v", opts.output, err)
			return EXIT_FAULT
		}
		return EXIT_OK
	}

	emu.Program = prog
	emu.Tape.Output = out
	if opts.trace {
		emu.Monitor = func(emu *emulator.Emulator) {
			fmt.Fprintln(stderr, emu.Cpu.Trace())
		}
	}

	err = emu.Reset()
	if err != nil {
		log.Printf("%v: %v", opts.path, err)
		return EXIT_USAGE
	}

	err = emu.Run()

	if err != nil {
		log.Printf("%v: %v", opts.path, err)
		if opts.verbose {
			log.Printf("\n%v", emu.Cpu.String())
		}
		return EXIT_FAULT
	}

	return EXIT_OK
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
