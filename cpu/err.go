package cpu

import (
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = translate.NewError("cpu halted")
	ErrDivisionByZero = translate.NewError("division by zero")
	ErrAluUnsupported = translate.NewError("unsupported alu operation")

	// Loader and assembler errors
	ErrEquateSyntax       = translate.NewError(".equ syntax")
	ErrEquateDuplicate    = translate.NewError(".equ duplicated")
	ErrOpcodeExtraArgs    = translate.NewError("excessive arguments")
	ErrOpcodeValueMissing = translate.NewError("value missing")
	ErrRegisterInvalid    = translate.NewError("register invalid")
	ErrInstructionInvalid = translate.NewError("instruction invalid")
	ErrImmediateRange     = translate.NewError("immediate out of range")
)

// ErrOpcode is an instruction byte that is not one of the defined opcodes.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("unknown opcode 0b%08b", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is a memory access outside of the memory bounds.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of bounds", int(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrRegister is a register index outside of the register file.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register %d invalid", int(er))
}

func (er ErrRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrRegister)
	return
}

// ErrProgramSize is a program image that does not fit in memory.
type ErrProgramSize int

func (ep ErrProgramSize) Error() string {
	return f("program of %d bytes exceeds memory of %d bytes", int(ep), MEMORY_SIZE)
}

func (ep ErrProgramSize) Is(err error) (ok bool) {
	_, ok = err.(ErrProgramSize)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
