package emulator

import (
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrTickLimit = translate.NewError("tick limit exceeded")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo  int // Source line of the faulting instruction, or 0 if unknown.
	Address int // Address of the faulting instruction.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address 0x%02x %v", err.Address, err.Err)
	}
	return f("line %d address 0x%02x %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
