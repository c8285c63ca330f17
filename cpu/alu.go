package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_SUB = AluOp(1) // sub
	ALU_OP_MUL = AluOp(2) // mul
	ALU_OP_DIV = AluOp(3) // div
)

// Alu performs the requested ALU action on registers a and b, and
// stores the result into register a.
//
// Results wrap modulo 256. Division truncates, and a zero divisor
// leaves the registers unchanged.
func (regs *Registers) Alu(op AluOp, a, b int) (err error) {
	input, err := regs.Get(a)
	if err != nil {
		return
	}

	value, err := regs.Get(b)
	if err != nil {
		return
	}

	var output byte
	switch op {
	case ALU_OP_ADD:
		output = input + value
	case ALU_OP_SUB:
		output = input - value
	case ALU_OP_MUL:
		output = input * value
	case ALU_OP_DIV:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input / value
	default:
		err = ErrAluUnsupported
		return
	}

	regs[a] = output

	return
}
