package cpu

import (
	"slices"
	"strings"
)

// Opcode is one of the defined LS-8 instructions.
//
// The top two bits of an opcode are the number of operand bytes that
// follow it in memory.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_SUB  = Opcode(0b10100001) // SUB
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_DIV  = Opcode(0b10100011) // DIV
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
)

// Opcodes lists every defined opcode.
var Opcodes = [...]Opcode{
	OP_HLT, OP_LDI, OP_PRN,
	OP_ADD, OP_SUB, OP_MUL, OP_DIV,
	OP_PUSH, OP_POP,
}

var _opcode_alu = map[Opcode]AluOp{
	OP_ADD: ALU_OP_ADD,
	OP_SUB: ALU_OP_SUB,
	OP_MUL: ALU_OP_MUL,
	OP_DIV: ALU_OP_DIV,
}

// Decode returns the opcode of an instruction byte.
func Decode(ir byte) (op Opcode, err error) {
	op = Opcode(ir)
	if !slices.Contains(Opcodes[:], op) {
		err = ErrOpcode(ir)
	}

	return
}

// Lookup returns the opcode for a mnemonic, ignoring case.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for _, op = range Opcodes {
		if op.String() == mnemonic {
			ok = true
			return
		}
	}

	op = 0
	return
}

// Length returns the total number of bytes, 1 to 4, of the instruction
// starting with byte ir.
func Length(ir byte) int {
	return int((ir>>6)&0b11) + 1
}

// Length returns the total number of bytes of the instruction.
func (op Opcode) Length() int {
	return Length(byte(op))
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return op.Length() - 1
}

// AluOp returns the ALU operation performed by the opcode, if any.
func (op Opcode) AluOp() (alu AluOp, ok bool) {
	alu, ok = _opcode_alu[op]
	return
}
