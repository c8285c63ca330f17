// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The CPU consists of a program counter (PC), 256 bytes of memory, eight
// 8-bit general-purpose registers (r0-r7), and an ALU. Register r7 is the
// stack pointer by convention, and starts at STACK_TOP. Each instruction
// byte encodes its operand count in its top two bits, so an instruction
// occupies one, two, or three bytes of memory.
//
// Programs are either binary images (one 8-bit binary literal per line)
// read by LoadImage, or mnemonic source translated by the Assembler.
package cpu
