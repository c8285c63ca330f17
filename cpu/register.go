package cpu

const (
	REGISTER_COUNT = 8    // Number of general purpose registers.
	REG_SP         = 7    // Register holding the stack pointer.
	STACK_TOP      = 0xf4 // Initial stack pointer.
)

// Registers is the general purpose register file.
//
// REG_SP is only a convention of the PUSH and POP instructions; the
// register file treats it like any other register.
type Registers [REGISTER_COUNT]byte

// Get returns the value of register index.
func (regs *Registers) Get(index int) (value byte, err error) {
	if index < 0 || index >= len(regs) {
		err = ErrRegister(index)
		return
	}

	value = regs[index]
	return
}

// Set assigns value to register index.
func (regs *Registers) Set(index int, value byte) (err error) {
	if index < 0 || index >= len(regs) {
		err = ErrRegister(index)
		return
	}

	regs[index] = value
	return
}

// Reset clears the registers and initializes the stack pointer.
func (regs *Registers) Reset() {
	clear(regs[:])
	regs[REG_SP] = STACK_TOP
}
