package cpu

const (
	MEMORY_SIZE = 256 // Number of addressable memory cells.
)

// Memory is the flat byte-addressed RAM of the CPU.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	value = mem[address]
	return
}

// Write stores value at address.
func (mem *Memory) Write(address int, value byte) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	mem[address] = value
	return
}

// Peek returns the byte at address, or zero if address is outside memory.
func (mem *Memory) Peek(address int) byte {
	value, _ := mem.Read(address)
	return value
}

// Reset zeroes all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
