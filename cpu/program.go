package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is a line of program source with the bytes it generated.
type Line struct {
	LineNo  int      // Source line number.
	Address int      // Memory address of the first generated byte.
	Words   []string // Source words of the line.
	Codes   []byte   // Generated instruction and data bytes.
}

// Program is a memory image annotated with its source lines.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug returns the source line that generated the byte at address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+len(line.Codes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes in the program image.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		end := line.Address + len(line.Codes)
		if end > size {
			size = end
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for address, code := range prog.Codes() {
		bins[address] = code
	}

	return
}

// Codes iterates over every generated byte and its address.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return func(yield func(address int, code byte) bool) {
		for _, line := range prog.Lines {
			for n, code := range line.Codes {
				if !yield(line.Address+n, code) {
					return
				}
			}
		}
	}
}

// WriteImage writes the program as a binary image, one byte per line,
// annotated with the source that generated it.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		for n, code := range line.Codes {
			text := fmt.Sprintf("%08b", code)
			if n == 0 && len(line.Words) != 0 {
				text += " # " + strings.Join(line.Words, " ")
			}
			_, err = fmt.Fprintln(w, text)
			if err != nil {
				return
			}
		}
	}

	return
}
