package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// LoadImage reads a binary program image.
//
// Each line holds at most one binary literal of up to 8 bits, optionally
// followed by a '#' comment. Blank and comment-only lines are skipped.
// Bytes are placed at consecutive addresses starting from 0.
func LoadImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, "#", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrParseNumber(line)
			return
		}

		var words []string
		if len(text_comment) > 1 {
			words = strings.Fields(text_comment[1])
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Codes:   []byte{byte(value)},
		})
		address++
	}

	err = scanner.Err()

	return
}
