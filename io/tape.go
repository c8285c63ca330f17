package io

import (
	"fmt"
	"io"
)

// Tape writes observations to a byte stream, one per line.
//
// Values are written in decimal, independent of locale, so that tape
// output can be compared by machine. The halt notice is translated.
type Tape struct {
	Output io.Writer
	Quiet  bool   // If set, the halt notice is not written.
	Values []byte // Every value printed since the last Rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind forgets all recorded values.
func (tc *Tape) Rewind() {
	tc.Values = tc.Values[:0]
}

// Print writes value in decimal followed by a newline.
func (tc *Tape) Print(value byte) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	tc.Values = append(tc.Values, value)

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}

// Halt writes the halt notice.
func (tc *Tape) Halt() (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	if tc.Quiet {
		return
	}

	_, err = io.WriteString(tc.Output, f("halted")+"\n")
	return
}
