// Package io provides the observation channels of the LS-8 emulator.
//
// The CPU reports PRN values and its halt notice to a Channel. Channels
// only observe; they never feed data back into the CPU.
package io

// Channel defines the interface for all observation channels.
type Channel interface {
	// Print reports the numeric value of a register.
	Print(value byte) error
	// Halt reports that the CPU has halted.
	Halt() error
}
