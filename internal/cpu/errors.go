package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when a word operation is used on a
	// double-word register or vice versa, or when copying between
	// registers of different sizes.
	ErrSizeMismatch = errors.New("register size mismatch")
	// ErrInvalidFlagState is returned when the lower nibble of the F
	// register is not zero.
	ErrInvalidFlagState = errors.New("invalid flag state")
)

// SizeMismatchError describes which operation was attempted on
// which register(s). Other is only meaningful for copies.
type SizeMismatchError struct {
	Op       string
	Register Register
	Other    Register
}

func (e *SizeMismatchError) Error() string {
	if e.Op == opCopy {
		return fmt.Sprintf("cannot copy from %v to %v, registers are not the same size", e.Other, e.Register)
	}
	return fmt.Sprintf("cannot %s register %v (%d bytes)", e.Op, e.Register, e.Register.Size())
}

func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}

// InvalidFlagStateError carries the offending F register value.
type InvalidFlagStateError struct {
	Value uint8
}

func (e *InvalidFlagStateError) Error() string {
	return fmt.Sprintf("lower four bits in F register are non-zero: 0x%x", e.Value)
}

func (e *InvalidFlagStateError) Unwrap() error {
	return ErrInvalidFlagState
}
