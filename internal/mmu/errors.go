package mmu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedAddress is returned when accessing an address that
	// has no storage behind it (0xFEA0 - 0xFEFF).
	ErrUnmappedAddress = errors.New("unmapped address")
	// ErrSegmentOverflow is returned when the initial contents of a
	// segment are larger than the segment.
	ErrSegmentOverflow = errors.New("segment overflow")
)

// UnmappedAddressError records the address and direction of an
// access to an unmapped address.
type UnmappedAddressError struct {
	Address uint16
	Write   bool
}

func (e *UnmappedAddressError) Error() string {
	if e.Write {
		return fmt.Sprintf("cannot write to memory location: 0x%x", e.Address)
	}
	return fmt.Sprintf("cannot read memory from location: 0x%x", e.Address)
}

func (e *UnmappedAddressError) Unwrap() error {
	return ErrUnmappedAddress
}
