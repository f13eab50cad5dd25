package cpu

import (
	"strings"

	"github.com/thelolagemann/gbcore/internal/types"
)

// StatusFlags is the set of status flags held in the upper nibble
// of the F register. The lower nibble is always zero.
type StatusFlags uint8

const (
	// FlagZero is set when the result of a math operation is zero,
	// or two values match when using the CP instruction.
	FlagZero StatusFlags = types.Bit7
	// FlagSubtract is set if a subtraction was performed in the last
	// math instruction.
	FlagSubtract StatusFlags = types.Bit6
	// FlagHalfCarry is set if a carry occurred from the lower nibble
	// in the last math operation.
	FlagHalfCarry StatusFlags = types.Bit5
	// FlagCarry is set if a carry occurred from the last math
	// operation, or if register A is the smaller value when executing
	// the CP instruction.
	FlagCarry StatusFlags = types.Bit4

	flagMask StatusFlags = FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
)

var flagNames = [...]struct {
	flag StatusFlags
	name string
}{
	{FlagZero, "Z"},
	{FlagSubtract, "N"},
	{FlagHalfCarry, "H"},
	{FlagCarry, "C"},
}

// FlagsFromBits converts a raw F register value into StatusFlags,
// failing if any bit of the lower nibble is set.
func FlagsFromBits(b uint8) (StatusFlags, error) {
	if StatusFlags(b)&^flagMask != 0 {
		return 0, &InvalidFlagStateError{Value: b}
	}
	return StatusFlags(b), nil
}

// Bits returns the raw F register value of the flags.
func (f StatusFlags) Bits() uint8 {
	return uint8(f & flagMask)
}

// Has returns true if every flag in flag is set.
func (f StatusFlags) Has(flag StatusFlags) bool {
	return f&flag == flag
}

// Insert returns f with flag set.
func (f StatusFlags) Insert(flag StatusFlags) StatusFlags {
	return (f | flag) & flagMask
}

// Remove returns f with flag cleared.
func (f StatusFlags) Remove(flag StatusFlags) StatusFlags {
	return f &^ flag
}

// Toggle returns f with flag inverted.
func (f StatusFlags) Toggle(flag StatusFlags) StatusFlags {
	return (f ^ flag) & flagMask
}

// Union returns the flags set in either f or other.
func (f StatusFlags) Union(other StatusFlags) StatusFlags {
	return (f | other) & flagMask
}

// Intersect returns the flags set in both f and other.
func (f StatusFlags) Intersect(other StatusFlags) StatusFlags {
	return f & other
}

// IsEmpty returns true if no flag is set.
func (f StatusFlags) IsEmpty() bool {
	return f&flagMask == 0
}

func (f StatusFlags) String() string {
	var names []string
	for _, n := range flagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "(empty)"
	}
	return strings.Join(names, " | ")
}
