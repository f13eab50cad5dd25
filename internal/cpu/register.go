package cpu

import "fmt"

// Register names one of the CPU's registers. A, B, C, D, E, F, H
// and L are 8-bit registers, AF, BC, DE, HL, SP and PC are 16-bit.
type Register uint8

const (
	// A is the accumulator register.
	A Register = iota
	B
	C
	D
	E
	// F is the status flags register.
	F
	H
	L
	AF
	BC
	DE
	HL
	// SP is the stack pointer.
	SP
	// PC is the program counter.
	PC

	registerCount = int(PC) + 1
)

// registerLayout maps each register to its offset in the register
// file and its size in bytes.
//
//	 _____________
//	| 15-8 | 7-0  |
//	|------|------|
//	|   A  |  F   |  0-1
//	|   B  |  C   |  2-3
//	|   D  |  E   |  4-5
//	|   H  |  L   |  6-7
//	|      SP     |  8-9
//	|      PC     |  10-11
//	+-------------+
//
// The 8-bit register sharing an offset with a pair (F, C, E, L)
// occupies the pair's lower byte, its sibling the byte after it.
var registerLayout = [registerCount]struct {
	offset uint8
	size   uint8
	name   string
}{
	A:  {1, 1, "A"},
	B:  {3, 1, "B"},
	C:  {2, 1, "C"},
	D:  {5, 1, "D"},
	E:  {4, 1, "E"},
	F:  {0, 1, "F"},
	H:  {7, 1, "H"},
	L:  {6, 1, "L"},
	AF: {0, 2, "AF"},
	BC: {2, 2, "BC"},
	DE: {4, 2, "DE"},
	HL: {6, 2, "HL"},
	SP: {8, 2, "SP"},
	PC: {10, 2, "PC"},
}

// Registers lists every register.
var Registers = [registerCount]Register{A, B, C, D, E, F, H, L, AF, BC, DE, HL, SP, PC}

// Offset returns the index of the register's first byte in the
// register file.
func (r Register) Offset() int {
	return int(registerLayout[r].offset)
}

// Size returns the size of the register in bytes, 1 or 2.
func (r Register) Size() int {
	return int(registerLayout[r].size)
}

// IsPair returns true for the 16-bit registers.
func (r Register) IsPair() bool {
	return r.Size() == 2
}

func (r Register) String() string {
	if int(r) >= registerCount {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}
	return registerLayout[r].name
}
