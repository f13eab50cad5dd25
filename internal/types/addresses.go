package types

import "fmt"

// Segment identifies one of the independently stored regions of
// the Game Boy's 64kB address space. The echo RAM region and the
// interrupt enable register are not segments, the former mirrors
// WRAM and the latter is a single byte.
type Segment uint8

const (
	// SegmentROM is cartridge ROM (bank 0 and the fixed view of bank 1).
	SegmentROM Segment = iota
	// SegmentVRAM is video RAM.
	SegmentVRAM
	// SegmentExternalRAM is the RAM present on the cartridge rather
	// than the Game Boy itself.
	SegmentExternalRAM
	// SegmentWRAM is the internal working RAM.
	SegmentWRAM
	// SegmentOAM is object attribute memory, where the sprites to be
	// drawn on screen are written.
	SegmentOAM
	// SegmentIO holds the hardware I/O registers.
	SegmentIO
	// SegmentHRAM is "high" RAM. It was intended as stack space, but
	// is mostly used as a fast access zero page thanks to LDH.
	SegmentHRAM

	// SegmentCount is the number of segments.
	SegmentCount = int(SegmentHRAM) + 1
)

const (
	// ROMStart - ROMEnd is the cartridge ROM (32kB).
	ROMStart uint16 = 0x0000
	ROMEnd   uint16 = 0x7FFF
	// VRAMStart - VRAMEnd is video RAM (8kB).
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	// ExternalRAMStart - ExternalRAMEnd is cartridge RAM (8kB).
	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	// WRAMStart - WRAMEnd is internal working RAM (8kB).
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	// EchoStart - EchoEnd mirrors WRAMStart - 0xDDFF (7.5kB).
	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFDFF
	// OAMStart - OAMEnd is the sprite attribute table (160B).
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	// UnusableStart - UnusableEnd has no storage (96B).
	UnusableStart uint16 = 0xFEA0
	UnusableEnd   uint16 = 0xFEFF
	// IOStart - IOEnd is the hardware I/O registers (128B).
	IOStart uint16 = 0xFF00
	IOEnd   uint16 = 0xFF7F
	// HRAMStart - HRAMEnd is high RAM (127B).
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE

	// IE is the address of the interrupt enable register.
	//
	//  Bit 0: V-Blank  Interrupt Enable  (INT 40h)  (1=Enable)
	//  Bit 1: LCD STAT Interrupt Enable  (INT 48h)  (1=Enable)
	//  Bit 2: Timer    Interrupt Enable  (INT 50h)  (1=Enable)
	//  Bit 3: Serial   Interrupt Enable  (INT 58h)  (1=Enable)
	//  Bit 4: Joypad   Interrupt Enable  (INT 60h)  (1=Enable)
	IE uint16 = 0xFFFF
)

var segmentBounds = [SegmentCount]struct {
	start, end uint16
	name       string
}{
	SegmentROM:         {ROMStart, ROMEnd, "ROM"},
	SegmentVRAM:        {VRAMStart, VRAMEnd, "VRAM"},
	SegmentExternalRAM: {ExternalRAMStart, ExternalRAMEnd, "ERAM"},
	SegmentWRAM:        {WRAMStart, WRAMEnd, "WRAM"},
	SegmentOAM:         {OAMStart, OAMEnd, "OAM"},
	SegmentIO:          {IOStart, IOEnd, "IO"},
	SegmentHRAM:        {HRAMStart, HRAMEnd, "HRAM"},
}

// Segments lists every segment in address order.
var Segments = [SegmentCount]Segment{
	SegmentROM,
	SegmentVRAM,
	SegmentExternalRAM,
	SegmentWRAM,
	SegmentOAM,
	SegmentIO,
	SegmentHRAM,
}

// Start returns the first address of the segment.
func (s Segment) Start() uint16 {
	return segmentBounds[s].start
}

// End returns the last address of the segment.
func (s Segment) End() uint16 {
	return segmentBounds[s].end
}

// Size returns the number of bytes stored by the segment.
func (s Segment) Size() int {
	return 1 + int(s.End()-s.Start())
}

// Contains reports whether the address lies within the segment.
func (s Segment) Contains(address uint16) bool {
	return address >= s.Start() && address <= s.End()
}

// Valid reports whether s names one of the seven segments.
func (s Segment) Valid() bool {
	return int(s) < SegmentCount
}

func (s Segment) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Segment(%d)", uint8(s))
	}
	return segmentBounds[s].name
}

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. Each address in the 64kB
// space is mapped to the handlers of the storage behind it.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}
