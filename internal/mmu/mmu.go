// Package mmu provides the memory map of the Game Boy. The 64kB
// address space is split into independently stored segments, a
// single interrupt enable byte at 0xFFFF, and echo RAM which is
// redirected to internal RAM.
//
// The only addresses without storage are 0xFEA0 - 0xFEFF. Reads and
// writes there fail with ErrUnmappedAddress rather than emulating
// open bus behaviour.
//
// A MemoryMap is not safe for concurrent use.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MemoryMap handles all memory reads and writes to the Game Boy's
// 64kB of memory, and dispatches them to the segment that backs
// the address.
type MemoryMap struct {
	// 64kB address space, nil for unmapped addresses
	raw [0x10000]*types.Address

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	// 0xFF00 - 0xFF7F - I/O Registers (128B)
	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	segments [types.SegmentCount]ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFFFF - interrupt enable register
	interrupt uint8

	Log log.Logger

	initial [types.SegmentCount][]byte
	title   string
	err     error
}

// NewMemoryMap returns a new MemoryMap. Segments are zeroed unless
// initial contents are provided through opts.
func NewMemoryMap(opts ...Opt) (*MemoryMap, error) {
	m := &MemoryMap{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.err != nil {
		return nil, m.err
	}

	for _, seg := range types.Segments {
		r, err := ram.NewRAMWithData(seg.Size(), m.initial[seg])
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrSegmentOverflow, seg, err)
		}
		m.segments[seg] = r
	}
	m.initial = [types.SegmentCount][]byte{}
	m.wRAM = NewWRAM(m.segments[types.SegmentWRAM])

	m.init()

	if m.title != "" {
		m.Log.Infof("mapped cartridge %s", m.title)
	}

	return m, nil
}

func (m *MemoryMap) init() {
	// setup raw memory
	addresses := [types.SegmentCount]types.Address{}
	for _, seg := range types.Segments {
		r := m.segments[seg]
		addresses[seg] = types.Address{
			Read:  readOffset(r.Read, seg.Start()),
			Write: writeOffset(r.Write, seg.Start()),
		}
	}
	wram := &types.Address{Read: m.wRAM.Read, Write: m.wRAM.Write}
	ie := &types.Address{
		Read: func(uint16) uint8 {
			return m.interrupt
		},
		Write: func(_ uint16, v uint8) {
			m.interrupt = v
		},
	}

	// 0xFFFF - interrupt enable register
	m.raw[types.IE] = ie

	for _, seg := range types.Segments {
		handler := &addresses[seg]
		if seg == types.SegmentWRAM {
			handler = wram
		}
		for i := int(seg.Start()); i <= int(seg.End()); i++ {
			if m.raw[i] == nil {
				m.raw[i] = handler
			}
		}
	}

	// 0xE000 - 0xFDFF - echo RAM (7.5kB)
	for i := int(types.EchoStart); i <= int(types.EchoEnd); i++ {
		if m.raw[i] == nil {
			m.raw[i] = wram
		}
	}

	// 0xFEA0 - 0xFEFF - unusable memory (96B) is left unmapped
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

// Read returns the value at the given address.
func (m *MemoryMap) Read(address uint16) (uint8, error) {
	a := m.raw[address]
	if a == nil {
		m.Log.Debugf("read from unmapped address 0x%x", address)
		return 0, &UnmappedAddressError{Address: address}
	}
	return a.Read(address), nil
}

// Write writes the value to the given address.
func (m *MemoryMap) Write(address uint16, value uint8) error {
	a := m.raw[address]
	if a == nil {
		m.Log.Debugf("write 0x%x to unmapped address 0x%x", value, address)
		return &UnmappedAddressError{Address: address, Write: true}
	}
	a.Write(address, value)
	return nil
}

// Mapped reports whether the address has storage behind it.
func (m *MemoryMap) Mapped(address uint16) bool {
	return m.raw[address] != nil
}

// Segment returns a copy of a segment's contents.
func (m *MemoryMap) Segment(seg types.Segment) []byte {
	if !seg.Valid() {
		return nil
	}
	return ram.Bytes(m.segments[seg])
}

// InterruptEnable returns the interrupt enable register.
func (m *MemoryMap) InterruptEnable() uint8 {
	return m.interrupt
}

// Save writes every segment, followed by the interrupt enable
// register, to the state.
func (m *MemoryMap) Save(s *types.State) {
	for _, seg := range types.Segments {
		s.WriteData(ram.Bytes(m.segments[seg]))
	}
	s.Write8(m.interrupt)
}

// Load restores the memory map from the state. Nothing is modified
// if the state is too short.
func (m *MemoryMap) Load(s *types.State) {
	var buffers [types.SegmentCount][]byte
	for _, seg := range types.Segments {
		buffers[seg] = make([]byte, seg.Size())
		s.ReadData(buffers[seg])
	}
	ie := s.Read8()
	if s.Err() != nil {
		return
	}

	for _, seg := range types.Segments {
		r := m.segments[seg]
		for i, v := range buffers[seg] {
			r.Write(uint16(i), v)
		}
	}
	m.interrupt = ie
}

var _ types.Stater = (*MemoryMap)(nil)
