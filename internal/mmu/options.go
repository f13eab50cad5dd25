package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that configures a MemoryMap
// before its segments are allocated.
type Opt func(m *MemoryMap)

// WithSegment sets the initial contents of a segment. Contents
// shorter than the segment are copied to its start.
func WithSegment(seg types.Segment, data []byte) Opt {
	return func(m *MemoryMap) {
		if !seg.Valid() {
			m.err = fmt.Errorf("invalid segment %v", seg)
			return
		}
		m.initial[seg] = data
	}
}

// WithROM sets the initial contents of cartridge ROM.
func WithROM(rom []byte) Opt {
	return WithSegment(types.SegmentROM, rom)
}

// WithCartridge maps the first 32kB of the cartridge into ROM.
func WithCartridge(c *cartridge.Cartridge) Opt {
	return func(m *MemoryMap) {
		m.initial[types.SegmentROM] = c.Bank0()
		m.title = c.Title()
	}
}

// WithInterruptEnable sets the initial value of the interrupt
// enable register.
func WithInterruptEnable(v uint8) Opt {
	return func(m *MemoryMap) {
		m.interrupt = v
	}
}

// WithLogger sets the logger used to report unmapped accesses.
func WithLogger(l log.Logger) Opt {
	return func(m *MemoryMap) {
		m.Log = l
	}
}
