package mmu

import (
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
)

// WRAM is the internal working RAM. It also serves echo RAM, which
// mirrors the first 7.5kB of WRAM.
type WRAM struct {
	raw ram.RAM
}

// NewWRAM returns a WRAM backed by raw.
func NewWRAM(raw ram.RAM) *WRAM {
	return &WRAM{raw: raw}
}

// offset translates a WRAM or echo address into an offset into the
// backing RAM.
func (w *WRAM) offset(addr uint16) uint16 {
	// are we accessing the echo?
	if addr >= types.EchoStart {
		return addr - types.EchoStart
	}
	return addr - types.WRAMStart
}

func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw.Read(w.offset(addr))
}

func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw.Write(w.offset(addr), v)
}
