// Package cartridge loads Game Boy cartridge ROM images and parses
// their header. Bank switching is not modelled, only the first 32kB
// of a cartridge is exposed for mapping.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Bank0Size is the number of ROM bytes visible at 0x0000 - 0x7FFF
// without a mapper.
const Bank0Size = 0x8000

var (
	// ErrInvalidROM is returned for ROM images too short to hold a
	// header.
	ErrInvalidROM = errors.New("invalid ROM")
	// ErrHeaderChecksum is returned when the header checksum at 0x014D
	// does not match the header.
	ErrHeaderChecksum = errors.New("header checksum mismatch")
)

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom    []byte
	header Header
}

// NewCartridge parses the header of rom and returns a Cartridge.
func NewCartridge(rom []byte, l log.Logger) (*Cartridge, error) {
	if l == nil {
		l = log.NewNullLogger()
	}
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a header", ErrInvalidROM, len(rom))
	}

	// parse the cartridge header (0x0100 - 0x014F)
	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}
	l.Infof("cartridge: %s", header.String())
	if len(rom) > Bank0Size {
		l.Debugf("cartridge: %d bytes beyond 0x%x are not mapped", len(rom)-Bank0Size, Bank0Size)
	}

	return &Cartridge{
		rom:    rom,
		header: header,
	}, nil
}

// Load reads a ROM image from disk, decompressing it if necessary,
// and returns a Cartridge.
func Load(filename string, l log.Logger) (*Cartridge, error) {
	rom, err := utils.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewCartridge(rom, l)
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title stored in the header.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Bank0 returns a copy of the first 32kB of the ROM, zero padded
// if the image is smaller.
func (c *Cartridge) Bank0() []byte {
	b := make([]byte, Bank0Size)
	copy(b, c.rom)
	return b
}

// Size returns the size of the ROM image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}
