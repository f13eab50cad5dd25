package cartridge

import "fmt"

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

// Type is the cartridge type stored at 0x0147. Only the mapper-less
// ROM type is fully described by the memory map, the others have
// their first 32kB mapped and nothing else.
type Type uint8

const (
	ROM           Type = 0x00
	MBC1          Type = 0x01
	MBC1RAM       Type = 0x02
	MBC1RAMBATT   Type = 0x03
	MBC2          Type = 0x05
	MBC2BATT      Type = 0x06
	ROMRAM        Type = 0x08
	ROMRAMBATT    Type = 0x09
	MBC3TIMERBATT Type = 0x0F
	MBC3          Type = 0x11
	MBC3RAMBATT   Type = 0x13
	MBC5          Type = 0x19
	MBC5RAMBATT   Type = 0x1B
)

var typeNames = map[Type]string{
	ROM:           "ROM",
	MBC1:          "MBC1",
	MBC1RAM:       "MBC1+RAM",
	MBC1RAMBATT:   "MBC1+RAM+BATTERY",
	MBC2:          "MBC2",
	MBC2BATT:      "MBC2+BATTERY",
	ROMRAM:        "ROM+RAM",
	ROMRAMBATT:    "ROM+RAM+BATTERY",
	MBC3TIMERBATT: "MBC3+TIMER+BATTERY",
	MBC3:          "MBC3",
	MBC3RAMBATT:   "MBC3+RAM+BATTERY",
	MBC5:          "MBC5",
	MBC5RAMBATT:   "MBC5+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(0x%x)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	SGBFlag        bool
	CartridgeType  Type
	ROMSize        uint
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16
}

// parseHeader parses the 0x50 byte header of a ROM.
func parseHeader(header []byte) (Header, error) {
	h := Header{}

	if len(header) != 0x50 {
		return h, fmt.Errorf("%w: invalid header length: %d", ErrInvalidROM, len(header))
	}

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title, which is padded with zeroes
	title := header[0x34:0x44]
	if h.CartridgeGBMode != FlagOnlyDMG {
		title = header[0x34:0x43]
	}
	for i, c := range title {
		if c == 0 {
			title = title[:i]
			break
		}
	}
	h.Title = string(title)

	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) * (1 << header[0x48])
	h.RAMSize = ramMAP[header[0x49]]

	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	// verify the header checksum, computed over 0x0134-0x014C
	var sum uint8
	for _, b := range header[0x34:0x4D] {
		sum = sum - b - 1
	}
	if sum != h.HeaderChecksum {
		return h, fmt.Errorf("%w: expected 0x%x, got 0x%x", ErrHeaderChecksum, h.HeaderChecksum, sum)
	}

	return h, nil
}

func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB:
		return "CGB"
	case FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %v | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
