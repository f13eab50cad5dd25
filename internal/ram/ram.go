// Package ram provides a fixed-size block of RAM, used as the
// backing store of each memory segment.
package ram

import "fmt"

// RAM represents a block of RAM addressed from zero.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Size() int
}

type ram struct {
	data []uint8
}

// NewRAM returns a new zeroed RAM of the given size.
func NewRAM(size int) RAM {
	return &ram{
		data: make([]uint8, size),
	}
}

// NewRAMWithData returns a RAM of the given size with data copied
// to its start. It fails if data is longer than the RAM.
func NewRAMWithData(size int, data []byte) (RAM, error) {
	if len(data) > size {
		return nil, fmt.Errorf("%d bytes do not fit in %d bytes of RAM", len(data), size)
	}
	r := &ram{
		data: make([]uint8, size),
	}
	copy(r.data, data)
	return r, nil
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Size returns the number of bytes in the RAM.
func (r *ram) Size() int {
	return len(r.data)
}

// Bytes returns a copy of the RAM's contents.
func Bytes(r RAM) []byte {
	b := make([]byte, r.Size())
	for i := range b {
		b[i] = r.Read(uint16(i))
	}
	return b
}
