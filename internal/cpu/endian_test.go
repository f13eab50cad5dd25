package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	// on a little-endian host the byte at offset+1 is the most
	// significant, on a big-endian host the byte at offset is
	assert.Equal(t, uint16(0xAAFF), Combine(LittleEndian, 0xFF, 0xAA))
	assert.Equal(t, uint16(0xFFAA), Combine(BigEndian, 0xFF, 0xAA))
}

func TestSplit(t *testing.T) {
	first, second := Split(LittleEndian, 0xBBCC)
	assert.Equal(t, uint8(0xCC), first)
	assert.Equal(t, uint8(0xBB), second)

	first, second = Split(BigEndian, 0xBBCC)
	assert.Equal(t, uint8(0xBB), first)
	assert.Equal(t, uint8(0xCC), second)
}

func TestSplitCombine(t *testing.T) {
	for _, e := range endians {
		for v := 0; v <= 0xFFFF; v++ {
			first, second := Split(e, uint16(v))
			if got := Combine(e, first, second); got != uint16(v) {
				t.Fatalf("%v: expected 0x%x, got 0x%x", e, v, got)
			}
		}
	}
}

func TestNativeEndian(t *testing.T) {
	r := NewRegisterFile([RegisterFileSize]uint8{})
	assert.Equal(t, NativeEndian, r.Endian())
	assert.Contains(t, []Endian{LittleEndian, BigEndian}, NativeEndian)
}
