package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	s.Write16(0xBEEF)
	s.WriteData([]byte{1, 2, 3})

	assert.Equal(t, []byte{0x42, 0xEF, 0xBE, 1, 2, 3}, s.Bytes())

	assert.Equal(t, uint8(0x42), s.Read8())
	assert.Equal(t, uint16(0xBEEF), s.Read16())
	p := make([]byte, 3)
	s.ReadData(p)
	assert.Equal(t, []byte{1, 2, 3}, p)
	assert.NoError(t, s.Err())
	assert.Zero(t, s.Remaining())
}

func TestState_Short(t *testing.T) {
	s := StateFromBytes([]byte{0x01})
	assert.Zero(t, s.Read16())
	assert.ErrorIs(t, s.Err(), ErrShortState)

	// the error is sticky
	assert.Zero(t, s.Read8())
	assert.ErrorIs(t, s.Err(), ErrShortState)

	s.ResetPosition()
	assert.NoError(t, s.Err())
	assert.Equal(t, uint8(0x01), s.Read8())
}
