package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allFlags = []StatusFlags{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func TestFlag(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		var f StatusFlags
		for _, flag := range allFlags {
			f = f.Insert(flag)
			if !f.Has(flag) {
				t.Errorf("expected flag %v to be set, got unset", flag)
			}
		}
		assert.Equal(t, uint8(0xF0), f.Bits())
	})
	t.Run("remove", func(t *testing.T) {
		f := flagMask
		for _, flag := range allFlags {
			f = f.Remove(flag)
			if f.Has(flag) {
				t.Errorf("expected flag %v to be unset, got set", flag)
			}
		}
		assert.True(t, f.IsEmpty())
	})
	t.Run("toggle", func(t *testing.T) {
		f := FlagZero.Toggle(FlagCarry).Toggle(FlagZero)
		assert.Equal(t, FlagCarry, f)
	})
	t.Run("union and intersect", func(t *testing.T) {
		a := FlagZero | FlagHalfCarry
		b := FlagHalfCarry | FlagCarry
		assert.Equal(t, FlagZero|FlagHalfCarry|FlagCarry, a.Union(b))
		assert.Equal(t, FlagHalfCarry, a.Intersect(b))
		assert.True(t, a.Union(b).Has(a))
	})
	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "Z | N | H | C", flagMask.String())
		assert.Equal(t, "Z | C", (FlagZero | FlagCarry).String())
		assert.Equal(t, "(empty)", StatusFlags(0).String())
	})
}

func TestFlagsFromBits(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		f, err := FlagsFromBits(uint8(b))
		if b&0x0F != 0 {
			assert.ErrorIs(t, err, ErrInvalidFlagState, "0x%x", b)
			continue
		}
		assert.NoError(t, err, "0x%x", b)
		assert.Equal(t, uint8(b), f.Bits())
	}

	_, err := FlagsFromBits(0x05)
	var flagErr *InvalidFlagStateError
	if assert.ErrorAs(t, err, &flagErr) {
		assert.Equal(t, uint8(0x05), flagErr.Value)
	}
}
