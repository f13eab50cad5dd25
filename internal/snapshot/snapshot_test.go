package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newSystem(t *testing.T) (*cpu.RegisterFile, *mmu.MemoryMap) {
	t.Helper()
	mem, err := mmu.NewMemoryMap()
	require.NoError(t, err)
	return cpu.NewRegisterFile([cpu.RegisterFileSize]uint8{}), mem
}

func TestSaveRestore(t *testing.T) {
	regs, mem := newSystem(t)
	require.NoError(t, regs.WriteDWord(cpu.PC, 0x0150))
	require.NoError(t, regs.WriteDWord(cpu.SP, 0xFFFE))
	require.NoError(t, mem.Write(0xC010, 0x55))
	require.NoError(t, mem.Write(0xFF80, 0x42))
	require.NoError(t, mem.Write(types.IE, 0x1F))

	b, err := Save(regs, mem)
	require.NoError(t, err)
	assert.Equal(t, "GBCS", string(b[:4]))

	restoredRegs, restoredMem := newSystem(t)
	require.NoError(t, Restore(b, restoredRegs, restoredMem))

	assert.Equal(t, regs.Bytes(), restoredRegs.Bytes())
	for _, seg := range types.Segments {
		assert.Equal(t, mem.Segment(seg), restoredMem.Segment(seg), "segment %v", seg)
	}
	assert.Equal(t, uint8(0x1F), restoredMem.InterruptEnable())
	assert.Equal(t, Checksum(regs, mem), Checksum(restoredRegs, restoredMem))
}

func TestRestore_Invalid(t *testing.T) {
	regs, mem := newSystem(t)
	b, err := Save(regs, mem)
	require.NoError(t, err)

	t.Run("short", func(t *testing.T) {
		assert.ErrorIs(t, Restore(b[:3], regs, mem), ErrInvalidSnapshot)
	})
	t.Run("magic", func(t *testing.T) {
		bad := append([]byte{}, b...)
		bad[0] = 'X'
		assert.ErrorIs(t, Restore(bad, regs, mem), ErrInvalidSnapshot)
	})
	t.Run("version", func(t *testing.T) {
		bad := append([]byte{}, b...)
		bad[4] = version + 1
		assert.ErrorIs(t, Restore(bad, regs, mem), ErrInvalidSnapshot)
	})
	t.Run("checksum", func(t *testing.T) {
		bad := append([]byte{}, b...)
		bad[5] ^= 0xFF
		assert.ErrorIs(t, Restore(bad, regs, mem), ErrChecksumMismatch)
	})
}

func TestChecksum(t *testing.T) {
	regs, mem := newSystem(t)
	before := Checksum(regs, mem)

	require.NoError(t, mem.Write(0x8000, 0x22))
	assert.NotEqual(t, before, Checksum(regs, mem))
}
