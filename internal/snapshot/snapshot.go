// Package snapshot saves and restores the combined state of a
// register file and memory map. A snapshot is laid out as
//
//	0x00 - 0x03  magic "GBCS"
//	0x04         format version
//	0x05 - 0x0C  xxhash64 of the uncompressed payload (little endian)
//	0x0D -       brotli compressed payload
//
// The payload is the register file followed by the memory map, as
// written by their Save methods.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	magic      = "GBCS"
	version    = 1
	headerSize = len(magic) + 1 + 8

	// Quality is the brotli quality used when compressing.
	Quality = 7
)

var (
	// ErrInvalidSnapshot is returned for data that is not a snapshot
	// of a supported version.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrChecksumMismatch is returned when the payload does not match
	// the checksum in the header.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
)

func payload(regs *cpu.RegisterFile, mem *mmu.MemoryMap) []byte {
	s := types.NewState()
	regs.Save(s)
	mem.Save(s)
	return s.Bytes()
}

// Checksum returns the hash of the current state of regs and mem.
func Checksum(regs *cpu.RegisterFile, mem *mmu.MemoryMap) uint64 {
	return xxhash.Sum64(payload(regs, mem))
}

// Save returns a snapshot of regs and mem.
func Save(regs *cpu.RegisterFile, mem *mmu.MemoryMap) ([]byte, error) {
	raw := payload(regs, mem)

	compressed, err := cbrotli.Encode(raw, cbrotli.WriterOptions{
		Quality: Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: compressing: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(compressed))
	copy(out, magic)
	out[len(magic)] = version
	binary.LittleEndian.PutUint64(out[len(magic)+1:], xxhash.Sum64(raw))
	return append(out, compressed...), nil
}

// Restore loads a snapshot produced by Save into regs and mem.
// Neither is modified if an error is returned.
func Restore(b []byte, regs *cpu.RegisterFile, mem *mmu.MemoryMap) error {
	if len(b) < headerSize || !bytes.Equal(b[:len(magic)], []byte(magic)) {
		return ErrInvalidSnapshot
	}
	if v := b[len(magic)]; v != version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, v)
	}
	sum := binary.LittleEndian.Uint64(b[len(magic)+1 : headerSize])

	raw, err := cbrotli.Decode(b[headerSize:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if got := xxhash.Sum64(raw); got != sum {
		return fmt.Errorf("%w: expected 0x%x, got 0x%x", ErrChecksumMismatch, sum, got)
	}

	if want := size(); len(raw) != want {
		return fmt.Errorf("%w: payload is %d bytes, expected %d", ErrInvalidSnapshot, len(raw), want)
	}

	s := types.StateFromBytes(raw)
	regs.Load(s)
	mem.Load(s)
	return s.Err()
}

// size returns the payload size of a snapshot.
func size() int {
	n := cpu.RegisterFileSize + 1 // interrupt enable
	for _, seg := range types.Segments {
		n += seg.Size()
	}
	return n
}
