// Package cpu models the register file of the Game Boy CPU. The
// registers are held in a single 12 byte buffer so that the 8-bit
// registers alias the bytes of the 16-bit register pairs.
//
// A RegisterFile is not safe for concurrent use.
package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// RegisterFileSize is the number of bytes backing a RegisterFile.
const RegisterFileSize = 12

const (
	opReadWord   = "read word from"
	opWriteWord  = "write word to"
	opReadDWord  = "read double word from"
	opWriteDWord = "write double word to"
	opCopy       = "copy"
)

// RegisterFile holds the CPU registers.
type RegisterFile struct {
	data   [RegisterFileSize]uint8
	endian Endian
}

// RegisterOpt configures a RegisterFile.
type RegisterOpt func(r *RegisterFile)

// WithEndian sets the byte order used to recombine register pairs,
// overriding NativeEndian.
func WithEndian(e Endian) RegisterOpt {
	return func(r *RegisterFile) {
		r.endian = e
	}
}

// NewRegisterFile returns a RegisterFile initialised with data.
func NewRegisterFile(data [RegisterFileSize]uint8, opts ...RegisterOpt) *RegisterFile {
	r := &RegisterFile{
		data:   data,
		endian: NativeEndian,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Endian returns the byte order used for register pairs.
func (r *RegisterFile) Endian() Endian {
	return r.endian
}

// Bytes returns a copy of the backing store.
func (r *RegisterFile) Bytes() [RegisterFileSize]uint8 {
	return r.data
}

// ReadWord returns the value of an 8-bit register.
func (r *RegisterFile) ReadWord(reg Register) (uint8, error) {
	if reg.Size() != 1 {
		return 0, &SizeMismatchError{Op: opReadWord, Register: reg}
	}
	return r.data[reg.Offset()], nil
}

// WriteWord sets the value of an 8-bit register.
func (r *RegisterFile) WriteWord(reg Register, value uint8) error {
	if reg.Size() != 1 {
		return &SizeMismatchError{Op: opWriteWord, Register: reg}
	}
	r.data[reg.Offset()] = value
	return nil
}

// ReadDWord returns the value of a 16-bit register.
func (r *RegisterFile) ReadDWord(reg Register) (uint16, error) {
	if reg.Size() != 2 {
		return 0, &SizeMismatchError{Op: opReadDWord, Register: reg}
	}
	i := reg.Offset()
	return Combine(r.endian, r.data[i], r.data[i+1]), nil
}

// WriteDWord sets the value of a 16-bit register.
func (r *RegisterFile) WriteDWord(reg Register, value uint16) error {
	if reg.Size() != 2 {
		return &SizeMismatchError{Op: opWriteDWord, Register: reg}
	}
	i := reg.Offset()
	r.data[i], r.data[i+1] = Split(r.endian, value)
	return nil
}

// CopyRegister copies the contents of src into dst. Both registers
// must be the same size.
func (r *RegisterFile) CopyRegister(dst, src Register) error {
	if dst.Size() != src.Size() {
		return &SizeMismatchError{Op: opCopy, Register: dst, Other: src}
	}
	d, s := dst.Offset(), src.Offset()
	copy(r.data[d:d+dst.Size()], r.data[s:s+src.Size()])
	return nil
}

// Flags returns the status flags held in the F register.
func (r *RegisterFile) Flags() (StatusFlags, error) {
	return FlagsFromBits(r.data[F.Offset()])
}

// SetFlags writes flags into the F register.
func (r *RegisterFile) SetFlags(flags StatusFlags) {
	r.data[F.Offset()] = flags.Bits()
}

// Save writes the backing store to the state.
func (r *RegisterFile) Save(s *types.State) {
	s.WriteData(r.data[:])
}

// Load reads the backing store from the state.
func (r *RegisterFile) Load(s *types.State) {
	s.ReadData(r.data[:])
}

var _ types.Stater = (*RegisterFile)(nil)
