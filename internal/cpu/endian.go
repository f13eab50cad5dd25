package cpu

import (
	"github.com/thelolagemann/gbcore/pkg/utils"
	syscpu "golang.org/x/sys/cpu"
)

// Endian is the byte order used to recombine the two bytes of a
// register pair into a 16-bit value.
type Endian uint8

const (
	// LittleEndian places the byte at the higher offset in the most
	// significant half of the value.
	LittleEndian Endian = iota
	// BigEndian places the byte at the lower offset in the most
	// significant half of the value.
	BigEndian
)

// NativeEndian is the byte order of the host.
var NativeEndian = func() Endian {
	if syscpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}()

func (e Endian) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Combine joins the byte stored at a pair's offset (first) and the
// byte stored at offset+1 (second) into a 16-bit value.
func Combine(e Endian, first, second uint8) uint16 {
	if e == BigEndian {
		return utils.BytesToUint16(first, second)
	}
	return utils.BytesToUint16(second, first)
}

// Split is the inverse of Combine, returning the bytes to store at
// a pair's offset and offset+1.
func Split(e Endian, value uint16) (first, second uint8) {
	upper, lower := utils.Uint16ToBytes(value)
	if e == BigEndian {
		return upper, lower
	}
	return lower, upper
}
