package types

// Single bit masks, used for the flags of the F register and
// the interrupt enable register.
const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// InterruptVBlank - InterruptJoypad are the bits of the interrupt
// enable register.
const (
	InterruptVBlank = Bit0
	InterruptLCD    = Bit1
	InterruptTimer  = Bit2
	InterruptSerial = Bit3
	InterruptJoypad = Bit4
)
