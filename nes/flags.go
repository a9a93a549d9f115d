package nes

// Flags is the 8-bit processor status register: a bitfield with named
// accessors rather than a bag of independent booleans.
type Flags byte

const (
	FlagC Flags = 1 << iota // Carry
	FlagZ                   // Zero
	FlagI                   // Interrupt disable
	FlagD                   // Decimal mode (inert; the NES 6502 ignores it)
	FlagB                   // Break
	FlagU                   // Unused, always 1 in a pushed image
	FlagV                   // Overflow
	FlagN                   // Negative
)

// Get reports whether the given flag bit is set.
func (p Flags) Get(f Flags) bool {
	return p&f != 0
}

// Set assigns the given flag bit to on/off.
func (p *Flags) Set(f Flags, on bool) {
	if on {
		*p |= f
	} else {
		*p &^= f
	}
}

// updateZN sets Z and N from the given result byte.
func (p *Flags) updateZN(result byte) {
	p.Set(FlagZ, result == 0)
	p.Set(FlagN, result&0x80 != 0)
}

// pushImage returns the byte to push to the stack for PHP/BRK: the live
// flags with U and B both forced on.
func (p Flags) pushImage() byte {
	return byte(p | FlagU | FlagB)
}

// afterPop is applied to P immediately after PLP/RTI pop a byte from the
// stack: B is cleared and U is forced on in the live register, regardless
// of what was pushed.
func (p *Flags) afterPop() {
	p.Set(FlagB, false)
	p.Set(FlagU, true)
}
