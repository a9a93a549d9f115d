package nes

// OpcodeInfo is the immutable record associated with each of the 151
// defined opcode bytes: its mnemonic, total instruction length in bytes,
// base cycle count, and addressing mode. Indexed by opcode byte for O(1)
// lookup, a flat holed array instead of a runtime map.
type OpcodeInfo struct {
	Mnemonic Mnemonic
	Bytes    byte
	Cycles   byte
	Mode     AddressingMode
}

// opcodeTable maps every opcode byte to its record. A nil entry marks an
// opcode with no defined instruction; undocumented/illegal opcodes are
// not implemented.
var opcodeTable [256]*OpcodeInfo

func op(code byte, m Mnemonic, bytes, cycles byte, mode AddressingMode) {
	if opcodeTable[code] != nil {
		panic("duplicate opcode registration")
	}
	opcodeTable[code] = &OpcodeInfo{Mnemonic: m, Bytes: bytes, Cycles: cycles, Mode: mode}
}

func init() {
	// ADC - Add with Carry
	op(0x69, ADC, 2, 2, Immediate)
	op(0x65, ADC, 2, 3, ZeroPage)
	op(0x75, ADC, 2, 4, ZeroPageX)
	op(0x6D, ADC, 3, 4, Absolute)
	op(0x7D, ADC, 3, 4, AbsoluteX)
	op(0x79, ADC, 3, 4, AbsoluteY)
	op(0x61, ADC, 2, 6, IndirectX)
	op(0x71, ADC, 2, 5, IndirectY)

	// AND - Logical AND
	op(0x29, AND, 2, 2, Immediate)
	op(0x25, AND, 2, 3, ZeroPage)
	op(0x35, AND, 2, 4, ZeroPageX)
	op(0x2D, AND, 3, 4, Absolute)
	op(0x3D, AND, 3, 4, AbsoluteX)
	op(0x39, AND, 3, 4, AbsoluteY)
	op(0x21, AND, 2, 6, IndirectX)
	op(0x31, AND, 2, 5, IndirectY)

	// ASL - Arithmetic Shift Left
	op(0x0A, ASL, 1, 2, Accumulator)
	op(0x06, ASL, 2, 5, ZeroPage)
	op(0x16, ASL, 2, 6, ZeroPageX)
	op(0x0E, ASL, 3, 6, Absolute)
	op(0x1E, ASL, 3, 7, AbsoluteX)

	// Branches
	op(0x90, BCC, 2, 2, Relative)
	op(0xB0, BCS, 2, 2, Relative)
	op(0xF0, BEQ, 2, 2, Relative)
	op(0x30, BMI, 2, 2, Relative)
	op(0xD0, BNE, 2, 2, Relative)
	op(0x10, BPL, 2, 2, Relative)
	op(0x50, BVC, 2, 2, Relative)
	op(0x70, BVS, 2, 2, Relative)

	// BIT - Bit Test
	op(0x24, BIT, 2, 3, ZeroPage)
	op(0x2C, BIT, 3, 4, Absolute)

	// BRK - Force Interrupt
	op(0x00, BRK, 1, 7, Implicit)

	// Flag clear/set
	op(0x18, CLC, 1, 2, Implicit)
	op(0xD8, CLD, 1, 2, Implicit)
	op(0x58, CLI, 1, 2, Implicit)
	op(0xB8, CLV, 1, 2, Implicit)
	op(0x38, SEC, 1, 2, Implicit)
	op(0xF8, SED, 1, 2, Implicit)
	op(0x78, SEI, 1, 2, Implicit)

	// CMP - Compare (Accumulator)
	op(0xC9, CMP, 2, 2, Immediate)
	op(0xC5, CMP, 2, 3, ZeroPage)
	op(0xD5, CMP, 2, 4, ZeroPageX)
	op(0xCD, CMP, 3, 4, Absolute)
	op(0xDD, CMP, 3, 4, AbsoluteX)
	op(0xD9, CMP, 3, 4, AbsoluteY)
	op(0xC1, CMP, 2, 6, IndirectX)
	op(0xD1, CMP, 2, 5, IndirectY)

	// CPX - Compare X Register
	op(0xE0, CPX, 2, 2, Immediate)
	op(0xE4, CPX, 2, 3, ZeroPage)
	op(0xEC, CPX, 3, 4, Absolute)

	// CPY - Compare Y Register
	op(0xC0, CPY, 2, 2, Immediate)
	op(0xC4, CPY, 2, 3, ZeroPage)
	op(0xCC, CPY, 3, 4, Absolute)

	// DEC - Decrement Memory
	op(0xC6, DEC, 2, 5, ZeroPage)
	op(0xD6, DEC, 2, 6, ZeroPageX)
	op(0xCE, DEC, 3, 6, Absolute)
	op(0xDE, DEC, 3, 7, AbsoluteX)

	op(0xCA, DEX, 1, 2, Implicit)
	op(0x88, DEY, 1, 2, Implicit)

	// EOR - Exclusive OR
	op(0x49, EOR, 2, 2, Immediate)
	op(0x45, EOR, 2, 3, ZeroPage)
	op(0x55, EOR, 2, 4, ZeroPageX)
	op(0x4D, EOR, 3, 4, Absolute)
	op(0x5D, EOR, 3, 4, AbsoluteX)
	op(0x59, EOR, 3, 4, AbsoluteY)
	op(0x41, EOR, 2, 6, IndirectX)
	op(0x51, EOR, 2, 5, IndirectY)

	// INC - Increment Memory
	op(0xE6, INC, 2, 5, ZeroPage)
	op(0xF6, INC, 2, 6, ZeroPageX)
	op(0xEE, INC, 3, 6, Absolute)
	op(0xFE, INC, 3, 7, AbsoluteX)

	op(0xE8, INX, 1, 2, Implicit)
	op(0xC8, INY, 1, 2, Implicit)

	// JMP - Jump
	op(0x4C, JMP, 3, 3, Absolute)
	op(0x6C, JMP, 3, 5, Indirect)

	// JSR - Jump to Subroutine
	op(0x20, JSR, 3, 6, Absolute)

	// LDA - Load Accumulator
	op(0xA9, LDA, 2, 2, Immediate)
	op(0xA5, LDA, 2, 3, ZeroPage)
	op(0xB5, LDA, 2, 4, ZeroPageX)
	op(0xAD, LDA, 3, 4, Absolute)
	op(0xBD, LDA, 3, 4, AbsoluteX)
	op(0xB9, LDA, 3, 4, AbsoluteY)
	op(0xA1, LDA, 2, 6, IndirectX)
	op(0xB1, LDA, 2, 5, IndirectY)

	// LDX - Load X Register
	op(0xA2, LDX, 2, 2, Immediate)
	op(0xA6, LDX, 2, 3, ZeroPage)
	op(0xB6, LDX, 2, 4, ZeroPageY)
	op(0xAE, LDX, 3, 4, Absolute)
	op(0xBE, LDX, 3, 4, AbsoluteY)

	// LDY - Load Y Register
	op(0xA0, LDY, 2, 2, Immediate)
	op(0xA4, LDY, 2, 3, ZeroPage)
	op(0xB4, LDY, 2, 4, ZeroPageX)
	op(0xAC, LDY, 3, 4, Absolute)
	op(0xBC, LDY, 3, 4, AbsoluteX)

	// LSR - Logical Shift Right
	op(0x4A, LSR, 1, 2, Accumulator)
	op(0x46, LSR, 2, 5, ZeroPage)
	op(0x56, LSR, 2, 6, ZeroPageX)
	op(0x4E, LSR, 3, 6, Absolute)
	op(0x5E, LSR, 3, 7, AbsoluteX)

	op(0xEA, NOP, 1, 2, Implicit)

	// ORA - Logical Inclusive OR
	op(0x09, ORA, 2, 2, Immediate)
	op(0x05, ORA, 2, 3, ZeroPage)
	op(0x15, ORA, 2, 4, ZeroPageX)
	op(0x0D, ORA, 3, 4, Absolute)
	op(0x1D, ORA, 3, 4, AbsoluteX)
	op(0x19, ORA, 3, 4, AbsoluteY)
	op(0x01, ORA, 2, 6, IndirectX)
	op(0x11, ORA, 2, 5, IndirectY)

	// Stack ops
	op(0x48, PHA, 1, 3, Implicit)
	op(0x08, PHP, 1, 3, Implicit)
	op(0x68, PLA, 1, 4, Implicit)
	op(0x28, PLP, 1, 4, Implicit)

	// ROL - Rotate Left
	op(0x2A, ROL, 1, 2, Accumulator)
	op(0x26, ROL, 2, 5, ZeroPage)
	op(0x36, ROL, 2, 6, ZeroPageX)
	op(0x2E, ROL, 3, 6, Absolute)
	op(0x3E, ROL, 3, 7, AbsoluteX)

	// ROR - Rotate Right
	op(0x6A, ROR, 1, 2, Accumulator)
	op(0x66, ROR, 2, 5, ZeroPage)
	op(0x76, ROR, 2, 6, ZeroPageX)
	op(0x6E, ROR, 3, 6, Absolute)
	op(0x7E, ROR, 3, 7, AbsoluteX)

	op(0x40, RTI, 1, 6, Implicit)
	op(0x60, RTS, 1, 6, Implicit)

	// SBC - Subtract with Carry
	op(0xE9, SBC, 2, 2, Immediate)
	op(0xE5, SBC, 2, 3, ZeroPage)
	op(0xF5, SBC, 2, 4, ZeroPageX)
	op(0xED, SBC, 3, 4, Absolute)
	op(0xFD, SBC, 3, 4, AbsoluteX)
	op(0xF9, SBC, 3, 4, AbsoluteY)
	op(0xE1, SBC, 2, 6, IndirectX)
	op(0xF1, SBC, 2, 5, IndirectY)

	// STA - Store Accumulator
	op(0x85, STA, 2, 3, ZeroPage)
	op(0x95, STA, 2, 4, ZeroPageX)
	op(0x8D, STA, 3, 4, Absolute)
	op(0x9D, STA, 3, 5, AbsoluteX)
	op(0x99, STA, 3, 5, AbsoluteY)
	op(0x81, STA, 2, 6, IndirectX)
	op(0x91, STA, 2, 6, IndirectY)

	// STX - Store X Register
	op(0x86, STX, 2, 3, ZeroPage)
	op(0x96, STX, 2, 4, ZeroPageY)
	op(0x8E, STX, 3, 4, Absolute)

	// STY - Store Y Register
	op(0x84, STY, 2, 3, ZeroPage)
	op(0x94, STY, 2, 4, ZeroPageX)
	op(0x8C, STY, 3, 4, Absolute)

	// Register transfers
	op(0xAA, TAX, 1, 2, Implicit)
	op(0xA8, TAY, 1, 2, Implicit)
	op(0xBA, TSX, 1, 2, Implicit)
	op(0x8A, TXA, 1, 2, Implicit)
	op(0x9A, TXS, 1, 2, Implicit)
	op(0x98, TYA, 1, 2, Implicit)
}
