package nes

import "fmt"

// Disassemble renders every defined instruction between start and end
// (inclusive) into one line of text per instruction, addressed by where
// it starts. It reads mem but never touches the CPU's own registers, so
// it can run against a ROM image before Reset ever executes anything.
func Disassemble(mem Memory, start, end uint16) map[uint16]string {
	lines := make(map[uint16]string)

	addr := uint32(start)
	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		opcode := mem.Read(uint16(addr))
		addr++

		info := opcodeTable[opcode]
		if info == nil {
			lines[lineAddr] = fmt.Sprintf("$%04X: .byte $%02X", lineAddr, opcode)
			continue
		}

		operandAddr := uint16(addr)
		var operandStr string
		switch info.Mode {
		case Implicit, Accumulator:
			operandStr = ""
		case Immediate:
			operandStr = fmt.Sprintf(" #$%02X", mem.Read(operandAddr))
			addr++
		case ZeroPage:
			operandStr = fmt.Sprintf(" $%02X", mem.Read(operandAddr))
			addr++
		case ZeroPageX:
			operandStr = fmt.Sprintf(" $%02X,X", mem.Read(operandAddr))
			addr++
		case ZeroPageY:
			operandStr = fmt.Sprintf(" $%02X,Y", mem.Read(operandAddr))
			addr++
		case Relative:
			offset := int8(mem.Read(operandAddr))
			addr++
			target := uint16(addr) + uint16(offset)
			operandStr = fmt.Sprintf(" $%02X [%04X]", byte(offset), target)
		case Absolute:
			operandStr = fmt.Sprintf(" $%04X", ReadWord(mem, operandAddr))
			addr += 2
		case AbsoluteX:
			operandStr = fmt.Sprintf(" $%04X,X", ReadWord(mem, operandAddr))
			addr += 2
		case AbsoluteY:
			operandStr = fmt.Sprintf(" $%04X,Y", ReadWord(mem, operandAddr))
			addr += 2
		case Indirect:
			operandStr = fmt.Sprintf(" ($%04X)", ReadWord(mem, operandAddr))
			addr += 2
		case IndirectX:
			operandStr = fmt.Sprintf(" ($%02X,X)", mem.Read(operandAddr))
			addr++
		case IndirectY:
			operandStr = fmt.Sprintf(" ($%02X),Y", mem.Read(operandAddr))
			addr++
		}

		lines[lineAddr] = fmt.Sprintf("$%04X: %s%s", lineAddr, info.Mnemonic, operandStr)
	}

	return lines
}
