package nes

// dispatch routes a decoded instruction to its handler. operandPC points at
// the first operand byte (or, for implicit/accumulator instructions, at
// the byte following the opcode — unused in that case). Handlers read and
// write registers/memory directly; only handlers that branch, jump, call,
// return, or interrupt call jumpTo to take control of PC.
func (c *CPU) dispatch(m Mnemonic, mode AddressingMode, operandPC uint16) error {
	switch m {
	case ADC:
		return c.execADC(mode, operandPC)
	case AND:
		return c.execAND(mode, operandPC)
	case ASL:
		return c.execASL(mode, operandPC)
	case BCC:
		return c.execBranch(!c.P.Get(FlagC), operandPC)
	case BCS:
		return c.execBranch(c.P.Get(FlagC), operandPC)
	case BEQ:
		return c.execBranch(c.P.Get(FlagZ), operandPC)
	case BIT:
		return c.execBIT(mode, operandPC)
	case BMI:
		return c.execBranch(c.P.Get(FlagN), operandPC)
	case BNE:
		return c.execBranch(!c.P.Get(FlagZ), operandPC)
	case BPL:
		return c.execBranch(!c.P.Get(FlagN), operandPC)
	case BRK:
		c.execBRK(operandPC)
		return nil
	case BVC:
		return c.execBranch(!c.P.Get(FlagV), operandPC)
	case BVS:
		return c.execBranch(c.P.Get(FlagV), operandPC)
	case CLC:
		c.P.Set(FlagC, false)
		return nil
	case CLD:
		c.P.Set(FlagD, false)
		return nil
	case CLI:
		c.P.Set(FlagI, false)
		return nil
	case CLV:
		c.P.Set(FlagV, false)
		return nil
	case CMP:
		return c.execCompare(c.A, mode, operandPC)
	case CPX:
		return c.execCompare(c.X, mode, operandPC)
	case CPY:
		return c.execCompare(c.Y, mode, operandPC)
	case DEC:
		return c.execIncDecMem(mode, operandPC, -1)
	case DEX:
		c.X--
		c.P.updateZN(c.X)
		return nil
	case DEY:
		c.Y--
		c.P.updateZN(c.Y)
		return nil
	case EOR:
		return c.execEOR(mode, operandPC)
	case INC:
		return c.execIncDecMem(mode, operandPC, 1)
	case INX:
		c.X++
		c.P.updateZN(c.X)
		return nil
	case INY:
		c.Y++
		c.P.updateZN(c.Y)
		return nil
	case JMP:
		return c.execJMP(mode, operandPC)
	case JSR:
		c.execJSR(operandPC)
		return nil
	case LDA:
		return c.execLoad(&c.A, mode, operandPC)
	case LDX:
		return c.execLoad(&c.X, mode, operandPC)
	case LDY:
		return c.execLoad(&c.Y, mode, operandPC)
	case LSR:
		return c.execLSR(mode, operandPC)
	case NOP:
		return nil
	case ORA:
		return c.execORA(mode, operandPC)
	case PHA:
		c.push(c.A)
		return nil
	case PHP:
		c.push(c.P.pushImage())
		return nil
	case PLA:
		c.A = c.pop()
		c.P.updateZN(c.A)
		return nil
	case PLP:
		c.P = Flags(c.pop())
		c.P.afterPop()
		return nil
	case ROL:
		return c.execROL(mode, operandPC)
	case ROR:
		return c.execROR(mode, operandPC)
	case RTI:
		c.execRTI()
		return nil
	case RTS:
		c.execRTS()
		return nil
	case SBC:
		return c.execSBC(mode, operandPC)
	case SEC:
		c.P.Set(FlagC, true)
		return nil
	case SED:
		c.P.Set(FlagD, true)
		return nil
	case SEI:
		c.P.Set(FlagI, true)
		return nil
	case STA:
		return c.execStore(c.A, mode, operandPC)
	case STX:
		return c.execStore(c.X, mode, operandPC)
	case STY:
		return c.execStore(c.Y, mode, operandPC)
	case TAX:
		c.X = c.A
		c.P.updateZN(c.X)
		return nil
	case TAY:
		c.Y = c.A
		c.P.updateZN(c.Y)
		return nil
	case TSX:
		c.X = c.SP
		c.P.updateZN(c.X)
		return nil
	case TXA:
		c.A = c.X
		c.P.updateZN(c.A)
		return nil
	case TXS:
		c.SP = c.X
		return nil
	case TYA:
		c.A = c.Y
		c.P.updateZN(c.A)
		return nil
	default:
		return UnsupportedAddressingMode{Mnemonic: m, Mode: mode}
	}
}

func (c *CPU) execADC(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	carry := uint16(0)
	if c.P.Get(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(operand) + carry
	result := byte(sum)

	c.P.Set(FlagC, sum > 0xFF)
	// Overflow: operands share a sign and the result's sign differs.
	c.P.Set(FlagV, (c.A^operand)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.P.updateZN(c.A)
	return nil
}

func (c *CPU) execSBC(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	carry := uint16(0)
	if c.P.Get(FlagC) {
		carry = 1
	}
	// SBC is ADC with the operand's bits inverted.
	inverted := operand ^ 0xFF
	sum := uint16(c.A) + uint16(inverted) + carry
	result := byte(sum)

	c.P.Set(FlagC, sum > 0xFF)
	c.P.Set(FlagV, (c.A^inverted)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.P.updateZN(c.A)
	return nil
}

func (c *CPU) execAND(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	c.A &= operand
	c.P.updateZN(c.A)
	return nil
}

func (c *CPU) execORA(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	c.A |= operand
	c.P.updateZN(c.A)
	return nil
}

func (c *CPU) execEOR(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	c.A ^= operand
	c.P.updateZN(c.A)
	return nil
}

func (c *CPU) execASL(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	c.P.Set(FlagC, operand&0x80 != 0)
	result := operand << 1
	if err := c.writeOperand(mode, pc, result); err != nil {
		return err
	}
	c.P.updateZN(result)
	return nil
}

func (c *CPU) execLSR(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	c.P.Set(FlagC, operand&0x01 != 0)
	result := operand >> 1
	if err := c.writeOperand(mode, pc, result); err != nil {
		return err
	}
	c.P.updateZN(result)
	return nil
}

func (c *CPU) execROL(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	oldCarry := byte(0)
	if c.P.Get(FlagC) {
		oldCarry = 1
	}
	c.P.Set(FlagC, operand&0x80 != 0)
	result := (operand << 1) | oldCarry
	if err := c.writeOperand(mode, pc, result); err != nil {
		return err
	}
	c.P.updateZN(result)
	return nil
}

func (c *CPU) execROR(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	oldCarry := byte(0)
	if c.P.Get(FlagC) {
		oldCarry = 0x80
	}
	c.P.Set(FlagC, operand&0x01 != 0)
	result := (operand >> 1) | oldCarry
	if err := c.writeOperand(mode, pc, result); err != nil {
		return err
	}
	c.P.updateZN(result)
	return nil
}

func (c *CPU) execBIT(mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	c.P.Set(FlagZ, operand&c.A == 0)
	c.P.Set(FlagV, operand&0x40 != 0)
	c.P.Set(FlagN, operand&0x80 != 0)
	return nil
}

func (c *CPU) execCompare(reg byte, mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	result := reg - operand
	c.P.Set(FlagC, reg >= operand)
	c.P.Set(FlagZ, reg == operand)
	c.P.Set(FlagN, result&0x80 != 0)
	return nil
}

func (c *CPU) execIncDecMem(mode AddressingMode, pc uint16, delta int) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	result := byte(int(operand) + delta)
	if err := c.writeOperand(mode, pc, result); err != nil {
		return err
	}
	c.P.updateZN(result)
	return nil
}

func (c *CPU) execLoad(reg *byte, mode AddressingMode, pc uint16) error {
	operand, err := c.readOperand(mode, pc)
	if err != nil {
		return err
	}
	*reg = operand
	c.P.updateZN(*reg)
	return nil
}

func (c *CPU) execStore(value byte, mode AddressingMode, pc uint16) error {
	addr, err := c.effectiveAddress(mode, pc)
	if err != nil {
		return err
	}
	c.mem.Write(addr, value)
	return nil
}

// execBranch implements the eight conditional branches: a relative,
// signed 8-bit displacement applied to the address of the instruction
// following the branch. Not taken, it still consumed its displacement
// byte, so the post-step fallback (PC += 2) is correct without help here.
func (c *CPU) execBranch(taken bool, pc uint16) error {
	offset := c.mem.Read(pc)
	if !taken {
		return nil
	}
	target := pc + 1 + uint16(int8(offset))
	c.jumpTo(target)
	return nil
}

func (c *CPU) execJMP(mode AddressingMode, pc uint16) error {
	switch mode {
	case Absolute:
		c.jumpTo(ReadWord(c.mem, pc))
		return nil
	case Indirect:
		ptr := ReadWord(c.mem, pc)
		// Reproduce the 6502 indirect-JMP page-wrap bug: if the pointer
		// sits at the end of a page ($xxFF), the high byte is fetched
		// from $xx00 on the same page instead of crossing into the next.
		lo := c.mem.Read(ptr)
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.mem.Read(hiAddr)
		c.jumpTo(uint16(hi)<<8 | uint16(lo))
		return nil
	default:
		return UnsupportedAddressingMode{Mnemonic: JMP, Mode: mode}
	}
}

func (c *CPU) execJSR(pc uint16) {
	target := ReadWord(c.mem, pc)
	// Push the address of the last byte of the JSR instruction (pc+1),
	// not the address of the next instruction; RTS adds 1 back.
	c.pushWord(pc + 1)
	c.jumpTo(target)
}

func (c *CPU) execRTS() {
	target := c.popWord()
	c.jumpTo(target + 1)
}

func (c *CPU) execBRK(pc uint16) {
	// The byte following BRK's opcode byte is a padding byte
	// conventionally used as a break-reason code; pc points at it, so the
	// return address pushed, pc+1, skips past it.
	c.pushWord(pc + 1)
	c.push(c.P.pushImage())
	c.P.Set(FlagI, true)
	c.jumpTo(ReadWord(c.mem, irqVector))
}

func (c *CPU) execRTI() {
	c.P = Flags(c.pop())
	c.P.afterPop()
	c.jumpTo(c.popWord())
}
