package nes

import "log"

const (
	stackBase   uint16 = 0x0100
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE
)

// CPU is a MOS 6502 register file and execution engine wired to an
// arbitrary Memory implementation. It depends only on the Memory
// interface, never on a concrete bus, cartridge, or mapper, so a flat
// byte array is enough to drive and test it.
type CPU struct {
	PC uint16 // Program Counter
	SP byte   // Stack Pointer: low 8 bits of next free stack location
	A  byte   // Accumulator
	X  byte   // X index register
	Y  byte   // Y index register
	P  Flags  // Processor status flags

	Cycles uint64 // total cycles executed, for downstream accounting only

	mem Memory

	// pcModified is set by any mnemonic handler that assigns PC itself
	// (branches taken, JMP, JSR, RTS, RTI, BRK). Step consults it instead
	// of comparing PC before/after, since a self-jump ("JMP $same",
	// a common halt idiom) would otherwise look indistinguishable from an
	// instruction that left PC untouched.
	pcModified bool

	// Logger, when non-nil, receives one line per executed instruction:
	// program counter, opcode, mnemonic, and register snapshot. Nil-safe
	// so unit tests can run without a sink.
	Logger *log.Logger
}

// jumpTo assigns PC and marks it as explicitly set by the current
// instruction, suppressing Step's default post-step advance.
func (c *CPU) jumpTo(addr uint16) {
	c.PC = addr
	c.pcModified = true
}

// NewCPU returns a CPU wired to mem, with registers at their power-on
// values. Call Reset to load PC from the reset vector before running a
// program image.
func NewCPU(mem Memory) *CPU {
	return &CPU{
		SP:  0xFD,
		P:   FlagU | FlagI,
		mem: mem,
	}
}

// Load copies program into memory starting at start. It does not touch
// registers; call Reset afterward to pick up the entry point from the
// reset vector, or set PC directly for tests that want to start execution
// at a known address.
func (c *CPU) Load(program []byte, start uint16) error {
	if int(start)+len(program) > 0x10000 {
		return LoadOverflow{Start: start, Size: len(program)}
	}
	for i, b := range program {
		c.mem.Write(start+uint16(i), b)
	}
	return nil
}

// Reset restores the CPU to its post-reset state: A, X, Y cleared, SP set
// to 0xFD, I set, and PC loaded from the reset vector at 0xFFFC/0xFFFD.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagU | FlagI
	c.PC = ReadWord(c.mem, resetVector)
}

func (c *CPU) push(b byte) {
	c.mem.Write(stackBase+uint16(c.SP), b)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// Step fetches, decodes, and executes exactly one instruction, returning
// any error encountered. It returns ErrBreak after a BRK completes its
// full interrupt sequence, which Run and RunWithCallback treat as a clean
// stop rather than a failure.
func (c *CPU) Step() error {
	instrPC := c.PC
	opcode := c.mem.Read(instrPC)
	info := opcodeTable[opcode]
	if info == nil {
		return UnknownOpcode{Opcode: opcode, PC: instrPC}
	}

	operandPC := instrPC + 1
	fallbackPC := instrPC + uint16(info.Bytes)

	c.pcModified = false
	if err := c.dispatch(info.Mnemonic, info.Mode, operandPC); err != nil {
		return err
	}

	// Mnemonics that branch, jump, call, return, or interrupt set PC
	// themselves via jumpTo; every other mnemonic (including a not-taken
	// branch) falls through to the default post-step advance.
	if !c.pcModified {
		c.PC = fallbackPC
	}

	c.Cycles += uint64(info.Cycles)

	if c.Logger != nil {
		c.Logger.Printf("%04X  %02X  %-4s  A:%02X X:%02X Y:%02X P:%02X SP:%02X",
			instrPC, opcode, info.Mnemonic, c.A, c.X, c.Y, byte(c.P), c.SP)
	}

	if info.Mnemonic == BRK {
		return ErrBreak
	}
	return nil
}

// Run executes instructions until an error occurs or a BRK is reached,
// which is reported as a clean stop (nil error).
func (c *CPU) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback executes instructions until an error occurs or a BRK is
// reached. observer, if non-nil, is invoked after every successfully
// executed instruction with the CPU's post-instruction state.
func (c *CPU) RunWithCallback(observer func(*CPU)) error {
	for {
		err := c.Step()
		if err != nil && err != ErrBreak {
			return err
		}
		if observer != nil {
			observer(c)
		}
		if err == ErrBreak {
			return nil
		}
	}
}
