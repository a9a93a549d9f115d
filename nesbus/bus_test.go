package nesbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamMirroring(t *testing.T) {
	b := NewBus()
	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0800)) // mirrors every 2KB
	assert.Equal(t, byte(0x42), b.Read(0x1800))
}

func TestPpuRegisterMirroring(t *testing.T) {
	b := NewBus()
	b.Write(0x2000, 0x80) // PPUCTRL
	assert.Equal(t, PpuReg(0x80), b.ppu.ctrl)
	b.Write(0x2008, 0x00) // mirrors $2000 every 8 bytes
	assert.Equal(t, PpuReg(0x00), b.ppu.ctrl)
}

func TestCartridgeWindowStartsAt4020(t *testing.T) {
	b := NewBus()
	cart := &Cartridge{
		mapper: NewMapper000(1, 1),
		prgMem: make([]byte, 16*1024),
	}
	cart.prgMem[0] = 0x99
	b.InsertCartridge(cart)

	assert.Equal(t, byte(0), b.Read(0x4020)) // below the mapper's own $8000 floor
	assert.Equal(t, byte(0x99), b.Read(0x8000))
	assert.Equal(t, byte(0x99), b.Read(0xC000)) // 16KB mirror
}

func TestControllerShiftRegister(t *testing.T) {
	b := NewBus()
	b.controller.pressed[buttonA] = true
	b.controller.pressed[buttonRight] = true

	b.Write(0x4016, 0x01) // strobe high, latch
	b.Write(0x4016, 0x00) // strobe low, begin shifting

	assert.Equal(t, byte(1), b.Read(0x4016)) // button A, bit 0
	for i := 0; i < 6; i++ {
		b.Read(0x4016)
	}
	assert.Equal(t, byte(1), b.Read(0x4016)) // button Right, bit 7
}
