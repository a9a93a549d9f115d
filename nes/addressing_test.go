package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveAddressZeroPageXWraps(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.X = 0xFF
	cpu.Load([]byte{0x80}, 0x0000)
	addr, err := cpu.effectiveAddress(ZeroPageX, 0x0000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x007F), addr)
}

func TestEffectiveAddressIndirectXWraps(t *testing.T) {
	cpu, mem := newTestCPU()
	cpu.X = 0x04
	mem.Write(0x0000, 0x20) // zero-page pointer base
	mem.Write(0x0024, 0x74) // (0x20 + X) & 0xFF
	mem.Write(0x0025, 0x20)
	addr, err := cpu.effectiveAddress(IndirectX, 0x0000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x2074), addr)
}

func TestEffectiveAddressIndirectYAddsAfterDeref(t *testing.T) {
	cpu, mem := newTestCPU()
	cpu.Y = 0x10
	mem.Write(0x0000, 0x86)
	mem.Write(0x0086, 0x28)
	mem.Write(0x0087, 0x40)
	addr, err := cpu.effectiveAddress(IndirectY, 0x0000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4038), addr)
}

func TestReadOperandAccumulatorMode(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0x42
	val, err := cpu.readOperand(Accumulator, 0x0000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), val)
}

func TestWriteOperandAccumulatorMode(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.writeOperand(Accumulator, 0x0000, 0x77))
	assert.Equal(t, byte(0x77), cpu.A)
}
