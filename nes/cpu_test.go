package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCPU() (*CPU, *FlatMemory) {
	mem := &FlatMemory{}
	cpu := NewCPU(mem)
	return cpu, mem
}

func TestLdaImmediate(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.Load([]byte{0xA9, 0x05, 0x00}, 0x8000))
	cpu.PC = 0x8000

	assert.NoError(t, cpu.Step())
	assert.Equal(t, byte(0x05), cpu.A)
	assert.False(t, cpu.P.Get(FlagZ))
	assert.False(t, cpu.P.Get(FlagN))
}

func TestLdaZeroFlag(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.Load([]byte{0xA9, 0x00, 0x00}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.True(t, cpu.P.Get(FlagZ))
}

func TestTax(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.Load([]byte{0xA9, 0x0A, 0xAA, 0x00}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step()) // LDA
	require.NoError(t, cpu.Step()) // TAX
	assert.Equal(t, byte(0x0A), cpu.X)
}

func TestFiveOpsWorkingTogether(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.Load([]byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Run()) // LDA, TAX, INX, then BRK stops the run
	assert.Equal(t, byte(0xC1), cpu.X)
}

func TestInxOverflow(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.X = 0xFF
	require.NoError(t, cpu.Load([]byte{0xE8, 0xE8, 0x00}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0x01), cpu.X)
}

func TestLdaFromMemory(t *testing.T) {
	cpu, mem := newTestCPU()
	mem.Write(0x10, 0x55)
	require.NoError(t, cpu.Load([]byte{0xA5, 0x10, 0x00}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0x55), cpu.A)
}

func TestAdcSetsCarryAndOverflow(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0x50
	require.NoError(t, cpu.Load([]byte{0x69, 0x50}, 0x8000)) // ADC #$50
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0xA0), cpu.A)
	assert.True(t, cpu.P.Get(FlagV)) // positive + positive = negative
	assert.False(t, cpu.P.Get(FlagC))
}

func TestAdcCarryChain(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0xFF
	require.NoError(t, cpu.Load([]byte{0x69, 0x01}, 0x8000)) // ADC #$01
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0x00), cpu.A)
	assert.True(t, cpu.P.Get(FlagC))
	assert.True(t, cpu.P.Get(FlagZ))
}

func TestSbcBorrow(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0x00
	cpu.P.Set(FlagC, true) // no pending borrow
	require.NoError(t, cpu.Load([]byte{0xE9, 0x01}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0xFF), cpu.A)
	assert.False(t, cpu.P.Get(FlagC)) // borrow occurred
}

func TestAslAccumulatorCarryAndZero(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0x80
	require.NoError(t, cpu.Load([]byte{0x0A}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0x00), cpu.A)
	assert.True(t, cpu.P.Get(FlagC))
	assert.True(t, cpu.P.Get(FlagZ))
}

func TestCmpEqual(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0x42
	require.NoError(t, cpu.Load([]byte{0xC9, 0x42}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.True(t, cpu.P.Get(FlagZ))
	assert.True(t, cpu.P.Get(FlagC))
}

func TestZeroPageIndexedWraps(t *testing.T) {
	cpu, mem := newTestCPU()
	cpu.X = 0xFF
	mem.Write(0x7F, 0x99) // ($80 + $FF) & $FF = $7F
	require.NoError(t, cpu.Load([]byte{0xB5, 0x80}, 0x8000)) // LDA $80,X
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, byte(0x99), cpu.A)
}

func TestIndirectJmpPageWrapBug(t *testing.T) {
	cpu, mem := newTestCPU()
	mem.Write(0x30FF, 0x40)
	mem.Write(0x3000, 0x80) // hardware bug wraps to $3000, not $3100
	mem.Write(0x3100, 0x50)
	require.NoError(t, cpu.Load([]byte{0x6C, 0xFF, 0x30}, 0x8000))
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x8040), cpu.PC)
}

func TestPushPopRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	sp := cpu.SP
	cpu.push(0xAB)
	assert.Equal(t, sp-1, cpu.SP)
	assert.Equal(t, byte(0xAB), cpu.pop())
	assert.Equal(t, sp, cpu.SP)
}

func TestBrkPushesFlagsAndJumpsToIrqVector(t *testing.T) {
	cpu, mem := newTestCPU()
	WriteWord(mem, irqVector, 0x9000)
	require.NoError(t, cpu.Load([]byte{0x00}, 0x8000))
	cpu.PC = 0x8000
	cpu.SP = 0xFD

	err := cpu.Step()
	assert.ErrorIs(t, err, ErrBreak)
	assert.Equal(t, uint16(0x9000), cpu.PC)

	pushedFlags := cpu.mem.Read(stackBase + uint16(cpu.SP) + 1)
	assert.NotZero(t, pushedFlags&byte(FlagB))
	assert.NotZero(t, pushedFlags&byte(FlagU))
}

func TestPlpClearsBreakForcesUnused(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.push(0xFF) // all bits set, including B
	require.NoError(t, cpu.Load([]byte{0x28}, 0x8000)) // PLP
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.False(t, cpu.P.Get(FlagB))
	assert.True(t, cpu.P.Get(FlagU))
}

func TestJsrRtsRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	// JSR $9000 ; at return, BRK
	require.NoError(t, cpu.Load([]byte{0x20, 0x00, 0x90}, 0x8000))
	require.NoError(t, cpu.Load([]byte{0x60}, 0x9000)) // RTS
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step()) // JSR
	assert.Equal(t, uint16(0x9000), cpu.PC)
	require.NoError(t, cpu.Step()) // RTS
	assert.Equal(t, uint16(0x8003), cpu.PC)
}

func TestUnknownOpcode(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.Load([]byte{0x02}, 0x8000)) // undefined opcode
	cpu.PC = 0x8000

	err := cpu.Step()
	require.Error(t, err)
	var unk UnknownOpcode
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, byte(0x02), unk.Opcode)
}

func TestSelfJumpDoesNotAdvancePastLoop(t *testing.T) {
	cpu, _ := newTestCPU()
	require.NoError(t, cpu.Load([]byte{0x4C, 0x00, 0x80}, 0x8000)) // JMP $8000
	cpu.PC = 0x8000

	require.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x8000), cpu.PC)
}

func TestResetLoadsVector(t *testing.T) {
	cpu, mem := newTestCPU()
	WriteWord(mem, resetVector, 0xC000)
	cpu.Reset()
	assert.Equal(t, uint16(0xC000), cpu.PC)
	assert.Equal(t, byte(0xFD), cpu.SP)
	assert.True(t, cpu.P.Get(FlagI))
}

func TestLoadOverflow(t *testing.T) {
	cpu, _ := newTestCPU()
	err := cpu.Load(make([]byte, 10), 0xFFFC)
	require.Error(t, err)
	var overflow LoadOverflow
	require.ErrorAs(t, err, &overflow)
}
