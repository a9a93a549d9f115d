package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassembleProducesOneLinePerInstruction(t *testing.T) {
	mem := &FlatMemory{}
	mem.Write(0x8000, 0xA9) // LDA #$05
	mem.Write(0x8001, 0x05)
	mem.Write(0x8002, 0xAA) // TAX
	mem.Write(0x8003, 0x00) // BRK

	lines := Disassemble(mem, 0x8000, 0x8003)
	require.Len(t, lines, 3)
	assert.Equal(t, "$8000: LDA #$05", lines[0x8000])
	assert.Equal(t, "$8002: TAX", lines[0x8002])
	assert.Equal(t, "$8003: BRK", lines[0x8003])
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	mem := &FlatMemory{}
	mem.Write(0x8000, 0x02) // undefined
	lines := Disassemble(mem, 0x8000, 0x8000)
	assert.Contains(t, lines[0x8000], ".byte $02")
}
