package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsGetSetRoundTrip(t *testing.T) {
	var p Flags
	p.Set(FlagC, true)
	p.Set(FlagN, true)
	assert.True(t, p.Get(FlagC))
	assert.True(t, p.Get(FlagN))
	assert.False(t, p.Get(FlagZ))

	p.Set(FlagC, false)
	assert.False(t, p.Get(FlagC))
}

func TestUpdateZN(t *testing.T) {
	var p Flags
	p.updateZN(0x00)
	assert.True(t, p.Get(FlagZ))
	assert.False(t, p.Get(FlagN))

	p.updateZN(0x80)
	assert.False(t, p.Get(FlagZ))
	assert.True(t, p.Get(FlagN))
}

func TestPushImageForcesBreakAndUnused(t *testing.T) {
	var p Flags // nothing set
	img := p.pushImage()
	assert.NotZero(t, img&byte(FlagB))
	assert.NotZero(t, img&byte(FlagU))
}

func TestAfterPopClearsBreakForcesUnused(t *testing.T) {
	p := Flags(0xFF)
	p.afterPop()
	assert.False(t, p.Get(FlagB))
	assert.True(t, p.Get(FlagU))
}
