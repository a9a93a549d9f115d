package nesbus

import "github.com/faiface/pixel/pixelgl"

// button indexes the 8 NES controller buttons in shift-register order.
type button int

const (
	buttonA button = iota
	buttonB
	buttonSelect
	buttonStart
	buttonUp
	buttonDown
	buttonLeft
	buttonRight
)

var keyBinds = map[button]pixelgl.Button{
	buttonA:      pixelgl.KeyJ,
	buttonB:      pixelgl.KeyK,
	buttonSelect: pixelgl.KeyRightShift,
	buttonStart:  pixelgl.KeyEnter,
	buttonUp:     pixelgl.KeyW,
	buttonDown:   pixelgl.KeyS,
	buttonLeft:   pixelgl.KeyA,
	buttonRight:  pixelgl.KeyD,
}

// Controller is an 8-button shift register: a strobe write latches the
// current button state, and successive reads shift one bit out at a time,
// matching the real NES controller protocol.
type Controller struct {
	state   byte
	shift   byte
	strobe  bool
	pressed [8]bool
}

func NewController() *Controller {
	return &Controller{}
}

// Poll samples key state from a live window, called once per frame by the
// debug host driving cmd/nesdbg.
func (c *Controller) Poll(win *pixelgl.Window) {
	for b, key := range keyBinds {
		c.pressed[b] = win.Pressed(key)
	}
}

func (c *Controller) latch() byte {
	var v byte
	for i, pressed := range c.pressed {
		if pressed {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Write handles a CPU write to $4016: bit 0 controls the strobe latch.
func (c *Controller) Write(data byte) {
	c.strobe = data&0x01 != 0
	if c.strobe {
		c.shift = c.latch()
	}
}

// Read handles a CPU read from $4016: returns the next button bit,
// shifting the register each time unless the strobe is held high.
func (c *Controller) Read() byte {
	if c.strobe {
		c.shift = c.latch()
	}
	bit := c.shift & 0x01
	c.shift >>= 1
	return bit
}
