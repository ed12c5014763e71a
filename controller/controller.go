// Package controller models the standard pad: eight buttons latched into a
// shift register that the program reads one bit at a time.
package controller

type Button uint8

const (
	A Button = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

type Controller struct {
	buttons uint8
	shift   uint8
	strobe  bool
}

func New() *Controller {
	return &Controller{}
}

// Set presses or releases a button.
func (c *Controller) Set(button Button, pressed bool) {
	if pressed {
		c.buttons |= uint8(button)
	} else {
		c.buttons &^= uint8(button)
	}
}

func (c *Controller) Pressed(button Button) bool {
	return c.buttons&uint8(button) != 0
}

// Write handles a strobe write. While the strobe is high, and on the write
// that lowers it, the shift register is reloaded from the buttons.
func (c *Controller) Write(data uint8) {
	strobe := data&1 != 0
	if c.strobe || strobe {
		c.shift = c.buttons
	}
	c.strobe = strobe
}

// Read returns the next button bit, A first. Once all eight are out the
// register reads as ones.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return c.buttons & 1
	}
	bit := c.shift & 1
	c.shift = 0x80 | c.shift>>1
	return bit
}

func (c *Controller) Reset() {
	*c = Controller{}
}
