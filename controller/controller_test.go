package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func readAll(c *Controller, n int) []uint8 {
	bits := make([]uint8, n)
	for i := range bits {
		bits[i] = c.Read()
	}
	return bits
}

func TestSerialOrder(t *testing.T) {
	c := New()
	c.Set(A, true)
	c.Set(Start, true)
	c.Set(Right, true)

	c.Write(1)
	c.Write(0)

	assert.Equal(t, []uint8{1, 0, 0, 1, 0, 0, 0, 1}, readAll(c, 8))
	assert.Equal(t, []uint8{1, 1, 1}, readAll(c, 3), "exhausted register reads as ones")
}

func TestStrobeHighRepeatsA(t *testing.T) {
	c := New()
	c.Set(A, true)
	c.Write(1)

	assert.Equal(t, []uint8{1, 1, 1}, readAll(c, 3))

	c.Set(A, false)
	assert.Equal(t, uint8(0), c.Read(), "strobe high tracks the live button")
}

func TestLatchHoldsUntilNextStrobe(t *testing.T) {
	c := New()
	c.Write(1)
	c.Write(0)

	c.Set(B, true)
	assert.Equal(t, []uint8{0, 0}, readAll(c, 2), "presses after the latch are not seen")

	c.Write(1)
	c.Write(0)
	assert.Equal(t, []uint8{0, 1}, readAll(c, 2))
}

func TestSetAndPressed(t *testing.T) {
	c := New()
	for _, b := range []Button{A, B, Select, Start, Up, Down, Left, Right} {
		c.Set(b, true)
		assert.True(t, c.Pressed(b))
		c.Set(b, false)
		assert.False(t, c.Pressed(b))
	}

	c.Set(Up, true)
	c.Reset()
	assert.False(t, c.Pressed(Up))
}
