package nes

import (
	"image"

	"dotnes/cartridge"
	"dotnes/controller"
	"dotnes/cpu"
	"dotnes/ppu"
)

// Console is a complete machine built around one cartridge.
type Console struct {
	cart      *cartridge.Cartridge
	ppu       *ppu.PPU
	cpu       *cpu.CPU
	bus       *Bus
	scheduler *Scheduler
	pads      [2]*controller.Controller
}

// NewConsole connects the components and powers the machine on.
func NewConsole(cart *cartridge.Cartridge) *Console {
	c := &Console{
		cart: cart,
		ppu:  ppu.New(cart),
		pads: [2]*controller.Controller{controller.New(), controller.New()},
	}
	c.bus = NewBus(c.ppu, cart, c.pads[0], c.pads[1])
	c.cpu = cpu.New(c.bus)
	c.scheduler = NewScheduler(c.bus, c.ppu, c.cpu)
	c.Reset()
	return c
}

func (c *Console) Reset() {
	c.cart.Reset()
	c.bus.Reset()
	c.ppu.Reset()
	c.cpu.Reset()
	c.scheduler.Reset()
}

func (c *Console) RunFrame() {
	c.scheduler.RunFrame()
}

func (c *Console) RunInstruction() {
	c.scheduler.RunInstruction()
}

func (c *Console) Frame() *image.RGBA {
	return c.ppu.Frame()
}

// Pad returns controller 0 or 1.
func (c *Console) Pad(i int) *controller.Controller {
	return c.pads[i]
}

func (c *Console) PPU() *ppu.PPU {
	return c.ppu
}

func (c *Console) CPU() *cpu.CPU {
	return c.cpu
}

func (c *Console) Bus() *Bus {
	return c.bus
}
