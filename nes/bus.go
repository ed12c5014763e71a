package nes

import (
	"dotnes/controller"
)

const (
	ramSize   = 0x0800
	ramEnd    = 0x1FFF
	ppuEnd    = 0x3FFF
	oamDMA    = 0x4014
	joypad1   = 0x4016
	joypad2   = 0x4017
	cartStart = 0x4020
)

// RegisterPorts is the video chip's register window as the processor bus
// sees it.
type RegisterPorts interface {
	ReadRegister(index uint16) uint8
	PeekRegister(index uint16) uint8
	WriteRegister(index uint16, data uint8)
}

// Cartridge is the program-space side of a cartridge.
type Cartridge interface {
	ReadProgram(addr uint16) (uint8, bool)
	WriteProgram(addr uint16, data uint8) bool
}

type DMATrigger interface {
	StartDMA(page uint8)
}

// Bus decodes processor addresses: work RAM, the video chip registers, the
// pads, the OAM DMA port and the cartridge.
type Bus struct {
	cpuRam    [ramSize]uint8
	ppu       RegisterPorts
	cartridge Cartridge
	pads      [2]*controller.Controller
	dma       DMATrigger
}

func NewBus(ppu RegisterPorts, cartridge Cartridge, pad1, pad2 *controller.Controller) *Bus {
	return &Bus{
		ppu:       ppu,
		cartridge: cartridge,
		pads:      [2]*controller.Controller{pad1, pad2},
	}
}

// ConnectDMA routes writes to the OAM DMA port.
func (b *Bus) ConnectDMA(dma DMATrigger) {
	b.dma = dma
}

func (b *Bus) Write(addr uint16, data uint8) {
	switch {
	case addr <= ramEnd:
		b.cpuRam[addr&(ramSize-1)] = data
	case addr <= ppuEnd:
		b.ppu.WriteRegister(addr&0x0007, data)
	case addr == oamDMA:
		if b.dma != nil {
			b.dma.StartDMA(data)
		}
	case addr == joypad1:
		for _, pad := range b.pads {
			if pad != nil {
				pad.Write(data)
			}
		}
	case addr >= cartStart:
		b.cartridge.WriteProgram(addr, data)
	}
}

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.cpuRam[addr&(ramSize-1)]
	case addr <= ppuEnd:
		return b.ppu.ReadRegister(addr & 0x0007)
	case addr == joypad1 || addr == joypad2:
		if pad := b.pads[addr&0x0001]; pad != nil {
			return pad.Read()
		}
	case addr >= cartStart:
		if data, ok := b.cartridge.ReadProgram(addr); ok {
			return data
		}
	}
	return 0
}

// Peek reads without triggering register side effects. Pads read as 0.
func (b *Bus) Peek(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.cpuRam[addr&(ramSize-1)]
	case addr <= ppuEnd:
		return b.ppu.PeekRegister(addr & 0x0007)
	case addr >= cartStart:
		if data, ok := b.cartridge.ReadProgram(addr); ok {
			return data
		}
	}
	return 0
}

func (b *Bus) Reset() {
	b.cpuRam = [ramSize]uint8{}
	for _, pad := range b.pads {
		if pad != nil {
			pad.Reset()
		}
	}
}
