package ppu

import "github.com/golang/glog"

// Register indices within the chip's eight byte window. The bus reduces
// every address in the window with index = addr & 7.
const (
	PPUCTRL   = 0x0
	PPUMASK   = 0x1
	PPUSTATUS = 0x2
	OAMADDR   = 0x3
	OAMDATA   = 0x4
	PPUSCROLL = 0x5
	PPUADDR   = 0x6
	PPUDATA   = 0x7
)

func (p *PPU) increment() uint16 {
	if p.control.Flag("increment_mode") {
		return 32
	}
	return 1
}

// ReadRegister performs a bus read of a chip register. Reads have side
// effects: PPUSTATUS clears the vblank flag (and only that flag), OAMDATA
// advances the OAM cursor and PPUDATA advances the video address.
func (p *PPU) ReadRegister(index uint16) uint8 {
	data := uint8(0)
	switch index & 7 {
	case PPUCTRL:
		data = p.control.Reg
	case PPUMASK:
		data = p.mask.Reg
	case PPUSTATUS:
		data = p.status.Reg
		p.status.SetField("vertical_blank", 0)
	case OAMDATA:
		data = p.oam[p.oamAddr]
		p.oamAddr++
	case PPUADDR:
		data = uint8(p.vramAddr)
	case PPUDATA:
		data = p.vram.Read(p.vramAddr)
		p.vramAddr = (p.vramAddr + p.increment()) & 0x3FFF
	}
	return data
}

// PeekRegister returns what ReadRegister would return without any of its
// side effects. It is meant for debuggers and disassemblers.
func (p *PPU) PeekRegister(index uint16) uint8 {
	switch index & 7 {
	case PPUCTRL:
		return p.control.Reg
	case PPUMASK:
		return p.mask.Reg
	case PPUSTATUS:
		return p.status.Reg
	case OAMDATA:
		return p.oam[p.oamAddr]
	case PPUADDR:
		return uint8(p.vramAddr)
	case PPUDATA:
		return p.vram.Read(p.vramAddr)
	}
	return 0
}

// WriteRegister performs a bus write of a chip register.
func (p *PPU) WriteRegister(index uint16, data uint8) {
	switch index & 7 {
	case PPUCTRL:
		p.writeControl(data)
	case PPUMASK:
		p.mask.SetReg(data)
	case PPUSTATUS:
	case OAMADDR:
		p.oamAddr = data
	case OAMDATA:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case PPUSCROLL:
		p.scroll[0] = p.scroll[1]
		p.scroll[1] = data
	case PPUADDR:
		p.vramAddr = ((p.vramAddr & 0x3F) << 8) | uint16(data)
		p.writeToggle = !p.writeToggle
	case PPUDATA:
		p.vram.Write(p.vramAddr, data)
		p.vramAddr = (p.vramAddr + p.increment()) & 0x3FFF
	}
}

// writeControl stores ctrl and reports whether it warned about 8x16 sprites,
// which happens only when the size bit goes from 0 to 1.
func (p *PPU) writeControl(data uint8) bool {
	wasLarge := p.control.Flag("sprite_size")
	p.control.SetReg(data)
	if p.control.Flag("sprite_size") && !wasLarge {
		glog.Warningf("ppu: 8x16 sprites requested (ctrl=0x%02x), rendering as 8x8", data)
		return true
	}
	return false
}

// Scroll returns the horizontal and vertical scroll offsets.
func (p *PPU) Scroll() (x, y uint8) {
	return p.scroll[0], p.scroll[1]
}

// Address returns the 14-bit video address pointer and the write toggle,
// which flips on every PPUADDR write.
func (p *PPU) Address() (uint16, bool) {
	return p.vramAddr, p.writeToggle
}

// OAMAddress returns the OAM cursor.
func (p *PPU) OAMAddress() uint8 {
	return p.oamAddr
}
