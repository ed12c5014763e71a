package ppu

// flatChip is a cartridge with no mirroring: every chip address below
// 0x3000 has its own byte.
type flatChip struct {
	mem [0x3000]uint8
}

func (c *flatChip) ReadChip(addr uint16) uint8 {
	return c.mem[addr]
}

func (c *flatChip) WriteChip(addr uint16, data uint8) {
	c.mem[addr] = data
}

func newTestPPU() (*PPU, *flatChip) {
	chip := &flatChip{}
	p := New(chip)
	p.Reset()
	return p, chip
}

func tickN(p *PPU, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func setAddress(p *PPU, addr uint16) {
	p.WriteRegister(PPUADDR, uint8(addr>>8))
	p.WriteRegister(PPUADDR, uint8(addr))
}

func setSprite(p *PPU, index int, y, id, attribute, x uint8) {
	p.oam[index*4] = y
	p.oam[index*4+1] = id
	p.oam[index*4+2] = attribute
	p.oam[index*4+3] = x
}
