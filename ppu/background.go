package ppu

const (
	nametableBase   = 0x2000
	attributeOffset = 0x03C0
)

func (p *PPU) patternBase(field string) uint16 {
	if p.control.Flag(field) {
		return 0x1000
	}
	return 0x0000
}

func (p *PPU) nametableAddr() uint16 {
	return nametableBase | uint16(p.control.GetField("nametable"))<<10
}

// attributeBase returns the attribute table that belongs to the nametable
// containing ntAddr.
func attributeBase(ntAddr uint16) uint16 {
	return (ntAddr & 0x2C00) + attributeOffset
}

// renderBackground fills the background row for the given visible line.
// Each cell is lo | hi<<1 | paletteGroup<<2.
func (p *PPU) renderBackground(line int) {
	scrollX := int(p.scroll[0])
	y := line + int(p.scroll[1])

	ptBase := p.patternBase("pattern_background")
	ntAddr := p.nametableAddr() + uint16(32*(y/8)+scrollX/8)
	atAddr := attributeBase(ntAddr) + uint16(8*(y/32)+scrollX/32)

	var attr, group, lsb, msb uint8
	column := 0
	for x := scrollX; x < scrollX+Width; x++ {
		if x == Width {
			// sweep ran off the right edge: continue in the neighbouring nametable
			ntAddr = ((ntAddr & 0x2C00) ^ 0x0400) + uint16(32*(y/8))
			atAddr = attributeBase(ntAddr) + uint16(8*(y/32))
		}

		if x == scrollX || x%8 == 0 {
			tileID := p.vram.Read(ntAddr)
			ntAddr++
			tileAddr := ptBase + 16*uint16(tileID) + uint16(y%8)
			lsb = p.vram.Read(tileAddr)
			msb = p.vram.Read(tileAddr + 8)

			if x == scrollX || x%16 == 0 {
				if x == scrollX || x%32 == 0 {
					attr = p.vram.Read(atAddr)
					atAddr++
				}
				shift := 0
				if x%32 > 15 {
					shift += 2
				}
				if y%32 > 15 {
					shift += 4
				}
				group = ((attr >> shift) & 0x03) << 2
			}
		}

		bit := 7 - x%8
		p.background[column] = (lsb>>bit)&1 | ((msb>>bit)&1)<<1 | group
		column++
	}
}
