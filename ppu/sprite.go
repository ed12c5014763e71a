package ppu

const (
	maxSpritesPerLine = 8
	spriteHeight      = 8
	emptySlot         = -1

	attrPalette = 0x03
	attrFlipH   = 0x40
	attrFlipV   = 0x80

	spritePaletteSelect = 0x10
)

// collectSprites scans OAM for records covering the given line. The scan
// starts at the OAM cursor, steps by one record and wraps at 256 bytes. The
// result holds OAM byte offsets; unused slots are emptySlot.
func (p *PPU) collectSprites(line int) [maxSpritesPerLine]int {
	var slots [maxSpritesPerLine]int
	found := 0
	start := int(p.oamAddr)
	for i := 0; i < len(p.oam)/4 && found < maxSpritesPerLine; i++ {
		offset := (start + 4*i) & 0xFF
		y := int(p.oam[offset])
		if line >= y && line < y+spriteHeight {
			slots[found] = offset
			found++
		}
	}
	for ; found < maxSpritesPerLine; found++ {
		slots[found] = emptySlot
	}
	return slots
}

// evaluateSprites draws the sprites of a line into the overlay, later slots
// over earlier ones, and returns
// the leftmost column at which the record at the OAM cursor produced an
// opaque pixel, or noHit.
func (p *PPU) evaluateSprites(line int) int {
	ptBase := p.patternBase("pattern_sprite")
	showLeft := p.mask.Flag("render_sprites_left")
	zero := int(p.oamAddr)
	hit := noHit

	for _, offset := range p.collectSprites(line) {
		if offset == emptySlot {
			continue
		}
		sprite := p.spriteAt(offset)

		row := line - int(sprite.Y)
		if sprite.Attribute&attrFlipV != 0 {
			row = spriteHeight - 1 - row
		}
		addr := ptBase + 16*uint16(sprite.ID) + uint16(row)
		lsb := p.vram.Read(addr)
		msb := p.vram.Read(addr + 8)

		for col := 0; col < 8; col++ {
			bit := 7 - col
			if sprite.Attribute&attrFlipH != 0 {
				bit = col
			}
			cell := spritePaletteSelect | (lsb>>bit)&1 | ((msb>>bit)&1)<<1 | (sprite.Attribute&attrPalette)<<2
			// the priority bit is not consulted: an opaque sprite pixel always
			// lands in the overlay
			if cell%4 == 0 {
				continue
			}
			x := int(sprite.X) + col
			if x >= Width || (x < 8 && !showLeft) {
				continue
			}
			p.sprites[x] = cell
			if offset == zero && hit == noHit {
				hit = x
			}
		}
	}

	if hit == 255 {
		hit = noHit
	}
	return hit
}
