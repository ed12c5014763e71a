package ppu

import (
	"fmt"
	"image"
	"image/color"
)

// composite merges the background row and the sprite overlay for column x
// and writes the resolved colour into the framebuffer.
func (p *PPU) composite(x, y int) {
	cell := p.background[x]
	if sprite := p.sprites[x]; sprite%4 != 0 {
		cell = sprite
	}
	if cell%4 == 0 {
		cell = 0
	}
	p.setPixel(x, y, p.colourFromPaletteRam(cell))
}

func (p *PPU) colourFromPaletteRam(cell uint8) color.RGBA {
	entry := p.vram.Read(paletteBase + uint16(cell))
	if p.mask.Flag("grayscale") {
		entry &= 0x30
	}
	return MasterColor(entry)
}

func (p *PPU) setPixel(x, y int, c color.RGBA) {
	i := y*Width + x
	if x < 0 || y < 0 || i >= Width*Height {
		panic(fmt.Sprintf("ppu: pixel (%d, %d) outside the %dx%d framebuffer", x, y, Width, Height))
	}
	o := i * 4
	pix := p.frame.Pix[o : o+4 : o+4]
	pix[0] = c.R
	pix[1] = c.G
	pix[2] = c.B
	pix[3] = c.A
}

// PatternTable renders one of the two 4 KiB pattern tables as a 128x128
// image of 16x16 tiles, coloured with the given palette group (0-7).
func (p *PPU) PatternTable(table uint8, palette uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	base := uint16(table&1) * 0x1000
	group := (palette & 0x07) << 2
	for tileY := uint16(0); tileY < 16; tileY++ {
		for tileX := uint16(0); tileX < 16; tileX++ {
			offset := tileY*256 + tileX*16
			for row := uint16(0); row < 8; row++ {
				tileLsb := p.vram.Read(base + offset + row)
				tileMsb := p.vram.Read(base + offset + row + 8)
				for col := uint16(0); col < 8; col++ {
					pixel := (tileLsb & 0x01) | (tileMsb&0x01)<<1
					tileLsb >>= 1
					tileMsb >>= 1
					cell := group | pixel
					if pixel == 0 {
						cell = 0
					}
					img.SetRGBA(int(tileX*8+(7-col)), int(tileY*8+row), p.colourFromPaletteRam(cell))
				}
			}
		}
	}
	return img
}
