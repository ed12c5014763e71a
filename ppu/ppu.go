package ppu

import (
	"image"
)

// Visible picture and total timing grid, in dots and lines.
const (
	Width  = 256
	Height = 240

	DotsPerLine   = 341
	LinesPerFrame = 262
	DotsPerFrame  = DotsPerLine * LinesPerFrame
)

const noHit = -1

// ObjectAttributeEntry is one 4-byte OAM record as it appears in memory.
type ObjectAttributeEntry struct {
	Y         uint8
	ID        uint8
	Attribute uint8
	X         uint8
}

// PPU is the video chip: register file, video memory, OAM and the dot
// driven timing state machine that renders into the framebuffer.
//
// All methods run on the caller's goroutine; the chip is not safe for
// concurrent use.
type PPU struct {
	vram *VideoMemory

	control Register
	mask    Register
	status  Register

	// scroll[0] is X, scroll[1] is Y and also the staging slot for the
	// next write.
	scroll      [2]uint8
	vramAddr    uint16
	writeToggle bool
	oamAddr     uint8

	oam [256]uint8

	background [Width]uint8
	sprites    [Width]uint8
	frame      *image.RGBA

	dot       int
	line      int
	ticks     uint64
	lastFrame uint64
	hitColumn int
	interrupt bool
}

func New(chip ChipBus) *PPU {
	p := &PPU{
		vram:      NewVideoMemory(chip),
		control:   CreateControlRegister(),
		mask:      CreateMaskRegister(),
		status:    CreateStatusRegister(),
		frame:     image.NewRGBA(image.Rect(0, 0, Width, Height)),
		hitColumn: noHit,
	}
	return p
}

// Reset returns the chip to its power-on state.
func (p *PPU) Reset() {
	p.vram.reset()
	p.control.SetReg(0)
	p.mask.SetReg(0)
	p.status.SetReg(0)
	p.scroll = [2]uint8{}
	p.vramAddr = 0
	p.writeToggle = false
	p.oamAddr = 0
	p.oam = [256]uint8{}
	p.background = [Width]uint8{}
	p.sprites = [Width]uint8{}
	p.dot = 0
	p.line = 0
	p.ticks = 0
	p.lastFrame = 0
	p.hitColumn = noHit
	p.interrupt = false
}

// Tick advances the chip by one dot.
func (p *PPU) Tick() {
	if p.dot == 0 {
		if p.line == 0 {
			p.startFrame()
		}
		if p.line < Height {
			p.renderLine(p.line)
		}
	} else if p.dot == 1 && p.line == Height+1 {
		p.status.SetField("vertical_blank", 1)
		p.interrupt = true
	}

	if p.line < Height {
		if p.dot < Width {
			if p.dot == p.hitColumn {
				p.status.SetField("sprite_zero_hit", 1)
			}
			p.composite(p.dot, p.line)
		} else if p.mask.Flag("render_sprites") {
			p.oamAddr = 0
		}
	}

	p.ticks++
	p.dot++
	if p.dot == DotsPerLine {
		p.dot = 0
		p.line++
		if p.line == LinesPerFrame {
			p.line = 0
		}
	}
}

func (p *PPU) startFrame() {
	p.background = [Width]uint8{}
	p.status.SetField("vertical_blank", 0)
	p.status.SetField("sprite_zero_hit", 0)
	p.interrupt = false
}

func (p *PPU) renderLine(line int) {
	p.hitColumn = noHit
	p.sprites = [Width]uint8{}
	if p.mask.Flag("render_background") {
		p.renderBackground(line)
	}
	if p.mask.Flag("render_sprites") {
		p.hitColumn = p.evaluateSprites(line)
	}
}

// NMI reports whether the chip is requesting a non-maskable interrupt. The
// request stays asserted from vblank entry until the next frame starts.
func (p *PPU) NMI() bool {
	return p.control.Flag("enable_nmi") && p.interrupt
}

// FrameReady reports whether more than one frame's worth of dots has elapsed
// since the last time it returned true. A true result is consumed.
func (p *PPU) FrameReady() bool {
	if p.ticks > p.lastFrame+DotsPerFrame {
		p.lastFrame = p.ticks
		return true
	}
	return false
}

// Frame returns the framebuffer. It is rewritten in place as the chip runs.
func (p *PPU) Frame() *image.RGBA {
	return p.frame
}

// Position returns the dot and line that the next Tick will process.
func (p *PPU) Position() (dot, line int) {
	return p.dot, p.line
}

// OAM returns a copy of object attribute memory.
func (p *PPU) OAM() [256]uint8 {
	return p.oam
}

// Sprite decodes the OAM record at the given index (0-63).
func (p *PPU) Sprite(index int) ObjectAttributeEntry {
	return p.spriteAt(index * 4)
}

func (p *PPU) spriteAt(offset int) ObjectAttributeEntry {
	return ObjectAttributeEntry{
		Y:         p.oam[offset&0xFF],
		ID:        p.oam[(offset+1)&0xFF],
		Attribute: p.oam[(offset+2)&0xFF],
		X:         p.oam[(offset+3)&0xFF],
	}
}
