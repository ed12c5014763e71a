package main

import (
	"fmt"
	"image/color"

	"dotnes/cpu"
	"dotnes/nes"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var (
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GREEN = color.RGBA{G: 0xFF, A: 0xFF}
	RED   = color.RGBA{R: 0xFF, A: 0xFF}
	CYAN  = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
)

const lineSize = 18

// hud is the debug panel: processor state, code around the program
// counter, pattern tables and the first OAM entries.
type hud struct {
	console         *nes.Console
	face            font.Face
	selectedPalette uint8
	patterns        [2]*ebiten.Image
}

func newHUD(console *nes.Console) *hud {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		glog.Exitf("hud font: %v", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    8,
		DPI:     72 * 2,
		Hinting: font.HintingNone,
	})
	if err != nil {
		glog.Exitf("hud font: %v", err)
	}
	return &hud{
		console:  console,
		face:     face,
		patterns: [2]*ebiten.Image{ebiten.NewImage(128, 128), ebiten.NewImage(128, 128)},
	}
}

func (h *hud) drawString(screen *ebiten.Image, x, y int, str string, clr color.Color) {
	text.Draw(screen, str, h.face, x, y, clr)
}

func (h *hud) draw(screen *ebiten.Image, x, y int) {
	h.drawCPU(screen, x, y+lineSize)
	h.drawCode(screen, x, y+lineSize*9, 9)
	h.drawPatterns(screen, x, y+lineSize*19)
	h.drawOAM(screen, x+270, y+lineSize*19, 12)
}

func (h *hud) drawCPU(screen *ebiten.Image, x, y int) {
	regs := h.console.CPU().Registers()
	h.drawString(screen, x, y, "STATUS:", WHITE)
	for i, f := range []struct {
		name string
		flag cpu.Flag
	}{
		{"N", cpu.N}, {"V", cpu.V}, {"U", cpu.U}, {"B", cpu.B},
		{"D", cpu.D}, {"I", cpu.I}, {"Z", cpu.Z}, {"C", cpu.C},
	} {
		clr := RED
		if regs.Status&uint8(f.flag) != 0 {
			clr = GREEN
		}
		h.drawString(screen, x+70+i*12, y, f.name, clr)
	}

	dot, line := h.console.PPU().Position()
	rows := []string{
		fmt.Sprintf("PC: $%04X", regs.PC),
		fmt.Sprintf("A: $%02X  X: $%02X  Y: $%02X", regs.A, regs.X, regs.Y),
		fmt.Sprintf("Stack P: $%02X", regs.SP),
		fmt.Sprintf("Cycles: %d", regs.Cycles),
		fmt.Sprintf("Dot: %d Line: %d", dot, line),
	}
	for i, row := range rows {
		h.drawString(screen, x, y+lineSize*(i+1), row, WHITE)
	}
}

// drawCode lists the instructions from the program counter onwards.
func (h *hud) drawCode(screen *ebiten.Image, x, y, nLines int) {
	pc := h.console.CPU().Registers().PC
	code := h.console.CPU().Disassemble(pc, pc+uint16(nLines*3))
	for i, in := range code {
		if i == nLines {
			break
		}
		clr := WHITE
		if i == 0 {
			clr = CYAN
		}
		h.drawString(screen, x, y+i*lineSize, in.Text, clr)
	}
}

func (h *hud) drawPatterns(screen *ebiten.Image, x, y int) {
	for i := range h.patterns {
		h.patterns[i].WritePixels(h.console.PPU().PatternTable(uint8(i), h.selectedPalette).Pix)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x+i*132), float64(y))
		screen.DrawImage(h.patterns[i], op)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("palette %d (H)", h.selectedPalette), x, y+130)
}

func (h *hud) drawOAM(screen *ebiten.Image, x, y, n int) {
	for i := 0; i < n; i++ {
		s := h.console.PPU().Sprite(i)
		row := fmt.Sprintf("%02X: (%d, %d) ID: %02X AT: %02X", i, s.X, s.Y, s.ID, s.Attribute)
		ebitenutil.DebugPrintAt(screen, row, x, y+i*16)
	}
}
