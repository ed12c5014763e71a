package main

import (
	"flag"
	"strings"

	"dotnes/cartridge"
	"dotnes/controller"
	"dotnes/host"
	"dotnes/nes"
	"dotnes/ppu"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 480

type Game struct {
	console      *nes.Console
	config       *host.Config
	keys         map[ebiten.Key]controller.Button
	gameScreen   *ebiten.Image
	hud          *hud
	emulationRun bool
	screenshot   string
}

func keyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

func controllerKeys(m host.KeyMap) map[ebiten.Key]controller.Button {
	bindings := []struct {
		name   string
		button controller.Button
	}{
		{m.A, controller.A},
		{m.B, controller.B},
		{m.Select, controller.Select},
		{m.Start, controller.Start},
		{m.Up, controller.Up},
		{m.Down, controller.Down},
		{m.Left, controller.Left},
		{m.Right, controller.Right},
	}
	keys := make(map[ebiten.Key]controller.Button)
	for _, b := range bindings {
		key, ok := keyByName(b.name)
		if !ok {
			glog.Warningf("unknown key %q, button left unbound", b.name)
			continue
		}
		keys[key] = b.button
	}
	return keys
}

func (g *Game) Update() error {
	pad := g.console.Pad(0)
	for key, button := range g.keys {
		pad.Set(button, ebiten.IsKeyPressed(key))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.emulationRun = !g.emulationRun
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.console.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && g.hud != nil {
		g.hud.selectedPalette = (g.hud.selectedPalette + 1) & 0x07
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.screenshot != "" {
		if err := host.SavePNG(g.screenshot, g.console.Frame(), g.config.Scale); err != nil {
			glog.Errorf("%v", err)
		} else {
			glog.Infof("saved %s", g.screenshot)
		}
	}

	switch {
	case g.emulationRun:
		g.console.RunFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.console.RunFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.console.RunInstruction()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.gameScreen.WritePixels(g.console.Frame().Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.config.Scale), float64(g.config.Scale))
	screen.DrawImage(g.gameScreen, op)

	if g.hud != nil {
		g.hud.draw(screen, ppu.Width*g.config.Scale+10, 0)
	}
}

func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	width := ppu.Width * g.config.Scale
	if g.hud != nil {
		width += hudWidth
	}
	return width, ppu.Height * g.config.Scale
}

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config")
	romPath := flag.String("rom", "", "iNES image to run (overrides the config)")
	scale := flag.Int("scale", 0, "window scale (overrides the config)")
	showHUD := flag.Bool("hud", false, "show the debug panel")
	screenshot := flag.String("screenshot", "", "PNG written on P, or after -frames")
	frames := flag.Int("frames", 0, "run this many frames without a window, then exit")
	flag.Parse()
	defer glog.Flush()

	config, err := host.LoadConfig(*configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	if *romPath != "" {
		config.ROM = *romPath
	}
	if *scale > 0 {
		config.SetScale(*scale)
	}
	if *showHUD {
		config.ShowHUD = true
	}
	if config.ROM == "" {
		glog.Exitf("no ROM given; use -rom or set \"rom\" in %s", *configPath)
	}

	cart, err := cartridge.Open(config.ROM)
	if err != nil {
		glog.Exitf("%v", err)
	}
	console := nes.NewConsole(cart)

	if *frames > 0 {
		for i := 0; i < *frames; i++ {
			console.RunFrame()
		}
		if *screenshot != "" {
			if err := host.SavePNG(*screenshot, console.Frame(), config.Scale); err != nil {
				glog.Exitf("%v", err)
			}
		}
		return
	}

	game := &Game{
		console:      console,
		config:       config,
		keys:         controllerKeys(config.Keys),
		gameScreen:   ebiten.NewImage(ppu.Width, ppu.Height),
		emulationRun: true,
		screenshot:   *screenshot,
	}
	if config.ShowHUD {
		game.hud = newHUD(console)
	}

	width, height := game.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("dotnes")
	if err := ebiten.RunGame(game); err != nil {
		glog.Exitf("%v", err)
	}
}
