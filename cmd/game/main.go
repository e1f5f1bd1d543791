package main

import (
	"flag"
	"log"

	"github.com/1siamBot/coop-invaders/engine/app"
	"github.com/1siamBot/coop-invaders/engine/config"
	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/desktop"
	"github.com/1siamBot/coop-invaders/engine/render"
	"github.com/1siamBot/coop-invaders/engine/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game interface
type Game struct {
	app      *app.App
	input    *desktop.InputState
	frame    *render.Frame
	renderer *desktop.Renderer
	pause    desktop.PauseToggle
	width    int
	height   int
}

func NewGame(settings config.Settings) *Game {
	bus := core.NewEventBus()
	app.LogEvents(bus, log.Default())

	g := &Game{
		input:    desktop.NewInputState(),
		frame:    render.NewFrame(),
		renderer: desktop.NewRenderer(settings.Window.Width, settings.Window.Height),
		width:    settings.Window.Width,
		height:   settings.Window.Height,
	}
	g.app = app.New(settings, app.Deps{
		Input: g.input,
		Sink:  g.frame,
		Store: storage.NewFileStore(settings.Leaderboard.Path),
		Bus:   bus,
	})
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	// Toggle pause
	if g.pause.Update(g.input) {
		return nil
	}
	if !g.app.Tick() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Present(screen, g.frame.Commands())
	if g.pause.Paused {
		g.renderer.DrawBanner(screen, "PAUSED - press P to resume")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "config.toml", "path to the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Couldn't load settings, using defaults: %v", err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.Window.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}
