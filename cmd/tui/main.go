package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/coop-invaders/engine/app"
	"github.com/1siamBot/coop-invaders/engine/config"
	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/render"
	"github.com/1siamBot/coop-invaders/engine/storage"
	"github.com/1siamBot/coop-invaders/engine/tui"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the settings file")
	logPath := flag.String("log", "coop-invaders.log", "log file; the terminal is taken by the game")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("Couldn't load settings, using defaults: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	clock := core.SystemClock{}
	keyboard := tui.NewKeyboard(clock, tui.DefaultHold)
	quit := make(chan struct{})
	go keyboard.Listen(screen, quit)

	bus := core.NewEventBus()
	app.LogEvents(bus, logger)

	frame := render.NewFrame()
	view := tui.NewScreen(screen, settings.Window.Width, settings.Window.Height)
	game := app.New(settings, app.Deps{
		Input:  keyboard,
		Sink:   frame,
		Store:  storage.NewFileStore(settings.Leaderboard.Path),
		Clock:  clock,
		Bus:    bus,
		Logger: logger,
	})

	loop := core.NewGameLoop(float64(settings.Window.TPS), clock)
	loop.Play()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	running := true
	for running {
		select {
		case <-quit:
			return
		case <-ticker.C:
			loop.Update(func() {
				if running && !game.Tick() {
					running = false
				}
			})
			view.Present(frame.Commands())
		}
	}
}
