package app

import (
	"log"
	"math/rand"
	"time"

	"github.com/1siamBot/coop-invaders/engine/config"
	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
	"github.com/1siamBot/coop-invaders/engine/input"
	"github.com/1siamBot/coop-invaders/engine/render"
	"github.com/1siamBot/coop-invaders/engine/round"
	"github.com/1siamBot/coop-invaders/engine/ui"
)

// Mode is the screen the app is showing
type Mode uint8

const (
	ModeTitle Mode = iota
	ModeRound
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeRound:
		return "round"
	case ModeResults:
		return "results"
	}
	return "unknown"
}

// Deps are shared by every screen. Bus, Logger, Rand and Clock are optional.
type Deps struct {
	Input  input.KeyOracle
	Sink   render.DrawSink
	Store  ui.LeaderboardStore
	Clock  core.Clock
	Rand   *rand.Rand
	Bus    *core.EventBus
	Logger *log.Logger
}

// App moves between the title, the rounds of a game and the score screen
type App struct {
	settings config.Settings
	deps     Deps
	pool     *entity.BulletPool

	mode    Mode
	coop    bool
	state   *core.GameState
	title   *ui.TitleScreen
	round   *round.Round
	results *ui.ResultsScreen
	quit    bool
}

// New opens the title screen
func New(settings config.Settings, deps Deps) *App {
	if deps.Clock == nil {
		deps.Clock = core.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a := &App{
		settings: settings,
		deps:     deps,
		pool:     &entity.BulletPool{},
		coop:     settings.Round.Coop,
	}
	a.showTitle()
	return a
}

func (a *App) uiDeps() ui.Deps {
	return ui.Deps{Input: a.deps.Input, Sink: a.deps.Sink, Clock: a.deps.Clock, Bus: a.deps.Bus, Logger: a.deps.Logger}
}

func (a *App) showTitle() {
	a.mode = ModeTitle
	a.title = ui.NewTitleScreen(a.deps.Store, a.coop, a.uiDeps(), a.settings.ResultsConfig())
}

func (a *App) startGame() {
	a.state = core.NewGameState(1, a.settings.Round.LivesEach, a.coop)
	a.deps.Logger.Printf("Starting %s game with %d lives", gameKind(a.coop), a.state.LivesRemaining())
	a.startRound()
}

func gameKind(coop bool) string {
	if coop {
		return "co-op"
	}
	return "single player"
}

func (a *App) startRound() {
	a.mode = ModeRound
	level := a.state.Level()
	w, h := a.settings.Window.Width, a.settings.Window.Height
	formation := entity.NewFormation(a.settings.Formation(level), w, h, a.deps.Clock, a.deps.Rand)
	a.round = round.New(a.state, formation, round.Deps{
		Input:  a.deps.Input,
		Sink:   a.deps.Sink,
		Clock:  a.deps.Clock,
		Rand:   a.deps.Rand,
		Bus:    a.deps.Bus,
		Logger: a.deps.Logger,
		Pool:   a.pool,
	}, a.settings.RoundConfig(level))
}

func (a *App) showResults() {
	a.mode = ModeResults
	a.results = ui.NewResultsScreen(a.state, a.deps.Store, a.uiDeps(), a.settings.ResultsConfig())
}

// Tick advances the current screen by one frame. It returns false once the
// players chose to quit.
func (a *App) Tick() bool {
	if a.quit {
		return false
	}
	switch a.mode {
	case ModeTitle:
		a.title.Tick()
		if !a.title.Done() {
			break
		}
		a.coop = a.title.Coop
		if a.title.Result() == core.ResultPlayAgain {
			a.startGame()
		} else {
			a.quit = true
		}
	case ModeRound:
		a.round.Tick()
		if !a.round.Done() {
			break
		}
		// bullets still in flight go back to the shared pool
		a.round.Bullets().Clear()
		if a.round.Cleared() && !a.settings.LastLevel(a.state.Level()) {
			a.state.NextLevel()
			a.startRound()
		} else {
			a.showResults()
		}
	case ModeResults:
		a.results.Tick()
		if !a.results.Done() {
			break
		}
		if a.results.Result() == core.ResultPlayAgain {
			a.startGame()
		} else {
			a.showTitle()
		}
	}
	if a.deps.Bus != nil {
		a.deps.Bus.Dispatch()
	}
	return !a.quit
}

func (a *App) Mode() Mode { return a.mode }

// State returns the game in progress, nil before the first game
func (a *App) State() *core.GameState { return a.state }

func (a *App) Round() *round.Round { return a.round }

func (a *App) Results() *ui.ResultsScreen { return a.results }

func (a *App) Coop() bool { return a.coop }

// LogEvents writes the notable game events to logger
func LogEvents(bus *core.EventBus, logger *log.Logger) {
	bus.On(core.EvtEnemyDestroyed, func(e core.Event) {
		logger.Printf("tick %d: player %d destroyed an enemy for %d points", e.Tick, e.Player+1, e.Points)
	})
	bus.On(core.EvtSpecialDestroyed, func(e core.Event) {
		logger.Printf("tick %d: player %d shot down the special ship for %d points", e.Tick, e.Player+1, e.Points)
	})
	bus.On(core.EvtRoundFinished, func(e core.Event) {
		logger.Printf("tick %d: round over, team score %d", e.Tick, e.Points)
	})
	bus.On(core.EvtRecordSaved, func(e core.Event) {
		logger.Printf("New high score %d saved", e.Points)
	})
}
