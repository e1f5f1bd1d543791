package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/input"
)

// DefaultHold is how long a key counts as down after its last press.
// Terminals send no release events, only auto-repeat.
const DefaultHold = 150 * time.Millisecond

// DefaultRuneMap binds printable keys to logical keys
var DefaultRuneMap = map[rune]input.Key{
	'a': input.KeyP1Left,
	'd': input.KeyP1Right,
	' ': input.KeyP1Fire,
	'j': input.KeyP2Left,
	'l': input.KeyP2Right,
	'k': input.KeyP2Fire,
}

// DefaultKeyMap binds special keys to logical keys
var DefaultKeyMap = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyEnter:  input.KeyConfirm,
	tcell.KeyEscape: input.KeyBack,
}

// Keyboard turns terminal key events into held keys
type Keyboard struct {
	mu       sync.Mutex
	clock    core.Clock
	hold     time.Duration
	lastSeen map[input.Key]time.Time

	RuneMap map[rune]input.Key
	KeyMap  map[tcell.Key]input.Key
}

func NewKeyboard(clock core.Clock, hold time.Duration) *Keyboard {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{
		clock:    clock,
		hold:     hold,
		lastSeen: make(map[input.Key]time.Time),
		RuneMap:  DefaultRuneMap,
		KeyMap:   DefaultKeyMap,
	}
}

// HandleEvent records a key event. It returns false for Ctrl-C.
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	if kev.Key() == tcell.KeyCtrlC {
		return false
	}

	if key, ok := k.Translate(kev.Key(), kev.Rune()); ok {
		k.Press(key)
	}
	return true
}

// Translate maps a terminal key to a logical key
func (k *Keyboard) Translate(tk tcell.Key, r rune) (input.Key, bool) {
	if tk == tcell.KeyRune {
		key, ok := k.RuneMap[r]
		return key, ok
	}
	key, ok := k.KeyMap[tk]
	return key, ok
}

// Press marks key as held from now on for the hold window
func (k *Keyboard) Press(key input.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.clock.Now()
	k.lastSeen[key] = now
	// Space doubles as confirm on the menus
	if key == input.KeyP1Fire {
		k.lastSeen[input.KeyConfirm] = now
	}
}

func (k *Keyboard) IsKeyDown(key input.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	t, ok := k.lastSeen[key]
	return ok && k.clock.Now().Sub(t) < k.hold
}

// Listen feeds events from screen until it is finalized or Ctrl-C is hit.
// quit is closed on Ctrl-C.
func (k *Keyboard) Listen(screen tcell.Screen, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !k.HandleEvent(ev) {
			close(quit)
			return
		}
	}
}
