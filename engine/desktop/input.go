package desktop

import (
	"github.com/1siamBot/coop-invaders/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultKeyMap binds logical keys to keyboard keys. Player 1 plays on the
// left of the keyboard, player 2 on the arrows; the menus share keys with
// them the way the score screen expects.
func DefaultKeyMap() map[input.Key][]ebiten.Key {
	return map[input.Key][]ebiten.Key{
		input.KeyP1Left:  {ebiten.KeyA},
		input.KeyP1Right: {ebiten.KeyD},
		input.KeyP1Fire:  {ebiten.KeySpace},
		input.KeyP2Left:  {ebiten.KeyArrowLeft},
		input.KeyP2Right: {ebiten.KeyArrowRight},
		input.KeyP2Fire:  {ebiten.KeyEnter},
		input.KeyUp:      {ebiten.KeyArrowUp},
		input.KeyDown:    {ebiten.KeyArrowDown},
		input.KeyLeft:    {ebiten.KeyArrowLeft},
		input.KeyRight:   {ebiten.KeyArrowRight},
		input.KeyConfirm: {ebiten.KeySpace},
		input.KeyBack:    {ebiten.KeyEscape},
		input.KeyPause:   {ebiten.KeyP},
	}
}

// InputState tracks keyboard state per frame
type InputState struct {
	KeyMap map[input.Key][]ebiten.Key

	// Keyboard
	KeysPressed map[input.Key]bool
	justPressed map[input.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		KeyMap:      DefaultKeyMap(),
		KeysPressed: make(map[input.Key]bool),
		justPressed: make(map[input.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.sample(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// sample refreshes every bound key from the given keyboard readers
func (s *InputState) sample(pressed, justPressed func(ebiten.Key) bool) {
	for k, bound := range s.KeyMap {
		down, just := false, false
		for _, ek := range bound {
			down = down || pressed(ek)
			just = just || justPressed(ek)
		}
		s.KeysPressed[k] = down
		s.justPressed[k] = just
	}
}

// IsKeyDown returns the level-sensed state sampled by the last Update
func (s *InputState) IsKeyDown(k input.Key) bool {
	return s.KeysPressed[k]
}

// IsKeyJustPressed returns true if the key went down this frame
func (s *InputState) IsKeyJustPressed(k input.Key) bool {
	return s.justPressed[k]
}

// PauseToggle flips on every fresh press of the pause key. Holding the key
// does not flicker it.
type PauseToggle struct {
	Paused bool
}

// Update reads the last sampled input and reports whether play is paused
func (p *PauseToggle) Update(in *InputState) bool {
	if in.IsKeyJustPressed(input.KeyPause) {
		p.Paused = !p.Paused
	}
	return p.Paused
}
