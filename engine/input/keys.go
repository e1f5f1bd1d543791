package input

// Key is a logical key the game asks about
type Key uint8

const (
	KeyP1Left Key = iota
	KeyP1Right
	KeyP1Fire
	KeyP2Left
	KeyP2Right
	KeyP2Fire
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyBack
	KeyPause
	keyCount
)

// Keys lists every logical key
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyOracle answers whether a key is held down right now
type KeyOracle interface {
	IsKeyDown(k Key) bool
}

// Bindings are the keys one player steers and fires with
type Bindings struct {
	Left, Right, Fire Key
}

// PlayerBindings returns the default bindings per player slot
func PlayerBindings() [2]Bindings {
	return [2]Bindings{
		{Left: KeyP1Left, Right: KeyP1Right, Fire: KeyP1Fire},
		{Left: KeyP2Left, Right: KeyP2Right, Fire: KeyP2Fire},
	}
}

// KeySet is a fixed key state, handy for scripted input
type KeySet map[Key]bool

func (s KeySet) IsKeyDown(k Key) bool { return s[k] }

// Press marks keys as held
func (s KeySet) Press(keys ...Key) {
	for _, k := range keys {
		s[k] = true
	}
}

// Release marks keys as up
func (s KeySet) Release(keys ...Key) {
	for _, k := range keys {
		delete(s, k)
	}
}
