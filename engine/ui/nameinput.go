package ui

import "github.com/1siamBot/coop-invaders/engine/core"

const (
	firstChar = 'A'
	lastChar  = 'Z'
)

// NameEditor edits a fixed-length A-Z name. The cursor and every letter
// wrap around.
type NameEditor struct {
	name     [core.NameLength]byte
	selected int
}

// NewNameEditor starts at "AAA" with the first letter selected
func NewNameEditor() *NameEditor {
	e := &NameEditor{}
	for i := range e.name {
		e.name[i] = firstChar
	}
	return e
}

// Next moves the cursor right, wrapping to the first letter
func (e *NameEditor) Next() {
	e.selected = (e.selected + 1) % len(e.name)
}

// Prev moves the cursor left, wrapping to the last letter
func (e *NameEditor) Prev() {
	e.selected = (e.selected + len(e.name) - 1) % len(e.name)
}

// Up moves the selected letter forward in the alphabet
func (e *NameEditor) Up() {
	c := &e.name[e.selected]
	if *c == lastChar {
		*c = firstChar
	} else {
		*c++
	}
}

// Down moves the selected letter back in the alphabet
func (e *NameEditor) Down() {
	c := &e.name[e.selected]
	if *c == firstChar {
		*c = lastChar
	} else {
		*c--
	}
}

func (e *NameEditor) Name() string { return string(e.name[:]) }

func (e *NameEditor) Selected() int { return e.selected }
