package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/coop-invaders/engine/entity"
	"github.com/1siamBot/coop-invaders/engine/render"
)

var spriteGlyphs = map[entity.SpriteType]struct {
	ch    rune
	color tcell.Color
}{
	entity.SpriteShip:          {'A', tcell.ColorGreen},
	entity.SpriteShipDestroyed: {'x', tcell.ColorRed},
	entity.SpriteBullet:        {'|', tcell.ColorWhite},
	entity.SpriteEnemyBullet:   {'!', tcell.ColorOrange},
	entity.SpriteEnemyA:        {'W', tcell.ColorLightBlue},
	entity.SpriteEnemyB:        {'M', tcell.ColorDeepSkyBlue},
	entity.SpriteEnemyC:        {'V', tcell.ColorPurple},
	entity.SpriteEnemySpecial:  {'@', tcell.ColorRed},
	entity.SpriteExplosion:     {'*', tcell.ColorYellow},
}

// Screen replays recorded frames onto a terminal, scaling the logical play
// field down to the terminal's cells
type Screen struct {
	screen        tcell.Screen
	Width, Height int // logical field size
}

func NewScreen(screen tcell.Screen, width, height int) *Screen {
	return &Screen{screen: screen, Width: width, Height: height}
}

// cell maps a logical point to a terminal cell
func (s *Screen) cell(x, y int) (int, int) {
	cols, rows := s.screen.Size()
	if s.Width <= 0 || s.Height <= 0 {
		return x, y
	}
	return x * cols / s.Width, y * rows / s.Height
}

// Present clears the terminal, draws cmds and shows the result
func (s *Screen) Present(cmds []render.Command) {
	s.screen.Clear()
	cols, rows := s.screen.Size()
	for _, c := range cmds {
		switch c.Kind {
		case render.CmdEntity:
			s.drawEntity(c.Sprite, c.Rect)
		case render.CmdHUD:
			s.drawHUD(c.Field, c.Value, cols)
		case render.CmdLine:
			_, y := s.cell(0, c.Y)
			style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
			for x := 0; x < cols; x++ {
				s.screen.SetContent(x, y, '─', nil, style)
			}
		case render.CmdCountdown:
			s.drawCentered(render.CountdownText(c.Level, c.Seconds, c.Flag), rows/2-1, tcell.ColorAqua)
		case render.CmdGameOver:
			s.drawCentered(render.GameOverText(c.Flag, c.NewRecord), rows/4, tcell.ColorAqua)
		case render.CmdResults:
			s.drawCentered(render.ResultLines(c.Results), rows/2-2, tcell.ColorWhite)
		case render.CmdNameInput:
			s.drawNameInput(c.Text, c.Selected, rows)
		case render.CmdHighScores:
			s.drawCentered(render.HighScoreLines(c.Scores), rows/2, tcell.ColorGray)
		case render.CmdText:
			_, y := s.cell(0, c.Y)
			s.drawCentered([]string{c.Text}, y, tcell.ColorWhite)
		}
	}
	s.screen.Show()
}

func (s *Screen) drawEntity(sprite entity.SpriteType, r entity.Rect) {
	g, ok := spriteGlyphs[sprite]
	if !ok {
		g.ch, g.color = '?', tcell.ColorFuchsia
	}
	x, y := s.cell(r.CenterX(), r.CenterY())
	s.screen.SetContent(x, y, g.ch, nil, tcell.StyleDefault.Foreground(g.color))
}

func (s *Screen) drawHUD(field render.HUDField, value, cols int) {
	str := render.HUDText(field, value)
	x := 1
	switch field {
	case render.HUDScore:
		x = cols - len(str) - 1
	case render.HUDCoins:
		x = (cols - len(str)) / 2
	}
	s.drawString(x, 0, str, tcell.StyleDefault)
}

func (s *Screen) drawCentered(lines []string, y int, color tcell.Color) {
	cols, _ := s.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for i, line := range lines {
		s.drawString((cols-len([]rune(line)))/2, y+i, line, style)
	}
}

func (s *Screen) drawNameInput(name string, selected, rows int) {
	y := rows/2 + 3
	s.drawCentered([]string{render.NameInputText()}, y, tcell.ColorWhite)
	cols, _ := s.screen.Size()
	x := (cols - 2*len(name)) / 2
	for i, ch := range name {
		style := tcell.StyleDefault
		if i == selected {
			style = style.Foreground(tcell.ColorGold).Reverse(true)
		}
		s.screen.SetContent(x+2*i, y+1, ch, nil, style)
	}
}

func (s *Screen) drawString(x, y int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		s.screen.SetContent(x+i, y, ch, nil, style)
	}
}
