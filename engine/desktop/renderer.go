package desktop

import (
	"image/color"
	"strings"

	"github.com/1siamBot/coop-invaders/engine/entity"
	"github.com/1siamBot/coop-invaders/engine/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// SpriteColors maps sprites to colors (placeholder until real sprites)
var SpriteColors = map[entity.SpriteType]color.RGBA{
	entity.SpriteShip:          {60, 220, 80, 255},
	entity.SpriteShipDestroyed: {220, 60, 60, 255},
	entity.SpriteBullet:        {240, 240, 240, 255},
	entity.SpriteEnemyBullet:   {255, 120, 60, 255},
	entity.SpriteEnemyA:        {200, 220, 255, 255},
	entity.SpriteEnemyB:        {120, 200, 255, 255},
	entity.SpriteEnemyC:        {200, 120, 255, 255},
	entity.SpriteEnemySpecial:  {255, 40, 40, 255},
	entity.SpriteExplosion:     {255, 200, 50, 255},
}

var (
	bgColor     = color.RGBA{8, 8, 16, 255}
	textColor   = color.RGBA{200, 220, 255, 255}
	accentColor = color.RGBA{0, 200, 255, 255}
	dimColor    = color.RGBA{100, 120, 150, 255}
	lineColor   = color.RGBA{60, 220, 80, 255}
	goldColor   = color.RGBA{255, 200, 50, 255}
)

const lineHeight = 18

// Renderer replays recorded frames onto an ebiten screen
type Renderer struct {
	Width, Height int
	face          *text.GoXFace
}

// NewRenderer creates a renderer for a fixed logical screen size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:  width,
		Height: height,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Present draws every command of a frame in order
func (r *Renderer) Present(screen *ebiten.Image, cmds []render.Command) {
	screen.Fill(bgColor)
	for _, c := range cmds {
		switch c.Kind {
		case render.CmdEntity:
			r.drawEntity(screen, c.Sprite, c.Rect)
		case render.CmdHUD:
			r.drawHUD(screen, c.Field, c.Value)
		case render.CmdLine:
			vector.StrokeLine(screen, 0, float32(c.Y), float32(r.Width), float32(c.Y), 1, lineColor, false)
		case render.CmdCountdown:
			r.drawCentered(screen, render.CountdownText(c.Level, c.Seconds, c.Flag), r.Height/2-lineHeight, accentColor)
			vector.StrokeLine(screen, 0, float32(r.Height/2-r.Height/12), float32(r.Width), float32(r.Height/2-r.Height/12), 1, lineColor, false)
			vector.StrokeLine(screen, 0, float32(r.Height/2+r.Height/12), float32(r.Width), float32(r.Height/2+r.Height/12), 1, lineColor, false)
		case render.CmdGameOver:
			r.drawCentered(screen, render.GameOverText(c.Flag, c.NewRecord), r.Height/4, accentColor)
		case render.CmdResults:
			r.drawCentered(screen, render.ResultLines(c.Results), r.Height/2-2*lineHeight, textColor)
		case render.CmdNameInput:
			r.drawNameInput(screen, c.Text, c.Selected)
		case render.CmdHighScores:
			r.drawCentered(screen, render.HighScoreLines(c.Scores), r.Height/2, dimColor)
		case render.CmdText:
			r.drawCentered(screen, []string{c.Text}, c.Y, textColor)
		}
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, sprite entity.SpriteType, rect entity.Rect) {
	clr, ok := SpriteColors[sprite]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.W), float32(rect.H)

	switch sprite {
	case entity.SpriteShip, entity.SpriteShipDestroyed:
		// Hull with a turret on top
		vector.DrawFilledRect(screen, x, y+h/2, w, h/2, clr, false)
		vector.DrawFilledRect(screen, x+w/2-2, y, 4, h/2, clr, false)
	case entity.SpriteExplosion:
		vector.StrokeLine(screen, x, y, x+w, y+h, 2, clr, false)
		vector.StrokeLine(screen, x+w, y, x, y+h, 2, clr, false)
	default:
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, field render.HUDField, value int) {
	s := render.HUDText(field, value)
	op := &text.DrawOptions{}
	switch field {
	case render.HUDScore:
		op.GeoM.Translate(float64(r.Width-20), 12)
		op.PrimaryAlign = text.AlignEnd
	case render.HUDLives:
		op.GeoM.Translate(20, 12)
	case render.HUDCoins:
		op.GeoM.Translate(float64(r.Width/2), 12)
		op.PrimaryAlign = text.AlignCenter
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, r.face, op)
}

// DrawBanner writes a single line over the middle of the screen
func (r *Renderer) DrawBanner(screen *ebiten.Image, line string) {
	r.drawCentered(screen, []string{line}, r.Height/2, goldColor)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, lines []string, y int, clr color.Color) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.Width/2), float64(y+i*lineHeight))
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, r.face, op)
	}
}

func (r *Renderer) drawNameInput(screen *ebiten.Image, name string, selected int) {
	y := r.Height/2 + 3*lineHeight
	r.drawCentered(screen, []string{render.NameInputText()}, y, textColor)

	// Letters spaced out, the selected one in gold
	const spacing = 24
	startX := r.Width/2 - spacing*(len(name)-1)/2
	for i, ch := range strings.Split(name, "") {
		clr := textColor
		if i == selected {
			clr = goldColor
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(startX+i*spacing), float64(y+lineHeight+4))
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, ch, r.face, op)
	}
}
