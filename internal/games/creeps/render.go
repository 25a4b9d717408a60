package creeps

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-creeps/internal/core"
)

// Sprite is a read-only view of one drawable entity.
type Sprite struct {
	Pos    core.Vec2
	Size   float64
	Color  core.Color
	Glyph  rune
	Player bool
}

// Sprites returns every drawable entity in creation order.
func (s *Sim) Sprites() []Sprite {
	out := make([]Sprite, 0, s.world.Len())
	for _, e := range s.world.Entities() {
		pos, ok := s.c.Position.Get(e)
		if !ok {
			continue
		}
		if s.c.Player.Has(e) {
			out = append(out, Sprite{
				Pos:    pos.P,
				Size:   s.player.Size,
				Color:  s.player.Color,
				Glyph:  s.player.Glyph,
				Player: true,
			})
			continue
		}
		if enemy, ok := s.c.Enemy.Get(e); ok {
			p := s.profiles.Of(enemy.Kind)
			out = append(out, Sprite{Pos: pos.P, Size: p.Size, Color: p.Color, Glyph: p.Glyph})
		}
	}
	return out
}

// Sprites returns every drawable entity of the current run.
func (g *Game) Sprites() []Sprite {
	if g.sim == nil {
		return nil
	}
	return g.sim.Sprites()
}

// viewport maps the square arena onto a region of the terminal grid.
// Terminal cells are roughly twice as tall as they are wide, so the
// field is twice as many columns as rows.
type viewport struct {
	field core.Rect // Cells inside the border
	half  float64
}

func newViewport(screenW, screenH int, half float64) viewport {
	fieldH := screenH - 3 // HUD row plus top and bottom border
	fieldW := screenW - 2
	if fieldW > fieldH*2 {
		fieldW = fieldH * 2
	} else {
		fieldH = fieldW / 2
	}
	return viewport{
		field: core.NewRect((screenW-fieldW-2)/2+1, 2, fieldW, fieldH),
		half:  half,
	}
}

func (v viewport) valid() bool {
	return v.field.W > 0 && v.field.H > 0 && v.half > 0
}

// project returns the cell under a world point and whether it lies in the field.
func (v viewport) project(p core.Vec2) (int, int, bool) {
	col := int(math.Floor((p.X + v.half) / (2 * v.half) * float64(v.field.W)))
	row := int(math.Floor((v.half - p.Y) / (2 * v.half) * float64(v.field.H)))
	x, y := v.field.X+col, v.field.Y+row
	return x, y, v.field.Contains(x, y)
}

// span returns how many columns and rows a body of the given size covers.
func (v viewport) span(size float64) (int, int) {
	cw := int(math.Round(size / (2 * v.half) * float64(v.field.W)))
	ch := int(math.Round(size / (2 * v.half) * float64(v.field.H)))
	return max(cw, 1), max(ch, 1)
}

func (v viewport) border() core.Rect {
	return core.NewRect(v.field.X-1, v.field.Y-1, v.field.W+2, v.field.H+2)
}

// Render draws the arena, the HUD and any overlay. It never mutates the simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	s := g.sim

	vp := newViewport(dst.Width(), dst.Height(), s.HalfSize())
	if vp.valid() {
		dst.DrawBox(vp.border())

		sprites := s.Sprites()
		// Enemies first so the player is always visible on top.
		for _, sp := range sprites {
			if !sp.Player {
				drawSprite(dst, vp, sp)
			}
		}
		for _, sp := range sprites {
			if sp.Player {
				drawSprite(dst, vp, sp)
			}
		}
	}

	// Draw HUD
	hud := fmt.Sprintf(" Score: %d  Enemies: %d ", s.Score(), s.EnemyCount())
	dst.DrawText(1, 0, hud)
	if !g.classic {
		p := s.Params()
		right := fmt.Sprintf(" every %.2fs  x%d  +%.0f%% ", p.Interval(), p.MaxSpawnsPerBurst, p.ProbabilitySpawnAnother*100)
		dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.State() == GameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Hit by %s  |  Press R to restart", s.Score(), s.KilledBy()))
	}
}

func drawSprite(dst *core.Screen, vp viewport, sp Sprite) {
	cx, cy, _ := vp.project(sp.Pos)
	cw, ch := vp.span(sp.Size)
	x0 := cx - cw/2
	y0 := cy - ch/2
	for dy := range ch {
		for dx := range cw {
			if x, y := x0+dx, y0+dy; vp.field.Contains(x, y) {
				dst.SetColored(x, y, sp.Glyph, sp.Color)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

