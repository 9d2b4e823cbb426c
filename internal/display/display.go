// Package display renders an evaluator's grid as an ebiten window and
// drives its tick loop from keyboard input.
package display

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gorca/internal/glyph"
)

const (
	cellWidth  = 8
	cellHeight = 16
)

var (
	normalColor   = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
	explodedColor = color.RGBA{0xff, 0x40, 0x40, 0xff}
	pausedColor   = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// Driver is the subset of the evaluator the display needs, kept
// narrow so the renderer never reaches past this contract into
// evaluator internals (the external-collaborator
// boundary).
type Driver interface {
	Tick() error
	Frame() int
	Snapshot() (rows, cols int, at func(x, y int) glyph.Glyph)
	LastExploded() [][2]int
}

// Game is the ebiten.Game implementation: one tick per keypress,
// redrawn every frame regardless of whether a tick just ran.
type Game struct {
	driver Driver
	paused bool
}

// New builds a Game over driver.
func New(driver Driver) *Game {
	return &Game{driver: driver}
}

// Layout returns the fixed pixel size of the window for the grid's
// current rows/cols: a fixed constant per cell, independent of the
// outside window size ebiten offers.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols, _ := g.driver.Snapshot()
	return cols * cellWidth, rows * cellHeight
}

// Update advances one tick when Space or Enter is pressed, toggles
// pause on P, and otherwise does nothing: ticks are externally
// triggered, not driven by ebiten's frame rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := g.driver.Tick(); err != nil {
			log.Printf("tick %d: %v", g.driver.Frame(), err)
		}
	}
	return nil
}

// Draw paints the grid's current glyphs as monospace text, flashing
// any cell a movement operator exploded into during the most recent
// tick (an explode flash, shown for a single frame).
func (g *Game) Draw(screen *ebiten.Image) {
	rows, cols, at := g.driver.Snapshot()

	exploded := make(map[[2]int]bool, len(g.driver.LastExploded()))
	for _, xy := range g.driver.LastExploded() {
		exploded[xy] = true
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ch := glyph.DisplayGlyph(at(x, y))
			col := normalColor
			if exploded[[2]int{x, y}] {
				col = explodedColor
			}
			text.Draw(screen, string(ch), basicfont.Face7x13, x*cellWidth, (y+1)*cellHeight-4, col)
		}
	}

	if g.paused {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, 2, rows*cellHeight+12, pausedColor)
	}
}
