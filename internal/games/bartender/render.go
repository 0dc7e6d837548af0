package bartender

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/railroad-bartender/internal/core"
	"github.com/vovakirdan/railroad-bartender/internal/games/bartender/engine"
)

// Glyphs
const (
	DragonChar      = 'D'
	OrdinaryChar    = 'o'
	AdversaryChar   = 'X'
	ShotGlassChar   = 'u'
	FireballChar    = '*'
	CounterChar     = '▐'
	LaneChar        = '─'
	CactusChar      = 'Ψ'
	SmallCactusChar = 'ψ'
	TinyCactusChar  = '·'
)

// Minimum terminal size for the playfield.
const (
	MinWidth  = 40
	MinHeight = 14
)

// Fixed rows: HUD on top, backdrop band below it, help line at the bottom.
const (
	hudRow       = 0
	backdropTop  = 1
	playfieldTop = backdropTop + engine.NumLayers
)

var (
	layerGlyph = [engine.NumLayers]rune{CactusChar, SmallCactusChar, TinyCactusChar}
	layerColor = [engine.NumLayers]core.Color{core.ColorGreen, core.ColorBrightGreen, core.ColorGray}
)

// Render draws the current mode into dst. dst is pre-cleared by the caller.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight))
		return
	}

	switch g.mode {
	case ModeMainMenu:
		g.renderMenu(dst)
	case ModeInstructions:
		renderInstructions(dst)
	case ModePlaying:
		g.renderPlayfield(dst)
	case ModePaused:
		g.renderPlayfield(dst)
		g.renderPaused(dst)
	case ModeGameOver:
		g.renderPlayfield(dst)
		g.renderGameOver(dst)
	}
}

// col maps an engine x coordinate to a screen column.
func col(dst *core.Screen, x float64) int {
	return int(x * float64(dst.Width()) / engine.ScreenWidth)
}

// laneHeight returns the rows available to each lane.
func laneHeight(dst *core.Screen) int {
	return core.Max(1, (dst.Height()-playfieldTop-1)/engine.NumLanes)
}

// laneRow returns the row figures and projectiles in lane are drawn on.
func laneRow(dst *core.Screen, lane int) int {
	lh := laneHeight(dst)
	return playfieldTop + lane*lh + lh/2
}

func (g *Game) renderMenu(dst *core.Screen) {
	top := dst.Height()/2 - 5
	dst.DrawTextCenteredColor(top, "R A I L R O A D   B A R T E N D E R", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(top+1, "a dragon, four bars and no patience", core.ColorGray)

	entries := [numMenuEntries]string{"Start", "Continue", "Instructions"}
	if g.loadError {
		entries[MenuContinue] = "Error"
	}

	for i, e := range entries {
		label := "  " + e + "  "
		color := core.ColorWhite
		if i == g.cursor {
			label = "> " + e + " <"
			color = core.ColorBrightCyan
		}
		if i == MenuContinue && g.loadError {
			color = core.ColorBrightRed
		}
		dst.DrawTextCenteredColor(top+4+i*2, label, color)
	}

	dst.DrawTextCenteredColor(dst.Height()-1, "↑/↓ select   Enter choose   Esc quit", core.ColorGray)
}

var instructions = []string{
	"You are the dragon behind the bar.",
	"",
	"Customers (o) walk toward the counter wanting a drink.",
	"Bandits (X) walk toward the counter wanting trouble.",
	"",
	"Z  slide a shot glass   (slow, for customers)",
	"X  breathe a fireball   (fast, for bandits)",
	"↑/↓  change bar         P/Space  pause",
	"",
	"Right serves build a streak; long streaks raise the multiplier.",
	"A wrong serve drops the multiplier back to 1.",
	"Anyone who reaches the counter costs a life.",
	"",
	"While paused: S saves, R returns to the menu.",
}

func renderInstructions(dst *core.Screen) {
	top := core.Max(0, (dst.Height()-len(instructions))/2-1)
	dst.DrawTextCenteredColor(top, "HOW TO TEND BAR", core.ColorBrightYellow)
	for i, line := range instructions {
		dst.DrawTextCentered(top+2+i, line)
	}
	dst.DrawTextCenteredColor(dst.Height()-1, "Enter back to menu", core.ColorGray)
}

func (g *Game) renderPlayfield(dst *core.Screen) {
	g.renderHUD(dst)
	g.renderBackdrop(dst)

	lh := laneHeight(dst)
	counter := col(dst, engine.RightBoundary+engine.FigureWidth/4)

	// Lanes and the counter
	for lane := 0; lane < engine.NumLanes; lane++ {
		base := playfieldTop + (lane+1)*lh - 1
		if lh > 1 {
			dst.DrawHLine(0, base, counter, LaneChar, core.ColorGray)
		}
		dst.DrawVLine(counter, playfieldTop+lane*lh, lh, CounterChar, core.ColorOrange)
	}

	// Figures bob a row up on the high half of their cycle when lanes are tall enough
	for _, f := range g.run.Figures {
		row := laneRow(dst, f.Lane)
		if lh >= 3 && f.Bob() > engine.BobAmplitude/2 {
			row--
		}
		glyph, color := OrdinaryChar, core.ColorBrightYellow
		if f.Kind == engine.Adversary {
			glyph, color = AdversaryChar, core.ColorBrightRed
		}
		dst.SetColor(col(dst, f.X+engine.FigureWidth/2), row, glyph, color)
	}

	for _, p := range g.run.Projectiles {
		glyph, color := ShotGlassChar, core.ColorBrightCyan
		if p.Kind == engine.Fast {
			glyph, color = FireballChar, core.ColorOrange
		}
		dst.SetColor(col(dst, p.X), laneRow(dst, p.Lane), glyph, color)
	}

	dragonColor := core.ColorBrightMagenta
	if g.invincible {
		dragonColor = core.ColorBrightWhite
	}
	dst.SetColor(col(dst, engine.ShooterX)+1, laneRow(dst, g.run.Lane), DragonChar, dragonColor)

	dst.DrawTextColor(0, dst.Height()-1, "↑/↓ bar  Z glass  X fireball  P pause  R menu  Esc quit", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("SCORE %d   x%d (%d to next)", g.run.Score, g.run.Multiplier, g.run.Remaining())
	dst.DrawTextColor(1, hudRow, left, core.ColorBrightWhite)

	lives := "LIVES " + strings.Repeat("♥", g.run.Lives)
	if g.invincible {
		lives = "INVINCIBLE " + lives
	}
	dst.DrawTextColor(dst.Width()-len([]rune(lives))-1, hudRow, lives, core.ColorBrightRed)
}

// renderBackdrop tiles each cactus layer across its row, far layer on top.
func (g *Game) renderBackdrop(dst *core.Screen) {
	for i := 0; i < engine.NumLayers; i++ {
		row := backdropTop + engine.NumLayers - 1 - i
		w := engine.LayerWidth[i]
		x := g.run.Backdrop[i]
		for x > 0 {
			x -= w
		}
		for ; x < engine.ScreenWidth; x += w {
			if x >= 0 {
				dst.SetColor(col(dst, x), row, layerGlyph[i], layerColor[i])
			}
		}
	}
}

func (g *Game) renderPaused(dst *core.Screen) {
	box := core.CenteredRect(dst.Bounds(), 34, 7)
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCenteredColor(box.Y+1, "PAUSED", core.ColorBrightYellow)

	status, color := "S save   R menu", core.ColorWhite
	switch {
	case g.saved && g.saveError:
		status, color = "Save failed", core.ColorBrightRed
	case g.saved:
		status, color = "Saved", core.ColorBrightGreen
	}
	dst.DrawTextCenteredColor(box.Y+3, status, color)
	dst.DrawTextCenteredColor(box.Y+5, "P or Space to resume", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	box := core.CenteredRect(dst.Bounds(), 34, 7)
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextCenteredColor(box.Y+1, "LAST CALL", core.ColorBrightRed)
	dst.DrawTextCenteredColor(box.Y+3, fmt.Sprintf("Final score: %d", g.run.Score), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+5, "Enter for main menu", core.ColorGray)
}
