package abyss

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Terminal glyphs
const (
	CeilingChar    = '▼'
	ProjectileChar = '●'
	ParticleChar   = '·'
	PlayerChar     = '█'
	ChargingChar   = '▄'
	BossChar       = '◉'
)

// Minimum screen size for the field to be readable
const (
	minScreenW = 20
	minScreenH = 12
)

// ProjectileColor is the boss shot color in every renderer.
const ProjectileColor core.Color = "#ff4444"

// viewport maps field coordinates onto a screen rectangle.
type viewport struct {
	left, top  int
	cols, rows int
	fieldW     float64
	fieldH     float64
	camera     float64
}

// newViewport fits the field below the HUD. Terminal cells are about twice
// as tall as wide, so a 1:2 field fits in a square block of cells.
func newViewport(dst *core.Screen, s *Snapshot, hudRows int) viewport {
	rows := dst.Height() - hudRows - 2
	cols := core.Clamp(rows*2, minScreenW-2, dst.Width()-2)
	return viewport{
		left:   (dst.Width()-cols)/2 - 1,
		top:    hudRows,
		cols:   cols,
		rows:   rows,
		fieldW: s.FieldW,
		fieldH: s.FieldH,
		camera: s.Camera,
	}
}

func (v viewport) col(x float64) int {
	return v.left + 1 + int(math.Floor(x/v.fieldW*float64(v.cols)))
}

func (v viewport) row(y float64) int {
	return v.top + 1 + int(math.Floor((y-v.camera)/v.fieldH*float64(v.rows)))
}

// span converts a field length to a cell count of at least 1.
func (v viewport) span(length float64) int {
	n := int(math.Round(length / v.fieldW * float64(v.cols)))
	if n < 1 {
		n = 1
	}
	return n
}

func (v viewport) inside(c, r int) bool {
	return c > v.left && c <= v.left+v.cols && r > v.top && r <= v.top+v.rows
}

func (v viewport) set(dst *core.Screen, c, r int, ch rune, color core.Color) {
	if v.inside(c, r) {
		dst.SetColored(c, r, ch, color)
	}
}

// Render draws the latest snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		return
	}
	RenderSnapshot(dst, &g.snap, g.driver.Paused())
}

// RenderSnapshot draws a snapshot into a terminal screen buffer.
func RenderSnapshot(dst *core.Screen, s *Snapshot, paused bool) {
	hudRows := 1
	if s.HasBoss {
		hudRows = 2
	}
	v := newViewport(dst, s, hudRows)

	dst.DrawBox(core.NewRect(v.left, v.top, v.cols+2, v.rows+2))
	for c := 1; c <= v.cols; c++ {
		dst.SetColored(v.left+c, v.top+1, CeilingChar, core.ColorSpikeRed)
	}

	for _, p := range s.Platforms {
		drawPlatform(dst, v, p)
	}
	for _, p := range s.Particles {
		v.set(dst, v.col(p.X), v.row(p.Y), ParticleChar, p.Color)
	}
	if s.HasBoss {
		drawBoss(dst, v, s.Boss)
		for _, pr := range s.Projectiles {
			v.set(dst, v.col(pr.X), v.row(pr.Y), ProjectileChar, ProjectileColor)
		}
	}
	drawPlayer(dst, v, s)
	drawHUD(dst, s)

	switch {
	case s.Over:
		drawGameOver(dst, s)
	case paused:
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func drawPlatform(dst *core.Screen, v viewport, p Platform) {
	r := v.row(p.Y)
	c0 := v.col(p.X)
	n := v.span(p.W)
	glyph := p.Variant.Glyph()
	color := p.Color()
	for i := 0; i < n; i++ {
		v.set(dst, c0+i, r, glyph, color)
	}
}

func drawBoss(dst *core.Screen, v viewport, b Boss) {
	eye := core.Color("#fca5a5")
	if b.Phase >= 2 {
		eye = core.ColorBossEye
	}
	c, r := v.col(b.X), v.row(b.Y)
	v.set(dst, c-1, r, '◖', core.ColorSlate)
	v.set(dst, c, r, BossChar, eye)
	v.set(dst, c+1, r, '◗', core.ColorSlate)
}

func drawPlayer(dst *core.Screen, v viewport, s *Snapshot) {
	p := s.Player
	// Blink while invincible
	if p.Invincible && (s.Frame/6)%2 == 1 {
		return
	}
	info := s.Skin.Info()
	glyph := PlayerChar
	if p.Charging {
		glyph = ChargingChar
	}

	c0, r0 := v.col(p.X), v.row(p.Y)
	w := v.span(p.Size)
	h := core.Max(1, int(math.Round(p.Size/v.fieldH*float64(v.rows))))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			v.set(dst, c0+dx, r0+dy, glyph, info.Body)
		}
	}

	// Eye on the facing side
	eye := info.Eye
	if p.Charging {
		eye = core.ColorSpikeRed
	}
	ex := c0
	if p.FacingRight {
		ex = c0 + w - 1
	}
	v.set(dst, ex, r0, '▪', eye)
}

func drawHUD(dst *core.Screen, s *Snapshot) {
	left := fmt.Sprintf(" DEPTH %d ", s.Score)
	dst.DrawTextColored(1, 0, left, core.ColorNeonCyan)

	if s.Player.Charging {
		dst.DrawTextColored(len(left)+2, 0, chargeBar(s.Player.Charge, s.MaxCharge, 10), core.ColorNeonGreen)
	}

	right := fmt.Sprintf(" %s ", s.Mode)
	if s.Player.Invincible {
		right = " INVINCIBLE" + right
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if s.HasBoss {
		width := core.Max(10, dst.Width()-24)
		label := "ABYSS LORD "
		x := (dst.Width() - width - len(label)) / 2
		dst.DrawTextColored(x, 1, label, core.ColorWhite)
		filled := int(math.Round(s.Boss.HealthRatio() * float64(width)))
		dst.DrawHLine(x+len(label), 1, filled, '█', core.ColorSpikeRed)
		dst.DrawHLine(x+len(label)+filled, 1, width-filled, '░', core.ColorGray)
	}
}

// chargeBar renders charge as a fixed-width gauge.
func chargeBar(charge, max float64, width int) string {
	filled := 0
	if max > 0 {
		filled = int(math.Round(core.ClampF(charge/max, 0, 1) * float64(width)))
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func drawGameOver(dst *core.Screen, s *Snapshot) {
	title := "GAME OVER"
	if s.Reason.Victory() {
		title = "VICTORY"
	}
	hint := "R restart  B menu"
	if s.CanRevive {
		hint = "V revive  R restart  B menu"
	}
	drawOverlay(dst, title, s.Reason.Message(), fmt.Sprintf("Depth: %d", s.Score), hint)
}

// drawOverlay blanks a band in the middle of the screen and centers the
// lines in it.
func drawOverlay(dst *core.Screen, lines ...string) {
	top := (dst.Height()-len(lines))/2 - 1
	for y := top; y < top+len(lines)+2; y++ {
		dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	}
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorNeonPink
		}
		x := (dst.Width() - runewidth.StringWidth(line)) / 2
		dst.DrawTextColored(x, top+1+i, line, color)
	}
}
