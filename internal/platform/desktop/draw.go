package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-abyss/internal/core"
	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
)

const (
	spikeWidth   = 20
	spikeHeight  = 12
	bossRadius   = 30
	eyeRadius    = 8
	chargeBarW   = 120
	chargeBarH   = 8
	healthBarH   = 10
	debugLineH   = 16
	overlayAlpha = 0xb0
)

// rgba converts a palette color to an opaque ebiten color.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// fade returns c with alpha scaled by life in [0, 1].
func fade(c core.Color, life float64) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(life, 0, 1) * 0xff)}
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Snapshot()
	screen.Fill(rgba(abyss.Background(s.Mode, s.Score)))

	cam := float32(s.Camera)
	drawCeiling(screen, float32(s.FieldW))

	for _, p := range s.Platforms {
		drawPlatform(screen, p, cam)
	}
	for _, p := range s.Particles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y)-cam, float32(p.Size), float32(p.Size), fade(p.Color, p.Life), false)
	}
	if s.HasBoss {
		drawBoss(screen, s.Boss, cam)
		for _, pr := range s.Projectiles {
			vector.DrawFilledCircle(screen, float32(pr.X), float32(pr.Y)-cam, float32(pr.Radius), rgba(abyss.ProjectileColor), true)
		}
	}
	drawPlayer(screen, &s, cam)
	drawHUD(screen, &s)

	switch {
	case s.Over:
		drawGameOver(screen, &s)
	case w.state.Paused:
		drawOverlay(screen, "PAUSED", "P to resume")
	}
}

func drawCeiling(dst *ebiten.Image, width float32) {
	red := rgba(core.ColorSpikeRed)
	for x := float32(0); x < width; x += spikeWidth {
		vector.StrokeLine(dst, x, 0, x+spikeWidth/2, spikeHeight, 2, red, true)
		vector.StrokeLine(dst, x+spikeWidth/2, spikeHeight, x+spikeWidth, 0, 2, red, true)
	}
}

func drawPlatform(dst *ebiten.Image, p abyss.Platform, cam float32) {
	x, y := float32(p.X), float32(p.Y)-cam
	c := rgba(p.Color())
	vector.DrawFilledRect(dst, x, y, float32(p.W), float32(p.H), c, false)

	if p.Variant.Lethal() {
		for sx := x; sx+8 <= x+float32(p.W); sx += 8 {
			vector.StrokeLine(dst, sx, y, sx+4, y-6, 1.5, c, true)
			vector.StrokeLine(dst, sx+4, y-6, sx+8, y, 1.5, c, true)
		}
	}
	if p.Variant.Moves() {
		vector.StrokeRect(dst, x, y, float32(p.W), float32(p.H), 1, rgba(core.ColorWhite), false)
	}
}

func drawBoss(dst *ebiten.Image, b abyss.Boss, cam float32) {
	x, y := float32(b.X), float32(b.Y)-cam
	vector.DrawFilledCircle(dst, x, y, bossRadius, rgba(core.ColorSlate), true)

	eye := core.Color("#fca5a5")
	if b.Phase >= 2 {
		eye = core.ColorBossEye
	}
	vector.DrawFilledCircle(dst, x, y, eyeRadius, rgba(eye), true)
	vector.StrokeCircle(dst, x, y, bossRadius, 2, rgba(core.ColorBossRed), true)
}

func drawPlayer(dst *ebiten.Image, s *abyss.Snapshot, cam float32) {
	p := s.Player
	if p.Invincible && (s.Frame/6)%2 == 1 {
		return
	}
	info := s.Skin.Info()
	size := float32(p.Size)
	x, y := float32(p.X), float32(p.Y)-cam

	// Squash while charging
	h := size
	if p.Charging && s.MaxCharge > 0 {
		h = size * (1 - 0.3*float32(p.Charge/s.MaxCharge))
	}
	vector.DrawFilledRect(dst, x, y+size-h, size, h, rgba(info.Body), false)

	eye := info.Eye
	if p.Charging {
		eye = core.ColorSpikeRed
	}
	ex := x + size*0.15
	if p.FacingRight {
		ex = x + size*0.55
	}
	vector.DrawFilledRect(dst, ex, y+size-h+size*0.2, size*0.3, size*0.2, rgba(eye), false)
}

func drawHUD(dst *ebiten.Image, s *abyss.Snapshot) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("DEPTH %d", s.Score), 8, spikeHeight+4)

	right := strings.ToUpper(s.Mode.String())
	if s.Player.Invincible {
		right = "INVINCIBLE " + right
	}
	ebitenutil.DebugPrintAt(dst, right, dst.Bounds().Dx()-len(right)*6-8, spikeHeight+4)

	if s.Player.Charging && s.MaxCharge > 0 {
		ratio := float32(core.ClampF(s.Player.Charge/s.MaxCharge, 0, 1))
		vector.StrokeRect(dst, 8, spikeHeight+24, chargeBarW, chargeBarH, 1, rgba(core.ColorNeonGreen), false)
		vector.DrawFilledRect(dst, 8, spikeHeight+24, chargeBarW*ratio, chargeBarH, rgba(core.ColorNeonGreen), false)
	}

	if s.HasBoss {
		width := float32(dst.Bounds().Dx()) - 80
		y := float32(spikeHeight + 44)
		ebitenutil.DebugPrintAt(dst, "ABYSS LORD", 40, int(y)-debugLineH)
		vector.DrawFilledRect(dst, 40, y, width, healthBarH, rgba(core.ColorGray), false)
		vector.DrawFilledRect(dst, 40, y, width*float32(s.Boss.HealthRatio()), healthBarH, rgba(core.ColorSpikeRed), false)
	}
}

func drawGameOver(dst *ebiten.Image, s *abyss.Snapshot) {
	title := "GAME OVER"
	if s.Reason.Victory() {
		title = "VICTORY"
	}
	hint := "R restart  Q quit"
	if s.CanRevive {
		hint = "V revive  R restart  Q quit"
	}
	drawOverlay(dst, title, reasonLabel(s.Reason), fmt.Sprintf("Depth: %d", s.Score), hint)
}

// reasonLabel is an ASCII label; the debug font has no CJK glyphs.
func reasonLabel(r abyss.Reason) string {
	return strings.ToUpper(strings.ReplaceAll(r.String(), "_", " "))
}

func drawOverlay(dst *ebiten.Image, lines ...string) {
	bounds := dst.Bounds()
	h := float32(len(lines)+2) * debugLineH
	top := (float32(bounds.Dy()) - h) / 2
	vector.DrawFilledRect(dst, 0, top, float32(bounds.Dx()), h, color.NRGBA{A: overlayAlpha}, false)

	for i, line := range lines {
		x := (bounds.Dx() - len(line)*6) / 2
		ebitenutil.DebugPrintAt(dst, line, x, int(top)+(i+1)*debugLineH)
	}
}
