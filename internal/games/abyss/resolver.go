package abyss

import (
	"github.com/vovakirdan/neon-abyss/internal/core"
)

// updateBoss moves the boss, fires salvos and flies projectiles.
// It reports whether the run ended.
func (w *World) updateBoss() bool {
	bc := w.cfg.Boss
	p := &w.player

	w.boss.pursue(w.camera, p.X, bc)
	w.projectiles = append(w.projectiles, w.boss.attack(p.CenterX(), p.CenterY(), bc)...)

	box := p.Box()
	top := w.camera - bc.EvictMargin
	bottom := w.camera + w.cfg.Field.Height + bc.EvictMargin
	kept := w.projectiles[:0]
	for _, pr := range w.projectiles {
		pr.X += pr.VX
		pr.Y += pr.VY
		if !p.Invincible && box.IntersectsCircle(pr.X, pr.Y, pr.Radius) {
			w.end(ReasonBossHit)
			return true
		}
		if pr.Y > bottom || pr.Y < top {
			continue
		}
		kept = append(kept, pr)
	}
	w.projectiles = kept
	return false
}

// resolvePlatforms lands a falling player on the first platform that
// catches it, applies spike rules and awards new floors. It reports
// whether the run ended.
func (w *World) resolvePlatforms() bool {
	p := &w.player
	if p.Charging {
		// A charging player stays planted; nothing can catch or drop it.
		w.wasGrounded = true
		return false
	}

	landed := false
	if p.VY > 0 {
		box := p.Box()
		for i := range w.platforms {
			plat := &w.platforms[i]
			if !plat.catches(box, w.cfg.Platforms.CollisionMargin) {
				continue
			}
			if plat.Variant.Lethal() && !p.Invincible && !w.shield {
				if w.mode.LethalHazards() {
					w.fx.Burst(p.X, p.Y, core.ColorSpikeRed, w.cfg.Particles.SpikeBurst)
					w.end(ReasonSpiked)
					return true
				}
				p.VY = -w.cfg.Platforms.SpikeBounce
				p.Grounded = false
				w.fx.Burst(p.X, p.Y, core.ColorSpikeRed, w.cfg.Particles.BounceBurst)
				break
			}

			p.land(*plat)
			landed = true
			if plat.Variant.Moves() {
				p.X += plat.Speed
			}
			if !plat.Visited && w.visit(plat) {
				return true
			}
			break
		}
	}

	if !landed {
		p.Grounded = false
	} else if !w.wasGrounded {
		w.effects.PlayLand()
	}
	w.wasGrounded = landed
	return false
}

// visit awards a new floor. It reports whether the visit defeated the boss.
func (w *World) visit(plat *Platform) bool {
	plat.Visited = true
	w.score++
	if w.onScore != nil {
		w.onScore(w.score)
	}

	if w.mode.HasBoss() {
		bc := w.cfg.Boss
		if w.boss.Damage(bc.Damage, bc.PhaseThreshold) {
			w.end(ReasonBossDefeated)
			return true
		}
		w.fx.Burst(w.boss.X, w.boss.Y, core.ColorBossRed, w.cfg.Particles.DamageBurst)
	}

	p := w.player
	w.fx.Burst(p.CenterX(), p.Y+p.Size, w.skin.Tint(), w.cfg.Particles.LandBurst)
	return false
}

// advancePlatforms slides every moving platform, touched or not.
func (w *World) advancePlatforms() {
	for i := range w.platforms {
		w.platforms[i].advance(w.cfg.Field.Width)
	}
}

// advanceCamera eases the camera toward the player and applies the forced
// scroll. The camera never moves back.
func (w *World) advanceCamera() {
	sc := w.cfg.Scroll
	if target := w.player.Y - sc.Lead; target > w.camera {
		w.camera = core.Lerp(w.camera, target, sc.Easing)
	}
	w.camera += w.ScrollSpeed()
}

// ScrollSpeed returns the forced camera advance for the current depth.
func (w *World) ScrollSpeed() float64 {
	curve := w.cfg.Scroll.Speed
	if w.mode.HasBoss() {
		curve = w.cfg.Scroll.BossSpeed
	}
	return w.difficulty.ScrollSpeed(curve, w.score)
}

// checkCeiling handles a player left behind the camera. Infinite mode bumps
// the player back down; elsewhere it is fatal unless invincible.
func (w *World) checkCeiling() bool {
	margin := w.cfg.Scroll.CeilingMargin
	p := &w.player
	if p.Y >= w.camera-margin {
		return false
	}
	if !w.mode.LethalHazards() {
		p.Y = w.camera + margin
		if p.VY < 0 {
			p.VY = 0
		}
		return false
	}
	if p.Invincible {
		return false
	}
	w.end(ReasonCrushed)
	return true
}

// generate keeps platforms ahead of the visible window.
func (w *World) generate() {
	limit := w.camera + w.cfg.Field.Height + w.cfg.Platforms.GenerateBuffer
	for len(w.platforms) > 0 {
		last := &w.platforms[len(w.platforms)-1]
		if last.Y >= limit {
			return
		}
		y := last.Y + w.gen.Gap()
		w.platforms = append(w.platforms, w.gen.Next(last, y, w.score))
	}
}

// evict drops platforms that scrolled far enough behind the camera. The
// deepest platform is always kept so generation has an anchor.
func (w *World) evict() {
	limit := w.camera - w.cfg.Platforms.EvictMargin
	n := 0
	for n < len(w.platforms)-1 && w.platforms[n].Y < limit {
		n++
	}
	if n > 0 {
		w.platforms = append(w.platforms[:0], w.platforms[n:]...)
	}
}
