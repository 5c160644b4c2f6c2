package abyss

import (
	"math"

	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Player is the falling character. X, Y is the top-left corner.
type Player struct {
	X, Y        float64
	VX, VY      float64
	Size        float64
	Grounded    bool
	Charging    bool
	FacingRight bool
	Invincible  bool
	Charge      float64 // 0..MaxCharge
}

// Input is the per-frame control state. Left, Right and Drop are held
// levels; JumpPress and JumpRelease are edges that fire once per press.
type Input struct {
	Left        bool
	Right       bool
	Drop        bool
	JumpPress   bool
	JumpRelease bool
}

// Direction returns -1, 0 or 1 for the held horizontal keys. Left wins.
func (in Input) Direction() int {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	default:
		return 0
	}
}

func newPlayer(cfg config.AbyssConfig) Player {
	return Player{
		X:           cfg.Field.Width / 2,
		Y:           cfg.Player.SpawnY,
		Size:        cfg.Player.Size,
		FacingRight: true,
	}
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// CenterX returns the horizontal center.
func (p Player) CenterX() float64 { return p.X + p.Size/2 }

// CenterY returns the vertical center.
func (p Player) CenterY() float64 { return p.Y + p.Size/2 }

// StartCharge begins a charge jump. Only a grounded player can charge.
// Horizontal drift is frozen for the duration of the charge.
func (p *Player) StartCharge() bool {
	if !p.Grounded || p.Charging {
		return false
	}
	p.Charging = true
	p.Charge = 0
	p.VX = 0
	return true
}

// ReleaseCharge launches a charging player. dir is the held direction;
// zero falls back to the facing direction.
func (p *Player) ReleaseCharge(dir int, phys config.PhysicsConfig) bool {
	if !p.Charging {
		return false
	}
	if dir == 0 {
		dir = -1
		if p.FacingRight {
			dir = 1
		}
	}
	p.Charging = false
	p.VY = -math.Max(phys.MinJumpSpeed, p.Charge*phys.JumpMultiplier)
	p.VX = float64(dir) * (phys.LaunchBaseSpeed + p.Charge*phys.LaunchChargeFactor)
	p.Grounded = false
	p.Y -= phys.LaunchLift
	p.Charge = 0
	return true
}

// steer applies held horizontal input and soft drop.
func (p *Player) steer(in Input, phys config.PhysicsConfig) {
	if p.Charging {
		return
	}
	if p.Grounded {
		if in.Left {
			p.VX -= phys.GroundAccel
			p.FacingRight = false
		}
		if in.Right {
			p.VX += phys.GroundAccel
			p.FacingRight = true
		}
		return
	}
	if in.Left {
		p.VX -= phys.AirAccel
	}
	if in.Right {
		p.VX += phys.AirAccel
	}
	if in.Drop {
		p.VY += phys.SoftDropAccel
	}
}

// accelerate ramps the charge or applies gravity and friction.
func (p *Player) accelerate(phys config.PhysicsConfig) {
	if p.Charging {
		p.Charge = math.Min(phys.MaxCharge, p.Charge+phys.ChargeRate)
		return
	}
	p.VY += phys.Gravity
	p.VX *= phys.Friction
}

// integrate moves the player and bounces it off the field walls.
func (p *Player) integrate(fieldW float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
		p.VX = -p.VX
	}
	if p.X+p.Size > fieldW {
		p.X = fieldW - p.Size
		p.VX = -p.VX
	}
}

// land snaps the player onto a platform surface.
func (p *Player) land(plat Platform) {
	p.Y = plat.Y - p.Size
	p.VY = 0
	p.Grounded = true
}
