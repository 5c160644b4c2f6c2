package config

import (
	_ "embed"
)

//go:embed defaults/abyss.yaml
var defaultAbyssYAML []byte

// DefaultAbyssConfig returns the built-in tuning. It mirrors
// defaults/abyss.yaml and is used when no YAML source can be parsed.
func DefaultAbyssConfig() AbyssConfig {
	return AbyssConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:            0.5,
			Friction:           0.85,
			MaxCharge:          25,
			ChargeRate:         0.5,
			JumpMultiplier:     0.8,
			MinJumpSpeed:       10,
			LaunchBaseSpeed:    4,
			LaunchChargeFactor: 0.3,
			LaunchLift:         5,
			GroundAccel:        0.8,
			AirAccel:           0.3,
			SoftDropAccel:      1.0,
			WhooshSpeed:        1.0,
		},
		Player: PlayerConfig{
			Size:   32,
			SpawnY: 100,
		},
		Platforms: PlatformConfig{
			Height:          16,
			CollisionMargin: 25,
			GapMin:          80,
			GapRange:        120,
			MovingSpeed:     3,
			StartY:          200,
			StartWidth:      200,
			InitialCount:    9,
			InitialSpacing:  150,
			SpikeBounce:     5,
			GenerateBuffer:  200,
			EvictMargin:     200,
		},
		Generator: GeneratorConfig{
			Width:     WidthCurve{Base: 150, Shrink: 0.5, Floor: 60},
			BossWidth: WidthCurve{Base: 100, Shrink: 0.8, Floor: 45},
			Moving:    VariantGate{MinScore: 20, Chance: 0.4},
			Spike:     VariantGate{MinScore: 30, Chance: 0.3},
			Breakable: VariantGate{MinScore: 50, Chance: 0.2},
		},
		Scroll: ScrollConfig{
			Lead:          300,
			Easing:        0.15,
			CeilingMargin: 10,
			Speed:         ScrollCurve{Base: 0.8, Growth: 0.015, Cap: 3.5},
			BossSpeed:     ScrollCurve{Base: 1.5, Growth: 0.015, Cap: 4.5},
		},
		Boss: BossConfig{
			Health:          100,
			Damage:          2,
			PhaseThreshold:  50,
			Cooldown:        120,
			EnragedCooldown: 60,
			SpawnY:          -200,
			HoverOffset:     80,
			VerticalEasing:  0.05,
			ChaseEasing:     0.02,
			ChaseDeadZone:   20,
			ProjectileSpeed: 4,
			PhaseSpeedBonus: 2,
			ProjectileSize:  8,
			SpreadOffset:    50,
			EvictMargin:     100,
		},
		Particles: ParticleConfig{
			Decay:       0.02,
			Spread:      5,
			MinSize:     2,
			SizeRange:   4,
			LandBurst:   5,
			SpikeBurst:  20,
			BounceBurst: 5,
			DamageBurst: 3,
		},
		Revive: ReviveConfig{
			InvincibleMillis: 2000,
			MaxPerRun:        3,
			SpawnOffset:      50,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultAbyssYAML
}
