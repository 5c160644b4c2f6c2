// Package config provides YAML-based tuning loading and difficulty
// management for the abyss simulation.
package config

// AbyssConfig contains all tuning for the simulation. Units are virtual
// field units (the field is Field.Width wide) and frames.
type AbyssConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformConfig  `yaml:"platforms"`
	Generator GeneratorConfig `yaml:"generator"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Boss      BossConfig      `yaml:"boss"`
	Particles ParticleConfig  `yaml:"particles"`
	Revive    ReviveConfig    `yaml:"revive"`
}

// FieldConfig defines the play-field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // Visible window height
}

// PhysicsConfig defines player kinematics and the charge jump.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	Friction           float64 `yaml:"friction"`
	MaxCharge          float64 `yaml:"max_charge"`
	ChargeRate         float64 `yaml:"charge_rate"`
	JumpMultiplier     float64 `yaml:"jump_multiplier"`
	MinJumpSpeed       float64 `yaml:"min_jump_speed"`
	LaunchBaseSpeed    float64 `yaml:"launch_base_speed"`
	LaunchChargeFactor float64 `yaml:"launch_charge_factor"`
	LaunchLift         float64 `yaml:"launch_lift"`
	GroundAccel        float64 `yaml:"ground_accel"`
	AirAccel           float64 `yaml:"air_accel"`
	SoftDropAccel      float64 `yaml:"soft_drop_accel"`
	WhooshSpeed        float64 `yaml:"whoosh_speed"`
}

// PlayerConfig defines the player's box and spawn point.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	SpawnY float64 `yaml:"spawn_y"`
}

// PlatformConfig defines platform geometry and collision.
type PlatformConfig struct {
	Height          float64 `yaml:"height"`
	CollisionMargin float64 `yaml:"collision_margin"`
	GapMin          float64 `yaml:"gap_min"`
	GapRange        float64 `yaml:"gap_range"`
	MovingSpeed     float64 `yaml:"moving_speed"`
	StartY          float64 `yaml:"start_y"`
	StartWidth      float64 `yaml:"start_width"`
	InitialCount    int     `yaml:"initial_count"`
	InitialSpacing  float64 `yaml:"initial_spacing"`
	SpikeBounce     float64 `yaml:"spike_bounce"`
	GenerateBuffer  float64 `yaml:"generate_buffer"`
	EvictMargin     float64 `yaml:"evict_margin"`
}

// GeneratorConfig defines the platform width curves and variant gates.
type GeneratorConfig struct {
	Width     WidthCurve  `yaml:"width"`
	BossWidth WidthCurve  `yaml:"boss_width"`
	Moving    VariantGate `yaml:"moving"`
	Spike     VariantGate `yaml:"spike"`
	Breakable VariantGate `yaml:"breakable"`
}

// WidthCurve shrinks platform width linearly with score down to a floor.
type WidthCurve struct {
	Base   float64 `yaml:"base"`
	Shrink float64 `yaml:"shrink"` // Width lost per floor
	Floor  float64 `yaml:"floor"`
}

// VariantGate enables a variant once score exceeds MinScore, with Chance
// probability per platform.
type VariantGate struct {
	MinScore int     `yaml:"min_score"`
	Chance   float64 `yaml:"chance"`
}

// ScrollConfig defines camera follow and forced scroll.
type ScrollConfig struct {
	Lead          float64     `yaml:"lead"`   // Camera sits this far above the player
	Easing        float64     `yaml:"easing"` // Follow smoothing factor
	CeilingMargin float64     `yaml:"ceiling_margin"`
	Speed         ScrollCurve `yaml:"speed"`
	BossSpeed     ScrollCurve `yaml:"boss_speed"`
}

// ScrollCurve grows auto-scroll speed linearly with score up to a cap.
type ScrollCurve struct {
	Base   float64 `yaml:"base"`
	Growth float64 `yaml:"growth"` // Speed gained per floor
	Cap    float64 `yaml:"cap"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	Health          int     `yaml:"health"`
	Damage          int     `yaml:"damage"`
	PhaseThreshold  int     `yaml:"phase_threshold"`
	Cooldown        int     `yaml:"cooldown"`
	EnragedCooldown int     `yaml:"enraged_cooldown"`
	SpawnY          float64 `yaml:"spawn_y"`
	HoverOffset     float64 `yaml:"hover_offset"`
	VerticalEasing  float64 `yaml:"vertical_easing"`
	ChaseEasing     float64 `yaml:"chase_easing"`
	ChaseDeadZone   float64 `yaml:"chase_dead_zone"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	PhaseSpeedBonus float64 `yaml:"phase_speed_bonus"`
	ProjectileSize  float64 `yaml:"projectile_size"`
	SpreadOffset    float64 `yaml:"spread_offset"`
	EvictMargin     float64 `yaml:"evict_margin"`
}

// ParticleConfig defines the cosmetic particle bursts.
type ParticleConfig struct {
	Decay       float64 `yaml:"decay"`
	Spread      float64 `yaml:"spread"`
	MinSize     float64 `yaml:"min_size"`
	SizeRange   float64 `yaml:"size_range"`
	LandBurst   int     `yaml:"land_burst"`
	SpikeBurst  int     `yaml:"spike_burst"`
	BounceBurst int     `yaml:"bounce_burst"`
	DamageBurst int     `yaml:"damage_burst"`
}

// ReviveConfig defines post-revive grace.
type ReviveConfig struct {
	InvincibleMillis int     `yaml:"invincible_ms"`
	MaxPerRun        int     `yaml:"max_per_run"`
	SpawnOffset      float64 `yaml:"spawn_offset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input maps to normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
