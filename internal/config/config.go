// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

// SurvivalConfig contains all tunables for Outpost Sigma.
type SurvivalConfig struct {
	Player     SurvivalPlayer   `yaml:"player"`
	Enemy      SurvivalEnemy    `yaml:"enemy"`
	Waves      SurvivalWaves    `yaml:"waves"`
	Pickups    SurvivalPickups  `yaml:"pickups"`
	Scoring    SurvivalScoring  `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SurvivalPlayer defines the player's ship and gun.
type SurvivalPlayer struct {
	Size         float64 `yaml:"size"`
	HP           int     `yaml:"hp"`
	Speed        float64 `yaml:"speed"`
	Damping      float64 `yaml:"damping"` // velocity factor per step without move input
	FirePeriod   float64 `yaml:"fire_period"`
	Damage       int     `yaml:"damage"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletSize   float64 `yaml:"bullet_size"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
	AimDeadZone  float64 `yaml:"aim_dead_zone"` // squared stick length below which the gun holds fire
	PointerRange float64 `yaml:"pointer_range"` // mouse aim ignored closer than this
}

// SurvivalEnemy defines the chasers.
type SurvivalEnemy struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	BaseHP        int     `yaml:"base_hp"`
	ContactDamage int     `yaml:"contact_damage"`
	Knockback     float64 `yaml:"knockback"`
}

// SurvivalWaves defines the wave spawner.
type SurvivalWaves struct {
	FirstDelay   float64 `yaml:"first_delay"`
	BaseInterval float64 `yaml:"base_interval"`
	Decay        float64 `yaml:"decay"`
	MinInterval  float64 `yaml:"min_interval"`
	BaseCount    int     `yaml:"base_count"`
	CountScale   int     `yaml:"count_scale"`
	HPBonusEvery int     `yaml:"hp_bonus_every"`
	SpawnMinDist int     `yaml:"spawn_min_dist"`
	SpawnMaxDist int     `yaml:"spawn_max_dist"`
}

// SurvivalPickups defines drops and upgrades.
type SurvivalPickups struct {
	DropChance  float64 `yaml:"drop_chance"`
	Lifetime    float64 `yaml:"lifetime"`
	Size        float64 `yaml:"size"`
	RateFactor  float64 `yaml:"rate_factor"`
	RateFloor   float64 `yaml:"rate_floor"`
	DamageBonus int     `yaml:"damage_bonus"`
	SpeedBonus  float64 `yaml:"speed_bonus"`
}

// SurvivalScoring defines score rewards.
type SurvivalScoring struct {
	Kill   int `yaml:"kill"`
	Pickup int `yaml:"pickup"`
}

// DuelConfig contains all tunables for the duel.
type DuelConfig struct {
	Ship         DuelShip         `yaml:"ship"`
	Heat         DuelHeat         `yaml:"heat"`
	Cannon       WeaponConfig     `yaml:"cannon"`
	Missile      MissileConfig    `yaml:"missile"`
	PointDefense PointDefense     `yaml:"point_defense"`
	AI           DuelAI           `yaml:"ai"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
}

// DuelShip defines ship handling shared by both sides.
type DuelShip struct {
	Size     float64 `yaml:"size"`
	HP       int     `yaml:"hp"`
	TurnRate float64 `yaml:"turn_rate"` // radians per second
	Thrust   float64 `yaml:"thrust"`    // acceleration while thrusting
	MaxSpeed float64 `yaml:"max_speed"`
	Drag     float64 `yaml:"drag"` // fraction of speed lost per second
}

// DuelHeat defines the shared heat budget of a ship.
type DuelHeat struct {
	Max        float64 `yaml:"max"`
	Decay      float64 `yaml:"decay"`       // per second
	ThrustHeat float64 `yaml:"thrust_heat"` // per second of thrust
}

// WeaponConfig defines a projectile weapon.
type WeaponConfig struct {
	Period   float64 `yaml:"period"`
	Heat     float64 `yaml:"heat"`
	Damage   int     `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	Size     float64 `yaml:"size"`
}

// MissileConfig is a weapon whose shots home in on the opponent.
type MissileConfig struct {
	WeaponConfig `yaml:",inline"`
	MaxTurn      float64 `yaml:"max_turn"` // radians per step
	Accel        float64 `yaml:"accel"`
	MaxSpeedMul  float64 `yaml:"max_speed_mul"`
}

// PointDefense defines the limited-ammo interceptor.
type PointDefense struct {
	Shots    int     `yaml:"shots"`
	Period   float64 `yaml:"period"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	Size     float64 `yaml:"size"`
}

// DuelAI defines the CPU pilot.
type DuelAI struct {
	FireCone     float64 `yaml:"fire_cone"` // max bearing error in radians to open fire
	ThrustRange  float64 `yaml:"thrust_range"`
	MissileRange float64 `yaml:"missile_range"`
	DefendRange  float64 `yaml:"defend_range"` // incoming shots closer than this trigger point-defense
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to enemy speed at max difficulty
	CooldownReduction float64 `yaml:"cooldown_reduction"` // fraction cut from enemy weapon periods at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply adjusts a difficulty block for a preset. The empty preset keeps the file's values.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
