package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultSurvivalConfig returns the built-in Outpost Sigma configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Player: SurvivalPlayer{
			Size:         30,
			HP:           12,
			Speed:        230,
			Damping:      0.85,
			FirePeriod:   0.15,
			Damage:       1,
			BulletSpeed:  520,
			BulletSize:   6,
			MuzzleOffset: 24,
			AimDeadZone:  0.3,
			PointerRange: 80,
		},
		Enemy: SurvivalEnemy{
			Size:          28,
			Speed:         140,
			BaseHP:        3,
			ContactDamage: 1,
			Knockback:     40,
		},
		Waves: SurvivalWaves{
			FirstDelay:   15,
			BaseInterval: 15,
			Decay:        1.4,
			MinInterval:  5,
			BaseCount:    4,
			CountScale:   2,
			HPBonusEvery: 3,
			SpawnMinDist: 360,
			SpawnMaxDist: 520,
		},
		Pickups: SurvivalPickups{
			DropChance:  0.3,
			Lifetime:    10,
			Size:        12,
			RateFactor:  0.8,
			RateFloor:   0.05,
			DamageBonus: 1,
			SpeedBonus:  40,
		},
		Scoring: SurvivalScoring{
			Kill:   10,
			Pickup: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultDuelConfig returns the built-in duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Ship: DuelShip{
			Size:     24,
			HP:       10,
			TurnRate: 3.5,
			Thrust:   220,
			MaxSpeed: 260,
			Drag:     0.6,
		},
		Heat: DuelHeat{
			Max:        100,
			Decay:      30,
			ThrustHeat: 12,
		},
		Cannon: WeaponConfig{
			Period:   0.2,
			Heat:     8,
			Damage:   1,
			Speed:    420,
			Lifetime: 1.6,
			Size:     4,
		},
		Missile: MissileConfig{
			WeaponConfig: WeaponConfig{
				Period:   1.2,
				Heat:     25,
				Damage:   3,
				Speed:    220,
				Lifetime: 4,
				Size:     8,
			},
			MaxTurn:     0.06,
			Accel:       300,
			MaxSpeedMul: 2,
		},
		PointDefense: PointDefense{
			Shots:    12,
			Period:   0.15,
			Speed:    600,
			Lifetime: 0.35,
			Size:     6,
		},
		AI: DuelAI{
			FireCone:     0.2,
			ThrustRange:  250,
			MissileRange: 420,
			DefendRange:  120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // three minutes at 60 ticks
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.3,
				CooldownReduction: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "survival":
		return defaultSurvivalYAML
	case "duel":
		return defaultDuelYAML
	default:
		return nil
	}
}
