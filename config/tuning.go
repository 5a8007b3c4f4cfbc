// Package config holds the difficulty tuning of the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultYAML []byte

// Tuning groups every knob the simulation reads at runtime.
// World size is not tunable; it is fixed by the game package.
type Tuning struct {
	Player   PlayerTuning  `yaml:"player"`
	Spawn    SpawnTuning   `yaml:"spawn"`
	Level    LevelTuning   `yaml:"level"`
	Powerups PowerupTuning `yaml:"powerups"`
	Limits   LimitTuning   `yaml:"limits"`
}

// PlayerTuning configures the player ship at reset.
type PlayerTuning struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`        // units per second
	FireRateMs float64 `yaml:"fire_rate_ms"` // delay between shots
	MaxHP      int     `yaml:"max_hp"`
}

// SpawnTuning configures the enemy wave timer and wave size.
type SpawnTuning struct {
	BaseIntervalMs     float64 `yaml:"base_interval_ms"`
	MinIntervalMs      float64 `yaml:"min_interval_ms"`
	ScoreFactor        float64 `yaml:"score_factor"` // ms removed per point of score
	LevelFactor        float64 `yaml:"level_factor"` // ms removed per level
	MaxWave            int     `yaml:"max_wave"`
	ScorePerExtraEnemy float64 `yaml:"score_per_extra_enemy"`
}

// LevelTuning configures level progression and boss cadence.
type LevelTuning struct {
	ScorePerLevel float64 `yaml:"score_per_level"`
	BossEvery     int     `yaml:"boss_every"`
}

// PowerupTuning configures drop chance and effect strength.
type PowerupTuning struct {
	DropChance        float64 `yaml:"drop_chance"`
	HealAmount        int     `yaml:"heal_amount"`
	FireRateStepMs    float64 `yaml:"fire_rate_step_ms"`
	FireRateFloorMs   float64 `yaml:"fire_rate_floor_ms"`
	FireRateSeconds   float64 `yaml:"fire_rate_seconds"`
	ShieldSeconds     float64 `yaml:"shield_seconds"`
	WeaponSeconds     float64 `yaml:"weapon_seconds"`
	MultiplierSeconds float64 `yaml:"multiplier_seconds"`
	Multiplier        float64 `yaml:"multiplier"`
}

// LimitTuning caps pool sizes. Zero means unbounded.
type LimitTuning struct {
	MaxParticles int `yaml:"max_particles"`
	MaxBullets   int `yaml:"max_bullets"`
	MaxEnemies   int `yaml:"max_enemies"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Size:       28,
			Speed:      360,
			FireRateMs: 160,
			MaxHP:      5,
		},
		Spawn: SpawnTuning{
			BaseIntervalMs:     1000,
			MinIntervalMs:      300,
			ScoreFactor:        0.4,
			LevelFactor:        20,
			MaxWave:            4,
			ScorePerExtraEnemy: 200,
		},
		Level: LevelTuning{
			ScorePerLevel: 500,
			BossEvery:     3,
		},
		Powerups: PowerupTuning{
			DropChance:        0.12,
			HealAmount:        2,
			FireRateStepMs:    40,
			FireRateFloorMs:   70,
			FireRateSeconds:   15,
			ShieldSeconds:     12,
			WeaponSeconds:     12,
			MultiplierSeconds: 15,
			Multiplier:        2,
		},
		Limits: LimitTuning{
			MaxParticles: 2048,
		},
	}
}

// Load overlays the YAML document in r on top of Default and validates the result.
// An empty document yields the defaults.
func Load(r io.Reader) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadFile reads tuning from a YAML file.
func LoadFile(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values that would stall or break the simulation.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.size", t.Player.Size)
	positive("player.speed", t.Player.Speed)
	positive("player.fire_rate_ms", t.Player.FireRateMs)
	positive("player.max_hp", float64(t.Player.MaxHP))
	positive("spawn.base_interval_ms", t.Spawn.BaseIntervalMs)
	positive("spawn.min_interval_ms", t.Spawn.MinIntervalMs)
	positive("spawn.max_wave", float64(t.Spawn.MaxWave))
	positive("spawn.score_per_extra_enemy", t.Spawn.ScorePerExtraEnemy)
	positive("level.score_per_level", t.Level.ScorePerLevel)
	positive("level.boss_every", float64(t.Level.BossEvery))
	positive("powerups.fire_rate_floor_ms", t.Powerups.FireRateFloorMs)
	positive("powerups.multiplier", t.Powerups.Multiplier)
	positive("powerups.fire_rate_seconds", t.Powerups.FireRateSeconds)
	positive("powerups.shield_seconds", t.Powerups.ShieldSeconds)
	positive("powerups.weapon_seconds", t.Powerups.WeaponSeconds)
	positive("powerups.multiplier_seconds", t.Powerups.MultiplierSeconds)

	if t.Powerups.DropChance < 0 || t.Powerups.DropChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.drop_chance must be within [0,1], got %v", t.Powerups.DropChance))
	}
	if t.Spawn.MinIntervalMs > t.Spawn.BaseIntervalMs {
		errs = append(errs, fmt.Errorf("spawn.min_interval_ms (%v) exceeds spawn.base_interval_ms (%v)",
			t.Spawn.MinIntervalMs, t.Spawn.BaseIntervalMs))
	}
	if t.Limits.MaxParticles < 0 || t.Limits.MaxBullets < 0 || t.Limits.MaxEnemies < 0 {
		errs = append(errs, errors.New("limits must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
