package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the tunable sections that may be changed from YAML.
// Keys missing from the file keep their defaults.
type overrideFile struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Collision  CollisionConfig  `yaml:"collision"`
	Camera     CameraConfig     `yaml:"camera"`
	Transition TransitionConfig `yaml:"transition"`
}

// LoadOverrides reads a YAML file and applies its values on top of the
// defaults. Nothing is applied if the file fails to parse or validate.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides applies YAML-encoded overrides.
func ApplyOverrides(data []byte) error {
	doc := overrideFile{
		World:      World,
		Player:     Player,
		Enemy:      Enemy,
		Collision:  Collision,
		Camera:     Camera,
		Transition: Transition,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := doc.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	World = doc.World
	Player = doc.Player
	Enemy = doc.Enemy
	Collision = doc.Collision
	Camera = doc.Camera
	Transition = doc.Transition
	return nil
}

func (f *overrideFile) validate() error {
	var errs []error
	if f.World.MaxDelta <= 0 {
		errs = append(errs, errors.New("world.max_delta must be positive"))
	}
	if f.World.TerminalVelocity <= 0 {
		errs = append(errs, errors.New("world.terminal_velocity must be positive"))
	}
	if f.Player.StartingLives < 1 {
		errs = append(errs, errors.New("player.starting_lives must be at least 1"))
	}
	if f.Player.RamDuration <= 0 {
		errs = append(errs, errors.New("player.ram_duration must be positive"))
	}
	if f.Enemy.PatrolDistance <= 0 {
		errs = append(errs, errors.New("enemy.patrol_distance must be positive"))
	}
	if f.Collision.GroundTolerance < 0 {
		errs = append(errs, errors.New("collision.ground_tolerance must not be negative"))
	}
	if f.Camera.FollowSmoothing <= 0 || f.Camera.FollowSmoothing > 1 {
		errs = append(errs, errors.New("camera.follow_smoothing must be in (0, 1]"))
	}
	return errors.Join(errs...)
}
