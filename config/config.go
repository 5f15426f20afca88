package config

import (
	"image/color"

	"github.com/automoto/stonerush/shared/leveldata"
)

// Config holds window settings.
type Config struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// WorldConfig contains global physics values. All speeds are pixels per
// second and all accelerations pixels per second squared.
type WorldConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	MaxDelta         float64 `yaml:"max_delta"` // Upper bound for a single frame's delta
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed        float64 `yaml:"speed"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative, y grows downward
	WalkDeadzone float64 `yaml:"walk_deadzone"` // Horizontal speed below which the player counts as idle

	// Ram dash
	RamSpeed    float64 `yaml:"ram_speed"`
	RamDuration float64 `yaml:"ram_duration"` // seconds

	// Lives
	StartingLives  int     `yaml:"starting_lives"`
	InvulnDuration float64 `yaml:"invuln_duration"` // seconds after taking damage

	// Animation
	WalkFrameRate float64 `yaml:"walk_frame_rate"` // idle/walk frame toggles per second

	// Dimensions
	Width  float64 `yaml:"-"`
	Height float64 `yaml:"-"`
}

// EnemyConfig contains patrol values for enemies
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrol_distance"` // Max distance from the spawn anchor before turning
	EdgeProbeDepth float64 `yaml:"edge_probe_depth"`

	Width  float64 `yaml:"-"`
	Height float64 `yaml:"-"`
}

// CollisionConfig contains collision query tuning
type CollisionConfig struct {
	GroundTolerance     float64 `yaml:"ground_tolerance"`      // Pixels between feet and a block top that still count as standing
	PlayerSearchPadding float64 `yaml:"player_search_padding"` // Padding around the player AABB when querying blocks
	EnemySearchPadding  float64 `yaml:"enemy_search_padding"`
}

// LevelConfig contains level geometry
type LevelConfig struct {
	BlockSize  float64
	GoalWidth  float64
	GoalHeight float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
	OffsetX         float64 `yaml:"offset_x"`         // Keeps the player left of center
}

// TransitionConfig contains the pause shown between levels and after death
type TransitionConfig struct {
	PauseSeconds float64 `yaml:"pause_seconds"`
}

// ColorConfig contains placeholder colors used when sprites are missing
type ColorConfig struct {
	Player       color.RGBA
	Ground       color.RGBA
	CrackedBlock color.RGBA
	Enemy        color.RGBA
	Goal         color.RGBA
	Sky          color.RGBA
	Black        color.RGBA
	White        color.RGBA
	DarkGray     color.RGBA
	Flash        color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        int
	FontSize      float64
	TitleFontSize float64
	TextColor     color.RGBA
	OverlayColor  color.RGBA
	CompleteText  string
	GameOverText  string
	WonText       string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawBounds  bool // Outline every AABB
	BoundsColor color.RGBA
	StartLevel  int
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Collision CollisionConfig
var Level LevelConfig
var Camera CameraConfig
var Transition TransitionConfig
var Colors ColorConfig
var HUD HUDConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:     800,
		Height:    600,
		Title:     "StoneRush",
		TargetFPS: 60,
	}

	World = WorldConfig{
		Gravity:          800.0,
		TerminalVelocity: 1000.0,
		MaxDelta:         0.05,
	}

	Player = PlayerConfig{
		Speed:        200.0,
		JumpVelocity: -400.0,
		WalkDeadzone: 10.0,

		RamSpeed:    500.0,
		RamDuration: 0.3,

		StartingLives:  3,
		InvulnDuration: 1.5,

		WalkFrameRate: 6.0,

		Width:  32,
		Height: 32,
	}

	Enemy = EnemyConfig{
		Speed:          50.0,
		PatrolDistance: 128.0,
		EdgeProbeDepth: 4.0,

		Width:  32,
		Height: 32,
	}

	Collision = CollisionConfig{
		GroundTolerance:     3.0,
		PlayerSearchPadding: leveldata.BlockSize,
		EnemySearchPadding:  leveldata.BlockSize / 2,
	}

	Level = LevelConfig{
		BlockSize:  leveldata.BlockSize,
		GoalWidth:  64,
		GoalHeight: 96,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		OffsetX:         200.0,
	}

	Transition = TransitionConfig{
		PauseSeconds: 1.5,
	}

	Colors = ColorConfig{
		Player:       color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Ground:       color.RGBA{R: 153, G: 102, B: 51, A: 255},
		CrackedBlock: color.RGBA{R: 127, G: 76, B: 25, A: 255},
		Enemy:        color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Goal:         color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Sky:          color.RGBA{R: 135, G: 206, B: 235, A: 255},
		Black:        color.RGBA{R: 0, G: 0, B: 0, A: 255},
		White:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		DarkGray:     color.RGBA{R: 64, G: 64, B: 64, A: 255},
		Flash:        color.RGBA{R: 255, G: 255, B: 255, A: 100},
	}

	HUD = HUDConfig{
		Margin:        10,
		FontSize:      20,
		TitleFontSize: 36,
		TextColor:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 120},
		CompleteText:  "LEVEL COMPLETE!",
		GameOverText:  "GAME OVER!",
		WonText:       "YOU WIN!",
	}

	Debug = DebugConfig{
		DrawBounds:  false,
		BoundsColor: color.RGBA{R: 255, G: 0, B: 255, A: 255},
		StartLevel:  1,
	}
}
