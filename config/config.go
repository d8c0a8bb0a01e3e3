package config

import "image/color"

// FighterConfig contains per-fighter values shared by both actors
type FighterConfig struct {
	// Combat
	Health int

	// Movement
	MoveSpeed float64 // arena units per second, per held direction key

	// Body
	Radius float64 // collision radius of the movement body
	Mass   float64

	// Spawning (used when the arena defines no spawn points)
	SpawnOffsetX float64
}

// AnimationConfig contains procedural pose animation values
type AnimationConfig struct {
	// DecayRate is the fraction of the remaining joint error closed per tick.
	DecayRate float64

	// TimeScaled converts DecayRate into an elapsed-time based rate so the pose
	// moves at the same speed regardless of tick rate.
	TimeScaled        bool
	ReferenceTickRate float64

	// Joints lists every animated joint of the procedural skeleton.
	Joints []Joint
}

// LocomotionConfig contains movement controller values
type LocomotionConfig struct {
	// NormalizeDiagonal caps diagonal movement at MoveSpeed. Off by default,
	// diagonals move at MoveSpeed*sqrt(2).
	NormalizeDiagonal bool
}

// CombatConfig contains hit detection values
type CombatConfig struct {
	// Planar measures attacker/defender distance on the xz plane only.
	Planar bool
}

// ArenaConfig contains arena layout values
type ArenaConfig struct {
	Width         float64 // x extent in arena units
	Depth         float64 // z extent in arena units
	WallThickness float64
	DefaultMap    string // TMX file inside assets.Arenas
}

// BodyKindID selects the movement body implementation
type BodyKindID string

const (
	BodyRigid  BodyKindID = "rigid"  // chipmunk rigid body, physics integrates position
	BodyDirect BodyKindID = "direct" // position += velocity * dt with wall contact
)

// PhysicsConfig contains movement body values
type PhysicsConfig struct {
	Body       BodyKindID
	Iterations int     // chipmunk solver iterations
	Damping    float64 // chipmunk velocity damping (1 = none)
}

// HUDConfig contains viewer overlay values
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	DrainSeconds    float64 // time for the health bar to catch up with a hit

	HealthBarBgColor color.RGBA
	PlayerColor      color.RGBA
	OpponentColor    color.RGBA
	FloorColor       color.RGBA
	WallColor        color.RGBA
}

// Config holds general host configuration
type Config struct {
	Width    int
	Height   int
	TickRate int

	// PixelsPerUnit is the viewer zoom, arena units to screen pixels.
	PixelsPerUnit float64
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Animation AnimationConfig
var Locomotion LocomotionConfig
var Combat CombatConfig
var Arena ArenaConfig
var Physics PhysicsConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Blue         = color.RGBA{R: 40, G: 90, B: 230, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	DarkGray     = color.RGBA{R: 50, G: 50, B: 55, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        480,
		TickRate:      60,
		PixelsPerUnit: 22,
	}

	Fighter = FighterConfig{
		Health:       100,
		MoveSpeed:    5.0,
		Radius:       0.4,
		Mass:         70,
		SpawnOffsetX: 2.0,
	}

	Animation = AnimationConfig{
		DecayRate:         0.1,
		TimeScaled:        false,
		ReferenceTickRate: 60,
		Joints:            []Joint{JointShoulder, JointElbow, JointTorso},
	}

	Locomotion = LocomotionConfig{
		NormalizeDiagonal: false,
	}

	Combat = CombatConfig{
		Planar: true,
	}

	// Matches the 20x20 floor plane
	Arena = ArenaConfig{
		Width:         20,
		Depth:         20,
		WallThickness: 0.5,
		DefaultMap:    "arenas/cage.tmx",
	}

	Physics = PhysicsConfig{
		Body:       BodyRigid,
		Iterations: 10,
		Damping:    1.0,
	}

	HUD = HUDConfig{
		HealthBarWidth:   240,
		HealthBarHeight:  14,
		HealthBarMargin:  12,
		DrainSeconds:     0.4,
		HealthBarBgColor: DarkGray,
		PlayerColor:      Red,
		OpponentColor:    Blue,
		FloorColor:       Gray,
		WallColor:        DarkGray,
	}

	AttackTable = DefaultAttacks()
}
