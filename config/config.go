package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds window and tick settings.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DeltaTime is the fixed step of one tick in seconds.
func (c *Config) DeltaTime() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TPS)
}

// AgentTypeConfig is the tuning for one kind of AI agent.
type AgentTypeConfig struct {
	Name      string `yaml:"name"`
	Movement  string `yaml:"movement"`  // "chase" or "avoid"
	Detection string `yaml:"detection"` // "radial" or "visual"

	AlertRadius  float64  `yaml:"alertRadius"`
	EscapeRadius float64  `yaml:"escapeRadius"`
	CanEscape    bool     `yaml:"canEscape"`
	VisualAngle  float64  `yaml:"visualAngle"` // half-angle in degrees
	TargetLayers []string `yaml:"targetLayers"`
	AvoidScale   float64  `yaml:"avoidScale"`

	// Navigation
	Speed            float64 `yaml:"speed"`
	StoppingDistance float64 `yaml:"stoppingDistance"`

	// Dimensions
	Size float64 `yaml:"size"`

	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig holds every agent type by name.
type EnemyConfig struct {
	Types       map[string]AgentTypeConfig
	DefaultType string
}

type HealthConfig struct {
	Max            float64
	SmoothDuration float64 // seconds a hit takes to drain
	Curve          string  // easing name, see health.Curves

	NormalColor color.RGBA
	DamageColor color.RGBA
}

type PlayerConfig struct {
	HorizontalSpeed float64
	VerticalSpeed   float64
	RotationSpeed   float64
	Size            float64
}

type CameraConfig struct {
	Yaw             float64 // degrees about the up axis
	FollowSmoothing float64
}

type NavConfig struct {
	CellSize       float64
	SpaceCellSize  int
	RepathDistance float64
}

type CombatConfig struct {
	DamageZoneAmount float64
	// ContactDamage is dealt when an active agent first touches the player.
	ContactDamage    float64
	DeathDelay       int // frames before the game over overlay
}

type HUDConfig struct {
	Margin    float64
	FontSize  float64
	TextColor color.RGBA
	BgColor   color.RGBA
}

type DebugConfig struct {
	LogAI     bool
	DrawPaths bool
}

type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	Hint         string
}

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	Purple       = color.RGBA{R: 170, G: 90, B: 230, A: 255}
	BrightGreen  = color.RGBA{R: 80, G: 230, B: 110, A: 255}
	Slate        = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	Ground       = color.RGBA{R: 30, G: 36, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

var (
	C        *Config
	Enemy    EnemyConfig
	Health   HealthConfig
	Player   PlayerConfig
	Camera   CameraConfig
	Nav      NavConfig
	Combat   CombatConfig
	HUD      HUDConfig
	Debug    DebugConfig
	GameOver GameOverConfig
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Enemy = EnemyConfig{
		Types: map[string]AgentTypeConfig{
			"Sentry": {
				Name:             "Sentry",
				Movement:         "chase",
				Detection:        "radial",
				AlertRadius:      120,
				EscapeRadius:     200,
				CanEscape:        true,
				Speed:            60,
				StoppingDistance: 12,
				Size:             14,
				TintColor:        Orange,
			},
			"Watcher": {
				Name:             "Watcher",
				Movement:         "chase",
				Detection:        "visual",
				AlertRadius:      160,
				EscapeRadius:     240,
				CanEscape:        true,
				VisualAngle:      45,
				TargetLayers:     []string{"player"},
				Speed:            50,
				StoppingDistance: 12,
				Size:             14,
				TintColor:        Purple,
			},
			"Skulker": {
				Name:             "Skulker",
				Movement:         "avoid",
				Detection:        "radial",
				AlertRadius:      100,
				AvoidScale:       1.5,
				Speed:            70,
				StoppingDistance: 4,
				Size:             12,
				TintColor:        Yellow,
			},
		},
		DefaultType: "Sentry",
	}

	Health = HealthConfig{
		Max:            100,
		SmoothDuration: 0.5,
		Curve:          "linear",
		NormalColor:    White,
		DamageColor:    Red,
	}

	Player = PlayerConfig{
		HorizontalSpeed: 90,
		VerticalSpeed:   90,
		RotationSpeed:   12,
		Size:            14,
	}

	Camera = CameraConfig{
		Yaw:             45,
		FollowSmoothing: 0.1,
	}

	Nav = NavConfig{
		CellSize:       16,
		SpaceCellSize:  16,
		RepathDistance: 8,
	}

	Combat = CombatConfig{
		DamageZoneAmount: 10,
		ContactDamage:    20,
		DeathDelay:       60,
	}

	HUD = HUDConfig{
		Margin:    8,
		FontSize:  14,
		TextColor: White,
		BgColor:   BlackOverlay,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogAI:     false,
		DrawPaths: true,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		HintColor:    White,
		Title:        "You were caught",
		Hint:         "Press ENTER to retry",
	}
}
