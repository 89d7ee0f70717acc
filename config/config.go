package config

import "image/color"

// Config holds the window and loop settings.
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// TickDuration returns the game time advanced by one Update call, in seconds.
func (c *Config) TickDuration() float64 {
	return 1 / float64(c.TPS)
}

// BallConfig contains ball tuning.
type BallConfig struct {
	Radius   float64
	Friction float64 // per-tick velocity multiplier, 0 < f < 1
	MaxSpeed float64
	Color    color.RGBA
}

// AgentConfig contains tuning for one agent (the player or the opponent).
type AgentConfig struct {
	Radius float64
	Speed  float64
	Color  color.RGBA
	Label  string // HUD score label
}

// RulesConfig contains contact and bounce constants shared by both agents.
type RulesConfig struct {
	Restitution   float64 // fraction of speed kept after a wall bounce
	DribblePower  float64
	ShootPower    float64
	OpponentPower float64
	PursuitBuffer float64 // opponent stops chasing inside radius sum + buffer
	RestSpeed     float64 // ball speeds below this snap to zero after friction
}

// MatchConfig contains match length and persistence settings.
type MatchConfig struct {
	Duration         float64 // seconds
	LeaderboardLimit int
	AppName          string // gdata storage namespace
}

// DurationTicks converts the match duration into whole update ticks.
func (m MatchConfig) DurationTicks(tps int) int {
	return int(m.Duration*float64(tps) + 0.5)
}

// PitchConfig contains field drawing settings.
type PitchConfig struct {
	MapPath    string
	GrassColor color.RGBA
	LineColor  color.RGBA
	GoalColor  color.RGBA
	LineWidth  float32
}

// HUDConfig contains score, timer and high score text settings.
type HUDConfig struct {
	TextColor     color.RGBA
	Margin        float64
	TopY          float64
}

// PauseConfig contains pause overlay settings.
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Text         string
}

// ResultConfig contains end of match overlay settings.
type ResultConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	WinText      string
	LoseText     string
	DrawText     string
	Prompt       string
	LineGap      float64
}

// BannerConfig contains the goal and full time banner tween settings.
type BannerConfig struct {
	GoalText     string
	FullTimeText string
	TextColor    color.RGBA
	FadeIn       float32 // seconds
	Hold         float32
	FadeOut      float32
}

// ButtonsConfig contains the on-screen Pause/Restart button settings.
type ButtonsConfig struct {
	Enabled      bool
	Width        int
	Height       int
	Spacing      int
	Padding      int
	IdleColor    color.RGBA
	HoverColor   color.RGBA
	PressedColor color.RGBA
	TextColor    color.RGBA
}

// DebugConfig contains the broad phase overlay settings.
type DebugConfig struct {
	Enabled   bool
	BodyColor color.RGBA
	CellColor color.RGBA
}

var C *Config
var Ball BallConfig
var Player AgentConfig
var Opponent AgentConfig
var Rules RulesConfig
var Match MatchConfig
var Pitch PitchConfig
var HUD HUDConfig
var Pause PauseConfig
var Result ResultConfig
var Banner BannerConfig
var Buttons ButtonsConfig
var Debug DebugConfig

// Shared colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SoftWhite    = color.RGBA{R: 255, G: 255, B: 255, A: 235}
	Grass        = color.RGBA{R: 26, G: 94, B: 26, A: 255}
	Blue         = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	Red          = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Yellow       = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	DarkOverlay  = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "Kickoff",
	}

	Ball = BallConfig{
		Radius:   10,
		Friction: 0.98,
		MaxSpeed: 12,
		Color:    White,
	}

	Player = AgentConfig{
		Radius: 20,
		Speed:  5,
		Color:  Blue,
		Label:  "Player",
	}

	Opponent = AgentConfig{
		Radius: 20,
		Speed:  4,
		Color:  Red,
		Label:  "AI",
	}

	Rules = RulesConfig{
		Restitution:   0.7,
		DribblePower:  4,
		ShootPower:    8,
		OpponentPower: 5,
		PursuitBuffer: 10,
		RestSpeed:     0.01,
	}

	Match = MatchConfig{
		Duration:         90,
		LeaderboardLimit: 50,
		AppName:          "kickoff",
	}

	Pitch = PitchConfig{
		MapPath:    "pitches/standard.tmx",
		GrassColor: Grass,
		LineColor:  White,
		GoalColor:  White,
		LineWidth:  3,
	}

	HUD = HUDConfig{
		TextColor:     SoftWhite,
		Margin:        20,
		TopY:          30,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Text:         "PAUSED",
	}

	Result = ResultConfig{
		OverlayColor: DarkOverlay,
		TextColor:    White,
		Title:        "MATCH ENDED",
		WinText:      "You Win!",
		LoseText:     "AI Wins!",
		DrawText:     "Draw!",
		Prompt:       "Press R to restart",
		LineGap:      40,
	}

	Banner = BannerConfig{
		GoalText:     "GOAL!",
		FullTimeText: "FULL TIME",
		TextColor:    Yellow,
		FadeIn:       0.15,
		Hold:         0.9,
		FadeOut:      0.45,
	}

	Buttons = ButtonsConfig{
		Enabled:      true,
		Width:        90,
		Height:       28,
		Spacing:      10,
		Padding:      16,
		IdleColor:    color.RGBA{R: 20, G: 60, B: 20, A: 220},
		HoverColor:   color.RGBA{R: 35, G: 90, B: 35, A: 235},
		PressedColor: color.RGBA{R: 15, G: 40, B: 15, A: 255},
		TextColor:    White,
	}

	Debug = DebugConfig{
		Enabled:   false,
		BodyColor: color.RGBA{R: 0, G: 255, B: 255, A: 200},
		CellColor: color.RGBA{R: 255, G: 255, B: 0, A: 60},
	}
}
