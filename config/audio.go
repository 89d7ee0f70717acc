package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundKick
	SoundShot
	SoundGoal
	SoundWhistle
	SoundCount
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	// KickCooldown is the number of ticks before another contact sound may
	// play, so sustained dribbling does not retrigger every frame.
	KickCooldown int
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:   44100,
		SFXVolume:    0.6,
		KickCooldown: 12,
	}
}
