package systems

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/automoto/kickoff/assets"
	cfg "github.com/automoto/kickoff/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across matches
var (
	globalAudioContext *audio.Context
	globalSFX          map[cfg.SoundID][]byte // decoded PCM ready for playback
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and decodes every sound effect
// up front so the first kick does not stall a frame.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFX = make(map[cfg.SoundID][]byte, cfg.SoundCount)
		for id := cfg.SoundKick; id < cfg.SoundCount; id++ {
			decoded, err := decodeSFX(id)
			if err != nil {
				log.Printf("Warning: Could not prepare sound %d: %v", id, err)
				continue
			}
			globalSFX[id] = decoded
		}
	})
}

func decodeSFX(id cfg.SoundID) ([]byte, error) {
	data, err := assets.SoundEffect(id, cfg.Audio.SampleRate)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(globalAudioContext.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio: %w", err)
	}
	return decoded, nil
}

// PreloadAudio prepares the audio context before the first match starts.
func PreloadAudio() {
	initGlobalAudio()
}

// UpdateAudio plays the sounds queued during this tick.
func UpdateAudio(e *ecs.ECS) {
	a, ok := getAudio(e)
	if !ok || len(a.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()

	if !a.Muted && cfg.Audio.SFXVolume > 0 {
		for _, id := range a.PendingSFX {
			playSFX(id)
		}
	}
	a.PendingSFX = a.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	decoded, ok := globalSFX[id]
	if !ok {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(decoded)
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}
