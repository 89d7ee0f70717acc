package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/shared/pitchdata"
)

func TestEmbeddedPitchMatchesDefaults(t *testing.T) {
	got := LoadPitch(cfg.Pitch.MapPath, 960, 540)
	if want := pitchdata.DefaultLayout(960, 540); got != want {
		t.Fatalf("embedded pitch = %+v, want %+v", got, want)
	}
}

func TestLoadPitchFallsBack(t *testing.T) {
	got := LoadPitch("pitches/missing.tmx", 800, 400)
	if got.Width != 800 || got.Height != 400 {
		t.Fatalf("fallback size = %vx%v, want 800x400", got.Width, got.Height)
	}
}

func TestSoundEffectsAreValidWAV(t *testing.T) {
	for id := cfg.SoundKick; id < cfg.SoundCount; id++ {
		data, err := SoundEffect(id, 44100)
		if err != nil {
			t.Fatalf("SoundEffect(%d): %v", id, err)
		}
		if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
			t.Fatalf("sound %d: bad header %q", id, data[:44])
		}
		size := binary.LittleEndian.Uint32(data[40:44])
		if int(size) != len(data)-44 || size == 0 {
			t.Fatalf("sound %d: data size %d, payload %d", id, size, len(data)-44)
		}
	}
}

func TestSoundEffectUnknown(t *testing.T) {
	if _, err := SoundEffect(cfg.SoundNone, 44100); err == nil {
		t.Fatalf("expected an error for SoundNone")
	}
}
