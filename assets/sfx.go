package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/kickoff/config"
)

// voice describes one synthesised sound effect.
type voice struct {
	duration  float64 // seconds
	gain      float64
	noise     float64 // share of white noise mixed in, 0-1
	decay     float64 // exponential envelope rate
	frequency func(t float64) float64
}

var voices = map[cfg.SoundID]voice{
	cfg.SoundKick: {
		duration:  0.09,
		gain:      0.8,
		noise:     0.15,
		decay:     35,
		frequency: sweep(140, 60, 0.09),
	},
	cfg.SoundShot: {
		duration:  0.14,
		gain:      0.9,
		noise:     0.35,
		decay:     22,
		frequency: sweep(220, 70, 0.14),
	},
	cfg.SoundGoal: {
		duration: 0.72,
		gain:     0.5,
		decay:    2.5,
		frequency: func(t float64) float64 {
			notes := []float64{523.25, 659.25, 783.99, 1046.5}
			i := int(t / 0.18)
			if i >= len(notes) {
				i = len(notes) - 1
			}
			return notes[i]
		},
	},
	cfg.SoundWhistle: {
		duration: 0.55,
		gain:     0.35,
		noise:    0.05,
		decay:    1.2,
		frequency: func(t float64) float64 {
			return 2800 + 90*math.Sin(2*math.Pi*28*t)
		},
	},
}

func sweep(from, to, over float64) func(float64) float64 {
	return func(t float64) float64 {
		return from + (to-from)*math.Min(t/over, 1)
	}
}

// SoundEffect renders a sound as a mono 16-bit PCM WAV file.
func SoundEffect(id cfg.SoundID, sampleRate int) ([]byte, error) {
	v, ok := voices[id]
	if !ok {
		return nil, fmt.Errorf("no sound for id %d", id)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	return encodeWAV(render(v, sampleRate, int64(id)), sampleRate), nil
}

func render(v voice, sampleRate int, seed int64) []int16 {
	n := int(v.duration * float64(sampleRate))
	out := make([]int16, n)
	rng := rand.New(rand.NewSource(seed))
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		phase += 2 * math.Pi * v.frequency(t) / float64(sampleRate)
		s := (1-v.noise)*math.Sin(phase) + v.noise*(rng.Float64()*2-1)
		env := math.Exp(-v.decay * t)
		// short linear fade at both ends to avoid clicks
		if edge := float64(min(i, n-1-i)) / (0.004 * float64(sampleRate)); edge < 1 {
			env *= edge
		}
		out[i] = int16(math.MaxInt16 * v.gain * env * s)
	}
	return out
}

// encodeWAV wraps mono 16-bit samples in a RIFF/WAVE container.
func encodeWAV(samples []int16, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	dataSize := len(samples) * 2
	blockAlign := channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
