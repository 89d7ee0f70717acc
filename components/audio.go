package components

import (
	cfg "github.com/automoto/kickoff/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). The simulation
// queues sounds here and the audio system plays them.
type AudioData struct {
	Muted        bool
	PendingSFX   []cfg.SoundID
	KickCooldown int // ticks until another contact sound may be queued
	KickInterval int
}

var Audio = donburi.NewComponentType[AudioData]()

// Queue adds a sound to be played on the next audio update.
func (a *AudioData) Queue(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

// QueueContact queues a contact sound unless one played recently.
func (a *AudioData) QueueContact(id cfg.SoundID) {
	if a.KickCooldown > 0 {
		return
	}
	a.Queue(id)
	a.KickCooldown = a.KickInterval
}
