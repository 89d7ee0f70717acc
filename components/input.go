package components

import (
	cfg "github.com/automoto/kickoff/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the state of one action for this frame.
func (in *InputData) Action(action cfg.ActionID) ActionState {
	cur, prev := in.Current[action], in.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Advance moves this frame's state into the previous buffer and installs the
// newly polled state.
func (in *InputData) Advance(current [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = current
}

// Clear forgets every held action, including the previous frame, so nothing
// reads as just pressed afterwards.
func (in *InputData) Clear() {
	in.Current = [cfg.ActionCount]bool{}
	in.Previous = [cfg.ActionCount]bool{}
}
