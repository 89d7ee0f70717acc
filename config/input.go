package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionShoot
	ActionPause
	ActionRestart
	ActionMute
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionShoot:     "shoot",
	ActionPause:     "pause",
	ActionRestart:   "restart",
	ActionMute:      "mute",
	ActionDebug:     "debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
