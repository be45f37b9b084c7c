package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - move left
	ActionRight              // Right arrow, D - move right
	ActionJump               // Up arrow, W - jump
	ActionConfirm            // Enter, Space - dismiss dialog / play again
	ActionBack               // Escape - dismiss dialog
	ActionRestart            // R - restart the level
	ActionLeaderboard        // Tab - show best runs
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// actionOrder fixes the order in which actions of one frame are processed.
var actionOrder = []Action{
	ActionRestart,
	ActionConfirm,
	ActionBack,
	ActionLeft,
	ActionRight,
	ActionJump,
	ActionLeaderboard,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the key presses collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Ordered returns the triggered actions in a fixed processing order,
// so that two runs fed the same frames behave identically.
func (f InputFrame) Ordered() []Action {
	var out []Action
	for _, a := range actionOrder {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
