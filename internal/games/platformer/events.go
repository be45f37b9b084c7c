package platformer

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventPlatformReached EventKind = iota // Landed on a new platform
	EventPlatformLeft                     // Left a platform with no replacement
	EventMessageShown
	EventMessageHidden
	EventModalOpened
	EventModalClosed
	EventGoalReached
	EventCoinCollected
	EventFellOff // Fell below the world and was reset to start
	EventRestarted
)

var eventNames = map[EventKind]string{
	EventPlatformReached: "platform_reached",
	EventPlatformLeft:    "platform_left",
	EventMessageShown:    "message_shown",
	EventMessageHidden:   "message_hidden",
	EventModalOpened:     "modal_opened",
	EventModalClosed:     "modal_closed",
	EventGoalReached:     "goal_reached",
	EventCoinCollected:   "coin_collected",
	EventFellOff:         "fell_off",
	EventRestarted:       "restarted",
}

// String returns the event name used in logs.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted by the game for the presentation layer.
// Index is the platform or coin index where relevant, otherwise NoPlatform.
type Event struct {
	Kind  EventKind
	Index int
	Text  string
}

// reachChange compares the platform landed on this frame with the previous
// one. It reports ok only on a change: a new platform yields that platform's
// reach, and leaving a non-goal platform with no replacement yields
// ReachNone, which clears the message.
func reachChange(prev, landed int, platforms []Platform) (Reach, bool) {
	switch {
	case landed != NoPlatform && landed != prev:
		return platforms[landed].Reach, true
	case landed == NoPlatform && prev != NoPlatform && !platforms[prev].IsGoal():
		return Reach{Kind: ReachNone}, true
	default:
		return Reach{}, false
	}
}
