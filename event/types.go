package event

// Type identifies a simulation event.
type Type int

const (
	// TypeBodyAdded signals one or more bodies entering the simulation
	// Trigger: add commands, spawner | Consumer: UI loop | Value: bodies added
	TypeBodyAdded Type = iota

	// TypeBodyRemoved signals bodies leaving the simulation
	// Trigger: remove commands, impact-limit culling | Consumer: UI loop (sound) | Value: bodies removed
	TypeBodyRemoved

	// TypeCollision signals resolved body-body collisions in a tick
	// Trigger: collision phase | Consumer: UI loop (sound) | Value: pairs resolved
	TypeCollision

	// TypeZoneAdmitted signals a body becoming a zone occupant
	// Trigger: zone phase | Consumer: UI loop (sound) | Value: 1
	TypeZoneAdmitted

	// TypeZoneBounced signals a body repelled by a full zone
	// Trigger: zone phase | Consumer: UI loop (sound) | Value: 1
	TypeZoneBounced

	// TypePaused signals the simulation entering the paused state
	// Trigger: pause command | Consumer: UI loop | Value: 0
	TypePaused

	// TypeResumed signals the simulation leaving the paused state
	// Trigger: resume command | Consumer: UI loop | Value: 0
	TypeResumed

	// TypeEngineStarted signals the tick loop starting
	// Trigger: first body insertion | Consumer: UI loop | Value: 0
	TypeEngineStarted

	// TypeEngineStopped signals the tick loop exiting
	// Trigger: registry emptied or explicit stop | Consumer: UI loop | Value: 0
	TypeEngineStopped
)

// Event is a single simulation event. Value carries a small count
// where the type defines one; no pointer payloads, so pushing never
// allocates.
type Event struct {
	Type  Type
	Tick  uint64
	Value int
}
