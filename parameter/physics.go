package parameter

// Arena bounds
const (
	// MinArenaWidth / MinArenaHeight are the resize floor in px; smaller
	// requests are clamped, never rejected
	MinArenaWidth  = 50.0
	MinArenaHeight = 50.0

	// DefaultArenaWidth / DefaultArenaHeight size the arena when no
	// configuration overrides them
	DefaultArenaWidth  = 600.0
	DefaultArenaHeight = 400.0
)

// Body spawn ranges
const (
	// BodyMinRadius / BodyMaxRadius bound random spawn radii in px,
	// max exclusive
	BodyMinRadius = 8
	BodyMaxRadius = 20

	// BodySpeedMin / BodySpeedMax bound random spawn speed in px/s,
	// max exclusive; converted to px/ms at spawn
	BodySpeedMin = 60.0
	BodySpeedMax = 180.0

	// MillisPerSecond converts px/s spawn speeds into the px/ms the
	// integrator works in
	MillisPerSecond = 1000.0

	// ColorChannelMin / ColorChannelMax bound random body colors per RGB
	// channel, max exclusive; avoids invisibly dark and washed-out hues
	ColorChannelMin = 40
	ColorChannelMax = 220

	// SpawnAttemptLimit caps placement retries before falling back to a
	// position just left of the zone
	SpawnAttemptLimit = 50

	// SpawnFallbackGap is the px margin between a fallback-placed body
	// and the zone's left edge
	SpawnFallbackGap = 5.0
)

// Controlled body
const (
	// ControlRadius is the fixed radius of the player-driven body in px
	ControlRadius = 15

	// ControlAccel is the per-axis steering acceleration in px/ms²
	ControlAccel = 0.001

	// ControlMaxSpeed caps the controlled body's speed in px/ms
	ControlMaxSpeed = 0.5

	// ControlIdleFriction is the per-tick velocity retention applied
	// only while no steering flag is held
	ControlIdleFriction = 0.98
)

// Collision resolution
const (
	// ImpactRemovalLimit is the impact count at which a passive body is
	// removed from the simulation
	ImpactRemovalLimit = 5

	// MinSeparationSq guards the contact normal: center distances with a
	// smaller square are treated as coincident and skipped
	MinSeparationSq = 0.001

	// CorrectionPadding is the extra px each body is pushed past half
	// the overlap, preventing re-collision jitter on the next tick
	CorrectionPadding = 0.1
)

// Zone
const (
	// ZoneWidthRatio / ZoneHeightRatio derive the default zone rectangle
	// from the arena dimensions
	ZoneWidthRatio  = 0.5
	ZoneHeightRatio = 0.5

	// ZoneMinSize is the px floor for either zone dimension
	ZoneMinSize = 10.0

	// ZoneDefaultCapacity is the occupant limit when none is configured
	ZoneDefaultCapacity = 1

	// ZoneMinCapacity is the clamp floor for capacity updates
	ZoneMinCapacity = 1
)
