package chart

// EventType is the kind of thing authored at a grid position.
type EventType uint8

const (
	None EventType = iota
	Tap
	Heavy
	Hold
	SoundEffect
	Animation
)

var typeNames = map[EventType]string{
	None:        "none",
	Tap:         "tap",
	Heavy:       "heavy",
	Hold:        "hold",
	SoundEffect: "sound",
	Animation:   "animation",
}

func (t EventType) String() string {
	name, ok := typeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

// IsJudged reports whether input is matched against events of this type.
// Sound and animation events fire on their own, they are never hit.
func (t EventType) IsJudged() bool {
	return t == Tap || t == Heavy || t == Hold
}

// GridEvent is a single timed unit on the chart grid. Only the fields of
// the active Type carry meaning, the rest are ignored.
type GridEvent struct {
	Measure int
	Beat    int
	Type    EventType

	// Hold only. The beat within the same measure the hold releases on.
	HoldEndBeat int

	// SoundEffect only.
	SoundPackID string
	SoundType   EventType

	// Animation only.
	TargetObjectID   string
	AnimationTrigger string
	AnimationParams  map[string]string
}

func (e *GridEvent) SamePos(measure, beat int) bool {
	return e.Measure == measure && e.Beat == beat
}
