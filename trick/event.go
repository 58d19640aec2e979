package trick

// EventType identifies a lifecycle notification
type EventType uint8

const (
	EventChargeStart EventType = iota + 1
	EventPop
	EventCatch       // clean catch, landing damping applied
	EventBail        // catch failed the skill check, physics untouched
	EventGroundReset // touched ground in air without a catch
	EventReset       // external forced reset
)

var eventNames = map[EventType]string{
	EventChargeStart: "charge_start",
	EventPop:         "pop",
	EventCatch:       "catch",
	EventBail:        "bail",
	EventGroundReset: "ground_reset",
	EventReset:       "reset",
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Event is delivered synchronously after the transition completed
type Event struct {
	Type     EventType
	Nollie   bool
	PopForce float64 // set for EventPop
	Result   Result  // set for EventCatch, EventBail and EventGroundReset
}

// Listener receives machine events
type Listener func(Event)
