package trick

// Phase is the trick lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCharging
	PhaseInAir
)

var phaseNames = [...]string{
	PhaseIdle:     "idle",
	PhaseCharging: "charging",
	PhaseInAir:    "in_air",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Direction is one of the four trick buttons
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount
)

var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// sign returns -1 for left, +1 for right, 0 otherwise
func (d Direction) sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	}
	return 0
}

// Action is the button edge
type Action uint8

const (
	ActionPress Action = iota
	ActionHold
	ActionRelease
)

var actionNames = [...]string{
	ActionPress:   "press",
	ActionHold:    "hold",
	ActionRelease: "release",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Input is one of the twelve abstract trick symbols
type Input struct {
	Dir    Direction
	Action Action
}

func (i Input) String() string {
	return i.Dir.String() + "_" + i.Action.String()
}

// Named symbols
var (
	UpPress      = Input{DirUp, ActionPress}
	UpHold       = Input{DirUp, ActionHold}
	UpRelease    = Input{DirUp, ActionRelease}
	DownPress    = Input{DirDown, ActionPress}
	DownHold     = Input{DirDown, ActionHold}
	DownRelease  = Input{DirDown, ActionRelease}
	LeftPress    = Input{DirLeft, ActionPress}
	LeftHold     = Input{DirLeft, ActionHold}
	LeftRelease  = Input{DirLeft, ActionRelease}
	RightPress   = Input{DirRight, ActionPress}
	RightHold    = Input{DirRight, ActionHold}
	RightRelease = Input{DirRight, ActionRelease}
)

// ParseInput resolves names like "down_press"
func ParseInput(name string) (Input, bool) {
	for d := Direction(0); d < directionCount; d++ {
		for a := ActionPress; a <= ActionRelease; a++ {
			in := Input{d, a}
			if in.String() == name {
				return in, true
			}
		}
	}
	return Input{}, false
}
