package loop

// EventKind classifies something that happened to the session during a frame.
type EventKind int

const (
	// EventFell is a gravity or soft-drop step that moved the piece down.
	EventFell EventKind = iota + 1
	EventShifted
	EventRotated
	// EventLanded is emitted for every landing, with or without cleared rows.
	EventLanded
	// EventLinesCleared follows EventLanded when the landing completed rows.
	EventLinesCleared
	EventGameOver
	EventRestarted
)

var eventNames = map[EventKind]string{
	EventFell:         "fell",
	EventShifted:      "shifted",
	EventRotated:      "rotated",
	EventLanded:       "landed",
	EventLinesCleared: "lines-cleared",
	EventGameOver:     "game-over",
	EventRestarted:    "restarted",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single session change observed by the frame's systems.
type Event struct {
	Kind EventKind
	// Lines and Points are set on EventLinesCleared.
	Lines  int
	Points int
}
