package engine

// Color is the tag stored in a board cell. The zero value None marks an
// empty cell; every other value is opaque to the engine.
type Color uint8

const (
	None Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	Gray
)

var colorNames = [...]string{
	None:   "none",
	Cyan:   "cyan",
	Blue:   "blue",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Purple: "purple",
	Red:    "red",
	Gray:   "gray",
}

// Occupied reports whether a cell holding c is filled.
func (c Color) Occupied() bool {
	return c != None
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
