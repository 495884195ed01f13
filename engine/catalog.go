package engine

// Kind identifies one of the seven tetrominoes in the catalog.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of entries in the catalog.
const KindCount = 7

type tetromino struct {
	name  string
	shape Shape
	color Color
}

var catalog = [KindCount]tetromino{
	KindI: {
		name:  "I",
		shape: Shape{{true, true, true, true}},
		color: Cyan,
	},
	KindJ: {
		name: "J",
		shape: Shape{
			{true, false, false},
			{true, true, true},
		},
		color: Blue,
	},
	KindL: {
		name: "L",
		shape: Shape{
			{false, false, true},
			{true, true, true},
		},
		color: Orange,
	},
	KindO: {
		name: "O",
		shape: Shape{
			{true, true},
			{true, true},
		},
		color: Yellow,
	},
	KindS: {
		name: "S",
		shape: Shape{
			{false, true, true},
			{true, true, false},
		},
		color: Green,
	},
	KindT: {
		name: "T",
		shape: Shape{
			{false, true, false},
			{true, true, true},
		},
		color: Purple,
	},
	KindZ: {
		name: "Z",
		shape: Shape{
			{true, true, false},
			{false, true, true},
		},
		color: Red,
	},
}

// Kinds returns every catalog kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return int(k) < KindCount
}

// Shape returns a fresh copy of the kind's base shape.
func (k Kind) Shape() Shape {
	return catalog[k].shape.Clone()
}

// Color returns the tag written into the board when a piece of this kind locks.
func (k Kind) Color() Color {
	return catalog[k].color
}

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return catalog[k].name
}
