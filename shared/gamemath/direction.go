package gamemath

// Direction is one of the nine movement directions on the ground plane.
// North is -Z, south is +Z, east is +X, west is -X.
type Direction int

const (
	DirNone Direction = iota
	DirN
	DirS
	DirE
	DirW
	DirNE
	DirNW
	DirSE
	DirSW
)

var directionNames = [...]string{
	DirNone: "none",
	DirN:    "N",
	DirS:    "S",
	DirE:    "E",
	DirW:    "W",
	DirNE:   "NE",
	DirNW:   "NW",
	DirSE:   "SE",
	DirSW:   "SW",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// DirectionFromKeys composes held direction keys into a Direction.
// Opposing keys cancel each other out.
func DirectionFromKeys(north, south, east, west bool) Direction {
	dz := 0
	if north {
		dz--
	}
	if south {
		dz++
	}
	dx := 0
	if east {
		dx++
	}
	if west {
		dx--
	}

	switch {
	case dz < 0 && dx > 0:
		return DirNE
	case dz < 0 && dx < 0:
		return DirNW
	case dz > 0 && dx > 0:
		return DirSE
	case dz > 0 && dx < 0:
		return DirSW
	case dz < 0:
		return DirN
	case dz > 0:
		return DirS
	case dx > 0:
		return DirE
	case dx < 0:
		return DirW
	}
	return DirNone
}

// Axes returns the unit steps along X and Z for d, before diagonal scaling.
func (d Direction) Axes() (dx, dz int) {
	switch d {
	case DirN:
		return 0, -1
	case DirS:
		return 0, 1
	case DirE:
		return 1, 0
	case DirW:
		return -1, 0
	case DirNE:
		return 1, -1
	case DirNW:
		return -1, -1
	case DirSE:
		return 1, 1
	case DirSW:
		return -1, 1
	}
	return 0, 0
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	dx, dz := d.Axes()
	return dx != 0 && dz != 0
}
