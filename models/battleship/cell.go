package battleship

// Cell is the state of a single grid position.
type Cell uint8

const (
	CellWater Cell = iota
	CellShip
	CellMiss
	CellHit

	// Never stored in a grid. Only produced by Display
	// to conceal water and ships from the player.
	CellUnknown
)

func (c Cell) String() string {
	switch c {
	case CellWater:
		return "water"
	case CellShip:
		return "ship"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Display projects the cell for the player. Misses and hits are always
// visible; water and ships collapse to CellUnknown while hidden.
func (c Cell) Display(hide bool) Cell {
	if hide && (c == CellWater || c == CellShip) {
		return CellUnknown
	}
	return c
}
