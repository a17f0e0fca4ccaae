package battleship

import (
	cerr "github.com/saeidalz13/nautica/internal/error"
)

// RandomSource is what ship placement draws from. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Grid is a square matrix of cells indexed as cells[y][x].
type Grid struct {
	size           int
	cells          [][]Cell
	rand           RandomSource
	shipCount      int
	successfulHits int
	bombsDropped   int
}

// Creates a new all-water grid
func NewGrid(size int, src RandomSource) (*Grid, error) {
	if size < 1 {
		return nil, cerr.ErrInvalidBoardSize(size)
	}
	if src == nil {
		return nil, cerr.ErrNilRandomSource()
	}

	cells := make([][]Cell, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]Cell, size)
	}

	return &Grid{
		size:  size,
		cells: cells,
		rand:  src,
	}, nil
}

func (g *Grid) Size() int           { return g.size }
func (g *Grid) ShipCount() int      { return g.shipCount }
func (g *Grid) SuccessfulHits() int { return g.successfulHits }
func (g *Grid) BombsDropped() int   { return g.bombsDropped }

// Randomize clears the grid and places ships cell by cell with the given
// probability. Whole-grid trials are repeated until the ship density is at
// least shipProbability.
func (g *Grid) Randomize(shipProbability float64) {
	if shipProbability > 1 {
		shipProbability = 1
	}

	g.successfulHits = 0
	g.shipCount = 0

	if shipProbability <= 0 {
		g.fill(CellWater)
		return
	}

	target := float64(g.size*g.size) * shipProbability
	for float64(g.shipCount) < target {
		g.shipCount = 0
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				g.cells[y][x] = CellWater
				if g.rand.Float64() <= shipProbability {
					g.cells[y][x] = CellShip
					g.shipCount++
				}
			}
		}
	}
}

func (g *Grid) fill(code Cell) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = code
		}
	}
}

func (g *Grid) IsValidCoordinate(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Cell returns the stored code at (x, y). ok is false when the
// coordinates fall outside the grid.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.IsValidCoordinate(x, y) {
		return CellWater, false
	}
	return g.cells[y][x], true
}

// Rows returns a copy of the matrix, indexed [y][x].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.size)
	for y := range g.cells {
		rows[y] = make([]Cell, g.size)
		copy(rows[y], g.cells[y])
	}
	return rows
}

func (g *Grid) CellEquals(x, y int, code Cell) bool {
	if !g.IsValidCoordinate(x, y) {
		return false
	}
	return g.cells[y][x] == code
}

// TrySetCell overwrites a cell. Out of range coordinates are ignored.
// Counters are left untouched.
func (g *Grid) TrySetCell(x, y int, code Cell) {
	if !g.IsValidCoordinate(x, y) {
		return
	}
	g.cells[y][x] = code
}

// TryDropBomb turns a ship into a hit or water into a miss.
// Returns false if the coordinates are invalid or the cell was already bombed.
func (g *Grid) TryDropBomb(x, y int) bool {
	if !g.IsValidCoordinate(x, y) {
		return false
	}

	switch g.cells[y][x] {
	case CellShip:
		g.cells[y][x] = CellHit
		g.successfulHits++
	case CellWater:
		g.cells[y][x] = CellMiss
	default:
		return false
	}

	g.bombsDropped++
	return true
}

// HasShipsRemaining reports whether any ship cell is still standing.
// A grid that was seeded without ships has nothing left to destroy.
func (g *Grid) HasShipsRemaining() bool {
	if g.shipCount <= 0 {
		return false
	}
	return g.successfulHits < g.shipCount
}

