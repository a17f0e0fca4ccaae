package battleship

import (
	"math/rand"
	"testing"
)

// sequenceSource replays a fixed list of values, wrapping around.
type sequenceSource struct {
	values []float64
	calls  int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// setShips lays out a known board and resets every counter.
func (g *Grid) setShips(coords ...Coordinates) {
	g.fill(CellWater)
	g.shipCount = 0
	g.successfulHits = 0
	g.bombsDropped = 0
	for _, c := range coords {
		if g.CellEquals(c.X, c.Y, CellWater) {
			g.cells[c.Y][c.X] = CellShip
			g.shipCount++
		}
	}
}

func mustGrid(t *testing.T, size int) *Grid {
	t.Helper()
	g, err := NewGrid(size, seeded(1))
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

// mustStartedGame returns a game in the playing state with ships at coords.
func mustStartedGame(t *testing.T, size, maxAttempts int, coords ...Coordinates) *Game {
	t.Helper()
	g, err := NewGame(size, WithRandomSource(seeded(1)))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.StartNewGame(maxAttempts)
	g.grid.setShips(coords...)
	return g
}

func countCells(g *Grid, code Cell) int {
	n := 0
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.CellEquals(x, y, code) {
				n++
			}
		}
	}
	return n
}
