package battleship

import (
	"math/rand"
	"strings"

	cerr "github.com/saeidalz13/nautica/internal/error"
)

type Difficulty uint8

const (
	GameDifficultyEasy Difficulty = iota
	GameDifficultyNormal
	GameDifficultyHard
)

// Higher probability means more ship cells on the board,
// so easy games are the densest ones.
const (
	ShipProbabilityEasy   float64 = 0.8
	ShipProbabilityNormal float64 = 0.5
	ShipProbabilityHard   float64 = 0.2
)

func (d Difficulty) String() string {
	switch d {
	case GameDifficultyEasy:
		return "easy"
	case GameDifficultyNormal:
		return "normal"
	case GameDifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

func (d Difficulty) IsValid() bool {
	return d == GameDifficultyEasy || d == GameDifficultyNormal || d == GameDifficultyHard
}

// ShipProbability is the per-cell chance of placing a ship.
func (d Difficulty) ShipProbability() float64 {
	switch d {
	case GameDifficultyNormal:
		return ShipProbabilityNormal
	case GameDifficultyHard:
		return ShipProbabilityHard
	default:
		return ShipProbabilityEasy
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return GameDifficultyEasy, nil
	case "normal", "":
		return GameDifficultyNormal, nil
	case "hard":
		return GameDifficultyHard, nil
	}
	return 0, cerr.ErrUnknownDifficulty(s)
}

type GameState uint8

const (
	GameStateNotStarted GameState = iota
	GameStatePlaying
	GameStateWon
	GameStateLost
)

func (s GameState) String() string {
	switch s {
	case GameStateNotStarted:
		return "not started"
	case GameStatePlaying:
		return "playing"
	case GameStateWon:
		return "won"
	case GameStateLost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s GameState) IsTerminal() bool {
	return s == GameStateWon || s == GameStateLost
}

type Game struct {
	grid              *Grid
	difficulty        Difficulty
	maxAttempts       int
	attemptsRemaining int
	state             GameState
}

type Option func(*gameOptions) error

type gameOptions struct {
	difficulty Difficulty
	src        RandomSource
}

func WithDifficulty(difficulty Difficulty) Option {
	return func(o *gameOptions) error {
		if !difficulty.IsValid() {
			return cerr.ErrInvalidGameDifficulty(uint8(difficulty))
		}
		o.difficulty = difficulty
		return nil
	}
}

func WithRandomSource(src RandomSource) Option {
	return func(o *gameOptions) error {
		if src == nil {
			return cerr.ErrNilRandomSource()
		}
		o.src = src
		return nil
	}
}

// NewGame creates a game over a gridSize x gridSize board. Difficulty
// defaults to normal. Without WithRandomSource the grid draws from an
// unseeded math/rand source.
func NewGame(gridSize int, optFuncs ...Option) (*Game, error) {
	opts := gameOptions{difficulty: GameDifficultyNormal}
	for _, opt := range optFuncs {
		if err := opt(&opts); err != nil {
			return nil, err
		}
	}
	if opts.src == nil {
		opts.src = rand.New(rand.NewSource(rand.Int63()))
	}

	grid, err := NewGrid(gridSize, opts.src)
	if err != nil {
		return nil, err
	}

	return &Game{
		grid:       grid,
		difficulty: opts.difficulty,
		state:      GameStateNotStarted,
	}, nil
}

func (g *Game) Grid() *Grid            { return g.grid }
func (g *Game) Difficulty() Difficulty { return g.difficulty }
func (g *Game) State() GameState       { return g.state }
func (g *Game) MaxAttempts() int       { return g.maxAttempts }
func (g *Game) AttemptsRemaining() int { return g.attemptsRemaining }
func (g *Game) AttemptsUsed() int      { return g.maxAttempts - g.attemptsRemaining }

// Hidden reports whether water and ships must be concealed from the player.
func (g *Game) Hidden() bool { return g.state == GameStatePlaying }

// StartNewGame resets the attempts and reseeds the grid. It can be called
// from any state. maxAttempts <= 0 falls back to the grid size.
func (g *Game) StartNewGame(maxAttempts int) {
	if maxAttempts <= 0 {
		maxAttempts = g.grid.Size()
	}

	g.maxAttempts = maxAttempts
	g.attemptsRemaining = maxAttempts
	g.state = GameStatePlaying

	g.grid.Randomize(g.difficulty.ShipProbability())
}

// DropBomb returns whether a bomb landed on (x, y). Only misses cost an
// attempt. The state may become terminal in the same call that reports
// success.
func (g *Game) DropBomb(x, y int) bool {
	if g.state != GameStatePlaying {
		return false
	}

	// round already over but the caller has not noticed yet
	if !g.grid.HasShipsRemaining() {
		g.state = GameStateWon
		return false
	} else if g.attemptsRemaining <= 0 {
		g.state = GameStateLost
		return false
	}

	dropped := g.grid.TryDropBomb(x, y)
	if dropped && g.grid.CellEquals(x, y, CellMiss) {
		g.attemptsRemaining--
	}

	if !g.grid.HasShipsRemaining() {
		g.state = GameStateWon
	} else if g.attemptsRemaining <= 0 {
		g.state = GameStateLost
	}

	return dropped
}
