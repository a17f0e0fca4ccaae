package battleship

import (
	cerr "github.com/saeidalz13/nautica/internal/error"

	"github.com/google/uuid"
)

type RoundSummary struct {
	ID                string     `json:"id"`
	GridSize          int        `json:"gridSize"`
	Difficulty        Difficulty `json:"difficulty"`
	State             GameState  `json:"state"`
	ShipCount         int        `json:"shipCount"`
	SuccessfulHits    int        `json:"successfulHits"`
	BombsDropped      int        `json:"bombsDropped"`
	MaxAttempts       int        `json:"maxAttempts"`
	AttemptsRemaining int        `json:"attemptsRemaining"`
	Finished          bool       `json:"finished"`

	// grid counters are cumulative across rounds of the same game
	bombsAtStart int
}

type Tally struct {
	Played int
	Won    int
	Lost   int
}

type RoundTracker interface {
	StartRound(game *Game) (string, error)
	FinishRound(roundID string, game *Game) (RoundSummary, error)
	GetRound(roundID string) (RoundSummary, error)
	Tally() Tally
}

// NauticaRoundTracker keeps the rounds of one console session.
// It is not safe for concurrent use.
type NauticaRoundTracker struct {
	rounds map[string]*RoundSummary
	order  []string
}

var _ RoundTracker = (*NauticaRoundTracker)(nil)

func NewNauticaRoundTracker() *NauticaRoundTracker {
	return &NauticaRoundTracker{
		rounds: make(map[string]*RoundSummary, 10),
	}
}

func (rt *NauticaRoundTracker) StartRound(game *Game) (string, error) {
	if game.State() == GameStateNotStarted {
		return "", cerr.ErrGameNotStarted()
	}

	roundID := uuid.NewString()[:6]
	for _, prs := rt.rounds[roundID]; prs; _, prs = rt.rounds[roundID] {
		roundID = uuid.NewString()[:6]
	}

	grid := game.Grid()
	rt.rounds[roundID] = &RoundSummary{
		ID:                roundID,
		GridSize:          grid.Size(),
		Difficulty:        game.Difficulty(),
		State:             game.State(),
		ShipCount:         grid.ShipCount(),
		MaxAttempts:       game.MaxAttempts(),
		AttemptsRemaining: game.AttemptsRemaining(),
		bombsAtStart:      grid.BombsDropped(),
	}
	rt.order = append(rt.order, roundID)

	return roundID, nil
}

func (rt *NauticaRoundTracker) FinishRound(roundID string, game *Game) (RoundSummary, error) {
	round, prs := rt.rounds[roundID]
	if !prs {
		return RoundSummary{}, cerr.ErrRoundNotExists(roundID)
	}
	if round.Finished {
		return RoundSummary{}, cerr.ErrRoundAlreadyFinished(roundID)
	}
	if !game.State().IsTerminal() {
		return RoundSummary{}, cerr.ErrRoundNotFinished(roundID, game.State().String())
	}

	grid := game.Grid()
	round.State = game.State()
	round.SuccessfulHits = grid.SuccessfulHits()
	round.BombsDropped = grid.BombsDropped() - round.bombsAtStart
	round.AttemptsRemaining = game.AttemptsRemaining()
	round.Finished = true

	return *round, nil
}

func (rt *NauticaRoundTracker) GetRound(roundID string) (RoundSummary, error) {
	round, prs := rt.rounds[roundID]
	if !prs {
		return RoundSummary{}, cerr.ErrRoundNotExists(roundID)
	}
	return *round, nil
}

// Rounds returns every round in the order they were started.
func (rt *NauticaRoundTracker) Rounds() []RoundSummary {
	rounds := make([]RoundSummary, 0, len(rt.order))
	for _, roundID := range rt.order {
		rounds = append(rounds, *rt.rounds[roundID])
	}
	return rounds
}

// Only finished rounds are counted.
func (rt *NauticaRoundTracker) Tally() Tally {
	var t Tally
	for _, round := range rt.rounds {
		if !round.Finished {
			continue
		}
		t.Played++
		switch round.State {
		case GameStateWon:
			t.Won++
		case GameStateLost:
			t.Lost++
		}
	}
	return t
}
