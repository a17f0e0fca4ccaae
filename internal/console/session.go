// Package console runs Nautica rounds against a line-oriented terminal:
// it prompts for coordinates, feeds them to the game and redraws the board.
package console

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/saeidalz13/nautica/internal/config"
	cerr "github.com/saeidalz13/nautica/internal/error"
	"github.com/saeidalz13/nautica/internal/render"
	mb "github.com/saeidalz13/nautica/models/battleship"
	"github.com/sirupsen/logrus"
)

const (
	promptBoardSize  = "\nEnter board size: (3 is the best)\n_ "
	promptHorizontal = "\n\nEnter the Horizontal coordinate:\n_ "
	promptVertical   = "\nEnter the Vertical coordinate:\n_ "
	promptReplay     = "\nPlay again? (y/n)\n_ "
)

type Session struct {
	lines  <-chan string
	done   chan struct{}
	out    io.Writer
	render *render.Renderer
	log    *logrus.Logger
	rounds mb.RoundTracker

	boardSize   int
	difficulty  mb.Difficulty
	maxAttempts int
	src         mb.RandomSource
}

type Option func(*Session)

func WithLogger(log *logrus.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

func WithRenderer(r *render.Renderer) Option {
	return func(s *Session) {
		s.render = r
	}
}

func WithRoundTracker(rt mb.RoundTracker) Option {
	return func(s *Session) {
		s.rounds = rt
	}
}

// WithBoardSize skips the board size prompt. Zero keeps the prompt.
func WithBoardSize(size int) Option {
	return func(s *Session) {
		s.boardSize = size
	}
}

func WithDifficulty(d mb.Difficulty) Option {
	return func(s *Session) {
		s.difficulty = d
	}
}

func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

func WithRandomSource(src mb.RandomSource) Option {
	return func(s *Session) {
		s.src = src
	}
}

func NewSession(in io.Reader, out io.Writer, optFuncs ...Option) *Session {
	s := &Session{
		done:       make(chan struct{}),
		out:        out,
		difficulty: mb.GameDifficultyNormal,
	}
	for _, opt := range optFuncs {
		opt(s)
	}

	if s.render == nil {
		s.render = render.New(out)
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}
	if s.rounds == nil {
		s.rounds = mb.NewNauticaRoundTracker()
	}

	s.lines = readLines(in, s.done)
	return s
}

// Close stops the input reader.
func (s *Session) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Scanning happens on its own goroutine so a pending read never blocks
// context cancellation.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

func (s *Session) prompt(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, _ = io.WriteString(s.out, msg)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", cerr.ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// AskBoardSize prompts until the player enters a usable board size.
func (s *Session) AskBoardSize(ctx context.Context) (int, error) {
	for {
		in, err := s.prompt(ctx, promptBoardSize)
		if err != nil {
			return 0, err
		}
		size, err := strconv.Atoi(in)
		if err != nil || size < config.MinBoardSize {
			s.log.WithFields(logrus.Fields{"input": in}).Debug("rejected board size")
			continue
		}
		return size, nil
	}
}

// AskReplay asks whether another round should be played.
func (s *Session) AskReplay(ctx context.Context) (bool, error) {
	for {
		in, err := s.prompt(ctx, promptReplay)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(in) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// PlayRound starts a new round on game and reads coordinates until the
// round is won or lost.
func (s *Session) PlayRound(ctx context.Context, game *mb.Game) (mb.RoundSummary, error) {
	game.StartNewGame(s.maxAttempts)

	roundID, err := s.rounds.StartRound(game)
	if err != nil {
		return mb.RoundSummary{}, err
	}
	log := s.log.WithFields(logrus.Fields{"round": roundID})
	log.WithFields(logrus.Fields{
		"size":        game.Grid().Size(),
		"difficulty":  game.Difficulty().String(),
		"ships":       game.Grid().ShipCount(),
		"maxAttempts": game.MaxAttempts(),
	}).Info("round started")

	s.render.Clear()
	s.render.Board(game)

	for game.State() == mb.GameStatePlaying {
		xIn, err := s.prompt(ctx, promptHorizontal)
		if err != nil {
			return mb.RoundSummary{}, err
		}
		yIn, err := s.prompt(ctx, promptVertical)
		if err != nil {
			return mb.RoundSummary{}, err
		}

		x, errX := strconv.Atoi(xIn)
		y, errY := strconv.Atoi(yIn)
		if errX != nil || errY != nil {
			log.WithFields(logrus.Fields{"x": xIn, "y": yIn}).Debug("unparsable coordinates")
			continue
		}

		if !game.DropBomb(x, y) {
			log.WithFields(logrus.Fields{"x": x, "y": y, "state": game.State().String()}).Debug("bomb rejected")
			continue
		}

		code, _ := game.Grid().Cell(x, y)
		log.WithFields(logrus.Fields{
			"x":         x,
			"y":         y,
			"result":    code.String(),
			"remaining": game.AttemptsRemaining(),
		}).Debug("bomb dropped")

		if game.State() == mb.GameStatePlaying {
			s.render.Clear()
			s.render.Board(game)
			s.render.Status(game)
		}
	}

	summary, err := s.rounds.FinishRound(roundID, game)
	if err != nil {
		return mb.RoundSummary{}, err
	}
	log.WithFields(logrus.Fields{
		"state":        summary.State.String(),
		"hits":         summary.SuccessfulHits,
		"bombs":        summary.BombsDropped,
		"attemptsUsed": summary.MaxAttempts - summary.AttemptsRemaining,
	}).Info("round finished")

	s.render.Clear()
	s.render.Legend()
	s.render.Board(game)
	s.render.Outcome(game)

	return summary, nil
}

// Run plays rounds on a single game until the player stops.
func (s *Session) Run(ctx context.Context) error {
	defer s.Close()

	size := s.boardSize
	if size == 0 {
		var err error
		if size, err = s.AskBoardSize(ctx); err != nil {
			return err
		}
	}

	opts := []mb.Option{mb.WithDifficulty(s.difficulty)}
	if s.src != nil {
		opts = append(opts, mb.WithRandomSource(s.src))
	}
	game, err := mb.NewGame(size, opts...)
	if err != nil {
		return err
	}

	for {
		if _, err := s.PlayRound(ctx, game); err != nil {
			return err
		}
		again, err := s.AskReplay(ctx)
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	tally := s.rounds.Tally()
	s.log.WithFields(logrus.Fields{"played": tally.Played, "won": tally.Won, "lost": tally.Lost}).Info("session finished")
	s.render.Tally(tally)
	return nil
}
