package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/nautica/internal/error"
	"github.com/saeidalz13/nautica/internal/render"
	mb "github.com/saeidalz13/nautica/models/battleship"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type sequenceSource struct {
	values []float64
	calls  int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

// diagonal places ships on (0,0) and (1,1) of a 2x2 normal board, every round.
func diagonal() *sequenceSource {
	return &sequenceSource{values: []float64{0.1, 0.9, 0.9, 0.1}}
}

func newTestSession(input string, opts ...Option) (*Session, *bytes.Buffer, *test.Hook) {
	var out bytes.Buffer
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	base := []Option{
		WithLogger(log),
		WithRenderer(render.New(&out, render.WithoutColor())),
		WithRandomSource(diagonal()),
	}
	s := NewSession(strings.NewReader(input), &out, append(base, opts...)...)
	return s, &out, hook
}

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func TestRunWinningRound(t *testing.T) {
	s, out, _ := newTestSession(lines("0", "0", "1", "1", "n"), WithBoardSize(2))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "You have won! :)") {
		t.Fatalf("expected win message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), " 0 |X| |\n") || !strings.Contains(out.String(), " 1 | |X|\n") {
		t.Fatalf("expected the revealed board:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Rounds played: 1\tWon: 1\tLost: 0") {
		t.Fatalf("expected tally:\n%s", out.String())
	}
}

func TestRunLosingRound(t *testing.T) {
	s, out, _ := newTestSession(lines("1", "0", "0", "1", "n"), WithBoardSize(2))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "You have lost :(") {
		t.Fatalf("expected lose message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Attempts remaining: 1") {
		t.Fatalf("expected status after the first miss:\n%s", out.String())
	}
}

func TestPlayRoundSkipsBadInput(t *testing.T) {
	input := lines(
		"a", "0", // not a number
		"5", "5", // off the board
		"0", "0", // hit
		"0", "0", // already hit
		"1", "1", // hit
	)
	s, _, hook := newTestSession(input)
	g, err := mb.NewGame(2, mb.WithRandomSource(diagonal()))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	summary, err := s.PlayRound(context.Background(), g)
	if err != nil {
		t.Fatalf("play round: %v", err)
	}
	if summary.State != mb.GameStateWon {
		t.Fatalf("expected won, got %v", summary.State)
	}
	if summary.BombsDropped != 2 || summary.AttemptsRemaining != 2 {
		t.Fatalf("bombs=%d remaining=%d, want 2 and 2", summary.BombsDropped, summary.AttemptsRemaining)
	}

	rejected := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "bomb rejected" || e.Message == "unparsable coordinates" {
			rejected++
		}
	}
	if rejected != 3 {
		t.Fatalf("expected 3 rejected inputs logged, got %d", rejected)
	}
}

func TestRunAsksBoardSize(t *testing.T) {
	s, out, _ := newTestSession(lines("1", "abc", "2", "0", "0", "1", "1", "n"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out.String(), "Enter board size"); n != 3 {
		t.Fatalf("expected 3 board size prompts, got %d", n)
	}
	if !strings.Contains(out.String(), "You have won! :)") {
		t.Fatalf("expected win message:\n%s", out.String())
	}
}

func TestRunReplay(t *testing.T) {
	input := lines(
		"0", "0", "1", "1", // win
		"maybe", "y",
		"1", "0", "0", "1", // lose
		"no",
	)
	rt := mb.NewNauticaRoundTracker()
	s, out, hook := newTestSession(input, WithBoardSize(2), WithRoundTracker(rt))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if rt.Tally() != (mb.Tally{Played: 2, Won: 1, Lost: 1}) {
		t.Fatalf("unexpected tally %+v", rt.Tally())
	}
	if n := strings.Count(out.String(), "Play again?"); n != 3 {
		t.Fatalf("expected 3 replay prompts, got %d", n)
	}

	started, finished := 0, 0
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "round started":
			started++
		case "round finished":
			finished++
		}
	}
	if started != 2 || finished != 2 {
		t.Fatalf("started=%d finished=%d, want 2 and 2", started, finished)
	}
	if last := hook.LastEntry(); last == nil || last.Message != "session finished" {
		t.Fatalf("expected session finished last, got %+v", last)
	}
}

func TestRunWithMaxAttempts(t *testing.T) {
	s, out, _ := newTestSession(lines("1", "0", "n"), WithBoardSize(2), WithMaxAttempts(1))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "You have lost :(") {
		t.Fatalf("one miss should lose:\n%s", out.String())
	}
}

func TestRunInputClosed(t *testing.T) {
	s, _, _ := newTestSession(lines("0", "0"), WithBoardSize(2))

	err := s.Run(context.Background())
	if !errors.Is(err, cerr.ErrInputClosed) {
		t.Fatalf("expected input closed, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	s, out, _ := newTestSession(lines("3"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written after cancel, got %q", out.String())
	}
}

func TestRunRejectsUnusableBoard(t *testing.T) {
	s, _, _ := newTestSession("", WithBoardSize(-1))
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error for negative board size")
	}
}
