package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrInputClosed = "input closed"
)

// ErrInputClosed is returned once the player's input stream is exhausted.
var ErrInputClosed = errors.New(ConstErrInputClosed)

func ErrInvalidBoardSize(size int) error {
	return fmt.Errorf("board size must be a positive integer, got: %d", size)
}

func ErrBoardSizeTooSmall(size, min int) error {
	return fmt.Errorf("board size must be at least %d, got: %d", min, size)
}

func ErrInvalidGameDifficulty(difficulty uint8) error {
	return fmt.Errorf("invalid game difficulty:\t%d", difficulty)
}

func ErrUnknownDifficulty(name string) error {
	return fmt.Errorf("unknown difficulty %q, must be one of easy, normal, hard", name)
}

func ErrNilRandomSource() error {
	return fmt.Errorf("random source is nil")
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrInvalidLogLevel(level string, cause error) error {
	return fmt.Errorf("invalid log level %q: %w", level, cause)
}

func ErrRoundNotExists(roundID string) error {
	return fmt.Errorf("round with this id does not exist, id: %s", roundID)
}

func ErrRoundAlreadyFinished(roundID string) error {
	return fmt.Errorf("round is already finished, id: %s", roundID)
}

func ErrRoundNotFinished(roundID, state string) error {
	return fmt.Errorf("round is not finished yet, id: %s\tstate: %s", roundID, state)
}

func ErrGameNotStarted() error {
	return fmt.Errorf("game must be started before a round can be tracked")
}
