package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the session logger. Logs go to stderr unless a log file
// is configured, so they never land between board redraws on stdout.
// The returned closer must be called on shutdown.
func (c Config) NewLogger() (*logrus.Logger, io.Closer, error) {
	level, err := c.LogrusLevel()
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    c.NoColor,
		QuoteEmptyFields: true,
	})

	if c.LogFile == "" {
		log.SetOutput(os.Stderr)
		return log, nopCloser{}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
