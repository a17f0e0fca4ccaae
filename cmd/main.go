package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/nautica/internal/config"
	"github.com/saeidalz13/nautica/internal/console"
	cerr "github.com/saeidalz13/nautica/internal/error"
	"github.com/saeidalz13/nautica/internal/random"
	"github.com/saeidalz13/nautica/internal/render"
	mb "github.com/saeidalz13/nautica/models/battleship"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("%v", err)
	}
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	log, closer, err := cfg.NewLogger()
	if err != nil {
		config.Exitf("logger: %v", err)
	}
	defer closer.Close()

	src, seed, err := random.NewSource(cfg.Seed)
	if err != nil {
		config.Exitf("seed: %v", err)
	}
	// config has already been validated
	difficulty, _ := cfg.GameDifficulty()

	log.WithFields(logrus.Fields{
		"stage":      cfg.Stage,
		"seed":       seed,
		"difficulty": difficulty.String(),
		"boardSize":  cfg.BoardSize,
	}).Info("starting nautica")

	renderOpts := []render.Option{render.WithClearScreen(cfg.ClearScreen)}
	if cfg.NoColor {
		renderOpts = append(renderOpts, render.WithoutColor())
	}

	session := console.NewSession(os.Stdin, os.Stdout,
		console.WithLogger(log),
		console.WithRenderer(render.New(os.Stdout, renderOpts...)),
		console.WithRoundTracker(mb.NewNauticaRoundTracker()),
		console.WithBoardSize(cfg.BoardSize),
		console.WithDifficulty(difficulty),
		console.WithMaxAttempts(cfg.MaxAttempts),
		console.WithRandomSource(src),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, cerr.ErrInputClosed) || errors.Is(err, context.Canceled) {
			log.WithError(err).Info("session ended")
			return
		}
		_ = closer.Close()
		config.Exitf("nautica: %v", err)
	}
}
