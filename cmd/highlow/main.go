package main

import (
	"flag"
	"fmt"
	"highlow/internal/config"
	"highlow/internal/rng"
	"highlow/pkg/deck"
	"highlow/pkg/playable"
	"highlow/pkg/playable/highlow"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the build version
var Version = "v0.0.0-dev"

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:], config.Instance())
	if err != nil {
		logrus.WithError(err).Fatal("could not parse flags")
	}

	setupLogger(cfg)
	logrus.WithField("version", Version).Debug("starting")

	if _, err := run(os.Stdout, logrus.StandardLogger(), cfg); err != nil {
		logrus.WithError(err).Fatal("could not play")
	}
}

// parseFlags applies the command-line flags on top of cfg
// Only flags that were explicitly set override the config, so -seed 0 forces the crypto source.
func parseFlags(fs *flag.FlagSet, args []string, cfg config.Config) (config.Config, error) {
	rounds := fs.Int("rounds", cfg.Rounds, "the number of rounds to play (overrides the config)")
	seed := fs.Int64("seed", cfg.Seed, "seed for the deck's random source, 0 uses crypto/rand (overrides the config)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = *rounds
		case "seed":
			cfg.Seed = *seed
		}
	})

	return cfg, nil
}

// run plays a full game and writes the results to out
func run(out io.Writer, logger logrus.FieldLogger, cfg config.Config) (highlow.Tally, error) {
	if err := cfg.Validate(); err != nil {
		return highlow.Tally{}, err
	}

	tracker := playable.NewTracker(out, logger)

	opts := highlow.DefaultOptions()
	opts.Rounds = cfg.Rounds
	opts.Observer = tracker
	if cfg.Seed > 0 {
		opts.Generator = rng.NewSeeded(cfg.Seed)
		logger.WithField("seed", cfg.Seed).Debug("using seeded random source")
	}

	game, err := highlow.NewGame(logger, opts)
	if err != nil {
		return highlow.Tally{}, err
	}

	for !game.IsGameOver() {
		r, err := game.Play()
		if err != nil {
			return highlow.Tally{}, err
		}

		drainLogMessages(logger, tracker.LogChan())
		_, _ = fmt.Fprintln(out, r.Description())
	}

	tally := game.Tally()
	_, _ = fmt.Fprintf(out, "Player 1 won %d, player 2 won %d, %d tied\n", tally.Player1, tally.Player2, tally.Ties)

	logger.WithField("distinctCards", game.Drawn().Distinct()).Debug("game over")
	return tally, nil
}

// drainLogMessages logs every pending message at debug level without blocking
func drainLogMessages(logger logrus.FieldLogger, logChan <-chan []*playable.LogMessage) {
	for {
		select {
		case messages := <-logChan:
			for _, msg := range messages {
				logger.WithFields(logrus.Fields{
					"uuid":      msg.UUID,
					"playerIds": msg.PlayerIDs,
					"cards":     deck.CardsToString(msg.Cards),
				}).Debug(msg.Message)
			}
		default:
			return
		}
	}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isTerminal,
		FullTimestamp: !isTerminal,
	})
}
