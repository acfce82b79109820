package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/logger"
	"snake-arcade/ui"
	"snake-arcade/ui/terminal"
	"snake-arcade/ui/window"

	"golang.org/x/exp/rand"
)

type config struct {
	frontend string
	fps      int
	seed     uint64
	logLevel string
	logFile  string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.StringVar(&cfg.frontend, "frontend", "window", "Front end: window or terminal")
	fs.IntVar(&cfg.fps, "fps", 60, "Target frame rate")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Food placement seed (0 = time-based)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFile, "log-file", "", "Append logs to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.frontend != "window" && cfg.frontend != "terminal" {
		return cfg, fmt.Errorf("unknown front end %q", cfg.frontend)
	}
	if cfg.fps <= 0 {
		return cfg, fmt.Errorf("invalid frame rate %d", cfg.fps)
	}
	return cfg, nil
}

// logOutput picks the log destination. The terminal front end draws on the
// tty, so it only logs when a file is given.
func logOutput(cfg config) (io.Writer, func() error, error) {
	if cfg.logFile != "" {
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, f.Close, nil
	}
	if cfg.frontend == "terminal" {
		return io.Discard, func() error { return nil }, nil
	}
	return os.Stderr, func() error { return nil }, nil
}

func openFrontend(cfg config) (ui.Frontend, error) {
	switch cfg.frontend {
	case "terminal":
		t, err := terminal.Open(cfg.fps)
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		return t, nil
	default:
		w, err := window.Open("Snake", cfg.fps)
		if err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}
		return w, nil
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		code := flagExitCode(err)
		if code != 0 {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}

	out, closeLog, err := logOutput(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := logger.Init(cfg.logLevel, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Get()

	if err := play(cfg, log); err != nil {
		log.Error("snake exited", "err", err)
		closeLog()
		os.Exit(1)
	}
}

func play(cfg config, log *slog.Logger) error {
	seed := cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting", "frontend", cfg.frontend, "fps", cfg.fps, "seed", seed)

	fe, err := openFrontend(cfg)
	if err != nil {
		return err
	}
	defer fe.Close()

	g := game.NewGame(types.DefaultGrid(), rand.New(rand.NewSource(seed)), log)
	steps := run(fe, g, ui.NewRenderer())

	log.Info("quit", append(sessionSummary(g.Stats()), "steps", steps)...)
	return nil
}

// flagExitCode is the exit status for a flag parsing error. Asking for help
// is not a failure.
func flagExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// sessionSummary flattens the session record into log attributes.
func sessionSummary(stats *manager.ScoreManager) []any {
	attrs := []any{
		"games", stats.GetGamesPlayed(),
		"best", stats.GetHighScore(),
		"average", stats.GetAverageScore(),
		"median", stats.GetMedianScore(),
	}
	history := stats.GetScoreHistory()
	if len(history) == 0 {
		return attrs
	}
	recent := make([]int, len(history))
	for i, rec := range history {
		recent[i] = rec.Score
	}
	last := history[len(history)-1]
	return append(attrs,
		"recent", recent,
		"last_round", last.ID,
		"last_length", last.Length,
		"last_duration", last.Duration)
}
