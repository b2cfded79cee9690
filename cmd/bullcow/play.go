package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/bullcow/pkg/bullcowdir"
	"github.com/germanamz/bullcow/pkg/logging"
	"github.com/spf13/cobra"
)

func runPlay(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	d := bullcowdir.New(opts.dir)

	// The terminal belongs to the game, so logs go to a file.
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = d.LogPath()
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  opts.logLevel,
		Config: cfg.LogLevel,
		File:   logFile,
		Prefix: "bullcow",
	})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	s, err := newSession(cfg, resolveWordList(cfg, d), logger)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	logger.Info("game started", "words", s.words.Len(), "debug", cfg.Debug)

	p := tea.NewProgram(newGameModel(s), tea.WithAltScreen())
	_, err = p.Run()

	logger.Info("game finished", "exit_requested", s.engine.Exited())

	return err
}
