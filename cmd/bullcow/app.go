package main

import (
	"github.com/charmbracelet/log"
	"github.com/germanamz/bullcow/pkg/bullcow"
	"github.com/germanamz/bullcow/pkg/config"
	"github.com/germanamz/bullcow/pkg/console"
	"github.com/germanamz/bullcow/pkg/wordlist"
)

var _ bullcow.Output = (*console.Console)(nil)

// session wires a console to an engine for one process.
type session struct {
	console *console.Console
	engine  *bullcow.Engine
	words   wordlist.List
}

// newSession loads the word list and connects a fresh console and engine.
// The main menu is printed before returning.
func newSession(cfg config.Config, wordListPath string, logger *log.Logger, opts ...bullcow.Option) (*session, error) {
	words, err := wordlist.Load(wordListPath)
	if err != nil {
		return nil, err
	}

	logger.Debug("word list loaded",
		"path", wordListPath,
		"accepted", words.Stats().Accepted,
		"rejected", words.Stats().Rejected,
	)

	con := console.New(
		console.WithMaxLines(cfg.MaxLines),
		console.WithMaxColumns(cfg.MaxColumns),
	)

	engineOpts := []bullcow.Option{
		bullcow.WithDebug(cfg.Debug),
		bullcow.WithLogger(logger),
	}
	if src := newSource(cfg.Seed); src != nil {
		engineOpts = append(engineOpts, bullcow.WithRand(src))
	}
	engineOpts = append(engineOpts, opts...)

	eng, err := bullcow.New(words, con, engineOpts...)
	if err != nil {
		return nil, err
	}

	con.SetInputHandler(eng)
	eng.Start()

	return &session{console: con, engine: eng, words: words}, nil
}
