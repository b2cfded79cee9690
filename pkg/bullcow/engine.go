// Package bullcow implements the Bulls & Cows game flow as a state machine.
// The Engine consumes committed input lines and writes its output through an
// Output (normally a *console.Console). It does no I/O of its own and is
// driven by a single event loop; it is not safe for concurrent use.
package bullcow

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/germanamz/bullcow/pkg/wordlist"
	"github.com/google/uuid"
)

// Output is where the engine writes. It matches the console's methods.
type Output interface {
	Print(text string)
	Clear()
	ShowMenu(options []string, defaultIndex int)
}

// Source picks hidden words. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // game randomness

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the source used to choose hidden words.
func WithRand(src Source) Option {
	return func(e *Engine) { e.rng = src }
}

// WithDebug prints the word count at start and the hidden word at the start
// of every round.
func WithDebug(debug bool) Option {
	return func(e *Engine) { e.debug = debug }
}

// WithLogger sets the logger for round and guess events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithExitFunc registers fn to run once when the player chooses Exit.
func WithExitFunc(fn func()) Option {
	return func(e *Engine) { e.onExit = fn }
}

// Engine drives the game.
type Engine struct {
	out    Output
	words  wordlist.List
	rng    Source
	debug  bool
	log    *log.Logger
	onExit func()

	state      State
	difficulty Difficulty
	round      *Round
	exited     bool
}

// New creates an engine in the menu state. It fails with wordlist.ErrEmpty
// when words holds no candidates, since no round could start.
func New(words wordlist.List, out Output, opts ...Option) (*Engine, error) {
	if words.Len() == 0 {
		return nil, fmt.Errorf("bullcow: %w", wordlist.ErrEmpty)
	}

	e := &Engine{
		out:        out,
		words:      words,
		rng:        globalSource{},
		log:        log.New(io.Discard),
		state:      StateMenu,
		difficulty: Hard,
	}
	for _, o := range opts {
		o(e)
	}

	return e, nil
}

// Start prints the main menu.
func (e *Engine) Start() {
	if e.debug {
		e.printf(msgDebugLoaded, e.words.Len())
	}
	e.mainMenu()
}

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Exited reports whether the player chose Exit.
func (e *Engine) Exited() bool { return e.exited }

// Round returns a copy of the active round, if any.
func (e *Engine) Round() (Round, bool) {
	if e.round == nil {
		return Round{}, false
	}
	return e.round.snapshot(), true
}

// OnInput handles one committed line.
func (e *Engine) OnInput(line string) {
	if e.exited {
		return
	}

	prev := e.state

	switch e.state {
	case StateMenu:
		e.handleMenu(line)
	case StateInstructions:
		e.out.Clear()
		e.mainMenu()
	case StateDifficulty:
		e.out.Clear()
		e.difficulty = ParseDifficulty(line)
		e.startRound()
	case StatePlaying:
		e.guess(normalizeGuess(line))
	case StateEndRound:
		e.out.Clear()
		if line == OptYes {
			e.startRound()
		} else {
			e.round = nil
			e.mainMenu()
		}
	}

	if prev != e.state {
		e.log.Debug("state changed", "from", prev, "to", e.state)
	}
}

func (e *Engine) handleMenu(line string) {
	e.out.Clear()

	switch line {
	case OptPlay:
		e.state = StateDifficulty
		e.out.Print(msgSelectDifficulty)
		e.out.ShowMenu(difficultyOptions, 1)
	case OptInstructions:
		e.state = StateInstructions
		e.out.Print(msgInstructions)
		e.out.Print(msgContinue)
	case OptExit:
		e.exited = true
		e.log.Info("exit requested")
		if e.onExit != nil {
			e.onExit()
		}
	default:
		e.mainMenu()
	}
}

func (e *Engine) mainMenu() {
	e.state = StateMenu
	e.out.Print(msgLogo)
	e.out.ShowMenu(mainMenuOptions, 0)
}

func (e *Engine) startRound() {
	word := e.words.At(e.rng.IntN(e.words.Len()))
	e.round = newRound(uuid.NewString(), word, e.difficulty)
	e.state = StatePlaying

	e.log.Info("round started",
		"round", e.round.ID,
		"length", len([]rune(word)),
		"lives", e.round.Lives,
		"difficulty", e.difficulty,
	)

	e.printf(msgWordLength, len([]rune(word)))
	e.printf(msgLives, e.round.Lives)
	if e.debug {
		e.printf(msgDebugRevealed, word)
	}
	e.out.Print(msgGuessHint)
}

// guess evaluates a normalized guess against the active round.
func (e *Engine) guess(g string) {
	r := e.round
	n := len([]rune(r.HiddenWord))

	if len([]rune(g)) != n {
		e.printf(msgWrongLength, n)
		return
	}

	if !wordlist.IsIsogram(g) {
		e.out.Print(msgNotIsogram)
		e.out.Print(msgIsogramHelp)
		return
	}

	if g == r.HiddenWord {
		r.Won = true
		e.log.Info("round won", "round", r.ID, "lives", r.Lives, "guesses", len(r.tried)+1)
		e.out.Clear()
		e.endRound(msgWin)
		return
	}

	bulls, cows := Score(r.HiddenWord, g)

	if _, seen := r.tried[g]; seen {
		e.printf(msgAlreadyTried, g, bulls, cows)
		return
	}

	r.tried[g] = struct{}{}
	r.Lives--
	e.log.Debug("guess", "round", r.ID, "guess", g, "bulls", bulls, "cows", cows, "lives", r.Lives)

	if r.Lives <= 0 {
		r.Lives = 0
		e.log.Info("round lost", "round", r.ID, "guesses", len(r.tried))
		e.out.Clear()
		e.printf(msgRevealAnswer, r.HiddenWord)
		e.endRound(msgGameOver)
		return
	}

	e.printf(msgIncorrect, bulls, cows)
	e.printf(msgLives, r.Lives)
}

func (e *Engine) endRound(msg string) {
	e.state = StateEndRound
	e.out.Print(msg)
	e.out.Print(msgPlayAgain)
	e.out.ShowMenu(playAgainOptions, 0)
}

func (e *Engine) printf(format string, args ...any) {
	e.out.Print(fmt.Sprintf(format, args...))
}
