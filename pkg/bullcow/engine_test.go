package bullcow

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/germanamz/bullcow/pkg/console"
	"github.com/germanamz/bullcow/pkg/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always picks index i (mod n).
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func newGame(t *testing.T, opts ...Option) (*Engine, *console.Console) {
	t.Helper()

	words, err := wordlist.New("lets", "tour")
	require.NoError(t, err)

	c := console.New(console.WithMaxLines(100))
	e, err := New(words, c, append([]Option{WithRand(fixedSource(0))}, opts...)...)
	require.NoError(t, err)

	c.SetInputHandler(e)
	e.Start()

	return e, c
}

// startRound plays from the main menu into a round at the given difficulty.
func startRound(t *testing.T, c *console.Console, e *Engine, difficulty string) {
	t.Helper()

	c.Submit(OptPlay)
	require.Equal(t, StateDifficulty, e.State())
	c.Submit(difficulty)
	require.Equal(t, StatePlaying, e.State())
}

func lives(t *testing.T, e *Engine) int {
	t.Helper()

	r, ok := e.Round()
	require.True(t, ok)
	return r.Lives
}

func TestNew_EmptyWordList(t *testing.T) {
	_, err := New(wordlist.List{}, console.New())
	assert.ErrorIs(t, err, wordlist.ErrEmpty)
}

func TestStart_ShowsMainMenu(t *testing.T) {
	e, c := newGame(t)

	assert.Equal(t, StateMenu, e.State())
	opts, sel, ok := c.Menu()
	require.True(t, ok)
	assert.Equal(t, []string{"Play", "Instructions", "Exit"}, opts)
	assert.Equal(t, 0, sel)
	assert.Contains(t, c.Lines(), "<RichText.Hidden><logo></>")
}

func TestMenu_PlayShowsDifficulty(t *testing.T) {
	e, c := newGame(t)
	c.Submit(OptPlay)

	assert.Equal(t, StateDifficulty, e.State())
	assert.Equal(t, []string{"Select difficulty:", ""}, c.Lines())

	opts, sel, ok := c.Menu()
	require.True(t, ok)
	assert.Equal(t, []string{"Easy", "Medium", "Hard"}, opts)
	assert.Equal(t, 1, sel)
}

func TestMenu_InstructionsThenBack(t *testing.T) {
	e, c := newGame(t)
	c.Submit(OptInstructions)

	assert.Equal(t, StateInstructions, e.State())
	assert.False(t, c.InMenu())
	lines := c.Lines()
	assert.Contains(t, lines, "Press enter to continue...")
	assert.Contains(t, lines, "<RichText.Small>An isogram is a word with no repeating letters.</>")

	c.Submit("")
	assert.Equal(t, StateMenu, e.State())
	assert.True(t, c.InMenu())
	assert.NotContains(t, c.Lines(), "Press enter to continue...")
}

func TestMenu_UnknownInputReprintsMenu(t *testing.T) {
	e, c := newGame(t)
	c.Submit("dance")

	assert.Equal(t, StateMenu, e.State())
	assert.True(t, c.InMenu())
	assert.False(t, e.Exited())
}

func TestMenu_Exit(t *testing.T) {
	calls := 0
	e, c := newGame(t, WithExitFunc(func() { calls++ }))

	c.Submit(OptExit)
	assert.True(t, e.Exited())
	assert.Equal(t, 1, calls)

	c.Submit(OptPlay)
	assert.Equal(t, StateMenu, e.State())
	assert.Equal(t, 1, calls)
}

func TestDifficulty_Lives(t *testing.T) {
	tests := []struct {
		label string
		want  Difficulty
		lives int
	}{
		{label: "Easy", want: Easy, lives: 12},
		{label: "Medium", want: Medium, lives: 8},
		{label: "Hard", want: Hard, lives: 4},
		{label: "whatever", want: Hard, lives: 4},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			e, c := newGame(t)
			startRound(t, c, e, tt.label)

			r, ok := e.Round()
			require.True(t, ok)
			assert.Equal(t, tt.want, r.Difficulty)
			assert.Equal(t, tt.lives, r.Lives)
			assert.Equal(t, "lets", r.HiddenWord)
			assert.NotEmpty(t, r.ID)
			assert.Empty(t, r.Tried())

			lines := c.Lines()
			assert.Contains(t, lines, "The hidden word is 4 letters long.")
			assert.Contains(t, lines, "Type in your guess and press enter to continue...")
		})
	}
}

func TestScenarioA_WrongGuessCostsOneLife(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Medium")
	require.Equal(t, 8, lives(t, e))

	c.Submit("last")

	assert.Equal(t, 7, lives(t, e))
	assert.Equal(t, StatePlaying, e.State())
	lines := c.Lines()
	assert.Contains(t, lines, "Incorrect, you have 1 bulls and 2 cows.")
	assert.Contains(t, lines, "You have 7 lives remaining.")
}

func TestScenarioB_LengthMismatch(t *testing.T) {
	for _, g := range []string{"let", "letsgo", ""} {
		t.Run(g, func(t *testing.T) {
			e, c := newGame(t)
			startRound(t, c, e, "Medium")

			c.Submit(g)

			assert.Equal(t, 8, lives(t, e))
			assert.Equal(t, StatePlaying, e.State())
			assert.Contains(t, c.Lines(), "The hidden word is 4 letters long, try again!")
		})
	}
}

func TestScenarioC_NotIsogram(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Medium")

	c.Submit("aabb")

	assert.Equal(t, 8, lives(t, e))
	lines := c.Lines()
	assert.Contains(t, lines, "The entered word is not an isogram.")
	assert.Contains(t, lines, "An isogram is a word that has no repeating letters.")
	assert.Contains(t, lines, "Try again!")
}

func TestScenarioD_LossRevealsWord(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Hard")
	require.Equal(t, 4, lives(t, e))

	for _, g := range []string{"tour", "word", "fish"} {
		c.Submit(g)
		require.Equal(t, StatePlaying, e.State())
	}
	c.Submit("bird")

	assert.Equal(t, StateEndRound, e.State())
	assert.Equal(t, 0, lives(t, e))

	lines := c.Lines()
	assert.Equal(t, `Incorrect, the correct answer was "lets".`, lines[0])
	assert.Contains(t, lines, "Game over!")
	assert.Contains(t, lines, "Would you like to play again?")

	opts, _, ok := c.Menu()
	require.True(t, ok)
	assert.Equal(t, []string{"Yes", "No"}, opts)
}

func TestScenarioE_WinCostsNothing(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Medium")

	c.Submit("  LETS ")

	assert.Equal(t, StateEndRound, e.State())
	r, ok := e.Round()
	require.True(t, ok)
	assert.True(t, r.Won)
	assert.True(t, r.Over())
	assert.Equal(t, 8, r.Lives)
	assert.Equal(t, "You win!", c.Lines()[0])
}

func TestRepeatedGuessIsFree(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Medium")

	c.Submit("last")
	c.Submit("last")
	c.Submit(" LAST")

	assert.Equal(t, 7, lives(t, e))
	r, _ := e.Round()
	assert.Equal(t, []string{"last"}, r.Tried())
	assert.Contains(t, c.Lines(), "You have already tried last. It resulted in 1 bulls and 2 cows.")
}

func TestLivesNeverIncreaseOrGoNegative(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Hard")

	guesses := []string{"tour", "aabb", "tour", "abc", "word", "word", "fish", "bird", "mild"}
	prev := lives(t, e)
	for _, g := range guesses {
		c.Submit(g)

		r, ok := e.Round()
		require.True(t, ok)
		assert.LessOrEqual(t, r.Lives, prev)
		assert.GreaterOrEqual(t, r.Lives, 0)
		prev = r.Lives

		if r.Lives == 0 {
			assert.Equal(t, StateEndRound, e.State())
			break
		}
		assert.Equal(t, StatePlaying, e.State())
	}
	assert.Equal(t, StateEndRound, e.State())
}

func TestEndRound_PlayAgainKeepsDifficulty(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Easy")
	c.Submit("tour")
	c.Submit("lets")
	require.Equal(t, StateEndRound, e.State())

	c.Submit(OptYes)

	assert.Equal(t, StatePlaying, e.State())
	r, ok := e.Round()
	require.True(t, ok)
	assert.Equal(t, Easy, r.Difficulty)
	assert.Equal(t, 12, r.Lives)
	assert.Empty(t, r.Tried())
	assert.False(t, r.Won)
}

func TestEndRound_DeclineReturnsToMenu(t *testing.T) {
	e, c := newGame(t)
	startRound(t, c, e, "Medium")
	c.Submit("lets")

	c.Submit(OptNo)

	assert.Equal(t, StateMenu, e.State())
	_, ok := e.Round()
	assert.False(t, ok)
	opts, _, _ := c.Menu()
	assert.Equal(t, []string{"Play", "Instructions", "Exit"}, opts)
}

func TestDebugMode(t *testing.T) {
	_, c := newGame(t, WithDebug(true))
	assert.Contains(t, c.Lines(), "<RichText.Debug>[DBG] Loaded 2 valid words.</>")

	c.Submit(OptPlay)
	c.Submit("Medium")
	assert.Contains(t, c.Lines(), "<RichText.Debug>[DBG] The hidden word is 'lets'.</>")
}

func TestDebugModeOff(t *testing.T) {
	_, c := newGame(t)
	c.Submit(OptPlay)
	c.Submit("Medium")

	for _, l := range c.Lines() {
		assert.NotContains(t, l, "[DBG]")
	}
}

func TestRandomSourcePicksWord(t *testing.T) {
	e, c := newGame(t, WithRand(fixedSource(1)))
	startRound(t, c, e, "Hard")

	r, _ := e.Round()
	assert.Equal(t, "tour", r.HiddenWord)
}

func TestKeyDrivenRound(t *testing.T) {
	e, c := newGame(t)

	// Main menu defaults to Play, difficulty menu defaults to Medium.
	c.HandleKey(console.KeyEnter, false, false)
	c.HandleKey(console.KeyEnter, false, false)
	require.Equal(t, StatePlaying, e.State())
	require.Equal(t, 8, lives(t, e))

	for _, k := range []console.Key{console.KeyL, console.KeyE, console.KeyT, console.KeyS} {
		c.HandleKey(k, true, false)
	}
	c.HandleKey(console.KeyEnter, false, false)

	assert.Equal(t, StateEndRound, e.State())

	// Navigate to "No" and decline.
	c.HandleKey(console.KeyDown, false, false)
	c.HandleKey(console.KeyEnter, false, false)
	assert.Equal(t, StateMenu, e.State())
}

func TestLogsRoundEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	e, c := newGame(t, WithLogger(logger))
	startRound(t, c, e, "Hard")
	c.Submit("tour")
	c.Submit("lets")

	out := buf.String()
	assert.Contains(t, out, "round started")
	assert.Contains(t, out, "guess")
	assert.Contains(t, out, "round won")
}
