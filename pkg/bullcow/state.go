package bullcow

import (
	"slices"
	"strings"
)

// State is the engine's position in the game flow.
type State int

const (
	StateMenu State = iota
	StateInstructions
	StateDifficulty
	StatePlaying
	StateEndRound
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInstructions:
		return "instructions"
	case StateDifficulty:
		return "difficulty"
	case StatePlaying:
		return "playing"
	case StateEndRound:
		return "end_round"
	}
	return "unknown"
}

// Difficulty multiplies the hidden word length to give the starting lives.
type Difficulty int

const (
	Hard   Difficulty = 1
	Medium Difficulty = 2
	Easy   Difficulty = 3
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return "Unknown"
}

// ParseDifficulty maps a menu label to a Difficulty. Unknown labels fall back
// to Hard.
func ParseDifficulty(label string) Difficulty {
	switch label {
	case "Easy":
		return Easy
	case "Medium":
		return Medium
	}
	return Hard
}

// Round is the state of one play-through.
type Round struct {
	ID         string
	HiddenWord string
	Lives      int
	Difficulty Difficulty
	Won        bool
	tried      map[string]struct{}
}

func newRound(id, word string, d Difficulty) *Round {
	return &Round{
		ID:         id,
		HiddenWord: word,
		Lives:      len([]rune(word)) * int(d),
		Difficulty: d,
		tried:      make(map[string]struct{}),
	}
}

// Over reports whether the round has been won or lost.
func (r *Round) Over() bool {
	return r.Won || r.Lives <= 0
}

// Tried returns the distinct wrong guesses so far, sorted.
func (r *Round) Tried() []string {
	out := make([]string, 0, len(r.tried))
	for g := range r.tried {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

func (r *Round) snapshot() Round {
	cp := *r
	cp.tried = make(map[string]struct{}, len(r.tried))
	for g := range r.tried {
		cp.tried[g] = struct{}{}
	}
	return cp
}

// normalizeGuess trims surrounding whitespace and lower-cases.
func normalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
