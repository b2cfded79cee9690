// Package wordlist loads and filters the candidate hidden words for a game.
// A candidate is a lower-case isogram between MinLength and MaxLength
// characters long. Source order is preserved so filtering is deterministic.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	MinLength = 4
	MaxLength = 8
)

// ErrEmpty is returned when no candidate survives filtering.
var ErrEmpty = errors.New("wordlist: no isograms of length 4-8")

//go:embed words.txt
var embeddedWords string

// List is an immutable, ordered set of candidate words.
type List struct {
	words []string
	stats Stats
}

// Stats describes how a source was filtered.
type Stats struct {
	Lines    int // non-blank lines read
	Accepted int
	Rejected int
}

// Default returns the embedded word list.
func Default() (List, error) {
	return Read(strings.NewReader(embeddedWords))
}

// Load reads the word list at path. An empty path selects the embedded list.
func Load(path string) (List, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return List{}, fmt.Errorf("wordlist: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	l, err := Read(f)
	if err != nil {
		return List{}, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Read parses one word per line from r. Lines are trimmed and lower-cased;
// blank lines are skipped. ErrEmpty is returned if nothing is accepted.
func Read(r io.Reader) (List, error) {
	var l List

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}

		l.stats.Lines++
		if !Valid(w) {
			l.stats.Rejected++
			continue
		}

		l.words = append(l.words, w)
		l.stats.Accepted++
	}

	if err := sc.Err(); err != nil {
		return List{}, fmt.Errorf("wordlist: read: %w", err)
	}

	if len(l.words) == 0 {
		return l, ErrEmpty
	}

	return l, nil
}

// New builds a List from words, applying the same filter as Read.
func New(words ...string) (List, error) {
	return Read(strings.NewReader(strings.Join(words, "\n")))
}

// Valid reports whether w may be used as a hidden word.
func Valid(w string) bool {
	n := utf8.RuneCountInString(w)
	return n >= MinLength && n <= MaxLength && IsIsogram(w)
}

// IsIsogram reports whether no character of s appears twice. The empty
// string and single characters are isograms.
func IsIsogram(s string) bool {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		if _, dup := seen[r]; dup {
			return false
		}
		seen[r] = struct{}{}
	}

	return true
}

// Len returns the number of candidate words.
func (l List) Len() int { return len(l.words) }

// At returns the i-th candidate.
func (l List) At(i int) string { return l.words[i] }

// Words returns a copy of the candidates in source order.
func (l List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Stats reports how the source was filtered.
func (l List) Stats() Stats { return l.stats }
