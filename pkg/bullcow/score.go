package bullcow

// Score counts bulls (right letter, right position) and cows (letter present
// elsewhere in hidden). Both words are expected to be isograms of the same
// length, so no letter can be counted twice.
func Score(hidden, guess string) (bulls, cows int) {
	h := []rune(hidden)

	present := make(map[rune]struct{}, len(h))
	for _, r := range h {
		present[r] = struct{}{}
	}

	for i, r := range []rune(guess) {
		if i < len(h) && h[i] == r {
			bulls++
			continue
		}
		if _, ok := present[r]; ok {
			cows++
		}
	}

	return bulls, cows
}
