package console

import "unicode"

// Key is a logical keyboard key, independent of modifier state.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyTab
	KeySpace

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyMinus
	KeyEquals
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyApostrophe
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeyBacktick
)

var punctuation = map[Key]rune{
	KeySpace:        ' ',
	KeyMinus:        '-',
	KeyEquals:       '=',
	KeyComma:        ',',
	KeyPeriod:       '.',
	KeySlash:        '/',
	KeySemicolon:    ';',
	KeyApostrophe:   '\'',
	KeyLeftBracket:  '[',
	KeyRightBracket: ']',
	KeyBackslash:    '\\',
	KeyBacktick:     '`',
}

// shifted holds the top-row symbols produced while shift is held.
var shifted = map[rune]rune{
	'1': '!',
	'2': '@',
	'3': '#',
	'4': '$',
	'5': '%',
	'6': '^',
	'7': '&',
	'8': '*',
	'9': '(',
	'0': ')',
	'-': '_',
	'=': '+',
}

// baseRune returns the unmodified character a key types.
func baseRune(k Key) (rune, bool) {
	switch {
	case k >= KeyA && k <= KeyZ:
		return 'a' + rune(k-KeyA), true
	case k >= Key0 && k <= Key9:
		return '0' + rune(k-Key0), true
	}

	r, ok := punctuation[k]
	return r, ok
}

// Char maps a key press to the character it types. Shift on the digit row,
// minus and equals yields the shifted symbol; otherwise shift or caps lock
// upper-cases. Keys without a character report false.
func Char(k Key, shift, caps bool) (rune, bool) {
	r, ok := baseRune(k)
	if !ok {
		return 0, false
	}

	if shift {
		if s, ok := shifted[r]; ok {
			return s, true
		}
	}

	if shift || caps {
		return unicode.ToUpper(r), true
	}

	return r, true
}

// LookupRune is the inverse of Char for hosts that deliver already-typed
// characters. It reports the key and whether shift must be held to type r.
func LookupRune(r rune) (k Key, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), false, true
	}

	for base, sym := range shifted {
		if sym == r {
			k, _, ok := LookupRune(base)
			return k, true, ok
		}
	}

	for key, p := range punctuation {
		if p == r {
			return key, false, true
		}
	}

	return KeyNone, false, false
}
