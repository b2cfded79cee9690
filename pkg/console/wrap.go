package console

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const closeTag = "</>"

// tagRe matches a rich-text tag at the start of its input. Tags take no cells.
var tagRe = regexp.MustCompile(`^(?:</>|<[A-Za-z][\w.]*>)`)

// wrapLines hard-wraps each line at width display cells. Empty lines are
// kept as a single empty line.
func wrapLines(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

// wrapLine splits line into pieces of at most width cells. A span open at a
// cut is closed at the end of the piece and reopened on the next one, so every
// piece holds balanced tags. Spans do not nest; a tag inside an open span is
// content of that span.
func wrapLine(line string, width int) []string {
	var (
		out   []string
		cur   strings.Builder
		cells int
		open  string
	)

	for i := 0; i < len(line); {
		if line[i] == '<' {
			if tag := tagRe.FindString(line[i:]); tag != "" {
				switch {
				case tag == closeTag:
					open = ""
				case open == "":
					open = tag
				}
				cur.WriteString(tag)
				i += len(tag)
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		w := runewidth.RuneWidth(r)
		if cells+w > width && cells > 0 {
			if open != "" {
				cur.WriteString(closeTag)
			}
			out = append(out, cur.String())
			cur.Reset()
			cells = 0
			if open != "" {
				cur.WriteString(open)
			}
		}

		cur.WriteString(line[i : i+size])
		cells += w
		i += size
	}

	return append(out, cur.String())
}
