package main

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	hiddenTag = "RichText.Hidden"
	logoTag   = "<logo>"
	tabWidth  = 4
)

// spanRe matches one "<Style>text</>" span. Spans do not nest.
var spanRe = regexp.MustCompile(`<([A-Za-z][\w.]*)>(.*?)</>`)

// renderRichText styles the tagged spans of a console frame for the terminal.
// Unknown tags are dropped and their text kept. Hidden spans keep their width
// but not their text, except the logo placeholder which becomes the banner.
func renderRichText(frame string) string {
	frame = strings.ReplaceAll(frame, "\t", strings.Repeat(" ", tabWidth))

	return spanRe.ReplaceAllStringFunc(frame, func(span string) string {
		m := spanRe.FindStringSubmatch(span)
		name, text := m[1], m[2]

		if name == hiddenTag {
			if text == logoTag {
				return logoStyle.Render(logoBanner)
			}
			return strings.Repeat(" ", runewidth.StringWidth(text))
		}

		if st, ok := richStyles[name]; ok {
			return st.Render(text)
		}
		return text
	})
}

// stripRichText removes the tags and keeps the text of every span.
func stripRichText(frame string) string {
	return spanRe.ReplaceAllString(frame, "$2")
}
