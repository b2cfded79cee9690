package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const rulesMarkdown = `# Bulls & Cows

A hidden **isogram** is chosen at random. An isogram is a word with no
repeating letters, such as *planet* or *dusk*. Hidden words are between 4
and 8 letters long.

## Playing

1. Pick a difficulty. Your lives are the word length multiplied by
   3 on **Easy**, 2 on **Medium** and 1 on **Hard**.
2. Type a guess and press enter.
3. Each wrong guess costs one life and is scored:
   - a **bull** is a right letter in the right place,
   - a **cow** is a right letter in the wrong place.

Guesses of the wrong length, guesses that are not isograms and guesses you
have already tried are free.

## Keys

| Key | Action |
| --- | --- |
| ↑ / w | previous menu option |
| ↓ / s | next menu option |
| enter | confirm |
| ctrl+c | quit |
`

func newRulesCmd() *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderRules(style, width))
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "dark", "glamour style (dark|light|notty|ascii)")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")

	return cmd
}

// renderRules renders the rules as terminal markdown, falling back to the raw
// markdown when the renderer cannot be built.
func renderRules(style string, width int) string {
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return rulesMarkdown
	}

	out, err := r.Render(rulesMarkdown)
	if err != nil {
		return rulesMarkdown
	}
	return out
}
