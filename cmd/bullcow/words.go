package main

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/germanamz/bullcow/pkg/bullcowdir"
	"github.com/germanamz/bullcow/pkg/wordlist"
	"github.com/spf13/cobra"
)

func newWordsCmd(opts *rootOptions) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "words [file]",
		Short: "Show which words a list contributes",
		Long: `Load a word list the way the game does and report how many lines were
accepted as hidden words. Without a file argument the configured list is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig(cmd, opts)
				if err != nil {
					return err
				}
				path = resolveWordList(cfg, bullcowdir.New(opts.dir))
			}

			l, err := wordlist.Load(path)
			if err != nil {
				return err
			}

			return printWordStats(cmd, path, l, list)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print every accepted word")

	return cmd
}

func printWordStats(cmd *cobra.Command, path string, l wordlist.List, list bool) error {
	out := cmd.OutOrStdout()

	source := path
	if source == "" {
		source = "built-in"
	}

	st := l.Stats()
	_, _ = fmt.Fprintf(out, "source:   %s\n", source)
	_, _ = fmt.Fprintf(out, "lines:    %d\n", st.Lines)
	_, _ = fmt.Fprintf(out, "accepted: %d\n", st.Accepted)
	_, _ = fmt.Fprintf(out, "rejected: %d\n", st.Rejected)

	byLength := make(map[int]int)
	for _, w := range l.Words() {
		byLength[utf8.RuneCountInString(w)]++
	}
	lengths := make([]int, 0, len(byLength))
	for n := range byLength {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)
	for _, n := range lengths {
		_, _ = fmt.Fprintf(out, "  %d letters: %d\n", n, byLength[n])
	}

	if list {
		for _, w := range l.Words() {
			if _, err := fmt.Fprintln(out, w); err != nil {
				return err
			}
		}
	}

	return nil
}
