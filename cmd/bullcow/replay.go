package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/germanamz/bullcow/pkg/bullcowdir"
	"github.com/germanamz/bullcow/pkg/console"
	"github.com/germanamz/bullcow/pkg/logging"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

const defaultReplaySeed = 1

// errTranscriptMismatch is returned when a replay differs from --expect.
var errTranscriptMismatch = errors.New("transcript mismatch")

// Script directives press a key instead of submitting a line.
var replayKeys = map[string]console.Key{
	":up":    console.KeyUp,
	":down":  console.KeyDown,
	":enter": console.KeyEnter,
}

type replayOptions struct {
	out    string
	expect string
	plain  bool
}

func newReplayCmd(opts *rootOptions) *cobra.Command {
	ro := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Play a scripted session and print every frame",
		Long: `Replay reads one input per line from a script file (or stdin) and prints the
console frame after each one. Lines starting with # are comments; the
directives :up, :down and :enter press the matching key. Word selection is
seeded (--seed, config seed, or 1) so transcripts are reproducible.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0]) //nolint:gosec // script path is provided by the user
				if err != nil {
					return fmt.Errorf("replay: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			return runReplay(cmd, opts, ro, in)
		},
	}

	cmd.Flags().StringVarP(&ro.out, "out", "o", "", "write the transcript to a file instead of stdout")
	cmd.Flags().StringVar(&ro.expect, "expect", "", "compare the transcript against a golden file")
	cmd.Flags().BoolVar(&ro.plain, "plain", false, "strip rich-text tags from frames")

	return cmd
}

func runReplay(cmd *cobra.Command, opts *rootOptions, ro *replayOptions, script io.Reader) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultReplaySeed
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:    opts.logLevel,
		Config:   "warn",
		File:     cfg.LogFile,
		Prefix:   "replay",
		Fallback: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	s, err := newSession(cfg, resolveWordList(cfg, bullcowdir.New(opts.dir)), logger)
	if err != nil {
		return err
	}

	transcript, err := replay(s, script, ro.plain)
	if err != nil {
		return err
	}

	if ro.expect != "" {
		return compareTranscript(cmd.OutOrStdout(), ro.expect, transcript)
	}

	if ro.out != "" {
		if err := os.WriteFile(ro.out, transcript, 0o600); err != nil {
			return fmt.Errorf("replay: write transcript: %w", err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(transcript)
	return err
}

// replay feeds the script to the session and records a frame per step.
// Steps after the player exits are not played.
func replay(s *session, script io.Reader, plain bool) ([]byte, error) {
	var buf bytes.Buffer

	frame := func(step int, label string) {
		text := s.console.Render()
		if plain {
			text = stripRichText(text)
		}
		fmt.Fprintf(&buf, "--- %d %s\n%s\n", step, label, text)
	}

	frame(0, "start")

	sc := bufio.NewScanner(script)
	step := 0
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}

		step++
		if k, ok := replayKeys[strings.TrimSpace(line)]; ok {
			s.console.HandleKey(k, false, false)
			frame(step, strings.TrimSpace(line))
		} else {
			s.console.Submit(line)
			frame(step, fmt.Sprintf("%q", line))
		}

		if s.engine.Exited() {
			buf.WriteString("--- exit\n")
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read script: %w", err)
	}

	if r, ok := s.engine.Round(); ok {
		fmt.Fprintf(&buf, "--- state %s lives=%d won=%t over=%t\n", s.engine.State(), r.Lives, r.Won, r.Over())
	} else {
		fmt.Fprintf(&buf, "--- state %s\n", s.engine.State())
	}

	return buf.Bytes(), nil
}

// compareTranscript diffs got against the golden file and writes the unified
// diff to w on mismatch.
func compareTranscript(w io.Writer, goldenPath string, got []byte) error {
	want, err := os.ReadFile(goldenPath) //nolint:gosec // golden path is provided by the user
	if err != nil {
		return fmt.Errorf("replay: read expected transcript: %w", err)
	}

	if bytes.Equal(want, got) {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: goldenPath,
		ToFile:   "replay",
		Context:  2,
	})
	if err != nil {
		return fmt.Errorf("replay: diff: %w", err)
	}

	_, _ = fmt.Fprint(w, diff)

	return fmt.Errorf("replay: %w", errTranscriptMismatch)
}
