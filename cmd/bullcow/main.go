package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	dir        string
	envFile    string
	logLevel   string
	debug      bool
	seed       uint64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "bullcow",
		Short: "Bulls & Cows - guess the hidden isogram",
		Long: `Bulls & Cows is a terminal word game. A hidden isogram (a word with no
repeating letters) is chosen and you guess it; every guess is scored with
bulls (right letter, right place) and cows (right letter, wrong place).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadDotEnv(opts.envFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to configuration file (default: .bullcow/config.yaml or bullcow.yaml)")
	pf.StringVar(&opts.dir, "dir", ".bullcow", "path to .bullcow directory")
	pf.StringVar(&opts.envFile, "env", ".env", "path to .env file (ignored if missing)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.BoolVar(&opts.debug, "debug", false, "reveal the hidden word each round")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed for word selection (0 = config or clock)")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Start the interactive game (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPlay(cmd, opts)
			},
		},
		newReplayCmd(opts),
		newInitCmd(opts),
		newWordsCmd(opts),
		newRulesCmd(),
	)

	return root
}
