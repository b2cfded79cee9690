package main

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/germanamz/bullcow/pkg/bullcow"
	"github.com/germanamz/bullcow/pkg/bullcowdir"
	"github.com/germanamz/bullcow/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath returns the config file to use. Priority:
// 1. Explicit --config flag (non-empty)
// 2. .bullcow/config.yaml (if it exists)
// 3. bullcow.yaml
func resolveConfigPath(explicit, dirPath string) string {
	if explicit != "" {
		return explicit
	}

	dirConfig := filepath.Join(dirPath, "config.yaml")
	if _, err := os.Stat(dirConfig); err == nil {
		return dirConfig
	}

	return "bullcow.yaml"
}

// loadConfig resolves and loads the configuration, then applies flag
// overrides. An explicit --config must exist; the implicit candidates may be
// missing, in which case defaults apply.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	path := resolveConfigPath(opts.configPath, opts.dir)

	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}

	return cfg, nil
}

// resolveWordList picks the configured list, then .bullcow/words.txt, and
// otherwise "" for the built-in list.
func resolveWordList(cfg config.Config, d bullcowdir.Dir) string {
	if cfg.WordList != "" {
		return cfg.WordList
	}
	return d.WordList()
}

// newSource returns a seeded source, or nil to use the engine's default.
func newSource(seed uint64) bullcow.Source {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // game randomness
}
