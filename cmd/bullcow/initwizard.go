package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/bullcow/pkg/bullcowdir"
	"github.com/germanamz/bullcow/pkg/config"
	"github.com/spf13/cobra"
)

// wizardValues holds the raw form answers. Numbers stay strings until
// toConfig so the inputs can be validated as the user types.
type wizardValues struct {
	MaxLines   string
	MaxColumns string
	WordList   string
	Debug      bool
	LogLevel   string
}

func defaultWizardValues() wizardValues {
	d := config.Default()
	return wizardValues{
		MaxLines:   strconv.Itoa(d.MaxLines),
		MaxColumns: strconv.Itoa(d.MaxColumns),
		LogLevel:   d.LogLevel,
	}
}

// toConfig converts the answers and validates the result.
func (v wizardValues) toConfig() (config.Config, error) {
	cfg := config.Default()

	lines, err := strconv.Atoi(strings.TrimSpace(v.MaxLines))
	if err != nil {
		return config.Config{}, fmt.Errorf("max lines: %w", err)
	}
	cfg.MaxLines = lines

	if s := strings.TrimSpace(v.MaxColumns); s != "" {
		cols, err := strconv.Atoi(s)
		if err != nil {
			return config.Config{}, fmt.Errorf("max columns: %w", err)
		}
		cfg.MaxColumns = cols
	}

	cfg.WordList = strings.TrimSpace(v.WordList)
	cfg.Debug = v.Debug
	cfg.LogLevel = v.LogLevel

	return cfg, cfg.Validate()
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func validateNonNegative(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number, 0 to disable")
	}
	return nil
}

func validateWordList(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := os.Stat(os.ExpandEnv(s)); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}

// runWizard asks for every setting, starting from v.
func runWizard(v wizardValues) (wizardValues, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Console lines").
				Description("How many lines the game keeps on screen.").
				Value(&v.MaxLines).
				Validate(validatePositive),
			huh.NewInput().
				Title("Wrap width").
				Description("Wrap long lines at this many columns (0 = no wrapping).").
				Value(&v.MaxColumns).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Word list").
				Description("Path to a word list, one word per line. Leave empty for the built-in list.").
				Value(&v.WordList).
				Validate(validateWordList),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Debug mode?").
				Description("Reveal the hidden word at the start of every round.").
				Value(&v.Debug),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&v.LogLevel),
		),
	)

	if err := form.Run(); err != nil {
		return wizardValues{}, err
	}
	return v, nil
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .bullcow directory with a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := bullcowdir.New(opts.dir)

			if _, err := os.Stat(d.ConfigPath()); err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, leaving it untouched\n", d.ConfigPath())
				return bullcowdir.EnsureStructure(d)
			}

			v := defaultWizardValues()
			if !defaults {
				var err error
				if v, err = runWizard(v); err != nil {
					return err
				}
			}

			return writeInitConfig(cmd, d, v)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "write the default config without prompting")

	return cmd
}

func writeInitConfig(cmd *cobra.Command, d bullcowdir.Dir, v wizardValues) error {
	cfg, err := v.toConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	existed := d.Exists()
	if err := bullcowdir.Bootstrap(d, data); err != nil {
		return err
	}

	if existed {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote config into existing %s\n", d.Root())
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", d.Root())
	return nil
}
